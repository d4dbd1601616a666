package targen

import "github.com/ltskv/targen/internal/tartype"

// Re-export progress types from tartype.
type (
	// ProgressEvent represents a progress update while sizing, checking or streaming.
	ProgressEvent = tartype.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = tartype.ProgressStage

	// ProgressFunc receives progress updates during operations.
	ProgressFunc = tartype.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageSizing indicates the tree is being walked to estimate its size.
	StageSizing = tartype.StageSizing

	// StageChecking indicates entries are being validated.
	StageChecking = tartype.StageChecking

	// StageStreaming indicates headers and data blocks are being produced.
	StageStreaming = tartype.StageStreaming

	// StageTerminating indicates the end-of-archive blocks are being written.
	StageTerminating = tartype.StageTerminating
)
