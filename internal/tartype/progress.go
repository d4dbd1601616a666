package tartype

// ProgressEvent represents a progress update while sizing, checking or
// streaming a tree.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Path is the entry currently being processed, if applicable.
	Path string

	// BytesDone is the number of archive bytes produced so far.
	BytesDone uint64

	// BytesTotal is the expected archive size.
	// Zero indicates the total is unknown.
	BytesTotal uint64

	// EntriesDone is the number of entries whose header has been produced.
	EntriesDone int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

const (
	// StageSizing indicates the tree is being walked to estimate its size.
	StageSizing ProgressStage = iota

	// StageChecking indicates entries are being validated.
	StageChecking

	// StageStreaming indicates headers and data blocks are being produced.
	StageStreaming

	// StageTerminating indicates the end-of-archive blocks are being written.
	StageTerminating
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageSizing:
		return "sizing"
	case StageChecking:
		return "checking"
	case StageStreaming:
		return "streaming"
	case StageTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations.
type ProgressFunc func(ProgressEvent)
