package targen

import "log/slog"

// ChangeDetection controls how strictly file changes are detected while streaming.
type ChangeDetection uint8

const (
	ChangeDetectionNone ChangeDetection = iota
	ChangeDetectionStrict
)

// ProblemFunc receives each unencodable entry found by Check.
type ProblemFunc func(*FormatError)

// config holds configuration shared by all operations.
type config struct {
	logger          *slog.Logger
	progress        ProgressFunc
	problem         ProblemFunc
	blockingFactor  int
	changeDetection ChangeDetection
	noTerminator    bool
}

// Option configures Generate, NewReader, Write, CalcSize and Check.
// Options that do not apply to an operation are ignored by it.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{blockingFactor: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// reportProgress sends a progress event if a callback is configured.
func (c *config) reportProgress(stage ProgressStage, path string, bytesDone, bytesTotal uint64, entriesDone int) {
	if c.progress == nil {
		return
	}
	c.progress(ProgressEvent{
		Stage:       stage,
		Path:        path,
		BytesDone:   bytesDone,
		BytesTotal:  bytesTotal,
		EntriesDone: entriesDone,
	})
}

// WithLogger sets the logger. Check reports every problem it finds here at
// warn level. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithProgress sets a callback that receives progress events.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithProblemFunc sets a callback that Check invokes for each unencodable entry,
// in addition to logging it.
func WithProblemFunc(fn ProblemFunc) Option {
	return func(c *config) {
		c.problem = fn
	}
}

// WithBlockingFactor sets how many 512-byte blocks are read from a file per
// I/O operation. It does not change padding, which is always to 512 bytes.
// Values below 1 are treated as 1.
func WithBlockingFactor(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.blockingFactor = n
	}
}

// WithChangeDetection controls whether the streamer verifies that each file
// yields exactly the number of bytes recorded in its header. The zero value
// disables the check.
func WithChangeDetection(cd ChangeDetection) Option {
	return func(c *config) {
		c.changeDetection = cd
	}
}

// WithoutTerminator stops Write from appending the two zero end-of-archive blocks.
func WithoutTerminator() Option {
	return func(c *config) {
		c.noTerminator = true
	}
}
