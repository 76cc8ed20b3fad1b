package builder

import "errors"

// Sentinel errors for the builder package.
var (
	// ErrNilReader indicates New was handed a nil reader.Reader.
	ErrNilReader = errors.New("builder: nil reader")

	// ErrNilGIR indicates New was handed a nil gir.GIR.
	ErrNilGIR = errors.New("builder: nil gir")
)
