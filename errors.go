package visualizationtools

import "errors"

var (
	// ErrNoData is returned when an input collection is empty.
	ErrNoData = errors.New("no data")
	// ErrLengthMismatch is returned when inputs that must share a length do not.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrMissingArgument is returned when neither of two alternative
	// required arguments was supplied.
	ErrMissingArgument = errors.New("missing argument")
	// ErrCanvasConflict is returned when a caller supplies its own plot
	// together with a path to save it to.
	ErrCanvasConflict = errors.New("cannot both supply a plot and a save path")
)
