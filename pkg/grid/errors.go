package grid

import "errors"

// ErrRagged is returned when the rows passed to New have different lengths.
var ErrRagged = errors.New("grid rows have different lengths")
