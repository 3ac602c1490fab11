package ocr

import "errors"

// ErrNoText is returned when no usable text can be recognized in a frame.
var ErrNoText = errors.New("no text recognized")
