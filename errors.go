package main

import "errors"

// Failure categories. Each invocation aborts on the first one of these
// it hits; nothing is retried.
var (
	ErrInputNotFound        = errors.New("input file not found")
	ErrMalformedPlaceholder = errors.New("malformed placeholder file")
	ErrUnrecognizedURL      = errors.New("unrecognized URL")
	ErrUnsupportedExtension = errors.New("unsupported extension")
	ErrLookupFailed         = errors.New("drive lookup failed")
	ErrUnsupportedType      = errors.New("unsupported Google Workspace type")
)
