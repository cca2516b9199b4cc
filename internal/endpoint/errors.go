package endpoint

import "errors"

// ErrInvalidURL matches every *InvalidURLError via errors.Is.
var ErrInvalidURL = errors.New("invalid URL")

// InvalidURLError reports a candidate that is not an absolute URL.
type InvalidURLError struct {
	Input  string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return "Invalid URL: " + e.Reason
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}
