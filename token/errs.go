package token

import "errors"

var (
	ErrNumberLeadingZero = errors.New("leading 0s not permitted in numbers")
	ErrNumber            = errors.New("number")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
)
