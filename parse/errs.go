package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrDepth         = fmt.Errorf("%w: exceeded maximum nesting depth", ErrParse)
	ErrTrailing      = fmt.Errorf("%w: unexpected trailing content", ErrParse)
	ErrControl       = fmt.Errorf("%w: unescaped control character", ErrParse)
)
