package token

import "fmt"

// maxIntDigits bounds the integer fast path: a token of at most this
// many characters (sign included) always fits an int64.
const maxIntDigits = 18

// ScanNumber scans a JSON number in d starting at i and returns the
// offset one past its end. isInt reports whether the token has no
// fraction or exponent and is short enough that strconv.ParseInt cannot
// overflow.
func ScanNumber(d []byte, i int) (end int, isInt bool, err error) {
	start := i
	n := len(d)

	if i < n && d[i] == '-' {
		i++
	}

	// integer part: a lone 0, or a nonzero digit followed by digits
	switch {
	case i < n && d[i] == '0':
		i++
		if i < n && isDigit(d[i]) {
			return i, false, ErrNumberLeadingZero
		}
	case i < n && d[i] >= '1' && d[i] <= '9':
		i++
		for i < n && isDigit(d[i]) {
			i++
		}
	default:
		return i, false, fmt.Errorf("%w: invalid %s in number", ErrNumber, at(d, i))
	}

	if (i == n || (d[i] != '.' && d[i] != 'e' && d[i] != 'E')) && i-start <= maxIntDigits {
		return i, true, nil
	}

	if i < n && d[i] == '.' {
		i++
		if i == n || !isDigit(d[i]) {
			return i, false, fmt.Errorf("%w: at least one digit required in fractional part", ErrNumber)
		}
		for i < n && isDigit(d[i]) {
			i++
		}
	}

	if i < n && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		if i == n || !isDigit(d[i]) {
			return i, false, fmt.Errorf("%w: at least one digit required in exponent", ErrNumber)
		}
		for i < n && isDigit(d[i]) {
			i++
		}
	}

	return i, false, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// at formats the byte at d[i] for an error message.
func at(d []byte, i int) string {
	if i >= len(d) {
		return "end of input"
	}
	c := d[i]
	if c >= 0x20 && c <= 0x7f {
		return fmt.Sprintf("'%c' (%d)", c, c)
	}
	return fmt.Sprintf("(%d)", c)
}
