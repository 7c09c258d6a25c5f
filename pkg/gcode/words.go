package gcode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// word is a letter followed by its (unparsed) value, e.g. X-1.5.
type word struct {
	letter byte
	value  string
}

func (w word) String() string {
	return string(w.letter) + w.value
}

// stripComments removes ; line-end comments and ( ) inline comments.
func stripComments(line string) string {
	if idx := strings.IndexByte(line, ';'); idx >= 0 {
		line = line[:idx]
	}

	for {
		open := strings.IndexByte(line, '(')
		if open < 0 {
			break
		}

		closing := strings.IndexByte(line[open:], ')')
		if closing < 0 {
			line = line[:open]
			break
		}

		line = line[:open] + " " + line[open+closing+1:]
	}

	return strings.TrimSpace(line)
}

// splitWords splits a comment-free line into words. Words may be separated by spaces
// or packed together (G1X10Y5). Characters that cannot start a word are skipped.
func splitWords(line string) []word {
	var result []word

	for i := 0; i < len(line); {
		c := line[i]
		if !isLetter(c) {
			i++
			continue
		}

		j := i + 1
		for j < len(line) && !isLetter(line[j]) && !unicode.IsSpace(rune(line[j])) {
			j++
		}

		result = append(result, word{
			letter: upper(c),
			value:  line[i+1 : j],
		})

		i = j
	}

	return result
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}

// number parses w's value, rejecting empty, non-numeric and non-finite values.
func (w word) number() (float64, error) {
	value, err := strconv.ParseFloat(w.value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedNumber, err)
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrMalformedNumber, w.value)
	}

	return value, nil
}

// gNumber returns the integral G code number (G01. -> 1). ok is false for
// fractional codes such as G38.2 which this dialect does not know.
func (w word) gNumber() (n int, ok bool, err error) {
	value, err := w.number()
	if err != nil {
		return 0, false, err
	}

	if value != math.Trunc(value) {
		return 0, false, nil
	}

	return int(value), true, nil
}
