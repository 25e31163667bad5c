package utils

import (
	"bufio"
	"strings"
)

// ReadFullLine reads one line, however long, without its line terminator.
// It returns io.EOF once the reader is exhausted.
func ReadFullLine(r *bufio.Reader) (string, error) {
	line, isPrefix, readErr := r.ReadLine()

	if readErr != nil {
		return "", readErr
	}

	if !isPrefix {
		return string(line), nil
	}

	var buf strings.Builder
	buf.Write(line)

	for isPrefix {
		line, isPrefix, readErr = r.ReadLine()
		if readErr != nil {
			break
		}

		buf.Write(line)
	}

	return buf.String(), nil
}
