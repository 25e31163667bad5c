package utils

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bettererrors "github.com/xtuc/better-errors"
)

func TestFailWithOutput(t *testing.T) {
	var buf bytes.Buffer

	failWith(&buf, bettererrors.
		New("Could not render").
		SetContext("file", "scene.txt").
		With(errors.New("boom")))

	assert.Contains(t, buf.String(), "An error occurred.")
	assert.Contains(t, buf.String(), "\n  ├ version: dev\n  └ Could not render\n    ├ file: scene.txt\n    └ boom\n")
}

func TestFailWithPlainError(t *testing.T) {
	var buf bytes.Buffer

	failWith(&buf, errors.Wrap(errors.New("boom"), "could not render"))

	assert.Contains(t, buf.String(), "  └ could not render: boom\n")
}

func TestWarnWithOutput(t *testing.T) {
	var buf bytes.Buffer

	warnWith(&buf, bettererrors.
		New("Segments #0 and #3 are the same segment").
		SetContext("file", "scene.txt"))

	assert.Contains(t, buf.String(), "Warning")
	assert.Contains(t, buf.String(), "Segments #0 and #3 are the same segment\n  ├ file: scene.txt\n")

	buf.Reset()
	warnWith(&buf, errors.New("plain warning"))
	assert.Contains(t, buf.String(), "plain warning\n")
}

func TestCheck(t *testing.T) {
	assert.NotPanics(t, func() { Check(nil, "fine") })
	assert.Panics(t, func() { Check(errors.New("boom"), "not fine") })
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	previous := DebugOutput
	DebugOutput = &buf
	defer func() { DebugOutput = previous }()

	DebugWith("batch", "file computed", Context{"visible": 3})

	var message Message
	require.NoError(t, json.Unmarshal(buf.Bytes(), &message))

	assert.Equal(t, "batch", message.Service)
	assert.Equal(t, "file computed", message.Message)
	assert.Equal(t, 3.0, message.Context["visible"])
	assert.NotEmpty(t, message.Time)
}

func TestReadFullLine(t *testing.T) {
	long := strings.Repeat("1234567890 ", 20)
	reader := bufio.NewReaderSize(strings.NewReader(long+"\n\nlast"), 16)

	line, err := ReadFullLine(reader)
	require.NoError(t, err)
	assert.Equal(t, long, line)

	line, err = ReadFullLine(reader)
	require.NoError(t, err)
	assert.Equal(t, "", line)

	line, err = ReadFullLine(reader)
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = ReadFullLine(reader)
	assert.Equal(t, io.EOF, err)
}
