package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain line", "hello\n", "hello"},
		{"trims spaces", "  hello  \n", "hello"},
		{"partial line at eof", "no newline", "no newline"},
		{"empty line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(bufio.NewReader(strings.NewReader(tt.input)), "Enter value", &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter value\n> ", out.String())
		})
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "Enter value", &out)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextDefault(bufio.NewReader(strings.NewReader("\n")), "Name", "current", &out)
	require.NoError(t, err)
	assert.Equal(t, "current", got)
	assert.Contains(t, out.String(), "[current]")

	got, err = GetTextDefault(bufio.NewReader(strings.NewReader("new\n")), "Name", "current", &out)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestGetInt(t *testing.T) {
	var out bytes.Buffer

	got, err := GetInt(bufio.NewReader(strings.NewReader("\n")), "Credit hours", 3, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = GetInt(bufio.NewReader(strings.NewReader("4\n")), "Credit hours", 3, &out)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = GetInt(bufio.NewReader(strings.NewReader("four\n")), "Credit hours", 3, &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, out.String(), "Enter password: ")
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.edu", true},
		{"", false},
		{"no-at-sign", false},
		{"no@tld", false},
		{"spaces in@example.com", false},
		{"user@example .com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}
