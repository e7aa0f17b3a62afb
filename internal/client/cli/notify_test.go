package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierFlush(t *testing.T) {
	var out bytes.Buffer
	n := &notifier{}

	n.Show(noticeSuccess, "saved %s", "file.pdf")
	n.Flush(&out)
	assert.Equal(t, "[ok] saved file.pdf\n", out.String())

	// a flushed notice is gone
	out.Reset()
	n.Flush(&out)
	assert.Empty(t, out.String())
}

func TestNotifierShowReplacesPending(t *testing.T) {
	var out bytes.Buffer
	n := &notifier{}

	n.Show(noticeInfo, "first")
	n.Show(noticeError, "second")
	n.Flush(&out)
	assert.Equal(t, "[error] second\n", out.String())
}

func TestNotifierDismiss(t *testing.T) {
	var out bytes.Buffer
	n := &notifier{}

	n.Show(noticeInfo, "pending")
	n.Dismiss()
	n.Flush(&out)
	assert.Empty(t, out.String())
}
