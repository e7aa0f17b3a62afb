package cli

import (
	"fmt"
	"io"
)

type noticeKind string

const (
	noticeInfo    noticeKind = "info"
	noticeSuccess noticeKind = "ok"
	noticeError   noticeKind = "error"
)

// notice is a short-lived notification: shown once, then dismissed.
type notice struct {
	Message string
	Kind    noticeKind
	Visible bool
}

// notifier holds at most one pending notice. Show replaces any pending one;
// Flush prints and dismisses it. The REPL flushes after every command, which
// plays the role of the auto-clear timer a windowed UI would use.
type notifier struct {
	current notice
}

func (n *notifier) Show(kind noticeKind, format string, args ...any) {
	n.current = notice{Message: fmt.Sprintf(format, args...), Kind: kind, Visible: true}
}

func (n *notifier) Dismiss() {
	n.current = notice{}
}

// Flush writes the pending notice to w and dismisses it.
func (n *notifier) Flush(w io.Writer) {
	if !n.current.Visible {
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", n.current.Kind, n.current.Message)
	n.Dismiss()
}
