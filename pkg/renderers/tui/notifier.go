package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-tokensale/pkg/controller"
)

// ToastNotifier prints toasts as a bordered box. Terminals keep the box in
// the scrollback, so the toast duration is not used.
type ToastNotifier struct {
	out   io.Writer
	theme Theme
}

var _ controller.Notifier = (*ToastNotifier)(nil)

// NewToastNotifier writes to out, or stdout when out is nil.
func NewToastNotifier(out io.Writer, theme Theme) *ToastNotifier {
	if out == nil {
		out = os.Stdout
	}
	return &ToastNotifier{out: out, theme: theme}
}

func (n *ToastNotifier) Notify(ctx context.Context, toast controller.Toast) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body := n.theme.ToastTitle.Render(toast.Title)
	if toast.Description != "" {
		body += "\n" + toast.Description
	}
	_, err := fmt.Fprintln(n.out, n.theme.Toast.Render(body))
	return err
}
