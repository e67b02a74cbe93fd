package controller

import (
	"context"
	"time"
)

// Success acknowledgment shown after a valid submission.
const (
	DefaultToastTitle       = "Contract Configuration"
	DefaultToastDescription = "Your token sale contract configuration has been generated."
	DefaultToastDuration    = 5 * time.Second
)

// Toast is a transient, auto-dismissing notification.
type Toast struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"duration"`
}

// DefaultToast returns the success acknowledgment with the default copy.
func DefaultToast() Toast {
	return Toast{
		Title:       DefaultToastTitle,
		Description: DefaultToastDescription,
		Duration:    DefaultToastDuration,
	}
}

// Notifier presents a toast to the user. Implementations must not block on
// user interaction.
type Notifier interface {
	Notify(ctx context.Context, toast Toast) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, toast Toast) error

func (fn NotifierFunc) Notify(ctx context.Context, toast Toast) error {
	return fn(ctx, toast)
}

// ToastRecorder keeps the last toast so a renderer can present it in the
// response to the submission.
type ToastRecorder struct {
	toast *Toast
}

func (r *ToastRecorder) Notify(_ context.Context, toast Toast) error {
	r.toast = &toast
	return nil
}

// Toast returns the recorded toast, or nil when nothing was notified.
func (r *ToastRecorder) Toast() *Toast {
	if r == nil {
		return nil
	}
	return r.toast
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, Toast) error { return nil }
