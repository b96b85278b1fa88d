// Package audio abstracts microphone access for the client. The backend owns
// actual session capture; the client only needs a one-shot permission probe
// before starting a session, and a short local capture for the mic test.
package audio

import (
	"context"
	"errors"
)

// ErrAccessDenied indicates the capture device could not be opened. This is
// terminal for the current attempt; the user has to fix device permissions
// and retry.
var ErrAccessDenied = errors.New("microphone access denied")

// Device is an open capture device. Release must be called as soon as the
// probe result is known; holding the device is a resource leak since the
// server performs the actual recording.
type Device interface {
	Release() error
}

// Prober checks that the microphone can be opened.
type Prober interface {
	RequestAccess(ctx context.Context) (Device, error)
}

// Capturer records a short sample from the default device, for the mic test.
type Capturer interface {
	Capture(ctx context.Context, seconds int) ([]byte, error)
}
