package cli

import (
	"context"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/audio"
)

const (
	micTestSeconds  = 3
	micMeterWidth   = 40
	micQuietPercent = 2
)

// MicTest records a short sample from the default microphone and renders its
// volume as a text meter. It does not touch the server at all.
func (a *App) MicTest(ctx context.Context) error {
	fmt.Fprintf(a.out, "Recording %d seconds from the default microphone...\n", micTestSeconds)

	sample, err := a.capturer.Capture(ctx, micTestSeconds)
	if err != nil {
		fmt.Fprintf(a.out, "Mic test failed: %s\n", err.Error())
		return err
	}

	level := audio.Level(sample)
	fmt.Fprintf(a.out, "[%s] %.0f%%\n", audio.Bar(level, micMeterWidth), level)
	if level < micQuietPercent {
		fmt.Fprintln(a.out, "Very low signal. Check that the microphone is connected and not muted.")
	}
	return nil
}
