package cli

import (
	"context"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/session"
)

// Record runs one live recording session: request microphone access, start
// the server-side session, stream the transcript while recording, and stop
// when the user presses Enter. Afterwards the finalized recording is shown
// when the server reported one, otherwise the listing.
func (a *App) Record(ctx context.Context) error {
	rec := a.newRecorder()
	defer rec.Close()

	rec.OnTranscript(func(text string) {
		if text != "" {
			fmt.Fprintf(a.out, "[transcript] %s\n", text)
		}
	})
	rec.OnStateChange(func(s session.State) {
		a.log.Debug(ctx, "session state changed", "state", s.String())
	})

	if err := rec.Start(ctx); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Recording... press Enter to stop.")
	if _, err := a.reader.ReadString('\n'); err != nil {
		a.log.Warn(ctx, "input closed while recording", "err", err)
	}

	target, err := rec.Stop(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to stop recording: %s\n", err.Error())
		// the session's server-side fate is unknown, show the listing
		return a.List(ctx)
	}

	fmt.Fprintln(a.out, "Recording stopped.")
	if target.RecordingID != 0 {
		return a.showRecording(ctx, target.RecordingID)
	}
	return a.List(ctx)
}
