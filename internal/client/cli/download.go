package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/assets"
)

// Download prompts for a recording id and a PDF kind and saves the document
// to the downloads directory.
func (a *App) Download(ctx context.Context) error {
	id, err := getID(a.reader, "Enter recording id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	kind, err := getSimpleText(a.reader, "Which document? (transcript/summary)", a.out)
	if err != nil {
		return err
	}

	dest, err := a.assets.Download(ctx, id, kind, fmt.Sprintf("recording-%d-%s.pdf", id, kind))
	if err != nil {
		a.printAssetError(err)
		return err
	}

	fmt.Fprintf(a.out, "Saved to %s\n", dest)
	return nil
}

// Play fetches a recording's audio as a local temporary file and hands its
// path to the user. The temporary file is revoked when playback ends.
func (a *App) Play(ctx context.Context) error {
	id, err := getID(a.reader, "Enter recording id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	rec, err := a.recordings.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	if !rec.HasAudio() {
		fmt.Fprintln(a.out, "No audio is available for this recording.")
		return nil
	}

	handle, err := a.assets.FetchAudio(ctx, id)
	if err != nil {
		a.printAssetError(err)
		return err
	}

	a.player.Toggle()
	fmt.Fprintf(a.out, "Playing %s (press Enter to stop)\n", handle.Path)
	if _, rerr := a.reader.ReadString('\n'); rerr != nil {
		a.log.Warn(ctx, "input closed during playback", "err", rerr)
	}
	a.player.HandleEnded()

	if err := a.blobs.Revoke(handle); err != nil && !errors.Is(err, assets.ErrRevoked) {
		a.log.Warn(ctx, "failed to revoke audio blob", "err", err)
	}
	return nil
}

func (a *App) printAssetError(err error) {
	var serr *api.StatusError
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Please log in again to access this file.")
	case errors.As(err, &serr):
		fmt.Fprintf(a.out, "Download failed (status %d)\n", serr.StatusCode)
	default:
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
	}
}
