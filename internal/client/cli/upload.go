package cli

import (
	"context"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
)

// Upload prompts for a local audio file and sends it for transcription.
func (a *App) Upload(ctx context.Context) error {
	return a.upload(ctx, "Path to audio file", a.recordings.UploadAudio)
}

// UploadTranscript prompts for a local text transcript and sends it for
// summarization.
func (a *App) UploadTranscript(ctx context.Context) error {
	return a.upload(ctx, "Path to transcript file (.txt)", a.recordings.UploadText)
}

func (a *App) upload(ctx context.Context, prompt string, send func(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error)) error {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "Title (leave empty to derive from filename)", a.out)
	if err != nil {
		return err
	}

	last := -1
	id, err := send(ctx, path, title, func(percent int) {
		if percent != last {
			last = percent
			fmt.Fprintf(a.out, "\ruploading... %3d%%", percent)
		}
	})
	fmt.Fprintln(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Uploaded, recording id %d\n", id)
	return nil
}
