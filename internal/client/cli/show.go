package cli

import (
	"context"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
)

// Show prompts for a recording id and prints its detail view.
func (a *App) Show(ctx context.Context) error {
	id, err := getID(a.reader, "Enter recording id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	return a.showRecording(ctx, id)
}

func (a *App) showRecording(ctx context.Context, id int64) error {
	rec, err := a.recordings.Get(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Title:    %s\n", rec.Title)
	fmt.Fprintf(a.out, "Status:   %s (%s)\n", rec.Status, statusLabel(rec))
	fmt.Fprintf(a.out, "Duration: %s\n", models.FormatDuration(rec.Duration))
	fmt.Fprintf(a.out, "Created:  %s\n", rec.CreatedAt)

	if rec.Transcript != "" {
		fmt.Fprintf(a.out, "\nTranscript:\n%s\n", rec.Transcript)
	} else {
		fmt.Fprintln(a.out, "\nNo transcript available.")
	}
	if rec.Summary != "" {
		fmt.Fprintf(a.out, "\nSummary:\n%s\n", rec.Summary)
	} else {
		fmt.Fprintln(a.out, "\nNo summary available.")
	}

	var available []string
	if rec.HasAudio() {
		available = append(available, "play")
	}
	if rec.HasTranscriptPDF() {
		available = append(available, "download transcript")
	}
	if rec.HasSummaryPDF() {
		available = append(available, "download summary")
	}
	if len(available) > 0 {
		fmt.Fprintf(a.out, "\nAvailable: %v\n", available)
	}
	return nil
}

// Delete prompts for a recording id and removes the recording.
func (a *App) Delete(ctx context.Context) error {
	id, err := getID(a.reader, "Enter recording id to delete", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if err := a.recordings.Delete(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Recording %d deleted.\n", id)
	return nil
}
