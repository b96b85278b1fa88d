package cli

import (
	"context"
	"fmt"

	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
)

func statusLabel(r *models.Recording) string {
	switch r.DisplayClass() {
	case models.StatusClassSuccess:
		return "done"
	case models.StatusClassInProgress:
		return "in progress"
	default:
		return "failed"
	}
}

// List prints the user's recordings, one per line.
func (a *App) List(ctx context.Context) error {
	recs, err := a.recordings.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No recordings yet.")
		return nil
	}

	for i := range recs {
		r := &recs[i]
		fmt.Fprintf(a.out, "%4d  %-40s  %-11s  %8s  %s\n",
			r.ID, r.Title, statusLabel(r), models.FormatDuration(r.Duration), r.CreatedAt)
	}
	return nil
}
