// Package api implements the REST client for the MeetingMind backend,
// including the authenticated request gateway.
package api

import (
	"context"
	"io"

	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
)

// AuthResult is the payload of a successful login or register call.
type AuthResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// ProgressFunc reports upload progress as a percentage in [0,100].
type ProgressFunc func(percent int)

// Client is the outbound interface to the backend. All methods honor context
// cancellation. Authenticated endpoints rely on the gateway transport to
// attach the credential; callers never pass tokens explicitly.
type Client interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	Me(ctx context.Context) (*models.User, error)

	ListRecordings(ctx context.Context) ([]models.Recording, error)
	GetRecording(ctx context.Context, id int64) (*models.Recording, error)
	DeleteRecording(ctx context.Context, id int64) error

	StartSession(ctx context.Context, title string) (string, error)
	StopSession(ctx context.Context, sessionID string) (*models.Recording, error)
	Transcript(ctx context.Context, sessionID string) (*models.TranscriptSnapshot, error)

	FetchAudio(ctx context.Context, id int64) ([]byte, error)
	FetchPDF(ctx context.Context, id int64, kind string) ([]byte, error)

	UploadAudio(ctx context.Context, file io.Reader, size int64, filename, title string, progress ProgressFunc) (int64, error)
	UploadText(ctx context.Context, file io.Reader, size int64, filename, title string, progress ProgressFunc) (int64, error)
}
