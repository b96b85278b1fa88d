package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/credentials"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

// PDF kinds served by the backend.
const (
	KindTranscript = "transcript"
	KindSummary    = "summary"
)

var errInvalidKind = fmt.Errorf("asset kind must be %q or %q", KindTranscript, KindSummary)

// Service fetches protected binary resources using the current credential.
type Service struct {
	api          api.Client
	creds        credentials.Store
	blobs        BlobStore
	downloadsDir string
	log          logging.Logger
}

func NewService(client api.Client, creds credentials.Store, blobs BlobStore, downloadsDir string, log logging.Logger) *Service {
	return &Service{
		api:          client,
		creds:        creds,
		blobs:        blobs,
		downloadsDir: downloadsDir,
		log:          log,
	}
}

// FetchAudio retrieves a recording's audio bytes and materializes them as a
// playable local object. The caller owns the handle and must revoke it when
// the player is done with it. With no credential present, no call is made.
func (s *Service) FetchAudio(ctx context.Context, recordingID int64) (*Handle, error) {
	if err := s.requireCredential(ctx); err != nil {
		return nil, err
	}

	data, err := s.api.FetchAudio(ctx, recordingID)
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}

	return s.blobs.Materialize(fmt.Sprintf("recording-%d-audio", recordingID), data)
}

// Download fetches a PDF of the given kind and saves it under the downloads
// directory with the given filename (defaulting to "<kind>.pdf"). On any
// failure no file is written. The temporary blob reference is revoked
// immediately after the save so repeated downloads cannot accumulate
// references.
func (s *Service) Download(ctx context.Context, recordingID int64, kind, filename string) (string, error) {
	if kind != KindTranscript && kind != KindSummary {
		return "", errInvalidKind
	}
	if err := s.requireCredential(ctx); err != nil {
		return "", err
	}

	data, err := s.api.FetchPDF(ctx, recordingID, kind)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename = kind + ".pdf"
	}

	handle, err := s.blobs.Materialize(filename, data)
	if err != nil {
		return "", err
	}

	dest, err := s.save(handle, filename)

	if rerr := s.blobs.Revoke(handle); rerr != nil {
		s.log.Error(ctx, "failed to revoke blob after download", "err", rerr)
	}

	if err != nil {
		return "", err
	}
	return dest, nil
}

// requireCredential rejects the operation up front when the client is
// unauthenticated; the caller should prompt for a re-login.
func (s *Service) requireCredential(ctx context.Context) error {
	token, err := s.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read credential: %w", err)
	}
	if token == "" {
		return api.ErrUnauthorized
	}
	return nil
}

func (s *Service) save(h *Handle, filename string) (string, error) {
	if err := os.MkdirAll(s.downloadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	data, err := os.ReadFile(h.Path)
	if err != nil {
		return "", fmt.Errorf("read blob: %w", err)
	}

	dest := filepath.Join(s.downloadsDir, filepath.Base(filename))
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("save download: %w", err)
	}
	return dest, nil
}
