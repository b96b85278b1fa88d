package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

var (
	audioExtensions = map[string]bool{
		".wav": true, ".mp3": true, ".m4a": true, ".webm": true, ".ogg": true,
	}
	textExtensions = map[string]bool{
		".txt": true,
	}
)

type sendFunc func(ctx context.Context, file io.Reader, size int64, filename, title string, progress api.ProgressFunc) (int64, error)

// RecordingService manages the recording catalog and file uploads.
type RecordingService struct {
	api api.Client
	log logging.Logger
}

func NewRecordingService(client api.Client, log logging.Logger) *RecordingService {
	return &RecordingService{api: client, log: log}
}

// List returns the signed-in user's recordings, newest first as served.
func (s *RecordingService) List(ctx context.Context) ([]models.Recording, error) {
	return s.api.ListRecordings(ctx)
}

func (s *RecordingService) Get(ctx context.Context, id int64) (*models.Recording, error) {
	return s.api.GetRecording(ctx, id)
}

func (s *RecordingService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteRecording(ctx, id)
}

// UploadAudio sends a local audio file for transcription. With an empty
// title, one is derived from the filename.
func (s *RecordingService) UploadAudio(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error) {
	return s.upload(ctx, path, title, progress, audioExtensions, s.api.UploadAudio)
}

// UploadText sends a pre-existing transcript as plain text for summarization.
func (s *RecordingService) UploadText(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error) {
	return s.upload(ctx, path, title, progress, textExtensions, s.api.UploadText)
}

func (s *RecordingService) upload(ctx context.Context, path, title string, progress api.ProgressFunc, allowed map[string]bool, send sendFunc) (int64, error) {
	filename := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowed[ext] {
		return 0, fmt.Errorf("unsupported file type %q", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}

	if title == "" {
		title = TitleFromFilename(filename)
	}

	id, err := send(ctx, file, info.Size(), filename, title, progress)
	if err != nil {
		return 0, err
	}
	s.log.Debug(ctx, "upload accepted", "recording_id", id, "file", filename)
	return id, nil
}

// TitleFromFilename turns "team_sync-2024.wav" into "team sync 2024".
func TitleFromFilename(filename string) string {
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	return strings.Join(strings.Fields(title), " ")
}
