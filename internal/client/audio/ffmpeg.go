package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// FFmpegProber opens the default capture device via ffmpeg. Opening the
// device at all is the permission check; the stream is discarded.
type FFmpegProber struct{}

func NewFFmpegProber() *FFmpegProber {
	return &FFmpegProber{}
}

// captureInput returns the ffmpeg input flags for the platform's default
// microphone.
func captureInput() (format, input string) {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation", ":default"
	case "windows":
		return "dshow", "audio=default"
	default:
		return "alsa", "default"
	}
}

// RequestAccess verifies the default capture device can actually be opened.
// ffmpeg exits nonzero when the device is denied or busy, so a bounded open
// is run to completion and its exit status is the probe result. Merely
// launching ffmpeg proves nothing: the process starts fine and then fails
// on the device.
func (p *FFmpegProber) RequestAccess(ctx context.Context) (Device, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg not found", ErrAccessDenied)
	}

	format, input := captureInput()
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", format,
		"-i", input,
		"-t", "0.1",
		"-f", "null", "-",
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}

	return ffmpegDevice{}, nil
}

// Capture records a short mono 16kHz WAV sample and returns its bytes.
func (p *FFmpegProber) Capture(ctx context.Context, seconds int) ([]byte, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg not found", ErrAccessDenied)
	}

	outputPath := filepath.Join(os.TempDir(), "mictest-"+uuid.NewString()+".wav")
	defer os.Remove(outputPath)

	format, input := captureInput()
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-f", format,
		"-i", input,
		"-t", strconv.Itoa(seconds),
		"-ac", "1",
		"-ar", "16000",
		"-y",
		outputPath,
	)
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}

	return os.ReadFile(outputPath)
}

type ffmpegDevice struct{}

// Release is a no-op: the bounded probe capture already terminated.
func (ffmpegDevice) Release() error { return nil }
