// Package models defines the client-side view of backend entities.
package models

import "fmt"

// Recording statuses reported by the backend.
const (
	StatusRecording  = "recording"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// StatusClass is the display grouping derived from a recording status.
type StatusClass int

const (
	StatusClassFailure StatusClass = iota
	StatusClassInProgress
	StatusClassSuccess
)

// Recording is a persisted capture, read-only from the client's perspective.
// The *_path fields are opaque existence flags: a non-empty value is the sole
// authority for whether the corresponding download or playback affordance is
// offered. The client never interprets them as paths.
type Recording struct {
	ID                int64   `json:"id"`
	SessionID         string  `json:"session_id"`
	Title             string  `json:"title"`
	Status            string  `json:"status"`
	Duration          float64 `json:"duration"`
	CreatedAt         string  `json:"created_at"`
	Transcript        string  `json:"transcript,omitempty"`
	Summary           string  `json:"summary,omitempty"`
	AudioFilePath     string  `json:"audio_file_path,omitempty"`
	TranscriptPDFPath string  `json:"transcript_pdf_path,omitempty"`
	SummaryPDFPath    string  `json:"summary_pdf_path,omitempty"`
}

// HasAudio reports whether audio playback should be offered.
func (r *Recording) HasAudio() bool { return r.AudioFilePath != "" }

// HasTranscriptPDF reports whether the transcript PDF download should be offered.
func (r *Recording) HasTranscriptPDF() bool { return r.TranscriptPDFPath != "" }

// HasSummaryPDF reports whether the summary PDF download should be offered.
func (r *Recording) HasSummaryPDF() bool { return r.SummaryPDFPath != "" }

// DisplayClass groups a status for display coloring: completed is a success,
// recording/processing are in progress, anything else is a failure.
func (r *Recording) DisplayClass() StatusClass {
	switch r.Status {
	case StatusCompleted:
		return StatusClassSuccess
	case StatusRecording, StatusProcessing:
		return StatusClassInProgress
	default:
		return StatusClassFailure
	}
}

// FormatDuration renders a duration in seconds as "m:ss", or "N/A" when the
// backend has not reported one.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return "N/A"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// TranscriptSnapshot is the latest polled full-text transcript for a live
// session. Each successful poll replaces the previous snapshot wholesale; the
// server is authoritative for transcript accumulation.
type TranscriptSnapshot struct {
	FullText     string `json:"full_text"`
	WordCount    int    `json:"word_count"`
	SegmentCount int    `json:"segment_count"`
}
