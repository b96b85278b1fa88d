// Package cli provides the interactive MeetingMind command-line client.
//
// It wires configuration, the credential store, the REST client, and an
// interactive REPL. Typical flow: log in, record a meeting while the live
// transcript streams in, then browse, play, download, or delete the resulting
// recordings.
//
// Key features:
//   - Login / Register / Logout with a persisted credential
//   - Live recording with transcript polling
//   - List / Show recordings
//   - Audio playback and PDF downloads
//   - Audio and transcript file uploads
//   - Microphone test with a volume meter
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
