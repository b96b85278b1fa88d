package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Record(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Play(ctx context.Context) error
	Download(ctx context.Context) error
	Upload(ctx context.Context) error
	UploadTranscript(ctx context.Context) error
	Delete(ctx context.Context) error
	MicTest(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the MeetingMind CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mm> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: record, (l)ist, show, play, download, upload, uploadtext, delete, mictest, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, mictest, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "record", "rec":
			_ = a.Record(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "play":
			_ = a.Play(ctx)

		case "download", "dl":
			_ = a.Download(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "uploadtext":
			_ = a.UploadTranscript(ctx)

		case "delete", "del":
			_ = a.Delete(ctx)

		case "mictest":
			_ = a.MicTest(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
