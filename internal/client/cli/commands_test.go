package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/assets"
	"github.com/Kushagra128/meetingmind-cli/internal/client/models"
	"github.com/Kushagra128/meetingmind-cli/internal/client/session"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

type fakeAuthRunner struct {
	user     *models.User
	loginErr error
	meErr    error

	logoutCalled bool
}

func (f *fakeAuthRunner) Login(ctx context.Context, username, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}
func (f *fakeAuthRunner) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}
func (f *fakeAuthRunner) Me(ctx context.Context) (*models.User, error) { return f.user, f.meErr }
func (f *fakeAuthRunner) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return nil
}
func (f *fakeAuthRunner) CurrentUser() *models.User { return f.user }
func (f *fakeAuthRunner) Authenticated(ctx context.Context) (bool, error) {
	return f.user != nil, nil
}

type fakeRecRunner struct {
	recs    []models.Recording
	rec     *models.Recording
	getErr  error
	listErr error

	listCalls  int
	getIDs     []int64
	deletedIDs []int64

	uploadID   int64
	uploadErr  error
	lastPath   string
	lastTitle  string
	uploadKind string
}

func (f *fakeRecRunner) List(ctx context.Context) ([]models.Recording, error) {
	f.listCalls++
	return f.recs, f.listErr
}
func (f *fakeRecRunner) Get(ctx context.Context, id int64) (*models.Recording, error) {
	f.getIDs = append(f.getIDs, id)
	return f.rec, f.getErr
}
func (f *fakeRecRunner) Delete(ctx context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}
func (f *fakeRecRunner) UploadAudio(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error) {
	f.lastPath, f.lastTitle, f.uploadKind = path, title, "audio"
	if progress != nil {
		progress(100)
	}
	return f.uploadID, f.uploadErr
}
func (f *fakeRecRunner) UploadText(ctx context.Context, path, title string, progress api.ProgressFunc) (int64, error) {
	f.lastPath, f.lastTitle, f.uploadKind = path, title, "text"
	return f.uploadID, f.uploadErr
}

type fakeAssetRunner struct {
	handle   *assets.Handle
	fetchErr error
	dest     string
	dlErr    error

	lastKind string
}

func (f *fakeAssetRunner) FetchAudio(ctx context.Context, recordingID int64) (*assets.Handle, error) {
	return f.handle, f.fetchErr
}
func (f *fakeAssetRunner) Download(ctx context.Context, recordingID int64, kind, filename string) (string, error) {
	f.lastKind = kind
	return f.dest, f.dlErr
}

type fakeRecorder struct {
	startErr error
	target   session.NavTarget
	stopErr  error

	transcript func(string)
	started    bool
	stopped    bool
	closed     bool
}

func (f *fakeRecorder) OnTranscript(fn func(string))         { f.transcript = fn }
func (f *fakeRecorder) OnStateChange(fn func(session.State)) {}
func (f *fakeRecorder) Start(ctx context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	if f.transcript != nil {
		f.transcript("hello from the meeting")
	}
	return nil
}
func (f *fakeRecorder) Stop(ctx context.Context) (session.NavTarget, error) {
	f.stopped = true
	return f.target, f.stopErr
}
func (f *fakeRecorder) Close() { f.closed = true }

type fakeCapturer struct {
	sample []byte
	err    error
}

func (f *fakeCapturer) Capture(ctx context.Context, seconds int) ([]byte, error) {
	return f.sample, f.err
}

func stubInputs(t *testing.T, lines []string, password string, id int64) {
	t.Helper()
	origST, origGP, origID := getSimpleText, getPassword, getID
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	getID = func(_ *bufio.Reader, _ string, _ io.Writer) (int64, error) { return id, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
		getID = origID
	})
}

func newTestApp(auth *fakeAuthRunner, recs *fakeRecRunner, ast *fakeAssetRunner, rec *fakeRecorder, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	blobs, _ := assets.NewTempStore("")
	a := &App{
		auth:       auth,
		recordings: recs,
		assets:     ast,
		blobs:      blobs,
		player:     assets.NewPlayer(),
		log:        logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reader:     bufio.NewReader(strings.NewReader(input)),
		out:        &out,
	}
	if rec != nil {
		a.newRecorder = func() recorder { return rec }
	}
	return a, &out
}

func TestLoginCommand(t *testing.T) {
	stubInputs(t, []string{"alice"}, "pw", 0)
	auth := &fakeAuthRunner{user: &models.User{Username: "alice"}}
	a, out := newTestApp(auth, &fakeRecRunner{}, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Logged in as alice")
}

func TestLoginCommand_ServerMessageShownVerbatim(t *testing.T) {
	stubInputs(t, []string{"alice"}, "bad", 0)
	auth := &fakeAuthRunner{loginErr: &api.ServerError{StatusCode: 401, Message: "Invalid credentials"}}
	a, out := newTestApp(auth, &fakeRecRunner{}, &fakeAssetRunner{}, nil, "")

	require.Error(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestLogoutCommand(t *testing.T) {
	auth := &fakeAuthRunner{user: &models.User{Username: "alice"}}
	a, out := newTestApp(auth, &fakeRecRunner{}, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, auth.logoutCalled)
	assert.Contains(t, out.String(), "Logged out.")
}

func TestRecordCommand_NavigatesToDetail(t *testing.T) {
	rec := &fakeRecorder{target: session.NavTarget{RecordingID: 42}}
	recs := &fakeRecRunner{rec: &models.Recording{ID: 42, Title: "Standup", Status: models.StatusCompleted}}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, rec, "\n")

	require.NoError(t, a.Record(context.Background()))

	assert.True(t, rec.started)
	assert.True(t, rec.stopped)
	assert.True(t, rec.closed)
	assert.Equal(t, []int64{42}, recs.getIDs)
	assert.Equal(t, 0, recs.listCalls)
	assert.Contains(t, out.String(), "hello from the meeting")
	assert.Contains(t, out.String(), "Standup")
}

func TestRecordCommand_NoRecordingFallsBackToListing(t *testing.T) {
	rec := &fakeRecorder{}
	recs := &fakeRecRunner{}
	a, _ := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, rec, "\n")

	require.NoError(t, a.Record(context.Background()))
	assert.Equal(t, 1, recs.listCalls)
	assert.Empty(t, recs.getIDs)
}

func TestRecordCommand_StopFailureStillShowsListing(t *testing.T) {
	rec := &fakeRecorder{stopErr: errors.New("network down")}
	recs := &fakeRecRunner{}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, rec, "\n")

	require.NoError(t, a.Record(context.Background()))
	assert.Contains(t, out.String(), "network down")
	assert.Equal(t, 1, recs.listCalls)
}

func TestRecordCommand_StartFailure(t *testing.T) {
	rec := &fakeRecorder{startErr: &api.ServerError{StatusCode: 403, Message: "quota exceeded"}}
	recs := &fakeRecRunner{}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, rec, "\n")

	require.Error(t, a.Record(context.Background()))
	assert.Contains(t, out.String(), "quota exceeded")
	assert.False(t, rec.stopped)
}

func TestListCommand(t *testing.T) {
	recs := &fakeRecRunner{recs: []models.Recording{
		{ID: 1, Title: "Planning", Status: models.StatusCompleted, Duration: 65},
		{ID: 2, Title: "Retro", Status: models.StatusProcessing},
	}}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "Planning")
	assert.Contains(t, out.String(), "1:05")
	assert.Contains(t, out.String(), "in progress")
}

func TestShowCommand(t *testing.T) {
	stubInputs(t, nil, "", 7)
	recs := &fakeRecRunner{rec: &models.Recording{
		ID: 7, Title: "Kickoff", Status: models.StatusCompleted,
		Transcript: "we talked", Summary: "a summary",
		AudioFilePath: "x", TranscriptPDFPath: "y",
	}}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.Show(context.Background()))
	s := out.String()
	assert.Contains(t, s, "Kickoff")
	assert.Contains(t, s, "we talked")
	assert.Contains(t, s, "a summary")
	assert.Contains(t, s, "play")
	assert.Contains(t, s, "download transcript")
	assert.NotContains(t, s, "download summary")
}

func TestDeleteCommand(t *testing.T) {
	stubInputs(t, nil, "", 5)
	recs := &fakeRecRunner{}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.Delete(context.Background()))
	assert.Equal(t, []int64{5}, recs.deletedIDs)
	assert.Contains(t, out.String(), "Recording 5 deleted.")
}

func TestDownloadCommand(t *testing.T) {
	stubInputs(t, []string{"summary"}, "", 3)
	ast := &fakeAssetRunner{dest: "/downloads/recording-3-summary.pdf"}
	a, out := newTestApp(&fakeAuthRunner{}, &fakeRecRunner{}, ast, nil, "")

	require.NoError(t, a.Download(context.Background()))
	assert.Equal(t, "summary", ast.lastKind)
	assert.Contains(t, out.String(), "Saved to /downloads/recording-3-summary.pdf")
}

func TestDownloadCommand_StatusCodedFailure(t *testing.T) {
	stubInputs(t, []string{"transcript"}, "", 3)
	ast := &fakeAssetRunner{dlErr: &api.StatusError{StatusCode: 404}}
	a, out := newTestApp(&fakeAuthRunner{}, &fakeRecRunner{}, ast, nil, "")

	require.Error(t, a.Download(context.Background()))
	assert.Contains(t, out.String(), "status 404")
}

func TestDownloadCommand_Unauthorized(t *testing.T) {
	stubInputs(t, []string{"transcript"}, "", 3)
	ast := &fakeAssetRunner{dlErr: api.ErrUnauthorized}
	a, out := newTestApp(&fakeAuthRunner{}, &fakeRecRunner{}, ast, nil, "")

	require.Error(t, a.Download(context.Background()))
	assert.Contains(t, out.String(), "log in again")
}

func TestPlayCommand(t *testing.T) {
	stubInputs(t, nil, "", 4)
	recs := &fakeRecRunner{rec: &models.Recording{ID: 4, AudioFilePath: "x"}}

	blobs, err := assets.NewTempStore(t.TempDir())
	require.NoError(t, err)
	handle, err := blobs.Materialize("recording-4-audio", []byte("wav"))
	require.NoError(t, err)

	ast := &fakeAssetRunner{handle: handle}
	a, out := newTestApp(&fakeAuthRunner{}, recs, ast, nil, "\n")
	a.blobs = blobs

	require.NoError(t, a.Play(context.Background()))
	assert.Contains(t, out.String(), handle.Path)
	assert.Equal(t, 0, blobs.Live())
	assert.False(t, a.player.Playing())
}

func TestPlayCommand_NoAudio(t *testing.T) {
	stubInputs(t, nil, "", 4)
	recs := &fakeRecRunner{rec: &models.Recording{ID: 4}}
	ast := &fakeAssetRunner{}
	a, out := newTestApp(&fakeAuthRunner{}, recs, ast, nil, "\n")

	require.NoError(t, a.Play(context.Background()))
	assert.Contains(t, out.String(), "No audio is available")
}

func TestUploadCommand(t *testing.T) {
	stubInputs(t, []string{"/tmp/sync.wav", "Weekly sync"}, "", 0)
	recs := &fakeRecRunner{uploadID: 11}
	a, out := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.Upload(context.Background()))
	assert.Equal(t, "/tmp/sync.wav", recs.lastPath)
	assert.Equal(t, "Weekly sync", recs.lastTitle)
	assert.Equal(t, "audio", recs.uploadKind)
	assert.Contains(t, out.String(), "100%")
	assert.Contains(t, out.String(), "recording id 11")
}

func TestUploadTranscriptCommand(t *testing.T) {
	stubInputs(t, []string{"/tmp/minutes.txt", ""}, "", 0)
	recs := &fakeRecRunner{uploadID: 12}
	a, _ := newTestApp(&fakeAuthRunner{}, recs, &fakeAssetRunner{}, nil, "")

	require.NoError(t, a.UploadTranscript(context.Background()))
	assert.Equal(t, "text", recs.uploadKind)
}

func TestMicTestCommand(t *testing.T) {
	a, out := newTestApp(&fakeAuthRunner{}, &fakeRecRunner{}, &fakeAssetRunner{}, nil, "")
	a.capturer = &fakeCapturer{sample: []byte{0, 0, 0, 0}}

	require.NoError(t, a.MicTest(context.Background()))
	assert.Contains(t, out.String(), "0%")
	assert.Contains(t, out.String(), "Very low signal")
}

func TestMicTestCommand_Failure(t *testing.T) {
	a, out := newTestApp(&fakeAuthRunner{}, &fakeRecRunner{}, &fakeAssetRunner{}, nil, "")
	a.capturer = &fakeCapturer{err: errors.New("no device")}

	require.Error(t, a.MicTest(context.Background()))
	assert.Contains(t, out.String(), "Mic test failed")
}
