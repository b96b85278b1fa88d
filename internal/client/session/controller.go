// Package session implements the live recording session lifecycle: permission
// probing, the server-tracked session, transcript polling, and the handoff to
// the detail view once the session finalizes.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kushagra128/meetingmind-cli/internal/client/api"
	"github.com/Kushagra128/meetingmind-cli/internal/client/audio"
	"github.com/Kushagra128/meetingmind-cli/internal/logging"
)

// State of the session controller.
type State int

const (
	StateIdle State = iota
	StateRequestingPermission
	StateStarting
	StateActive
	StateStopping
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequestingPermission:
		return "requesting-permission"
	case StateStarting:
		return "starting"
	case StateActive:
		return "active"
	case StateStopping:
		return "stopping"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

var (
	// ErrBusy is returned by Start when a session is already starting or
	// active; Starting itself is the mutual-exclusion guard against
	// re-entrant starts.
	ErrBusy = errors.New("recording already in progress")

	// ErrNoActiveSession is returned by Stop when no session id is held.
	// The call is a no-op: no network call is issued and no state changes.
	ErrNoActiveSession = errors.New("no active recording session")
)

// NavTarget is where the caller should navigate after a stop: the finalized
// recording's detail view when RecordingID is set, the listing otherwise.
type NavTarget struct {
	RecordingID int64
}

// Controller drives a single live recording session. It owns the transcript
// polling loop and guarantees that no poll result is applied once the session
// has left the Active state, even if a poll was already in flight.
type Controller struct {
	api      api.Client
	prober   audio.Prober
	log      logging.Logger
	interval time.Duration
	now      func() time.Time

	mu         sync.Mutex
	state      State
	lastErr    error
	sessionID  string
	transcript string
	cancelPoll context.CancelFunc

	onTranscript func(string)
	onState      func(State)
}

type Option func(*Controller)

// WithInterval overrides the transcript poll interval.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithClock overrides the clock used for title generation.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func New(client api.Client, prober audio.Prober, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		api:      client,
		prober:   prober,
		log:      log,
		interval: 2 * time.Second,
		now:      time.Now,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnTranscript registers a callback fired with the full transcript text each
// time a poll result is applied.
func (c *Controller) OnTranscript(fn func(text string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTranscript = fn
}

// OnStateChange registers a callback fired on every state transition.
func (c *Controller) OnStateChange(fn func(s State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onState = fn
}

// Start acquires microphone permission, starts a server-side session, and
// begins the transcript polling loop. A failed attempt leaves the controller
// in Terminated; Start may be invoked again to retry from scratch.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle && c.state != StateTerminated {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateRequestingPermission
	c.lastErr = nil
	c.transcript = ""
	cb := c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(StateRequestingPermission)
	}

	dev, err := c.prober.RequestAccess(ctx)
	if err != nil {
		// terminal for this attempt, and no server call is made
		failure := fmt.Errorf("microphone access is required to record audio: %w", err)
		c.fail(failure)
		return failure
	}
	// The server owns actual capture; the device is held only long enough
	// to know access works.
	if rerr := dev.Release(); rerr != nil {
		c.log.Warn(ctx, "failed to release capture device", "err", rerr)
	}

	c.setState(StateStarting)

	title := "Recording " + c.now().Format("2006-01-02 15:04:05")
	sid, err := c.api.StartSession(ctx, title)
	if err != nil {
		c.log.Error(ctx, "start session failed", "err", err)
		surfaced := err
		var serr *api.ServerError
		if !errors.As(err, &serr) {
			surfaced = errors.New("failed to start recording")
		}
		c.fail(surfaced)
		return surfaced
	}

	pollCtx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.state != StateStarting {
		// torn down while the start call was in flight
		c.mu.Unlock()
		cancel()
		return nil
	}
	c.sessionID = sid
	c.state = StateActive
	c.cancelPoll = cancel
	cb = c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(StateActive)
	}

	c.log.Info(ctx, "recording session started", "session_id", sid, "title", title)
	go c.pollLoop(pollCtx, sid)
	return nil
}

// Stop ends the session. It is a no-op when no session id is held or the
// session is already stopping. Polling is cancelled synchronously before the
// stop call is issued so no further poll can race with its effects.
//
// The returned NavTarget is valid even on error: a failed stop still sends
// the caller back to the listing, since the session's server-side fate is
// unknown and must be re-derived by fetching state, not by a local retry.
func (c *Controller) Stop(ctx context.Context) (NavTarget, error) {
	c.mu.Lock()
	if c.state != StateActive || c.sessionID == "" {
		c.mu.Unlock()
		return NavTarget{}, ErrNoActiveSession
	}
	c.state = StateStopping
	c.cancelPolling()
	sid := c.sessionID
	cb := c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(StateStopping)
	}

	rec, err := c.api.StopSession(ctx, sid)

	c.mu.Lock()
	c.state = StateTerminated
	c.sessionID = ""
	if err != nil {
		c.lastErr = err
	}
	cb = c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(StateTerminated)
	}

	if err != nil {
		c.log.Error(ctx, "stop session failed", "session_id", sid, "err", err)
		return NavTarget{}, err
	}
	if rec != nil && rec.ID != 0 {
		return NavTarget{RecordingID: rec.ID}, nil
	}
	return NavTarget{}, nil
}

// Close tears the controller down from any state. Polling is cancelled as
// part of teardown; no poll fires afterwards. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelPolling()
	changed := c.state != StateTerminated
	c.state = StateTerminated
	cb := c.onState
	c.mu.Unlock()
	if changed && cb != nil {
		cb(StateTerminated)
	}
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Transcript returns the latest applied transcript snapshot.
func (c *Controller) Transcript() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript
}

// Err returns the error that terminated the last attempt, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// cancelPolling cancels the polling loop and clears the handle so repeated
// stop/teardown calls stay idempotent. Callers must hold c.mu.
func (c *Controller) cancelPolling() {
	if c.cancelPoll != nil {
		c.cancelPoll()
		c.cancelPoll = nil
	}
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	cb := c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.state = StateTerminated
	c.lastErr = err
	cb := c.onState
	c.mu.Unlock()
	if cb != nil {
		cb(StateTerminated)
	}
}

func (c *Controller) pollLoop(ctx context.Context, sid string) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.poll(ctx, sid)
		}
	}
}

// poll fetches the current transcript and applies it. Failures are transient:
// they are logged and the loop keeps running. The snapshot replaces the
// previous text wholesale; the server is authoritative for accumulation.
// A state check guards application, since a tick may already be in flight
// when the session stops.
func (c *Controller) poll(ctx context.Context, sid string) {
	snap, err := c.api.Transcript(ctx, sid)
	if err != nil {
		c.log.Warn(ctx, "transcript poll failed", "session_id", sid, "err", err)
		return
	}
	if snap == nil {
		return
	}

	c.mu.Lock()
	if c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.transcript = snap.FullText
	cb := c.onTranscript
	c.mu.Unlock()
	if cb != nil {
		cb(snap.FullText)
	}
}
