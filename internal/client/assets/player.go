package assets

import "sync"

// Player tracks audio playback state for a materialized audio blob. State
// flips between paused and playing only on explicit user toggles; progress is
// derived read-only from the element's time-advancement events.
type Player struct {
	mu       sync.Mutex
	playing  bool
	progress float64
}

func NewPlayer() *Player {
	return &Player{}
}

// Toggle flips between paused and playing and reports the new playing state.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = !p.playing
	return p.playing
}

// HandleProgress records playback position as a percentage. Events arriving
// with an unknown total duration are ignored.
func (p *Player) HandleProgress(current, total float64) {
	if total <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = current / total * 100
}

// HandleEnded forces the player back to paused at zero progress; playback
// never loops on its own.
func (p *Player) HandleEnded() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.progress = 0
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Player) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}
