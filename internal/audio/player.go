// Package audio plays short synthesized cues for game events through the
// system speaker.
package audio

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 32
)

// Player is a game.EventSink that turns events into sounds on a background
// goroutine. Emit never blocks: when the queue is full the event is dropped.
type Player struct {
	cfg    config.AudioConfig
	rate   beep.SampleRate
	play   func(beep.Streamer)
	stop   func()
	rng    *rand.Rand
	events chan game.Event

	dropped atomic.Uint64
	wg      sync.WaitGroup

	mu     sync.RWMutex // guards closed against sends in flight
	closed bool
}

// New opens the speaker and starts the player. When audio is disabled or the
// speaker cannot be opened the returned player is silent; the game runs the
// same either way.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		return &Player{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return &Player{}
	}
	return newPlayer(cfg, sampleRate, time.Now().UnixNano(), func(s beep.Streamer) {
		speaker.Play(s)
	}, speaker.Clear)
}

func newPlayer(cfg config.AudioConfig, rate beep.SampleRate, seed int64, play func(beep.Streamer), stop func()) *Player {
	p := &Player{
		cfg:    cfg,
		rate:   rate,
		play:   play,
		stop:   stop,
		rng:    rand.New(rand.NewSource(seed)),
		events: make(chan game.Event, queueSize),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Emit queues an event for playback. It is safe to call concurrently with
// Close; events emitted after Close are dropped.
func (p *Player) Emit(e game.Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.events == nil || p.closed {
		return
	}
	select {
	case p.events <- e:
	default:
		p.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (p *Player) Dropped() uint64 {
	return p.dropped.Load()
}

// Close stops the player and silences anything still playing.
// Events emitted after Close are dropped.
func (p *Player) Close() {
	p.mu.Lock()
	if p.events == nil || p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.events)
	p.mu.Unlock()

	p.wg.Wait()
	if p.stop != nil {
		p.stop()
	}
}

func (p *Player) run() {
	defer p.wg.Done()
	for e := range p.events {
		if s := p.sound(e); s != nil {
			p.play(s)
		}
	}
}

// sound builds the streamer for one event. Only the run goroutine calls it.
func (p *Player) sound(e game.Event) beep.Streamer {
	r := p.rate
	var s beep.Streamer

	switch e.Kind {
	case game.EventTeleport:
		s = shaped(laneFreq(e.Lane), 60*time.Millisecond, WaveSquare, r, p.rng)

	case game.EventCollision:
		s = beep.Mix(
			shaped(110, 350*time.Millisecond, WaveSaw, r, p.rng),
			gain(shaped(0, 250*time.Millisecond, WaveNoise, r, p.rng), 0.5),
		)

	case game.EventEnemySpawned:
		s = gain(shaped(0, 40*time.Millisecond, WaveNoise, r, p.rng), 0.15)

	case game.EventEnemyEvaded:
		s = shaped(1318.51, 80*time.Millisecond, WaveSine, r, p.rng)
		if p.rng.Float64() < p.cfg.EvadeCueChance {
			s = beep.Seq(s, shaped(1760, 120*time.Millisecond, WaveSine, r, p.rng))
		}

	default:
		return nil
	}

	return gain(s, p.cfg.Volume)
}

var _ game.EventSink = (*Player)(nil)
