package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// newTone returns a streamer of the given wave lasting d.
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &tone{freq: freq, length: rate.N(d), wave: wave, rate: rate, rng: rng}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear attack and release to a streamer of known length.
type fade struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.position < f.attack {
			g = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; f.release > 0 && left < f.release {
			g = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// gain scales a streamer linearly; zero or less is silent.
func gain(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// shaped is a faded tone.
func shaped(freq float64, d time.Duration, wave Wave, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newFade(newTone(freq, d, wave, rate, rng), d, 5*time.Millisecond, d/2, rate)
}

// laneFreqs holds one pitch per lane, top lane highest. Lanes beyond the
// table reuse the lowest pitch.
var laneFreqs = []float64{987.77, 880.00, 783.99, 698.46, 659.25, 587.33, 523.25}

func laneFreq(lane int) float64 {
	if lane < 0 {
		lane = 0
	}
	if lane >= len(laneFreqs) {
		lane = len(laneFreqs) - 1
	}
	return laneFreqs[lane]
}
