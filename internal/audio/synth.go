package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate of every synthesized cue.
const SampleRate = beep.SampleRate(44100)

// Wave defines oscillator shapes.
type Wave int

const (
	Sine Wave = iota
	Square
	Saw
	Noise
)

// oscillator sweeps linearly from freq to endFreq over its duration.
type oscillator struct {
	freq, endFreq float64
	phase         float64
	position      int
	total         int
	wave          Wave
	rate          beep.SampleRate
	rng           *rand.Rand
}

func newOscillator(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{
		freq:    freq,
		endFreq: endFreq,
		total:   rate.N(d),
		wave:    wave,
		rate:    rate,
		rng:     rand.New(rand.NewPCG(uint64(freq), uint64(d))),
	}
}

// tone is a fixed-frequency oscillator.
func tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	return newOscillator(freq, freq, d, wave, SampleRate)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case Sine:
			val = math.Sin(2 * math.Pi * o.phase)
		case Square:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case Saw:
			val = 2 * (o.phase - 0.5)
		case Noise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential or linear release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	decay    float64 // Exponential decay rate per second, 0 for linear release
	release  int
	rate     beep.SampleRate
}

func shape(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
		total:    SampleRate.N(d),
		rate:     SampleRate,
	}
}

func decaying(s beep.Streamer, d time.Duration, rate float64) beep.Streamer {
	return &envelope{streamer: s, total: SampleRate.N(d), decay: rate, rate: SampleRate}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.decay > 0 {
			vol *= math.Exp(-e.decay * float64(e.position) / float64(e.rate))
		} else if start := e.total - e.release; e.release > 0 && e.position >= start {
			vol *= float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain wraps s in a linear volume; 0 or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func laserSound() beep.Streamer {
	d := 160 * time.Millisecond
	return gain(shape(newOscillator(1400, 280, d, Square, SampleRate), d, 2*time.Millisecond, 60*time.Millisecond), 0.25*0.4)
}

func explosionSound() beep.Streamer {
	d := 450 * time.Millisecond
	return gain(beep.Mix(
		decaying(tone(0, d, Noise), d, 7),
		gain(decaying(newOscillator(90, 40, d, Sine, SampleRate), d, 5), 0.8),
	), 0.5*0.6)
}

func enemyExplosionSound() beep.Streamer {
	d := 260 * time.Millisecond
	return gain(beep.Mix(
		decaying(tone(0, d, Noise), d, 12),
		gain(decaying(newOscillator(220, 80, d, Saw, SampleRate), d, 10), 0.4),
	), 0.5*0.6)
}

// musicSound is a short minor arpeggio over a bass note, looped by the player.
func musicSound() beep.Streamer {
	step := 250 * time.Millisecond
	notes := []float64{220.00, 261.63, 329.63, 261.63, 196.00, 246.94, 293.66, 246.94,
		174.61, 220.00, 261.63, 220.00, 196.00, 246.94, 293.66, 392.00}
	bass := []float64{110.00, 98.00, 87.31, 98.00}

	lead := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		lead[i] = shape(tone(f, step, Square), step, 5*time.Millisecond, 120*time.Millisecond)
	}
	low := make([]beep.Streamer, len(bass))
	for i, f := range bass {
		d := 4 * step
		low[i] = shape(tone(f, d, Sine), d, 20*time.Millisecond, 200*time.Millisecond)
	}

	return gain(beep.Mix(gain(beep.Seq(lead...), 0.35), gain(beep.Seq(low...), 0.6)), 0.3)
}
