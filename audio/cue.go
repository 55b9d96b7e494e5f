package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/drift-arena/constants"
)

// ReflectCue builds the reflection blip: a sine at the axis pitch, faded out, gain-shaped
func ReflectCue(sr beep.SampleRate, axis Axis) (beep.Streamer, error) {
	freq := constants.ReflectFreqX
	if axis == AxisY {
		freq = constants.ReflectFreqY
	}
	return tone(sr, freq, constants.ReflectSoundDuration)
}

// ContactCue builds the low tick for a ball contact
func ContactCue(sr beep.SampleRate) (beep.Streamer, error) {
	return tone(sr, constants.ContactFreq, constants.ContactSoundDuration)
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	n := sr.N(d)
	shaped := &fadeOut{streamer: beep.Take(n, sine), total: n}
	return &effects.Gain{Streamer: shaped, Gain: constants.CueVolume}, nil
}

// fadeOut applies a linear release over the whole cue so it ends without a click
type fadeOut struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := 1 - float64(f.pos)/float64(f.total)
		env = math.Max(env, 0)
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
