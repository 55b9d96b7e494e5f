package constants

import "time"

// Audio Engine Timing
const (
	// AudioSampleRate is the speaker output rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between consecutive cues
	MinSoundGap = 50 * time.Millisecond
)

// Cue Sounds
const (
	ReflectSoundDuration = 60 * time.Millisecond
	ReflectFreqX         = 660.0
	ReflectFreqY         = 880.0

	ContactSoundDuration = 30 * time.Millisecond
	ContactFreq          = 220.0

	// CueVolume is the beep effects.Gain applied to cues (gain 0 = unchanged)
	CueVolume = -0.6
)
