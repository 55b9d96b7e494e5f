package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/drift-arena/constants"
	"github.com/lixenwraith/drift-arena/sim"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// Axis identifies which viewport edge pair triggered a reflection
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// SoundManager plays short cues for drift reflections and ball contacts
// All methods are safe before Initialize and after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	device      bool // speaker owns the mixer; lock it before touching the mixer
	lastCue     time.Time
	now         func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.device = true
	return nil
}

// Cleanup silences every queued cue
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.device {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	} else {
		sm.mixer.Clear()
	}

	// beep has no speaker Close; an empty mixer plays silence
	sm.initialized = false
}

// PlayReflect plays the blip for a viewport reflection on axis
func (sm *SoundManager) PlayReflect(axis Axis) {
	sm.play(reflectBuilder(axis))
}

// PlayCorner plays both axis blips together, sharing one throttle slot
func (sm *SoundManager) PlayCorner() {
	sm.play(reflectBuilder(AxisX), reflectBuilder(AxisY))
}

// PlayContact plays the tick for a ball hitting the ring
func (sm *SoundManager) PlayContact() {
	sm.play(func() (beep.Streamer, error) { return ContactCue(sampleRate) })
}

// Observe maps a step result onto cues; reflections win over contacts in the same tick
func (sm *SoundManager) Observe(r sim.StepResult) {
	switch {
	case r.Drift.ReflectedX && r.Drift.ReflectedY:
		sm.PlayCorner()
	case r.Drift.ReflectedX:
		sm.PlayReflect(AxisX)
	case r.Drift.ReflectedY:
		sm.PlayReflect(AxisY)
	case r.Contacts > 0:
		sm.PlayContact()
	}
}

func reflectBuilder(axis Axis) func() (beep.Streamer, error) {
	return func() (beep.Streamer, error) { return ReflectCue(sampleRate, axis) }
}

// Pending returns the number of cues still queued in the mixer
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.device {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}

func (sm *SoundManager) play(builds ...func() (beep.Streamer, error)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	now := sm.now()
	if !sm.lastCue.IsZero() && now.Sub(sm.lastCue) < constants.MinSoundGap {
		return
	}

	streams := make([]beep.Streamer, 0, len(builds))
	for _, build := range builds {
		s, err := build()
		if err != nil {
			return
		}
		streams = append(streams, s)
	}
	sm.lastCue = now

	if sm.device {
		speaker.Lock()
		sm.mixer.Add(streams...)
		speaker.Unlock()
		return
	}
	sm.mixer.Add(streams...)
}
