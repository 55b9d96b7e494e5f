package trace

import (
	"github.com/lixenwraith/drift-arena/sim"
)

// Recorder adapts a Writer into a sim listener
// The first write error is kept and later frames are dropped
type Recorder struct {
	w      *Writer
	err    error
	frames int
}

func NewRecorder(w *Writer) *Recorder {
	return &Recorder{w: w}
}

func (r *Recorder) Observe(res sim.StepResult) {
	if r.err != nil {
		return
	}
	if r.err = r.w.Write(FrameFromStep(res)); r.err == nil {
		r.frames++
	}
}

// Frames returns the number of frames written
func (r *Recorder) Frames() int {
	return r.frames
}

// Err returns the first write error
func (r *Recorder) Err() error {
	return r.err
}
