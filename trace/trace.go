package trace

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/drift-arena/sim"
	"github.com/lixenwraith/drift-arena/vmath"
)

// Version is bumped whenever Header or Frame change shape
const Version = 1

var magic = [4]byte{'D', 'R', 'F', 'T'}

var (
	ErrBadMagic   = errors.New("trace: not a drift trace")
	ErrBadVersion = errors.New("trace: unsupported version")
	ErrClosed     = errors.New("trace: writer closed")
)

// Header opens every trace
type Header struct {
	Version  int         `msgpack:"v"`
	Radius   float64     `msgpack:"r"`
	Faces    int         `msgpack:"n"`
	TickRate int         `msgpack:"hz"`
	Viewport vmath.Vec2F `msgpack:"vp"`
}

// Frame is one recorded tick
type Frame struct {
	Tick         uint64      `msgpack:"t"`
	DT           float64     `msgpack:"dt"`
	Viewport     vmath.Vec2F `msgpack:"vp"`
	Displacement vmath.Vec2F `msgpack:"d"`
	Center       vmath.Vec2F `msgpack:"c"`
	Velocity     vmath.Vec2F `msgpack:"v"`
	ReflectX     bool        `msgpack:"rx"`
	ReflectY     bool        `msgpack:"ry"`
	Ball         vmath.Vec2F `msgpack:"b"`
	Contacts     int         `msgpack:"k"`
}

// FrameFromStep flattens a step result
func FrameFromStep(r sim.StepResult) Frame {
	return Frame{
		Tick:         r.Tick,
		DT:           r.DT,
		Viewport:     r.Viewport,
		Displacement: r.Drift.Displacement,
		Center:       r.Drift.State.Position,
		Velocity:     r.Drift.State.Velocity,
		ReflectX:     r.Drift.ReflectedX,
		ReflectY:     r.Drift.ReflectedY,
		Ball:         r.Ball.Position,
		Contacts:     r.Contacts,
	}
}

// Writer streams frames as msgpack values inside a zstd stream
type Writer struct {
	zw  *zstd.Encoder
	enc *msgpack.Encoder
}

// NewWriter writes the magic and header; the caller keeps ownership of w
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	if _, err := w.Write(magic[:]); err != nil {
		return nil, fmt.Errorf("trace: write magic: %w", err)
	}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("trace: create zstd writer: %w", err)
	}

	h.Version = Version
	enc := msgpack.NewEncoder(zw)
	if err := enc.Encode(h); err != nil {
		zw.Close()
		return nil, fmt.Errorf("trace: encode header: %w", err)
	}
	return &Writer{zw: zw, enc: enc}, nil
}

func (w *Writer) Write(f Frame) error {
	if w.zw == nil {
		return ErrClosed
	}
	if err := w.enc.Encode(f); err != nil {
		return fmt.Errorf("trace: encode frame %d: %w", f.Tick, err)
	}
	return nil
}

// Close flushes the compressed stream; it does not close the underlying writer
func (w *Writer) Close() error {
	if w.zw == nil {
		return nil
	}
	err := w.zw.Close()
	w.zw = nil
	return err
}

// Reader decodes a trace written by Writer
type Reader struct {
	zr     *zstd.Decoder
	dec    *msgpack.Decoder
	header Header
}

func NewReader(r io.Reader) (*Reader, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if !bytes.Equal(m[:], magic[:]) {
		return nil, ErrBadMagic
	}

	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("trace: create zstd reader: %w", err)
	}
	rd := &Reader{zr: zr, dec: msgpack.NewDecoder(zr)}
	if err := rd.dec.Decode(&rd.header); err != nil {
		zr.Close()
		return nil, fmt.Errorf("trace: decode header: %w", err)
	}
	if rd.header.Version != Version {
		zr.Close()
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, rd.header.Version)
	}
	return rd, nil
}

func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next frame, or io.EOF after the last one
func (r *Reader) Next() (Frame, error) {
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("trace: decode frame: %w", err)
	}
	return f, nil
}

// Close releases the decoder
func (r *Reader) Close() {
	r.zr.Close()
}

// ReadAll decodes every remaining frame
func (r *Reader) ReadAll() ([]Frame, error) {
	var frames []Frame
	for {
		f, err := r.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
