package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/automoto/brawl-arena/shared/messages"
	"github.com/vmihailenco/msgpack/v5"
)

// Recorder appends HUD frames to a msgpack stream, one value per tick.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

func (r *Recorder) Record(s *messages.HUDState) error {
	if err := r.enc.Encode(s); err != nil {
		return fmt.Errorf("record frame %d: %w", s.Frame, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames have been written.
func (r *Recorder) Frames() int { return r.frames }

// ReadRecording decodes every frame of a stream written by Recorder.
func ReadRecording(rd io.Reader) ([]*messages.HUDState, error) {
	dec := msgpack.NewDecoder(rd)
	var frames []*messages.HUDState
	for {
		var s messages.HUDState
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("read recording at frame %d: %w", len(frames), err)
		}
		frames = append(frames, &s)
	}
}
