package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer plays sounds through beep's speaker. Only one speaker may be
// initialised per process.
type SpeakerPlayer struct{}

func NewSpeakerPlayer() (*SpeakerPlayer, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sfx: init speaker: %w", err)
	}
	return &SpeakerPlayer{}, nil
}

func (p *SpeakerPlayer) Play(s Sound) {
	if st := Streamer(s, SampleRate); st != nil {
		speaker.Play(st)
	}
}

func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
