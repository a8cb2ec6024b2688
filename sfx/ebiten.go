package sfx

import (
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenPlayer plays pre-rendered clips through an ebiten audio context.
type EbitenPlayer struct {
	ctx    *audio.Context
	clips  map[Sound][]byte
	volume float64
}

// NewEbitenPlayer renders every clip once at the context's sample rate.
func NewEbitenPlayer(ctx *audio.Context, volume float64) *EbitenPlayer {
	p := &EbitenPlayer{ctx: ctx, clips: make(map[Sound][]byte, soundCount), volume: volume}
	rate := SampleRate
	if ctx != nil {
		rate = sampleRateOf(ctx)
	}
	for _, s := range All() {
		p.clips[s] = Render(s, rate)
	}
	return p
}

func (p *EbitenPlayer) Play(s Sound) {
	if p == nil || p.ctx == nil {
		return
	}
	clip := p.clips[s]
	if len(clip) == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(p.volume)
	player.Play()
}

func sampleRateOf(ctx *audio.Context) beep.SampleRate {
	r := ctx.SampleRate()
	if r <= 0 {
		log.Printf("sfx: bad sample rate %d, using %d", r, SampleRate)
		return SampleRate
	}
	return beep.SampleRate(r)
}
