package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/encounter"
	"github.com/milk9111/bossfight/pool"
	"golang.org/x/image/colornames"
)

type burst struct {
	x, y      float32
	radius    float32
	frames    int
	maxFrames int
	clr       color.RGBA
}

// Bursts are the expanding rings drawn where ships, escort units and the
// boss blow up. They live only in the front end.
type Bursts struct {
	live []*burst
	pool *pool.Pool[burst]
}

func NewBursts() *Bursts {
	return &Bursts{pool: pool.New[burst](nil)}
}

func (b *Bursts) spawn(x, y int, radius float32, frames int, clr color.RGBA) {
	v := b.pool.Acquire()
	*v = burst{x: float32(x), y: float32(y), radius: radius, frames: frames, maxFrames: frames, clr: clr}
	b.live = append(b.live, v)
}

// Add turns encounter events into bursts.
func (b *Bursts) Add(evts []ecs.Event) {
	for _, evt := range evts {
		switch d := evt.Data.(type) {
		case encounter.KillEvent:
			b.spawn(d.X+12, d.Y+8, 18, 20, colornames.Seagreen)
		case encounter.ShipEvent:
			if evt.Type == encounter.EventPlayerHit {
				b.spawn(d.X+13, d.Y+8, 26, 30, colornames.Dodgerblue)
			}
		case encounter.BossHitEvent:
			switch {
			case evt.Type == encounter.EventBossDefeated:
				b.spawn(d.X, d.Y, 80, 60, colornames.Crimson)
			case d.Shielded:
				b.spawn(d.X, d.Y, 10, 8, colornames.Deepskyblue)
			default:
				b.spawn(d.X, d.Y, 16, 12, colornames.Orange)
			}
		}
	}
}

func (b *Bursts) Update() {
	n := 0
	for _, v := range b.live {
		v.frames--
		if v.frames <= 0 {
			b.pool.Release(v)
			continue
		}
		b.live[n] = v
		n++
	}
	clear(b.live[n:])
	b.live = b.live[:n]
}

func (b *Bursts) Draw(screen *ebiten.Image) {
	for _, v := range b.live {
		t := 1 - float32(v.frames)/float32(v.maxFrames)
		clr := v.clr
		clr.A = uint8(255 * (1 - t))
		vector.StrokeCircle(screen, v.x, v.y, v.radius*t+2, 2, clr, true)
	}
}
