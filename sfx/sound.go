package sfx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/encounter"
)

type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundEscortKilled
	SoundBossHit
	SoundShieldHit
	SoundPickup
	SoundCountdown
	SoundSelect
	SoundAchievement
	SoundPhase2
	soundCount
)

var soundNames = [soundCount]string{
	"shoot", "explosion", "escort_killed", "boss_hit", "shield_hit",
	"pickup", "countdown", "select", "achievement", "phase2",
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return "unknown"
	}
	return soundNames[s]
}

// All lists every sound in declaration order.
func All() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

// Streamer builds a fresh streamer for s at the given rate.
func Streamer(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case SoundShoot:
		return volume(shaped(880, 440, 90*ms, waveSquare, rate), 0.25)
	case SoundExplosion:
		return volume(shaped(0, 0, 450*ms, waveNoise, rate), 0.5)
	case SoundEscortKilled:
		return volume(beep.Mix(
			shaped(0, 0, 180*ms, waveNoise, rate),
			shaped(220, 80, 180*ms, waveSaw, rate),
		), 0.35)
	case SoundBossHit:
		return volume(shaped(160, 90, 140*ms, waveSaw, rate), 0.45)
	case SoundShieldHit:
		return volume(shaped(1320, 1240, 70*ms, waveSine, rate), 0.3)
	case SoundPickup:
		return volume(beep.Seq(
			shaped(987.77, 987.77, 70*ms, waveSquare, rate),
			shaped(1318.51, 1318.51, 140*ms, waveSquare, rate),
		), 0.3)
	case SoundCountdown:
		return volume(beep.Seq(
			shaped(660, 660, 120*ms, waveSine, rate),
			beep.Silence(rate.N(880*ms)),
			shaped(660, 660, 120*ms, waveSine, rate),
			beep.Silence(rate.N(880*ms)),
			shaped(660, 660, 120*ms, waveSine, rate),
			beep.Silence(rate.N(880*ms)),
			shaped(1320, 1320, 300*ms, waveSine, rate),
		), 0.4)
	case SoundSelect:
		return volume(shaped(520, 700, 60*ms, waveSine, rate), 0.3)
	case SoundAchievement:
		return volume(beep.Seq(
			shaped(523.25, 523.25, 90*ms, waveSine, rate),
			shaped(659.25, 659.25, 90*ms, waveSine, rate),
			shaped(783.99, 783.99, 220*ms, waveSine, rate),
		), 0.4)
	case SoundPhase2:
		return volume(shaped(90, 45, 700*ms, waveSaw, rate), 0.5)
	}
	return nil
}

// Render streams s to completion as 16-bit little-endian stereo PCM, the
// layout ebiten's audio players take.
func Render(s Sound, rate beep.SampleRate) []byte {
	st := Streamer(s, rate)
	if st == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := st.Stream(buf)
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, pcm16(smp[0]))
			out = binary.LittleEndian.AppendUint16(out, pcm16(smp[1]))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func pcm16(v float64) uint16 {
	v = math.Max(-1, math.Min(1, v))
	return uint16(int16(v * math.MaxInt16))
}

// ForEvent picks the sound for an encounter event, if it has one.
func ForEvent(evt ecs.Event) (Sound, bool) {
	switch evt.Type {
	case encounter.EventShoot:
		return SoundShoot, true
	case encounter.EventPlayerHit, encounter.EventBossDefeated:
		return SoundExplosion, true
	case encounter.EventEscortDestroyed:
		return SoundEscortKilled, true
	case encounter.EventBossHit:
		if hit, ok := evt.Data.(encounter.BossHitEvent); ok && hit.Shielded {
			return SoundShieldHit, true
		}
		return SoundBossHit, true
	case encounter.EventPickup:
		return SoundPickup, true
	case encounter.EventCountdown:
		return SoundCountdown, true
	case encounter.EventPause, encounter.EventResume:
		return SoundSelect, true
	case encounter.EventAchievement:
		return SoundAchievement, true
	case encounter.EventPhase2:
		return SoundPhase2, true
	}
	return 0, false
}

// Player plays sounds fire-and-forget.
type Player interface {
	Play(s Sound)
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(Sound) {}

// PlayEvents plays the sound of every event that has one.
func PlayEvents(p Player, evts []ecs.Event) {
	if p == nil {
		return
	}
	for _, evt := range evts {
		if s, ok := ForEvent(evt); ok {
			p.Play(s)
		}
	}
}
