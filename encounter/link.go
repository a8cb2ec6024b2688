package encounter

import (
	"github.com/milk9111/bossfight/boss"
)

// bossLink is the loop side of boss.Capabilities. It turns fire intents into
// pooled projectiles and swaps escort waves on the formation.
type bossLink struct {
	l *Loop
}

var _ boss.Capabilities = (*bossLink)(nil)

func (b *bossLink) Fire(x, y, vx, vy int) {
	t := b.l.bossTuning
	b.l.spawnProjectile(Projectile{
		X:      x,
		Y:      y,
		Width:  t.BulletWidth,
		Height: t.BulletHeight,
		VX:     vx,
		VY:     vy,
		Team:   TeamEnemy,
		Damage: 1,
	})
}

// fireEscort is the formation's emitter. Escort bullets share the boss
// bullet size and are centred on the firing unit.
func (b *bossLink) fireEscort(x, y, vx, vy int) {
	w := b.l.bossTuning.BulletWidth
	b.l.spawnProjectile(Projectile{
		X:      x - w/2,
		Y:      y,
		Width:  w,
		Height: b.l.bossTuning.BulletHeight,
		VX:     vx,
		VY:     vy,
		Team:   TeamEnemy,
		Damage: 1,
	})
}

func (b *bossLink) SpawnTier1() {
	b.spawn(Tier1)
}

func (b *bossLink) SpawnTier2() {
	b.spawn(Tier2)
}

func (b *bossLink) spawn(tier FormationTier) {
	l := b.l
	l.formation.Spawn(tier)

	spec := l.formation.spec()
	top := l.bossY + l.bossTuning.Height + spec.Gap
	for _, u := range l.formation.Units() {
		u.Y += top
	}
	l.log.Printf("encounter: boss spawning tier %d escort (%dx%d)", tier, spec.Cols, spec.Rows)
}

func (b *bossLink) ClearEscort() {
	n := b.l.formation.Clear()
	b.l.log.Printf("encounter: boss clearing escort (%d alive)", n)
}

func (b *bossLink) OnPhase2Start() {
	b.l.emit(EventPhase2, nil)
	b.l.log.Printf("encounter: boss entered phase 2")
}
