package encounter

import (
	"github.com/milk9111/bossfight/common"
)

// resolveCollisions gives every projectile at most one consumer this frame.
func (l *Loop) resolveCollisions() {
	l.sweepProjectiles(func(p *Projectile) bool {
		if p.Team == TeamEnemy {
			return l.enemyHit(p)
		}
		return l.playerHit(p)
	})
}

// enemyHit tests an enemy projectile against the ships in slot order.
func (l *Loop) enemyHit(p *Projectile) bool {
	if l.finished {
		return false
	}
	for slot, s := range l.ships {
		if s == nil || s.Destroyed() || !common.Collides(p.Bounds(), s.Bounds()) {
			continue
		}
		s.Hit()
		l.state.DecLife(slot)
		l.tookDamage = true

		respawn := 0
		if l.state.Lives[slot] > 0 {
			respawn = l.spec.Timings.RespawnFrames
		}
		s.Destroy(respawn)

		l.log.Printf("encounter: hit on player %d", slot+1)
		l.emit(EventPlayerHit, ShipEvent{Slot: slot, X: s.X, Y: s.Y})

		if l.state.LivesRemaining() == 0 {
			l.gameOver()
		}
		return true
	}
	return false
}

// playerHit tests a player projectile against the escort first. A projectile
// that hits an escort unit never reaches the boss in the same frame.
func (l *Loop) playerHit(p *Projectile) bool {
	for _, u := range l.formation.Units() {
		if u.Destroyed() || !common.Collides(p.Bounds(), u.Bounds()) {
			continue
		}
		if u.Hit() {
			l.escortDestroyed(ownerSlot(p.Owner), u)
		}
		return true
	}

	if l.boss.HP() <= 0 || !common.Collides(p.Bounds(), l.boss.Bounds()) {
		return false
	}
	shielded := l.boss.Invulnerable()
	l.boss.OnHit(1)

	cx, cy := l.boss.Bounds().Center()
	l.emit(EventBossHit, BossHitEvent{HP: l.boss.HP(), Shielded: shielded, X: cx, Y: cy})
	if l.boss.HP() <= 0 {
		l.emit(EventBossDefeated, BossHitEvent{X: cx, Y: cy})
	}
	return true
}

func (l *Loop) escortDestroyed(slot int, u *EscortUnit) {
	l.state.AddCoins(slot, u.Coins)
	l.state.AddScore(slot, u.Points)
	l.state.IncShipsDestroyed(slot)
	l.rollDrop(u)
	l.formation.Remove(u)
	l.emit(EventEscortDestroyed, KillEvent{Slot: slot, X: u.X, Y: u.Y, Points: u.Points})
}

func (l *Loop) rollDrop(u *EscortUnit) {
	if l.drops == nil {
		return
	}
	drop, ok, err := l.drops.Roll(u.Tier, l.rng.Float64(), l.rng.Intn(1<<16))
	if err != nil {
		l.log.Printf("encounter: drop roll: %v", err)
		return
	}
	if !ok {
		return
	}
	cfg := l.spec.Items
	cx, cy := u.Bounds().Center()
	l.spawnItem(Item{
		X:       cx - cfg.Width/2,
		Y:       cy - cfg.Height/2,
		Width:   cfg.Width,
		Height:  cfg.Height,
		VY:      common.AtLeast(cfg.FallSpeed, 1),
		Kind:    drop.Kind,
		Payload: drop.Payload,
	})
}

// recycleOffscreen moves projectiles and items, then returns everything that
// left the playfield to its pool.
func (l *Loop) recycleOffscreen() {
	top, bottom := l.spec.Screen.HUDLine, l.spec.Screen.Height
	l.sweepProjectiles(func(p *Projectile) bool {
		p.advance()
		return p.Y < top || p.Y > bottom
	})
	l.sweepItems(func(it *Item) bool {
		it.Y += it.VY
		return it.Y > bottom
	})
}

// resolvePickups lets the first overlapping ship in slot order claim each
// item. Destroyed ships can still collect.
func (l *Loop) resolvePickups() {
	l.sweepItems(func(it *Item) bool {
		for slot, s := range l.ships {
			if s == nil || !common.Collides(it.Bounds(), s.Bounds()) {
				continue
			}
			l.applyItem(slot, it)
			return true
		}
		return false
	})
}

func (l *Loop) recycleAll() {
	l.sweepProjectiles(func(*Projectile) bool { return true })
	l.sweepItems(func(*Item) bool { return true })
}

// sweepProjectiles keeps the projectiles for which drop returns false, in
// order, and releases the rest to the pool.
func (l *Loop) sweepProjectiles(drop func(*Projectile) bool) {
	released := l.scratchP[:0]
	kept := l.projectiles[:0]
	for _, p := range l.projectiles {
		if drop(p) {
			released = append(released, p)
		} else {
			kept = append(kept, p)
		}
	}
	clear(l.projectiles[len(kept):])
	l.projectiles = kept
	l.projectilePool.Release(released...)
	clear(released)
	l.scratchP = released[:0]
}

func (l *Loop) sweepItems(drop func(*Item) bool) {
	released := l.scratchI[:0]
	kept := l.items[:0]
	for _, it := range l.items {
		if drop(it) {
			released = append(released, it)
		} else {
			kept = append(kept, it)
		}
	}
	clear(l.items[len(kept):])
	l.items = kept
	l.itemPool.Release(released...)
	clear(released)
	l.scratchI = released[:0]
}
