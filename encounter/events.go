package encounter

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/system"
)

// Events pushed to the loop's queue. Front ends drain them after each Step.
const (
	EventShoot           ecs.EventType = "shoot"
	EventPlayerHit       ecs.EventType = "player_hit"
	EventEscortDestroyed ecs.EventType = "escort_destroyed"
	EventBossHit         ecs.EventType = "boss_hit"
	EventBossDefeated    ecs.EventType = "boss_defeated"
	EventPickup          ecs.EventType = "pickup"
	EventCountdown       ecs.EventType = "countdown"
	EventPause           ecs.EventType = "pause"
	EventResume          ecs.EventType = "resume"
	EventAchievement     ecs.EventType = "achievement"
	EventPhase2          ecs.EventType = "phase2"
	EventGameOver        ecs.EventType = "game_over"

	// EventEffectExpired carries a component.Effect.
	EventEffectExpired = system.EventEffectExpired
)

// ShipEvent is the payload of EventShoot and EventPlayerHit.
type ShipEvent struct {
	Slot int
	X, Y int
}

// KillEvent is the payload of EventEscortDestroyed. Slot is -1 when the unit
// was cleared rather than shot.
type KillEvent struct {
	Slot   int
	X, Y   int
	Points int
}

type BossHitEvent struct {
	HP       int
	Shielded bool
	X, Y     int
}

type PickupEvent struct {
	Slot int
	Kind ItemKind
}

type AchievementEvent struct {
	Name string
}
