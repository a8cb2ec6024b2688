package component

// EffectKind names a timed power-up granted by a pickup item.
type EffectKind string

const (
	EffectTripleShot EffectKind = "triple_shot"
	EffectRapidFire  EffectKind = "rapid_fire"
	EffectSpeedBoost EffectKind = "speed_boost"
)

// Effect is an active power-up owned by one player slot. Its lifetime is the
// TTL attached to the same entity.
type Effect struct {
	Slot int
	Kind EffectKind
}

var EffectComponent = NewComponent[Effect]("effect")
