package component

// TTL is a lifetime in frames. The entity is removed on the tick that takes
// it to zero; a TTL that starts at zero or below lasts one tick.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]("ttl")
