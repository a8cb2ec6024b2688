package encounter

import (
	"log"
	"math/rand"
)

// Logger is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, v ...any)
}

type Option func(*Loop)

func WithClock(clock Clock) Option {
	return func(l *Loop) {
		if clock != nil {
			l.clock = clock
		}
	}
}

func WithLogger(logger Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.log = logger
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(l *Loop) {
		if rng != nil {
			l.rng = rng
		}
	}
}

func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

func WithCoop(coop bool) Option {
	return func(l *Loop) {
		l.coop = coop
	}
}

func WithAchievements(sink AchievementSink) Option {
	return func(l *Loop) {
		if sink != nil {
			l.achievements = sink
		}
	}
}

// WithDropTable replaces the table named by the spec's drop_script. A nil
// table disables drops.
func WithDropTable(table *DropTable) Option {
	return func(l *Loop) {
		l.drops = table
		l.dropsSet = true
	}
}

func defaultLogger() Logger {
	return log.Default()
}
