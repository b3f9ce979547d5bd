package logging

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/gallery/internal/gallery"
)

// EventLogger writes gallery events: round-level events at info, per-shot
// events at debug. Refused shots are sampled since a held fire key produces
// one per frame.
type EventLogger struct {
	log     zerolog.Logger
	refused zerolog.Logger
}

func NewEventLogger(log zerolog.Logger) *EventLogger {
	return &EventLogger{
		log: log,
		refused: log.Sample(&zerolog.BurstSampler{
			Burst:       3,
			Period:      time.Second,
			NextSampler: &zerolog.BasicSampler{N: 100},
		}),
	}
}

func (l *EventLogger) OnEvent(e gallery.Event) {
	var ev *zerolog.Event
	switch e.Kind {
	case gallery.EventScored, gallery.EventCleared, gallery.EventReset:
		ev = l.log.Info()
	case gallery.EventDropped:
		ev = l.refused.Debug()
	default:
		ev = l.log.Debug()
	}
	if !ev.Enabled() {
		return
	}
	ev = ev.Str("event", e.Kind.String()).
		Uint64("frame", e.Frame).
		Dur("t", e.Time).
		Int("score", e.Score).
		Int("ammo", e.Ammo)
	if e.Slot >= 0 {
		ev = ev.Int("slot", e.Slot)
	}
	if e.Target >= 0 {
		ev = ev.Int("target", e.Target)
	}
	if e.Kind == gallery.EventExpired {
		ev = ev.Stringer("reason", e.Expiry)
	}
	ev.Msg("gallery")
}
