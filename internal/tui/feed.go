package tui

import (
	"fmt"
	"time"

	"github.com/san-kum/gallery/internal/gallery"
)

type notice struct {
	text  string
	at    time.Duration
	alert bool
}

// feed keeps the latest game events worth showing on the HUD.
type feed struct {
	notices []notice
	max     int
}

func newFeed(max int) *feed { return &feed{max: max} }

func (f *feed) OnEvent(e gallery.Event) {
	var n notice
	switch e.Kind {
	case gallery.EventScored:
		n = notice{text: fmt.Sprintf("target %d down", e.Target+1)}
	case gallery.EventHit:
		n = notice{text: fmt.Sprintf("hit target %d", e.Target+1)}
	case gallery.EventRefilled:
		n = notice{text: "magazine refilled"}
	case gallery.EventCleared:
		n = notice{text: "you win!", alert: true}
	case gallery.EventReset:
		f.notices = f.notices[:0]
		n = notice{text: "new round"}
	default:
		return
	}
	n.at = e.Time
	f.notices = append(f.notices, n)
	if len(f.notices) > f.max {
		f.notices = f.notices[len(f.notices)-f.max:]
	}
}

// recent returns notices younger than ttl at now, oldest first.
func (f *feed) recent(now, ttl time.Duration) []notice {
	out := make([]notice, 0, len(f.notices))
	for _, n := range f.notices {
		if now-n.at <= ttl {
			out = append(out, n)
		}
	}
	return out
}
