package metrics

import "github.com/san-kum/gallery/internal/gallery"

// Counter counts events of one kind.
type Counter struct {
	name  string
	kind  gallery.EventKind
	count int
}

func NewCounter(name string, kind gallery.EventKind) *Counter {
	return &Counter{name: name, kind: kind}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(e gallery.Event) {
	if e.Kind == c.kind {
		c.count++
	}
}

func (c *Counter) Value() float64 { return float64(c.count) }

func (c *Counter) Reset() { c.count = 0 }

type Score struct {
	score int
}

func NewScore() *Score { return &Score{} }

func (s *Score) Name() string { return "score" }

func (s *Score) Observe(e gallery.Event) {
	if e.Kind == gallery.EventScored {
		s.score = e.Score
	}
}

func (s *Score) Value() float64 { return float64(s.score) }

func (s *Score) Reset() { s.score = 0 }

// Accuracy is hits per shot fired, 0 before the first shot.
type Accuracy struct {
	shots, hits Metric
}

func NewAccuracy(shots, hits Metric) *Accuracy {
	return &Accuracy{shots: shots, hits: hits}
}

func (a *Accuracy) Name() string { return "accuracy" }

// Observe is a no-op: the counters it reads observe on their own.
func (a *Accuracy) Observe(gallery.Event) {}

func (a *Accuracy) Value() float64 {
	shots := a.shots.Value()
	if shots == 0 {
		return 0
	}
	return a.hits.Value() / shots
}

func (a *Accuracy) Reset() {}

// ClearTime is the number of seconds from the round start to the last target
// going down, or 0 while any target stands.
type ClearTime struct {
	start   float64
	cleared float64
}

func NewClearTime() *ClearTime { return &ClearTime{} }

func (c *ClearTime) Name() string { return "clear_time" }

func (c *ClearTime) Observe(e gallery.Event) {
	switch e.Kind {
	case gallery.EventReset:
		c.start = e.Time.Seconds()
	case gallery.EventCleared:
		c.cleared = e.Time.Seconds() - c.start
	}
}

func (c *ClearTime) Value() float64 { return c.cleared }

func (c *ClearTime) Reset() {
	c.start = 0
	c.cleared = 0
}
