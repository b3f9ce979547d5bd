// Package metrics scores a gallery session from its event stream.
package metrics

import (
	"sort"

	"github.com/san-kum/gallery/internal/gallery"
)

type Metric interface {
	Name() string
	Observe(e gallery.Event)
	Value() float64
	Reset()
}

// Set fans events out to its metrics. A round reset resets every metric, so
// values always describe the current round.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Standard returns the metrics every session records.
func Standard() *Set {
	shots := NewCounter("shots_fired", gallery.EventFired)
	hits := NewCounter("hits", gallery.EventHit)
	return NewSet(
		shots,
		hits,
		NewCounter("refused", gallery.EventDropped),
		NewCounter("refills", gallery.EventRefilled),
		NewScore(),
		NewAccuracy(shots, hits),
		NewClearTime(),
	)
}

func (s *Set) OnEvent(e gallery.Event) {
	if e.Kind == gallery.EventReset {
		for _, m := range s.metrics {
			m.Reset()
		}
	}
	for _, m := range s.metrics {
		m.Observe(e)
	}
}

func (s *Set) Metrics() []Metric { return s.metrics }

func (s *Set) Get(name string) (Metric, bool) {
	for _, m := range s.metrics {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Values returns every metric by name.
func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Set) Names() []string {
	names := make([]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}
