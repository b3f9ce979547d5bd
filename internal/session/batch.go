package session

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/gallery/internal/config"
)

// Entry is one configuration to play in a batch.
type Entry struct {
	Name   string
	Config *config.Config
}

// Batch plays the same script against several configurations at once,
// each on its own gallery.
type Batch struct {
	entries []Entry
	log     zerolog.Logger
}

func NewBatch(log zerolog.Logger, entries ...Entry) *Batch {
	return &Batch{entries: entries, log: log}
}

// Run returns one result per entry, in entry order. script supplies the
// commands and frame count; each entry plays at its own configured dt. The
// first failure cancels the entries still playing.
func (b *Batch) Run(ctx context.Context, script *Script) ([]*Result, error) {
	results := make([]*Result, len(b.entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range b.entries {
		eg.Go(func() error {
			log := b.log.With().Str("entry", e.Name).Logger()
			state, err := NewState(e.Config, log)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Name, err)
			}
			s := *script
			s.Dt = e.Config.Sim.Dt
			results[i], err = NewRunner(state, log).Run(ctx, &s)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
