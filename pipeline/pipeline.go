// Package pipeline runs one full detection cycle:
// fetch -> persist -> match -> notify.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"go-ignis/matcher"
	"go-ignis/types"
)

// FireFetcher pulls the current detection set from the feed.
type FireFetcher interface {
	FetchFires(ctx context.Context, date time.Time) ([]types.FirePoint, error)
}

// FireStore is the slice of the document store the cycle touches.
type FireStore interface {
	ReplaceFires(ctx context.Context, fires []types.FirePoint) error
	GetInterestPoints(ctx context.Context) ([]types.InterestPoint, error)
}

// Alerter dispatches the per-user match lists.
type Alerter interface {
	Notify(ctx context.Context, matchesByUser map[string][]types.Match) int
}

type Pipeline struct {
	Fetcher FireFetcher
	Store   FireStore
	Alerts  Alerter
	Clock   clockwork.Clock
}

func New(fetcher FireFetcher, store FireStore, alerts Alerter) *Pipeline {
	return &Pipeline{
		Fetcher: fetcher,
		Store:   store,
		Alerts:  alerts,
		Clock:   clockwork.NewRealClock(),
	}
}

// RunCycle executes the stages strictly in order. Matching runs against the
// in-memory fetched set, not a re-read of the store, so a concurrent reader
// of the fires collection can never skew the matches. Any stage failure
// aborts the cycle; the scheduler decides whether to retry.
func (p *Pipeline) RunCycle(ctx context.Context) error {
	log.Println("Give me the fires!")

	fires, err := p.Fetcher.FetchFires(ctx, p.Clock.Now())
	if err != nil {
		return fmt.Errorf("fetching fires: %w", err)
	}

	// A store failure aborts before matching; matching against a dataset
	// that failed to persist would hide the inconsistency from operators.
	if err := p.Store.ReplaceFires(ctx, fires); err != nil {
		return fmt.Errorf("persisting fires: %w", err)
	}

	points, err := p.Store.GetInterestPoints(ctx)
	if err != nil {
		return fmt.Errorf("reading interest points: %w", err)
	}

	matchesByUser := matcher.Match(fires, points)
	sent := p.Alerts.Notify(ctx, matchesByUser)

	log.Printf("Cycle complete: %d fires, %d interest points, %d users matched, %d alerts sent",
		len(fires), len(points), len(matchesByUser), sent)
	return nil
}
