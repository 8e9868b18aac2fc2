package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/entities"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/events"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/logger"
	"github.com/nasirkhansayyad132/tech-jobs-tracker/internal/metrics"
)

// RunTimestampLayout is the seconds-precision form stored in the state and
// summary documents.
const RunTimestampLayout = "2006-01-02T15:04:05"

type postingStore interface {
	LoadRaw(ctx context.Context) []entities.RawPosting
	SaveNormalized(ctx context.Context, postings []entities.Posting) error
}

type stateStore interface {
	Load(ctx context.Context) entities.RunState
	Save(ctx context.Context, state entities.RunState) error
}

type summaryStore interface {
	Save(ctx context.Context, text string) error
}

// RunService is one end-to-end pipeline execution over a batch of raw
// postings. The pipeline is synchronous and single-threaded; cross-run
// exclusion is the caller's concern.
type RunService struct {
	bus        EventBus.Bus
	postings   postingStore
	states     stateStore
	summaries  summaryStore
	normalizer *Normalizer
	now        func() time.Time
}

func NewRunService(bus EventBus.Bus, postings postingStore, states stateStore,
	summaries summaryStore, normalizer *Normalizer) (*RunService, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	return &RunService{
		bus:        bus,
		postings:   postings,
		states:     states,
		summaries:  summaries,
		normalizer: normalizer,
		now:        time.Now,
	}, nil
}

// Run loads the raw batch and prior state, normalizes, classifies,
// rewrites every persisted artifact, publishes the completion event and
// persists the next state. Only a failure to write the persisted outputs
// is surfaced as an error; everything upstream degrades instead.
func (s *RunService) Run(ctx context.Context) error {
	start := s.now()
	today := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	raw := s.postings.LoadRaw(ctx)
	state := s.states.Load(ctx)
	log.Infof("run started: %d raw postings, %d previously seen urls", len(raw), len(state.SeenURLs))

	normalized := s.normalizer.Normalize(raw, state.SeenSet(), today)
	newPostings := lo.Filter(normalized, func(p entities.Posting, _ int) bool { return p.IsNew })
	expiringToday, expiringSoon := ClassifyExpiry(normalized, today)

	if err := s.postings.SaveNormalized(ctx, normalized); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFs).Errorf("failed to persist postings: %v", err)
		return err
	}

	runTS := start.Format(RunTimestampLayout)
	summary := BuildSummary(runTS, newPostings, expiringToday, expiringSoon)
	if err := s.summaries.Save(ctx, summary); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFs).Errorf("failed to persist summary: %v", err)
		return err
	}

	s.bus.Publish(events.RunCompletedTopic, events.RunCompleted{
		RunAt:         runTS,
		Summary:       summary,
		Digest:        Digest(len(newPostings), len(expiringToday), len(expiringSoon)),
		NewCount:      len(newPostings),
		ExpiringToday: len(expiringToday),
		ExpiringSoon:  len(expiringSoon),
	})

	next := entities.RunState{
		SeenURLs:    lo.Uniq(append(state.SeenURLs, urlsOf(normalized)...)),
		LastRun:     runTS,
		LastNewURLs: urlsOf(newPostings),
	}
	if err := s.states.Save(ctx, next); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFs).Errorf("failed to persist run state: %v", err)
		return err
	}

	metrics.RunsCounter.Inc()
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	metrics.NewPostingsGauge.Set(float64(len(newPostings)))
	log.Infof("run finished in %v: %d kept, %d new, %d expiring today, %d expiring soon",
		time.Since(start), len(normalized), len(newPostings), len(expiringToday), len(expiringSoon))
	return nil
}

func urlsOf(postings []entities.Posting) []string {
	return lo.Map(postings, func(p entities.Posting, _ int) string { return p.URL })
}
