package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/divyaannsh/followus/internal/attribution"
	"github.com/divyaannsh/followus/internal/domain"
	"github.com/divyaannsh/followus/internal/dto"
	"github.com/divyaannsh/followus/internal/queue"
	"github.com/divyaannsh/followus/internal/repository"
	"github.com/divyaannsh/followus/internal/stats"
)

// ErrValidation marks malformed or missing required input. Nothing is
// published or persisted when it is returned.
var ErrValidation = errors.New("validation failed")

// EventService implements EventServicer: tracking goes out through the
// queue, stats come straight from the event store.
type EventService struct {
	publisher queue.EventPublisher
	repo      repository.EventRepository
	log       *zap.Logger
	now       func() time.Time
}

// NewEventService creates a new event service
func NewEventService(publisher queue.EventPublisher, repo repository.EventRepository, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		repo:      repo,
		log:       log,
		now:       time.Now,
	}
}

// computeEventID generates a deterministic event ID from the event content
// and its assigned timestamp. Redelivered queue messages carry the same ID,
// which the store's ReplacingMergeTree collapses.
func computeEventID(event *domain.Event) string {
	data := fmt.Sprintf("%s|%s|%s|%s|%d",
		event.Username,
		event.Type,
		event.LinkID,
		event.Source,
		event.Timestamp.UnixNano(),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// TrackEvent validates the request, attributes the traffic source, assigns
// the timestamp and publishes one immutable event to the queue.
func (s *EventService) TrackEvent(req *dto.TrackEventRequest, referrer string) error {
	ctx := context.Background()

	if req.Username == "" || req.Type == "" {
		s.log.Warn("Track validation failed: missing required field",
			zap.String("username", req.Username),
			zap.String("type", req.Type))
		return fmt.Errorf("%w: username and type are required", ErrValidation)
	}
	if !domain.ValidEventType(req.Type) {
		s.log.Warn("Track validation failed: unknown event type",
			zap.String("type", req.Type))
		return fmt.Errorf("%w: type must be %q or %q", ErrValidation, domain.EventTypeView, domain.EventTypeClick)
	}

	event := &domain.Event{
		Username:  req.Username,
		Type:      req.Type,
		Source:    attribution.Detect(req.Referrer, referrer),
		Timestamp: s.now(),
	}
	if req.Type == domain.EventTypeClick {
		event.LinkID = req.LinkID
		event.LinkTitle = req.LinkTitle
	}
	event.EventID = computeEventID(event)

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event to queue: %w", err)
	}

	s.log.Info("Event recorded",
		zap.String("event_id", event.EventID),
		zap.String("username", event.Username),
		zap.String("type", event.Type),
		zap.String("source", event.Source))

	return nil
}

// GetStats fetches the profile's events for the resolved window and derives
// the full analytics payload from one pass over them. An empty window is a
// success with all-zero aggregates.
func (s *EventService) GetStats(req *dto.GetStatsRequest) (*dto.GetStatsResponse, error) {
	ctx := context.Background()

	if req.Username == "" {
		s.log.Warn("Stats validation failed: missing username")
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if req.Days < 0 {
		s.log.Warn("Stats validation failed: negative window",
			zap.Int("days", req.Days))
		return nil, fmt.Errorf("%w: days must not be negative", ErrValidation)
	}

	now := s.now()
	since := stats.WindowStart(now, req.Days)

	s.log.Info("Querying stats",
		zap.String("username", req.Username),
		zap.Int("days", req.Days),
		zap.Time("since", since))

	events, err := s.repo.ListSince(ctx, req.Username, since)
	if err != nil {
		return nil, fmt.Errorf("failed to read events from repository: %w", err)
	}

	report := stats.Aggregate(events, req.Days, now)

	response := &dto.GetStatsResponse{
		TotalViews:     report.TotalViews,
		TotalClicks:    report.TotalClicks,
		ClickRate:      report.ClickRate,
		TopLink:        report.TopLink,
		TopLinks:       make([]dto.LinkStat, 0, len(report.TopLinks)),
		TrafficSources: make([]dto.SourceStat, 0, len(report.Sources)),
		Daily:          make([]dto.DayStat, 0, len(report.Daily)),
	}

	for _, link := range report.TopLinks {
		response.TopLinks = append(response.TopLinks, dto.LinkStat{
			LinkID: link.LinkID,
			Title:  link.Title,
			Clicks: link.Clicks,
		})
	}
	for _, source := range report.Sources {
		response.TrafficSources = append(response.TrafficSources, dto.SourceStat{
			Source: source.Source,
			Count:  source.Count,
		})
	}
	for _, day := range report.Daily {
		response.Daily = append(response.Daily, dto.DayStat{
			Date:   day.Date,
			Views:  day.Views,
			Clicks: day.Clicks,
		})
	}

	return response, nil
}
