package service

import (
	"github.com/divyaannsh/followus/internal/dto"
)

// EventServicer defines the interface for telemetry operations
type EventServicer interface {
	// TrackEvent records one profile view or link click. referrer is the
	// transport-level Referer header.
	TrackEvent(req *dto.TrackEventRequest, referrer string) error

	// GetStats computes the analytics payload for one profile over a
	// trailing window.
	GetStats(req *dto.GetStatsRequest) (*dto.GetStatsResponse, error)
}
