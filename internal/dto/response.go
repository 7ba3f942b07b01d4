package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"username and type are required"`
}

// TrackEventResponse represents a successful event ingestion response
type TrackEventResponse struct {
	Status string `json:"status" example:"recorded"`
}

// LinkStat is one link's click count within the queried window.
type LinkStat struct {
	LinkID string `json:"linkId" example:"l1"`
	Title  string `json:"title" example:"My Site"`
	Clicks int    `json:"clicks" example:"42"`
}

// SourceStat is one traffic source's event count within the queried window.
type SourceStat struct {
	Source string `json:"source" example:"instagram"`
	Count  int    `json:"count" example:"17"`
}

// DayStat is one calendar day of the daily series. Days without events are
// present with zero counts.
type DayStat struct {
	Date   string `json:"date" example:"2025-06-01"`
	Views  int    `json:"views" example:"12"`
	Clicks int    `json:"clicks" example:"3"`
}

// GetStatsResponse represents the full analytics payload for one profile
// over one trailing window.
type GetStatsResponse struct {
	TotalViews     int          `json:"totalViews" example:"120"`
	TotalClicks    int          `json:"totalClicks" example:"30"`
	ClickRate      string       `json:"clickRate" example:"25.0"`
	TopLink        string       `json:"topLink" example:"My Site"`
	TopLinks       []LinkStat   `json:"topLinks"`
	TrafficSources []SourceStat `json:"trafficSources"`
	Daily          []DayStat    `json:"daily"`
}
