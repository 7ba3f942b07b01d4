package dto

// TrackEventRequest represents one recorded profile view or link click.
// Referrer carries the explicit source hint forwarded by the page (a ref or
// utm_source query parameter); the transport-level Referer header is read
// separately by the handler.
type TrackEventRequest struct {
	Username  string `json:"username" binding:"required" example:"alice"`
	Type      string `json:"type" binding:"required,oneof=view click" example:"click"`
	LinkID    string `json:"linkId" example:"l1"`
	LinkTitle string `json:"linkTitle" example:"My Site"`
	Referrer  string `json:"referrer" example:"instagram.com"`
}

// GetStatsRequest represents a dashboard stats query. Days is the trailing
// window in days; 0 means all time.
type GetStatsRequest struct {
	Username string `form:"username" binding:"required" example:"alice"`
	Days     int    `form:"days,default=30" binding:"gte=0" example:"30"`
}
