package handler

import "portfolio/internal/carousel"

// JumpRequest selects an absolute item.
type JumpRequest struct {
	Index *int `json:"index"`
}

// DragEndRequest carries the signed horizontal drag distance in pixels.
type DragEndRequest struct {
	Offset *float64 `json:"offset"`
}

// ViewportRequest reports the current viewport width in CSS pixels.
type ViewportRequest struct {
	Width int `json:"width"`
}

// StateResponse is the carousel state plus the cards currently in view.
type StateResponse struct {
	carousel.Snapshot
	SequenceLength int             `json:"sequence_length"`
	Window         []carousel.Item `json:"window"`
}

// ReconcileResponse reports whether a seamless loop reset happened.
type ReconcileResponse struct {
	StateResponse
	Reset bool `json:"reset"`
}
