package entities

import "time"

// FetchEvent announces that daily rates were fetched successfully.
type FetchEvent struct {
	Day       string    `json:"day"`
	Records   int       `json:"records"`
	FetchedAt time.Time `json:"fetched_at"`
}
