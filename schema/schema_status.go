package schema

import "time"

// SeriesStatus represents the status of the traffic store.
type SeriesStatus struct {
	Backend   string    `json:"backend"`
	Connected bool      `json:"connected"`
	TotalRows int       `json:"total_rows"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}
