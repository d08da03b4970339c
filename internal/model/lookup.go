package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LookupFound       = "found"
	LookupNotFound    = "not_found"
	LookupIncomplete  = "incomplete"
	LookupRateLimited = "rate_limited"
	LookupError       = "error"
)

type Lookup struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}
