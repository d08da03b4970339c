package dto

import "time"

// BasicResponse is the JSON envelope for API errors and health checks.
type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

func NewErrorResponse(err error) BasicResponse {
	return NewBasicResponse(false, err.Error())
}
