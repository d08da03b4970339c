package service

import "errors"

var (
	ErrInternal          = errors.New("internal server error")
	ErrEmptyUsername     = errors.New("username must not be empty")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrIncompleteProfile = errors.New("profile data is incomplete")
	ErrRateLimited       = errors.New("profile source rate limit exceeded, try again later")
	ErrUpstream          = errors.New("profile source is unavailable")
	ErrHistoryDisabled   = errors.New("lookup history is not enabled")
	ErrCanceled          = errors.New("request was canceled")
)
