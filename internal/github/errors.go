package github

import "errors"

var (
	ErrUserNotFound      = errors.New("github user not found")
	ErrIncompleteProfile = errors.New("github profile is incomplete")
	ErrRateLimited       = errors.New("github rate limit exceeded")
)
