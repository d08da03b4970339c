package redisrepo

import (
	"fmt"
	"strings"
)

const (
	PROFILE_KEY = "github-profile:%s" // <lowercased username>
)

// GitHub logins are case-insensitive, so "Octocat" and "octocat" share a key.
func ProfileKey(username string) string {
	return fmt.Sprintf(PROFILE_KEY, strings.ToLower(username))
}
