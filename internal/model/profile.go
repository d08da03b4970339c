package model

type ProfileRecord struct {
	Name        *string `json:"name"`
	Blog        *string `json:"blog"`
	PublicGists int     `json:"public_gists"`
	PublicRepos int     `json:"public_repos"`
	AvatarURL   string  `json:"avatar_url"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	Location    *string `json:"location"`
}
