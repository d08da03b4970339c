package dto

type ProfileRequest struct {
	User string `form:"user" binding:"required"`
}

type LookupsRequest struct {
	Limit int `form:"limit"`
}
