package handler

import (
	"net/http"

	"github.com/BloggingApp/profile-service/internal/dto"
	"github.com/BloggingApp/profile-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	indexText       = "profile-service: look up a GitHub user at /app/profile/"
	profileTemplate = "profile.html"
)

func (h *Handler) index(c *gin.Context) {
	c.String(http.StatusOK, indexText)
}

func (h *Handler) profileForm(c *gin.Context) {
	renderProfile(c, http.StatusOK, "", []model.ProfileRecord{}, "")
}

func (h *Handler) profileSubmit(c *gin.Context) {
	var input dto.ProfileRequest
	if err := c.ShouldBindWith(&input, binding.Form); err != nil {
		renderProfile(c, http.StatusBadRequest, "", []model.ProfileRecord{}, errUserRequired.Error())
		return
	}

	records, err := h.services.Profile.Fetch(c.Request.Context(), input.User)
	if err != nil {
		renderProfile(c, statusFor(err), input.User, []model.ProfileRecord{}, publicMessage(err))
		return
	}

	renderProfile(c, http.StatusOK, input.User, records, "")
}

func renderProfile(c *gin.Context, status int, user string, records []model.ProfileRecord, errMessage string) {
	c.HTML(status, profileTemplate, gin.H{
		"data":  records,
		"user":  user,
		"error": errMessage,
	})
}
