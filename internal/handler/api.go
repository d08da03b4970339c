package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/profile-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, ""))
}

func (h *Handler) apiProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	records, err := h.services.Profile.Fetch(c.Request.Context(), username)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, publicMessage(err)))
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *Handler) apiLookups(c *gin.Context) {
	var input dto.LookupsRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errLimitMustBeInt))
		return
	}

	lookups, err := h.services.Lookup.FindRecent(c.Request.Context(), input.Limit)
	if err != nil {
		c.JSON(statusFor(err), dto.NewBasicResponse(false, publicMessage(err)))
		return
	}

	c.JSON(http.StatusOK, lookups)
}
