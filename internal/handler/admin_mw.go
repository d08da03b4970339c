package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/profile-service/internal/dto"
	"github.com/BloggingApp/profile-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) adminMiddleware(c *gin.Context) {
	if len(h.cfg.AccessSecret) == 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	header := c.GetHeader("Authorization")
	accessToken, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || accessToken == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	claims, err := utils.DecodeJWT(accessToken, h.cfg.AccessSecret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	role, _ := claims["role"].(string)
	if strings.ToLower(role) != "admin" {
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errNoAccess))
		return
	}

	c.Next()
}
