package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint the admin UI uses to confirm
// its login state.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	adminID := middleware.AdminIDFromContext(c)
	if adminID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	response := gin.H{
		"adminId": adminID,
	}
	if email := middleware.AdminEmailFromContext(c); email != "" {
		response["email"] = email
	}
	if name := middleware.AdminNameFromContext(c); name != "" {
		response["name"] = name
	}
	if picture := middleware.AdminPictureFromContext(c); picture != "" {
		response["picture"] = picture
	}

	respond.JSON(c, http.StatusOK, response)
}
