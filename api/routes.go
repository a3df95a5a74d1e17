package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"react_scaffold_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *api.APIHandler) {
	// --- Image intake ---
	router.POST("/upload-image/", h.UploadImage) // Describe an image and generate a project from it

	// --- Generated projects ---
	projectGroup := router.Group("/project")
	{
		projectGroup.GET("/:project_name", h.GetProject)           // List the files of a generated project
		projectGroup.POST("/:project_name/pages", h.GeneratePage) // Add a page component to a project
	}

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
