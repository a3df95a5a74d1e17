package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"react_scaffold_server/internal/ai"
	"react_scaffold_server/internal/scaffold"
	"react_scaffold_server/internal/utils"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	aiGenerator *ai.Generator
	uploadDir   string
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(aiGen *ai.Generator, uploadDir string) *APIHandler {
	return &APIHandler{
		aiGenerator: aiGen,
		uploadDir:   uploadDir,
	}
}

// --- Structs for API Requests/Responses ---

type UploadImageResponse struct {
	Message          string   `json:"message"`
	ImageDescription string   `json:"image_description"`
	ProjectName      string   `json:"project_name"`
	ProjectPath      string   `json:"project_path"`
	Components       []string `json:"components"`
}

type ProjectFilesResponse struct {
	ProjectName string   `json:"project_name"`
	Files       []string `json:"files"`
}

type GeneratePageRequest struct {
	PageName     string `json:"page_name" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
}

type GeneratePageResponse struct {
	ProjectName string `json:"project_name"`
	PageName    string `json:"page_name"`
	Path        string `json:"path"`
}

// --- API Handlers ---

// POST /upload-image/
func (h *APIHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid upload: " + err.Error()})
		return
	}

	uploadName := filepath.Base(fileHeader.Filename)
	if !utils.IsSafePathElement(uploadName) {
		uploadName = uuid.New().String()
	}
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("ERROR: Failed to create upload directory %s: %v", h.uploadDir, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}
	uploadPath := filepath.Join(h.uploadDir, uploadName)
	if err := c.SaveUploadedFile(fileHeader, uploadPath); err != nil {
		log.Printf("ERROR: Failed to save upload %s: %v", uploadPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}
	log.Printf("Received image %s (%d bytes)", uploadPath, fileHeader.Size)

	image, err := os.ReadFile(uploadPath)
	if err != nil {
		log.Printf("ERROR: Failed to read upload %s: %v", uploadPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return
	}

	described, err := h.aiGenerator.DescribeImage(c.Request.Context(), image)
	if err != nil {
		log.Printf("Error describing image %s: %v", uploadPath, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing image"})
		return
	}

	projectName := utils.ProjectNameForUpload(fileHeader.Filename)

	project, err := h.aiGenerator.GenerateReactProject(c.Request.Context(), described.Description, projectName)
	if err != nil {
		log.Printf("Error generating project %s: %v", projectName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate React project"})
		return
	}

	log.Printf("Project %s generated from %s", project.Name, uploadPath)
	c.JSON(http.StatusOK, UploadImageResponse{
		Message:          "React project generated successfully",
		ImageDescription: described.Description,
		ProjectName:      project.Name,
		ProjectPath:      project.Path,
		Components:       project.Components,
	})
}

// GET /project/:project_name
func (h *APIHandler) GetProject(c *gin.Context) {
	projectName := c.Param("project_name")

	files, err := h.aiGenerator.Store().ListFiles(projectName)
	if err != nil {
		respondProjectError(c, projectName, err, "Failed to list project files")
		return
	}

	c.JSON(http.StatusOK, ProjectFilesResponse{ProjectName: projectName, Files: files})
}

// POST /project/:project_name/pages
func (h *APIHandler) GeneratePage(c *gin.Context) {
	projectName := c.Param("project_name")

	var req GeneratePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	rel, err := h.aiGenerator.GeneratePage(c.Request.Context(), projectName, req.PageName, req.Requirements)
	if err != nil {
		if errors.Is(err, ai.ErrInvalidPageName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid page name '%s'", req.PageName)})
			return
		}
		respondProjectError(c, projectName, err, "Failed to generate page")
		return
	}

	c.JSON(http.StatusCreated, GeneratePageResponse{ProjectName: projectName, PageName: req.PageName, Path: rel})
}

func respondProjectError(c *gin.Context, projectName string, err error, internalMsg string) {
	switch {
	case errors.Is(err, scaffold.ErrInvalidProjectName):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid project name '%s'", projectName)})
	case errors.Is(err, scaffold.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	default:
		log.Printf("Error handling project %s: %v", projectName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
