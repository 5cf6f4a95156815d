package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Tufail-188/SkinAI-Hub/authentication"
	"github.com/Tufail-188/SkinAI-Hub/classifier"
	"github.com/Tufail-188/SkinAI-Hub/models"
)

// PredictionController serves the upload form and runs the classification
// pipeline on uploaded lesion photos.
type PredictionController struct {
	pipeline  *classifier.Pipeline
	uploadDir string
}

func NewPredictionController(pipeline *classifier.Pipeline, uploadDir string) *PredictionController {
	return &PredictionController{pipeline: pipeline, uploadDir: uploadDir}
}

func (pc *PredictionController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"username": c.GetString(authentication.IdentityKey),
	})
}

// Predict stores the upload, classifies it and re-renders the page with the
// label, confidence and care advisory.
func (pc *PredictionController) Predict(c *gin.Context) {
	username := c.GetString(authentication.IdentityKey)

	header, err := c.FormFile("file")
	if err != nil {
		pc.renderError(c, username, "No file found")
		return
	}
	if header.Filename == "" {
		pc.renderError(c, username, "No file selected")
		return
	}

	file, err := header.Open()
	if err != nil {
		pc.renderError(c, username, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		pc.renderError(c, username, "Could not read uploaded file")
		return
	}

	result, err := pc.pipeline.Classify(data)
	if err != nil {
		pc.renderError(c, username, predictionErrorMessage(err))
		return
	}

	// The stored name is generated, never the client's, so a crafted
	// filename cannot escape the upload directory.
	storedName := uuid.NewString() + filepath.Ext(filepath.Base(header.Filename))
	storedPath := filepath.Join(pc.uploadDir, storedName)
	if err := os.WriteFile(storedPath, data, 0o644); err != nil {
		log.Println("saving upload failed:", err)
		pc.renderError(c, username, "Could not save uploaded file")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"username":            username,
		"prediction_text":     fmt.Sprintf("%s (%.2f%% confidence)", result.Label, result.Confidence*100),
		"disease_description": result.Advisory.Description,
		"disease_care":        result.Advisory.Care,
		"uploaded_image_path": "/uploads/" + storedName,
	})
}

func (pc *PredictionController) renderError(c *gin.Context, username, msg string) {
	c.HTML(http.StatusBadRequest, "index.html", gin.H{
		"username": username,
		"error":    msg,
	})
}

func predictionErrorMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrEmptyUpload):
		return "No file selected"
	case errors.Is(err, models.ErrDecode):
		return "Uploaded file is not a valid image"
	case errors.Is(err, models.ErrClassifierUnavailable):
		return "The classifier is currently unavailable, please try again later"
	default:
		log.Println("classification failed:", err)
		return "Classification failed, please try again"
	}
}
