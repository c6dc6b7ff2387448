package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/repository"
	"github.com/ondrasimku/image-catalog-go/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ImagesHandler struct {
	catalog service.CatalogService
	maxSize int64
	log     *zap.Logger
}

func NewImagesHandler(catalog service.CatalogService, maxSize int64, log *zap.Logger) *ImagesHandler {
	return &ImagesHandler{
		catalog: catalog,
		maxSize: maxSize,
		log:     log,
	}
}

// Upload accepts a multipart form with an "image" file and optional title,
// description and category fields. The text fields are stored as sent, empty
// included.
func (h *ImagesHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		h.log.Warn("Failed to get file from form", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No image file provided"})
		return
	}

	if file.Size > h.maxSize {
		h.log.Warn("Uploaded file too large",
			zap.Int64("size", file.Size),
			zap.Int64("max", h.maxSize))
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.log.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}
	defer src.Close()

	img, err := h.catalog.Upload(c.Request.Context(), service.UploadInput{
		File:        src,
		Filename:    file.Filename,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	})
	if err != nil {
		h.log.Error("Failed to upload image", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, img)
}

func (h *ImagesHandler) List(c *gin.Context) {
	images, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list images", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, images)
}

// Delete removes the metadata record for the given id and answers exactly
// once: 204 on success, 404 when the id resolves to nothing.
func (h *ImagesHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.catalog.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		h.log.Error("Failed to delete image", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.Status(http.StatusNoContent)
}
