package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minerva-site/internal/models"
	"minerva-site/internal/repository"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError traduce los errores del dominio a códigos HTTP
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrBannerNotFound),
		errors.Is(err, models.ErrIndexOutOfRange):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrDuplicateNavItem):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotTextSection),
		errors.Is(err, models.ErrInvalidDirection):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repository.ErrWriteDocument), errors.Is(err, repository.ErrUnreadableDocument):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not save content"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// indexParam lee un índice posicional de la URL
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid index"})
		return 0, false
	}
	return index, true
}

// sectionParam lee una sección de texto de la URL
func sectionParam(c *gin.Context) (models.Section, bool) {
	section, ok := models.ParseSection(c.Param("section"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown section"})
		return "", false
	}
	if !section.IsText() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: models.ErrNotTextSection.Error()})
		return "", false
	}
	return section, true
}
