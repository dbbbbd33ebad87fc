package api

import (
	"errors"
	"net/http"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/logging"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/service"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

type TemplatePayload struct {
	Name string           `json:"name"`
	Deck *game.DeckConfig `json:"deck"`
}

// CreateTemplate validates and stores a named deck template.
func (h *RunHandler) CreateTemplate(c *gin.Context) {
	var req TemplatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if err := h.mgr.SaveTemplate(req.Name, req.Deck); err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateInvalid):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		case errors.Is(err, storage.ErrTemplateExists):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrTemplateExists})
		default:
			logging.Error("failed to store template", err, logging.Fields{constants.LogFieldTemplate: req.Name})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		}
		return
	}
	c.Status(http.StatusCreated)
}

// ListTemplates returns the stored template names.
func (h *RunHandler) ListTemplates(c *gin.Context) {
	names, err := h.mgr.ListTemplates()
	if err != nil {
		logging.Error("failed to list templates", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": names})
}

// GetTemplate returns one stored deck template.
func (h *RunHandler) GetTemplate(c *gin.Context) {
	name := c.Param("name")
	cfg, err := h.mgr.GetTemplate(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTemplateInvalid})
			return
		}
		logging.Error("failed to load template", err, logging.Fields{constants.LogFieldTemplate: name})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "deck": cfg})
}

// DeleteTemplate removes a stored deck template.
func (h *RunHandler) DeleteTemplate(c *gin.Context) {
	name := c.Param("name")
	if err := h.mgr.DeleteTemplate(name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTemplateInvalid})
			return
		}
		logging.Error("failed to delete template", err, logging.Fields{constants.LogFieldTemplate: name})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.Status(http.StatusNoContent)
}
