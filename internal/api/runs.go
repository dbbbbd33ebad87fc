package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/logging"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type CreateRunPayload struct {
	RunType      game.RunType     `json:"run_type"`
	TemplateName string           `json:"template_name"`
	Deck         *game.DeckConfig `json:"deck"`
}

// CreateRun starts a new run and returns its ID and initial state.
func (h *RunHandler) CreateRun(c *gin.Context) {
	var req CreateRunPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	runType := req.RunType
	if runType == "" {
		runType = game.RunStandard
	}
	if req.Deck != nil {
		runType = game.RunCustom
	}

	id, state, err := h.mgr.CreateRun(runType, req.TemplateName, req.Deck)
	if err != nil {
		if errors.Is(err, service.ErrTemplateInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrTemplateInvalid})
			return
		}
		logging.Error("failed to create run", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeyRunID: id,
		constants.JSONKeyState: state,
	})
}

// GetRun returns the current state of a run.
func (h *RunHandler) GetRun(c *gin.Context) {
	state, err := h.mgr.GetRun(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyState: state})
}

// DispatchCommand applies one command to a run. A rejected command is not an
// HTTP error: the engine leaves the state unchanged and the handler returns
// it as usual.
func (h *RunHandler) DispatchCommand(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	cmd, kind, err := ParseCommand(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	id := c.Param("id")
	state, err := h.mgr.Dispatch(id, cmd)
	if err != nil {
		if errors.Is(err, service.ErrRunNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
			return
		}
		logging.Error("failed to dispatch command", err, logging.Fields{
			constants.LogFieldRunID:   id,
			constants.LogFieldCommand: kind,
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyState: state})
}

// DropRun discards a run session.
func (h *RunHandler) DropRun(c *gin.Context) {
	if err := h.mgr.DropRun(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}
