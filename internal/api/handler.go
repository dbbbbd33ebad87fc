package api

import (
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/service"
)

// RunHandler groups all run-related HTTP handlers.
type RunHandler struct {
	mgr *service.Manager
}

// NewRunHandler creates a RunHandler on top of the session manager.
func NewRunHandler(mgr *service.Manager) *RunHandler {
	return &RunHandler{mgr: mgr}
}
