package api

import (
	"net/http"
	"strconv"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/logging"

	"github.com/gin-gonic/gin"
)

// ListLeaderboard returns the top finished runs. An optional ?limit= query
// bounds the result; it defaults to 10.
func (h *RunHandler) ListLeaderboard(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		limit = n
	}
	runs, err := h.mgr.Leaderboard(limit)
	if err != nil {
		logging.Error("failed to load leaderboard", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
