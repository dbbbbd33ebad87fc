package api

import (
	"net/http"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/version"

	"github.com/gin-gonic/gin"
)

// Healthz reports liveness plus build metadata injected at build time.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
	})
}
