// Package constants centralizes env keys, routes and shared field names so
// handlers and the entrypoint never drift apart on spelling.
package constants

const (
	// Environment variable keys
	EnvConfigPath = "EMOJICRAWL_CONFIG"
	EnvDBPath     = "EMOJICRAWL_DB"

	// Default file locations
	DefaultConfigPath = "./emojicrawl_config.json"
	DefaultDBPath     = "./data/emojicrawl.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix    = "/api"
	RouteHealthz      = "/healthz"
	RouteRuns         = "/runs"
	RouteRunByID      = "/runs/:id"
	RouteRunCommand   = "/runs/:id/command"
	RouteTemplates    = "/templates"
	RouteTemplateName = "/templates/:name"
	RouteLeaderboard  = "/leaderboard"
)

// JSON keys shared across API responses
const (
	JSONKeyError = "error"
	JSONKeyRunID = "run_id"
	JSONKeyState = "state"
)

// Error strings surfaced by the API
const (
	ErrInvalidRequest  = "invalid request"
	ErrRunNotFound     = "run not found"
	ErrTemplateInvalid = "invalid deck template"
	ErrTemplateExists  = "template already exists"
	ErrInternal        = "internal error"
)

// Structured log field names
const (
	LogFieldAddr     = "addr"
	LogFieldRunID    = "run_id"
	LogFieldTemplate = "template"
	LogFieldCommand  = "command"
	LogFieldStatus   = "status"
)
