package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/engine"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/rng"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/service"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/storage"
)

type stubRepo struct {
	summaries []storage.RunSummary
	templates map[string]*game.DeckConfig
}

func newStubRepo() *stubRepo {
	return &stubRepo{templates: map[string]*game.DeckConfig{}}
}

func (r *stubRepo) SaveRunSummary(s *storage.RunSummary) error {
	r.summaries = append(r.summaries, *s)
	return nil
}

func (r *stubRepo) GetRunSummary(runID string) (*storage.RunSummary, error) {
	return nil, storage.ErrNotFound
}

func (r *stubRepo) GetTopRuns(limit int) ([]storage.RunSummary, error) {
	if len(r.summaries) > limit {
		return r.summaries[:limit], nil
	}
	return r.summaries, nil
}

func (r *stubRepo) CreateTemplate(name string, cfg *game.DeckConfig) error {
	if _, ok := r.templates[name]; ok {
		return storage.ErrTemplateExists
	}
	r.templates[name] = cfg
	return nil
}

func (r *stubRepo) GetTemplate(name string) (*game.DeckConfig, error) {
	cfg, ok := r.templates[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return cfg, nil
}

func (r *stubRepo) ListTemplates() ([]string, error) {
	names := make([]string, 0, len(r.templates))
	for n := range r.templates {
		names = append(names, n)
	}
	return names, nil
}

func (r *stubRepo) DeleteTemplate(name string) error {
	if _, ok := r.templates[name]; !ok {
		return storage.ErrNotFound
	}
	delete(r.templates, name)
	return nil
}

func newTestRouter(repo storage.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	env := engine.Env{Rand: rng.NewSeeded(1), Clock: rng.FixedClock(1000)}
	mgr := service.NewManager(repo, env, game.ContentMeta{})
	handler := NewRunHandler(mgr)

	router := gin.New()
	router.GET(constants.RouteHealthz, Healthz)
	api := router.Group(constants.RouteAPIPrefix)
	api.POST(constants.RouteRuns, handler.CreateRun)
	api.GET(constants.RouteRunByID, handler.GetRun)
	api.DELETE(constants.RouteRunByID, handler.DropRun)
	api.POST(constants.RouteRunCommand, handler.DispatchCommand)
	api.POST(constants.RouteTemplates, handler.CreateTemplate)
	api.GET(constants.RouteTemplates, handler.ListTemplates)
	api.GET(constants.RouteTemplateName, handler.GetTemplate)
	api.DELETE(constants.RouteTemplateName, handler.DeleteTemplate)
	api.GET(constants.RouteLeaderboard, handler.ListLeaderboard)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRunEndpoint(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodPost, "/api/runs", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		RunID string     `json:"run_id"`
		State game.State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, game.StatusPlaying, resp.State.Status)
	assert.Equal(t, 15, resp.State.Player.HP)

	// The created run is fetchable.
	w = doJSON(t, router, http.MethodGet, "/api/runs/"+resp.RunID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRunNotFound(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodGet, "/api/runs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrRunNotFound)
}

func TestDispatchCommandEndpoint(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodPost, "/api/runs", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		RunID string     `json:"run_id"`
		State game.State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/api/runs/"+created.RunID+"/command",
		gin.H{"type": CmdAddCoins, "amount": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		State game.State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.State.Player.Coins)
}

func TestDispatchRejectsUnknownCommand(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodPost, "/api/runs", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/api/runs/"+created.RunID+"/command",
		gin.H{"type": "dance"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDropRunEndpoint(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodPost, "/api/runs", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodDelete, "/api/runs/"+created.RunID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/runs/"+created.RunID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateCRUD(t *testing.T) {
	router := newTestRouter(newStubRepo())
	payload := gin.H{
		"name": "arena",
		"deck": gin.H{
			"coins":    []int{2, 3},
			"monsters": []gin.H{{"value": 5, "count": 3}},
		},
	}

	w := doJSON(t, router, http.MethodPost, "/api/templates", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/templates", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "arena")

	w = doJSON(t, router, http.MethodGet, "/api/templates/arena", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A template-backed run starts as a custom run.
	w = doJSON(t, router, http.MethodPost, "/api/runs", gin.H{"template_name": "arena"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), string(game.RunCustom))

	w = doJSON(t, router, http.MethodDelete, "/api/templates/arena", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/templates/arena", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplateRejectsInvalidDeck(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodPost, "/api/templates", gin.H{
		"name": "bad",
		"deck": gin.H{"coins": []int{0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	repo := newStubRepo()
	repo.summaries = []storage.RunSummary{
		{RunID: "a", Status: "won", MonstersKilled: 12},
		{RunID: "b", Status: "lost", MonstersKilled: 4},
	}
	router := newTestRouter(repo)

	w := doJSON(t, router, http.MethodGet, "/api/leaderboard?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Runs []storage.RunSummary `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Runs, 1)
	assert.Equal(t, "a", resp.Runs[0].RunID)

	w = doJSON(t, router, http.MethodGet, "/api/leaderboard?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseCommandReturnsKind(t *testing.T) {
	cmd, kind, err := ParseCommand([]byte(`{"type":"add_coins","amount":7}`))
	require.NoError(t, err)
	assert.Equal(t, CmdAddCoins, kind)
	assert.Equal(t, game.AddCoins{Amount: 7}, cmd)

	_, kind, err = ParseCommand([]byte(`{"type":"dance"}`))
	assert.Error(t, err)
	assert.Equal(t, "dance", kind)
}

func TestHealthzEndpoint(t *testing.T) {
	router := newTestRouter(newStubRepo())
	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
