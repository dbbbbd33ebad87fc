package service

import (
	"errors"
	"sync"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/constants"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/engine"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/logging"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/storage"
)

var (
	ErrRunNotFound     = errors.New("run not found")
	ErrTemplateInvalid = errors.New("invalid deck template")
)

const runIDCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
const runIDLength = 12

// session is one live run. The engine itself is a pure function over the
// state, so the session only has to serialize access and remember whether
// the terminal summary was already persisted.
type session struct {
	mu           sync.Mutex
	state        game.State
	templateName string
	persisted    bool
}

// Manager owns every in-memory run session and the write path to storage.
// Finished runs stay resident until dropped so clients can still fetch the
// final state.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session

	repo    storage.Repository
	env     engine.Env
	content game.ContentMeta
}

func NewManager(repo storage.Repository, env engine.Env, content game.ContentMeta) *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		repo:     repo,
		env:      env,
		content:  content,
	}
}

// CreateRun starts a new run. A non-empty templateName loads the stored deck
// config; otherwise cfg (possibly nil for a standard run) is used directly.
func (m *Manager) CreateRun(runType game.RunType, templateName string, cfg *game.DeckConfig) (string, game.State, error) {
	if templateName != "" {
		stored, err := m.repo.GetTemplate(templateName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return "", game.State{}, ErrTemplateInvalid
			}
			return "", game.State{}, err
		}
		cfg = stored
		runType = game.RunCustom
	}

	start := game.StartGame{
		Deck:         cfg,
		RunType:      runType,
		TemplateName: templateName,
		Content:      m.content,
	}
	state := engine.Apply(game.State{}, start, m.env)
	if state.Status != game.StatusPlaying {
		return "", game.State{}, ErrTemplateInvalid
	}

	id := m.newRunID()
	sess := &session{state: state, templateName: templateName}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	logging.Info("run created", logging.Fields{constants.LogFieldRunID: id, constants.LogFieldTemplate: templateName})
	return id, state, nil
}

// GetRun returns a snapshot of the run's current state.
func (m *Manager) GetRun(id string) (game.State, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return game.State{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state, nil
}

// Dispatch applies one command to the run and returns the resulting state.
// Rejected commands come back as the unchanged state, matching the engine's
// silent no-op semantics. The first transition into a terminal status writes
// the run summary.
func (m *Manager) Dispatch(id string, cmd game.Command) (game.State, error) {
	sess, err := m.lookup(id)
	if err != nil {
		return game.State{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.state = engine.Apply(sess.state, cmd, m.env)

	if (sess.state.Status == game.StatusWon || sess.state.Status == game.StatusLost) && !sess.persisted {
		summary := storage.NewRunSummary(id, sess.templateName, &sess.state)
		if err := m.repo.SaveRunSummary(summary); err != nil {
			logging.Error("failed to persist run summary", err, logging.Fields{constants.LogFieldRunID: id})
		} else {
			sess.persisted = true
			logging.Info("run finished", logging.Fields{constants.LogFieldRunID: id, constants.LogFieldStatus: string(sess.state.Status)})
		}
	}

	return sess.state, nil
}

// DropRun removes the session from memory. The persisted summary, if any,
// survives in storage.
func (m *Manager) DropRun(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrRunNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	return sess, nil
}

func (m *Manager) newRunID() string {
	b := make([]byte, runIDLength)
	for i := range b {
		b[i] = runIDCharset[int(m.env.Rand.NextFloat()*float64(len(runIDCharset)))%len(runIDCharset)]
	}
	return string(b)
}
