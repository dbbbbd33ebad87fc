package service

import (
	"fmt"
	"strings"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/config"
	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// SaveTemplate validates and stores a named deck template.
func (m *Manager) SaveTemplate(name string, cfg *game.DeckConfig) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrTemplateInvalid)
	}
	if err := config.ValidateDeck(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}
	return m.repo.CreateTemplate(name, cfg)
}

// GetTemplate loads a stored deck template by name.
func (m *Manager) GetTemplate(name string) (*game.DeckConfig, error) {
	return m.repo.GetTemplate(name)
}

// ListTemplates returns the stored template names in lexical order.
func (m *Manager) ListTemplates() ([]string, error) {
	return m.repo.ListTemplates()
}

// DeleteTemplate removes a stored deck template.
func (m *Manager) DeleteTemplate(name string) error {
	return m.repo.DeleteTemplate(name)
}
