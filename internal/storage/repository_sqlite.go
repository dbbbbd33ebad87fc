package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beliaevvc/EmojiCrawl-sub000/internal/game"
)

// ErrTemplateExists is returned when creating a template whose name is taken.
var ErrTemplateExists = errors.New("template already exists")

// ErrNotFound is returned for lookups that match nothing.
var ErrNotFound = errors.New("not found")

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveRunSummary(s *RunSummary) error {
	var existing RunSummary
	err := r.db.Where("run_id = ?", s.RunID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetRunSummary(runID string) (*RunSummary, error) {
	var s RunSummary
	if err := r.db.Where("run_id = ?", runID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) GetTopRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	var runs []RunSummary
	err := r.db.
		Order("CASE status WHEN 'won' THEN 0 ELSE 1 END").
		Order("monsters_killed desc").
		Order("damage_dealt desc").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *sqliteRepository) CreateTemplate(name string, cfg *game.DeckConfig) error {
	b, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode deck template '%s': %w", name, err)
	}
	var existing DeckTemplate
	lookupErr := r.db.Where("name = ?", name).First(&existing).Error
	if lookupErr == nil {
		return ErrTemplateExists
	}
	if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
		return lookupErr
	}
	return r.db.Create(&DeckTemplate{Name: name, ConfigJSON: string(b)}).Error
}

func (r *sqliteRepository) GetTemplate(name string) (*game.DeckConfig, error) {
	var t DeckTemplate
	if err := r.db.Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var cfg game.DeckConfig
	if err := json.Unmarshal([]byte(t.ConfigJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode deck template '%s': %w", name, err)
	}
	return &cfg, nil
}

func (r *sqliteRepository) ListTemplates() ([]string, error) {
	var templates []DeckTemplate
	if err := r.db.Order("name").Find(&templates).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	return names, nil
}

func (r *sqliteRepository) DeleteTemplate(name string) error {
	res := r.db.Where("name = ?", name).Delete(&DeckTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
