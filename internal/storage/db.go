// Package storage persists window geometry and app settings in SQLite.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gmplayer/internal/window"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Storage handles all database operations using SQLite
type Storage struct {
	DB *gorm.DB
}

// NewStorage opens the database in the user config directory.
func NewStorage() (*Storage, error) {
	appData, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	dbDir := filepath.Join(appData, "GMPlayer")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	return Open(filepath.Join(dbDir, "gmplayer.db"))
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Storage, error) {
	// Glebarez driver: pure Go, no CGO
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")

	if err := db.AutoMigrate(&WindowState{}, &AppSetting{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{DB: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ============= Window State =============

// SaveGeometry upserts the geometry for a window label.
func (s *Storage) SaveGeometry(label string, g window.Geometry) error {
	state := WindowState{
		Label:       label,
		X:           g.X,
		Y:           g.Y,
		Width:       g.Width,
		Height:      g.Height,
		Maximized:   g.Maximized,
		Fullscreen:  g.Fullscreen,
		Decorations: g.Decorations,
		UpdatedAt:   time.Now().Format(time.RFC3339),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "label"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"x", "y", "width", "height", "maximized", "fullscreen", "decorations", "updated_at",
		}),
	}).Create(&state).Error
}

// LoadGeometry returns the saved geometry for a label, if any.
func (s *Storage) LoadGeometry(label string) (window.Geometry, bool, error) {
	var state WindowState
	err := s.DB.First(&state, "label = ?", label).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return window.Geometry{}, false, nil
	}
	if err != nil {
		return window.Geometry{}, false, err
	}
	return window.Geometry{
		X:           state.X,
		Y:           state.Y,
		Width:       state.Width,
		Height:      state.Height,
		Maximized:   state.Maximized,
		Fullscreen:  state.Fullscreen,
		Decorations: state.Decorations,
	}, true, nil
}

// ClearGeometry removes all saved window state.
func (s *Storage) ClearGeometry() error {
	return s.DB.Where("1 = 1").Delete(&WindowState{}).Error
}

// ============= App Settings =============

// GetString retrieves a string setting by key
func (s *Storage) GetString(key string) (string, error) {
	var setting AppSetting
	err := s.DB.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return setting.Value, err
}

// SetString stores a string setting
func (s *Storage) SetString(key, value string) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&AppSetting{Key: key, Value: value}).Error
}
