// Package migration brings the helpdesk schema up to date, either from the
// embedded goose scripts or from the gorm models.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

const (
	StrategyGoose = "goose"
	StrategyAuto  = "auto"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy by name. Goose is the default; "auto" uses gorm
// AutoMigrate and suits throwaway sqlite databases.
func NewManager(name, driver string, log logger.Interface) (*Manager, error) {
	var strategy Strategy
	switch name {
	case StrategyAuto:
		strategy = NewGormAutoMigrateStrategy(log)
	case StrategyGoose, "":
		goose, err := NewGooseStrategy(driver, log)
		if err != nil {
			return nil, err
		}
		strategy = goose
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", name)
	}
	return NewManagerWithStrategy(strategy, log), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// Goose returns the goose strategy when it is the active one.
func (m *Manager) Goose() (*GooseStrategy, bool) {
	s, ok := m.strategy.(*GooseStrategy)
	return s, ok
}
