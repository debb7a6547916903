package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return db
}

func assertTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, model := range models.All() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	db := openSQLite(t)

	m, err := NewManager(StrategyGoose, "sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, m.Migrate(db))
	assertTables(t, db)

	goose, ok := m.Goose()
	require.True(t, ok)

	version, err := goose.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// applying again is a no-op
	require.NoError(t, m.Migrate(db))

	require.NoError(t, goose.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable(&models.TicketModel{}))
}

func TestGooseScriptsMatchModels(t *testing.T) {
	db := openSQLite(t)

	m, err := NewManager(StrategyGoose, "sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, m.Migrate(db))

	// gorm only adds what is missing; a clean run means every model column exists
	for _, model := range models.All() {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(model))
		for _, field := range stmt.Schema.Fields {
			if field.DBName == "" {
				continue
			}
			assert.True(t, db.Migrator().HasColumn(model, field.DBName),
				"%s.%s missing from scripts", stmt.Schema.Table, field.DBName)
		}
	}
}

func TestAutoMigrateStrategy(t *testing.T) {
	db := openSQLite(t)

	m, err := NewManager(StrategyAuto, "sqlite", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, m.Migrate(db))
	assertTables(t, db)

	_, ok := m.Goose()
	assert.False(t, ok)
}

func TestNewManager_Unknown(t *testing.T) {
	_, err := NewManager("flyway", "sqlite", logger.NewNopLogger())
	assert.Error(t, err)

	_, err = NewManager(StrategyGoose, "postgres", logger.NewNopLogger())
	assert.Error(t, err)
}
