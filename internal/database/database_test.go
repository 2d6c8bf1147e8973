package database_test

import (
	"bytes"
	"fmt"
	"testing"

	"toko-core/internal/database"
	"toko-core/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestOpenAndMigrate(t *testing.T) {
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, model := range []interface{}{&models.Category{}, &models.Product{}, &models.Enquiry{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Category{}, "NameKey"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open("oracle", "whatever")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNewLogger_SkipsRecordNotFound(t *testing.T) {
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New()))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	var buf bytes.Buffer
	quiet := db.Session(&gorm.Session{Logger: database.NewLogger(&buf, logger.Warn)})

	err = quiet.First(&models.Category{}, 999).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	err = quiet.Exec("SELECT * FROM no_such_table").Error
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "no_such_table")
}
