package repositories

import (
	"fmt"
	"testing"
	"time"

	"hiringbooth/database"
	"hiringbooth/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB поднимает sqlite в памяти со схемой приложения.
// TranslateError дает gorm.ErrDuplicatedKey на нарушении уникальных
// индексов, как и на postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// одна коннекция, иначе каждая получает свою пустую in-memory базу
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

var seedCounter int

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	seedCounter++

	user := &models.User{
		Email:        fmt.Sprintf("%s_%d_%d@test.com", role, seedCounter, time.Now().UnixNano()),
		PasswordHash: "$2a$10$fake.hash.for.tests",
		Role:         role,
		IsVerified:   true,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID, title string) *models.Job {
	t.Helper()

	job := &models.Job{
		EmployerID:  employerID,
		Title:       title,
		Description: "test description",
		IsActive:    true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
