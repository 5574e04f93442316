package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"hiringbooth/database"
	"hiringbooth/internal/auth"
	"hiringbooth/internal/config"
	"hiringbooth/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "service-test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/png", "application/pdf", "text/plain"}
	config.AppConfig = cfg
}

// fakeEmailProvider записывает отправленные письма и умеет падать по заказу
type fakeEmailProvider struct {
	mu        sync.Mutex
	otps      map[string]string
	decisions map[string]bool
	failAll   bool
}

func newFakeEmailProvider() *fakeEmailProvider {
	return &fakeEmailProvider{
		otps:      make(map[string]string),
		decisions: make(map[string]bool),
	}
}

func (f *fakeEmailProvider) Send(to, subject, htmlBody string) error {
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	return nil
}

func (f *fakeEmailProvider) SendOTP(to, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	f.otps[to] = code
	return nil
}

func (f *fakeEmailProvider) SendEmployerDecision(to string, approved bool, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("smtp unavailable")
	}
	f.decisions[to] = approved
	return nil
}

func (f *fakeEmailProvider) sentOTP(to string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.otps[to]
}

func (f *fakeEmailProvider) sentDecision(to string) (approved, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	approved, ok = f.decisions[to]
	return approved, ok
}

var testUserSeq int

func createVerifiedUser(t *testing.T, db *gorm.DB, role models.UserRole, approved bool) *models.User {
	t.Helper()
	testUserSeq++

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        fmt.Sprintf("%s_%d_%d@test.com", role, testUserSeq, time.Now().UnixNano()),
		PasswordHash: hash,
		Role:         role,
		IsVerified:   true,
		IsApproved:   approved,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCompanyProfile(t *testing.T, db *gorm.DB, userID, companyName string) *models.CompanyProfile {
	t.Helper()
	profile := &models.CompanyProfile{UserID: userID, CompanyName: companyName}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createActiveJob(t *testing.T, db *gorm.DB, employerID string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:  employerID,
		Title:       "Go developer",
		Description: "test",
		IsActive:    true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// longCoverLetter возвращает письмо ровно из n символов
func longCoverLetter(n int) string {
	letter := make([]rune, n)
	for i := range letter {
		letter[i] = 'a'
	}
	return string(letter)
}
