package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"hiringbooth/database"
	"hiringbooth/internal/app"
	"hiringbooth/internal/auth"
	"hiringbooth/internal/config"
	"hiringbooth/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer поднимает полный HTTP-стек поверх in-memory базы
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer собирает конфиг руками, без env и yaml:
// интеграционные тесты не должны зависеть от окружения машины
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "integration-test-secret"
	cfg.JWT.TTL = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = mustTempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/png", "application/pdf", "text/plain"}
	config.AppConfig = cfg

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

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

// mustTempDir - t.TempDir нельзя использовать из sync.Once вне теста
func mustTempDir() string {
	dir, err := os.MkdirTemp("", "hiringbooth-test-uploads-*")
	if err != nil {
		panic(err)
	}
	return dir
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// SendRequest шлет JSON-запрос и возвращает ответ вместе с телом строкой
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	return res, string(resBody)
}

// UniqueEmail дает уникальный адрес, чтобы тесты не мешали друг другу
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CreateUser создает верифицированного пользователя напрямую в базе
func CreateUser(t *testing.T, db *gorm.DB, role models.UserRole, approved bool) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Email:        UniqueEmail("it_" + string(role)),
		PasswordHash: hash,
		Role:         role,
		IsVerified:   true,
		IsApproved:   approved,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// TokenFor чеканит токен напрямую, минуя /auth/login:
// на auth-группе висит rate limit, и логин на каждый тест его бы выел
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}

// CreateApprovedEmployer - работодатель, готовый публиковать вакансии
func CreateApprovedEmployer(t *testing.T, db *gorm.DB) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, db, models.UserRoleEmployer, true)
	profile := &models.CompanyProfile{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
		Location:    "Almaty",
	}
	require.NoError(t, db.Create(profile).Error)
	return TokenFor(t, user), user
}

func CreateSeeker(t *testing.T, db *gorm.DB) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, db, models.UserRoleSeeker, false)
	return TokenFor(t, user), user
}

func CreateAdmin(t *testing.T, db *gorm.DB) (string, *models.User) {
	t.Helper()
	user := CreateUser(t, db, models.UserRoleAdmin, false)
	return TokenFor(t, user), user
}

// CreateJob публикует вакансию напрямую в базе
func CreateJob(t *testing.T, db *gorm.DB, employerID, title string) *models.Job {
	t.Helper()
	job := &models.Job{
		EmployerID:  employerID,
		Title:       title,
		Description: "Integration test job",
		Urgency:     models.JobUrgencyNotUrgent,
		IsActive:    true,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
