package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"hiringbooth/internal/models"
	"hiringbooth/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJobPublishingGate - неодобренный работодатель не публикует вакансии
func TestJobPublishingGate(t *testing.T) {
	ts := GetTestServer(t)

	pending := helpers.CreateUser(t, ts.DB, models.UserRoleEmployer, false)
	pendingToken := helpers.TokenFor(t, pending)

	jobBody := map[string]interface{}{
		"title":       "Go developer",
		"description": "Build the backend",
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", pendingToken, jobBody)
	require.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// после одобрения и заполнения профиля компании публикация проходит
	require.NoError(t, ts.DB.Model(pending).Update("is_approved", true).Error)
	require.NoError(t, ts.DB.Create(&models.CompanyProfile{
		UserID:      pending.ID,
		CompanyName: "Approved Co",
	}).Error)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", pendingToken, jobBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// соискателю маршрут закрыт ролью
	seekerToken, _ := helpers.CreateSeeker(t, ts.DB)
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", seekerToken, jobBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestJobListingAndVisibility(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateApprovedEmployer(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Public Backend Role")
	hidden := helpers.CreateJob(t, ts.DB, employer.ID, "Hidden Role")
	require.NoError(t, ts.DB.Model(hidden).Update("is_active", false).Error)

	// публичный список отдает только активные
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs?q=Public+Backend", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, job.ID)
	assert.NotContains(t, body, hidden.ID)

	// публичная карточка скрытой вакансии - 404
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+hidden.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// владелец видит обе в своем списке
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, job.ID)
	assert.Contains(t, body, hidden.ID)
}

// Владелец с токеном открывает свою скрытую вакансию по id,
// для всех остальных тот же маршрут отвечает 404
func TestOwnerSeesInactiveJobByID(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateApprovedEmployer(t, ts.DB)
	strangerToken, _ := helpers.CreateApprovedEmployer(t, ts.DB)
	adminToken, _ := helpers.CreateAdmin(t, ts.DB)

	job := helpers.CreateJob(t, ts.DB, owner.ID, "Paused Role")
	require.NoError(t, ts.DB.Model(job).Update("is_active", false).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, job.ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// мусорный токен не ломает публичное чтение активной вакансии
	active := helpers.CreateJob(t, ts.DB, owner.ID, "Live Role")
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+active.ID, "not-a-jwt", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJobUpdateOwnership(t *testing.T) {
	ts := GetTestServer(t)

	_, owner := helpers.CreateApprovedEmployer(t, ts.DB)
	strangerToken, _ := helpers.CreateApprovedEmployer(t, ts.DB)
	adminToken, _ := helpers.CreateAdmin(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, owner.ID, "Contested Role")

	update := map[string]interface{}{"title": "Renamed Role"}

	// чужая вакансия для другого работодателя неотличима от несуществующей
	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, strangerToken, update)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/"+job.ID, adminToken, update)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Renamed Role", resp.Title)
}
