package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"hiringbooth/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coverLetter(n int) string {
	return strings.Repeat("x", n)
}

// TestApplicationFlow - отклик, просмотр работодателем, смена статуса
func TestApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateApprovedEmployer(t, ts.DB)
	seekerToken, _ := helpers.CreateSeeker(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Apply Target Role")

	// короткое письмо отклоняется
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seekerToken, map[string]interface{}{
		"cover_letter": coverLetter(99),
	})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seekerToken, map[string]interface{}{
		"cover_letter": coverLetter(150),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "pending", created.Status)

	// повторный отклик на ту же вакансию - конфликт
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seekerToken, map[string]interface{}{
		"cover_letter": coverLetter(150),
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// работодатель видит отклик
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, created.ID)

	// легаси-статус reviewed принимается и пишется как viewed
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+created.ID+"/status", employerToken, map[string]interface{}{
		"status": "reviewed",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated struct {
		Status     string  `json:"status"`
		ReviewedAt *string `json:"reviewed_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "viewed", updated.Status)
	assert.NotNil(t, updated.ReviewedAt)

	// соискатель видит обновленный статус в своем списке
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/applications/my", seekerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"viewed"`)
}

func TestApplicationAccessControl(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateApprovedEmployer(t, ts.DB)
	strangerToken, _ := helpers.CreateApprovedEmployer(t, ts.DB)
	seekerToken, _ := helpers.CreateSeeker(t, ts.DB)
	job := helpers.CreateJob(t, ts.DB, employer.ID, "Guarded Role")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", seekerToken, map[string]interface{}{
		"cover_letter": coverLetter(150),
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// чужой работодатель не видит откликов и не меняет статус
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+created.ID+"/status", strangerToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// соискатель вообще не имеет доступа к смене статуса
	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/applications/"+created.ID+"/status", seekerToken, map[string]interface{}{
		"status": "accepted",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// работодателям нельзя откликаться
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", strangerToken, map[string]interface{}{
		"cover_letter": coverLetter(150),
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
