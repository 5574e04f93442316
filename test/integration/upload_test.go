package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"testing"

	"hiringbooth/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func uploadFile(t *testing.T, ts *helpers.TestServer, token, folder, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("folder", folder))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/uploads", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()

	return res, string(body)
}

// TestUploadServeDelete - полный цикл жизни файла через HTTP
func TestUploadServeDelete(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateSeeker(t, ts.DB)

	res, body := uploadFile(t, ts, token, "avatars", "photo.png", testPNG)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var uploaded struct {
		URL         string `json:"url"`
		ContentType string `json:"content_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &uploaded))
	assert.Equal(t, "image/png", uploaded.ContentType)

	// файл отдается по публичному URL
	res, body = ts.SendRequest(t, http.MethodGet, uploaded.URL, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, string(testPNG), body)

	// чужой токен не удаляет файл
	strangerToken, _ := helpers.CreateSeeker(t, ts.DB)
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/uploads", strangerToken, map[string]interface{}{
		"url": uploaded.URL,
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodDelete, "/api/v1/uploads", token, map[string]interface{}{
		"url": uploaded.URL,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodGet, uploaded.URL, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUploadRejectsForgedExtension(t *testing.T) {
	ts := GetTestServer(t)
	token, _ := helpers.CreateSeeker(t, ts.DB)

	// содержимое gif под именем png
	res, body := uploadFile(t, ts, token, "avatars", "photo.png", []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00"))
	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode, body)
}

func TestUploadRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := uploadFile(t, ts, "", "avatars", "photo.png", testPNG)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
