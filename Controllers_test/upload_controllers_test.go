package Controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/qr-menu-app/controllers"
	"github.com/yeremiapane/qr-menu-app/utils"
)

func setupUploadRouter(dir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	uploadCtrl := controllers.NewUploadController()
	uploadCtrl.UploadDir = dir
	router.POST("/api/admin/upload", uploadCtrl.UploadFile)
	return router
}

func multipartFile(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadAcceptsAllowedImage(t *testing.T) {
	utils.InitLogger()
	dir := t.TempDir()
	router := setupUploadRouter(dir)

	body, contentType := multipartFile(t, "file", "menu.png", []byte("\x89PNG fake image"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["url"], "/static/uploads/")
	assert.Contains(t, resp["url"], "menu.png")

	// The file actually landed in the upload directory
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, ".png", filepath.Ext(entries[0].Name()))
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	utils.InitLogger()
	router := setupUploadRouter(t.TempDir())

	body, contentType := multipartFile(t, "file", "script.sh", []byte("#!/bin/sh"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	utils.InitLogger()
	router := setupUploadRouter(t.TempDir())

	body, contentType := multipartFile(t, "wrong_field", "menu.png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
