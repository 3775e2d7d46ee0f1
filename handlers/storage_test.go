package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records calls instead of talking to the blob store.
type fakeStorage struct {
	uploadedFolder string
	deletedID      string
	resolvedID     string
	err            error
}

func (f *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploadedFolder = destFolder
	return "https://cdn.example.com/" + destFolder + "/img", nil
}

func (f *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = publicID
	return nil
}

func (f *fakeStorage) GetDownloadURL(ctx context.Context, publicID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.resolvedID = publicID
	return "https://cdn.example.com/" + publicID, nil
}

func storageRouter(f *fakeStorage) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewStorageHandler(f)
	r.POST("/api/uploads", h.UploadImageHandler)
	r.GET("/api/uploads/url/*publicId", h.ResolveImageURLHandler)
	r.DELETE("/api/admin/uploads/*publicId", h.DeleteImageHandler)
	return r
}

func multipartUpload(t *testing.T, folder string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "cut.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	if folder != "" {
		require.NoError(t, w.WriteField("folder", folder))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadImageHandler(t *testing.T) {
	t.Run("uploads into the requested folder", func(t *testing.T) {
		fake := &fakeStorage{}
		body, contentType := multipartUpload(t, "gallery")

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		storageRouter(fake).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "gallery", fake.uploadedFolder)
		assert.Contains(t, w.Body.String(), "https://cdn.example.com/gallery/img")
	})

	t.Run("missing file is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		w := httptest.NewRecorder()
		storageRouter(&fakeStorage{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure is a bad gateway", func(t *testing.T) {
		fake := &fakeStorage{err: errors.New("cdn down")}
		body, contentType := multipartUpload(t, "")

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		storageRouter(fake).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestDeleteImageHandler(t *testing.T) {
	t.Run("passes the public ID with folder slashes intact", func(t *testing.T) {
		fake := &fakeStorage{}
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/gallery/abc123", nil)
		w := httptest.NewRecorder()
		storageRouter(fake).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gallery/abc123", fake.deletedID)
	})

	t.Run("empty public ID is a bad request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/", nil)
		w := httptest.NewRecorder()
		storageRouter(&fakeStorage{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("upstream failure is a bad gateway", func(t *testing.T) {
		fake := &fakeStorage{err: errors.New("cdn down")}
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/uploads/gallery/abc123", nil)
		w := httptest.NewRecorder()
		storageRouter(fake).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestResolveImageURLHandler(t *testing.T) {
	fake := &fakeStorage{}
	req := httptest.NewRequest(http.MethodGet, "/api/uploads/url/services/trim42", nil)
	w := httptest.NewRecorder()
	storageRouter(fake).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "services/trim42", fake.resolvedID)
	assert.Contains(t, w.Body.String(), "https://cdn.example.com/services/trim42")
}
