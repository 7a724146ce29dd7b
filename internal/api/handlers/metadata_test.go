package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnosislabs/metadata-service/internal/content"
	"github.com/gnosislabs/metadata-service/internal/metadata"
	"github.com/gnosislabs/metadata-service/internal/models"
)

type stubExtractor struct {
	result metadata.Result
	calls  int
}

func (s *stubExtractor) Extract(ctx context.Context, text, fileName, additionalInfo string) metadata.Result {
	s.calls++
	return s.result
}

type stubStore struct {
	content *models.Content
	err     error
}

func (s *stubStore) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.content, nil
}

func newTestRouter(e Extractor, s ContentStore) http.Handler {
	h := NewMetadataHandler(e, s)
	r := chi.NewRouter()
	r.Post("/api/metadata/extract", h.Extract)
	r.Get("/api/content/{id}/metadata", h.GetContentMetadata)
	return r
}

func strPtr(s string) *string { return &s }

func TestExtractMissingTextReturns400(t *testing.T) {
	for name, body := range map[string]string{
		"no text key": `{"file_name": "a.txt"}`,
		"not json":    `this is not json`,
		"empty body":  ``,
	} {
		t.Run(name, func(t *testing.T) {
			ext := &stubExtractor{}
			router := newTestRouter(ext, &stubStore{})

			req := httptest.NewRequest(http.MethodPost, "/api/metadata/extract", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, 0, ext.calls, "extractor must not run without text")
		})
	}
}

func TestExtractEmptyTextStillRuns(t *testing.T) {
	ext := &stubExtractor{result: metadata.Result{Metadata: metadata.UnknownMetadata()}}
	router := newTestRouter(ext, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/metadata/extract", strings.NewReader(`{"text": ""}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ext.calls, "present-but-empty text goes to the engine")
}

func TestExtractReturnsMetadata(t *testing.T) {
	ext := &stubExtractor{result: metadata.Result{
		Metadata: metadata.Metadata{
			Title:           "The Theory of Money and Credit",
			Author:          "Ludwig von Mises",
			PublicationDate: "1912-01-01",
			Publisher:       "Unknown",
			SourceLanguage:  "English",
			Genre:           "Economics",
			Topic:           "Monetary theory",
		},
		Extracted: true,
	}}
	router := newTestRouter(ext, &stubStore{})

	body := `{"text": "The Theory of Money and Credit by Ludwig von Mises, first published 1912..."}`
	req := httptest.NewRequest(http.MethodPost, "/api/metadata/extract", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Metadata extracted successfully", resp.Message)
	assert.Equal(t, "The Theory of Money and Credit", resp.Metadata.Title)
	assert.Equal(t, 1, ext.calls)
}

func TestExtractFallbackStillReturns200(t *testing.T) {
	ext := &stubExtractor{result: metadata.Result{Metadata: metadata.UnknownMetadata()}}
	router := newTestRouter(ext, &stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/metadata/extract", strings.NewReader(`{"text": "gibberish"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp extractResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, metadata.UnknownMetadata(), resp.Metadata)
}

func TestGetContentMetadataNotFound(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubStore{err: content.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/content/99/metadata", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContentMetadataBadID(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubStore{})

	for _, path := range []string{"/api/content/abc/metadata", "/api/content/0/metadata", "/api/content/-5/metadata"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestGetContentMetadataStoreErrorReturns500(t *testing.T) {
	router := newTestRouter(&stubExtractor{}, &stubStore{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/content/7/metadata", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestGetContentMetadataProjection(t *testing.T) {
	upload := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	pub := time.Date(1912, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &models.Content{
		ID:              42,
		UserID:          7,
		FileName:        "mises.pdf",
		FileType:        "pdf",
		UploadDate:      upload,
		FileSize:        123456,
		ChunkCount:      12,
		Title:           strPtr("The Theory of Money and Credit"),
		Author:          strPtr("Ludwig von Mises"),
		PublicationDate: &pub,
		SourceLanguage:  strPtr("English"),
	}
	router := newTestRouter(&stubExtractor{}, &stubStore{content: row})

	req := httptest.NewRequest(http.MethodGet, "/api/content/42/metadata", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message  string                 `json:"message"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Metadata retrieved successfully", resp.Message)
	assert.Equal(t, float64(42), resp.Metadata["id"])
	assert.Equal(t, "1912-01-01", resp.Metadata["publication_date"])
	assert.Equal(t, "2025-03-14T09:30:00Z", resp.Metadata["upload_date"])

	// absent optionals are null, not omitted
	for _, key := range []string{"s3_key", "publisher", "genre", "topic"} {
		v, ok := resp.Metadata[key]
		require.True(t, ok, key)
		assert.Nil(t, v, key)
	}

	// custom_prompt is internal and never projected
	_, ok := resp.Metadata["custom_prompt"]
	assert.False(t, ok)
}
