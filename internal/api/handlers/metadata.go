package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gnosislabs/metadata-service/internal/content"
	"github.com/gnosislabs/metadata-service/internal/metadata"
	"github.com/gnosislabs/metadata-service/internal/models"
)

// Extractor is the extraction engine contract the handler depends on.
type Extractor interface {
	Extract(ctx context.Context, text, fileName, additionalInfo string) metadata.Result
}

// ContentStore is the read side of the content table.
type ContentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Content, error)
}

type MetadataHandler struct {
	extractor Extractor
	store     ContentStore
}

func NewMetadataHandler(extractor Extractor, store ContentStore) *MetadataHandler {
	return &MetadataHandler{extractor: extractor, store: store}
}

type extractRequest struct {
	Text           *string `json:"text"`
	FileName       string  `json:"file_name"`
	AdditionalInfo string  `json:"additional_info"`
}

type extractResponse struct {
	Message  string            `json:"message"`
	Metadata metadata.Metadata `json:"metadata"`
}

// Extract handles metadata extraction for ad-hoc text.
//
// @Summary Extract metadata from text
// @Description Runs LLM-based extraction of bibliographic metadata over the supplied text. Fields the model cannot determine come back as the literal "Unknown".
// @Tags Metadata
// @Accept json
// @Produce json
// @Param request body extractRequest true "Text to analyze, with optional file name and additional context"
// @Success 200 {object} extractResponse
// @Failure 400 {object} map[string]string "No text provided"
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /api/metadata/extract [post]
func (h *MetadataHandler) Extract(w http.ResponseWriter, r *http.Request) {
	// Only an absent text key (or unparseable body) is a client error;
	// empty text still goes to the engine.
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no text provided"})
		return
	}

	result := h.extractor.Extract(r.Context(), *req.Text, req.FileName, req.AdditionalInfo)

	writeJSON(w, http.StatusOK, extractResponse{
		Message:  "Metadata extracted successfully",
		Metadata: result.Metadata,
	})
}

// contentMetadata is the wire projection of a content row. Date fields
// are textual; absent optionals serialize as null.
type contentMetadata struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	FileName        string  `json:"file_name"`
	FileType        string  `json:"file_type"`
	UploadDate      string  `json:"upload_date"`
	FileSize        int64   `json:"file_size"`
	S3Key           *string `json:"s3_key"`
	ChunkCount      int     `json:"chunk_count"`
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	PublicationDate *string `json:"publication_date"`
	Publisher       *string `json:"publisher"`
	SourceLanguage  *string `json:"source_language"`
	Genre           *string `json:"genre"`
	Topic           *string `json:"topic"`
}

type contentMetadataResponse struct {
	Message  string          `json:"message"`
	Metadata contentMetadata `json:"metadata"`
}

// GetContentMetadata serves the stored metadata for one content row.
//
// @Summary Get metadata for stored content
// @Description Returns the persisted metadata record for a content id, including upload details and extracted bibliographic fields.
// @Tags Metadata
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} contentMetadataResponse
// @Failure 401 {object} map[string]string "Missing or invalid API key"
// @Failure 404 {object} map[string]string "Content not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security ApiKeyAuth
// @Router /api/content/{id}/metadata [get]
func (h *MetadataHandler) GetContentMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "content not found"})
		return
	}

	c, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "content not found"})
			return
		}
		slog.Error("content lookup failed", slog.Int64("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, contentMetadataResponse{
		Message:  "Metadata retrieved successfully",
		Metadata: projectContent(c),
	})
}

func projectContent(c *models.Content) contentMetadata {
	var pubDate *string
	if c.PublicationDate != nil {
		d := c.PublicationDate.Format("2006-01-02")
		pubDate = &d
	}

	return contentMetadata{
		ID:              c.ID,
		UserID:          c.UserID,
		FileName:        c.FileName,
		FileType:        c.FileType,
		UploadDate:      c.UploadDate.Format(time.RFC3339),
		FileSize:        c.FileSize,
		S3Key:           c.S3Key,
		ChunkCount:      c.ChunkCount,
		Title:           c.Title,
		Author:          c.Author,
		PublicationDate: pubDate,
		Publisher:       c.Publisher,
		SourceLanguage:  c.SourceLanguage,
		Genre:           c.Genre,
		Topic:           c.Topic,
	}
}
