package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gnosislabs/metadata-service/internal/cache"
	"github.com/gnosislabs/metadata-service/internal/models"
)

// ErrNotFound is returned when no content row exists for the given id.
var ErrNotFound = errors.New("content not found")

// ErrNoDatabase is returned when the service started without a
// reachable database.
var ErrNoDatabase = errors.New("database not configured")

const cacheTTL = 5 * time.Minute

// Store reads content rows by primary key. Lookups are read-through
// cached; extraction results are never stored here.
type Store struct {
	db     *pgxpool.Pool
	cache  *cache.Cache
	logger *slog.Logger
}

func NewStore(db *pgxpool.Pool, c *cache.Cache, logger *slog.Logger) *Store {
	return &Store{
		db:     db,
		cache:  c,
		logger: logger.With(slog.String("component", "content_store")),
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("content:meta:%d", id)
}

func (s *Store) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	if s.db == nil {
		return nil, fmt.Errorf("get content %d: %w", id, ErrNoDatabase)
	}

	if s.cache != nil {
		var cached models.Content
		if err := s.cache.Get(ctx, cacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var c models.Content
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, file_name, file_type, upload_date, file_size, s3_key, chunk_count,
		        custom_prompt, title, author, publication_date, publisher, source_language, genre, topic
		 FROM content WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.UserID, &c.FileName, &c.FileType, &c.UploadDate, &c.FileSize, &c.S3Key, &c.ChunkCount,
		&c.CustomPrompt, &c.Title, &c.Author, &c.PublicationDate, &c.Publisher, &c.SourceLanguage, &c.Genre, &c.Topic)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get content %d: %w", id, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(id), &c, cacheTTL); err != nil {
			s.logger.Debug("cache set failed", slog.Int64("id", id), slog.String("error", err.Error()))
		}
	}

	return &c, nil
}
