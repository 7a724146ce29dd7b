package models

import "time"

// Content is one ingested file and its descriptive metadata. Rows are
// created by the upload pipeline; this service only reads them.
type Content struct {
	ID              int64      `json:"id" db:"id"`
	UserID          int64      `json:"user_id" db:"user_id"`
	FileName        string     `json:"file_name" db:"file_name"`
	FileType        string     `json:"file_type" db:"file_type"`
	UploadDate      time.Time  `json:"upload_date" db:"upload_date"`
	FileSize        int64      `json:"file_size" db:"file_size"`
	S3Key           *string    `json:"s3_key" db:"s3_key"`
	ChunkCount      int        `json:"chunk_count" db:"chunk_count"`
	CustomPrompt    *string    `json:"custom_prompt,omitempty" db:"custom_prompt"`
	Title           *string    `json:"title" db:"title"`
	Author          *string    `json:"author" db:"author"`
	PublicationDate *time.Time `json:"publication_date" db:"publication_date"`
	Publisher       *string    `json:"publisher" db:"publisher"`
	SourceLanguage  *string    `json:"source_language" db:"source_language"`
	Genre           *string    `json:"genre" db:"genre"`
	Topic           *string    `json:"topic" db:"topic"`
}
