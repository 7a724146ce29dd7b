package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gnosislabs/metadata-service/internal/config"
	"github.com/gnosislabs/metadata-service/internal/llm"
)

// Unknown is the sentinel for a field the model could not determine.
const Unknown = "Unknown"

// maxPromptChars caps how much of the input text reaches the prompt.
// Extraction quality on longer documents is traded for token cost.
const maxPromptChars = 3000

const systemPrompt = "You are a metadata extraction specialist."

// Metadata holds the fields extracted from a piece of text. Every field
// is either a best-effort value or the literal "Unknown".
type Metadata struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationDate string `json:"publication_date"`
	Publisher       string `json:"publisher"`
	SourceLanguage  string `json:"source_language"`
	Genre           string `json:"genre"`
	Topic           string `json:"topic"`
}

// UnknownMetadata returns the fallback record with every field set to
// the Unknown sentinel.
func UnknownMetadata() Metadata {
	return Metadata{
		Title:           Unknown,
		Author:          Unknown,
		PublicationDate: Unknown,
		Publisher:       Unknown,
		SourceLanguage:  Unknown,
		Genre:           Unknown,
		Topic:           Unknown,
	}
}

// Result is the outcome of an extraction attempt. Extracted is false when
// the provider call or response parsing failed and Metadata holds the
// fallback record.
type Result struct {
	Metadata  Metadata
	Extracted bool
}

// Extractor turns raw text into Metadata via one chat completion.
type Extractor struct {
	provider llm.Provider
	model    string
	timeout  time.Duration
	logger   *slog.Logger
}

func NewExtractor(provider llm.Provider, cfg config.LLMConfig, logger *slog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		model:    cfg.Model,
		timeout:  time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:   logger.With(slog.String("component", "extractor")),
	}
}

// Extract never fails outward: provider errors, timeouts and malformed
// responses all collapse into the all-Unknown fallback record, observable
// only through logs.
func (e *Extractor) Extract(ctx context.Context, text, fileName, additionalInfo string) Result {
	traceID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.ChatCompletion(ctx, llm.ChatRequest{
		Model: e.model,
		Messages: []llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(text, fileName, additionalInfo)},
		},
	})
	if err != nil {
		e.logger.Error("metadata extraction failed",
			slog.String("trace_id", traceID),
			slog.String("provider", e.provider.Name()),
			slog.String("error", err.Error()),
		)
		return Result{Metadata: UnknownMetadata()}
	}

	md, err := parseResponse(resp.Content)
	if err != nil {
		e.logger.Error("metadata response unparseable",
			slog.String("trace_id", traceID),
			slog.String("provider", e.provider.Name()),
			slog.String("error", err.Error()),
		)
		return Result{Metadata: UnknownMetadata()}
	}

	e.logger.Info("metadata extracted",
		slog.String("trace_id", traceID),
		slog.String("model", resp.Model),
		slog.Int("input_tokens", resp.InputTokens),
		slog.Int("output_tokens", resp.OutputTokens),
		slog.Int64("latency_ms", resp.LatencyMs),
	)
	return Result{Metadata: md, Extracted: true}
}

func buildPrompt(text, fileName, additionalInfo string) string {
	if runes := []rune(text); len(runes) > maxPromptChars {
		text = string(runes[:maxPromptChars])
	}
	if fileName == "" {
		fileName = "the uploaded file"
	}

	var b strings.Builder
	b.WriteString("Based on the following text")
	if additionalInfo != "" {
		b.WriteString(" and additional context")
	}
	fmt.Fprintf(&b, " from the file %s, please extract metadata information.\n", fileName)
	b.WriteString("If you can't determine a specific piece of information with high confidence, use \"Unknown\".\n\n")
	if additionalInfo != "" {
		fmt.Fprintf(&b, "Additional context: %s\n\n", additionalInfo)
	}
	b.WriteString("Text to analyze:\n")
	b.WriteString(text)
	b.WriteString("\n\nPlease respond in JSON format with the following structure:\n")
	b.WriteString(`{
    "title": "Document title",
    "author": "Author name(s)",
    "publication_date": "YYYY-MM-DD or Unknown",
    "publisher": "Publisher name",
    "source_language": "Primary language of the text",
    "genre": "Document genre/category",
    "topic": "Briefly describe the main topic of the document"
}`)
	b.WriteString("\n\nBe as specific as possible while maintaining accuracy. For publication_date,\n")
	b.WriteString("if only year or year-month is known, use YYYY-01-01 or YYYY-MM-01 format.\n")
	return b.String()
}

// parseResponse strips markdown code fences and decodes the remainder as
// a strict seven-key object. A missing, extra or mistyped key is a parse
// failure, not a partial result.
func parseResponse(content string) (Metadata, error) {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	content = strings.TrimSpace(content)

	var raw struct {
		Title           *string `json:"title"`
		Author          *string `json:"author"`
		PublicationDate *string `json:"publication_date"`
		Publisher       *string `json:"publisher"`
		SourceLanguage  *string `json:"source_language"`
		Genre           *string `json:"genre"`
		Topic           *string `json:"topic"`
	}

	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Metadata{}, fmt.Errorf("decode metadata JSON: %w", err)
	}

	fields := map[string]*string{
		"title":            raw.Title,
		"author":           raw.Author,
		"publication_date": raw.PublicationDate,
		"publisher":        raw.Publisher,
		"source_language":  raw.SourceLanguage,
		"genre":            raw.Genre,
		"topic":            raw.Topic,
	}
	for name, v := range fields {
		if v == nil {
			return Metadata{}, fmt.Errorf("metadata JSON missing key %q", name)
		}
	}

	return Metadata{
		Title:           *raw.Title,
		Author:          *raw.Author,
		PublicationDate: *raw.PublicationDate,
		Publisher:       *raw.Publisher,
		SourceLanguage:  *raw.SourceLanguage,
		Genre:           *raw.Genre,
		Topic:           *raw.Topic,
	}, nil
}
