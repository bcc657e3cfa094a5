package domain

import (
	"context"
	"time"
)

// PDFProcessor turns an uploaded document into an extraction result.
// The result is always usable: on failure its Error field is set and the
// returned error carries the classified cause for status mapping and logs.
type PDFProcessor interface {
	Process(ctx context.Context, doc *UploadedDocument) (ExtractionResult, error)
	MaxFileSize() int64
}

// MetadataReader decodes the PDF container and reports document-level metadata.
type MetadataReader interface {
	ReadMetadata(data []byte) (*DocumentInfo, error)
}

// TextTokenizer parses the page content streams of a PDF.
// The returned channel delivers exactly one TokenizerEvent.
type TextTokenizer interface {
	Parse(data []byte) <-chan TokenizerEvent
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetLogFormat() string
	GetMaxFileSize() int64
	GetParseTimeout() time.Duration
	GetMetadataBackend() string
	GetAllowedOrigins() []string
}
