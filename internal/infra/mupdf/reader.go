//go:build cgo

package mupdf

import (
	"errors"
	"fmt"
	"strings"

	"pdf-intake/internal/domain"

	"github.com/gen2brain/go-fitz"
)

var _ domain.MetadataReader = (*MetadataReader)(nil)

// MetadataReader uses MuPDF's document info dictionary accessors.
type MetadataReader struct{}

// NewMetadataReader creates a MuPDF backed reader.
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// ReadMetadata opens the PDF from memory and reports its info dictionary.
func (r *MetadataReader) ReadMetadata(data []byte) (*domain.DocumentInfo, error) {
	if len(data) == 0 {
		return nil, errors.New("empty PDF content")
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	meta := doc.Metadata()
	return &domain.DocumentInfo{
		Title:     field(meta, "title"),
		Author:    field(meta, "author"),
		Creator:   field(meta, "creator"),
		Producer:  field(meta, "producer"),
		PageCount: doc.NumPage(),
	}, nil
}

// field reads a metadata value. MuPDF fills a fixed-size buffer, so the value
// ends at the first NUL; an absent key comes back as all NULs.
func field(meta map[string]string, key string) string {
	value, _, _ := strings.Cut(meta[key], "\x00")
	return value
}
