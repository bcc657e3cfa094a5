// Package pdfinfo reads document-level metadata with pdfcpu.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"

	"pdf-intake/internal/domain"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var _ domain.MetadataReader = (*MetadataReader)(nil)

// MetadataReader decodes the PDF object graph with pdfcpu.
type MetadataReader struct {
	newConfig func() *model.Configuration
}

// NewMetadataReader creates a pdfcpu backed reader. pdfcpu's user config
// directory is disabled: the service never writes PDFs.
func NewMetadataReader() *MetadataReader {
	api.DisableConfigDir()
	return &MetadataReader{newConfig: relaxedConfig}
}

func relaxedConfig() *model.Configuration {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	return cfg
}

// ReadMetadata parses data and returns title, author, creator, producer and page count.
func (r *MetadataReader) ReadMetadata(data []byte) (*domain.DocumentInfo, error) {
	if len(data) == 0 {
		return nil, errors.New("empty PDF content")
	}

	ctx, err := api.ReadAndValidate(bytes.NewReader(data), r.newConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	pageCount := ctx.PageCount
	if pageCount < 0 {
		pageCount = 0
	}

	return &domain.DocumentInfo{
		Title:     ctx.Title,
		Author:    ctx.Author,
		Creator:   ctx.Creator,
		Producer:  ctx.Producer,
		PageCount: pageCount,
	}, nil
}
