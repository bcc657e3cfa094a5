//go:build cgo

package config

import (
	"pdf-intake/internal/domain"
	"pdf-intake/internal/infra/mupdf"
	"pdf-intake/internal/infra/pdfinfo"
)

func newMetadataReader(backend string, log domain.Logger) domain.MetadataReader {
	if backend == BackendMuPDF {
		return mupdf.NewMetadataReader()
	}
	return pdfinfo.NewMetadataReader()
}
