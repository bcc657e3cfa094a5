//go:build !cgo

package config

import (
	"pdf-intake/internal/domain"
	"pdf-intake/internal/infra/pdfinfo"
)

// newMetadataReader always returns the pdfcpu reader: the MuPDF backend
// needs cgo.
func newMetadataReader(backend string, log domain.Logger) domain.MetadataReader {
	if backend == BackendMuPDF {
		log.Warn("MuPDF backend unavailable without cgo, using pdfcpu", "requested_backend", backend)
	}
	return pdfinfo.NewMetadataReader()
}
