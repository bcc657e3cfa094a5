// Package mupdf reads document-level metadata through MuPDF (go-fitz).
//
// go-fitz links MuPDF statically when cgo is enabled and otherwise loads
// libmupdf at init, so the reader is only built with cgo.
package mupdf
