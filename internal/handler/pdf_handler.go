package handler

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-intake/internal/domain"
	"pdf-intake/internal/service"
	apperrors "pdf-intake/pkg/errors"
)

const (
	uploadField = "pdf"

	// room for multipart boundaries and headers on top of the file itself
	multipartOverhead int64 = 1 << 20
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"orNotAvailable": orNotAvailable,
}).ParseFS(templateFS, "templates/index.html"))

// PDFHandler handles HTTP requests for PDF operations
type PDFHandler struct {
	pdfService domain.PDFProcessor
	logger     domain.Logger
}

// NewPDFHandler creates a new PDF handler instance
func NewPDFHandler(pdfService domain.PDFProcessor, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		pdfService: pdfService,
		logger:     logger,
	}
}

// ExtractPDF handles POST /api/v1/extract and answers with the extraction
// result as JSON.
func (h *PDFHandler) ExtractPDF(w http.ResponseWriter, r *http.Request) {
	result, err := h.extract(w, r)
	writeJSON(w, apperrors.GetStatusCode(err), result)
}

// ShowUploadForm renders the empty upload form
func (h *PDFHandler) ShowUploadForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, h.newPageView(nil))
}

// SubmitUploadForm processes a browser upload and renders the outcome on the
// same page.
func (h *PDFHandler) SubmitUploadForm(w http.ResponseWriter, r *http.Request) {
	result, err := h.extract(w, r)
	h.render(w, r, apperrors.GetStatusCode(err), h.newPageView(&result))
}

func (h *PDFHandler) extract(w http.ResponseWriter, r *http.Request) (domain.ExtractionResult, error) {
	doc, err := h.readUpload(w, r)
	if err != nil {
		loggerFor(r, h.logger).Warn("Rejected upload", "error", err.Error())
		return domain.ExtractionResult{Error: apperrors.ClientMessage(err)}, err
	}
	return h.pdfService.Process(r.Context(), doc)
}

// readUpload pulls the "pdf" form file into memory. A request without the
// file yields a nil document so the service reports the missing input.
func (h *PDFHandler) readUpload(w http.ResponseWriter, r *http.Request) (*domain.UploadedDocument, error) {
	maxSize := h.pdfService.MaxFileSize()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	// The memory budget covers the whole capped body so nothing spills to disk.
	if err := r.ParseMultipartForm(maxSize + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewSizeLimitError(service.FormatFileSize(maxSize), err)
		}
		loggerFor(r, h.logger).Debug("No multipart form in request", "error", err.Error())
		return nil, nil
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, nil
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to read uploaded file", err)
	}

	return &domain.UploadedDocument{
		Data:        data,
		Filename:    filepath.Base(header.Filename),
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

type pageView struct {
	MaxFileSize string
	Result      *domain.ExtractionResult
	Paragraphs  []string
}

func (h *PDFHandler) newPageView(result *domain.ExtractionResult) pageView {
	view := pageView{
		MaxFileSize: service.FormatFileSize(h.pdfService.MaxFileSize()),
		Result:      result,
	}
	if result != nil && !result.Failed() {
		view.Paragraphs = paragraphs(result.Text)
	}
	return view
}

func (h *PDFHandler) render(w http.ResponseWriter, r *http.Request, status int, view pageView) {
	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, view); err != nil {
		loggerFor(r, h.logger).Error("Failed to render page", err)
		writeError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, buf.String())
}

// paragraphs splits extracted text into its non-blank lines
func paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

func orNotAvailable(value *string) string {
	if value == nil || *value == "" {
		return "Not available"
	}
	return *value
}
