package service

import (
	"context"
	"fmt"
	"time"

	"pdf-intake/internal/domain"
	apperrors "pdf-intake/pkg/errors"
	"pdf-intake/pkg/logger"
)

var _ domain.PDFProcessor = (*PDFService)(nil)

type processingState string

const (
	stateValidating      processingState = "validating"
	stateMetadataReading processingState = "metadata_reading"
	stateTextExtracting  processingState = "text_extracting"
	stateAssembling      processingState = "assembling"
	stateDone            processingState = "done"
)

// PDFService implements the PDF intake and extraction business logic.
// It keeps no per-request state and is safe for concurrent use.
type PDFService struct {
	metadataReader domain.MetadataReader
	tokenizer      domain.TextTokenizer
	maxFileSize    int64
	parseTimeout   time.Duration
	logger         domain.Logger
}

// NewPDFService creates a new PDF service instance
func NewPDFService(
	metadataReader domain.MetadataReader,
	tokenizer domain.TextTokenizer,
	maxFileSize int64,
	parseTimeout time.Duration,
	logger domain.Logger,
) *PDFService {
	return &PDFService{
		metadataReader: metadataReader,
		tokenizer:      tokenizer,
		maxFileSize:    maxFileSize,
		parseTimeout:   parseTimeout,
		logger:         logger,
	}
}

// MaxFileSize returns the upload limit in bytes.
func (s *PDFService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Process validates doc, reads its metadata, extracts its text and assembles
// the result. Every failure, panics included, yields a result whose only
// meaningful field is Error; the classified cause is returned alongside.
func (s *PDFService) Process(ctx context.Context, doc *domain.UploadedDocument) (result domain.ExtractionResult, err error) {
	log := logger.FromContext(ctx, s.logger)
	if doc != nil {
		log = log.With("filename", doc.Filename)
	}

	defer func() {
		if r := recover(); r != nil {
			err = apperrors.NewUnknownError(fmt.Errorf("panic: %v", r))
		}
		if err != nil {
			s.logFailure(log, err)
			result = domain.ExtractionResult{Error: apperrors.ClientMessage(err)}
		}
	}()

	return s.process(ctx, log, doc)
}

func (s *PDFService) process(ctx context.Context, log domain.Logger, doc *domain.UploadedDocument) (domain.ExtractionResult, error) {
	log.Debug("PDF processing state", "state", stateValidating)
	if doc == nil {
		return domain.ExtractionResult{}, apperrors.NewMissingInputError()
	}
	log.Info("Processing PDF", "content_type", doc.ContentType, "size", doc.Size)

	if err := s.validate(doc); err != nil {
		return domain.ExtractionResult{}, err
	}

	log.Debug("PDF processing state", "state", stateMetadataReading)
	info, err := s.metadataReader.ReadMetadata(doc.Data)
	if err != nil {
		return domain.ExtractionResult{}, apperrors.NewExtractionError("metadata", err)
	}

	log.Debug("PDF processing state", "state", stateTextExtracting, "page_count", info.PageCount)
	text, err := s.extractText(ctx, doc.Data)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	log.Debug("PDF processing state", "state", stateAssembling)
	fileSize := FormatFileSize(int64(len(doc.Data)))
	result := domain.ExtractionResult{
		Text:      text,
		PageCount: info.PageCount,
		Metadata: domain.ResultMetadata{
			Title:    optional(info.Title),
			Author:   optional(info.Author),
			Creator:  optional(info.Creator),
			Producer: optional(info.Producer),
			FileSize: &fileSize,
		},
	}

	log.Info("PDF processed", "state", stateDone, "page_count", result.PageCount, "text_length", len(result.Text))
	return result, nil
}

func (s *PDFService) validate(doc *domain.UploadedDocument) error {
	size := doc.Size
	if n := int64(len(doc.Data)); n > size {
		size = n
	}
	if size > s.maxFileSize {
		return apperrors.NewSizeLimitError(
			FormatFileSize(s.maxFileSize),
			fmt.Errorf("%w: %d bytes (max %d)", domain.ErrFileTooLarge, size, s.maxFileSize),
		)
	}
	return nil
}

// extractText waits for the first of: the tokenizer's terminal event, the
// parse timeout, or cancellation of ctx. Whatever loses is ignored; the
// tokenizer's buffered channel lets it finish on its own.
func (s *PDFService) extractText(ctx context.Context, data []byte) (string, error) {
	events := s.tokenizer.Parse(data)

	timer := time.NewTimer(s.parseTimeout)
	defer timer.Stop()

	select {
	case ev, ok := <-events:
		if !ok || (ev.Err == nil && ev.Document == nil) {
			return "", apperrors.NewExtractionError("tokenizer", domain.ErrTokenizerClosed)
		}
		if ev.Err != nil {
			return "", apperrors.NewExtractionError("tokenizer", ev.Err)
		}
		return AssembleText(ev.Document), nil
	case <-timer.C:
		return "", apperrors.NewParseTimeoutError(fmt.Errorf("%w after %s", domain.ErrParseTimeout, s.parseTimeout))
	case <-ctx.Done():
		return "", apperrors.NewExtractionError("request cancelled", ctx.Err())
	}
}

func (s *PDFService) logFailure(log domain.Logger, err error) {
	switch apperrors.Classify(err) {
	case apperrors.ErrorTypeMissingInput, apperrors.ErrorTypeSizeLimitExceeded:
		log.Warn("PDF rejected", "reason", err.Error())
	default:
		log.Error("PDF processing error", err, "type", apperrors.Classify(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
