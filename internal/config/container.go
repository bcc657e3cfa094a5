package config

import (
	"pdf-intake/internal/domain"
	"pdf-intake/internal/infra/pdftext"
	"pdf-intake/internal/service"
	"pdf-intake/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	MetadataReader domain.MetadataReader
	TextTokenizer  domain.TextTokenizer
	PDFService     domain.PDFProcessor
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the application around an existing configuration.
func NewContainerWithConfig(config domain.Config) *Container {
	appLogger := logger.NewLogger(config.GetLogLevel(), config.GetLogFormat())

	metadataReader := newMetadataReader(config.GetMetadataBackend(), appLogger)
	tokenizer := pdftext.NewTokenizer()

	pdfService := service.NewPDFService(
		metadataReader,
		tokenizer,
		config.GetMaxFileSize(),
		config.GetParseTimeout(),
		appLogger,
	)

	appLogger.Info("Container initialized",
		"metadata_backend", config.GetMetadataBackend(),
		"max_file_size", config.GetMaxFileSize(),
		"parse_timeout", config.GetParseTimeout().String(),
	)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		MetadataReader: metadataReader,
		TextTokenizer:  tokenizer,
		PDFService:     pdfService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetPDFService returns the extraction service
func (c *Container) GetPDFService() domain.PDFProcessor {
	return c.PDFService
}
