package domain

import "errors"

// Domain errors
var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrParseTimeout    = errors.New("PDF parsing timeout")
	ErrTokenizerClosed = errors.New("tokenizer closed without an event")
)
