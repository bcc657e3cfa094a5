package service

import (
	"pdf-intake/internal/domain"
)

// Mock logger used by service package tests.
type MockLogger struct{}

func (l *MockLogger) Info(msg string, fields ...interface{})             {}
func (l *MockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *MockLogger) Debug(msg string, fields ...interface{})            {}
func (l *MockLogger) Warn(msg string, fields ...interface{})             {}
func (l *MockLogger) With(fields ...interface{}) domain.Logger           { return l }

type MockMetadataReader struct {
	info   *domain.DocumentInfo
	err    error
	panics bool
	calls  int
}

func (m *MockMetadataReader) ReadMetadata(data []byte) (*domain.DocumentInfo, error) {
	m.calls++
	if m.panics {
		panic("decoder exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.info, nil
}

// MockTokenizer hands out a channel the test controls. If event is set it is
// delivered immediately.
type MockTokenizer struct {
	event  *domain.TokenizerEvent
	events chan domain.TokenizerEvent
	calls  int
}

func (m *MockTokenizer) Parse(data []byte) <-chan domain.TokenizerEvent {
	m.calls++
	if m.events == nil {
		m.events = make(chan domain.TokenizerEvent, 1)
	}
	if m.event != nil {
		m.events <- *m.event
	}
	return m.events
}

func pagesDocument(pages ...[]string) *domain.TextDocument {
	doc := &domain.TextDocument{}
	for _, items := range pages {
		var page domain.TextPage
		for _, item := range items {
			page.Texts = append(page.Texts, domain.TextItem{Runs: []domain.TextRun{{T: item}}})
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc
}
