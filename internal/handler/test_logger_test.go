package handler

import (
	"sync"

	"pdf-intake/internal/domain"
)

// MockHandlerLogger records log entries for handler tests.
type MockHandlerLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields []interface{}
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{}
}

func (l *MockHandlerLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{})  { l.record("info", msg, fields) }
func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) { l.record("debug", msg, fields) }
func (l *MockHandlerLogger) Warn(msg string, fields ...interface{})  { l.record("warn", msg, fields) }
func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.record("error", msg, fields)
}

// With returns a child that shares the parent's entry list.
func (l *MockHandlerLogger) With(fields ...interface{}) domain.Logger {
	return &scopedLogger{parent: l, fields: fields}
}

func (l *MockHandlerLogger) find(msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

type scopedLogger struct {
	parent *MockHandlerLogger
	fields []interface{}
}

func (s *scopedLogger) withFields(fields []interface{}) []interface{} {
	return append(append([]interface{}{}, s.fields...), fields...)
}

func (s *scopedLogger) Info(msg string, fields ...interface{}) {
	s.parent.record("info", msg, s.withFields(fields))
}
func (s *scopedLogger) Debug(msg string, fields ...interface{}) {
	s.parent.record("debug", msg, s.withFields(fields))
}
func (s *scopedLogger) Warn(msg string, fields ...interface{}) {
	s.parent.record("warn", msg, s.withFields(fields))
}
func (s *scopedLogger) Error(msg string, err error, fields ...interface{}) {
	s.parent.record("error", msg, s.withFields(fields))
}
func (s *scopedLogger) With(fields ...interface{}) domain.Logger {
	return &scopedLogger{parent: s.parent, fields: s.withFields(fields)}
}

func fieldValue(fields []interface{}, key string) (interface{}, bool) {
	for i := 0; i+1 < len(fields); i += 2 {
		if k, ok := fields[i].(string); ok && k == key {
			return fields[i+1], true
		}
	}
	return nil, false
}
