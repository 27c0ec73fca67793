package external

import (
	"sync"

	"floodwatch.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// testLogger captures log entries for assertions
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) add(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := logEntry{level: level, message: msg, fields: make(map[string]interface{})}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.add("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.add("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.add("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.add("ERROR", msg, fields) }

func (l *testLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}
