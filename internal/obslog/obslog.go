// Package obslog is the optimizer's file logger: one log file per run, a
// small set of named levels, generalized from the teacher's
// internal/logger file-per-symbol trading log.
package obslog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level names one log line's category.
type Level string

const (
	Info       Level = "INFO"
	Warning    Level = "WARN"
	Error      Level = "ERROR"
	Generation Level = "GENERATION"
	Position   Level = "POSITION"
)

// Logger writes leveled lines to one file per run, guarded by a mutex since
// the genetic driver's parallel evaluation can log concurrently.
type Logger struct {
	file *os.File
	std  *log.Logger
	mu   sync.Mutex
}

// New opens (creating if needed) dir/<runName>_<date>.log and writes a
// session-start header.
func New(dir, runName string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("obslog: create log directory: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.log", runName, time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("obslog: open log file: %w", err)
	}

	l := &Logger{file: f, std: log.New(f, "", 0)}
	l.std.Printf("==== run %s started %s ====", runName, time.Now().Format(time.RFC3339))
	return l, nil
}

// Close closes the underlying log file.
func (l *Logger) Close() error {
	return l.file.Close()
}

// Log writes one formatted, leveled line.
func (l *Logger) Log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("[%s] [%s] %s", time.Now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any)  { l.Log(Info, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.Log(Warning, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Log(Error, format, args...) }

// LogGeneration records one generation's best fitness.
func (l *Logger) LogGeneration(index int, populationSize int, bestFitness float64) {
	l.Log(Generation, "gen=%d population=%d best_fitness=%.6f", index, populationSize, bestFitness)
}

// LogPosition records one closed position outcome.
func (l *Logger) LogPosition(symbol string, closeReason string, profit float64) {
	l.Log(Position, "symbol=%s close_reason=%s profit=%.6f", symbol, closeReason, profit)
}
