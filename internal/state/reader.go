// Package state reads the bladder state file. Only the last line of the
// file is significant.
package state

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"bladder-monitor/internal/logger"
)

const (
	component = "StateReader"

	// MaxLineSize bounds a single line of the state file.
	MaxLineSize = 1024 * 1024
)

// Reader re-reads the state file from disk on every call.
type Reader struct {
	path   string
	logger logger.Logger
}

func NewReader(path string, log logger.Logger) *Reader {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Reader{path: path, logger: log}
}

// Read returns the last line of the state file, or "" when the file cannot be read.
// Failures are logged, never returned.
func (r *Reader) Read() string {
	line, err := lastLine(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Warning(component, "state file not found", map[string]interface{}{
				"path": r.path,
			})
		} else {
			r.logger.Error(component, err, map[string]interface{}{
				"path": r.path,
			})
		}
		return ""
	}

	r.logger.Debug(component, "state read", map[string]interface{}{
		"path":  r.path,
		"value": line,
	})
	return line
}

// ReadState is a one-shot Read without logging.
func ReadState(path string) string {
	return NewReader(path, nil).Read()
}

// lastLine scans the whole file. A blank final line wins over earlier content.
// Any scan error, including a line over MaxLineSize, discards what was read.
func lastLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open state file: %w", err)
	}
	defer file.Close()

	var last string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		last = scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan state file: %w", err)
	}
	return last, nil
}
