package logtail

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// chunkSize is how much Tail reads per step when walking back from the end.
const chunkSize = 16 << 10

// Tail returns the last n lines of the file at path, oldest first. n <= 0
// returns every line. A missing file yields no lines and no error.
func Tail(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}

	var buf []byte
	offset := info.Size()
	for offset > 0 && (n <= 0 || bytes.Count(buf, []byte{'\n'}) <= n) {
		step := min(int64(chunkSize), offset)
		offset -= step
		chunk := make([]byte, step)
		if _, err := f.ReadAt(chunk, offset); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		buf = append(chunk, buf...)
	}

	text := strings.TrimRight(string(buf), "\r\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// Render writes lines to w. JSON log entries are formatted like the console
// logger; anything else is written unchanged.
func Render(w io.Writer, lines []string, color bool) error {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	for _, line := range lines {
		if isJSONEntry(line) {
			if _, err := console.Write([]byte(line)); err == nil {
				continue
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isJSONEntry(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed))
}
