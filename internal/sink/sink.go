// Package sink writes rendered output to the terminal or a file.
package sink

import (
	"fmt"
	"io"
	"os"
)

type Sink struct {
	stdout io.Writer
}

func New(stdout io.Writer) *Sink {
	return &Sink{stdout: stdout}
}

// Write sends content to path, or to stdout when path is empty. File writes
// truncate and replace the previous contents, and the file is closed before
// returning so a reader chained right after the command sees complete data.
func (s *Sink) Write(content, path string) error {
	if path == "" {
		_, err := fmt.Fprintln(s.stdout, content)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
