package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	converrors "vscode2helix/errors"
)

// Stdio is the path that selects stdin for reads and stdout for writes.
const Stdio = "-"

var sourceExtensions = []string{".jsonc", ".json"}

// Store reads source themes and writes converted themes.
type Store struct {
	stdin  io.Reader
	stdout io.Writer
}

// New creates a Store that uses stdin and stdout for the "-" path.
func New(stdin io.Reader, stdout io.Writer) *Store {
	return &Store{stdin: stdin, stdout: stdout}
}

// OutputPath derives the Helix theme path for a VS Code theme path by
// replacing a .jsonc or .json extension with .toml. Other names get .toml
// appended. Stdin maps to stdout.
func OutputPath(input string) string {
	if input == Stdio {
		return Stdio
	}
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(input, ext) {
			return strings.TrimSuffix(input, ext) + ".toml"
		}
	}
	return input + ".toml"
}

// Read returns the contents of path, or all of stdin for "-".
func (s *Store) Read(path string) ([]byte, error) {
	if path == Stdio {
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, converrors.NewIOError("read", "stdin", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, converrors.NewIOError("read", path, err)
	}
	return data, nil
}

// Write stores data at path, or writes it to stdout for "-". Files are
// written to a temporary sibling and renamed into place, so a failed write
// never leaves a partial theme behind.
func (s *Store) Write(path string, data []byte) error {
	if path == Stdio {
		if _, err := s.stdout.Write(data); err != nil {
			return converrors.NewIOError("write", "stdout", err)
		}
		return nil
	}

	if err := writeAtomic(path, data); err != nil {
		return converrors.NewIOError("write", path, err)
	}
	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
