package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		if err := WriteFile(file, outputDir); err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes one generated file into outputDir, replacing it atomically
// so a reader of the package never sees a half-written file.
func WriteFile(file GeneratedFile, outputDir string) error {
	outputPath := filepath.Join(outputDir, file.Filename)

	tmp, err := os.CreateTemp(outputDir, "."+file.Filename+".*")
	if err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	return nil
}

// Stale reports whether the file on disk differs from the generated content.
// A missing file is stale.
func Stale(file GeneratedFile, outputDir string) (bool, error) {
	current, err := os.ReadFile(filepath.Join(outputDir, file.Filename))
	if os.IsNotExist(err) {
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("reading file %s: %w", file.Filename, err)
	}

	return string(current) != string(file.Content), nil
}
