package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes source that go/format rejected to a sidecar
// file next to the intended output. Best-effort: callers ignore the error.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, DebugFilename(filename)), content, filePerm)
}

// DebugFilename returns the sidecar name used for unformatted output.
// Keeps the .go suffix so editors still highlight it.
func DebugFilename(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}
