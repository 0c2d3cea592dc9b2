package roster

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// demoWorkbook writes the seed roster into a temp dir and returns its path.
func demoWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	if err := WriteDemo(path, DefaultConfig()); err != nil {
		t.Fatalf("WriteDemo failed: %v", err)
	}
	return path
}
