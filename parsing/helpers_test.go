package parsing

import (
	"os"
	"path/filepath"
	"testing"
)

func readTestFile(t *testing.T, name string) []byte {
	t.Helper()
	source, err := os.ReadFile(filepath.Join("..", "testfiles", name))
	if err != nil {
		t.Fatalf("Opening source file failed with err: %v", err)
	}
	return source
}
