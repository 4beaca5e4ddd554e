package envfile

import (
	"os"
	"path/filepath"
)

// ExampleCandidates lists the template filenames probed by FindExample,
// in priority order.
var ExampleCandidates = []string{".env.example", ".env.sample", ".env.template", "env.example"}

// FindExample locates the example file in dir, trying each candidate
// name in order.
func FindExample(dir string) (string, bool) {
	for _, name := range ExampleCandidates {
		path := filepath.Join(dir, name)
		if isFile(path) {
			return path, true
		}
	}
	return "", false
}

// FindEnv locates the .env file in dir.
func FindEnv(dir string) (string, bool) {
	path := filepath.Join(dir, ".env")
	if isFile(path) {
		return path, true
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
