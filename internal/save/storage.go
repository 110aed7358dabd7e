package save

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultDirName = "saves"

// Dir returns the saves directory next to the app executable, creating it.
// An absolute dirName is used as is.
func Dir(dirName string) string {
	if dirName == "" {
		dirName = defaultDirName
	}
	if filepath.IsAbs(dirName) {
		_ = os.MkdirAll(dirName, 0755)
		return dirName
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		// "go run" builds into a temp dir; fall back to the working directory
		// so saves persist between runs.
		if !isTempExeDir(exeDir) {
			dir := filepath.Join(exeDir, dirName)
			if err := os.MkdirAll(dir, 0755); err == nil {
				return dir
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		dir := filepath.Join(cwd, dirName)
		_ = os.MkdirAll(dir, 0755)
		return dir
	}
	return dirName
}

// Path joins filename onto Dir(dirName).
func Path(dirName, filename string) string {
	return filepath.Join(Dir(dirName), filename)
}

// isTempExeDir returns true when the executable directory looks like a Go temp build path.
func isTempExeDir(dir string) bool {
	clean := filepath.Clean(dir)
	if strings.Contains(clean, string(filepath.Separator)+"go-build") {
		return true
	}
	if strings.HasPrefix(clean, filepath.Clean(os.TempDir())+string(filepath.Separator)) {
		return true
	}
	return false
}
