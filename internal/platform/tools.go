package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// Default executable names
const (
	DefaultEngineBinary = "yt-dlp"
	DefaultMergeTool    = "ffmpeg"
)

// FindEngine returns the path of the yt-dlp executable. A custom value may
// be a path or a name looked up in PATH.
func FindEngine(custom string) (string, error) {
	if custom == "" {
		custom = DefaultEngineBinary
	}
	if info, err := os.Stat(custom); err == nil && !info.IsDir() {
		return custom, nil
	}
	if p, err := exec.LookPath(custom); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("could not find %s; install yt-dlp or set engine.binary", custom)
}

// DetectMergeTool reports whether the merge tool (ffmpeg) can be executed
// and returns its resolved path
func DetectMergeTool(name string) (string, bool) {
	if name == "" {
		name = DefaultMergeTool
	}
	if p, err := exec.LookPath(name); err == nil {
		return p, true
	}
	return "", false
}
