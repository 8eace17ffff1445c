package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// configFileNames are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".goxmldom.yml",
	".goxmldom.yaml",
	"goxmldom.yml",
	"goxmldom.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root; the upward
// search stops one level above the first one found.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Load resolves the effective configuration. An explicit path wins; next
// the project config discovered upward from workDir; otherwise Default.
func Load(ctx context.Context, explicitPath, workDir string) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	path, err := findProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// findProjectConfig searches upward from workDir for a config file,
// stopping at a VCS root or the filesystem root. A missing file is not an
// error; it returns "".
func findProjectConfig(ctx context.Context, workDir string) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("config discovery: %w", ctx.Err())
	default:
	}

	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
