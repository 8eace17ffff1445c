package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goxmldom/pkg/config"
	"github.com/yaklabco/goxmldom/pkg/runner"
	"github.com/yaklabco/goxmldom/pkg/xmlparse"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDiscover(t *testing.T) {
	t.Run("walks directories for xml extensions", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.xml", "<a />")
		b := writeFile(t, dir, "sub/b.svg", "<svg />")
		writeFile(t, dir, "notes.txt", "not xml")

		files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{dir}})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, files)
	})

	t.Run("explicit files bypass extension filter", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "data.conf", "<cfg />")

		files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{path}})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})

	t.Run("exclude globs skip files and directories", func(t *testing.T) {
		dir := t.TempDir()
		keep := writeFile(t, dir, "keep.xml", "<a />")
		writeFile(t, dir, "skip.xml", "<a />")
		writeFile(t, dir, "vendor/dep.xml", "<a />")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:        []string{dir},
			ExcludeGlobs: []string{"skip.xml", "vendor"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{keep}, files)
	})

	t.Run("missing path fails", func(t *testing.T) {
		_, err := runner.Discover(context.Background(), runner.Options{
			Paths: []string{filepath.Join(t.TempDir(), "nope")},
		})
		assert.Error(t, err)
	})

	t.Run("duplicate paths are deduplicated", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "a.xml", "<a />")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths: []string{path, path, dir},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{path}, files)
	})
}

func TestRun(t *testing.T) {
	t.Run("parses files and counts tags", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.xml", `<a><b id="1">hi</b></a>`)
		writeFile(t, dir, "b.xml", `<x />`)

		result, err := runner.Run(context.Background(), runner.Options{Paths: []string{dir}})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Stats.FilesDiscovered)
		assert.Equal(t, 2, result.Stats.FilesParsed)
		assert.Equal(t, 0, result.Stats.FilesFailed)
		assert.Equal(t, 3, result.Stats.TagsTotal)
		assert.True(t, result.Clean())
	})

	t.Run("outcomes keep discovery order", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.xml", "<a />")
		writeFile(t, dir, "b.xml", "<b />")
		writeFile(t, dir, "c.xml", "<c />")

		result, err := runner.Run(context.Background(), runner.Options{
			Paths: []string{dir},
			Jobs:  8,
		})
		require.NoError(t, err)
		require.Len(t, result.Files, 3)
		assert.Equal(t, filepath.Join(dir, "a.xml"), result.Files[0].Path)
		assert.Equal(t, filepath.Join(dir, "b.xml"), result.Files[1].Path)
		assert.Equal(t, filepath.Join(dir, "c.xml"), result.Files[2].Path)
	})

	t.Run("failed parse is recorded per file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.xml", "<a></b>")
		writeFile(t, dir, "good.xml", "<a />")

		result, err := runner.Run(context.Background(), runner.Options{Paths: []string{dir}})
		require.NoError(t, err)

		assert.Equal(t, 1, result.Stats.FilesFailed)
		assert.Equal(t, 1, result.Stats.FilesParsed)
		assert.False(t, result.Clean())

		require.Len(t, result.Files, 2)
		assert.Error(t, result.Files[0].Err)
		assert.True(t, xmlparse.IsKind(result.Files[0].Err, xmlparse.ErrClosingTagMismatch))
		assert.NoError(t, result.Files[1].Err)
	})

	t.Run("strict root rejects multiple roots", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "multi.xml", "<a /><b />")

		relaxed, err := runner.Run(context.Background(), runner.Options{Paths: []string{dir}})
		require.NoError(t, err)
		assert.True(t, relaxed.Clean())

		strict, err := runner.Run(context.Background(), runner.Options{
			Paths:      []string{dir},
			StrictRoot: true,
		})
		require.NoError(t, err)
		assert.False(t, strict.Clean())
		assert.True(t, xmlparse.IsKind(strict.Files[0].Err, xmlparse.ErrMultipleRoots))
	})

	t.Run("empty directory yields empty clean result", func(t *testing.T) {
		result, err := runner.Run(context.Background(), runner.Options{Paths: []string{t.TempDir()}})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Stats.FilesDiscovered)
		assert.True(t, result.Clean())
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		dir := t.TempDir()
		writeFile(t, dir, "a.xml", "<a />")

		_, err := runner.Run(ctx, runner.Options{Paths: []string{dir}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.StrictRoot = true
	cfg.Jobs = 4
	cfg.Ignore = []string{"vendor"}

	opts := runner.OptionsFromConfig(cfg)
	assert.True(t, opts.StrictRoot)
	assert.Equal(t, 4, opts.Jobs)
	assert.Equal(t, []string{"vendor"}, opts.ExcludeGlobs)

	assert.Equal(t, runner.Options{}, runner.OptionsFromConfig(nil))
}
