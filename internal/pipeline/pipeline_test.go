package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/nametag/internal/config"
	"github.com/backmassage/nametag/internal/lexer"
	"github.com/backmassage/nametag/internal/logging"
	"github.com/backmassage/nametag/internal/naming"
)

// --- Discover tests ---

func TestDiscover_FilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.mkv")
	touch(t, dir, "a.txt")
	touch(t, dir, ".hidden")
	mkdir(t, dir, "sub")
	touch(t, filepath.Join(dir, "sub"), "deep.mkv")

	loose := filepath.Join(t.TempDir(), "loose.mp4")
	require.NoError(t, os.WriteFile(loose, nil, 0o644))

	files, err := Discover([]string{dir, loose, dir}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.mkv", "loose.mp4"}, basenames(files))
}

func TestDiscover_RecursiveSkipsHiddenDirs(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "Season 01")
	mkdir(t, dir, ".git")
	touch(t, filepath.Join(dir, "Season 01"), "ep02.mkv")
	touch(t, filepath.Join(dir, "Season 01"), "ep01.mkv")
	touch(t, filepath.Join(dir, ".git"), "HEAD")

	files, err := Discover([]string{dir}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"ep01.mkv", "ep02.mkv"}, basenames(files))
}

func TestDiscover_MissingInput(t *testing.T) {
	_, err := Discover([]string{filepath.Join(t.TempDir(), "missing")}, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// --- Run tests ---

func TestRun_RenamesFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "The.Matrix.1998.mkv")
	touch(t, dir, "Film.1999.mkv")

	cfg := testConfig(dir)
	cfg.YearSet = "1999"
	stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, 1, stats.Unchanged)
	assert.Equal(t, []string{"Film.1999.mkv", "The.Matrix.1999.mkv"}, listDir(t, dir))
}

func TestRun_DryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mp4")

	cfg := testConfig(dir)
	cfg.DryRun = true
	cfg.LabelAppend = []string{"HD"}
	stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, []string{"clip.mp4"}, listDir(t, dir))
}

func TestRun_SkipsExistingUnlessForced(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "clip.mp4")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clip.2001.mp4"), []byte("keep"), 0o644))

	cfg := testConfig(filepath.Join(dir, "clip.mp4"))
	cfg.YearSet = "2001"
	stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, []string{"clip.2001.mp4", "clip.mp4"}, listDir(t, dir))

	cfg.Force = true
	stats, err = Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, []string{"clip.2001.mp4"}, listDir(t, dir))
}

func TestRun_BatchCollisions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Film.1998.mkv")
	touch(t, dir, "Film.2000.mkv")

	cfg := testConfig(dir)
	cfg.YearSet = "1999"
	stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Renamed)
	assert.Equal(t, []string{"Film.1999.2.mkv", "Film.1999.mkv"}, listDir(t, dir))
}

func TestRun_InvalidEdits(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*config.Config)
		want  error
	}{
		{"year", func(c *config.Config) { c.YearSet = "1776" }, naming.ErrInvalidYear},
		{"label", func(c *config.Config) { c.LabelAppend = []string{"hd"} }, naming.ErrInvalidLabel},
		{"date", func(c *config.Config) { c.Date = "2024-13-01" }, naming.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, "a.mkv")
			cfg := testConfig(dir)
			tt.apply(&cfg)
			stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, stats.Total)
			assert.Equal(t, []string{"a.mkv"}, listDir(t, dir))
		})
	}
}

func TestRun_DateStamps(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "2020-01-05_notes.txt")
	touch(t, dir, "2021-03-04AB.txt")

	cfg := testConfig(dir)
	cfg.LabelSet = "AB"
	stats, err := Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Unchanged)
	assert.Equal(t, 1, stats.Renamed)
	assert.Equal(t, []string{"2020-01-05_notes.AB.txt", "2021-03-04AB.txt"}, listDir(t, dir))

	cfg = testConfig(dir)
	cfg.Date = "2024-05-01"
	stats, err = Run(context.Background(), &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Renamed)
	assert.Equal(t, []string{"2024-05-01AB.txt", "2024-05-01_notes.AB.txt"}, listDir(t, dir))
}

func TestRun_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mkv")
	touch(t, dir, "b.mkv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(dir)
	cfg.YearSet = "2001"
	stats, err := Run(ctx, &cfg, quietLogger(t, &cfg))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed())
	assert.Equal(t, []string{"a.mkv", "b.mkv"}, listDir(t, dir))
}

// --- Inspect / Catalog tests ---

func TestInspect(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Inputs = []string{"1999", "A-B"}
	quietLogger(t, &cfg)

	var buf bytes.Buffer
	require.NoError(t, Inspect(&cfg, &buf))
	out := buf.String()
	assert.Contains(t, out, `Year       [0,4)     "1999"`)
	assert.Contains(t, out, `Delimiter  [1,2)     "-"`)
	assert.True(t, strings.HasPrefix(out, `"1999"`+"\n"))
	assert.Contains(t, out, "\n\n\"A-B\"\n")
}

func TestCatalog_MatchFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cat, err := Catalog(&cfg)
	require.NoError(t, err)
	assert.False(t, cat.Has(lexer.Arg))

	cfg.MatchFlags = true
	cat, err = Catalog(&cfg)
	require.NoError(t, err)
	assert.True(t, cat.Has(lexer.Arg))
	assert.Equal(t, lexer.Arg, cat.Tokenize("--Year").Collect()[0].Category)
}

// --- Helpers ---

func testConfig(inputs ...string) config.Config {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.Inputs = inputs
	return cfg
}

func quietLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	l, err := logging.NewLogger(cfg)
	require.NoError(t, err)
	l.SetOutput(io.Discard, io.Discard)
	t.Cleanup(func() { l.Close() })
	return l
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func mkdir(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
