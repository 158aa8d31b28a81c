package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromPathFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
directories = ["/opt/apps", "/usr/share/applications"]

[ui]
max_results = 20
show_hidden = true

[ranking]
name_weight = 3
empty_query = "none"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/apps", "/usr/share/applications"}, cfg.Directories)
	require.Equal(t, 20, cfg.UI.MaxResults)
	require.True(t, cfg.UI.ShowHidden)
	require.Equal(t, 3, cfg.Ranking.NameWeight)
	require.Equal(t, "none", cfg.Ranking.EmptyQuery)
}

func TestLoadFromPathDirectory(t *testing.T) {
	dir := t.TempDir()
	content := "directories = [\"/opt/apps\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := NewConfigService().LoadFromPath(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/apps"}, cfg.Directories)
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService().LoadFromPath("/does/not/exist.toml")
	require.Error(t, err)
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("directories = [unclosed"), 0644))

	_, err := NewConfigService().LoadFromPath(path)
	require.Error(t, err)
}

func TestDefaultsFillGaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	// Only one field set; everything else keeps its default
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nmax_results = 5\n"), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.UI.MaxResults)
	require.Equal(t, 5, cfg.Ranking.NameWeight)
	require.Equal(t, "all", cfg.Ranking.EmptyQuery)
	require.NotEmpty(t, cfg.Directories)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Directories = []string{"/opt/apps"}
	require.NoError(t, NewConfigService().SaveToPath(cfg, path))

	loaded, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Directories, loaded.Directories)
}
