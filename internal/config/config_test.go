package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/wordtiles/internal/model"
)

func TestEmbeddedRulesetMatchesDefault(t *testing.T) {
	rs, err := parseRuleset(defaultRulesetYAML, "embedded")
	require.NoError(t, err)

	assert.Equal(t, DefaultRuleset(), rs)

	dist, err := rs.Distribution()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDistribution(), dist)
	assert.Equal(t, 98, dist.Total())
}

func TestLoadRulesetCustomPath(t *testing.T) {
	rs := DefaultRuleset()
	rs.BoardSize = 11
	rs.TrayCapacity = 5
	path := writeRuleset(t, rs)

	loaded, err := LoadRuleset(path)
	require.NoError(t, err)
	assert.Equal(t, 11, loaded.BoardSize)
	assert.Equal(t, 5, loaded.TrayCapacity)
}

func TestLoadRulesetCustomPathMissing(t *testing.T) {
	_, err := LoadRuleset(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRulesetRejectsEvenBoard(t *testing.T) {
	rs := DefaultRuleset()
	rs.BoardSize = 14
	path := writeRuleset(t, rs)

	_, err := LoadRuleset(path)
	assert.ErrorIs(t, err, model.ErrInvalidBoardSize)
}

func TestLoadRulesetFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	rs, err := LoadRuleset("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRuleset(), rs)
}

func TestLoadRulesetPrefersLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	rs := DefaultRuleset()
	rs.BoardSize = 9
	data, err := yamlBytes(rs)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", RulesetFile), data, 0o644))

	loaded, err := LoadRuleset("")
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.BoardSize)
}

func TestLoadRulesetReportsMalformedLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", RulesetFile), []byte("board_size: [\n"), 0o644))

	_, err := LoadRuleset("")
	assert.ErrorContains(t, err, "configs/ruleset.yaml")
}

func TestLoadRulesetReportsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	rs := DefaultRuleset()
	rs.BoardSize = 12
	data, err := yamlBytes(rs)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".wordtiles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".wordtiles", RulesetFile), data, 0o644))

	_, err = LoadRuleset("")
	assert.ErrorIs(t, err, model.ErrInvalidBoardSize)
}

func TestDistributionRejectsMissingLetter(t *testing.T) {
	rs := DefaultRuleset()
	delete(rs.Letters, "Q")

	_, err := rs.Distribution()
	assert.ErrorIs(t, err, model.ErrInvalidRuleset)
}

func TestDistributionRejectsDuplicateCase(t *testing.T) {
	rs := DefaultRuleset()
	delete(rs.Letters, "Q")
	rs.Letters["a"] = LetterRule{Count: 1, Points: 1}

	_, err := rs.Distribution()
	assert.ErrorIs(t, err, model.ErrInvalidRuleset)
}

func TestValidateRejectsEmptyTray(t *testing.T) {
	rs := DefaultRuleset()
	rs.TrayCapacity = 0
	assert.ErrorIs(t, rs.Validate(), model.ErrInvalidRuleset)
}

func TestValidateRejectsOversizedTray(t *testing.T) {
	rs := DefaultRuleset()
	rs.TrayCapacity = model.MaxTrayCapacity + 1
	assert.ErrorIs(t, rs.Validate(), model.ErrInvalidRuleset)
}

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer("")
	require.NoError(t, err)

	assert.Equal(t, DefaultServer(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadServerFromEnv(t *testing.T) {
	t.Setenv("WORDTILES_PORT", "9090")
	t.Setenv("WORDTILES_STORAGE_TYPE", "SQLite")
	t.Setenv("WORDTILES_CACHE_SIZE", "64")
	t.Setenv("WORDTILES_LOG_LEVEL", "debug")

	cfg, err := LoadServer("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sqlite", cfg.StorageType)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadServerFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDTILES_NATS_URL=nats://localhost:4222\n"), 0o644))
	t.Setenv("WORDTILES_NATS_URL", "")
	require.NoError(t, os.Unsetenv("WORDTILES_NATS_URL"))

	cfg, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, "nats://localhost:4222", cfg.NATSURL)
}

func TestLoadServerMissingEnvFileIsFine(t *testing.T) {
	_, err := LoadServer(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestLoadServerBadPort(t *testing.T) {
	t.Setenv("WORDTILES_PORT", "eighty")
	_, err := LoadServer("")
	assert.Error(t, err)
}

func TestLoadServerRedisNeedsURL(t *testing.T) {
	t.Setenv("WORDTILES_STORAGE_TYPE", "redis")
	_, err := LoadServer("")
	assert.Error(t, err)
}

func writeRuleset(t *testing.T, rs Ruleset) string {
	t.Helper()
	data, err := yamlBytes(rs)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), RulesetFile)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func yamlBytes(rs Ruleset) ([]byte, error) {
	return yaml.Marshal(rs)
}
