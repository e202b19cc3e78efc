package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/maxslog"
	"github.com/reoring/maxslog/config"
	"github.com/reoring/maxslog/document"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_YAML(t *testing.T) {
	p := write(t, "log.yaml", `
appId: kisssoft
appVersion: "2024"
target: /tmp/run.maxs
sink:
  mode: buffered
  batchSize: 10
logging:
  level: debug
  format: json
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "kisssoft", cfg.AppID)
	assert.Equal(t, "2024", cfg.AppVersion)
	assert.Equal(t, config.ModeBuffered, cfg.Sink.Mode)
	assert.Equal(t, 10, cfg.Sink.BatchSize)
	assert.Equal(t, maxslog.DefaultSuffix, cfg.Suffix)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_TOML(t *testing.T) {
	p := write(t, "log.toml", `
app_id = "kisssoft"
language = "de"

[sink]
mode = "sync"
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "kisssoft", cfg.AppID)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, config.ModeSync, cfg.Sink.Mode)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown.yaml":  "apId: typo\n",
		"unknown.toml":  "app = \"typo\"\n",
		"suffix.yaml":   "target: run.txt\n",
		"batch.yaml":    "sink:\n  mode: buffered\n",
		"mode.toml":     "[sink]\nmode = \"async\"\n",
		"language.yaml": "language: fr\n",
		"dotless.yaml":  "suffix: maxs\n",
		"format.ini":    "app_id=x\n",
	}
	for name, content := range cases {
		_, err := config.Load(write(t, name, content))
		assert.Error(t, err, name)
	}
}

func TestLoad_EmptyYAMLUsesDefaults(t *testing.T) {
	cfg, err := config.ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.ModeSync, cfg.Sink.Mode)
	assert.Equal(t, maxslog.DefaultSuffix, cfg.Suffix)
}

func TestOpen_ActivatesTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "run.maxs")
	cfg, err := config.ParseTOML(`app_id = "kisssoft"
app_version = "1"
target = "` + filepath.ToSlash(target) + `"
`)
	require.NoError(t, err)

	log, err := config.Open(cfg)
	require.NoError(t, err)
	defer log.Close()
	assert.True(t, log.IsActive())

	doc, err := document.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "kisssoft", doc.AppID)
	assert.Equal(t, "1", doc.AppVersion)
}

func TestOpen_BufferedSink(t *testing.T) {
	target := filepath.Join(t.TempDir(), "run.maxs")
	cfg := &config.Config{Target: target, Sink: config.Sink{Mode: config.ModeBuffered, BatchSize: 3}}
	require.NoError(t, cfg.Validate())

	log, err := config.Open(cfg)
	require.NoError(t, err)
	log.Log(nil, 0, "held", maxslog.SeverityInfo)

	doc, err := document.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())

	require.NoError(t, log.Close())
	doc, err = document.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Len())
}

func TestOpen_UnwritableTarget(t *testing.T) {
	cfg := &config.Config{Target: filepath.Join(t.TempDir(), "missing", "run.maxs")}
	require.NoError(t, cfg.Validate())
	_, err := config.Open(cfg)
	assert.Error(t, err)
}
