package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port    int    `json:"port"`
	Mirror  string `json:"mirror"`
	Verbose bool   `json:"verbose"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// comments are allowed
		port: 8080,
		mirror: "https://mirror.example",
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ port: 9090, verbose: true }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{
		Port:    9090,
		Mirror:  "https://mirror.example",
		Verbose: true,
	}, cfg)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigExpandsEnv(t *testing.T) {
	t.Setenv("MODCHEM_TEST_MIRROR", "https://env.example")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{ mirror: "${MODCHEM_TEST_MIRROR}/wiki", port: 1 }`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://env.example/wiki", cfg.Mirror)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("MODCHEM_TEST_A", "a")
	require.Equal(t, "a-$B-", string(ExpandEnv([]byte("${MODCHEM_TEST_A}-$B-${MODCHEM_TEST_UNSET}"))))
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	writeFile(t, envFile, "MODCHEM_TEST_DOTENV=loaded\n")
	t.Setenv("MODCHEM_TEST_DOTENV", "")
	os.Unsetenv("MODCHEM_TEST_DOTENV")

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "missing.env")))
	require.Equal(t, "loaded", os.Getenv("MODCHEM_TEST_DOTENV"))
}
