package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PACKER_RESOURCE_DIRS", "PACKER_WORKERS", "PACKER_LOG_LEVEL", "PACKER_LOG_ENCODING"} {
		t.Setenv(key, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Workers != defaultWorkers {
		t.Fatalf("expected default workers %d, got %d", defaultWorkers, cfg.Workers)
	}
	if !slices.Equal(cfg.ResourceDirs, []string{"."}) {
		t.Fatalf("unexpected resource dirs: %v", cfg.ResourceDirs)
	}
	if cfg.LogLevel != defaultLogLevel || cfg.LogEncoding != defaultLogEncoding {
		t.Fatalf("unexpected logging defaults: %s/%s", cfg.LogLevel, cfg.LogEncoding)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PACKER_RESOURCE_DIRS", "a, b ,")
	t.Setenv("PACKER_WORKERS", "4")
	t.Setenv("PACKER_LOG_LEVEL", "debug")
	t.Setenv("PACKER_LOG_ENCODING", "console")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if want := []string{"a", "b"}; !slices.Equal(cfg.ResourceDirs, want) {
		t.Fatalf("expected %v, got %v", want, cfg.ResourceDirs)
	}
	if cfg.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.LogLevel != "debug" || cfg.LogEncoding != "console" {
		t.Fatalf("unexpected logging settings: %s/%s", cfg.LogLevel, cfg.LogEncoding)
	}
}

func TestLoadIgnoresInvalidEnvWorkers(t *testing.T) {
	clearEnv(t)
	t.Setenv("PACKER_WORKERS", "many")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Workers != defaultWorkers {
		t.Fatalf("expected default workers, got %d", cfg.Workers)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PACKER_WORKERS", "2")
	t.Setenv("PACKER_LOG_LEVEL", "warn")

	path := writeYAML(t, `
resource_dirs:
  - fixtures
workers: 3
log:
  level: debug
  encoding: console
`)

	t.Run("yaml over env", func(t *testing.T) {
		cfg, err := Load(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Workers != 3 || cfg.LogLevel != "debug" || cfg.LogEncoding != "console" {
			t.Fatalf("expected YAML values, got %+v", cfg)
		}
		if !slices.Equal(cfg.ResourceDirs, []string{"fixtures"}) {
			t.Fatalf("unexpected resource dirs: %v", cfg.ResourceDirs)
		}
	})

	t.Run("cli over yaml", func(t *testing.T) {
		workers := 5
		level := "error"
		cfg, err := Load(&CLIOverrides{
			ConfigFile:   path,
			ResourceDirs: []string{"cli"},
			Workers:      &workers,
			LogLevel:     &level,
		})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Workers != 5 || cfg.LogLevel != "error" {
			t.Fatalf("expected CLI values, got %+v", cfg)
		}
		if cfg.LogEncoding != "console" {
			t.Fatalf("expected YAML encoding to survive, got %s", cfg.LogEncoding)
		}
		if !slices.Equal(cfg.ResourceDirs, []string{"cli"}) {
			t.Fatalf("unexpected resource dirs: %v", cfg.ResourceDirs)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeYAML(t, "workers: [")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("too many workers", func(t *testing.T) {
		workers := maxWorkers + 1
		if _, err := Load(&CLIOverrides{Workers: &workers}); err == nil {
			t.Fatalf("expected error for worker count")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		level := "chatty"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for log level")
		}
	})

	t.Run("unknown encoding", func(t *testing.T) {
		encoding := "xml"
		if _, err := Load(&CLIOverrides{LogEncoding: &encoding}); err == nil {
			t.Fatalf("expected error for log encoding")
		}
	})
}

func TestCleanDirs(t *testing.T) {
	got := cleanDirs([]string{" a ", "", "  ", "b"})
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := cleanDirs(nil); len(got) != 0 {
		t.Fatalf("expected no dirs, got %v", got)
	}
}
