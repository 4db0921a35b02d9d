package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/randomtoy/fortune-go/internal/config"
)

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("FORTUNE_TEST_KEY", "")
	os.Unsetenv("FORTUNE_TEST_KEY")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("# comment\nFORTUNE_TEST_KEY=\"from-file\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("FORTUNE_TEST_KEY"); got != "from-file" {
		t.Errorf("unexpected value: %q", got)
	}
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	t.Setenv("FORTUNE_TEST_KEY", "from-env")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FORTUNE_TEST_KEY=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("FORTUNE_TEST_KEY"); got != "from-env" {
		t.Errorf("unexpected value: %q", got)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := loadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
	if err := loadEnvFile(""); err != nil {
		t.Fatalf("empty path should be ignored, got %v", err)
	}
}

func TestApplyFlags(t *testing.T) {
	base := config.Config{Host: "127.0.0.1", Port: 8080, BasePath: "/demos/digital-fortune-cookie"}

	newFlags := func() (*pflag.FlagSet, *serveOptions) {
		opts := &serveOptions{}
		fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
		fs.StringVar(&opts.host, "host", "", "")
		fs.IntVarP(&opts.port, "port", "p", 0, "")
		fs.StringVar(&opts.basePath, "base-path", "", "")
		return fs, opts
	}

	t.Run("unset flags keep config", func(t *testing.T) {
		fs, opts := newFlags()
		_ = fs.Parse(nil)
		got, err := applyFlags(base, fs, *opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != base {
			t.Errorf("config changed: %+v", got)
		}
	})

	t.Run("flags override", func(t *testing.T) {
		fs, opts := newFlags()
		_ = fs.Parse([]string{"--host", "0.0.0.0", "-p", "9090", "--base-path", "/"})
		got, err := applyFlags(base, fs, *opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Host != "0.0.0.0" || got.Port != 9090 || got.BasePath != "" {
			t.Errorf("unexpected config: %+v", got)
		}
	})

	for _, port := range []string{"0", "-1", "70000"} {
		t.Run("invalid port "+port, func(t *testing.T) {
			fs, opts := newFlags()
			if err := fs.Parse([]string{"--port=" + port}); err != nil {
				t.Fatal(err)
			}
			if _, err := applyFlags(base, fs, *opts); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestNewServer_Routes(t *testing.T) {
	cfg := config.Config{BasePath: "/cookie"}
	e := newServer(cfg, slog.Default())

	tests := []struct {
		target string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/cookie/", http.StatusOK},
		{"/cookie", http.StatusMovedPermanently},
		{"/cookie/api/fortune", http.StatusInternalServerError},
		{"/elsewhere", http.StatusNotFound},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
		if rec.Code != tt.status {
			t.Errorf("GET %s: expected %d, got %d", tt.target, tt.status, rec.Code)
		}
	}
}
