package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Bucket != defaultBucket || cfg.Region != defaultRegion || cfg.ReportPrefix != defaultReportPrefix {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.FetchAttempts != defaultFetchAttempts {
		t.Fatalf("FetchAttempts = %d, want %d", cfg.FetchAttempts, defaultFetchAttempts)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
bucket = "  reports  "
report_prefix = "patterns"
region = "us-east-1"
profile = " readonly "
endpoint = "http://localhost:9000"
theme = "Kanagawa"
log_file = "  ~/logs/pv.log  "
fetch_attempts = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Config{
		Bucket:        "reports",
		ReportPrefix:  "patterns",
		Region:        "us-east-1",
		Profile:       "readonly",
		Endpoint:      "http://localhost:9000",
		Theme:         "Kanagawa",
		LogFile:       filepath.Join(home, "logs/pv.log"),
		FetchAttempts: 5,
	}
	if cfg != want {
		t.Fatalf("cfg = %#v, want %#v", cfg, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
bucket = "   "
region = ""
fetch_attempts = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Bucket != defaultBucket || cfg.Region != defaultRegion {
		t.Fatalf("cfg = %#v, want default bucket and region", cfg)
	}
	if cfg.FetchAttempts != defaultFetchAttempts {
		t.Fatalf("FetchAttempts = %d, want %d", cfg.FetchAttempts, defaultFetchAttempts)
	}
}

func TestClampAttempts(t *testing.T) {
	cases := map[int]int{-3: defaultFetchAttempts, 0: defaultFetchAttempts, 1: 1, 7: 7, 99: maxFetchAttempts}
	for in, want := range cases {
		if got := clampAttempts(in); got != want {
			t.Fatalf("clampAttempts(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`bucket = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestResolvePath_DefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolvePath("")
	if err != nil {
		t.Fatalf("resolvePath returned error: %v", err)
	}
	if got != filepath.Join(home, ".config/patternview/config.toml") {
		t.Fatalf("resolvePath = %q", got)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
