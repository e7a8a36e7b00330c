package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeWithOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cards")

	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if ConfigDir != dir {
		t.Errorf("Expected config dir %q, got %q", dir, ConfigDir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected config dir created: %v", err)
	}
	if filepath.Dir(DatabasePath) != dir {
		t.Errorf("Expected database inside config dir, got %q", DatabasePath)
	}
	if filepath.Dir(LogPath) != dir {
		t.Errorf("Expected log inside config dir, got %q", LogPath)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}

	want := DefaultSettings()
	if s != want {
		t.Errorf("Expected defaults %+v, got %+v", want, s)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	content := "theme: dark\nmessage: \"Happy Birthday dear %s!\"\nanimation: false\n"
	if err := os.WriteFile(SettingsFile, []byte(content), FilePermissions); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if s.Theme != "dark" {
		t.Errorf("Expected theme 'dark', got %q", s.Theme)
	}
	if s.Message != "Happy Birthday dear %s!" {
		t.Errorf("Unexpected message %q", s.Message)
	}
	if s.Animation {
		t.Error("Expected animation disabled")
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(SettingsFile, []byte("theme: light\n"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}

	if s.Theme != "light" {
		t.Errorf("Expected theme 'light', got %q", s.Theme)
	}
	// Unset keys keep their defaults.
	if s.Message != DefaultSettings().Message {
		t.Errorf("Expected default message, got %q", s.Message)
	}
	if !s.Animation {
		t.Error("Expected animation default enabled")
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(SettingsFile, []byte("theme: [broken\n"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err == nil {
		t.Error("Expected a parse error")
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults on parse error, got %+v", s)
	}
}

func TestLoadSettingsUnknownTheme(t *testing.T) {
	if err := Initialize(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(SettingsFile, []byte("theme: solarized\n"), FilePermissions); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err == nil {
		t.Error("Expected an error for an unknown theme")
	}
	if s.Theme != "auto" {
		t.Errorf("Expected theme to stay 'auto', got %q", s.Theme)
	}
}
