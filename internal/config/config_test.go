package config

import (
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:            "1",
		DefaultOperationID: "OP-002",
		ShowLabels:         true,
	}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.DefaultOperationID != "OP-002" {
		t.Errorf("DefaultOperationID = %q, want OP-002", loaded.DefaultOperationID)
	}
	if !loaded.ShowLabels {
		t.Error("ShowLabels = false, want true")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("LoadConfig succeeded with no config file")
	}
}
