package dialect

import (
	"testing"

	"github.com/satishbabariya/migrator/engine"
)

func TestForProvider(t *testing.T) {
	tests := []struct {
		provider string
		name     string
		batch    bool
	}{
		{"postgresql", "postgres", false},
		{"postgres", "postgres", false},
		{"mysql", "mysql", false},
		{"sqlite3", "sqlite", false},
		{"mssql", "mssql", true},
		{"sqlserver", "mssql", true},
		{"sqlce", "sqlserverce", true},
	}
	for _, tt := range tests {
		d, err := ForProvider(tt.provider)
		if err != nil {
			t.Fatalf("ForProvider(%q) failed: %v", tt.provider, err)
		}
		if d.Name() != tt.name {
			t.Errorf("ForProvider(%q).Name() = %q, want %q", tt.provider, d.Name(), tt.name)
		}
		if d.BatchSeparatorRequired() != tt.batch {
			t.Errorf("ForProvider(%q).BatchSeparatorRequired() = %v, want %v", tt.provider, d.BatchSeparatorRequired(), tt.batch)
		}
	}
}

func TestForProviderUnknown(t *testing.T) {
	if _, err := ForProvider("oracle"); err == nil {
		t.Error("Expected error for unsupported provider")
	}
}

func TestForEngine(t *testing.T) {
	d, err := ForEngine(engine.SQLServer2012)
	if err != nil {
		t.Fatalf("ForEngine failed: %v", err)
	}
	if d.Name() != "mssql" {
		t.Errorf("Expected mssql dialect for sqlserver2012, got %q", d.Name())
	}
}
