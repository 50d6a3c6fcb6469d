package engine

import (
	"testing"
)

func TestIsSupportedEmptyDeclared(t *testing.T) {
	if !IsSupported(nil, Postgres) {
		t.Error("Expected empty declared list to support any engine")
	}
	if !IsSupported([]Descriptor{}, SQLServer2012) {
		t.Error("Expected empty declared list to support any engine")
	}
}

func TestIsSupportedFamilyMatchesVariant(t *testing.T) {
	if !IsSupported([]Descriptor{SQLServer}, SQLServer2012) {
		t.Error("Expected generic sqlserver declaration to match sqlserver2012")
	}
	if !IsSupported([]Descriptor{SQLServer}, SQLServer2005) {
		t.Error("Expected generic sqlserver declaration to match sqlserver2005")
	}
	if !IsSupported([]Descriptor{SQLServerCE}, SQLServerCE4) {
		t.Error("Expected generic sqlserverce declaration to match sqlserverce4")
	}
}

func TestIsSupportedVariantDoesNotMatchSibling(t *testing.T) {
	if IsSupported([]Descriptor{SQLServer2012}, SQLServer2005) {
		t.Error("Expected sqlserver2012 declaration not to match sqlserver2005")
	}
	if IsSupported([]Descriptor{SQLServer2005}, SQLServer2012) {
		t.Error("Expected sqlserver2005 declaration not to match sqlserver2012")
	}
}

func TestIsSupportedVariantDoesNotMatchFamily(t *testing.T) {
	// Only ancestor declarations match descendants, never the reverse.
	if IsSupported([]Descriptor{SQLServer2012}, SQLServer) {
		t.Error("Expected sqlserver2012 declaration not to match the generic family")
	}
}

func TestIsSupportedFamiliesAreIndependent(t *testing.T) {
	if IsSupported([]Descriptor{SQLServer}, SQLServerCE4) {
		t.Error("Expected sqlserver declaration not to match the CE family")
	}
	if IsSupported([]Descriptor{Postgres}, MySQL) {
		t.Error("Expected postgres declaration not to match mysql")
	}
}

func TestIsSupportedExactMatch(t *testing.T) {
	if !IsSupported([]Descriptor{SQLServer2012}, SQLServer2012) {
		t.Error("Expected exact variant match to be supported")
	}
	if !IsSupported([]Descriptor{Postgres, SQLServer}, Postgres) {
		t.Error("Expected membership in declared list to be supported")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Descriptor
	}{
		{"postgres", Postgres},
		{"postgresql", Postgres},
		{"MSSQL", SQLServer},
		{"sqlserver2012", SQLServer2012},
		{" sqlite3 ", SQLite},
		{"sqlce", SQLServerCE},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.name, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("oracle9"); err == nil {
		t.Error("Expected error for unknown engine name")
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList("sqlserver, postgres")
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(got))
	}
	if !got[0].Equal(SQLServer) || !got[1].Equal(Postgres) {
		t.Errorf("ParseList returned %v", got)
	}

	empty, err := ParseList("  ")
	if err != nil {
		t.Fatalf("ParseList on blank input failed: %v", err)
	}
	if empty != nil {
		t.Errorf("Expected nil list for blank input, got %v", empty)
	}
}

func TestSatisfies(t *testing.T) {
	ok, err := Satisfies(SQLServer2012, ">= 11.0")
	if err != nil {
		t.Fatalf("Satisfies failed: %v", err)
	}
	if !ok {
		t.Error("Expected sqlserver2012 to satisfy >= 11.0")
	}

	ok, err = Satisfies(SQLServer2005, ">= 11.0")
	if err != nil {
		t.Fatalf("Satisfies failed: %v", err)
	}
	if ok {
		t.Error("Expected sqlserver2005 not to satisfy >= 11.0")
	}

	ok, err = Satisfies(SQLServer, ">= 11.0")
	if err != nil {
		t.Fatalf("Satisfies failed: %v", err)
	}
	if ok {
		t.Error("Expected a version-less descriptor not to satisfy any constraint")
	}

	if _, err := Satisfies(SQLServer2012, "not a constraint"); err == nil {
		t.Error("Expected error for malformed constraint")
	}
}

func TestDescriptorString(t *testing.T) {
	if SQLServer.String() != "sqlserver" {
		t.Errorf("Expected 'sqlserver', got %q", SQLServer.String())
	}
	if SQLServer2012.String() != "sqlserver@11.0.0" {
		t.Errorf("Expected 'sqlserver@11.0.0', got %q", SQLServer2012.String())
	}
}
