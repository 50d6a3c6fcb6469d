package script

import (
	"context"
	"reflect"
	"testing"

	"github.com/spf13/afero"

	"github.com/satishbabariya/migrator/dialect"
	"github.com/satishbabariya/migrator/engine"
	"github.com/satishbabariya/migrator/expression"
)

const sampleScript = `-- migrator:expr label="create users" engines="sqlserver, postgres"
CREATE TABLE users (id INT);
GO
CREATE INDEX ix_users ON users (id);
-- migrator:expr label="server 2012 extras" engines="sqlserver" requires=">= 11.0"
CREATE SEQUENCE seq_users;
-- migrator:expr label="everywhere"
INSERT INTO audit (note) VALUES ('done');
`

func TestParseSections(t *testing.T) {
	s, err := ParseString("001_users.sql", sampleScript)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(s.Sections) != 3 {
		t.Fatalf("Expected 3 sections, got %d", len(s.Sections))
	}

	first := s.Sections[0]
	if first.Label != "create users" {
		t.Errorf("Expected label 'create users', got %q", first.Label)
	}
	if len(first.Engines) != 2 {
		t.Errorf("Expected 2 engines, got %v", first.Engines)
	}
	if first.SQL != "CREATE TABLE users (id INT);\nGO\nCREATE INDEX ix_users ON users (id);" {
		t.Errorf("Unexpected section SQL: %q", first.SQL)
	}

	second := s.Sections[1]
	if second.Requires != ">= 11.0" {
		t.Errorf("Expected requires '>= 11.0', got %q", second.Requires)
	}

	third := s.Sections[2]
	if len(third.Engines) != 0 {
		t.Errorf("Expected universal section, got engines %v", third.Engines)
	}
}

func TestParsePreambleSection(t *testing.T) {
	s, err := ParseString("p.sql", "SELECT 1;\n-- migrator:expr label=\"rest\"\nSELECT 2;\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if len(s.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(s.Sections))
	}
	if s.Sections[0].SQL != "SELECT 1;" {
		t.Errorf("Expected preamble SQL, got %q", s.Sections[0].SQL)
	}
	if s.Sections[0].Label != "" || len(s.Sections[0].Engines) != 0 {
		t.Error("Expected preamble section to be unconstrained")
	}
}

func TestParseRejectsUnknownDirective(t *testing.T) {
	if _, err := ParseString("x.sql", "-- migrator:frobnicate\n"); err == nil {
		t.Error("Expected error for unknown directive")
	}
	if _, err := ParseString("x.sql", "-- migrator:expr bogus=\"v\"\n"); err == nil {
		t.Error("Expected error for unknown directive key")
	}
	if _, err := ParseString("x.sql", "-- migrator:expr engines=\"oracle\"\n"); err == nil {
		t.Error("Expected error for unknown engine name")
	}
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "migrations/001.sql", []byte(sampleScript), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := ParseFile(fs, "migrations/001.sql")
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if s.Name != "migrations/001.sql" {
		t.Errorf("Expected script name from path, got %q", s.Name)
	}
	if len(s.Sections) != 3 {
		t.Errorf("Expected 3 sections, got %d", len(s.Sections))
	}
}

func TestSectionApplies(t *testing.T) {
	s, err := ParseString("001.sql", sampleScript)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	versioned := s.Sections[1] // sqlserver, requires >= 11.0
	ok, err := versioned.Applies(engine.SQLServer2012)
	if err != nil {
		t.Fatalf("Applies failed: %v", err)
	}
	if !ok {
		t.Error("Expected section to apply to sqlserver2012")
	}

	ok, err = versioned.Applies(engine.SQLServer2005)
	if err != nil {
		t.Fatalf("Applies failed: %v", err)
	}
	if ok {
		t.Error("Expected section not to apply to sqlserver2005")
	}

	ok, err = versioned.Applies(engine.Postgres)
	if err != nil {
		t.Fatalf("Applies failed: %v", err)
	}
	if ok {
		t.Error("Expected section not to apply to postgres")
	}
}

type fakeDB struct {
	statements []string
	d          dialect.Dialect
}

func (f *fakeDB) Execute(ctx context.Context, statement string) error {
	f.statements = append(f.statements, statement)
	return nil
}

func (f *fakeDB) Dialect() dialect.Dialect { return f.d }

func TestTreeExecution(t *testing.T) {
	s, err := ParseString("001.sql", sampleScript)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	root, skipped, err := s.Tree(engine.SQLServer2012)
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("Expected no skipped sections for sqlserver2012, got %d", len(skipped))
	}

	db := &fakeDB{d: dialect.SQLServerDialect{}}
	run := expression.NewContext(db, nil)
	if err := root.Execute(context.Background(), run); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{
		"CREATE TABLE users (id INT);",
		"CREATE INDEX ix_users ON users (id);",
		"CREATE SEQUENCE seq_users;",
		"INSERT INTO audit (note) VALUES ('done');",
	}
	if !reflect.DeepEqual(db.statements, want) {
		t.Errorf("Submitted statements = %v, want %v", db.statements, want)
	}
	// Root no-op plus three children.
	if run.StepIndex != 4 {
		t.Errorf("Expected step index 4, got %d", run.StepIndex)
	}
}

func TestTreeSkipsInapplicableSections(t *testing.T) {
	s, err := ParseString("001.sql", sampleScript)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	root, skipped, err := s.Tree(engine.SQLite)
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}
	if len(skipped) != 2 {
		t.Fatalf("Expected 2 skipped sections for sqlite, got %d", len(skipped))
	}
	if len(root.Children()) != 1 {
		t.Fatalf("Expected 1 applicable section, got %d", len(root.Children()))
	}
	if root.Children()[0].Label() != "everywhere" {
		t.Errorf("Expected 'everywhere' section, got %q", root.Children()[0].Label())
	}
}
