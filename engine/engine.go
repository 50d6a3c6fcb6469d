// Package engine identifies database engines and their version variants.
// Descriptors form per-family hierarchies: a generic family descriptor
// (e.g. SQL Server) is an ancestor of each concrete variant (SQL Server
// 2012), and an expression declared for the family applies to every
// variant.
package engine

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// Descriptor identifies a database engine family and, where applicable,
// a version variant. A nil Version means the generic family descriptor.
type Descriptor struct {
	Family  string
	Version *version.Version
}

// Predefined descriptors for the engines the dialects support.
var (
	Postgres = Descriptor{Family: "postgres"}
	MySQL    = Descriptor{Family: "mysql"}
	SQLite   = Descriptor{Family: "sqlite"}

	SQLServer     = Descriptor{Family: "sqlserver"}
	SQLServer2005 = Descriptor{Family: "sqlserver", Version: version.Must(version.NewVersion("9.0"))}
	SQLServer2008 = Descriptor{Family: "sqlserver", Version: version.Must(version.NewVersion("10.0"))}
	SQLServer2012 = Descriptor{Family: "sqlserver", Version: version.Must(version.NewVersion("11.0"))}

	SQLServerCE  = Descriptor{Family: "sqlserverce"}
	SQLServerCE4 = Descriptor{Family: "sqlserverce", Version: version.Must(version.NewVersion("4.0"))}
)

// parents is the is-a table for the variant hierarchies. Variants point
// at their family descriptor; the SQL Server and SQL CE families are
// independent hierarchies.
var parents = map[string]Descriptor{
	SQLServer2005.key(): SQLServer,
	SQLServer2008.key(): SQLServer,
	SQLServer2012.key(): SQLServer,
	SQLServerCE4.key():  SQLServerCE,
}

// names maps accepted spellings and aliases to descriptors, in the
// style of a driver name/alias registry.
var names = map[string]Descriptor{
	"postgres":      Postgres,
	"postgresql":    Postgres,
	"pg":            Postgres,
	"mysql":         MySQL,
	"sqlite":        SQLite,
	"sqlite3":       SQLite,
	"sqlserver":     SQLServer,
	"mssql":         SQLServer,
	"sqlserver2005": SQLServer2005,
	"sqlserver2008": SQLServer2008,
	"sqlserver2012": SQLServer2012,
	"sqlserverce":   SQLServerCE,
	"sqlce":         SQLServerCE,
	"sqlserverce4":  SQLServerCE4,
}

func (d Descriptor) key() string {
	if d.Version == nil {
		return d.Family
	}
	return d.Family + "@" + d.Version.String()
}

// String returns the descriptor's canonical name.
func (d Descriptor) String() string {
	return d.key()
}

// Equal reports whether two descriptors identify the same engine variant.
func (d Descriptor) Equal(other Descriptor) bool {
	if d.Family != other.Family {
		return false
	}
	if d.Version == nil || other.Version == nil {
		return d.Version == nil && other.Version == nil
	}
	return d.Version.Equal(other.Version)
}

// Parent returns the descriptor's ancestor in the variant hierarchy.
func (d Descriptor) Parent() (Descriptor, bool) {
	p, ok := parents[d.key()]
	return p, ok
}

// IsSupported reports whether the current engine satisfies the declared
// descriptor list. An empty list declares support for every engine.
// Otherwise the current engine matches a declaration that is equal to
// it or an ancestor of it: declaring the generic SQL Server family
// covers SQL Server 2012, but declaring 2012 does not cover 2005.
func IsSupported(declared []Descriptor, current Descriptor) bool {
	if len(declared) == 0 {
		return true
	}
	for _, d := range declared {
		for cur, ok := current, true; ok; cur, ok = cur.Parent() {
			if cur.Equal(d) {
				return true
			}
		}
	}
	return false
}

// Parse resolves an engine name or alias to its descriptor.
func Parse(name string) (Descriptor, error) {
	d, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Descriptor{}, fmt.Errorf("unknown engine: %q", name)
	}
	return d, nil
}

// ParseList resolves a comma-separated engine list. An empty input
// yields a nil list, meaning every engine.
func ParseList(list string) ([]Descriptor, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []Descriptor
	for _, part := range strings.Split(list, ",") {
		d, err := Parse(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Satisfies reports whether the current engine meets a version
// constraint such as ">= 11.0". Engines without a version variant never
// satisfy a constraint.
func Satisfies(current Descriptor, constraint string) (bool, error) {
	c, err := version.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if current.Version == nil {
		return false, nil
	}
	return c.Check(current.Version), nil
}
