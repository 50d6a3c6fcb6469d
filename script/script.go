// Package script parses SQL migration scripts into expression trees.
// Scripts are plain SQL with optional directive comments:
//
//	-- migrator:expr label="create users" engines="sqlserver, postgres" requires=">= 11.0"
//	CREATE TABLE users (id INT);
//
// Each directive opens a new section; the SQL lines that follow (which
// may contain GO batch separators) form that section's payload. Lines
// before the first directive form an unconstrained preamble section.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spf13/afero"

	"github.com/satishbabariya/migrator/engine"
	"github.com/satishbabariya/migrator/expression"
)

// DirectivePrefix marks an expression directive line.
const DirectivePrefix = "-- migrator:expr"

// rawDirective is the parse tree for the text following DirectivePrefix.
type rawDirective struct {
	Pairs []*rawPair `@@*`
}

type rawPair struct {
	Key   string `@Ident "="`
	Value string `@String`
}

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
	{Name: "Equal", Pattern: `=`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var directiveParser = participle.MustBuild[rawDirective](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
)

// Section is one expression-to-be within a script.
type Section struct {
	Label    string
	Engines  []engine.Descriptor
	Requires string
	SQL      string
}

// Script is a parsed migration script.
type Script struct {
	Name     string
	Sections []*Section
}

// Parse reads a migration script from r.
func Parse(name string, r io.Reader) (*Script, error) {
	s := &Script{Name: name}
	current := &Section{}
	var pending []string

	closeSection := func() {
		current.SQL = strings.TrimSpace(strings.Join(pending, "\n"))
		if current.SQL != "" || current.Label != "" {
			s.Sections = append(s.Sections, current)
		}
		pending = nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, DirectivePrefix) {
			closeSection()
			sec, err := parseDirective(strings.TrimPrefix(trimmed, DirectivePrefix))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
			}
			current = sec
			continue
		}
		if strings.HasPrefix(trimmed, "-- migrator:") {
			return nil, fmt.Errorf("%s:%d: unknown directive %q", name, lineNo, trimmed)
		}
		pending = append(pending, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", name, err)
	}
	closeSection()

	return s, nil
}

// ParseString parses a migration script from a string.
func ParseString(name, input string) (*Script, error) {
	return Parse(name, strings.NewReader(input))
}

// ParseFile parses a migration script from the filesystem.
func ParseFile(fs afero.Fs, path string) (*Script, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Parse(path, f)
}

func parseDirective(input string) (*Section, error) {
	raw, err := directiveParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("invalid directive: %w", err)
	}

	sec := &Section{}
	for _, pair := range raw.Pairs {
		switch pair.Key {
		case "label":
			sec.Label = pair.Value
		case "engines":
			engines, err := engine.ParseList(pair.Value)
			if err != nil {
				return nil, err
			}
			sec.Engines = engines
		case "requires":
			sec.Requires = pair.Value
		default:
			return nil, fmt.Errorf("unknown directive key %q", pair.Key)
		}
	}
	return sec, nil
}

// Applies reports whether the section targets the current engine,
// honoring both the declared engine list and the version constraint.
func (sec *Section) Applies(current engine.Descriptor) (bool, error) {
	if !engine.IsSupported(sec.Engines, current) {
		return false, nil
	}
	if sec.Requires == "" {
		return true, nil
	}
	return engine.Satisfies(current, sec.Requires)
}

// Tree assembles the executable expression tree for the current engine.
// Sections that do not apply are skipped, never treated as errors, and
// returned for reporting. The root carries the script name and one
// child per applicable section.
func (s *Script) Tree(current engine.Descriptor) (*expression.Expression, []*Section, error) {
	root := expression.Raw("", expression.WithLabel(s.Name))
	var skipped []*Section
	for _, sec := range s.Sections {
		ok, err := sec.Applies(current)
		if err != nil {
			return nil, nil, fmt.Errorf("section %q: %w", sec.Label, err)
		}
		if !ok {
			skipped = append(skipped, sec)
			continue
		}
		opts := []expression.Option{expression.WithEngines(sec.Engines...)}
		if sec.Label != "" {
			opts = append(opts, expression.WithLabel(sec.Label))
		}
		root.Add(expression.Raw(sec.SQL, opts...))
	}
	return root, skipped, nil
}
