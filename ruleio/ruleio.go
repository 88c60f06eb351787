// Package ruleio reads rule files into a registry.Registry, skipping
// blank lines and '#' comments and rejecting duplicates and
// structurally broken rules the way original_source/hcre.c's
// getline/HASH_FIND loop does.
package ruleio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/llamasoft/HashcatRulesEngine/engine"
	"github.com/llamasoft/HashcatRulesEngine/registry"
	"github.com/llamasoft/HashcatRulesEngine/rule"
)

// sentinelWord is the minimal word every freshly parsed rule is
// self-applied against before it is accepted into the registry.
var sentinelWord = []byte(" ")

// Diagnostic reports one rule that was skipped while loading, along
// with why.
type Diagnostic struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d - %s: %q", d.File, d.Line, d.Reason, d.Text)
}

// LoadFile reads every rule from path into reg, in order. It returns
// one Diagnostic per skipped line (duplicate, parse error, or
// self-apply failure); a line is never fatal to the load.
func LoadFile(reg *registry.Registry, path string) ([]Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule file %q: %w", path, err)
	}
	defer f.Close()
	return Load(reg, path, f)
}

// Load reads rules from r, attributing diagnostics to sourceName.
func Load(reg *registry.Registry, sourceName string, r io.Reader) ([]Diagnostic, error) {
	var diags []Diagnostic
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		text := scanner.Text()

		parsed, err := rule.ParseLine(text)
		if err != nil {
			diags = append(diags, Diagnostic{File: sourceName, Line: lineNum, Text: text, Reason: err.Error()})
			continue
		}
		if parsed == nil {
			continue
		}

		if _, err := engine.Apply(parsed, sentinelWord); err != nil && !errors.Is(err, engine.Rejected) {
			diags = append(diags, Diagnostic{File: sourceName, Line: lineNum, Text: text, Reason: err.Error()})
			continue
		}

		existing, inserted := reg.Insert(registry.Entry{
			Rule:       parsed,
			SourceFile: sourceName,
			SourceLine: lineNum,
			SourceText: text,
		})
		if !inserted {
			diags = append(diags, Diagnostic{
				File: sourceName, Line: lineNum, Text: text,
				Reason: fmt.Sprintf("duplicate of %s:%d", existing.SourceFile, existing.SourceLine),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return diags, fmt.Errorf("reading rule file %q: %w", sourceName, err)
	}
	return diags, nil
}
