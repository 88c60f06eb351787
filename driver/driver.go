// Package driver streams words from an input source through every
// rule in a registry.Registry, writing each successful mangle and
// retiring any rule that breaks at runtime, mirroring
// original_source/hcre.c's per-line HASH_ITER loop.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/llamasoft/HashcatRulesEngine/engine"
	"github.com/llamasoft/HashcatRulesEngine/registry"
)

// Stats accumulates counters across a Run.
type Stats struct {
	WordsRead      int
	OutputsWritten int
	RulesRetired   int
}

// Options controls Run's behavior.
type Options struct {
	// IncludeRuleText prefixes each output line with the rule's source
	// text and a tab, for debug-style output.
	IncludeRuleText bool
	// Diagnostics receives one line per runtime rule failure. A nil
	// Diagnostics discards them.
	Diagnostics io.Writer
}

// Run reads newline-delimited words from words, applies every rule in
// reg to each, and writes successful results to out. A rule whose
// apply fails with a structural error (not a predicate rejection) is
// reported to opts.Diagnostics and removed from reg so later words
// don't pay for it again.
func Run(reg *registry.Registry, words io.Reader, out io.Writer, opts Options) (Stats, error) {
	var stats Stats
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	scanner := bufio.NewScanner(words)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		stats.WordsRead++
		word := []byte(line)

		reg.Each(func(e registry.Entry) {
			result, err := engine.Apply(e.Rule, word)
			if err != nil {
				if errors.Is(err, engine.Rejected) {
					return
				}
				if opts.Diagnostics != nil {
					fmt.Fprintf(opts.Diagnostics, "input %q, rule %q: %v\n", line, e.SourceText, err)
				}
				reg.Remove(e.Rule)
				stats.RulesRetired++
				return
			}

			if opts.IncludeRuleText {
				writer.WriteString(e.SourceText)
				writer.WriteByte('\t')
			}
			writer.Write(result)
			writer.WriteByte('\n')
			stats.OutputsWritten++
		})
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading word stream: %w", err)
	}
	return stats, nil
}
