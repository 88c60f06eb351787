package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/llamasoft/HashcatRulesEngine/config"
	"github.com/llamasoft/HashcatRulesEngine/debugtui"
	"github.com/llamasoft/HashcatRulesEngine/driver"
	"github.com/llamasoft/HashcatRulesEngine/registry"
	"github.com/llamasoft/HashcatRulesEngine/rule"
	"github.com/llamasoft/HashcatRulesEngine/ruleio"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Load a TOML config file overriding defaults")
		debugMode   = flag.Bool("debug", false, "Launch the interactive rule stepper instead of batch processing")
		debugWord   = flag.String("debug-word", "", "Word to step through in -debug mode")
		dedupLog    = flag.String("dedup-log", "", "Write rule-load and runtime diagnostics to a file instead of stderr")
		quiet       = flag.Bool("quiet", false, "Suppress per-duplicate / per-runtime-failure diagnostics")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("hcre %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		os.Exit(0)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFrom(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(-1)
		}
		cfg = loaded
	}
	if *quiet {
		cfg.Diagnostics.Quiet = true
	}
	if *dedupLog != "" {
		cfg.Diagnostics.DedupLog = *dedupLog
	}

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(0)
	}

	if *debugMode {
		runDebugger(flag.Arg(0), *debugWord)
		return
	}

	reg := registry.New()
	diagOut := os.Stderr
	if cfg.Diagnostics.DedupLog != "" {
		f, err := os.Create(cfg.Diagnostics.DedupLog) // #nosec G304 -- user-specified diagnostics path
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating dedup log: %v\n", err)
			os.Exit(-1)
		}
		defer f.Close()
		diagOut = f
	}

	for _, path := range flag.Args() {
		diags, err := ruleio.LoadFile(reg, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to open input file '%s'\n", path)
			os.Exit(-1)
		}
		if !cfg.Diagnostics.Quiet {
			for _, d := range diags {
				fmt.Fprintln(diagOut, d.String())
			}
		}
	}

	stats, err := driver.Run(reg, os.Stdin, os.Stdout, driver.Options{
		Diagnostics: diagnosticsWriter(cfg.Diagnostics.Quiet, diagOut),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}

	fmt.Fprintf(os.Stderr, "%d words read, %d outputs written, %d rules retired\n",
		stats.WordsRead, stats.OutputsWritten, stats.RulesRetired)
}

func diagnosticsWriter(quiet bool, out *os.File) io.Writer {
	if quiet {
		return nil
	}
	return out
}

func runDebugger(ruleFile, word string) {
	f, err := os.Open(ruleFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to open rule file '%s'\n", ruleFile)
		os.Exit(-1)
	}
	defer f.Close()

	reg := registry.New()
	if _, err := ruleio.Load(reg, ruleFile, f); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(-1)
	}
	if reg.Size() == 0 {
		fmt.Fprintln(os.Stderr, "No rules loaded")
		os.Exit(-1)
	}

	var first rule.Rule
	var firstText string
	reg.Each(func(e registry.Entry) {
		if first == nil {
			first = e.Rule
			firstText = e.SourceText
		}
	})

	tui, err := debugtui.New(first, firstText, []byte(word))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting debugger: %v\n", err)
		os.Exit(-1)
	}
	if err := tui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Debugger error: %v\n", err)
		os.Exit(-1)
	}
}

func printUsage() {
	fmt.Printf(`hcre %s

Usage: hcre [flags] <rule_file> [<rule_file> ...]

Reads newline-delimited words from stdin, applies every loaded rule to
every word, and writes successful mangles to stdout.

Flags:
  -version          Show version information
  -config PATH      Load a TOML config file overriding defaults
  -debug            Launch the interactive rule stepper
  -debug-word WORD  Word to step through in -debug mode
  -dedup-log PATH   Write rule-load and runtime diagnostics to a file instead of stderr
  -quiet            Suppress per-duplicate / per-runtime-failure diagnostics

Examples:
  hcre rules/best64.rule < wordlist.txt > mangled.txt
  hcre -debug -debug-word password rules/best64.rule
`, Version)
}
