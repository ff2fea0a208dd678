// Command lox is the CLI driver for the core package: a REPL backed by
// github.com/peterh/liner, or a one-shot file runner. Everything here
// is external to the interpreter core (spec.md §1) — it only turns a
// lox.Result into formatted diagnostics and a process exit code.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/loxscript/lox"
	"github.com/peterh/liner"
)

const (
	exitUsage   = 64
	exitCompile = 65
	exitRuntime = 70

	historyFile = ".lox_history"
	prompt      = "> "
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		return runRepl()
	case 1:
		return runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		return exitUsage
	}
}

func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	session := lox.New(os.Stdout)
	result := session.Run(string(source))
	reportResult(result, os.Stderr)

	switch {
	case result.HadError():
		return exitCompile
	case result.HadRuntimeError():
		return exitRuntime
	default:
		return 0
	}
}

func runRepl() int {
	fmt.Println("GoLox — a tree-walking Lox interpreter. Ctrl-D to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	session := lox.New(os.Stdout)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		result := session.Run(line)
		reportResult(result, os.Stderr)
	}
}

func reportResult(result lox.Result, w io.Writer) {
	for _, err := range result.CompileErrors {
		fmt.Fprintln(w, color(err))
	}
	if result.RuntimeErr != nil {
		fmt.Fprintln(w, color(result.RuntimeErr))
	}
}

// color tints an error red in the REPL/CLI the way the rest of the
// retrieval pack's line-oriented tools do (daios-ai-msg/cmd/msg) rather
// than pulling in a terminal-color dependency for one call site.
func color(err error) string {
	return red(err.Error())
}

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
