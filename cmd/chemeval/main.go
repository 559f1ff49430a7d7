// SPDX-License-Identifier: MIT

// Command chemeval evaluates physics expressions and balances chemical
// equations.
//
// Usage:
//
//	chemeval                          interactive REPL
//	chemeval -e 'nm(250)'             evaluate one expression
//	chemeval -b 'H2 + O2 -> H2O'      balance one reaction
//	chemeval -batch jobs.yaml         run a YAML batch file
//
// -config points at a YAML settings file (see package config).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/chemeval/config"
)

const appName = "chemeval"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and dispatches to the selected mode; it returns the exit
// code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "YAML settings file")
		batchPath = fs.String("batch", "", "YAML batch file to run")
		evalSrc   = fs.String("e", "", "expression to evaluate; every sub-expression is rewritten unless the config sets deep: false (single top-level pass)")
		balSrc    = fs.String("b", "", "reaction to balance")
		verbose   = fs.Bool("v", false, "trace dispatch and elimination steps")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, appName+": ", 0)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			logger.Print(err)
			return 1
		}
	}
	if *verbose {
		cfg.Verbose = true
	}
	s := newSession(cfg, logger)

	switch {
	case *batchPath != "":
		b, err := config.LoadBatch(*batchPath)
		if err != nil {
			logger.Print(err)
			return 1
		}
		if failed := s.runBatch(b, stdout); failed > 0 {
			logger.Printf("%d of %d jobs failed", failed, len(b.Jobs))
			return 1
		}
		return 0
	case *evalSrc != "":
		return s.printResult(stdout, s.eval(*evalSrc))
	case *balSrc != "":
		return s.printResult(stdout, s.balance(*balSrc))
	case fs.NArg() > 0:
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	return repl(s, stdout)
}
