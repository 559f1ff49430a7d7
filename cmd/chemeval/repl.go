// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	prompt = "chem> "
	banner = "chemeval REPL. Ctrl+D exits, :help lists commands."
)

const helpText = `Commands:
  <expr>             rewrite an expression, e.g. energy(photon(wavelength=nm(325)))
                     (all sub-expressions; deep: false in the config rewrites only the top)
  <reaction>         balance a reaction, e.g. C3H8 + O2 -> CO2 + H2O
  :balance <r>       balance r
  :atoms <formula>   count atoms per element
  :funcs             list declared functions
  :config            print the effective settings
  :quit              exit`

// repl reads lines until EOF or :quit.
func repl(s *session, w io.Writer) int {
	fmt.Fprintln(w, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath(s.cfg.HistoryFile)
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			s.logger.Print(err)
			return 1
		}

		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ln.AppendHistory(src)

		if quit := s.command(w, src); quit {
			return 0
		}
	}
}

// command runs one REPL input and reports whether the REPL should stop.
func (s *session) command(w io.Writer, src string) bool {
	if !strings.HasPrefix(src, ":") {
		s.show(w, s.line(src))
		return false
	}

	name, arg, _ := strings.Cut(src, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(w, helpText)
	case ":balance":
		s.show(w, s.balance(arg))
	case ":atoms":
		s.show(w, s.atoms(arg))
	case ":funcs":
		for _, d := range s.registry.Decls() {
			fmt.Fprintln(w, d.Signature())
		}
	case ":config":
		out, err := s.cfg.Marshal()
		s.show(w, result{out: strings.TrimRight(string(out), "\n"), err: err})
	default:
		fmt.Fprintf(w, "unknown command %s; :help lists commands\n", name)
	}
	return false
}

func (s *session) show(w io.Writer, res result) {
	if res.err != nil {
		fmt.Fprintln(w, "error:", res.err)
		return
	}
	fmt.Fprintln(w, res.out)
}

// historyPath resolves a relative history file against the home directory.
func historyPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}
