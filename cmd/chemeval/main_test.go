// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemeval/chem"
	"github.com/katalvlaran/chemeval/config"
	"github.com/katalvlaran/chemeval/expr"
)

func newTestSession(cfg config.Config) (*session, *bytes.Buffer) {
	var logs bytes.Buffer
	return newSession(cfg, log.New(&logs, "", 0)), &logs
}

func TestSession_Line(t *testing.T) {
	s, _ := newTestSession(config.Default())

	cases := []struct{ in, want string }{
		{"nm(250)", "250 * nm"},
		{"energy(photon(wavelength=nm(325)))", "(c * h) / (325 * nm)"},
		{"H2 + O2 -> H2O", "2H₂ + O₂ ⟶ 2H₂O"},
		{"C3H8 + O2 = CO2 + H2O", "C₃H₈ + 5O₂ ⟶ 3CO₂ + 4H₂O"},
		{"x", "x"},
	}
	for _, tc := range cases {
		res := s.line(tc.in)
		require.NoError(t, res.err, tc.in)
		assert.Equal(t, tc.want, res.out, tc.in)
	}
}

func TestSession_LineErrors(t *testing.T) {
	s, _ := newTestSession(config.Default())

	res := s.line("nm(250")
	assert.ErrorIs(t, res.err, expr.ErrSyntax)

	res = s.line("H2O + H2 -> H2O")
	assert.ErrorIs(t, res.err, chem.ErrUnbalanceable)
}

func TestSession_Shallow(t *testing.T) {
	cfg := config.Default()
	cfg.Deep = false
	s, _ := newTestSession(cfg)

	res := s.eval("energy(photon(wavelength=nm(325)))")
	require.NoError(t, res.err)
	assert.Equal(t, "(c * h) / nm(325)", res.out)
}

func TestSession_Atoms(t *testing.T) {
	s, _ := newTestSession(config.Default())

	res := s.atoms("Al2(SO4)3")
	require.NoError(t, res.err)
	assert.Equal(t, "Al: 2, O: 12, S: 3", res.out)

	assert.Error(t, s.atoms("Al2(SO4").err)
}

func TestSession_Verbose(t *testing.T) {
	cfg := config.Default()
	cfg.Verbose = true
	s, logs := newTestSession(cfg)

	require.NoError(t, s.eval("nm(250)").err)
	assert.Contains(t, logs.String(), "apply:")

	require.NoError(t, s.balance("H2 + O2 -> H2O").err)
	assert.Contains(t, logs.String(), "row order")
}

func TestSession_Command(t *testing.T) {
	s, _ := newTestSession(config.Default())
	var out bytes.Buffer

	assert.False(t, s.command(&out, ":funcs"))
	assert.Contains(t, out.String(), "energy => photon(wavelength=)")

	out.Reset()
	assert.False(t, s.command(&out, ":balance Fe + Cl2 -> FeCl3"))
	assert.Equal(t, "2Fe + 3Cl₂ ⟶ 2FeCl₃\n", out.String())

	out.Reset()
	assert.False(t, s.command(&out, ":config"))
	assert.Contains(t, out.String(), "ordering: augmenting")

	out.Reset()
	assert.False(t, s.command(&out, ":nope"))
	assert.Contains(t, out.String(), "unknown command :nope")

	out.Reset()
	assert.False(t, s.command(&out, "nm(250"))
	assert.True(t, strings.HasPrefix(out.String(), "error: "))

	assert.True(t, s.command(&out, ":quit"))
}

func TestRun_OneShot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-e", "mole(2)"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "2 * N_A\n", stdout.String())

	stdout.Reset()
	code = run([]string{"-b", "Al + O2 -> Al2O3"}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "4Al + 3O₂ ⟶ 2Al₂O₃\n", stdout.String())

	stderr.Reset()
	code = run([]string{"-b", "Al + O2 ->"}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "chemeval: ")
}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	batchPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ordering: greedy\nmax_passes: 10\n"), 0o600))
	require.NoError(t, os.WriteFile(batchPath, []byte(`jobs:
  - eval: period(frequency=nu)
  - balance: PCl5 + H2O -> H3PO4 + HCl
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", cfgPath, "-batch", batchPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		"period(frequency=nu)\t1 / nu\n"+
			"PCl5 + H2O -> H3PO4 + HCl\tPCl₅ + 4H₂O ⟶ H₃PO₄ + 5HCl\n",
		stdout.String())
}

func TestRun_BatchFailures(t *testing.T) {
	batchPath := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(batchPath, []byte(`jobs:
  - balance: H2 -> O2
  - eval: GHz(1)
`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-batch", batchPath}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "GHz(1)\t1 * GHz\n", stdout.String())
	assert.Contains(t, stderr.String(), "1 of 2 jobs failed")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"stray"}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr))
}

func TestRun_UsageNotesDeepDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "deep: false")
	assert.True(t, config.Default().Deep)
}

func TestHistoryPath(t *testing.T) {
	assert.Equal(t, "", historyPath(""))
	assert.Equal(t, "/tmp/h", historyPath("/tmp/h"))
	assert.True(t, strings.HasSuffix(historyPath(".chemeval_history"), ".chemeval_history"))
}
