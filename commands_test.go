/*
 *  commands_test.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	logging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanghaibao/hgtbench"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &hgtbench.Config{Fasta2Darwin: hgtbench.DefaultFasta2Darwin, LogLevel: logging.ERROR}
	cmd := hgtbench.NewRootCommand(cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse",
		"--hgt-results-fp", filepath.Join("testdata", "trex.log"), "--method", "trex")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = runCommand(t, "parse",
		"--hgt-results-fp", filepath.Join("testdata", "trex.log"), "--method", "phylonet")
	assert.ErrorIs(t, err, hgtbench.ErrUnknownMethod)
}

func TestAccuracyCommand(t *testing.T) {
	out, err := runCommand(t, "accuracy",
		"--ground-truth-fp", filepath.Join("testdata", "logfile.txt"),
		"--observed-hgts-fp", filepath.Join("testdata", "observed_hgts.txt"))
	require.NoError(t, err)
	assert.Equal(t, "T-REX\t1.00\t1.00\t1.00\nRANGER-DTL\t0.67\t0.67\t0.67\nJane 4\t0.75\t1.00\t0.86\n", out)
}

func TestReformatCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "jane.nex")
	_, err := runCommand(t, "reformat",
		"--gene-tree-fp", filepath.Join("testdata", "gene.nwk"),
		"--species-tree-fp", filepath.Join("testdata", "species.nwk"),
		"--output-tree-fp", output,
		"--method", "jane4")
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestParamsCommandDefaults(t *testing.T) {
	dir := t.TempDir()
	genome := filepath.Join(dir, "genome.fa")
	require.NoError(t, writeFile(genome, ">p1\nMKVL\n"))
	converter := fakeConverter(t, dir, `touch "$3"`)
	_, err := runCommand(t, "params", "--fasta2darwin", converter,
		genome, filepath.Join("testdata", "species.nwk"), dir)
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, hgtbench.DefaultParamsFile))
	require.NoError(t, err)
	assert.Contains(t, string(b), "lgtRate := 0.003;")
	assert.Contains(t, string(b), "orthRep := 0.5;")

	_, err = runCommand(t, "params", "--fasta2darwin", converter,
		genome, filepath.Join("testdata", "species.nwk"), dir, "p.txt", "fast")
	assert.ErrorIs(t, err, hgtbench.ErrInvalidParameter)

	_, err = runCommand(t, "params", "--fasta2darwin", converter,
		genome, filepath.Join("testdata", "species.nwk"), dir, "x.txt", "Inf", "NaN")
	assert.ErrorIs(t, err, hgtbench.ErrInvalidParameter)
	assert.NoFileExists(t, filepath.Join(dir, "x.txt"))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("HGTBENCH_FASTA2DARWIN", "")
	t.Setenv("HGTBENCH_LOG_LEVEL", "")
	os.Unsetenv("HGTBENCH_FASTA2DARWIN")
	os.Unsetenv("HGTBENCH_LOG_LEVEL")

	envfile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, writeFile(envfile,
		"HGTBENCH_FASTA2DARWIN=/opt/alf/bin/fasta2darwin\nHGTBENCH_LOG_LEVEL=DEBUG\n"))
	cfg := hgtbench.LoadConfig(envfile)
	assert.Equal(t, "/opt/alf/bin/fasta2darwin", cfg.Fasta2Darwin)
	assert.Equal(t, logging.DEBUG, cfg.LogLevel)

	cfg = hgtbench.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "/opt/alf/bin/fasta2darwin", cfg.Fasta2Darwin)
}

func TestLoadConfigQuietWithoutEnvFile(t *testing.T) {
	mem := logging.NewMemoryBackend(16)
	leveled := logging.AddModuleLevel(mem)
	leveled.SetLevel(logging.DEBUG, "")
	logging.SetBackend(leveled)
	t.Cleanup(func() { hgtbench.SetLogLevel(logging.ERROR) })

	t.Setenv("HGTBENCH_LOG_LEVEL", "")
	// testdata has no .env
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join(wd, "testdata")))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	hgtbench.LoadConfig()
	assert.Nil(t, mem.Head(), "no log line expected without a .env file")

	hgtbench.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NotNil(t, mem.Head())
	assert.Equal(t, logging.WARNING, mem.Head().Record.Level)
}
