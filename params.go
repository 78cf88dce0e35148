/*
 *  params.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"path/filepath"
	"strings"
)

// Defaults of the ALF parameter file
const (
	DefaultParamsFile     = "alf_params.txt"
	DefaultLGTRate        = 0.003
	DefaultOrthRep        = 0.5
	DefaultGCAmelioration = "False"
	DefaultFasta2Darwin   = "fasta2darwin"
)

// Parameterizer writes the parameter file for an ALF genome simulation
type Parameterizer struct {
	RootGenome     string  // Protein sequences of the root genome in FASTA format
	CustomTree     string  // Species tree in Newick format
	WorkDir        string  // ALF working directory
	OutputName     string  // Name of the parameter file inside WorkDir
	LGTRate        float64 // Rate of horizontal gene transfer
	OrthRep        float64 // Proportion of transfers that are orthologous replacements
	GCAmelioration string  // "True" draws random target frequencies for all leaf species
	Fasta2Darwin   string  // Converter binary
	// Output file
	OutParamsFile string
	OutDBFile     string
}

// alfParams are the placeholders of templates/alf_params.tmpl
type alfParams struct {
	WorkDir        string
	RootGenomeDB   string
	CustomTree     string
	LGTRate        string
	OrthRep        string
	GCAmelioration bool
}

// Validate checks the simulation settings before anything runs
func (r *Parameterizer) Validate() error {
	if r.RootGenome == "" || r.CustomTree == "" || r.WorkDir == "" {
		return wrapf(ErrMissingInput, "root genome, tree and working directory are required")
	}
	if math.IsNaN(r.LGTRate) || math.IsInf(r.LGTRate, 0) || r.LGTRate < 0 {
		return wrapf(ErrInvalidParameter, "LGT rate %s must be a finite number >= 0", formatFloat(r.LGTRate))
	}
	if math.IsNaN(r.OrthRep) || r.OrthRep < 0 || r.OrthRep > 1 {
		return wrapf(ErrInvalidParameter, "orthologous replacement %s not in [0, 1]",
			formatFloat(r.OrthRep))
	}
	if r.GCAmelioration != "True" && r.GCAmelioration != "False" {
		return wrapf(ErrInvalidParameter, "GC content amelioration must be True or False, got `%s`",
			r.GCAmelioration)
	}
	return nil
}

// Run converts the root genome and writes the parameter file
func (r *Parameterizer) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.OutputName == "" {
		r.OutputName = DefaultParamsFile
	}
	if r.GCAmelioration == "" {
		r.GCAmelioration = DefaultGCAmelioration
	}
	if r.Fasta2Darwin == "" {
		r.Fasta2Darwin = DefaultFasta2Darwin
	}
	if err := r.Validate(); err != nil {
		return err
	}

	workDir, err := filepath.Abs(r.WorkDir)
	if err != nil {
		return err
	}
	rootGenome, err := filepath.Abs(r.RootGenome)
	if err != nil {
		return err
	}
	customTree, err := filepath.Abs(r.CustomTree)
	if err != nil {
		return err
	}
	r.OutDBFile = filepath.Join(workDir, filepath.Base(r.RootGenome)+".db")
	r.OutParamsFile = filepath.Join(workDir, r.OutputName)

	if err = r.runFasta2Darwin(ctx, rootGenome, r.OutDBFile); err != nil {
		return err
	}

	p, err := renderTemplate(ALFParamsTemplate, alfParams{
		WorkDir:        workDir,
		RootGenomeDB:   r.OutDBFile,
		CustomTree:     customTree,
		LGTRate:        formatFloat(r.LGTRate),
		OrthRep:        formatFloat(r.OrthRep),
		GCAmelioration: r.GCAmelioration == "True",
	})
	if err != nil {
		return err
	}
	if err = writeOutput(r.OutParamsFile, p); err != nil {
		return err
	}
	log.Noticef("ALF parameters (lgtRate = %s, orthRep = %s) written to `%s`",
		formatFloat(r.LGTRate), formatFloat(r.OrthRep), r.OutParamsFile)
	return nil
}

// runFasta2Darwin converts the FASTA root genome into a Darwin database. Anything on
// stderr counts as a failure.
func (r *Parameterizer) runFasta2Darwin(ctx context.Context, fastafile, dbfile string) error {
	log.Noticef("Convert `%s` to `%s`", fastafile, dbfile)
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Fasta2Darwin, fastafile, "-o", dbfile)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return wrapf(ErrConverter, "%s", msg)
	}
	if err != nil {
		return wrapf(ErrConverter, "%s", err)
	}
	log.Debugf("%s: %s", r.Fasta2Darwin, strings.TrimSpace(stdout.String()))
	return nil
}
