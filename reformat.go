/*
 *  reformat.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Reformatter converts a gene tree, a species tree and optionally a gene alignment
// into the input expected by an HGT detection tool
//
// Leaf labels of the species tree and gene tree must match, however the label
// SPECIESNAME_GENENAME is acceptable for multiple genes in the gene tree. Leaf
// labels should be at most 10 characters long for PHYLIP.
type Reformatter struct {
	GeneTreeFile    string
	SpeciesTreeFile string
	GeneMSAFile     string // FASTA, Tree-Puzzle only
	Method          Method
	TempDir         string // Intermediate files, defaults to os.TempDir()
	// Output file
	OutTreeFile string
	OutMSAFile  string // PHYLIP, Tree-Puzzle only
}

// treeFormatter writes the tool input from the two trees
type treeFormatter func(r *Reformatter, geneTree, speciesTree *Tree) error

var treeFormatters = map[Method]treeFormatter{
	RangerDTL:  (*Reformatter).formatRangerDTL,
	TREX:       (*Reformatter).formatTREX,
	RiataHGT:   (*Reformatter).formatRiataHGT,
	Jane4:      (*Reformatter).formatJane4,
	TreePuzzle: (*Reformatter).formatTreePuzzle,
}

// Run reads both trees and writes the files for the method
func (r *Reformatter) Run() error {
	formatter, ok := treeFormatters[r.Method]
	if !ok {
		return wrapf(ErrUnsupportedMethod, "no input reformatter for `%s`", r.Method)
	}
	if r.OutTreeFile == "" {
		return wrapf(ErrMissingInput, "%s needs an output tree file", r.Method)
	}
	geneTree, err := ReadTree(r.GeneTreeFile)
	if err != nil {
		return err
	}
	speciesTree, err := ReadTree(r.SpeciesTreeFile)
	if err != nil {
		return err
	}
	if err = formatter(r, geneTree, speciesTree); err != nil {
		return err
	}
	log.Notice("Success")
	return nil
}

// JoinTrees concatenates the species tree and the gene tree, one Newick per line
func JoinTrees(geneTree, speciesTree *Tree) string {
	return speciesTree.Newick() + "\n" + geneTree.Newick() + "\n"
}

// writeTrees writes the species and gene tree into the output tree file
func (r *Reformatter) writeTrees(geneTree, speciesTree *Tree) error {
	if err := writeOutput(r.OutTreeFile, JoinTrees(geneTree, speciesTree)); err != nil {
		return err
	}
	log.Noticef("Species and gene trees written to `%s`", r.OutTreeFile)
	return nil
}

// formatRangerDTL accepts SPECIESNAME_GENENAME gene leaves as is
func (r *Reformatter) formatRangerDTL(geneTree, speciesTree *Tree) error {
	return r.writeTrees(geneTree, speciesTree)
}

// formatTREX takes binary trees with equally labeled leaves. The trimmed gene tree
// goes through an intermediate file.
func (r *Reformatter) formatTREX(geneTree, speciesTree *Tree) error {
	geneTree.TrimLeaves()
	tmpDir := r.TempDir
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	tmpfile := filepath.Join(tmpDir, "hgtbench-"+uuid.NewString()+".nwk")
	defer os.Remove(tmpfile)
	if err := writeOutput(tmpfile, geneTree.Newick()+"\n"); err != nil {
		return err
	}
	trimmed, err := ReadTree(tmpfile)
	if err != nil {
		return err
	}
	return r.writeTrees(trimmed, speciesTree)
}

// formatRiataHGT writes the PhyloNet Nexus document
func (r *Reformatter) formatRiataHGT(geneTree, speciesTree *Tree) error {
	geneTree.TrimLeaves()
	return r.writeNexus(RiataHGTTemplate, NexusTrees{
		SpeciesTree: speciesTree.Newick(),
		GeneTree:    geneTree.Newick(),
	})
}

// formatJane4 writes the Jane 4 Nexus document, trees without branch lengths and
// the host/parasite ranges
func (r *Reformatter) formatJane4(geneTree, speciesTree *Tree) error {
	mapping, err := NewSpeciesGeneMapping(geneTree, speciesTree)
	if err != nil {
		return err
	}
	geneTree.TrimLeaves()
	geneTree.StripLengths()
	speciesTree.StripLengths()
	return r.writeNexus(Jane4Template, NexusTrees{
		SpeciesTree: speciesTree.Newick(),
		GeneTree:    geneTree.Newick(),
		Mapping:     mapping.String(),
	})
}

// formatTreePuzzle writes both trees without the root branch length and the
// alignment in PHYLIP with ids cut at the first "/"
func (r *Reformatter) formatTreePuzzle(geneTree, speciesTree *Tree) error {
	if r.GeneMSAFile == "" || r.OutMSAFile == "" {
		return wrapf(ErrMissingInput, "%s needs a FASTA alignment and an output PHYLIP file", r.Method)
	}
	geneTree.StripRootLength()
	speciesTree.StripRootLength()
	geneTree.TrimLeaves()
	if err := r.writeTrees(geneTree, speciesTree); err != nil {
		return err
	}
	al, err := ReadAlignment(r.GeneMSAFile, TrimSequenceID)
	if err != nil {
		return err
	}
	return WritePhylip(al, r.OutMSAFile)
}

// writeNexus renders a Nexus template into the output tree file
func (r *Reformatter) writeNexus(name string, trees NexusTrees) error {
	p, err := renderTemplate(name, trees)
	if err != nil {
		return err
	}
	if err = writeOutput(r.OutTreeFile, p); err != nil {
		return err
	}
	log.Noticef("Nexus file for %s written to `%s`", r.Method, r.OutTreeFile)
	return nil
}
