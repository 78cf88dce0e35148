/*
 *  mapping.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"strings"
	"unicode"
)

// isLabelDelimiter separates the species from the gene in a gene leaf, ALF writes
// SPECIES_GENE and some readers turn the underscore into a space
func isLabelDelimiter(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// unquote strips one layer of Newick single quotes, '' stands for a quote
func unquote(label string) string {
	if len(label) >= 2 && label[0] == '\'' && label[len(label)-1] == '\'' {
		return strings.ReplaceAll(label[1:len(label)-1], "''", "'")
	}
	return label
}

// SplitLabel splits a gene leaf label into its species and gene tokens
func SplitLabel(label string) (species, gene string, err error) {
	words := strings.FieldsFunc(unquote(label), isLabelDelimiter)
	if len(words) != 2 {
		return "", "", wrapf(ErrMalformedLabel, "`%s` is not SPECIES_GENE", label)
	}
	return words[0], words[1], nil
}

// TrimLabel keeps the species token of a gene leaf label. Labels without a gene
// part are returned as is.
func TrimLabel(label string) string {
	words := strings.FieldsFunc(unquote(label), isLabelDelimiter)
	if len(words) == 0 {
		return label
	}
	return words[0]
}

// SpeciesGeneMapping associates every species tree leaf with its gene tree leaves
type SpeciesGeneMapping struct {
	Species []string            // species in species tree order
	Genes   map[string][]string // species => genes in gene tree order
}

// NewSpeciesGeneMapping builds the mapping between the leaves of the species and
// gene trees. Species leaves must be unique and every gene leaf must name one of them.
func NewSpeciesGeneMapping(geneTree, speciesTree *Tree) (*SpeciesGeneMapping, error) {
	m := &SpeciesGeneMapping{Genes: map[string][]string{}}
	for _, species := range speciesTree.TipNames() {
		species = unquote(species)
		if _, ok := m.Genes[species]; ok {
			return nil, wrapf(ErrDuplicateSpecies, "%s", species)
		}
		m.Genes[species] = []string{}
		m.Species = append(m.Species, species)
	}
	for _, label := range geneTree.TipNames() {
		species, gene, err := SplitLabel(label)
		if err != nil {
			return nil, err
		}
		if _, ok := m.Genes[species]; !ok {
			return nil, wrapf(ErrUnknownSpecies, "%s (gene leaf `%s`)", species, label)
		}
		m.Genes[species] = append(m.Genes[species], gene)
	}
	return m, nil
}

// String formats the mapping as a Jane 4 range, e.g. "sp1:g1, sp2:g2"
func (m *SpeciesGeneMapping) String() string {
	var pairs []string
	for _, species := range m.Species {
		for _, gene := range m.Genes[species] {
			pairs = append(pairs, species+":"+gene)
		}
	}
	return strings.Join(pairs, ", ")
}
