/*
 *  errors.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSpecies is raised when a species tree leaf label occurs twice
	ErrDuplicateSpecies = errors.New("species tree leaves must be uniquely labeled")
	// ErrUnknownSpecies is raised when a gene leaf names a species missing from the species tree
	ErrUnknownSpecies = errors.New("species does not exist in the species tree")
	// ErrMalformedLabel is raised when a gene leaf is not SPECIES_GENE
	ErrMalformedLabel = errors.New("malformed gene leaf label")
	// ErrMalformedTree is raised when a tree file does not hold exactly one Newick tree
	ErrMalformedTree = errors.New("malformed Newick tree")
	// ErrMalformedAlignment is raised when the FASTA sequences do not form an alignment
	ErrMalformedAlignment = errors.New("malformed alignment")
	// ErrConverter is raised when the FASTA to Darwin converter fails
	ErrConverter = errors.New("fasta2darwin failed")
	// ErrUnknownMethod is raised for a method name outside the supported set
	ErrUnknownMethod = errors.New("unknown HGT detection method")
	// ErrUnsupportedMethod is raised for a known method that has no handler
	ErrUnsupportedMethod = errors.New("method not supported")
	// ErrMissingInput is raised when a required file or path is absent
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidParameter is raised for out of range simulation parameters
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrMalformedTable is raised for unparseable detection summary rows
	ErrMalformedTable = errors.New("malformed detection table")
)

// wrapf prefixes a sentinel error with a formatted message
func wrapf(err error, msg string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(msg, args...), err)
}
