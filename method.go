/*
 *  method.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"strings"
)

// Method is one of the HGT detection tools benchmarked
type Method int

// Supported methods, in the order they are listed on the command line
const (
	TREX Method = iota
	RangerDTL
	RiataHGT
	Consel
	Darkhorse
	WnSVM
	Genemark
	HGTector
	DistanceMethod
	Jane4
	TreePuzzle
)

var methodNames = [...]string{
	TREX:           "trex",
	RangerDTL:      "ranger-dtl",
	RiataHGT:       "riata-hgt",
	Consel:         "consel",
	Darkhorse:      "darkhorse",
	WnSVM:          "wn-svm",
	Genemark:       "genemark",
	HGTector:       "hgtector",
	DistanceMethod: "distance-method",
	Jane4:          "jane4",
	TreePuzzle:     "tree-puzzle",
}

// Methods lists all methods
func Methods() []Method {
	ms := make([]Method, len(methodNames))
	for i := range methodNames {
		ms[i] = Method(i)
	}
	return ms
}

// MethodNames returns the command line names of all methods
func MethodNames() []string {
	return append([]string{}, methodNames[:]...)
}

// String returns the command line name of the method
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "unknown"
	}
	return methodNames[m]
}

// ParseMethod converts a command line name into a Method
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return -1, wrapf(ErrUnknownMethod, "`%s` (choose from %s)",
		name, strings.Join(methodNames[:], ", "))
}
