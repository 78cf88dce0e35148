/*
 *  newick.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"io"
	"strconv"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
)

// Tree is a rooted Newick tree. The branch length above the root, which ALF writes
// out, is kept here since not every Newick reader accepts it.
type Tree struct {
	*tree.Tree
	rootLength float64
}

// ReadTree parses the single Newick tree stored in filename
func ReadTree(filename string) (*Tree, error) {
	fh, err := openInput(filename)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	log.Noticef("Parse treefile `%s`", filename)
	s, err := io.ReadAll(fh)
	if err != nil {
		return nil, err
	}
	if n := strings.Count(string(s), ";"); n != 1 {
		return nil, wrapf(ErrMalformedTree, "expected exactly one Newick tree in `%s`, found %d",
			filename, n)
	}
	return ParseTree(string(s))
}

// ParseTree parses a Newick string
func ParseTree(s string) (*Tree, error) {
	s, rootLength := liftRootLength(s)
	t, err := newick.NewParser(strings.NewReader(s)).Parse()
	if err != nil {
		return nil, wrapf(ErrMalformedTree, "%s", err)
	}
	return &Tree{Tree: t, rootLength: rootLength}, nil
}

// liftRootLength cuts the ":length" that follows the outermost closing parenthesis
func liftRootLength(s string) (string, float64) {
	s = strings.TrimSpace(s)
	body := strings.TrimSpace(strings.TrimSuffix(s, ";"))
	i := strings.LastIndex(body, ")")
	if i < 0 {
		return s, tree.NIL_LENGTH
	}
	tail := body[i+1:]
	j := strings.LastIndex(tail, ":")
	if j < 0 {
		return s, tree.NIL_LENGTH
	}
	length, err := strconv.ParseFloat(strings.TrimSpace(tail[j+1:]), 64)
	if err != nil {
		return s, tree.NIL_LENGTH
	}
	return body[:i+1] + tail[:j] + ";", length
}

// RootLength returns the branch length above the root, NIL_LENGTH if absent
func (t *Tree) RootLength() float64 {
	return t.rootLength
}

// Newick serializes the tree, terminated by ";"
func (t *Tree) Newick() string {
	s := t.Tree.Newick()
	if t.rootLength == tree.NIL_LENGTH {
		return s
	}
	return strings.TrimSuffix(s, ";") + ":" + formatFloat(t.rootLength) + ";"
}

// StripRootLength drops the branch length above the root
func (t *Tree) StripRootLength() {
	t.rootLength = tree.NIL_LENGTH
}

// StripLengths drops all branch lengths, visiting nodes in postorder
func (t *Tree) StripLengths() {
	t.PostOrder(func(cur, prev *tree.Node, e *tree.Edge) (keep bool) {
		if e != nil {
			e.SetLength(tree.NIL_LENGTH)
		}
		return true
	})
	t.StripRootLength()
}

// TipNames lists the leaf labels in tree order
func (t *Tree) TipNames() []string {
	tips := t.Tips()
	names := make([]string, len(tips))
	for i, tip := range tips {
		names[i] = tip.Name()
	}
	return names
}

// TrimLeaves removes the "_GENENAME" part of every leaf label
func (t *Tree) TrimLeaves() {
	for _, tip := range t.Tips() {
		tip.SetName(TrimLabel(tip.Name()))
	}
}
