/*
 *  parse.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// OutputParser extracts the number of detected HGTs from a tool log
type OutputParser struct {
	ResultsFile string
	Method      Method
	Out         io.Writer
	// Count is populated by Run, NaN when the log has no count
	Count string
}

// countExtractor pulls the count from a line, ok is false when the line does not match
type countExtractor func(line string) (count string, ok bool)

var countExtractors = map[Method]countExtractor{
	TREX:      parseTREX,
	RangerDTL: parseRangerDTL,
	RiataHGT:  parseRiataHGT,
	Jane4:     parseJane4,
}

// Run scans the log with the extractor of the method and prints the first count
func (r *OutputParser) Run() error {
	extract, ok := countExtractors[r.Method]
	if !ok {
		return wrapf(ErrUnsupportedMethod, "no output parser for `%s`", r.Method)
	}
	fh, err := openInput(r.ResultsFile)
	if err != nil {
		return err
	}
	defer fh.Close()

	log.Noticef("Parse %s output `%s`", r.Method, r.ResultsFile)
	r.Count, err = ExtractCount(fh, extract)
	if err != nil {
		return err
	}
	if r.Count == NaN {
		log.Warningf("No HGT count found in `%s`", r.ResultsFile)
	}
	_, err = fmt.Fprintln(r.Out, r.Count)
	return err
}

// ExtractCount returns the first count found by extract, or NaN
func ExtractCount(rd io.Reader, extract countExtractor) (string, error) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if count, ok := extract(scanner.Text()); ok {
			return count, nil
		}
	}
	return NaN, scanner.Err()
}

// ParseCount parses a log of the given method
func ParseCount(rd io.Reader, method Method) (string, error) {
	extract, ok := countExtractors[method]
	if !ok {
		return "", wrapf(ErrUnsupportedMethod, "no output parser for `%s`", method)
	}
	return ExtractCount(rd, extract)
}

// after returns the text following anchor, ok is false when anchor is absent
func after(line, anchor string) (string, bool) {
	i := strings.Index(line, anchor)
	if i < 0 {
		return "", false
	}
	return line[i+len(anchor):], true
}

// before returns the text preceding sep, or all of s
func before(s, sep string) string {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i]
	}
	return s
}

// parseTREX reads T-REX 3.6, e.g.
// hgt : number of HGT(s) found = 3
func parseTREX(line string) (string, bool) {
	rest, ok := after(line, "hgt : number of HGT(s) found = ")
	return strings.TrimSpace(rest), ok
}

// parseRangerDTL reads RANGER-DTL 1.0, e.g.
// The minimum reconciliation cost is: 6 (Duplications: 0, Transfers: 2, Losses: 0)
func parseRangerDTL(line string) (string, bool) {
	if !strings.Contains(line, "The minimum reconciliation cost is: ") {
		return "", false
	}
	rest, ok := after(line, "Transfers: ")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(before(rest, ",")), true
}

// parseRiataHGT reads PhyloNet RIATA-HGT, e.g.
// There are 2 component(s) in the species tree
func parseRiataHGT(line string) (string, bool) {
	rest, ok := after(line, "There are ")
	return strings.TrimSpace(before(rest, " component(s)")), ok
}

// parseJane4 reads the Jane 4 CLI, e.g.
// Host Switch: 4
func parseJane4(line string) (string, bool) {
	rest, ok := after(line, "Host Switch: ")
	return strings.TrimSpace(rest), ok
}
