/*
 *  accuracy.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// groundTruthAnchor marks an LGT event in the ALF logfile
const groundTruthAnchor = "lgt from organism "

var groundTruthSplitter = regexp.MustCompile(
	"lgt from organism | with gene | to organism |, now gene ")

// Assessor computes precision, recall and F-score of every tool against the ALF log
type Assessor struct {
	GroundTruthFile string
	ObservedFile    string
	Out             io.Writer
	// Results are populated by Run, in the column order of the observed table
	Results []Accuracy
}

// Transfer is one simulated LGT event
type Transfer struct {
	DonorOrganism     string
	DonorGene         string
	RecipientOrganism string
	RecipientGene     string
}

// Detections maps each tool to the genes it flagged, keeping the table column order
type Detections struct {
	Tools []string
	Genes map[string][]string
}

// Accuracy holds the scores of one tool
type Accuracy struct {
	Tool      string
	TP        int
	FP        int
	FN        int
	Precision float64
	Recall    float64
	FScore    float64
}

// String outputs the tab-separated report line
func (r Accuracy) String() string {
	return fmt.Sprintf("%s\t%.2f\t%.2f\t%.2f", r.Tool, r.Precision, r.Recall, r.FScore)
}

// Run parses both files and writes one line per evaluated tool
func (r *Assessor) Run() error {
	gf, err := openInput(r.GroundTruthFile)
	if err != nil {
		return err
	}
	defer gf.Close()
	log.Noticef("Parse ground truth `%s`", r.GroundTruthFile)
	expected, err := ParseExpectedTransfers(gf)
	if err != nil {
		return err
	}

	of, err := openInput(r.ObservedFile)
	if err != nil {
		return err
	}
	defer of.Close()
	log.Noticef("Parse observed HGTs `%s`", r.ObservedFile)
	observed, err := ParseObservedTransfers(of)
	if err != nil {
		return err
	}

	log.Noticef("%d expected transfers, %d tools", len(expected), len(observed.Tools))
	r.Results = ComputeAccuracy(expected, observed)
	w := bufio.NewWriter(r.Out)
	for _, acc := range r.Results {
		log.Debugf("%s: tp=%d fp=%d fn=%d", acc.Tool, acc.TP, acc.FP, acc.FN)
		fmt.Fprintln(w, acc)
	}
	return w.Flush()
}

// ParseExpectedTransfers reads the ALF logfile and reports the LGT events, e.g.
// lgt from organism SE001 with gene 12 to organism SE004, now gene 1003
func ParseExpectedTransfers(rd io.Reader) ([]Transfer, error) {
	var transfers []Transfer
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, groundTruthAnchor) {
			continue
		}
		words := groundTruthSplitter.Split(strings.TrimSpace(line), -1)
		if len(words) < 5 {
			log.Warningf("Skip truncated transfer `%s`", line)
			continue
		}
		transfers = append(transfers, Transfer{
			DonorOrganism:     words[1],
			DonorGene:         words[2],
			RecipientOrganism: words[3],
			RecipientGene:     words[4],
		})
	}
	return transfers, scanner.Err()
}

// ParseObservedTransfers reads the summary table of observed transfers
//
// The table has the following format:
// #number of HGTs detected
// #	gene ID	T-REX	RANGER-DTL	RIATA-HGT	Jane 4	Consel
// 0	1000	1	1	1	1
// 1	1001	0	0	0	0
func ParseObservedTransfers(rd io.Reader) (*Detections, error) {
	r := csv.NewReader(bufio.NewReader(rd))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	d := &Detections{Genes: map[string][]string{}}
	var tools []string
	for i := 0; ; i++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapf(ErrMalformedTable, "line %d (%s)", i+1, err)
		}
		if i == 0 {
			continue // Skip title
		}
		if len(rec) > 0 && strings.HasPrefix(strings.TrimSpace(rec[0]), "#") {
			tools = tools[:0]
			for _, tool := range rec[min(2, len(rec)):] {
				tool = strings.TrimSpace(tool)
				tools = append(tools, tool)
				if _, ok := d.Genes[tool]; !ok {
					d.Genes[tool] = []string{}
					d.Tools = append(d.Tools, tool)
				}
			}
			continue
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			return nil, wrapf(ErrMalformedTable, "line %d has %d columns", i+1, len(rec))
		}
		gene := strings.TrimSpace(rec[1])
		for j, field := range rec[2:] {
			if j >= len(tools) {
				return nil, wrapf(ErrMalformedTable, "line %d has more columns than tools", i+1)
			}
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, wrapf(ErrMalformedTable, "line %d column %d (%s)", i+1, j+3, err)
			}
			if n > 0 {
				d.Genes[tools[j]] = append(d.Genes[tools[j]], gene)
			}
		}
	}
	return d, nil
}

// ComputeAccuracy scores every tool with at least one detection; tools without
// detections are skipped. Zero denominators score 0.
func ComputeAccuracy(expected []Transfer, observed *Detections) []Accuracy {
	exp := map[string]bool{}
	for _, t := range expected {
		exp[t.DonorGene] = true
	}

	var results []Accuracy
	for _, tool := range observed.Tools {
		obs := map[string]bool{}
		for _, gene := range observed.Genes[tool] {
			obs[gene] = true
		}
		if len(obs) == 0 {
			continue
		}
		tp := 0
		for gene := range obs {
			if exp[gene] {
				tp++
			}
		}
		fp := len(obs) - tp
		fn := len(exp) - tp
		p := ratio(tp, tp+fp)
		rc := ratio(tp, tp+fn)
		f := 0.0
		if p+rc > 0 {
			f = 2 * p * rc / (p + rc)
		}
		results = append(results, Accuracy{Tool: tool, TP: tp, FP: fp, FN: fn,
			Precision: p, Recall: rc, FScore: f})
	}
	return results
}

// ratio divides a by b, 0 when b is 0
func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// min gets the minimum for two ints
func min(x, y int) int {
	if x < y {
		return x
	}
	return y
}
