/*
 *  accuracy_test.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanghaibao/hgtbench"
)

func TestParseExpectedTransfers(t *testing.T) {
	log := `species SE001 with 3 genes
lgt from organism SE001 with gene 1000 to organism SE003, now gene 2001
lgt from organism SE002 with gene 1002 to organism SE001, now gene 2002
`
	transfers, err := hgtbench.ParseExpectedTransfers(strings.NewReader(log))
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, hgtbench.Transfer{
		DonorOrganism:     "SE001",
		DonorGene:         "1000",
		RecipientOrganism: "SE003",
		RecipientGene:     "2001",
	}, transfers[0])
	assert.Equal(t, "1002", transfers[1].DonorGene)
}

func TestParseObservedTransfers(t *testing.T) {
	table := "#number of HGTs detected\n" +
		"#\tgene ID\tT-REX\tJane 4\n" +
		"0\t1000\t1\t0\n" +
		"1\t1001\t2\t0\n"
	d, err := hgtbench.ParseObservedTransfers(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-REX", "Jane 4"}, d.Tools)
	assert.Equal(t, []string{"1000", "1001"}, d.Genes["T-REX"])
	assert.Empty(t, d.Genes["Jane 4"])
}

func TestParseObservedTransfersMalformed(t *testing.T) {
	table := "#number of HGTs detected\n#\tgene ID\tT-REX\n0\t1000\tyes\n"
	_, err := hgtbench.ParseObservedTransfers(strings.NewReader(table))
	assert.ErrorIs(t, err, hgtbench.ErrMalformedTable)
}

func TestComputeAccuracyHalfPrecision(t *testing.T) {
	expected := []hgtbench.Transfer{{"SE001", "g1", "SE002", "g9"}}
	observed := &hgtbench.Detections{
		Tools: []string{"toolX"},
		Genes: map[string][]string{"toolX": {"g1", "g2"}},
	}
	results := hgtbench.ComputeAccuracy(expected, observed)
	require.Len(t, results, 1)
	acc := results[0]
	assert.Equal(t, 1, acc.TP)
	assert.Equal(t, 1, acc.FP)
	assert.Equal(t, 0, acc.FN)
	assert.Equal(t, "toolX\t0.50\t1.00\t0.67", acc.String())
}

func TestComputeAccuracySkipsEmptyTools(t *testing.T) {
	expected := []hgtbench.Transfer{{"SE001", "g1", "SE002", "g9"}}
	observed := &hgtbench.Detections{
		Tools: []string{"toolX", "toolY"},
		Genes: map[string][]string{"toolX": {}, "toolY": {"g1"}},
	}
	results := hgtbench.ComputeAccuracy(expected, observed)
	require.Len(t, results, 1)
	assert.Equal(t, "toolY", results[0].Tool)
}

func TestComputeAccuracyZeroDenominators(t *testing.T) {
	observed := &hgtbench.Detections{
		Tools: []string{"toolX"},
		Genes: map[string][]string{"toolX": {"g2"}},
	}
	// No expected transfers and no overlap: recall and F-score have zero denominators
	results := hgtbench.ComputeAccuracy(nil, observed)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].Precision)
	assert.Equal(t, 0.0, results[0].Recall)
	assert.Equal(t, 0.0, results[0].FScore)
	assert.Equal(t, "toolX\t0.00\t0.00\t0.00", results[0].String())
}

func TestComputeAccuracyBounds(t *testing.T) {
	expected := []hgtbench.Transfer{
		{"a", "g1", "b", "x"}, {"a", "g2", "b", "x"}, {"a", "g3", "b", "x"},
	}
	observations := [][]string{
		{"g1"}, {"g1", "g2", "g3"}, {"g4"}, {"g1", "g4", "g5", "g6"}, {"g2", "g2"},
	}
	for _, genes := range observations {
		observed := &hgtbench.Detections{
			Tools: []string{"tool"},
			Genes: map[string][]string{"tool": genes},
		}
		for _, acc := range hgtbench.ComputeAccuracy(expected, observed) {
			for _, v := range []float64{acc.Precision, acc.Recall, acc.FScore} {
				assert.True(t, v >= 0 && v <= 1, "%v out of [0, 1] for %v", v, genes)
			}
			if acc.Precision+acc.Recall > 0 {
				hmean := 2 / (1/acc.Precision + 1/acc.Recall)
				assert.InDelta(t, hmean, acc.FScore, 1e-9)
			} else {
				assert.False(t, math.IsNaN(acc.FScore))
			}
		}
	}
}

func TestAssessorRun(t *testing.T) {
	var out bytes.Buffer
	r := hgtbench.Assessor{
		GroundTruthFile: filepath.Join("testdata", "logfile.txt"),
		ObservedFile:    filepath.Join("testdata", "observed_hgts.txt"),
		Out:             &out,
	}
	require.NoError(t, r.Run())
	expected := "T-REX\t1.00\t1.00\t1.00\n" +
		"RANGER-DTL\t0.67\t0.67\t0.67\n" +
		"Jane 4\t0.75\t1.00\t0.86\n"
	assert.Equal(t, expected, out.String())
	assert.Len(t, r.Results, 3)
}

func TestAssessorMissingFile(t *testing.T) {
	r := hgtbench.Assessor{
		GroundTruthFile: filepath.Join("testdata", "nope.txt"),
		ObservedFile:    filepath.Join("testdata", "observed_hgts.txt"),
		Out:             &bytes.Buffer{},
	}
	assert.ErrorIs(t, r.Run(), hgtbench.ErrMissingInput)
}
