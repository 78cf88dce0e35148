/*
 *  alignment.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"io"
	"strings"

	"github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/phylip"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// TrimSequenceID removes the "/GENENAME" part of a sequence identifier
func TrimSequenceID(id string) string {
	return strings.SplitN(id, "/", 2)[0]
}

// ReadAlignment reads a FASTA alignment, renaming every sequence with rename
func ReadAlignment(fastafile string, rename func(string) string) (align.Alignment, error) {
	if err := mustExist(fastafile); err != nil {
		return nil, err
	}
	log.Noticef("Parse FASTA file `%s`", fastafile)
	reader, err := fastx.NewDefaultReader(fastafile)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	seq.ValidateSeq = false

	var al align.Alignment
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if al == nil {
			alphabet := align.NUCLEOTIDS
			if rec.Seq.Alphabet == seq.Protein {
				alphabet = align.AMINOACIDS
			}
			al = align.NewAlign(alphabet)
		}
		id := string(rec.ID)
		name := rename(id)
		if len(name) > MaxPhylipID {
			log.Warningf("Sequence ID %s is longer than %d characters", name, MaxPhylipID)
		}
		if err = al.AddSequence(name, string(rec.Seq.Seq), ""); err != nil {
			return nil, wrapf(ErrMalformedAlignment, "sequence `%s` (%s)", id, err)
		}
	}
	if al == nil {
		return nil, wrapf(ErrMissingInput, "no sequences in `%s`", fastafile)
	}
	return al, nil
}

// WritePhylip writes the alignment in PHYLIP format
func WritePhylip(al align.Alignment, phylipfile string) error {
	if err := writeOutput(phylipfile, phylip.WriteAlignment(al, false, false, false)); err != nil {
		return err
	}
	log.Noticef("A total of %d sequences written to `%s`", al.NbSequences(), phylipfile)
	return nil
}
