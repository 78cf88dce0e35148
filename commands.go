/*
 *  commands.go
 *  hgtbench
 *
 *  Created by Haibao Tang on 10/18/26
 *  Copyright © 2026 Haibao Tang. All rights reserved.
 */

package hgtbench

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the hgtbench command line
func NewRootCommand(cfg *Config) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:           "hgtbench",
		Short:         "Benchmark horizontal gene transfer detection tools",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := cfg.LogLevel
			if verbose {
				level = logging.DEBUG
			}
			SetLogLevel(level)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug messages")
	rootCmd.AddCommand(
		newAccuracyCommand(),
		newParamsCommand(cfg),
		newParseCommand(),
		newReformatCommand(),
	)
	return rootCmd
}

// Execute runs the command line with the environment defaults
func Execute() error {
	return NewRootCommand(LoadConfig()).ExecuteContext(context.Background())
}

func methodUsage(usage string) string {
	return fmt.Sprintf("%s (%s)", usage, strings.Join(MethodNames(), ", "))
}

func newAccuracyCommand() *cobra.Command {
	r := &Assessor{}
	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Compute precision, recall and F-score of observed transfers",
		Long: `
Accuracy function:
Given the logfile.txt of an ALF simulation and the summary of transfers
detected by each tool, compute precision, recall and F-score of every tool
with at least one detected gene. One tab-separated line per tool is printed:
tool, precision, recall, F-score.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r.Out = cmd.OutOrStdout()
			return r.Run()
		},
	}
	cmd.Flags().StringVar(&r.GroundTruthFile, "ground-truth-fp", "", "logfile.txt from ALF simulations")
	cmd.Flags().StringVar(&r.ObservedFile, "observed-hgts-fp", "", "Summary of transfers detected by each tool")
	_ = cmd.MarkFlagRequired("ground-truth-fp")
	_ = cmd.MarkFlagRequired("observed-hgts-fp")
	return cmd
}

func newParamsCommand(cfg *Config) *cobra.Command {
	r := &Parameterizer{}
	cmd := &cobra.Command{
		Use:   "params root_genome.fasta tree.nwk workdir [output_name [lgt_rate [orth_rep [gc_amelioration]]]]",
		Short: "Create the parameter file for ALF genome simulations",
		Long: `
Params function:
Convert the root genome into a Darwin database with fasta2darwin, then write
the ALF parameter file into the working directory. Defaults are alf_params.txt,
LGT rate 0.003, 0.5 orthologous replacements and no GC content amelioration.
`,
		Args: cobra.RangeArgs(3, 7),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.RootGenome, r.CustomTree, r.WorkDir = args[0], args[1], args[2]
			r.OutputName = DefaultParamsFile
			r.LGTRate = DefaultLGTRate
			r.OrthRep = DefaultOrthRep
			r.GCAmelioration = DefaultGCAmelioration
			var err error
			if len(args) > 3 {
				r.OutputName = args[3]
			}
			if len(args) > 4 {
				if r.LGTRate, err = strconv.ParseFloat(args[4], 64); err != nil {
					return wrapf(ErrInvalidParameter, "LGT rate `%s`", args[4])
				}
			}
			if len(args) > 5 {
				if r.OrthRep, err = strconv.ParseFloat(args[5], 64); err != nil {
					return wrapf(ErrInvalidParameter, "orthologous replacement `%s`", args[5])
				}
			}
			if len(args) > 6 {
				r.GCAmelioration = args[6]
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&r.Fasta2Darwin, "fasta2darwin", cfg.Fasta2Darwin, "ALF FASTA to Darwin converter")
	return cmd
}

func newParseCommand() *cobra.Command {
	r := &OutputParser{}
	var method string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Extract the number of HGTs from the output of a tool",
		Long: `
Parse function:
Print the number of horizontal gene transfers reported in the output of
T-REX, RANGER-DTL, RIATA-HGT or Jane 4. NaN is printed when the output
carries no count.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if r.Method, err = ParseMethod(method); err != nil {
				return err
			}
			r.Out = cmd.OutOrStdout()
			return r.Run()
		},
	}
	cmd.Flags().StringVar(&r.ResultsFile, "hgt-results-fp", "", "Output file containing HGT information")
	cmd.Flags().StringVar(&method, "method", "", methodUsage("The method used for HGT detection"))
	_ = cmd.MarkFlagRequired("hgt-results-fp")
	_ = cmd.MarkFlagRequired("method")
	return cmd
}

func newReformatCommand() *cobra.Command {
	r := &Reformatter{}
	var method string
	cmd := &cobra.Command{
		Use:   "reformat",
		Short: "Reformat input trees and alignment for a tool",
		Long: `
Reformat function:
Species tree can be multifurcating. Leaf labels of species tree and gene
tree must match, however the label SPECIESNAME_GENENAME is acceptable for
multiple genes in the gene tree. Leaf labels must also be at most 10
characters long for PHYLIP.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if r.Method, err = ParseMethod(method); err != nil {
				return err
			}
			return r.Run()
		},
	}
	cmd.Flags().StringVar(&r.GeneTreeFile, "gene-tree-fp", "", "Gene tree in Newick format")
	cmd.Flags().StringVar(&r.SpeciesTreeFile, "species-tree-fp", "", "Species tree in Newick format")
	cmd.Flags().StringVar(&r.GeneMSAFile, "gene-msa-fa-fp", "", "MSA of genes in FASTA format")
	cmd.Flags().StringVar(&r.OutTreeFile, "output-tree-fp", "", "Output formatted species and gene tree")
	cmd.Flags().StringVar(&r.OutMSAFile, "output-msa-phy-fp", "", "Output MSA in PHYLIP format")
	cmd.Flags().StringVar(&method, "method", "", methodUsage("The method to be used for HGT detection"))
	_ = cmd.MarkFlagRequired("gene-tree-fp")
	_ = cmd.MarkFlagRequired("species-tree-fp")
	_ = cmd.MarkFlagRequired("method")
	return cmd
}
