// Command cnfid assigns identifiers to DIMACS CNF files: the byte-exact
// GBD-Hash, the isomorphism-invariant ISO-Hash2, the legacy ISO-Hash,
// and the canonical normalised / sanitised renderings they are
// computed from.
//
// Exit status is 0 on success and 1 on malformed input or a tripped
// time or output-size limit; a memory overrun ends the process through
// the Go runtime's out-of-memory failure instead. The fingerprint goes
// to stdout followed by a newline; diagnostics go to stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/cnfid/gbdhash"
	"github.com/katalvlaran/cnfid/isohash"
	"github.com/katalvlaran/cnfid/rlimit"
)

// partialOutput is the path of a not-yet-complete output file, removed
// when a resource limit kills the run.
var partialOutput string

func main() {
	limits := rlimit.Limits{}
	output := "-"
	maxIters := 6

	root := &cobra.Command{
		Use:           "cnfid",
		Short:         "identify and canonicalise DIMACS CNF instances",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !limits.Enabled() {
				return nil
			}
			if err := limits.Apply(); err != nil {
				return err
			}
			watchLimitSignals()

			return nil
		},
	}
	addLimitFlags(root.PersistentFlags(), &limits)

	id := &cobra.Command{
		Use:   "id <file>",
		Short: "print the GBD-Hash (MD5 of the normalised text)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("running id on %s", args[0])
			hash, err := gbdhash.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)

			return nil
		},
	}

	isohashV1 := &cobra.Command{
		Use:   "isohash <file>",
		Short: "print the legacy degree-sequence ISO-Hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("running isohash on %s", args[0])
			hash, err := isohash.Legacy(args[0])
			if err != nil {
				return err
			}
			fmt.Println(hash)

			return nil
		},
	}

	isohash2 := &cobra.Command{
		Use:   "isohash2 <file>",
		Short: "print the Weisfeiler-Leman ISO-Hash2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("running isohash2 on %s", args[0])
			opts := isohash.DefaultOptions()
			opts.MaxIterations = maxIters
			res, err := isohash.Hash(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Println(res.Hash)

			return nil
		},
	}
	isohash2.Flags().IntVar(&maxIters, "max-iters", 6, "maximum refinement iterations before stopping")

	normalize := &cobra.Command{
		Use:   "normalize <file>",
		Short: "emit the canonical (whitespace/header normalised) CNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("normalizing %s", args[0])

			return writeTransformed(args[0], output, gbdhash.Normalise)
		},
	}
	normalize.Flags().StringVarP(&output, "output", "o", "-", "output file (default stdout)")

	sanitize := &cobra.Command{
		Use:   "sanitize <file>",
		Short: "emit the sanitised CNF (sorted clauses, no duplicates or tautologies)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Infof("sanitizing %s", args[0])

			return writeTransformed(args[0], output, gbdhash.Sanitise)
		},
	}
	sanitize.Flags().StringVarP(&output, "output", "o", "-", "output file (default stdout)")

	checksani := &cobra.Command{
		Use:   "checksani <file>",
		Short: "report the sanitation status of a CNF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := gbdhash.Check(args[0])
			if err != nil {
				return err
			}
			hash, err := gbdhash.Hash(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("hash %s\n", hash)
			fmt.Printf("filename %s\n", args[0])
			printFlag("header_consistent", report.HeaderConsistent)
			printFlag("whitespace_normalised", report.WhitespaceNormalised)
			printFlag("no_comment", report.NoComments)
			printFlag("no_tautological_clause", report.NoTautologies)
			printFlag("no_duplicate_literals", report.NoDuplicateLiterals)
			printFlag("no_empty_clause", report.NoEmptyClauses)

			return nil
		},
	}

	root.AddCommand(id, isohashV1, isohash2, normalize, sanitize, checksani)

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// addLimitFlags registers the resource-limit flags shared by every
// subcommand.
func addLimitFlags(flags *pflag.FlagSet, limits *rlimit.Limits) {
	flags.IntVarP(&limits.WallSeconds, "timeout", "t", 0, "time limit in seconds (0 = none)")
	flags.IntVarP(&limits.MemoryMB, "memout", "m", 0, "memory limit in megabytes (0 = none)")
	flags.IntVarP(&limits.FileSizeMB, "fileout", "f", 0, "output size limit in megabytes (0 = none)")
}

// writeTransformed streams transform(input) to stdout or to the -o
// target. A partially written target is removed on failure.
func writeTransformed(input, output string, transform func(string, io.Writer) error) error {
	if output == "-" {
		return transform(input, os.Stdout)
	}

	file, err := os.Create(output)
	if err != nil {
		return err
	}
	partialOutput = output
	if err = transform(input, file); err != nil {
		file.Close()
		os.Remove(output)

		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(output)

		return err
	}
	partialOutput = ""

	return nil
}

// watchLimitSignals turns kernel limit signals into the fixed
// diagnostics and a non-zero exit, removing any partial output first.
func watchLimitSignals() {
	sigs := rlimit.Signals()
	if len(sigs) == 0 {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	go func() {
		sig := <-ch
		if kind, ok := rlimit.Classify(sig); ok {
			fmt.Fprintln(os.Stderr, kind.Message())
		}
		if partialOutput != "" {
			os.Remove(partialOutput)
		}
		os.Exit(1)
	}()
}

func printFlag(name string, value bool) {
	answer := "no"
	if value {
		answer = "yes"
	}
	fmt.Printf("%s %s\n", name, answer)
}
