package main

import (
	"errors"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	viewport   float64
	configAttr string
	stateAttr  string
	output     string
	watch      bool
	dump       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "elq FILE",
		Short: "elq annotates HTML elements with breakpoint states based on their own width",
		Long: `elq reads an HTML file, measures every element that carries a breakpoint
configuration attribute, resolves each width against the element's
breakpoint table and writes the winning state name into a state
attribute. Styling rules can then react to an element's own size rather
than the viewport's.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch {
				if flags.output == "" {
					return errors.New("--watch needs --output, annotating in a loop to stdout helps nobody")
				}
				return watchAndAnnotate(args[0], flags)
			}
			return annotateFile(args[0], flags)
		},
	}

	cmd.Flags().Float64Var(&flags.viewport, "viewport", 0,
		"viewport width in CSS pixels for the inline-style width cascade; 0 reads width attributes instead")
	cmd.Flags().StringVar(&flags.configAttr, "pts-attr", "data-eq-pts", "attribute holding breakpoint configurations")
	cmd.Flags().StringVar(&flags.stateAttr, "state-attr", "data-eq-state", "attribute receiving resolved states")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the annotated document here instead of stdout")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-annotate whenever FILE changes")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "dump the annotated element tree to stderr")

	return cmd
}
