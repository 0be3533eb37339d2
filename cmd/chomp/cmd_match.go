package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	stdebnf "golang.org/x/exp/ebnf"

	"github.com/dhamidi/chomp"
	"github.com/dhamidi/chomp/ebnf"
)

func newMatchCmd() *cobra.Command {
	var grammarFile string
	var start string

	cmd := &cobra.Command{
		Use:           "match INPUT",
		Short:         "Match input against a production of an EBNF grammar",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("chomp.match")

			f, err := os.Open(grammarFile)
			if err != nil {
				return fmt.Errorf("open grammar: %w", err)
			}
			defer f.Close()

			grammar, err := stdebnf.Parse(grammarFile, f)
			if err != nil {
				return fmt.Errorf("parse grammar: %w", err)
			}

			parser, err := ebnf.Compile(grammar, start)
			if err != nil {
				return err
			}
			log.Debugf("compiled grammar %s, start production %q", grammarFile, start)

			rest, matched, err := parser([]byte(args[0]))
			if needed, ok := chomp.NeededBytes(err); ok {
				if needed.Known() {
					fmt.Printf("incomplete: need at least %d more bytes\n", needed)
				} else {
					fmt.Println("incomplete: need more input")
				}
				return nil
			}
			if err != nil {
				return fmt.Errorf("match input: %w", err)
			}

			fmt.Printf("matched %q (%d bytes remaining)\n", matched, len(rest))
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start production")
	cobra.CheckErr(cmd.MarkFlagRequired("grammar"))
	cobra.CheckErr(cmd.MarkFlagRequired("start"))

	return cmd
}
