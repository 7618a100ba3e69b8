package main

import (
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/bintree/Trees/bst"
)

func newFreqCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "freq FILE",
		Short: "Count the words of a text file by length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := bst.BuildFrequencyFile(args[0])
			if err != nil {
				return err
			}

			buckets := bst.Frequencies(root)

			var words uint64
			t := newTable(cmd.OutOrStdout(), a.cfg.Output, table.Row{"Length", "Words"})

			for _, b := range buckets {
				t.AppendRow(table.Row{b.Length, humanize.Comma(int64(b.Count))})
				words += uint64(b.Count)
			}

			t.AppendFooter(table.Row{"total", humanize.Comma(int64(words))})
			t.Render()

			a.log.Info("counted words", "file", args[0], "words", words, "lengths", len(buckets))

			return nil
		},
	}
}
