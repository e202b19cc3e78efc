package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/reoring/maxslog/document"
	"github.com/reoring/maxslog/sink"
)

func newExportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert a log file to XML, JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := document.ParseFormat(format)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return document.EncodeAs(cmd.OutOrStdout(), doc, f)
			}
			var buf bytes.Buffer
			if err := document.EncodeAs(&buf, doc, f); err != nil {
				return err
			}
			return sink.WriteAtomic(output, buf.Bytes())
		},
	}
	cmd.Flags().StringVar(&format, "format", "xml", "output format (xml|json|yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
