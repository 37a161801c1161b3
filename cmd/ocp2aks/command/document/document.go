// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package document implements the document subcommand, which renders the
// transformation report for a source tree without writing any manifests.
package document

import (
	"os"

	"github.com/Azure/ocp2aks"
	"github.com/spf13/cobra"
)

// DocumentCmd represents the document command.
var DocumentCmd = cobra.Command{
	Use:   "document [flags] dir",
	Short: "Renders the transformation report for a source tree without writing manifests.",
	Long: `Performs a dry-run conversion of the source tree and writes the Markdown
transformation report to stdout. No manifests are written.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fsys, err := ocp2aks.NewSourceReference(args[0]).Fetch(cmd.Context(), "document")
		if err != nil {
			cmd.PrintErrf("%s could not fetch source: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		opts := ocp2aks.NewConverterOptions()
		opts.SourceDir = args[0]

		conv := ocp2aks.NewConverter(opts)
		if err := conv.Convert(cmd.Context(), fsys); err != nil {
			cmd.PrintErrf("%s conversion error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if err := conv.Report(cmd.OutOrStdout()); err != nil {
			cmd.PrintErrf("%s report error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}
