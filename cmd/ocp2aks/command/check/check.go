// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package check implements the check subcommand, which validates a source
// tree of manifests before a conversion run.
package check

import (
	"os"

	"github.com/Azure/ocp2aks"
	"github.com/Azure/ocp2aks/internal/processor"
	"github.com/Azure/ocp2aks/internal/tools/checker"
	"github.com/Azure/ocp2aks/internal/tools/checks"
	"github.com/spf13/cobra"
)

// CheckCmd represents the check command.
var CheckCmd = cobra.Command{
	Use:   "check [flags] dir",
	Short: "Perform checks on a source tree of OpenShift manifests.",
	Long:  `Checks that the manifests in the source tree are suitable for conversion to AKS.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fsys, err := ocp2aks.NewSourceReference(args[0]).Fetch(cmd.Context(), "check")
		if err != nil {
			cmd.PrintErrf("%s could not fetch source: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		res := processor.NewResult()
		if err := processor.NewClient(fsys).Process(res); err != nil {
			cmd.PrintErrf("%s processing error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		for _, w := range res.Warnings {
			cmd.PrintErrf("warning: %s\n", w)
		}

		chk := checker.NewValidator(
			checks.CheckDocumentsHaveKindAndName(res),
			checks.CheckNamesAreValid(res),
			checks.CheckRouteHosts(res),
			checks.CheckNoDuplicateResources(res),
		).WithOutput(cmd.OutOrStdout())

		warnBuilds, err := cmd.Flags().GetBool("warn-buildconfigs")
		if err != nil {
			cmd.PrintErrf("%s could not get warn-buildconfigs flag: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if warnBuilds {
			chk = chk.AddChecks(checks.CheckBuildConfigsAbsent(res))
		}

		if err := chk.Validate(); err != nil {
			cmd.PrintErrf("%s check error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
	},
}

func init() {
	CheckCmd.Flags().
		BoolP("warn-buildconfigs", "b", false,
			"Fail the check when BuildConfigs are present in the source tree.")
}
