// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package command

import (
	"context"
	"os"

	"github.com/Azure/ocp2aks/cmd/ocp2aks/command/check"
	"github.com/Azure/ocp2aks/cmd/ocp2aks/command/convert"
	"github.com/Azure/ocp2aks/cmd/ocp2aks/command/document"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "ocp2aks",
	Version: version,
	Short:   "A cli tool for converting OpenShift manifests to AKS-native manifests",
	Long: `A cli tool for converting OpenShift manifests to AKS-native manifests.

This tool can:

- Convert DeploymentConfigs to Deployments and Routes to Ingresses, passing other resources through with OpenShift annotations scrubbed.
- Check a source tree of manifests before conversion.
- Render the transformation report for a source tree without writing manifests.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(&convert.ConvertCmd)
	rootCmd.AddCommand(&check.CheckCmd)
	rootCmd.AddCommand(&document.DocumentCmd)
}
