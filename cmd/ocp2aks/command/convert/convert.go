// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package convert implements the convert subcommand, the main entry point of
// the tool: fetch the source tree, convert it, write the manifests and the
// transformation report.
package convert

import (
	"os"

	"github.com/Azure/ocp2aks"
	"github.com/Azure/ocp2aks/internal/environment"
	"github.com/spf13/cobra"
)

var (
	convertCmdSrc           string
	convertCmdOut           string
	convertCmdDefaultDomain string
	convertCmdIngressClass  string
	convertCmdTLSSecret     string
	convertCmdImageRegistry string
	convertCmdRepoPrefix    string
	convertCmdParallelism   int
	convertCmdOverwrite     bool
)

// ConvertCmd represents the convert command.
var ConvertCmd = cobra.Command{
	Use:   "convert [flags] [sourceDir]",
	Short: "Converts OpenShift manifests from the source directory and writes AKS-native manifests to the output directory.",
	Long: `Converts OpenShift manifests from the source directory and writes AKS-native manifests to the output directory.

The source may be a local directory or any go-getter URL (git, http, s3, ...).
All flags also read from environment variables: SRC_DIR, OUT_DIR,
DEFAULT_DOMAIN, INGRESS_CLASS, TLS_SECRET, IMAGE_REGISTRY, REPO_PREFIX,
REGISTRY_FALLBACK.

A Markdown transformation report is written next to the output directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := convertCmdSrc
		if len(args) == 1 {
			src = args[0]
		}

		opts := ocp2aks.NewConverterOptions()
		opts.SourceDir = src
		opts.OutputDir = convertCmdOut
		opts.DefaultDomain = convertCmdDefaultDomain
		opts.IngressClass = convertCmdIngressClass
		opts.TLSSecret = convertCmdTLSSecret
		opts.ImageRegistry = convertCmdImageRegistry
		opts.RepoPrefix = convertCmdRepoPrefix
		opts.Parallelism = convertCmdParallelism
		opts.Overwrite = convertCmdOverwrite

		src = firstNonEmpty(src, environment.SourceDir())
		fsys, err := ocp2aks.NewSourceReference(src).Fetch(cmd.Context(), "src")
		if err != nil {
			cmd.PrintErrf("%s could not fetch source: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		conv := ocp2aks.NewConverter(opts)
		if err := conv.Convert(cmd.Context(), fsys); err != nil {
			cmd.PrintErrf("%s conversion error: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if err := conv.WriteOutputs(""); err != nil {
			cmd.PrintErrf("%s error writing outputs: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}
		if err := conv.WriteReport(); err != nil {
			cmd.PrintErrf("%s error writing report: %v\n", cmd.ErrPrefix(), err)
			os.Exit(1)
		}

		s := conv.Summary()
		cmd.Printf("DeploymentConfigs converted: %d\n", s.DeploymentConfigsConverted)
		cmd.Printf("Routes converted: %d\n", s.RoutesConverted)
		cmd.Printf("BuildConfigs skipped: %d\n", s.BuildConfigsSkipped)
		cmd.Printf("Other resources passed through: %d\n", s.OtherPassedThrough)
		cmd.Printf("Total converted: %d\n", s.TotalConverted)
	},
}

func init() {
	ConvertCmd.Flags().StringVar(&convertCmdSrc, "src", environment.SourceDir(),
		"Directory containing OpenShift YAML, or a go-getter URL")
	ConvertCmd.Flags().StringVar(&convertCmdOut, "out", environment.OutputDir(),
		"Output directory for AKS-native manifests")
	ConvertCmd.Flags().StringVar(&convertCmdDefaultDomain, "default-domain", environment.DefaultDomain(),
		"Default domain for Routes that do not specify a host")
	ConvertCmd.Flags().StringVar(&convertCmdIngressClass, "ingress-class", environment.IngressClass(),
		"Ingress class (e.g., nginx, azure/application-gateway)")
	ConvertCmd.Flags().StringVar(&convertCmdTLSSecret, "tls-secret", environment.TLSSecret(),
		"TLS secret name to use in Ingress (optional)")
	ConvertCmd.Flags().StringVar(&convertCmdImageRegistry, "image-registry", environment.ImageRegistry(),
		"Registry override for container images (e.g., myacr.azurecr.io)")
	ConvertCmd.Flags().StringVar(&convertCmdRepoPrefix, "repo-prefix", environment.RepoPrefix(),
		"Optional repository prefix in target registry (e.g., apps)")
	ConvertCmd.Flags().IntVar(&convertCmdParallelism, "parallelism", 10,
		"Number of source files converted concurrently")
	ConvertCmd.Flags().BoolVarP(&convertCmdOverwrite, "overwrite", "o", false,
		"Overwrite existing files in the output directory")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
