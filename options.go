// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ocp2aks

import (
	"fmt"

	"github.com/Azure/ocp2aks/convert"
	"github.com/Azure/ocp2aks/internal/environment"
	"github.com/go-playground/validator/v10"
)

const (
	// defaultParallelism is the default number of source files converted concurrently.
	defaultParallelism = 10
)

// ConverterOptions are options for the Converter.
// Use NewConverterOptions to get a set populated with the defaults and
// environment overrides, then adjust as needed.
type ConverterOptions struct {
	// SourceDir is the directory containing OpenShift YAML. Recorded in the
	// report; the actual inputs are the fs.FS values passed to Convert.
	SourceDir string `validate:"required"`

	// OutputDir is the output directory for AKS-native manifests.
	OutputDir string `validate:"required"`

	// DefaultDomain is the domain for Routes that do not specify a host.
	DefaultDomain string `validate:"required,hostname_rfc1123"`

	// IngressClass is the ingress class for converted Ingresses.
	IngressClass string `validate:"required"`

	// TLSSecret is the TLS secret name to use in Ingresses (optional).
	TLSSecret string

	// ImageRegistry is the registry override for container images (optional).
	ImageRegistry string

	// RepoPrefix is the repository prefix in the target registry (optional).
	RepoPrefix string

	// Parallelism is the number of source files converted concurrently.
	Parallelism int `validate:"gte=1"`

	// Overwrite allows overwriting existing files in the output directory.
	Overwrite bool
}

// NewConverterOptions returns options populated from the environment, with
// the documented defaults where no environment override is set.
func NewConverterOptions() *ConverterOptions {
	return &ConverterOptions{
		SourceDir:     environment.SourceDir(),
		OutputDir:     environment.OutputDir(),
		DefaultDomain: environment.DefaultDomain(),
		IngressClass:  environment.IngressClass(),
		TLSSecret:     environment.TLSSecret(),
		ImageRegistry: environment.ImageRegistry(),
		RepoPrefix:    environment.RepoPrefix(),
		Parallelism:   defaultParallelism,
	}
}

// Validate checks the options. It is called by Converter.Convert so explicit
// calls are only needed when failing early is preferred.
func (o *ConverterOptions) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("ocp2aks: invalid converter options: %w", err)
	}
	return nil
}

// convertOptions maps the converter options onto the per-resource conversion
// parameters.
func (o *ConverterOptions) convertOptions() convert.Options {
	return convert.Options{
		DefaultDomain: o.DefaultDomain,
		IngressClass:  o.IngressClass,
		TLSSecret:     o.TLSSecret,
		ImageRegistry: o.ImageRegistry,
		RepoPrefix:    o.RepoPrefix,
	}
}
