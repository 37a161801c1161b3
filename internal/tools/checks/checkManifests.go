// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package checks contains the manifest checks run by the check command before
// a conversion.
package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Azure/ocp2aks/assets"
	"github.com/Azure/ocp2aks/internal/processor"
	"github.com/Azure/ocp2aks/internal/tools/checker"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/net/idna"
)

// dns1123SubdomainMaxLength is the maximum length of a Kubernetes object name.
const dns1123SubdomainMaxLength = 253

var dns1123SubdomainRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`)

// CheckDocumentsHaveKindAndName checks that every classified document carries
// a metadata name. Documents without a kind are skipped by the processor and
// never reach this check.
func CheckDocumentsHaveKindAndName(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck("documents have kind and name", func() error {
		var errs error
		for _, f := range res.Files {
			for _, doc := range f.Documents {
				if doc.Name() == "" {
					errs = multierror.Append(errs,
						fmt.Errorf("%s: %s document has no metadata.name", f.Path, doc.Kind))
				}
			}
		}
		return errs
	})
}

// CheckNamesAreValid checks that every document name is a valid DNS-1123
// subdomain, which is what AKS will require of the converted resources.
func CheckNamesAreValid(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck("names are valid DNS-1123 subdomains", func() error {
		var errs error
		for _, f := range res.Files {
			for _, doc := range f.Documents {
				name := doc.Name()
				if name == "" {
					continue
				}
				if len(name) > dns1123SubdomainMaxLength || !dns1123SubdomainRegex.MatchString(name) {
					errs = multierror.Append(errs,
						fmt.Errorf("%s: %s name %q is not a valid DNS-1123 subdomain", f.Path, doc.Kind, name))
				}
			}
		}
		return errs
	})
}

// CheckRouteHosts checks that every Route host resolves through IDNA, so that
// the converted Ingress hosts are valid.
func CheckRouteHosts(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck("route hosts are valid", func() error {
		var errs error
		for _, f := range res.Files {
			for _, doc := range f.Documents {
				if doc.Route == nil || doc.Route.Spec.Host == "" {
					continue
				}
				if _, err := idna.Lookup.ToASCII(doc.Route.Spec.Host); err != nil {
					errs = multierror.Append(errs,
						fmt.Errorf("%s: route %q host %q is not a valid hostname: %w",
							f.Path, doc.Route.Name(), doc.Route.Spec.Host, err))
				}
			}
		}
		return errs
	})
}

// CheckNoDuplicateResources checks that no two documents share the same
// kind, namespace and name. Duplicates would silently overwrite each other
// once applied to a cluster.
func CheckNoDuplicateResources(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck("no duplicate resources", func() error {
		var errs error
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, f := range res.Files {
			for _, doc := range f.Documents {
				if doc.Name() == "" {
					continue
				}
				key := strings.Join([]string{doc.Kind, doc.Namespace(), doc.Name()}, "/")
				if !seen.Add(key) {
					errs = multierror.Append(errs,
						fmt.Errorf("%s: duplicate resource %s", f.Path, key))
				}
			}
		}
		return errs
	})
}

// CheckBuildConfigsAbsent reports BuildConfigs in the source tree, which the
// converter will skip. Listed here so that the check command surfaces them
// before a conversion run.
func CheckBuildConfigsAbsent(res *processor.Result) checker.ValidatorCheck {
	return checker.NewValidatorCheck("no buildconfigs present", func() error {
		var errs error
		for _, f := range res.Files {
			for _, doc := range f.Documents {
				if doc.Kind != assets.BuildConfigKind {
					continue
				}
				errs = multierror.Append(errs,
					fmt.Errorf("%s: BuildConfig %q will be skipped, move the build to CI/CD", f.Path, doc.Name()))
			}
		}
		return errs
	})
}
