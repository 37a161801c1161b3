// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import (
	"fmt"

	"github.com/Azure/ocp2aks/assets"
)

// Passthrough returns a copy of a Kubernetes-native document with
// openshift.io/ annotations scrubbed. The document is otherwise unchanged.
func Passthrough(m *assets.Manifest) *assets.Manifest {
	out := m.Copy()
	if out.Metadata != nil {
		out.Metadata.ScrubAnnotations()
	}
	return out
}

// BuildConfigWarning is the actionable note recorded for a skipped
// BuildConfig: builds move to CI/CD and images are pushed to the target
// registry.
func BuildConfigWarning(m *assets.Manifest, imageRegistry string) string {
	name := m.Name()
	if name == "" {
		name = "unnamed"
	}
	registry := imageRegistry
	if registry == "" {
		registry = "ACR"
	}
	return fmt.Sprintf(
		"BuildConfig '%s' skipped: move builds to CI (e.g., GitHub Actions) and push images to %s.",
		name, registry,
	)
}
