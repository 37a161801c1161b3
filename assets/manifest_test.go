// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestScrubAnnotations(t *testing.T) {
	t.Parallel()

	meta := &Metadata{
		Name: "web",
		Annotations: map[string]string{
			"openshift.io/generated-by":       "OpenShiftNewApp",
			"openshift.io/display-name":       "Web frontend",
			"kubernetes.io/change-cause":      "initial rollout",
			"app.kubernetes.io/managed-by":    "helm",
			"openshift.io/deployment.phase":   "Complete",
			"nginx.ingress.kubernetes.io/ssl": "true",
		},
	}
	meta.ScrubAnnotations()
	assert.Len(t, meta.Annotations, 3)
	assert.NotContains(t, meta.Annotations, "openshift.io/generated-by")
	assert.Contains(t, meta.Annotations, "kubernetes.io/change-cause")
}

func TestScrubAnnotationsRemovesEmptyMap(t *testing.T) {
	t.Parallel()

	meta := &Metadata{
		Annotations: map[string]string{
			"openshift.io/generated-by": "OpenShiftNewApp",
		},
	}
	meta.ScrubAnnotations()
	assert.Nil(t, meta.Annotations)
}

func TestScrubAnnotationsNilSafe(t *testing.T) {
	t.Parallel()

	var meta *Metadata
	meta.ScrubAnnotations()
	meta = &Metadata{}
	meta.ScrubAnnotations()
	assert.Nil(t, meta.Annotations)
}

func TestManifestCopyDoesNotAlias(t *testing.T) {
	t.Parallel()

	src := &Manifest{
		TypeMeta: TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		Metadata: &Metadata{
			Name:   "settings",
			Labels: map[string]string{"app": "web"},
		},
		Extra: map[string]any{"data": map[string]any{"key": "value"}},
	}
	cpy := src.Copy()
	cpy.Metadata.Labels["app"] = "changed"
	cpy.Extra["data"] = nil
	assert.Equal(t, "web", src.Metadata.Labels["app"])
	assert.NotNil(t, src.Extra["data"])
}

func TestManifestYAMLRoundTripRetainsUnknownFields(t *testing.T) {
	t.Parallel()

	in := []byte(`apiVersion: v1
kind: Service
metadata:
  name: web
  annotations:
    openshift.io/generated-by: OpenShiftNewApp
spec:
  ports:
    - port: 8080
  selector:
    app: web
`)
	m := new(Manifest)
	require.NoError(t, yaml.Unmarshal(in, m))
	assert.Equal(t, "Service", m.Kind)
	assert.Equal(t, "web", m.Name())
	require.Contains(t, m.Extra, "spec")

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), "port: 8080")
	assert.Contains(t, string(out), "selector:")
}

func TestRouteHasTLS(t *testing.T) {
	t.Parallel()

	r := &Route{}
	assert.False(t, r.HasTLS())
	r.Spec.TLS = map[string]any{"termination": "edge"}
	assert.True(t, r.HasTLS())
}
