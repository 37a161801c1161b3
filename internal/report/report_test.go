// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join(".", DefaultFilename), PathFor("./output"))
	assert.Equal(t, filepath.Join("work", DefaultFilename), PathFor("work/output"))
	assert.Equal(t, filepath.Join("/tmp/run", DefaultFilename), PathFor("/tmp/run/output/"))
}

func TestRender(t *testing.T) {
	t.Parallel()
	d := &Data{
		RunID:         "0b2b7f4e",
		SourceDir:     "openshift",
		OutputDir:     "./output",
		IngressClass:  "nginx",
		TLSSecret:     "wildcard-tls",
		ImageRegistry: "myacr.azurecr.io",
		RepoPrefix:    "shop",
		Summary: Summary{
			DeploymentConfigsConverted: 2,
			RoutesConverted:            1,
			BuildConfigsSkipped:        1,
			OtherPassedThrough:         3,
			TotalConverted:             3,
		},
		Warnings: []string{"BuildConfig 'myapp-build' skipped: move builds to CI (e.g., GitHub Actions) and push images to myacr.azurecr.io."},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	got := buf.String()

	assert.Contains(t, got, "# OpenShift → AKS Transformation Report")
	assert.Contains(t, got, "- Run ID: `0b2b7f4e`")
	assert.Contains(t, got, "- Source dir: `openshift`")
	assert.Contains(t, got, "- Output dir: `./output`")
	assert.Contains(t, got, "- Ingress class: `nginx`")
	assert.Contains(t, got, "- TLS secret: `wildcard-tls`")
	assert.Contains(t, got, "- Image registry override: `myacr.azurecr.io`")
	assert.Contains(t, got, "- Repo prefix: `shop`")
	assert.Contains(t, got, "## Summary")
	assert.Contains(t, got, "- DeploymentConfigs converted: **2**")
	assert.Contains(t, got, "- Routes converted: **1**")
	assert.Contains(t, got, "- BuildConfigs skipped (see notes): **1**")
	assert.Contains(t, got, "- Other resources passed through: **3**")
	assert.Contains(t, got, "- Total converted: **3**")
	assert.Contains(t, got, "## Warnings / Notes")
	assert.Contains(t, got, "- BuildConfig 'myapp-build' skipped")
}

func TestRenderOmitsOptionalSections(t *testing.T) {
	t.Parallel()
	d := &Data{
		SourceDir:    "openshift",
		OutputDir:    "./output",
		IngressClass: "nginx",
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, d))
	got := buf.String()

	assert.NotContains(t, got, "Run ID")
	assert.NotContains(t, got, "TLS secret")
	assert.NotContains(t, got, "Image registry override")
	assert.NotContains(t, got, "Repo prefix")
	assert.NotContains(t, got, "## Warnings / Notes")
	assert.Contains(t, got, "- Total converted: **0**")
}
