// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ocp2aks

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ocp2aks/assets"
)

func testConverter(t *testing.T) *Converter {
	t.Helper()
	opts := &ConverterOptions{
		SourceDir:     "testdata/openshift",
		OutputDir:     filepath.Join(t.TempDir(), "output"),
		DefaultDomain: "apps.example.com",
		IngressClass:  "nginx",
		ImageRegistry: "myacr.azurecr.io",
		Parallelism:   defaultParallelism,
	}
	c := NewConverter(opts)
	c.SetLogger(&log.Logger{Writer: log.IOWriter{Writer: io.Discard}})
	return c
}

func TestConvertCounts(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))

	s := c.Summary()
	assert.Equal(t, 1, s.DeploymentConfigsConverted)
	assert.Equal(t, 1, s.RoutesConverted)
	assert.Equal(t, 1, s.BuildConfigsSkipped)
	assert.Equal(t, 3, s.OtherPassedThrough)
	assert.Equal(t, 2, s.TotalConverted)

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "BuildConfig 'myapp-build' skipped")
}

func TestConvertOutputsInWalkOrder(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))

	outs := c.Outputs()
	// The buildconfig file produces no output, its only document is skipped.
	require.Len(t, outs, 4)
	assert.Equal(t, "backend/multi.yaml", outs[0].SourcePath)
	assert.Equal(t, "multi.yaml", outs[0].Name)
	assert.Equal(t, "myapp-deploymentconfig.yaml", outs[1].SourcePath)
	assert.Equal(t, "deployment.yaml", outs[1].Name)
	assert.Equal(t, "myapp-route.yaml", outs[2].SourcePath)
	assert.Equal(t, "ingress.yaml", outs[2].Name)
	assert.Equal(t, "service.yaml", outs[3].SourcePath)
	assert.Equal(t, "service.yaml", outs[3].Name)

	require.Len(t, outs[1].Documents, 1)
	d, ok := outs[1].Documents[0].(*assets.Deployment)
	require.True(t, ok)
	assert.Equal(t, "myapp", d.Metadata.Name)
	require.Len(t, d.Spec.Template.Spec.Containers, 1)
	assert.Equal(t, "myacr.azurecr.io/web:latest", d.Spec.Template.Spec.Containers[0].Image)
}

func TestConvertInvalidOptions(t *testing.T) {
	t.Parallel()
	c := NewConverter(&ConverterOptions{Parallelism: 1})
	err := c.Convert(context.Background(), os.DirFS("./testdata/openshift"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid converter options")

	c = NewConverter(&ConverterOptions{})
	err = c.Convert(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallelism is 0")
}

func TestWriteOutputs(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))

	dir := t.TempDir()
	require.NoError(t, c.WriteOutputs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "deployment.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Deployment")
	assert.Contains(t, string(data), "apiVersion: apps/v1")
	assert.Contains(t, string(data), "image: myacr.azurecr.io/web:latest")
	assert.NotContains(t, string(data), "openshift.io/")

	data, err = os.ReadFile(filepath.Join(dir, "ingress.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: Ingress")
	assert.Contains(t, string(data), "host: shop.example.com")
	assert.Contains(t, string(data), "secretName: myapp-tls")

	// Source subdirectories are preserved.
	data, err = os.ReadFile(filepath.Join(dir, "backend", "multi.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: ConfigMap")
	assert.Contains(t, string(data), "---")
	assert.Contains(t, string(data), "backend-svc")
}

func TestWriteOutputsOverwriteGuard(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))

	dir := t.TempDir()
	require.NoError(t, c.WriteOutputs(dir))

	err := c.WriteOutputs(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists and overwrite not set")

	c.Options.Overwrite = true
	assert.NoError(t, c.WriteOutputs(dir))
}

func TestReport(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))

	var buf bytes.Buffer
	require.NoError(t, c.Report(&buf))
	got := buf.String()

	assert.Contains(t, got, "# OpenShift → AKS Transformation Report")
	assert.Contains(t, got, c.RunID())
	assert.Contains(t, got, "- DeploymentConfigs converted: **1**")
	assert.Contains(t, got, "- Routes converted: **1**")
	assert.Contains(t, got, "- BuildConfigs skipped (see notes): **1**")
	assert.Contains(t, got, "- Other resources passed through: **3**")
	assert.Contains(t, got, "- Total converted: **2**")
	assert.Contains(t, got, "Passed through kinds: ConfigMap, Service")
}

func TestWriteReport(t *testing.T) {
	t.Parallel()
	c := testConverter(t)
	require.NoError(t, c.Convert(context.Background(), os.DirFS("./testdata/openshift")))
	require.NoError(t, c.WriteReport())

	// The report lands next to the output directory, not inside it.
	path := filepath.Join(filepath.Dir(c.Options.OutputDir), "transform-report.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Summary")
}

func TestMapOutputFilename(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
		docs []any
		want string
	}{
		{"deployment doc", "app.yaml", []any{assets.NewDeployment()}, "deployment.yaml"},
		{"ingress doc", "app.yaml", []any{assets.NewIngress()}, "ingress.yaml"},
		{"deployment wins over ingress", "app.yaml", []any{assets.NewDeployment(), assets.NewIngress()}, "deployment.yaml"},
		{"deploymentconfig filename", "myapp-deploymentconfig.json", []any{&assets.Manifest{}}, "deployment.yaml"},
		{"route filename", "myapp-route.yml", []any{&assets.Manifest{}}, "ingress.yaml"},
		{"passthrough keeps name", "svc.json", []any{&assets.Manifest{}}, "svc.yaml"},
		{"nested path uses base", "a/b/configmap.yml", []any{&assets.Manifest{}}, "configmap.yaml"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mapOutputFilename(tt.path, tt.docs))
		})
	}
}
