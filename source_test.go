// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ocp2aks

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFetch(t *testing.T) {
	t.Parallel()
	src := NewLocalSource("./testdata/openshift")
	fsys, err := src.Fetch(context.Background(), "")
	require.NoError(t, err)

	_, err = fs.Stat(fsys, "myapp-route.yaml")
	assert.NoError(t, err)
	assert.Equal(t, "./testdata/openshift", src.String())
}

func TestLocalSourceFetchMissing(t *testing.T) {
	t.Parallel()
	src := NewLocalSource("./testdata/does-not-exist")
	_, err := src.Fetch(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not fetch source")
}

func TestLocalSourceFetchNotADirectory(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "file.yaml")
	require.NoError(t, os.WriteFile(file, []byte("kind: Service\n"), 0o644))

	src := NewLocalSource(file)
	_, err := src.Fetch(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestNewSourceReference(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &LocalSource{}, NewSourceReference("./testdata/openshift"))
	assert.IsType(t, &RemoteSource{}, NewSourceReference("git::https://example.com/org/manifests.git"))
	assert.IsType(t, &RemoteSource{}, NewSourceReference("./testdata/does-not-exist"))
}

func TestRemoteSourceString(t *testing.T) {
	t.Parallel()
	src := NewRemoteSource("git::https://example.com/org/manifests.git")
	assert.Equal(t, "git::https://example.com/org/manifests.git", src.String())
}
