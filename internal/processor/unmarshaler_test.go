// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalerSplitsDocuments(t *testing.T) {
	t.Parallel()
	data := []byte(`kind: Service
metadata:
  name: one
---
kind: ConfigMap
metadata:
  name: two
`)
	u := newUnmarshaler(data, ".yaml")
	nodes, err := u.documents()
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.True(t, n.isMapping())
	}
}

func TestUnmarshalerJSON(t *testing.T) {
	t.Parallel()
	data := []byte(`{"kind": "Service", "metadata": {"name": "one"}}`)
	u := newUnmarshaler(data, ".json")
	nodes, err := u.documents()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.True(t, nodes[0].isMapping())

	var got struct {
		Kind string `yaml:"kind"`
	}
	require.NoError(t, nodes[0].decode(&got))
	assert.Equal(t, "Service", got.Kind)
}

func TestUnmarshalerExtensionWithoutDot(t *testing.T) {
	t.Parallel()
	u := newUnmarshaler([]byte("kind: Service"), "YML")
	nodes, err := u.documents()
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
}

func TestUnmarshalerUnsupportedExtension(t *testing.T) {
	t.Parallel()
	u := newUnmarshaler([]byte("whatever"), ".toml")
	_, err := u.documents()
	require.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestUnmarshalerInvalidYaml(t *testing.T) {
	t.Parallel()
	u := newUnmarshaler([]byte("kind: [unclosed"), ".yaml")
	_, err := u.documents()
	require.Error(t, err)
}

func TestDocumentNodeNonMapping(t *testing.T) {
	t.Parallel()
	u := newUnmarshaler([]byte("- one\n- two\n"), ".yaml")
	nodes, err := u.documents()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.False(t, nodes[0].isMapping())
}
