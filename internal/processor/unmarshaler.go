// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package processor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type unmarshaler struct {
	d   []byte
	ext string
}

func newUnmarshaler(data []byte, ext string) unmarshaler {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return unmarshaler{
		d:   data,
		ext: strings.ToLower(ext),
	}
}

// documents splits the data into its YAML documents.
// JSON is a subset of YAML so .json files go through the same decoder and
// always yield a single document.
func (u unmarshaler) documents() ([]documentNode, error) {
	switch u.ext {
	case ".json", ".yaml", ".yml":
		return splitDocuments(u.d)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtension, u.ext)
}

func splitDocuments(data []byte) ([]documentNode, error) {
	nodes := make([]documentNode, 0, 1)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		node := new(yaml.Node)
		err := dec.Decode(node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, documentNode{n: node})
	}
	return nodes, nil
}

// documentNode wraps a parsed YAML document so that callers can decode it
// into more than one target type.
type documentNode struct {
	n *yaml.Node
}

func (d documentNode) isMapping() bool {
	if d.n == nil {
		return false
	}
	node := d.n
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return false
		}
		node = node.Content[0]
	}
	return node.Kind == yaml.MappingNode
}

func (d documentNode) decode(dst any) error {
	return d.n.Decode(dst)
}
