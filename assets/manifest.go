// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

import (
	"strings"

	"github.com/brunoga/deep"
)

// OpenShiftAnnotationPrefix is the annotation prefix that is scrubbed from all
// output documents.
const OpenShiftAnnotationPrefix = "openshift.io/"

// BuildConfigKind is the kind string of the OpenShift BuildConfig resource.
// BuildConfigs are not converted, they are skipped with a warning.
const BuildConfigKind = "BuildConfig"

// TypeMeta describes the type of an individual document in a manifest file.
type TypeMeta struct {
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Kind       string `json:"kind,omitempty"       yaml:"kind,omitempty"`
}

// Metadata is the standard Kubernetes object metadata.
// Fields not needed by the conversion are retained in Extra.
type Metadata struct {
	Name        string            `json:"name,omitempty"        yaml:"name,omitempty"`
	Namespace   string            `json:"namespace,omitempty"   yaml:"namespace,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Extra       map[string]any    `json:"-"                     yaml:",inline"`
}

// ScrubAnnotations removes all openshift.io/ prefixed annotations.
// If the map scrubs to empty it is removed entirely.
func (m *Metadata) ScrubAnnotations() {
	if m == nil || m.Annotations == nil {
		return
	}
	for k := range m.Annotations {
		if strings.HasPrefix(k, OpenShiftAnnotationPrefix) {
			delete(m.Annotations, k)
		}
	}
	if len(m.Annotations) == 0 {
		m.Annotations = nil
	}
}

// Manifest is a generic Kubernetes document. It is used for resources that are
// passed through without conversion, with unknown fields retained in Extra.
type Manifest struct {
	TypeMeta `yaml:",inline"`
	Metadata *Metadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Extra    map[string]any `json:"-"                  yaml:",inline"`
}

// Name returns the metadata name, or an empty string if metadata is absent.
func (m *Manifest) Name() string {
	if m == nil || m.Metadata == nil {
		return ""
	}
	return m.Metadata.Name
}

// Namespace returns the metadata namespace, or an empty string if metadata is absent.
func (m *Manifest) Namespace() string {
	if m == nil || m.Metadata == nil {
		return ""
	}
	return m.Metadata.Namespace
}

// Copy returns a deep copy of the manifest so that output documents never
// alias source document maps.
func (m *Manifest) Copy() *Manifest {
	return deep.MustCopy(m)
}
