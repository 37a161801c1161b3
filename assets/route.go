// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

// RouteKind is the kind string of the OpenShift Route resource.
const RouteKind = "Route"

// Route models the OpenShift route.openshift.io/v1 Route resource, typed only
// as far as the conversion to an Ingress requires.
type Route struct {
	TypeMeta `yaml:",inline"`
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec     RouteSpec `json:"spec,omitempty"     yaml:"spec,omitempty"`
}

// RouteSpec is the spec of a Route.
type RouteSpec struct {
	Host  string                `json:"host,omitempty" yaml:"host,omitempty"`
	To    *RouteTargetReference `json:"to,omitempty"   yaml:"to,omitempty"`
	Port  *RoutePort            `json:"port,omitempty" yaml:"port,omitempty"`
	TLS   map[string]any        `json:"tls,omitempty"  yaml:"tls,omitempty"`
	Extra map[string]any        `json:"-"              yaml:",inline"`
}

// RouteTargetReference is the backend service reference of a Route.
type RouteTargetReference struct {
	Kind  string         `json:"kind,omitempty"   yaml:"kind,omitempty"`
	Name  string         `json:"name,omitempty"   yaml:"name,omitempty"`
	Extra map[string]any `json:"-"                yaml:",inline"`
}

// RoutePort is the target port of a Route. TargetPort may be a service port
// name or an integer port number.
type RoutePort struct {
	TargetPort any `json:"targetPort,omitempty" yaml:"targetPort,omitempty"`
}

// Name returns the metadata name, or an empty string if metadata is absent.
func (r *Route) Name() string {
	if r == nil || r.Metadata == nil {
		return ""
	}
	return r.Metadata.Name
}

// HasTLS returns true if the route carries a TLS configuration.
func (r *Route) HasTLS() bool {
	return r != nil && len(r.Spec.TLS) > 0
}
