// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

// IngressKind is the kind string of the Kubernetes Ingress resource.
const IngressKind = "Ingress"

// ingressAPIVersion is the apiVersion emitted for converted Ingresses.
const ingressAPIVersion = "networking.k8s.io/v1"

// IngressClassAnnotation is the legacy annotation used to select the ingress
// controller. Kept as an annotation rather than spec.ingressClassName so that
// converted manifests work with controllers that still key off the annotation.
const IngressClassAnnotation = "kubernetes.io/ingress.class"

// Ingress models the Kubernetes networking.k8s.io/v1 Ingress resource
// produced by converting a Route.
type Ingress struct {
	TypeMeta `yaml:",inline"`
	Metadata *Metadata   `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec     IngressSpec `json:"spec"               yaml:"spec"`
}

// NewIngress returns an Ingress with the type meta set.
func NewIngress() *Ingress {
	return &Ingress{
		TypeMeta: TypeMeta{
			APIVersion: ingressAPIVersion,
			Kind:       IngressKind,
		},
	}
}

// IngressSpec is the spec of an Ingress.
type IngressSpec struct {
	Rules []IngressRule `json:"rules,omitempty" yaml:"rules,omitempty"`
	TLS   []IngressTLS  `json:"tls,omitempty"   yaml:"tls,omitempty"`
}

// IngressRule maps a host to HTTP paths.
type IngressRule struct {
	Host string                `json:"host,omitempty" yaml:"host,omitempty"`
	HTTP *HTTPIngressRuleValue `json:"http,omitempty" yaml:"http,omitempty"`
}

// HTTPIngressRuleValue is the list of HTTP paths for a rule.
type HTTPIngressRuleValue struct {
	Paths []HTTPIngressPath `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// HTTPIngressPath maps a path to a backend.
type HTTPIngressPath struct {
	Path     string         `json:"path,omitempty" yaml:"path,omitempty"`
	PathType string         `json:"pathType"       yaml:"pathType"`
	Backend  IngressBackend `json:"backend"        yaml:"backend"`
}

// IngressBackend is the backend of an ingress path.
type IngressBackend struct {
	Service *IngressServiceBackend `json:"service,omitempty" yaml:"service,omitempty"`
}

// IngressServiceBackend references a Service backend.
type IngressServiceBackend struct {
	Name string             `json:"name" yaml:"name"`
	Port ServiceBackendPort `json:"port" yaml:"port"`
}

// ServiceBackendPort is a service port selected by name or number.
// Exactly one of the fields is set.
type ServiceBackendPort struct {
	Name   string `json:"name,omitempty"   yaml:"name,omitempty"`
	Number int32  `json:"number,omitempty" yaml:"number,omitempty"`
}

// IngressTLS associates hosts with a TLS secret.
type IngressTLS struct {
	Hosts      []string `json:"hosts,omitempty"      yaml:"hosts,omitempty"`
	SecretName string   `json:"secretName,omitempty" yaml:"secretName,omitempty"`
}
