// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import (
	"errors"
	"fmt"

	"github.com/Azure/ocp2aks/assets"
	"github.com/brunoga/deep"
	"golang.org/x/net/idna"
)

const (
	// defaultIngressName is used when a Route has no metadata name.
	defaultIngressName = "web"

	// defaultBackendPort is the service port used when a Route does not
	// specify a target port.
	defaultBackendPort = int32(80)
)

// ErrNilRoute is returned when a nil Route is supplied.
var ErrNilRoute = errors.New("route must not be nil")

// Ingress converts an OpenShift Route to a Kubernetes networking.k8s.io/v1
// Ingress with a single host rule on path / (Prefix).
//
// A route without a host gets <name>.<DefaultDomain>. Hosts are normalized to
// ASCII via IDNA so that internationalized hostnames become valid Ingress
// hosts. TLS is taken from the TLSSecret option when set, otherwise a route
// that carried TLS gets a <name>-tls secret reference.
func Ingress(route *assets.Route, opts Options) (*assets.Ingress, error) {
	if route == nil {
		return nil, ErrNilRoute
	}

	name := route.Name()
	if name == "" {
		name = defaultIngressName
	}

	host := route.Spec.Host
	if host == "" {
		host = fmt.Sprintf("%s.%s", name, opts.DefaultDomain)
	}
	host = normalizeHost(host)

	svcName := name
	if route.Spec.To != nil && route.Spec.To.Name != "" {
		svcName = route.Spec.To.Name
	}

	ing := assets.NewIngress()
	ing.Metadata = &assets.Metadata{
		Name:   name,
		Labels: routeLabels(route.Metadata),
		Annotations: map[string]string{
			assets.IngressClassAnnotation: opts.IngressClass,
		},
	}
	ing.Spec = assets.IngressSpec{
		Rules: []assets.IngressRule{{
			Host: host,
			HTTP: &assets.HTTPIngressRuleValue{
				Paths: []assets.HTTPIngressPath{{
					Path:     "/",
					PathType: "Prefix",
					Backend: assets.IngressBackend{
						Service: &assets.IngressServiceBackend{
							Name: svcName,
							Port: backendPort(route.Spec.Port),
						},
					},
				}},
			},
		}},
	}

	switch {
	case opts.TLSSecret != "":
		ing.Spec.TLS = []assets.IngressTLS{{Hosts: []string{host}, SecretName: opts.TLSSecret}}
	case route.HasTLS():
		ing.Spec.TLS = []assets.IngressTLS{{Hosts: []string{host}, SecretName: name + "-tls"}}
	}

	return ing, nil
}

// routeLabels copies the route labels onto the ingress. An empty map is
// emitted when the route has none, matching the shape of reports produced by
// earlier versions of the tool.
func routeLabels(meta *assets.Metadata) map[string]string {
	if meta == nil || meta.Labels == nil {
		return map[string]string{}
	}
	return deep.MustCopy(meta.Labels)
}

// backendPort maps the route target port (string service port name or
// integer port number) to an ingress service backend port.
func backendPort(port *assets.RoutePort) assets.ServiceBackendPort {
	if port == nil || port.TargetPort == nil {
		return assets.ServiceBackendPort{Number: defaultBackendPort}
	}
	switch v := port.TargetPort.(type) {
	case string:
		return assets.ServiceBackendPort{Name: v}
	case int:
		return assets.ServiceBackendPort{Number: int32(v)}
	case int32:
		return assets.ServiceBackendPort{Number: v}
	case int64:
		return assets.ServiceBackendPort{Number: int32(v)}
	case uint64:
		return assets.ServiceBackendPort{Number: int32(v)}
	case float64:
		return assets.ServiceBackendPort{Number: int32(v)}
	}
	return assets.ServiceBackendPort{Number: defaultBackendPort}
}

// normalizeHost converts the host to its ASCII (punycode) form. Hosts that
// IDNA cannot process are kept unchanged, the check command reports them.
func normalizeHost(host string) string {
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}
