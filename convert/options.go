// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

// Options carries the conversion parameters shared by the per-resource
// transformations.
type Options struct {
	// DefaultDomain is appended to the route name when a Route does not
	// specify a host.
	DefaultDomain string

	// IngressClass is the ingress class written to converted Ingresses,
	// e.g. nginx or azure/application-gateway.
	IngressClass string

	// TLSSecret, when set, is the TLS secret name used in every converted
	// Ingress, overriding the per-route derived secret name.
	TLSSecret string

	// ImageRegistry is the registry override for container images,
	// e.g. myacr.azurecr.io. When it contains a tag it is treated as a
	// complete image reference.
	ImageRegistry string

	// RepoPrefix is an optional repository prefix in the target registry,
	// e.g. apps.
	RepoPrefix string
}
