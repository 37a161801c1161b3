// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package environment contains the types and methods for fetching configuration from the local environment.
package environment

import "os"

const (
	sourceDirDefault    = "openshift"         // sourceDirDefault is the default directory containing OpenShift YAML.
	sourceDirEnv        = "SRC_DIR"           // sourceDirEnv is the environment variable to override the source directory.
	outputDirDefault    = "./output"          // outputDirDefault is the default output directory for AKS-native manifests.
	outputDirEnv        = "OUT_DIR"           // outputDirEnv is the environment variable to override the output directory.
	defaultDomainValue  = "apps.example.com"  // defaultDomainValue is the default domain for Routes without a host.
	defaultDomainEnv    = "DEFAULT_DOMAIN"    // defaultDomainEnv is the environment variable to override the default domain.
	ingressClassDefault = "nginx"             // ingressClassDefault is the default ingress class.
	ingressClassEnv     = "INGRESS_CLASS"     // ingressClassEnv is the environment variable to override the ingress class.
	tlsSecretEnv        = "TLS_SECRET"        // tlsSecretEnv is the environment variable for the optional Ingress TLS secret name.
	imageRegistryEnv    = "IMAGE_REGISTRY"    // imageRegistryEnv is the environment variable for the registry override.
	registryFallbackEnv = "REGISTRY_FALLBACK" // registryFallbackEnv is the fallback for imageRegistryEnv.
	repoPrefixEnv       = "REPO_PREFIX"       // repoPrefixEnv is the environment variable for the optional repository prefix.
	baseDirDefault      = ".ocp2aks"          // baseDirDefault is the default base directory for fetching remote sources.
	baseDirEnv          = "OCP2AKS_DIR"       // baseDirEnv is the environment variable to override the base directory.
)

// SourceDir contents of the `SRC_DIR` environment variable, or the default which is `openshift`.
func SourceDir() string {
	return getenv(sourceDirEnv, sourceDirDefault)
}

// OutputDir contents of the `OUT_DIR` environment variable, or the default which is `./output`.
func OutputDir() string {
	return getenv(outputDirEnv, outputDirDefault)
}

// DefaultDomain contents of the `DEFAULT_DOMAIN` environment variable, or the default which is `apps.example.com`.
func DefaultDomain() string {
	return getenv(defaultDomainEnv, defaultDomainValue)
}

// IngressClass contents of the `INGRESS_CLASS` environment variable, or the default which is `nginx`.
func IngressClass() string {
	return getenv(ingressClassEnv, ingressClassDefault)
}

// TLSSecret contents of the `TLS_SECRET` environment variable, empty when unset.
func TLSSecret() string {
	return os.Getenv(tlsSecretEnv)
}

// ImageRegistry contents of the `IMAGE_REGISTRY` environment variable, falling
// back to `REGISTRY_FALLBACK`, empty when both are unset.
func ImageRegistry() string {
	if v := os.Getenv(imageRegistryEnv); v != "" {
		return v
	}
	return os.Getenv(registryFallbackEnv)
}

// RepoPrefix contents of the `REPO_PREFIX` environment variable, empty when unset.
func RepoPrefix() string {
	return os.Getenv(repoPrefixEnv)
}

// BaseDir contents of the `OCP2AKS_DIR` environment variable, or the default which is `.ocp2aks`.
func BaseDir() string {
	return getenv(baseDirEnv, baseDirDefault)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
