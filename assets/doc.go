// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package assets provides the types used by the ocp2aks library.
// It models the OpenShift resources that are converted (DeploymentConfig,
// Route) and the Kubernetes resources that are produced (Deployment, Ingress),
// together with a generic Manifest type for resources that are passed through
// unchanged.
//
// The types are deliberately partial: only the fields that the conversion
// touches are typed, everything else is carried in inline maps so that no
// information is lost between source and output documents.
package assets
