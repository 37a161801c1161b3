// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ocp2aks converts OpenShift manifests to AKS-native Kubernetes
// manifests. DeploymentConfigs become apps/v1 Deployments, Routes become
// networking.k8s.io/v1 Ingresses, BuildConfigs are skipped with an actionable
// note (builds move to CI/CD) and every other resource is passed through with
// openshift.io/ annotations scrubbed.
//
// The package exposes a Converter that processes one or more source file
// systems, writes the converted manifests and renders a Markdown
// transformation report. The cmd/ocp2aks CLI wraps this API.
package ocp2aks
