// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package convert implements the per-resource transformations from OpenShift
// resources to their AKS-native equivalents: DeploymentConfig to apps/v1
// Deployment, Route to networking.k8s.io/v1 Ingress, and the passthrough
// scrub applied to everything else.
//
// All functions deep copy their inputs so that output documents never alias
// the source documents.
package convert
