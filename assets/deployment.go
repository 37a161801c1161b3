// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

// DeploymentKind is the kind string of the Kubernetes Deployment resource.
const DeploymentKind = "Deployment"

// deploymentAPIVersion is the apiVersion emitted for converted Deployments.
const deploymentAPIVersion = "apps/v1"

// Deployment models the Kubernetes apps/v1 Deployment resource produced by
// converting a DeploymentConfig.
type Deployment struct {
	TypeMeta `yaml:",inline"`
	Metadata *Metadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec     DeploymentSpec `json:"spec"               yaml:"spec"`
}

// NewDeployment returns a Deployment with the type meta set.
func NewDeployment() *Deployment {
	return &Deployment{
		TypeMeta: TypeMeta{
			APIVersion: deploymentAPIVersion,
			Kind:       DeploymentKind,
		},
	}
}

// DeploymentSpec is the spec of a Deployment.
type DeploymentSpec struct {
	Replicas *int32              `json:"replicas,omitempty" yaml:"replicas,omitempty"`
	Selector *LabelSelector      `json:"selector,omitempty" yaml:"selector,omitempty"`
	Template *PodTemplateSpec    `json:"template,omitempty" yaml:"template,omitempty"`
	Strategy *DeploymentStrategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// LabelSelector is a label-equality selector.
type LabelSelector struct {
	MatchLabels map[string]string `json:"matchLabels,omitempty" yaml:"matchLabels,omitempty"`
}

// DeploymentStrategy is the rollout strategy of a Deployment.
type DeploymentStrategy struct {
	Type          string                   `json:"type,omitempty"          yaml:"type,omitempty"`
	RollingUpdate *RollingUpdateDeployment `json:"rollingUpdate,omitempty" yaml:"rollingUpdate,omitempty"`
}

// RollingUpdateDeployment carries the rolling update bounds. The values may be
// an integer or a percentage string, matching the Kubernetes IntOrString type.
type RollingUpdateDeployment struct {
	MaxSurge       any `json:"maxSurge,omitempty"       yaml:"maxSurge,omitempty"`
	MaxUnavailable any `json:"maxUnavailable,omitempty" yaml:"maxUnavailable,omitempty"`
}
