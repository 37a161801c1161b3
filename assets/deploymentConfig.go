// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package assets

// DeploymentConfigKind is the kind string of the OpenShift DeploymentConfig resource.
const DeploymentConfigKind = "DeploymentConfig"

// DeploymentConfig models the OpenShift apps.openshift.io/v1 DeploymentConfig
// resource, typed only as far as the conversion to a Deployment requires.
type DeploymentConfig struct {
	TypeMeta `yaml:",inline"`
	Metadata *Metadata            `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec     DeploymentConfigSpec `json:"spec,omitempty"     yaml:"spec,omitempty"`
}

// DeploymentConfigSpec is the spec of a DeploymentConfig.
// OpenShift-only fields (triggers, test, paused, selector) land in Extra and
// are dropped by the conversion.
type DeploymentConfigSpec struct {
	Replicas *int32                    `json:"replicas,omitempty" yaml:"replicas,omitempty"`
	Strategy *DeploymentConfigStrategy `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Template *PodTemplateSpec          `json:"template,omitempty" yaml:"template,omitempty"`
	Extra    map[string]any            `json:"-"                  yaml:",inline"`
}

// DeploymentConfigStrategy is the deployment strategy of a DeploymentConfig.
type DeploymentConfigStrategy struct {
	Type          string         `json:"type,omitempty"          yaml:"type,omitempty"`
	RollingParams *RollingParams `json:"rollingParams,omitempty" yaml:"rollingParams,omitempty"`
	Extra         map[string]any `json:"-"                       yaml:",inline"`
}

// RollingParams are the rolling update parameters of a DeploymentConfig
// strategy. MaxSurge and MaxUnavailable may be an integer or a percentage
// string, so they are left untyped.
type RollingParams struct {
	MaxSurge       any            `json:"maxSurge,omitempty"       yaml:"maxSurge,omitempty"`
	MaxUnavailable any            `json:"maxUnavailable,omitempty" yaml:"maxUnavailable,omitempty"`
	Extra          map[string]any `json:"-"                        yaml:",inline"`
}

// PodTemplateSpec is the pod template shared by DeploymentConfig and Deployment.
type PodTemplateSpec struct {
	Metadata *Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Spec     *PodSpec  `json:"spec,omitempty"     yaml:"spec,omitempty"`
}

// PodSpec is a pod spec with containers typed for image rewriting and the
// remainder retained in Extra.
type PodSpec struct {
	Containers []*Container   `json:"containers,omitempty" yaml:"containers,omitempty"`
	Extra      map[string]any `json:"-"                    yaml:",inline"`
}

// Container is a container with the fields touched by image mapping typed.
type Container struct {
	Name            string         `json:"name,omitempty"            yaml:"name,omitempty"`
	Image           string         `json:"image,omitempty"           yaml:"image,omitempty"`
	ImagePullPolicy string         `json:"imagePullPolicy,omitempty" yaml:"imagePullPolicy,omitempty"`
	Extra           map[string]any `json:"-"                         yaml:",inline"`
}

// Name returns the metadata name, or an empty string if metadata is absent.
func (dc *DeploymentConfig) Name() string {
	if dc == nil || dc.Metadata == nil {
		return ""
	}
	return dc.Metadata.Name
}
