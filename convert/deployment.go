// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package convert

import (
	"errors"
	"strings"

	"github.com/Azure/ocp2aks/assets"
	"github.com/Azure/ocp2aks/to"
	"github.com/brunoga/deep"
)

const (
	// defaultDeploymentName is used when a DeploymentConfig has no metadata name.
	defaultDeploymentName = "app"

	// defaultRollingValue is the surge/unavailable bound used when the
	// DeploymentConfig strategy does not specify rolling params.
	defaultRollingValue = "25%"

	// defaultImagePullPolicy is applied to containers that do not set one.
	defaultImagePullPolicy = "IfNotPresent"
)

// ErrNilDeploymentConfig is returned when a nil DeploymentConfig is supplied.
var ErrNilDeploymentConfig = errors.New("deployment config must not be nil")

// Deployment converts an OpenShift DeploymentConfig to a Kubernetes apps/v1
// Deployment.
//
// Labels are taken from the pod template metadata, falling back to the
// resource metadata, falling back to {"app": <name>}. The same label set is
// used for the deployment metadata, the selector and the pod template, each
// as an independent copy. OpenShift-only spec fields (triggers, test, paused)
// are dropped and openshift.io/ annotations are scrubbed.
func Deployment(dc *assets.DeploymentConfig, opts Options) (*assets.Deployment, error) {
	if dc == nil {
		return nil, ErrNilDeploymentConfig
	}

	name := dc.Name()
	if name == "" {
		name = defaultDeploymentName
	}

	var tplMeta *assets.Metadata
	var tplSpec *assets.PodSpec
	if dc.Spec.Template != nil {
		tplMeta = dc.Spec.Template.Metadata
		tplSpec = dc.Spec.Template.Spec
	}

	labels := deploymentLabels(name, dc.Metadata, tplMeta)

	d := assets.NewDeployment()
	d.Metadata = &assets.Metadata{
		Name:        name,
		Labels:      deep.MustCopy(labels),
		Annotations: scrubbedAnnotations(dc.Metadata),
	}

	replicas := dc.Spec.Replicas
	if replicas == nil {
		replicas = to.Ptr(int32(1))
	}

	d.Spec = assets.DeploymentSpec{
		Replicas: deep.MustCopy(replicas),
		Selector: &assets.LabelSelector{MatchLabels: deep.MustCopy(labels)},
		Template: &assets.PodTemplateSpec{
			Metadata: &assets.Metadata{
				Labels:      deep.MustCopy(labels),
				Annotations: scrubbedAnnotations(tplMeta),
			},
			Spec: deep.MustCopy(tplSpec),
		},
		Strategy: deploymentStrategy(dc.Spec.Strategy),
	}

	if d.Spec.Template.Spec == nil {
		d.Spec.Template.Spec = &assets.PodSpec{}
	}
	for _, c := range d.Spec.Template.Spec.Containers {
		if c == nil {
			continue
		}
		hint := c.Name
		if hint == "" {
			hint = name
		}
		c.Image = Image(c.Image, hint, opts)
		if c.ImagePullPolicy == "" {
			c.ImagePullPolicy = defaultImagePullPolicy
		}
	}

	return d, nil
}

// deploymentLabels resolves the label set shared by metadata, selector and
// pod template.
func deploymentLabels(name string, meta, tplMeta *assets.Metadata) map[string]string {
	if tplMeta != nil && len(tplMeta.Labels) > 0 {
		return tplMeta.Labels
	}
	if meta != nil && len(meta.Labels) > 0 {
		return meta.Labels
	}
	return map[string]string{"app": name}
}

// deploymentStrategy maps the DeploymentConfig strategy onto a Deployment
// strategy. Anything that is not a Recreate strategy becomes a RollingUpdate.
func deploymentStrategy(st *assets.DeploymentConfigStrategy) *assets.DeploymentStrategy {
	stType := ""
	if st != nil {
		stType = st.Type
	}
	if strings.HasPrefix(strings.ToLower(stType), "recreate") {
		return &assets.DeploymentStrategy{Type: "Recreate"}
	}

	maxSurge := any(defaultRollingValue)
	maxUnavailable := any(defaultRollingValue)
	if st != nil && st.RollingParams != nil {
		if st.RollingParams.MaxSurge != nil {
			maxSurge = st.RollingParams.MaxSurge
		}
		if st.RollingParams.MaxUnavailable != nil {
			maxUnavailable = st.RollingParams.MaxUnavailable
		}
	}
	return &assets.DeploymentStrategy{
		Type: "RollingUpdate",
		RollingUpdate: &assets.RollingUpdateDeployment{
			MaxSurge:       maxSurge,
			MaxUnavailable: maxUnavailable,
		},
	}
}

// scrubbedAnnotations returns a copy of the metadata annotations with
// openshift.io/ keys removed, or nil when nothing remains.
func scrubbedAnnotations(meta *assets.Metadata) map[string]string {
	if meta == nil || len(meta.Annotations) == 0 {
		return nil
	}
	out := make(map[string]string, len(meta.Annotations))
	for k, v := range meta.Annotations {
		if strings.HasPrefix(k, assets.OpenShiftAnnotationPrefix) {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
