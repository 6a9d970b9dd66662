// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// DeploymentStatus is the state of a deployment run.
type DeploymentStatus string

const (
	DeploymentSuccess    DeploymentStatus = "success"
	DeploymentInProgress DeploymentStatus = "in_progress"
	DeploymentFailed     DeploymentStatus = "failed"
	DeploymentCancelled  DeploymentStatus = "cancelled"
)

// Deployment is one build-and-release run of a project.
type Deployment struct {
	ID          string           `json:"id" yaml:"id"`
	Project     string           `json:"project" yaml:"project"`
	Version     string           `json:"version" yaml:"version"`
	Status      DeploymentStatus `json:"status" yaml:"status"`
	Environment string           `json:"environment" yaml:"environment"`
	Duration    string           `json:"duration" yaml:"duration"`
	Time        string           `json:"time" yaml:"time"`
	Author      string           `json:"author" yaml:"author"`
	Commit      string           `json:"commit" yaml:"commit"`

	// CommitHash is the full revision shown under the commit message.
	CommitHash string `json:"commit_hash,omitempty" yaml:"commit_hash,omitempty"`

	// Steps are the pipeline stages with their durations.
	Steps []BuildStep `json:"steps,omitempty" yaml:"steps,omitempty"`

	// Notes is optional markdown rendered at the bottom of the panel.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// BuildStep is one stage of a deployment pipeline.
type BuildStep struct {
	Name     string `json:"name" yaml:"name"`
	Duration string `json:"duration" yaml:"duration"`
}

// DefaultBuildSteps are shown for deployments that carry no steps of
// their own.
var DefaultBuildSteps = []BuildStep{
	{Name: "Clone repository", Duration: "12s"},
	{Name: "Install dependencies", Duration: "45s"},
	{Name: "Run tests", Duration: "1m 8s"},
	{Name: "Build application", Duration: "29s"},
}

func (deployment Deployment) EntityID() string     { return deployment.ID }
func (deployment Deployment) EntityStatus() string { return string(deployment.Status) }

// SearchText returns the fields the deployments search box matches.
func (deployment Deployment) SearchText() []string {
	return []string{deployment.Project, deployment.Version, deployment.Author, deployment.Commit}
}

// Title is the panel heading.
func (deployment Deployment) Title() string { return "Build #" + deployment.ID }

// BuildSteps returns the deployment's steps, or [DefaultBuildSteps].
func (deployment Deployment) BuildSteps() []BuildStep {
	if len(deployment.Steps) > 0 {
		return deployment.Steps
	}
	return DefaultBuildSteps
}

// Actions returns the panel buttons for the deployment's status.
// Successful runs can be rolled back, failed runs redeployed; runs in
// progress or cancelled offer nothing.
func (deployment Deployment) Actions() []Action {
	switch deployment.Status {
	case DeploymentSuccess:
		return []Action{ActionRollback, ActionViewLogs}
	case DeploymentFailed:
		return []Action{ActionRedeploy, ActionViewLogs}
	default:
		return nil
	}
}
