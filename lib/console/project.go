// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"errors"
	"regexp"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectBuilding ProjectStatus = "building"
	ProjectPaused   ProjectStatus = "paused"
)

// Environments a project can be created in.
var Environments = []string{"production", "staging", "development"}

// Regions a project can be created in.
var Regions = []string{"us-east-1", "us-west-2", "eu-west-1", "eu-central-1", "ap-southeast-1"}

var regionLabels = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-west-2":      "US West (Oregon)",
	"eu-west-1":      "EU West (Ireland)",
	"eu-central-1":   "EU Central (Frankfurt)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
}

// RegionLabel returns the display name of a region, or the region
// itself when it has none.
func RegionLabel(region string) string {
	if label, ok := regionLabels[region]; ok {
		return label
	}
	return region
}

// Project is a deployable service.
type Project struct {
	ID             string        `json:"id" yaml:"id"`
	Name           string        `json:"name" yaml:"name"`
	Status         ProjectStatus `json:"status" yaml:"status"`
	Environment    string        `json:"environment" yaml:"environment"`
	LastDeployment string        `json:"last_deployment" yaml:"last_deployment"`
	Version        string        `json:"version" yaml:"version"`
	Requests       string        `json:"requests" yaml:"requests"`
	Region         string        `json:"region,omitempty" yaml:"region,omitempty"`

	Performance ProjectPerformance `json:"performance" yaml:"performance"`
	Resources   ProjectResources   `json:"resources" yaml:"resources"`

	// RecentDeploys lists earlier releases, newest first. The current
	// version is shown above them.
	RecentDeploys []ReleaseRecord `json:"recent_deploys,omitempty" yaml:"recent_deploys,omitempty"`

	// Notes is optional markdown rendered at the bottom of the panel.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ProjectPerformance summarizes request traffic.
type ProjectPerformance struct {
	ResponseTime string `json:"response_time" yaml:"response_time"`
	ErrorRate    string `json:"error_rate" yaml:"error_rate"`
}

// ProjectResources summarizes compute usage.
type ProjectResources struct {
	CPU       string `json:"cpu" yaml:"cpu"`
	Memory    string `json:"memory" yaml:"memory"`
	Instances string `json:"instances" yaml:"instances"`
}

// ReleaseRecord is a past deploy of a project.
type ReleaseRecord struct {
	Version string `json:"version" yaml:"version"`
	When    string `json:"when" yaml:"when"`
}

func (project Project) EntityID() string     { return project.ID }
func (project Project) EntityStatus() string { return string(project.Status) }

// SearchText matches projects by name only.
func (project Project) SearchText() []string { return []string{project.Name} }

// Actions is the same for every project status.
func (project Project) Actions() []Action {
	return []Action{ActionDeploy, ActionSettings, ActionLogs}
}

// NewProjectRequest is what the New Project dialog submits.
type NewProjectRequest struct {
	Name        string `json:"name" yaml:"name"`
	Environment string `json:"environment" yaml:"environment"`
	Region      string `json:"region" yaml:"region"`
}

// DefaultNewProject is the dialog's initial state.
var DefaultNewProject = NewProjectRequest{Environment: "production", Region: "us-east-1"}

// ErrProjectName is returned by [NewProjectRequest.Validate] for an
// empty or malformed project name.
var ErrProjectName = errors.New("project name must use lowercase letters, numbers, and hyphens only")

var projectNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateProjectName checks a name typed into the New Project dialog.
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New("project name is required")
	}
	if !projectNamePattern.MatchString(name) {
		return ErrProjectName
	}
	return nil
}
