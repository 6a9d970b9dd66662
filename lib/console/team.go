// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// Role is a team member's permission level. The role is the member's
// entity status.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleDeveloper Role = "developer"
	RoleViewer    Role = "viewer"
)

// AssignableRoles are the roles the Change Role action offers. The
// owner role is never assignable.
var AssignableRoles = []Role{RoleAdmin, RoleDeveloper, RoleViewer}

// MemberStatus distinguishes accepted members from pending invites.
type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberInvited MemberStatus = "invited"
)

// Member is a person with access to the organization.
type Member struct {
	ID         string       `json:"id" yaml:"id"`
	Name       string       `json:"name" yaml:"name"`
	Email      string       `json:"email" yaml:"email"`
	Role       Role         `json:"role" yaml:"role"`
	Status     MemberStatus `json:"status" yaml:"status"`
	JoinedAt   string       `json:"joined_at" yaml:"joined_at"`
	LastActive string       `json:"last_active" yaml:"last_active"`
}

func (member Member) EntityID() string     { return member.ID }
func (member Member) EntityStatus() string { return string(member.Role) }

// SearchText matches members by name and email.
func (member Member) SearchText() []string { return []string{member.Name, member.Email} }

// Pending reports whether the member has not accepted the invite.
func (member Member) Pending() bool { return member.Status == MemberInvited }

// Actions returns nothing for the owner, who can be neither demoted
// nor removed.
func (member Member) Actions() []Action {
	if member.Role == RoleOwner {
		return nil
	}
	return []Action{ActionChangeRole, ActionRemove}
}

// AuditEvent is one entry in the organization's audit log.
type AuditEvent struct {
	ID        string `json:"id" yaml:"id"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	User      string `json:"user" yaml:"user"`
	Action    string `json:"action" yaml:"action"`
	Target    string `json:"target,omitempty" yaml:"target,omitempty"`
}

// AuditFor returns the events performed by the named user, in log
// order.
func AuditFor(events []AuditEvent, user string) []AuditEvent {
	var result []AuditEvent
	for _, event := range events {
		if event.User == user {
			result = append(result, event)
		}
	}
	return result
}
