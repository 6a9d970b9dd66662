// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// LogLevel is the severity of a log entry.
type LogLevel string

const (
	LevelError LogLevel = "error"
	LevelWarn  LogLevel = "warn"
	LevelInfo  LogLevel = "info"
	LevelDebug LogLevel = "debug"
)

// LogEntry is one line from the aggregated service logs. The level
// doubles as the entity status, so the level filter is the status
// filter.
type LogEntry struct {
	ID        string   `json:"id" yaml:"id"`
	Timestamp string   `json:"timestamp" yaml:"timestamp"`
	Level     LogLevel `json:"level" yaml:"level"`
	Source    string   `json:"source" yaml:"source"`
	Message   string   `json:"message" yaml:"message"`
	Metadata  string   `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	Details *RequestDetails `json:"details,omitempty" yaml:"details,omitempty"`
}

// RequestDetails describes the HTTP request a log entry refers to.
// Zero fields are omitted from the panel.
type RequestDetails struct {
	Method     string `json:"method,omitempty" yaml:"method,omitempty"`
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Duration   string `json:"duration,omitempty" yaml:"duration,omitempty"`
	IP         string `json:"ip,omitempty" yaml:"ip,omitempty"`
	UserAgent  string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

func (entry LogEntry) EntityID() string     { return entry.ID }
func (entry LogEntry) EntityStatus() string { return string(entry.Level) }

// SearchText matches log entries by message and source.
func (entry LogEntry) SearchText() []string { return []string{entry.Message, entry.Source} }

// Actions is the same for every level.
func (entry LogEntry) Actions() []Action {
	return []Action{ActionCopyLogEntry, ActionViewInContext}
}

// CountByLevel tallies entries per level, for the stats line above the
// log list.
func CountByLevel(entries []LogEntry) map[LogLevel]int {
	counts := make(map[LogLevel]int, 4)
	for _, entry := range entries {
		counts[entry.Level]++
	}
	return counts
}
