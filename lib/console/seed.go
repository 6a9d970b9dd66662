// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

// Seed returns the built-in data set. Every call returns fresh slices,
// so callers may modify the result.
func Seed() Bundle {
	return Bundle{
		Tables:      seedTables(),
		Projects:    seedProjects(),
		Deployments: seedDeployments(),
		Services:    seedServices(),
		Incidents:   seedIncidents(),
		Logs:        seedLogs(),
		Webhooks:    seedWebhooks(),
		APIKeys:     seedAPIKeys(),
		Members:     seedMembers(),
		Audit:       seedAudit(),
		Invoices:    seedInvoices(),
		Billing:     seedBilling(),
		Analytics:   seedAnalytics(),
		Account:     seedAccount(),
	}
}

const seedCommitHash = "abc123def456"

func seedDeployments() []Deployment {
	return []Deployment{
		{ID: "847", Project: "api-gateway", Version: "v2.1.4", Status: DeploymentSuccess, Environment: "production", Duration: "2m 34s", Time: "2 min ago", Author: "john@company.com", Commit: "Fix rate limiting", CommitHash: seedCommitHash},
		{ID: "1203", Project: "user-service", Version: "v1.3.2", Status: DeploymentInProgress, Environment: "staging", Duration: "1m 12s", Time: "5 min ago", Author: "sarah@company.com", Commit: "Add profile update endpoint", CommitHash: seedCommitHash},
		{ID: "456", Project: "auth-service", Version: "v1.8.2", Status: DeploymentSuccess, Environment: "production", Duration: "3m 01s", Time: "1 hour ago", Author: "mike@company.com", Commit: "Update JWT validation", CommitHash: seedCommitHash},
		{ID: "2341", Project: "frontend-app", Version: "v3.2.1", Status: DeploymentSuccess, Environment: "production", Duration: "4m 22s", Time: "2 hours ago", Author: "emma@company.com", Commit: "UI improvements for dashboard", CommitHash: seedCommitHash},
		{
			ID: "1198", Project: "payment-processor", Version: "v3.0.0", Status: DeploymentFailed, Environment: "production",
			Duration: "1m 05s", Time: "3 hours ago", Author: "alex@company.com", Commit: "Major refactor of payment flow", CommitHash: seedCommitHash,
			Notes: "Failed during **Run tests**. See `payment-processor` logs for the stack trace.",
		},
		{ID: "845", Project: "api-gateway", Version: "v2.1.3", Status: DeploymentSuccess, Environment: "production", Duration: "2m 18s", Time: "4 hours ago", Author: "john@company.com", Commit: "Performance optimizations", CommitHash: seedCommitHash},
	}
}

func seedProjects() []Project {
	project := func(id, name string, status ProjectStatus, environment, lastDeployment, version, requests string) Project {
		return Project{
			ID:             id,
			Name:           name,
			Status:         status,
			Environment:    environment,
			LastDeployment: lastDeployment,
			Version:        version,
			Requests:       requests,
			Region:         "us-east-1",
			Performance:    ProjectPerformance{ResponseTime: "124ms avg", ErrorRate: "0.01%"},
			Resources:      ProjectResources{CPU: "34%", Memory: "512 MB / 1 GB", Instances: "3 running"},
			RecentDeploys: []ReleaseRecord{
				{Version: "v2.1.3", When: "3 hours ago"},
				{Version: "v2.1.2", When: "1 day ago"},
			},
		}
	}
	return []Project{
		project("1", "api-gateway", ProjectActive, "production", "2 min ago", "v2.1.4", "245K/day"),
		project("2", "user-service", ProjectBuilding, "staging", "5 min ago", "v1.3.2", "89K/day"),
		project("3", "payment-processor", ProjectActive, "production", "12 min ago", "v3.0.1", "156K/day"),
		project("4", "auth-service", ProjectActive, "production", "1 hour ago", "v1.8.2", "432K/day"),
		project("5", "frontend-app", ProjectActive, "production", "2 hours ago", "v3.2.1", "1.2M/day"),
		project("6", "analytics-engine", ProjectPaused, "development", "3 days ago", "v0.9.0", "0/day"),
	}
}

func seedLogs() []LogEntry {
	return []LogEntry{
		{
			ID: "1", Timestamp: "2026-01-14 14:23:45", Level: LevelError, Source: "api-gateway",
			Message:  "Connection timeout to database pool",
			Metadata: "pool_id: primary-db-01, timeout: 5000ms",
			Details:  &RequestDetails{Method: "POST", Path: "/api/v1/users", StatusCode: 504, Duration: "5000ms", IP: "192.168.1.100"},
		},
		{
			ID: "2", Timestamp: "2026-01-14 14:23:42", Level: LevelWarn, Source: "auth-service",
			Message:  "Rate limit approaching for IP 192.168.1.105",
			Metadata: "current: 950/1000, window: 60s",
			Details:  &RequestDetails{Method: "GET", Path: "/api/auth/verify", IP: "192.168.1.105"},
		},
		{
			ID: "3", Timestamp: "2026-01-14 14:23:38", Level: LevelInfo, Source: "payment-processor",
			Message:  "Payment processed successfully",
			Metadata: "transaction_id: txn_abc123, amount: $49.99",
			Details:  &RequestDetails{Method: "POST", Path: "/api/payments", StatusCode: 200, Duration: "245ms"},
		},
		{
			ID: "4", Timestamp: "2026-01-14 14:23:35", Level: LevelInfo, Source: "user-service",
			Message:  "New user registration completed",
			Metadata: "user_id: usr_xyz789, email: user@example.com",
			Details:  &RequestDetails{Method: "POST", Path: "/api/users/register", StatusCode: 201, Duration: "156ms"},
		},
		{
			ID: "5", Timestamp: "2026-01-14 14:23:30", Level: LevelDebug, Source: "cache-manager",
			Message:  "Cache hit for key: user_profile_123",
			Metadata: "ttl: 3600s, size: 2.4kb",
		},
		{
			ID: "6", Timestamp: "2026-01-14 14:23:28", Level: LevelError, Source: "notification-service",
			Message:  "Failed to send email notification",
			Metadata: "smtp_error: Connection refused, recipient: user@test.com",
			Details:  &RequestDetails{Method: "POST", Path: "/api/notifications/email", StatusCode: 500, Duration: "2100ms"},
		},
		{
			ID: "7", Timestamp: "2026-01-14 14:23:25", Level: LevelInfo, Source: "api-gateway",
			Message:  "Health check passed",
			Metadata: "response_time: 12ms, status: healthy",
			Details:  &RequestDetails{Method: "GET", Path: "/health", StatusCode: 200, Duration: "12ms"},
		},
	}
}

func seedWebhooks() []Webhook {
	ok := func(timestamp string, responseTime string) Delivery {
		return Delivery{Timestamp: timestamp, Status: DeliverySuccess, StatusCode: 200, ResponseTime: responseTime}
	}
	failed := func(timestamp string, statusCode int, responseTime string) Delivery {
		return Delivery{Timestamp: timestamp, Status: DeliveryFailed, StatusCode: statusCode, ResponseTime: responseTime}
	}
	return []Webhook{
		{
			ID: "1", URL: "https://api.example.com/webhooks/payments",
			Events: []string{"payment.success", "payment.failed", "payment.refunded"},
			Status: WebhookActive, Created: "2 months ago", LastDelivery: "2 min ago", SuccessRate: 99.8,
			RecentDeliveries: []Delivery{
				ok("14:23", "145ms"), ok("14:18", "132ms"), failed("14:12", 500, "5000ms"), ok("14:08", "156ms"), ok("14:02", "141ms"),
			},
		},
		{
			ID: "2", URL: "https://webhook.site/a1b2c3d4",
			Events: []string{"user.created", "user.updated", "user.deleted"},
			Status: WebhookActive, Created: "1 month ago", LastDelivery: "15 min ago", SuccessRate: 100,
			RecentDeliveries: []Delivery{
				ok("14:08", "98ms"), ok("13:45", "102ms"), ok("13:22", "95ms"), ok("12:58", "110ms"), ok("12:34", "89ms"),
			},
		},
		{
			ID: "3", URL: "https://api.slack.com/hooks/T00000000/B00000000",
			Events: []string{"deployment.started", "deployment.completed", "deployment.failed"},
			Status: WebhookDisabled, Created: "3 weeks ago", LastDelivery: "3 days ago", SuccessRate: 87.5,
			RecentDeliveries: []Delivery{
				failed("Jan 11 18:45", 404, "1200ms"), failed("Jan 11 16:22", 404, "1150ms"), ok("Jan 11 14:10", "234ms"),
				ok("Jan 10 22:30", "245ms"), failed("Jan 10 18:15", 500, "5000ms"),
			},
		},
	}
}

func seedAPIKeys() []APIKey {
	usage := KeyUsage{Requests: 847, Errors: 2, AvgResponse: "145ms"}
	return []APIKey{
		{ID: "1", Name: "Production Key", Key: "sk_live_4f9a2c7e1b8d3f60abc123", Environment: "production", Created: "2 months ago", LastUsed: "5 min ago", Usage: usage},
		{ID: "2", Name: "Development Key", Key: "sk_test_9e1d4b7a2c5f8e30def456", Environment: "development", Created: "3 months ago", LastUsed: "2 hours ago", Usage: usage},
	}
}

func seedMembers() []Member {
	return []Member{
		{ID: "1", Name: "Alex Johnson", Email: "alex@company.com", Role: RoleOwner, Status: MemberActive, JoinedAt: "6 months ago", LastActive: "2 min ago"},
		{ID: "2", Name: "Sarah Chen", Email: "sarah@company.com", Role: RoleAdmin, Status: MemberActive, JoinedAt: "4 months ago", LastActive: "15 min ago"},
		{ID: "3", Name: "Michael Torres", Email: "michael@company.com", Role: RoleDeveloper, Status: MemberActive, JoinedAt: "2 months ago", LastActive: "1 hour ago"},
		{ID: "4", Name: "Emma Wilson", Email: "emma@company.com", Role: RoleDeveloper, Status: MemberActive, JoinedAt: "1 month ago", LastActive: "3 hours ago"},
		{ID: "5", Name: "james.brown@company.com", Email: "james.brown@company.com", Role: RoleViewer, Status: MemberInvited, JoinedAt: "Invited 2 days ago", LastActive: "—"},
	}
}

func seedAudit() []AuditEvent {
	return []AuditEvent{
		{ID: "1", Timestamp: "2026-01-14 14:20", User: "Alex Johnson", Action: "Invited james.brown@company.com as Viewer"},
		{ID: "2", Timestamp: "2026-01-14 10:15", User: "Sarah Chen", Action: "Changed role for Michael Torres", Target: "Developer → Admin"},
		{ID: "3", Timestamp: "2026-01-13 16:40", User: "Alex Johnson", Action: "Removed user lisa.anderson@company.com"},
		{ID: "4", Timestamp: "2026-01-13 09:22", User: "Emma Wilson", Action: "Updated API key permissions"},
		{ID: "5", Timestamp: "2026-01-12 14:55", User: "Michael Torres", Action: "Created new project", Target: "mobile-app-v2"},
	}
}

func seedServices() []Service {
	return []Service{
		{ID: "1", Name: "API Gateway", Status: ServiceOperational, Uptime: 99.99, Latency: "45ms", LastChecked: "30s ago", Region: "us-east-1", Endpoint: "api.example.com"},
		{ID: "2", Name: "Auth Service", Status: ServiceOperational, Uptime: 99.95, Latency: "32ms", LastChecked: "30s ago", Region: "us-east-1", Endpoint: "auth.example.com"},
		{ID: "3", Name: "Database Primary", Status: ServiceOperational, Uptime: 100, Latency: "12ms", LastChecked: "30s ago", Region: "us-east-1"},
		{ID: "4", Name: "Database Replica", Status: ServiceDegraded, Uptime: 98.2, Latency: "340ms", LastChecked: "30s ago", Region: "us-west-2"},
		{ID: "5", Name: "Storage Service", Status: ServiceOperational, Uptime: 99.98, Latency: "89ms", LastChecked: "30s ago", Region: "us-east-1", Endpoint: "storage.example.com"},
		{ID: "6", Name: "CDN", Status: ServiceOperational, Uptime: 99.99, Latency: "15ms", LastChecked: "30s ago", Region: "global", Endpoint: "cdn.example.com"},
		{ID: "7", Name: "Payment Processor", Status: ServiceMaintenance, Uptime: 99.5, Latency: "—", LastChecked: "5 min ago", Region: "us-east-1"},
		{ID: "8", Name: "Notification Service", Status: ServiceOperational, Uptime: 99.92, Latency: "120ms", LastChecked: "30s ago", Region: "us-east-1"},
	}
}

func seedIncidents() []Incident {
	return []Incident{
		{
			ID: "1", Timestamp: "2026-01-14 13:45", Service: "Database Replica",
			Severity: SeverityMajor, Status: IncidentMonitoring,
			Title: "Increased latency in us-west-2 region",
			Updates: []string{
				"14:20 - Latency has improved from 450ms to 340ms",
				"14:00 - Identified network congestion, working with provider",
				"13:45 - Investigating increased response times",
			},
		},
		{
			ID: "2", Timestamp: "2026-01-14 10:30", Service: "Payment Processor",
			Severity: SeverityMinor, Status: IncidentResolved,
			Title: "Scheduled maintenance completed",
			Updates: []string{
				"11:15 - Maintenance completed, all systems operational",
				"10:30 - Starting scheduled maintenance window",
			},
		},
	}
}

func seedInvoices() []Invoice {
	return []Invoice{
		{ID: "1", Date: "2026-01-01", Amount: 149.0, Status: InvoicePaid, Period: "Dec 2025", InvoiceNumber: "INV-2026-001"},
		{ID: "2", Date: "2025-12-01", Amount: 149.0, Status: InvoicePaid, Period: "Nov 2025", InvoiceNumber: "INV-2025-012"},
		{ID: "3", Date: "2025-11-01", Amount: 149.0, Status: InvoicePaid, Period: "Oct 2025", InvoiceNumber: "INV-2025-011"},
		{ID: "4", Date: "2025-10-01", Amount: 99.0, Status: InvoicePaid, Period: "Sep 2025", InvoiceNumber: "INV-2025-010"},
	}
}

func seedBilling() Billing {
	return Billing{
		Plan: "Pro Plan",
		Usage: []UsageMetric{
			{Name: "API Requests", Current: 847230, Limit: 1000000, Unit: "requests"},
			{Name: "Storage", Current: 42.3, Limit: 100, Unit: "GB"},
			{Name: "Bandwidth", Current: 156.8, Limit: 500, Unit: "GB"},
			{Name: "Team Members", Current: 5, Limit: 10, Unit: "seats"},
		},
		PaymentMethod: PaymentMethod{Type: "card", Last4: "4242", Brand: "Visa", ExpiryDate: "12/2027", IsDefault: true},
	}
}

func seedTables() []Table {
	idColumn := Column{Name: "id", Type: "uuid", NotNull: true, PrimaryKey: true}
	createdColumn := Column{Name: "created_at", Type: "timestamptz", NotNull: true}
	table := func(id, name, schema string, rows int64, columns ...Column) Table {
		return Table{
			ID:      id,
			Name:    name,
			Schema:  schema,
			Rows:    rows,
			Columns: append([]Column{idColumn}, append(columns, createdColumn)...),
		}
	}
	text := func(name string) Column { return Column{Name: name, Type: "text"} }
	return []Table{
		table("1", "achievements", "public", 412, text("title"), text("profile_id")),
		table("2", "affiliations", "public", 1893, text("institution"), text("profile_id")),
		table("3", "article_authors", "public", 5120, text("article_id"), text("profile_id")),
		table("4", "article_interactions", "public", 48211, text("article_id"), text("kind")),
		table("5", "articles", "public", 2304, text("title"), text("journal_id"), text("doi")),
		table("6", "issues", "public", 188, text("journal_id"), text("volume")),
		table("7", "journal_admins", "public", 37, text("journal_id"), text("profile_id")),
		table("8", "journal_stats_view", "public", 61, text("journal_id"), Column{Name: "articles", Type: "int8"}),
		table("9", "journals", "public", 61, text("name"), text("issn")),
		table("10", "profile_stats", "public", 3377, text("profile_id"), Column{Name: "citations", Type: "int8"}),
		table("11", "profiles", "public", 3377, text("display_name"), text("orcid")),
		table("12", "research_interests", "public", 9021, text("profile_id"), text("topic")),
		table("13", "social_links", "public", 2210, text("profile_id"), text("url")),
		table("14", "users", "auth", 3402, text("email"), text("encrypted_password")),
		table("15", "sessions", "auth", 812, text("user_id"), text("user_agent")),
		table("16", "buckets", "storage", 4, text("name"), Column{Name: "public", Type: "bool"}),
		table("17", "objects", "storage", 15873, text("bucket_id"), text("name")),
	}
}
