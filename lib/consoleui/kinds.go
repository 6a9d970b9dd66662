// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/listview"
	"github.com/scalefield/console/lib/provider"
	"github.com/scalefield/console/lib/tui"
)

// record is what a list page can show: an entity with panel actions.
type record interface {
	listview.Entity
	Actions() []console.Action
}

// panelContext is what a panel projection may read besides the record
// itself.
type panelContext struct {
	bundle   *console.Bundle
	revealed bool
}

// kindSpec describes one list page: where its records come from, how
// rows and panels are drawn, and what sits above the list.
type kindSpec[T record] struct {
	kind    console.Kind
	list    func(*provider.BundleSource) provider.Provider[T]
	columns []Column[T]
	panel   func(T, panelContext) Panel

	// banner, if set, draws summary lines above the column header from
	// the page's full store.
	banner func(items []T, bundle *console.Bundle, theme tui.Theme, width int) []string

	// initialStatus is the status filter a freshly mounted page starts
	// on. Empty means "all".
	initialStatus string
}

// statusOptions returns the status filter choices of a kind, "all"
// first. The table editor also offers any schema found in the loaded
// tables, so attached databases are reachable.
func statusOptions(kind console.Kind, present []string) []listview.StatusOption {
	options := []listview.StatusOption{{Value: listview.StatusAll, Label: "All"}}
	values := slices.Clone(console.FilterStatuses(kind))
	if kind == console.KindTable {
		for _, value := range present {
			if value != "" && !slices.Contains(values, value) {
				values = append(values, value)
			}
		}
	}
	for _, value := range values {
		options = append(options, listview.StatusOption{Value: value, Label: console.StatusLabel(value)})
	}
	return options
}

// newKindPage builds the list page for kind.
func newKindPage(kind console.Kind, env *pageEnv) (page, bool) {
	switch kind {
	case console.KindTable:
		return newPage(tableSpec, env), true
	case console.KindProject:
		return newPage(projectSpec, env), true
	case console.KindDeployment:
		return newPage(deploymentSpec, env), true
	case console.KindService:
		return newPage(serviceSpec, env), true
	case console.KindLog:
		return newPage(logSpec, env), true
	case console.KindWebhook:
		return newPage(webhookSpec, env), true
	case console.KindAPIKey:
		return newPage(apiKeySpec, env), true
	case console.KindMember:
		return newPage(memberSpec, env), true
	case console.KindInvoice:
		return newPage(invoiceSpec, env), true
	default:
		return nil, false
	}
}

var tableSpec = kindSpec[console.Table]{
	kind: console.KindTable,
	list: (*provider.BundleSource).Tables,
	columns: []Column[console.Table]{
		{Title: "Name", Cell: func(table console.Table) string { return table.Name }, Search: true},
		{Title: "Schema", Width: 10, Cell: func(table console.Table) string { return table.Schema }},
		{Title: "Rows", Width: 10, Cell: func(table console.Table) string { return formatCount(table.Rows) }},
		{Title: "Cols", Width: 5, Cell: func(table console.Table) string { return fmt.Sprint(len(table.Columns)) }},
	},
	panel:         tablePanel,
	initialStatus: console.DefaultSchema,
}

func tablePanel(table console.Table, _ panelContext) Panel {
	columns := Section{Heading: "Columns"}
	for _, column := range table.Columns {
		suffix := column.Type
		if column.PrimaryKey {
			suffix += " · PK"
		}
		if column.NotNull {
			suffix += " · NOT NULL"
		}
		columns.Lines = append(columns.Lines, Line{Text: column.Name, Suffix: suffix})
	}
	return Panel{
		Title:    table.QualifiedName(),
		Subtitle: fmt.Sprintf("%s rows · %d columns", formatCount(table.Rows), len(table.Columns)),
		Sections: []Section{columns},
		Actions:  table.Actions(),
	}
}

var projectSpec = kindSpec[console.Project]{
	kind: console.KindProject,
	list: (*provider.BundleSource).Projects,
	columns: []Column[console.Project]{
		{Title: "Name", Cell: func(project console.Project) string { return project.Name }, Search: true},
		{Title: "Status", Width: 10, Cell: func(project console.Project) string { return console.StatusLabel(string(project.Status)) }, Status: console.Project.EntityStatus},
		{Title: "Env", Width: 12, Cell: func(project console.Project) string { return project.Environment }},
		{Title: "Version", Width: 8, Cell: func(project console.Project) string { return project.Version }},
		{Title: "Last deploy", Width: 12, Cell: func(project console.Project) string { return project.LastDeployment }},
		{Title: "Requests", Width: 9, Cell: func(project console.Project) string { return project.Requests }},
	},
	panel: projectPanel,
}

func projectPanel(project console.Project, _ panelContext) Panel {
	deploys := Section{Heading: "Recent Deploys"}
	deploys.Lines = append(deploys.Lines, Line{
		Text:   project.Version + " (current)",
		Status: string(console.DeploymentSuccess),
		Suffix: project.LastDeployment,
	})
	for _, release := range project.RecentDeploys {
		deploys.Lines = append(deploys.Lines, Line{Text: release.Version, Suffix: release.When})
	}
	return Panel{
		Title:    project.Name,
		Subtitle: joinNonEmpty(" · ", project.Environment, project.Region),
		Status:   string(project.Status),
		Sections: []Section{
			{Heading: "Overview", Fields: []Field{
				{Label: "Version", Value: project.Version},
				{Label: "Environment", Value: project.Environment, Status: project.Environment},
				{Label: "Region", Value: project.Region},
				{Label: "Last Deployment", Value: project.LastDeployment},
			}},
			{Heading: "Performance", Fields: []Field{
				{Label: "Requests", Value: project.Requests},
				{Label: "Response Time", Value: project.Performance.ResponseTime},
				{Label: "Error Rate", Value: project.Performance.ErrorRate},
			}},
			{Heading: "Resources", Fields: []Field{
				{Label: "CPU", Value: project.Resources.CPU},
				{Label: "Memory", Value: project.Resources.Memory},
				{Label: "Instances", Value: project.Resources.Instances},
			}},
			deploys,
		},
		Notes:   project.Notes,
		Actions: project.Actions(),
	}
}

var deploymentSpec = kindSpec[console.Deployment]{
	kind: console.KindDeployment,
	list: (*provider.BundleSource).Deployments,
	columns: []Column[console.Deployment]{
		{Title: "Build", Width: 7, Cell: func(deployment console.Deployment) string { return "#" + deployment.ID }},
		{Title: "Project", Cell: func(deployment console.Deployment) string { return deployment.Project }, Search: true},
		{Title: "Version", Width: 8, Cell: func(deployment console.Deployment) string { return deployment.Version }},
		{Title: "Status", Width: 11, Cell: func(deployment console.Deployment) string { return console.StatusLabel(string(deployment.Status)) }, Status: console.Deployment.EntityStatus},
		{Title: "Env", Width: 10, Cell: func(deployment console.Deployment) string { return deployment.Environment }},
		{Title: "Author", Cell: func(deployment console.Deployment) string { return deployment.Author }, Search: true},
		{Title: "Time", Width: 11, Cell: func(deployment console.Deployment) string { return deployment.Time }},
		{Title: "Duration", Width: 8, Cell: func(deployment console.Deployment) string { return deployment.Duration }},
	},
	panel: deploymentPanel,
}

func deploymentPanel(deployment console.Deployment, _ panelContext) Panel {
	return Panel{
		Title:    deployment.Title(),
		Subtitle: deployment.Project + " · " + deployment.Version,
		Status:   string(deployment.Status),
		Sections: []Section{
			{Heading: "Details", Fields: []Field{
				{Label: "Project", Value: deployment.Project},
				{Label: "Version", Value: deployment.Version},
				{Label: "Environment", Value: deployment.Environment, Status: deployment.Environment},
				{Label: "Duration", Value: deployment.Duration},
				{Label: "Deployed By", Value: deployment.Author},
				{Label: "Started", Value: deployment.Time},
			}},
			{Heading: "Commit", Fields: []Field{
				{Label: "Message", Value: deployment.Commit},
				{Label: "Hash", Value: deployment.CommitHash},
			}},
			{Heading: "Build Steps", Lines: buildStepLines(deployment)},
		},
		Notes:   deployment.Notes,
		Actions: deployment.Actions(),
	}
}

// buildStepLines colors the pipeline by the run's outcome. A finished
// run colors every step; otherwise the earlier steps passed and the
// last one carries the run's status.
func buildStepLines(deployment console.Deployment) []Line {
	steps := deployment.BuildSteps()
	lines := make([]Line, len(steps))
	for index, step := range steps {
		status := string(console.DeploymentSuccess)
		if index == len(steps)-1 {
			status = string(deployment.Status)
		}
		lines[index] = Line{Text: step.Name, Status: status, Suffix: step.Duration}
	}
	return lines
}

var serviceSpec = kindSpec[console.Service]{
	kind: console.KindService,
	list: (*provider.BundleSource).Services,
	columns: []Column[console.Service]{
		{Title: "Service", Cell: func(service console.Service) string { return service.Name }, Search: true},
		{Title: "Status", Width: 11, Cell: func(service console.Service) string { return console.StatusLabel(string(service.Status)) }, Status: console.Service.EntityStatus},
		{Title: "Uptime", Width: 7, Cell: console.Service.UptimeLabel},
		{Title: "Latency", Width: 7, Cell: func(service console.Service) string { return service.Latency }},
		{Title: "Region", Width: 14, Cell: func(service console.Service) string { return service.Region }},
		{Title: "Checked", Width: 11, Cell: func(service console.Service) string { return service.LastChecked }},
	},
	panel:  servicePanel,
	banner: serviceBanner,
}

func servicePanel(service console.Service, scope panelContext) Panel {
	incidents := Section{Heading: "Incidents"}
	var related []console.Incident
	if scope.bundle != nil {
		related = console.IncidentsFor(scope.bundle.Incidents, service.Name)
	}
	for _, incident := range related {
		incidents.Lines = append(incidents.Lines, Line{
			Text:   incident.Title,
			Status: string(incident.Severity),
			Suffix: console.StatusLabel(string(incident.Status)) + " · " + incident.Timestamp,
		})
		for _, update := range incident.Updates {
			incidents.Lines = append(incidents.Lines, Line{Text: "  " + update})
		}
	}
	if len(related) == 0 {
		incidents.Lines = []Line{{Text: "No recent incidents", Status: string(console.ServiceOperational)}}
	}
	return Panel{
		Title:    service.Name,
		Subtitle: joinNonEmpty(" · ", service.Region, service.Endpoint),
		Status:   string(service.Status),
		Sections: []Section{
			{Heading: "Health", Fields: []Field{
				{Label: "Status", Value: console.StatusLabel(string(service.Status)), Status: string(service.Status)},
				{Label: "Uptime", Value: service.UptimeLabel()},
				{Label: "Latency", Value: service.Latency},
				{Label: "Region", Value: service.Region},
				{Label: "Endpoint", Value: service.Endpoint},
				{Label: "Last Checked", Value: service.LastChecked},
			}},
			incidents,
		},
		Actions: service.Actions(),
	}
}

// serviceBanner is the status page summary: overall state, services
// online, average uptime and open incidents.
func serviceBanner(services []console.Service, bundle *console.Bundle, theme tui.Theme, width int) []string {
	online := 0
	down := false
	uptime := 0.0
	for _, service := range services {
		switch service.Status {
		case console.ServiceOperational:
			online++
		case console.ServiceDown:
			down = true
		}
		uptime += service.Uptime
	}
	if len(services) > 0 {
		uptime /= float64(len(services))
	}
	open := 0
	if bundle != nil {
		for _, incident := range bundle.Incidents {
			if incident.Status != console.IncidentResolved {
				open++
			}
		}
	}

	headline, tone := "All systems operational", string(console.ServiceOperational)
	switch {
	case down:
		headline, tone = "Partial outage", string(console.ServiceDown)
	case online < len(services):
		headline, tone = "Degraded performance", string(console.ServiceDegraded)
	}
	summary := fmt.Sprintf("%d/%d services online · %.2f%% average uptime · %d active incidents",
		online, len(services), uptime, open)
	return []string{
		fit(" "+statusBadgeText(headline, tone, theme), width),
		fit(" "+lipgloss.NewStyle().Foreground(theme.FaintText).Render(summary), width),
	}
}

var logSpec = kindSpec[console.LogEntry]{
	kind: console.KindLog,
	list: (*provider.BundleSource).Logs,
	columns: []Column[console.LogEntry]{
		{Title: "Time", Width: 19, Cell: func(entry console.LogEntry) string { return entry.Timestamp }},
		{Title: "Level", Width: 5, Cell: func(entry console.LogEntry) string { return strings.ToUpper(string(entry.Level)) }, Status: console.LogEntry.EntityStatus},
		{Title: "Source", Width: 20, Cell: func(entry console.LogEntry) string { return entry.Source }, Search: true},
		{Title: "Message", Cell: func(entry console.LogEntry) string { return entry.Message }, Search: true},
	},
	panel:  logPanel,
	banner: logBanner,
}

func logPanel(entry console.LogEntry, _ panelContext) Panel {
	sections := []Section{
		{Heading: "Log Details", Fields: []Field{
			{Label: "Level", Value: strings.ToUpper(string(entry.Level)), Status: string(entry.Level)},
			{Label: "Source", Value: entry.Source},
			{Label: "Timestamp", Value: entry.Timestamp},
			{Label: "Message", Value: entry.Message},
		}},
	}
	if details := entry.Details; details != nil {
		request := Section{Heading: "Request"}
		add := func(label, value string) {
			if value != "" {
				request.Fields = append(request.Fields, Field{Label: label, Value: value})
			}
		}
		add("Method", details.Method)
		add("Path", details.Path)
		if details.StatusCode != 0 {
			status := string(console.DeploymentSuccess)
			if details.StatusCode >= 400 {
				status = string(console.DeploymentFailed)
			}
			request.Fields = append(request.Fields, Field{Label: "Status Code", Value: fmt.Sprint(details.StatusCode), Status: status})
		}
		add("Duration", details.Duration)
		add("IP Address", details.IP)
		add("User Agent", details.UserAgent)
		sections = append(sections, request)
	}
	return Panel{
		Title:        "Log Entry",
		Subtitle:     entry.Source + " · " + entry.Timestamp,
		Status:       string(entry.Level),
		Sections:     sections,
		Code:         metadataJSON(entry.Metadata),
		CodeLanguage: "json",
		Actions:      entry.Actions(),
	}
}

// metadataJSON turns "key: value, key: value" metadata into indented
// JSON for the panel. Metadata that is already JSON is reindented;
// anything else is returned as a JSON string.
func metadataJSON(metadata string) string {
	metadata = strings.TrimSpace(metadata)
	if metadata == "" {
		return ""
	}
	var decoded any
	if err := json.Unmarshal([]byte(metadata), &decoded); err == nil {
		if indented, err := json.MarshalIndent(decoded, "", "  "); err == nil {
			return string(indented)
		}
	}

	type pair struct {
		key, value string
	}
	var pairs []pair
	for _, part := range strings.Split(metadata, ", ") {
		key, value, found := strings.Cut(part, ": ")
		if !found {
			pairs = nil
			break
		}
		pairs = append(pairs, pair{strings.TrimSpace(key), strings.TrimSpace(value)})
	}
	if len(pairs) == 0 {
		quoted, _ := json.Marshal(metadata)
		return string(quoted)
	}
	// Built by hand to keep the metadata's key order.
	var builder strings.Builder
	builder.WriteString("{\n")
	for index, entry := range pairs {
		key, _ := json.Marshal(entry.key)
		value, _ := json.Marshal(entry.value)
		builder.WriteString("  " + string(key) + ": " + string(value))
		if index < len(pairs)-1 {
			builder.WriteString(",")
		}
		builder.WriteString("\n")
	}
	builder.WriteString("}")
	return builder.String()
}

// logBanner counts entries per level.
func logBanner(entries []console.LogEntry, _ *console.Bundle, theme tui.Theme, width int) []string {
	counts := console.CountByLevel(entries)
	var parts []string
	for _, level := range []console.LogLevel{console.LevelError, console.LevelWarn, console.LevelInfo, console.LevelDebug} {
		parts = append(parts, statusBadgeText(fmt.Sprintf("%d %s", counts[level], level), string(level), theme))
	}
	return []string{fit(" "+strings.Join(parts, "   "), width)}
}

var webhookSpec = kindSpec[console.Webhook]{
	kind: console.KindWebhook,
	list: (*provider.BundleSource).Webhooks,
	columns: []Column[console.Webhook]{
		{Title: "URL", Cell: func(webhook console.Webhook) string { return webhook.URL }, Search: true},
		{Title: "Events", Width: 6, Cell: func(webhook console.Webhook) string { return fmt.Sprint(len(webhook.Events)) }},
		{Title: "Status", Width: 8, Cell: func(webhook console.Webhook) string { return console.StatusLabel(string(webhook.Status)) }, Status: console.Webhook.EntityStatus},
		{Title: "Success", Width: 7, Cell: func(webhook console.Webhook) string { return fmt.Sprintf("%.1f%%", webhook.SuccessRate) }},
		{Title: "Last delivery", Width: 13, Cell: func(webhook console.Webhook) string { return webhook.LastDelivery }},
	},
	panel: webhookPanel,
}

func webhookPanel(webhook console.Webhook, _ panelContext) Panel {
	events := Section{Heading: "Events"}
	for _, event := range webhook.Events {
		events.Lines = append(events.Lines, Line{Text: event})
	}
	deliveries := Section{Heading: "Recent Deliveries"}
	for _, delivery := range webhook.RecentDeliveries {
		suffix := delivery.ResponseTime + " · " + delivery.Timestamp
		if labels := console.ActionLabels(delivery.Actions()); len(labels) > 0 {
			suffix += " · [" + strings.Join(labels, "] [") + "]"
		}
		deliveries.Lines = append(deliveries.Lines, Line{
			Text:   fmt.Sprintf("%d %s", delivery.StatusCode, console.StatusLabel(string(delivery.Status))),
			Status: string(delivery.Status),
			Suffix: suffix,
		})
	}
	return Panel{
		Title:    "Webhook",
		Subtitle: webhook.URL,
		Status:   string(webhook.Status),
		Sections: []Section{
			{Heading: "Configuration", Fields: []Field{
				{Label: "URL", Value: webhook.URL},
				{Label: "Status", Value: console.StatusLabel(string(webhook.Status)), Status: string(webhook.Status)},
				{Label: "Created", Value: webhook.Created},
				{Label: "Last Delivery", Value: webhook.LastDelivery},
				{Label: "Success Rate", Value: fmt.Sprintf("%.1f%%", webhook.SuccessRate)},
			}},
			events,
			deliveries,
		},
		Actions: webhook.Actions(),
	}
}

var apiKeySpec = kindSpec[console.APIKey]{
	kind: console.KindAPIKey,
	list: (*provider.BundleSource).APIKeys,
	columns: []Column[console.APIKey]{
		{Title: "Name", Cell: func(key console.APIKey) string { return key.Name }, Search: true},
		{Title: "Key", Width: 28, Cell: console.APIKey.Masked},
		{Title: "Env", Width: 11, Cell: func(key console.APIKey) string { return key.Environment }, Status: console.APIKey.EntityStatus},
		{Title: "Last used", Width: 12, Cell: func(key console.APIKey) string { return key.LastUsed }},
	},
	panel: apiKeyPanel,
}

func apiKeyPanel(key console.APIKey, scope panelContext) Panel {
	actions := key.Actions()
	if scope.revealed {
		actions = slices.Clone(actions)
		for index, action := range actions {
			if action.ID == console.ActionReveal.ID {
				actions[index].Label = "Hide"
			}
		}
	}
	return Panel{
		Title:    key.Name,
		Subtitle: key.Environment + " key",
		Status:   key.Environment,
		Sections: []Section{
			{Heading: "Key", Fields: []Field{
				{Label: "Key", Value: key.Display(scope.revealed)},
				{Label: "Fingerprint", Value: key.Fingerprint()},
				{Label: "Created", Value: key.Created},
				{Label: "Last Used", Value: key.LastUsed},
			}},
			{Heading: "Usage (24h)", Fields: []Field{
				{Label: "Requests", Value: formatCount(int64(key.Usage.Requests))},
				{Label: "Errors", Value: formatCount(int64(key.Usage.Errors))},
				{Label: "Avg Response", Value: key.Usage.AvgResponse},
			}},
		},
		Actions: actions,
	}
}

var memberSpec = kindSpec[console.Member]{
	kind: console.KindMember,
	list: (*provider.BundleSource).Members,
	columns: []Column[console.Member]{
		{Title: "Name", Cell: func(member console.Member) string { return member.Name }, Search: true},
		{Title: "Email", Cell: func(member console.Member) string { return member.Email }, Search: true},
		{Title: "Role", Width: 9, Cell: func(member console.Member) string { return console.StatusLabel(string(member.Role)) }, Status: console.Member.EntityStatus},
		{Title: "Status", Width: 7, Cell: func(member console.Member) string { return console.StatusLabel(string(member.Status)) }, Status: func(member console.Member) string { return string(member.Status) }},
		{Title: "Last active", Width: 12, Cell: func(member console.Member) string { return member.LastActive }},
	},
	panel: memberPanel,
}

func memberPanel(member console.Member, scope panelContext) Panel {
	activity := Section{Heading: "Recent Activity"}
	if scope.bundle != nil {
		for _, event := range console.AuditFor(scope.bundle.Audit, member.Name) {
			activity.Lines = append(activity.Lines, Line{Text: joinNonEmpty(" ", event.Action, event.Target), Suffix: event.Timestamp})
		}
	}
	if len(activity.Lines) == 0 {
		activity.Lines = []Line{{Text: "No recent activity"}}
	}
	status := console.StatusLabel(string(member.Status))
	if member.Pending() {
		status = "Invitation pending"
	}
	return Panel{
		Title:    member.Name,
		Subtitle: member.Email,
		Status:   string(member.Role),
		Sections: []Section{
			{Heading: "Member", Fields: []Field{
				{Label: "Role", Value: console.StatusLabel(string(member.Role)), Status: string(member.Role)},
				{Label: "Status", Value: status, Status: string(member.Status)},
				{Label: "Joined", Value: member.JoinedAt},
				{Label: "Last Active", Value: member.LastActive},
			}},
			activity,
		},
		Actions: member.Actions(),
	}
}

var invoiceSpec = kindSpec[console.Invoice]{
	kind: console.KindInvoice,
	list: (*provider.BundleSource).Invoices,
	columns: []Column[console.Invoice]{
		{Title: "Invoice", Width: 14, Cell: func(invoice console.Invoice) string { return invoice.InvoiceNumber }, Search: true},
		{Title: "Period", Cell: func(invoice console.Invoice) string { return invoice.Period }, Search: true},
		{Title: "Amount", Width: 10, Cell: console.Invoice.AmountLabel},
		{Title: "Status", Width: 8, Cell: func(invoice console.Invoice) string { return console.StatusLabel(string(invoice.Status)) }, Status: console.Invoice.EntityStatus},
		{Title: "Date", Width: 12, Cell: func(invoice console.Invoice) string { return invoice.Date }},
	},
	panel:  invoicePanel,
	banner: billingBanner,
}

func invoicePanel(invoice console.Invoice, scope panelContext) Panel {
	sections := []Section{
		{Heading: "Invoice", Fields: []Field{
			{Label: "Number", Value: invoice.InvoiceNumber},
			{Label: "Period", Value: invoice.Period},
			{Label: "Date", Value: invoice.Date},
			{Label: "Amount", Value: invoice.AmountLabel()},
			{Label: "Status", Value: console.StatusLabel(string(invoice.Status)), Status: string(invoice.Status)},
		}},
	}
	if scope.bundle != nil {
		sections = append(sections, Section{Heading: "Payment", Fields: []Field{
			{Label: "Plan", Value: scope.bundle.Billing.Plan},
			{Label: "Method", Value: paymentMethodLabel(scope.bundle.Billing.PaymentMethod)},
		}})
	}
	return Panel{
		Title:    invoice.InvoiceNumber,
		Subtitle: invoice.Period,
		Status:   string(invoice.Status),
		Sections: sections,
		Actions:  invoice.Actions(),
	}
}

// billingBanner shows the plan, the payment method and a usage bar per
// plan allowance.
func billingBanner(_ []console.Invoice, bundle *console.Bundle, theme tui.Theme, width int) []string {
	if bundle == nil {
		return nil
	}
	billing := bundle.Billing
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).Render(billing.Plan+" plan") +
		faint.Render(" · "+paymentMethodLabel(billing.PaymentMethod))
	lines := []string{fit(" "+header, width)}

	const labelWidth = 16
	const amountWidth = 22
	barWidth := max(width-labelWidth-amountWidth-4, 10)
	for _, metric := range billing.Usage {
		amount := fmt.Sprintf("%s / %s %s", formatQuantity(metric.Current), formatQuantity(metric.Limit), metric.Unit)
		line := " " + fit(metric.Name, labelWidth) + " " + usageBar(metric.Percentage(), barWidth, theme) + "  " + faint.Render(amount)
		lines = append(lines, fit(line, width))
	}
	return lines
}

func paymentMethodLabel(method console.PaymentMethod) string {
	if method.Last4 == "" {
		return "No payment method"
	}
	name := method.Brand
	if name == "" {
		name = console.StatusLabel(method.Type)
	}
	label := name + " ending in " + method.Last4
	if method.ExpiryDate != "" {
		label += " (expires " + method.ExpiryDate + ")"
	}
	return label
}

// statusBadgeText renders text after a dot in the tone of status.
func statusBadgeText(text, status string, theme tui.Theme) string {
	return lipgloss.NewStyle().Foreground(theme.StatusColor(status)).Render("● " + text)
}

// formatCount renders an integer with thousands separators.
func formatCount(value int64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	digits := fmt.Sprint(value)
	var builder strings.Builder
	for index, digit := range digits {
		if index > 0 && (len(digits)-index)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return sign + builder.String()
}

// formatQuantity drops the fraction of whole numbers.
func formatQuantity(value float64) string {
	if value == float64(int64(value)) {
		return formatCount(int64(value))
	}
	return fmt.Sprintf("%.1f", value)
}

func joinNonEmpty(separator string, parts ...string) string {
	var kept []string
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, separator)
}
