// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"strings"

	"github.com/tibisabau/camunda/authorizations"
)

// View is the data handed to the page template.
type View struct {
	Title       string
	Tabs        []Tab
	Active      authorizations.ResourceType
	Records     []authorizations.Authorization
	Total       uint64
	Offset      uint64
	Limit       uint64
	PrevHref    string
	NextHref    string
	FetchFailed bool
	RetryHref   string
}

// Tab is one entry of the rendered tab strip.
type Tab struct {
	Type   authorizations.ResourceType
	Label  string
	Href   string
	Active bool
}

func joinPermissions(perms []string) string {
	return strings.Join(perms, ", ")
}

// All panels are present in the document; the non-active ones carry the
// hidden attribute and stay empty. Only the active panel holds data.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="authorizations">
<nav class="tabs" aria-label="{{t "authorizations.tabs"}}">
<ul>
{{- range .Tabs}}
<li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Label}}</a></li>
{{- end}}
</ul>
</nav>
<main>
{{- range .Tabs}}
<section id="panel-{{.Type}}"{{if not .Active}} hidden{{end}}>
{{- if .Active}}
{{- if $.FetchFailed}}
<div class="notification error" role="alert">
<p>{{t "authorizations.fetchError"}}</p>
<a href="{{$.RetryHref}}">{{t "authorizations.retry"}}</a>
</div>
{{- else if $.Records}}
<table>
<thead>
<tr>
<th>{{t "authorizations.owner"}}</th>
<th>{{t "authorizations.ownerType"}}</th>
<th>{{t "authorizations.resource"}}</th>
<th>{{t "authorizations.permissions"}}</th>
</tr>
</thead>
<tbody>
{{- range $.Records}}
<tr>
<td>{{.OwnerID}}</td>
<td>{{.OwnerType}}</td>
<td>{{.ResourceID}}</td>
<td>{{join .Permissions}}</td>
</tr>
{{- end}}
</tbody>
</table>
<nav class="pagination">
{{- if $.PrevHref}}
<a href="{{$.PrevHref}}" rel="prev">{{t "authorizations.previous"}}</a>
{{- end}}
{{- if $.NextHref}}
<a href="{{$.NextHref}}" rel="next">{{t "authorizations.next"}}</a>
{{- end}}
</nav>
{{- else}}
<p class="empty">{{t "authorizations.empty"}}</p>
{{- end}}
{{- end}}
</section>
{{- end}}
</main>
</div>
</body>
</html>
`
