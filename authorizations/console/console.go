// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package console renders the server-side authorizations page: a vertical
// strip of resource type tabs, one paginated table of grants per tab. The
// active tab is carried by the resourceType query parameter, which is kept
// in sync with the rendered page through redirects and tab links.
package console

import (
	"html/template"
	"io"
	"net/url"
	"sort"
	"strconv"

	"github.com/tibisabau/camunda/authorizations"
)

// PagePath is the URL path the authorizations page is served under.
const PagePath = "/console/authorizations"

// ResourceTypeParam is the query parameter holding the active tab.
const ResourceTypeParam = "resourceType"

const (
	offsetParam = "offset"
	limitParam  = "limit"
)

// Translator resolves a message key to a user-facing label.
type Translator func(key string) string

var englishLabels = map[string]string{
	"authorizations.title":       "Authorizations",
	"authorizations.tabs":        "Resource types",
	"authorizations.owner":       "Owner ID",
	"authorizations.ownerType":   "Owner type",
	"authorizations.resource":    "Resource ID",
	"authorizations.permissions": "Permissions",
	"authorizations.empty":       "No authorizations for this resource type.",
	"authorizations.fetchError":  "Authorizations could not be loaded.",
	"authorizations.retry":       "Retry",
	"authorizations.previous":    "Previous",
	"authorizations.next":        "Next",

	"APPLICATION":                      "Application",
	"AUTHORIZATION":                    "Authorization",
	"BATCH":                            "Batch",
	"DECISION_DEFINITION":              "Decision definition",
	"DECISION_REQUIREMENTS_DEFINITION": "Decision requirements definition",
	"GROUP":                            "Group",
	"MAPPING_RULE":                     "Mapping rule",
	"MESSAGE":                          "Message",
	"PROCESS_DEFINITION":               "Process definition",
	"RESOURCE":                         "Resource",
	"ROLE":                             "Role",
	"SYSTEM":                           "System",
	"TENANT":                           "Tenant",
	"USER":                             "User",
}

// EnglishTranslator resolves keys against the built-in English table and
// falls back to the key itself when no label is known.
func EnglishTranslator(key string) string {
	if label, ok := englishLabels[key]; ok {
		return label
	}

	return key
}

// Console holds the immutable page state: the tab set, the translator and
// the parsed page template. It is safe for concurrent use.
type Console struct {
	tabs      []authorizations.ResourceType
	translate Translator
	tmpl      *template.Template
}

// New builds a console for the given tenants capability. A nil translator
// selects the built-in English one.
func New(tenantsEnabled bool, t Translator) (Console, error) {
	if t == nil {
		t = EnglishTranslator
	}

	tmpl, err := template.New("authorizations").Funcs(template.FuncMap{
		"t":    t,
		"join": joinPermissions,
	}).Parse(pageHTML)
	if err != nil {
		return Console{}, err
	}

	return Console{
		tabs:      authorizations.ResourceTypes(tenantsEnabled),
		translate: t,
		tmpl:      tmpl,
	}, nil
}

// Tabs returns the tab set in canonical order.
func (c Console) Tabs() []authorizations.ResourceType {
	return append([]authorizations.ResourceType(nil), c.tabs...)
}

// ResolveTab maps the raw resourceType query value to a member of the tab
// set. The second return value reports whether the URL must be corrected:
// missing, unparseable and excluded values all resolve to the first tab.
func (c Console) ResolveTab(raw string) (authorizations.ResourceType, bool) {
	rt, err := authorizations.ToResourceType(raw)
	if err != nil {
		return c.tabs[0], true
	}
	for _, tab := range c.tabs {
		if tab == rt {
			return rt, false
		}
	}

	return c.tabs[0], true
}

// Translate resolves a message key through the configured translator.
func (c Console) Translate(key string) string {
	return c.translate(key)
}

// TabHref builds the link target for a tab. Tab links carry the resource
// type and the current limit, never an offset, so switching tabs always
// lands on the first page.
func (c Console) TabHref(tab authorizations.ResourceType, limit uint64) string {
	q := url.Values{}
	q.Set(ResourceTypeParam, tab.String())
	q.Set(limitParam, strconv.FormatUint(limit, 10))

	return PagePath + "?" + q.Encode()
}

func (c Console) pageHref(tab authorizations.ResourceType, offset, limit uint64) string {
	q := url.Values{}
	q.Set(ResourceTypeParam, tab.String())
	q.Set(offsetParam, strconv.FormatUint(offset, 10))
	q.Set(limitParam, strconv.FormatUint(limit, 10))

	return PagePath + "?" + q.Encode()
}

// PageView assembles the view for a successfully fetched page. Permission
// lists are rendered sorted; the fetched page itself is left untouched.
func (c Console) PageView(active authorizations.ResourceType, offset, limit uint64, page authorizations.AuthorizationPage) View {
	page = SortPermissions(page)

	view := View{
		Title:   c.translate("authorizations.title"),
		Tabs:    c.tabViews(active, limit),
		Active:  active,
		Records: page.Authorizations,
		Total:   page.Total,
		Offset:  offset,
		Limit:   limit,
	}

	if offset > 0 {
		prev := uint64(0)
		if offset > limit {
			prev = offset - limit
		}
		view.PrevHref = c.pageHref(active, prev, limit)
	}
	if offset+limit < page.Total {
		view.NextHref = c.pageHref(active, offset+limit, limit)
	}

	return view
}

// ErrorView assembles the view rendered when fetching the active tab's page
// failed: the tab strip stays intact and the active panel carries the error
// notification with a retry link that re-issues the current query.
func (c Console) ErrorView(active authorizations.ResourceType, limit uint64, requestURI string) View {
	return View{
		Title:       c.translate("authorizations.title"),
		Tabs:        c.tabViews(active, limit),
		Active:      active,
		Limit:       limit,
		FetchFailed: true,
		RetryHref:   requestURI,
	}
}

func (c Console) tabViews(active authorizations.ResourceType, limit uint64) []Tab {
	tabs := make([]Tab, 0, len(c.tabs))
	for _, tab := range c.tabs {
		tabs = append(tabs, Tab{
			Type:   tab,
			Label:  c.translate(tab.String()),
			Href:   c.TabHref(tab, limit),
			Active: tab == active,
		})
	}

	return tabs
}

// Render writes the page for the given view.
func (c Console) Render(w io.Writer, view View) error {
	return c.tmpl.Execute(w, view)
}

// SortPermissions returns a page in which every record's permission list is
// replaced by an alphabetically sorted copy. Neither the given page nor its
// records are mutated.
func SortPermissions(page authorizations.AuthorizationPage) authorizations.AuthorizationPage {
	if len(page.Authorizations) == 0 {
		return page
	}

	records := make([]authorizations.Authorization, len(page.Authorizations))
	copy(records, page.Authorizations)
	for i := range records {
		perms := append([]string(nil), records[i].Permissions...)
		sort.Strings(perms)
		records[i].Permissions = perms
	}
	page.Authorizations = records

	return page
}
