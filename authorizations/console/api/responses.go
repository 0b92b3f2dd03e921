// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import "github.com/tibisabau/camunda/authorizations/console"

// redirectRes corrects the page URL when the resourceType parameter does not
// name a member of the tab set.
type redirectRes struct {
	location string
}

// listPageRes carries the assembled view to the HTML encoder.
type listPageRes struct {
	view console.View
}
