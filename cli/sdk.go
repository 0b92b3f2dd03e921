// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import camsdk "github.com/tibisabau/camunda/pkg/sdk"

// Keep SDK handle in global var.
var sdk camsdk.SDK

// SetSDK sets the authorizations service SDK instance.
func SetSDK(s camsdk.SDK) {
	sdk = s
}
