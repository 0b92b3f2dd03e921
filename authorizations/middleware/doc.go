// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package middleware contains the middleware for the authorizations service.
// It is responsible for the following:
// - Logging
// - Metrics
// - Tracing
package middleware
