// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event sourcing middleware for the
// authorizations service that emits entity mutations to the event store.
package events
