// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/tibisabau/camunda/pkg/uuid"
)

// GenerateUUID generates a random identifier, failing the test on error.
func GenerateUUID(t *testing.T) string {
	idProvider := uuid.New()
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	return id
}

// CleanUpDB removes all authorization records between test cases.
func CleanUpDB(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("DELETE FROM authorizations")
	require.Nil(t, err, fmt.Sprintf("clean authorizations unexpected error: %s", err))
}
