// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/authorizations/api"
	"github.com/tibisabau/camunda/authorizations/mocks"
	"github.com/tibisabau/camunda/internal/testsutil"
	authnmocks "github.com/tibisabau/camunda/pkg/authn/mocks"
	camlog "github.com/tibisabau/camunda/pkg/logger"
	sdk "github.com/tibisabau/camunda/pkg/sdk"
)

const (
	instanceID   = "test"
	validToken   = "valid"
	invalidToken = "invalid"
)

var validID = testsutil.GenerateUUID(&testing.T{})

func setupAuthorizations() (*httptest.Server, *mocks.Service, *authnmocks.Authentication) {
	svc := new(mocks.Service)
	authn := new(authnmocks.Authentication)
	logger := camlog.NewMock()
	mux := api.MakeHandler(svc, authn, chi.NewRouter(), logger, instanceID)

	return httptest.NewServer(mux), svc, authn
}

func generateTestAuthorization(t *testing.T) sdk.Authorization {
	createdAt, err := time.Parse(time.RFC3339, "2024-01-01T00:00:00Z")
	assert.Nil(t, err, fmt.Sprintf("Unexpected error parsing time: %v", err))
	return sdk.Authorization{
		ID:           testsutil.GenerateUUID(t),
		OwnerID:      testsutil.GenerateUUID(t),
		OwnerType:    "USER",
		ResourceType: "PROCESS_DEFINITION",
		ResourceID:   "order-process",
		Permissions:  []string{"READ_PROCESS_DEFINITION", "UPDATE_PROCESS_INSTANCE"},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func convertAuthorization(a sdk.Authorization) authorizations.Authorization {
	auth := authorizations.Authorization{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		ResourceID:  a.ResourceID,
		Permissions: a.Permissions,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.OwnerType != "" {
		ownerType, err := authorizations.ToOwnerType(a.OwnerType)
		if err != nil {
			return authorizations.Authorization{}
		}
		auth.OwnerType = ownerType
	}
	if a.ResourceType != "" {
		resourceType, err := authorizations.ToResourceType(a.ResourceType)
		if err != nil {
			return authorizations.Authorization{}
		}
		auth.ResourceType = resourceType
	}

	return auth
}
