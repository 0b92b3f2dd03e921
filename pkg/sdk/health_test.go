// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda"
	sdk "github.com/tibisabau/camunda/pkg/sdk"
)

func TestHealth(t *testing.T) {
	as, _, _ := setupAuthorizations()
	defer as.Close()

	conf := sdk.Config{
		AuthorizationsURL: as.URL,
	}
	camsdk := sdk.NewSDK(conf)

	h, err := camsdk.Health()
	assert.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, "pass", h.Status)
	assert.Equal(t, "authorizations service", h.Description)
	assert.Equal(t, camunda.Version, h.Version)
	assert.Equal(t, camunda.Commit, h.Commit)
	assert.Equal(t, camunda.BuildTime, h.BuildTime)
	assert.Equal(t, instanceID, h.InstanceID)
}
