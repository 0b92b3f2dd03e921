// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"encoding/json"
	"net/http"

	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/pkg/errors"
)

func (sdk camSDK) Health() (camunda.HealthInfo, errors.SDKError) {
	url := sdk.authorizationsURL + "/health"

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, "", nil, nil, http.StatusOK)
	if sdkerr != nil {
		return camunda.HealthInfo{}, sdkerr
	}

	var h camunda.HealthInfo
	if err := json.Unmarshal(body, &h); err != nil {
		return camunda.HealthInfo{}, errors.NewSDKError(err)
	}

	return h, nil
}
