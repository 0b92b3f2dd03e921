// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/cli"
	"github.com/tibisabau/camunda/pkg/errors"
	sdkmocks "github.com/tibisabau/camunda/pkg/sdk/mocks"
)

func TestHealthCmd(t *testing.T) {
	sdkMock := new(sdkmocks.SDK)
	cli.SetSDK(sdkMock)
	healthCommand := "health"
	rootCmd := setFlags(&cobra.Command{Use: "camunda-cli"})
	rootCmd.AddCommand(cli.NewHealthCmd())

	var health camunda.HealthInfo

	cases := []struct {
		desc          string
		args          []string
		sdkErr        errors.SDKError
		errLogMessage string
		health        camunda.HealthInfo
		logType       outputLog
	}{
		{
			desc: "get service health successfully",
			args: []string{
				healthCommand,
			},
			health: camunda.HealthInfo{
				Status:      "pass",
				Version:     "0.1.0",
				Description: "authorizations service",
			},
			logType: entityLog,
		},
		{
			desc: "get service health with invalid args",
			args: []string{
				healthCommand,
				extraArg,
			},
			logType: usageLog,
		},
		{
			desc: "get service health with failing service",
			args: []string{
				healthCommand,
			},
			sdkErr:        errors.NewSDKError(errors.New("connection refused")),
			errLogMessage: fmt.Sprintf("\nerror: %s\n\n", errors.NewSDKError(errors.New("connection refused"))),
			logType:       errLog,
		},
	}

	for _, tc := range cases {
		sdkCall := sdkMock.On("Health").Return(tc.health, tc.sdkErr)
		out := executeCommand(t, rootCmd, tc.args...)

		switch tc.logType {
		case entityLog:
			err := json.Unmarshal([]byte(out), &health)
			assert.Nil(t, err)
			assert.Equal(t, tc.health, health, fmt.Sprintf("%s unexpected response: expected: %v, got: %v", tc.desc, tc.health, health))
		case errLog:
			assert.Equal(t, tc.errLogMessage, out, fmt.Sprintf("%s unexpected error response: expected %s got errLogMessage:%s", tc.desc, tc.errLogMessage, out))
		case usageLog:
			assert.False(t, strings.Contains(out, rootCmd.Use), fmt.Sprintf("%s invalid usage: %s", tc.desc, out))
		}

		sdkCall.Unset()
	}
}
