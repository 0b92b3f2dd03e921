// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
	camsdk "github.com/tibisabau/camunda/pkg/sdk"
)

const all = "all"

var cmdAuthorizations = []cobra.Command{
	{
		Use:   "create <JSON_authorization> <user_auth_token>",
		Short: "Create authorization",
		Long: "Creates a new authorization granting an owner permissions on a resource\n" +
			"Usage:\n" +
			"\tcamunda-cli authorizations create '{\"owner_id\":\"9bce0a96-billing\",\"owner_type\":\"USER\",\"resource_type\":\"PROCESS_DEFINITION\",\"resource_id\":\"order-process\",\"permissions\":[\"READ_PROCESS_DEFINITION\"]}' $USERTOKEN\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var auth camsdk.Authorization
			if err := json.Unmarshal([]byte(args[0]), &auth); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			auth, err := sdk.CreateAuthorization(auth, args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, auth)
		},
	},
	{
		Use:   "get [all | <auth_id>] <user_auth_token>",
		Short: "Get authorizations",
		Long: "Gets an authorization by ID or lists all authorizations matching the filter flags\n" +
			"Usage:\n" +
			"\tcamunda-cli authorizations get all $USERTOKEN - lists all authorizations\n" +
			"\tcamunda-cli authorizations get all $USERTOKEN --resource-type PROCESS_DEFINITION - lists all process definition authorizations\n" +
			"\tcamunda-cli authorizations get <auth_id> $USERTOKEN - shows the authorization with the provided <auth_id>\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if args[0] == all {
				pm := camsdk.PageMetadata{
					Offset:       Offset,
					Limit:        Limit,
					Direction:    Direction,
					OwnerID:      OwnerID,
					OwnerType:    OwnerType,
					ResourceType: ResourceType,
					ResourceID:   ResourceID,
					Permission:   Permission,
				}

				page, err := sdk.Authorizations(pm, args[1])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}

				logJSONCmd(*cmd, page)
				return
			}

			auth, err := sdk.Authorization(args[0], args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, auth)
		},
	},
	{
		Use:   "update <auth_id> <JSON_string> <user_auth_token>",
		Short: "Update authorization",
		Long: "Replaces the owner and permissions of an authorization\n" +
			"Usage:\n" +
			"\tcamunda-cli authorizations update <auth_id> '{\"owner_id\":\"9bce0a96-billing\",\"owner_type\":\"USER\",\"permissions\":[\"READ_PROCESS_DEFINITION\",\"UPDATE_PROCESS_INSTANCE\"]}' $USERTOKEN\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var auth camsdk.Authorization
			if err := json.Unmarshal([]byte(args[1]), &auth); err != nil {
				logErrorCmd(*cmd, err)
				return
			}
			auth.ID = args[0]

			auth, err := sdk.UpdateAuthorization(auth, args[2])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, auth)
		},
	},
	{
		Use:   "delete <auth_id> <user_auth_token>",
		Short: "Delete authorization",
		Long: "Deletes the authorization with the provided <auth_id>\n" +
			"Usage:\n" +
			"\tcamunda-cli authorizations delete <auth_id> $USERTOKEN\n",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := sdk.DeleteAuthorization(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
}

// NewAuthorizationsCmd returns authorizations command.
func NewAuthorizationsCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "authorizations [create | get | update | delete]",
		Short: "Authorizations management",
		Long:  `Authorizations management to create, get, update and delete authorizations`,
	}

	for i := range cmdAuthorizations {
		cmd.AddCommand(&cmdAuthorizations[i])
	}

	return &cmd
}
