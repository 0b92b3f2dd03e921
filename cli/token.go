// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/authn/jwt"
)

// NewTokenCmd returns token command.
func NewTokenCmd() *cobra.Command {
	var admin bool

	cmd := cobra.Command{
		Use:   "token <user_id> <secret> [duration]",
		Short: "Issue bearer token",
		Long: "Issues a bearer token for the given user, signed with the service secret\n" +
			"A token issued without a duration never expires\n" +
			"usage:\n" +
			"\tcamunda-cli token 39f97daf-d6b6-40f4-b229-2697be8006ef <secret> 24h --admin",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 && len(args) != 3 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			var duration time.Duration
			if len(args) == 3 {
				d, err := time.ParseDuration(args[2])
				if err != nil {
					logErrorCmd(*cmd, err)
					return
				}
				duration = d
			}

			tokenizer := jwt.New([]byte(args[1]))
			token, err := tokenizer.Issue(authn.Session{UserID: args[0], SuperAdmin: admin}, duration)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logCreatedCmd(*cmd, token)
		},
	}
	cmd.Flags().BoolVarP(&admin, "admin", "a", false, "Issue a token with super admin rights")

	return &cmd
}
