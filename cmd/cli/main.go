// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the authorizations CLI.
package main

import (
	"log"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/tibisabau/camunda/cli"
	camsdk "github.com/tibisabau/camunda/pkg/sdk"
)

func main() {
	msgContentType := string(camsdk.CTJSON)
	sdkConf := camsdk.Config{
		AuthorizationsURL: "http://localhost:9008",
		MsgContentType:    camsdk.ContentType(msgContentType),
		TLSVerification:   false,
	}

	// Root
	rootCmd := &cobra.Command{
		Use: "camunda-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cliConf, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}
			cliConf.MsgContentType = camsdk.ContentType(msgContentType)

			s := camsdk.NewSDK(cliConf)
			cli.SetSDK(s)
		},
	}

	// API commands
	authorizationsCmd := cli.NewAuthorizationsCmd()
	tokenCmd := cli.NewTokenCmd()
	healthCmd := cli.NewHealthCmd()
	configCmd := cli.NewConfigCmd()

	// Root Commands
	rootCmd.AddCommand(authorizationsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(configCmd)

	// Colored cobra
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&sdkConf.AuthorizationsURL,
		"authorizations-url",
		"u",
		sdkConf.AuthorizationsURL,
		"Authorizations service URL",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.TLSVerification,
		"insecure",
		"i",
		sdkConf.TLSVerification,
		"Do not check for TLS cert",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&sdkConf.CurlFlag,
		"curl",
		"x",
		false,
		"Convert HTTP request to cURL command",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		cli.ConfigPath,
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		cli.RawOutput,
		"Enables raw output mode for easier parsing of output",
	)

	// Authorizations Flags
	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Limit,
		"limit",
		"l",
		10,
		"Limit query parameter",
	)

	rootCmd.PersistentFlags().Uint64VarP(
		&cli.Offset,
		"offset",
		"o",
		0,
		"Offset query parameter",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.Direction,
		"dir",
		"d",
		"",
		"Sort direction query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.OwnerID,
		"owner-id",
		"",
		"Owner id query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.OwnerType,
		"owner-type",
		"",
		"Owner type query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.ResourceType,
		"resource-type",
		"",
		"Resource type query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.ResourceID,
		"resource-id",
		"",
		"Resource id query parameter",
	)

	rootCmd.PersistentFlags().StringVar(
		&cli.Permission,
		"permission",
		"",
		"Permission query parameter",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing CLI: %s", err)
	}
}
