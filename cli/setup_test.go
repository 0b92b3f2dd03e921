// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda/cli"
)

type outputLog uint8

const (
	usageLog outputLog = iota
	errLog
	entityLog
	okLog
	createLog
)

func executeCommand(t *testing.T, root *cobra.Command, args ...string) string {
	buffer := new(bytes.Buffer)
	root.SetOut(buffer)
	root.SetErr(buffer)
	root.SetArgs(args)
	err := root.Execute()
	assert.NoError(t, err, "Error executing command")
	return buffer.String()
}

func setFlags(rootCmd *cobra.Command) *cobra.Command {
	// Root Flags
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

	return rootCmd
}
