// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda/pkg/apiutil"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		desc   string
		header string
		token  string
	}{
		{
			desc:   "valid bearer token",
			header: apiutil.BearerPrefix + "token",
			token:  "token",
		},
		{
			desc:   "missing authorization header",
			header: "",
			token:  "",
		},
		{
			desc:   "wrong scheme",
			header: "Basic token",
			token:  "",
		},
		{
			desc:   "lowercase bearer prefix",
			header: "bearer token",
			token:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "http://localhost", nil)
			assert.Nil(t, err, fmt.Sprintf("unexpected error creating request: %s", err))
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			token := apiutil.ExtractBearerToken(req)
			assert.Equal(t, tc.token, token, fmt.Sprintf("%s: expected %q got %q", tc.desc, tc.token, token))
		})
	}
}
