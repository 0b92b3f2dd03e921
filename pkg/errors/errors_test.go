// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda/pkg/errors"
)

var (
	err0 = errors.New("0")
	err1 = errors.New("1")
	err2 = errors.New("2")
)

func TestError(t *testing.T) {
	cases := []struct {
		desc string
		err  error
		msg  string
	}{
		{
			desc: "level 0 wrapped error",
			err:  err0,
			msg:  "0",
		},
		{
			desc: "level 1 wrapped error",
			err:  errors.Wrap(err1, err0),
			msg:  "1 : 0",
		},
		{
			desc: "level 2 wrapped error",
			err:  errors.Wrap(err2, errors.Wrap(err1, err0)),
			msg:  "2 : 1 : 0",
		},
	}

	for _, tc := range cases {
		errMsg := tc.err.Error()
		assert.Equal(t, tc.msg, errMsg, fmt.Sprintf("%s: expected %s got %s", tc.desc, tc.msg, errMsg))
	}
}

func TestContains(t *testing.T) {
	cases := []struct {
		desc      string
		container error
		contained error
		contains  bool
	}{
		{
			desc:      "nil contains nil",
			container: nil,
			contained: nil,
			contains:  true,
		},
		{
			desc:      "nil does not contain error",
			container: nil,
			contained: err0,
			contains:  false,
		},
		{
			desc:      "error does not contain nil",
			container: err0,
			contained: nil,
			contains:  false,
		},
		{
			desc:      "error contains itself",
			container: err0,
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapped error contains wrapper",
			container: errors.Wrap(err1, err0),
			contained: err1,
			contains:  true,
		},
		{
			desc:      "wrapped error contains wrapped",
			container: errors.Wrap(err1, err0),
			contained: err0,
			contains:  true,
		},
		{
			desc:      "wrapped error does not contain unrelated",
			container: errors.Wrap(err1, err0),
			contained: err2,
			contains:  false,
		},
	}

	for _, tc := range cases {
		contains := errors.Contains(tc.container, tc.contained)
		assert.Equal(t, tc.contains, contains, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.contains, contains))
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		desc    string
		wrapper error
		wrapped error
		result  error
	}{
		{
			desc:    "wrap error with nil",
			wrapper: nil,
			wrapped: err0,
			result:  nil,
		},
		{
			desc:    "wrap nil with error",
			wrapper: err0,
			wrapped: nil,
			result:  err0,
		},
		{
			desc:    "wrap error with error",
			wrapper: err1,
			wrapped: err0,
			result:  errors.Wrap(err1, err0),
		},
	}

	for _, tc := range cases {
		result := errors.Wrap(tc.wrapper, tc.wrapped)
		if tc.result == nil {
			assert.Nil(t, result, fmt.Sprintf("%s: expected nil got %v", tc.desc, result))
			continue
		}
		assert.Equal(t, tc.result.Error(), result.Error(), fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.result, result))
	}
}

func TestUnwrap(t *testing.T) {
	wrapped := errors.Wrap(err1, err0)

	wrapper, err := errors.Unwrap(wrapped)
	assert.Equal(t, err1.Error(), wrapper.Error(), fmt.Sprintf("expected wrapper %v got %v", err1, wrapper))
	assert.Equal(t, err0.Error(), err.Error(), fmt.Sprintf("expected error %v got %v", err0, err))

	wrapper, err = errors.Unwrap(err0)
	assert.Nil(t, wrapper, fmt.Sprintf("expected nil wrapper got %v", wrapper))
	assert.Equal(t, err0.Error(), err.Error(), fmt.Sprintf("expected error %v got %v", err0, err))
}
