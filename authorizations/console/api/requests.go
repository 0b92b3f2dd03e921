// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/tibisabau/camunda/internal/api"
	"github.com/tibisabau/camunda/pkg/apiutil"
)

type listPageReq struct {
	resourceType string
	offset       uint64
	limit        uint64
	requestURI   string
}

func (req listPageReq) validate() error {
	if req.limit > api.MaxLimitSize || req.limit < 1 {
		return apiutil.ErrLimitSize
	}

	return nil
}
