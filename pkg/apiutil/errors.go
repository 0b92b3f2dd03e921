// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/tibisabau/camunda/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrBearerToken indicates missing or invalid bearer user token.
	ErrBearerToken = errors.New("missing or invalid bearer user token")

	// ErrMissingID indicates missing entity ID.
	ErrMissingID = errors.New("missing entity id")

	// ErrMissingOwnerID indicates missing authorization owner ID.
	ErrMissingOwnerID = errors.New("missing owner id")

	// ErrInvalidOwnerType indicates an invalid authorization owner type.
	ErrInvalidOwnerType = errors.New("invalid owner type")

	// ErrInvalidResourceType indicates an invalid authorization resource type.
	ErrInvalidResourceType = errors.New("invalid resource type")

	// ErrMissingResourceID indicates missing authorization resource ID.
	ErrMissingResourceID = errors.New("missing resource id")

	// ErrMissingPermissions indicates an empty authorization permission list.
	ErrMissingPermissions = errors.New("missing permissions")

	// ErrInvalidPermission indicates a permission outside the resource type catalog.
	ErrInvalidPermission = errors.New("invalid permission for resource type")

	// ErrInvalidIDFormat indicates an invalid ID format.
	ErrInvalidIDFormat = errors.New("invalid id format provided")

	// ErrLimitSize indicates that an invalid limit.
	ErrLimitSize = errors.New("invalid limit size")

	// ErrInvalidDirection indicates an invalid list direction.
	ErrInvalidDirection = errors.New("invalid list direction provided")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
