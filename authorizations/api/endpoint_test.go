// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/authorizations/api"
	"github.com/tibisabau/camunda/authorizations/mocks"
	"github.com/tibisabau/camunda/internal/testsutil"
	"github.com/tibisabau/camunda/pkg/apiutil"
	mgauthn "github.com/tibisabau/camunda/pkg/authn"
	authnmocks "github.com/tibisabau/camunda/pkg/authn/mocks"
	svcerr "github.com/tibisabau/camunda/pkg/errors/service"
	mglog "github.com/tibisabau/camunda/pkg/logger"
)

var (
	validToken      = "valid"
	validContenType = "application/json"
	validID         = testsutil.GenerateUUID(&testing.T{})
	adminSession    = mgauthn.Session{UserID: validID, SuperAdmin: true}
	validBody       = fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER", "resource_type": "BATCH", "resource_id": "batch-1", "permissions": ["READ"]}`, validID)
)

type testRequest struct {
	client      *http.Client
	method      string
	url         string
	token       string
	contentType string
	body        io.Reader
}

func (tr testRequest) make() (*http.Response, error) {
	req, err := http.NewRequest(tr.method, tr.url, tr.body)
	if err != nil {
		return nil, err
	}

	if tr.token != "" {
		req.Header.Set("Authorization", apiutil.BearerPrefix+tr.token)
	}

	if tr.contentType != "" {
		req.Header.Set("Content-Type", tr.contentType)
	}

	return tr.client.Do(req)
}

func newAuthorizationsServer() (*httptest.Server, *mocks.Service, *authnmocks.Authentication) {
	svc := new(mocks.Service)
	logger := mglog.NewMock()
	authn := new(authnmocks.Authentication)
	mux := api.MakeHandler(svc, authn, chi.NewRouter(), logger, "test")
	return httptest.NewServer(mux), svc, authn
}

func TestCreateAuthorizationEndpoint(t *testing.T) {
	as, svc, authn := newAuthorizationsServer()
	defer as.Close()

	cases := []struct {
		desc        string
		token       string
		data        string
		contentType string
		status      int
		authnRes    mgauthn.Session
		authnErr    error
		svcErr      error
	}{
		{
			desc:        "valid request",
			token:       validToken,
			data:        validBody,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusCreated,
		},
		{
			desc:        "missing token",
			token:       "",
			data:        validBody,
			contentType: validContenType,
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "invalid token",
			token:       "invalid",
			data:        validBody,
			contentType: validContenType,
			authnErr:    svcerr.ErrAuthentication,
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "invalid content type",
			token:       validToken,
			data:        validBody,
			contentType: "text/plain",
			authnRes:    adminSession,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "invalid data",
			token:       validToken,
			data:        `data`,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "invalid owner type",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "MACHINE", "resource_type": "BATCH", "resource_id": "batch-1", "permissions": ["READ"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "invalid resource type",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER", "resource_type": "UNKNOWN", "resource_id": "batch-1", "permissions": ["READ"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing owner id",
			token:       validToken,
			data:        `{"owner_type": "USER", "resource_type": "BATCH", "resource_id": "batch-1", "permissions": ["READ"]}`,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing owner type",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "resource_type": "BATCH", "resource_id": "batch-1", "permissions": ["READ"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing resource type",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER", "resource_id": "batch-1", "permissions": ["ACCESS"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing resource id",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER", "resource_type": "BATCH", "permissions": ["READ"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing permissions",
			token:       validToken,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER", "resource_type": "BATCH", "resource_id": "batch-1"}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "unauthorized user",
			token:       validToken,
			data:        validBody,
			contentType: validContenType,
			authnRes:    mgauthn.Session{UserID: validID},
			svcErr:      svcerr.ErrAuthorization,
			status:      http.StatusForbidden,
		},
		{
			desc:        "duplicate authorization",
			token:       validToken,
			data:        validBody,
			contentType: validContenType,
			authnRes:    adminSession,
			svcErr:      svcerr.ErrConflict,
			status:      http.StatusConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authnCall := authn.On("Authenticate", mock.Anything, tc.token).Return(tc.authnRes, tc.authnErr)
			svcCall := svc.On("CreateAuthorization", mock.Anything, tc.authnRes, mock.Anything).Return(authorizations.Authorization{ID: validID}, tc.svcErr)
			req := testRequest{
				client:      as.Client(),
				method:      http.MethodPost,
				url:         as.URL + "/authorizations",
				token:       tc.token,
				contentType: tc.contentType,
				body:        strings.NewReader(tc.data),
			}

			res, err := req.make()
			assert.Nil(t, err, tc.desc)
			assert.Equal(t, tc.status, res.StatusCode, tc.desc)
			if tc.status == http.StatusCreated {
				assert.Equal(t, "/authorizations/"+validID, res.Header.Get("Location"), tc.desc)
			}
			svcCall.Unset()
			authnCall.Unset()
		})
	}
}

func TestViewAuthorizationEndpoint(t *testing.T) {
	as, svc, authn := newAuthorizationsServer()
	defer as.Close()

	cases := []struct {
		desc     string
		token    string
		id       string
		status   int
		authnRes mgauthn.Session
		authnErr error
		svcErr   error
	}{
		{
			desc:     "valid request",
			token:    validToken,
			id:       validID,
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:   "missing token",
			token:  "",
			id:     validID,
			status: http.StatusUnauthorized,
		},
		{
			desc:     "invalid token",
			token:    "invalid",
			id:       validID,
			authnErr: svcerr.ErrAuthentication,
			status:   http.StatusUnauthorized,
		},
		{
			desc:     "invalid id format",
			token:    validToken,
			id:       "invalid",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "non existent authorization",
			token:    validToken,
			id:       testsutil.GenerateUUID(t),
			authnRes: adminSession,
			svcErr:   svcerr.ErrNotFound,
			status:   http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authnCall := authn.On("Authenticate", mock.Anything, tc.token).Return(tc.authnRes, tc.authnErr)
			svcCall := svc.On("ViewAuthorization", mock.Anything, tc.authnRes, tc.id).Return(authorizations.Authorization{ID: tc.id}, tc.svcErr)
			req := testRequest{
				client: as.Client(),
				method: http.MethodGet,
				url:    as.URL + "/authorizations/" + tc.id,
				token:  tc.token,
			}

			res, err := req.make()
			assert.Nil(t, err, tc.desc)
			assert.Equal(t, tc.status, res.StatusCode, tc.desc)
			svcCall.Unset()
			authnCall.Unset()
		})
	}
}

func TestListAuthorizationsEndpoint(t *testing.T) {
	as, svc, authn := newAuthorizationsServer()
	defer as.Close()

	cases := []struct {
		desc     string
		token    string
		query    string
		status   int
		authnRes mgauthn.Session
		authnErr error
		svcErr   error
	}{
		{
			desc:     "valid request",
			token:    validToken,
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:   "missing token",
			token:  "",
			status: http.StatusUnauthorized,
		},
		{
			desc:     "with offset",
			token:    validToken,
			query:    "offset=1",
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:     "with invalid offset",
			token:    validToken,
			query:    "offset=invalid",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with limit",
			token:    validToken,
			query:    "limit=50",
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:     "with invalid limit",
			token:    validToken,
			query:    "limit=invalid",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with zero limit",
			token:    validToken,
			query:    "limit=0",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with oversized limit",
			token:    validToken,
			query:    "limit=1000",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with resource type",
			token:    validToken,
			query:    "resource_type=PROCESS_DEFINITION",
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:     "with invalid resource type",
			token:    validToken,
			query:    "resource_type=UNKNOWN",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with owner type",
			token:    validToken,
			query:    "owner_type=GROUP",
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:     "with invalid owner type",
			token:    validToken,
			query:    "owner_type=MACHINE",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with direction",
			token:    validToken,
			query:    "dir=desc",
			authnRes: adminSession,
			status:   http.StatusOK,
		},
		{
			desc:     "with invalid direction",
			token:    validToken,
			query:    "dir=sideways",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "with duplicate query params",
			token:    validToken,
			query:    "owner_id=a&owner_id=b",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authnCall := authn.On("Authenticate", mock.Anything, tc.token).Return(tc.authnRes, tc.authnErr)
			svcCall := svc.On("ListAuthorizations", mock.Anything, tc.authnRes, mock.Anything).Return(authorizations.AuthorizationPage{}, tc.svcErr)
			req := testRequest{
				client: as.Client(),
				method: http.MethodGet,
				url:    as.URL + "/authorizations?" + tc.query,
				token:  tc.token,
			}

			res, err := req.make()
			assert.Nil(t, err, tc.desc)
			assert.Equal(t, tc.status, res.StatusCode, tc.desc)
			svcCall.Unset()
			authnCall.Unset()
		})
	}
}

func TestUpdateAuthorizationEndpoint(t *testing.T) {
	as, svc, authn := newAuthorizationsServer()
	defer as.Close()

	cases := []struct {
		desc        string
		token       string
		id          string
		data        string
		contentType string
		status      int
		authnRes    mgauthn.Session
		authnErr    error
		svcErr      error
	}{
		{
			desc:        "valid request",
			token:       validToken,
			id:          validID,
			data:        validBody,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusOK,
		},
		{
			desc:        "missing token",
			token:       "",
			id:          validID,
			data:        validBody,
			contentType: validContenType,
			status:      http.StatusUnauthorized,
		},
		{
			desc:        "invalid content type",
			token:       validToken,
			id:          validID,
			data:        validBody,
			contentType: "text/plain",
			authnRes:    adminSession,
			status:      http.StatusUnsupportedMediaType,
		},
		{
			desc:        "invalid data",
			token:       validToken,
			id:          validID,
			data:        `data`,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "invalid id format",
			token:       validToken,
			id:          "invalid",
			data:        validBody,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing owner id",
			token:       validToken,
			id:          validID,
			data:        `{"owner_type": "USER", "permissions": ["READ"]}`,
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing owner type",
			token:       validToken,
			id:          validID,
			data:        fmt.Sprintf(`{"owner_id": "%s", "permissions": ["READ"]}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "missing permissions",
			token:       validToken,
			id:          validID,
			data:        fmt.Sprintf(`{"owner_id": "%s", "owner_type": "USER"}`, validID),
			contentType: validContenType,
			authnRes:    adminSession,
			status:      http.StatusBadRequest,
		},
		{
			desc:        "non existent authorization",
			token:       validToken,
			id:          testsutil.GenerateUUID(t),
			data:        validBody,
			contentType: validContenType,
			authnRes:    adminSession,
			svcErr:      svcerr.ErrNotFound,
			status:      http.StatusNotFound,
		},
		{
			desc:        "unauthorized user",
			token:       validToken,
			id:          validID,
			data:        validBody,
			contentType: validContenType,
			authnRes:    mgauthn.Session{UserID: validID},
			svcErr:      svcerr.ErrAuthorization,
			status:      http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authnCall := authn.On("Authenticate", mock.Anything, tc.token).Return(tc.authnRes, tc.authnErr)
			svcCall := svc.On("UpdateAuthorization", mock.Anything, tc.authnRes, mock.Anything).Return(authorizations.Authorization{ID: tc.id}, tc.svcErr)
			req := testRequest{
				client:      as.Client(),
				method:      http.MethodPut,
				url:         as.URL + "/authorizations/" + tc.id,
				token:       tc.token,
				contentType: tc.contentType,
				body:        strings.NewReader(tc.data),
			}

			res, err := req.make()
			assert.Nil(t, err, tc.desc)
			assert.Equal(t, tc.status, res.StatusCode, tc.desc)
			svcCall.Unset()
			authnCall.Unset()
		})
	}
}

func TestRemoveAuthorizationEndpoint(t *testing.T) {
	as, svc, authn := newAuthorizationsServer()
	defer as.Close()

	cases := []struct {
		desc     string
		token    string
		id       string
		status   int
		authnRes mgauthn.Session
		authnErr error
		svcErr   error
	}{
		{
			desc:     "valid request",
			token:    validToken,
			id:       validID,
			authnRes: adminSession,
			status:   http.StatusNoContent,
		},
		{
			desc:   "missing token",
			token:  "",
			id:     validID,
			status: http.StatusUnauthorized,
		},
		{
			desc:     "invalid id format",
			token:    validToken,
			id:       "invalid",
			authnRes: adminSession,
			status:   http.StatusBadRequest,
		},
		{
			desc:     "non existent authorization",
			token:    validToken,
			id:       testsutil.GenerateUUID(t),
			authnRes: adminSession,
			svcErr:   svcerr.ErrNotFound,
			status:   http.StatusNotFound,
		},
		{
			desc:     "unauthorized user",
			token:    validToken,
			id:       validID,
			authnRes: mgauthn.Session{UserID: validID},
			svcErr:   svcerr.ErrAuthorization,
			status:   http.StatusForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			authnCall := authn.On("Authenticate", mock.Anything, tc.token).Return(tc.authnRes, tc.authnErr)
			svcCall := svc.On("RemoveAuthorization", mock.Anything, tc.authnRes, tc.id).Return(tc.svcErr)
			req := testRequest{
				client: as.Client(),
				method: http.MethodDelete,
				url:    as.URL + "/authorizations/" + tc.id,
				token:  tc.token,
			}

			res, err := req.make()
			assert.Nil(t, err, tc.desc)
			assert.Equal(t, tc.status, res.StatusCode, tc.desc)
			svcCall.Unset()
			authnCall.Unset()
		})
	}
}
