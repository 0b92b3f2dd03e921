// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package authorizations

import (
	"context"
	"time"

	"github.com/tibisabau/camunda"
	"github.com/tibisabau/camunda/pkg/authn"
	"github.com/tibisabau/camunda/pkg/errors"
	svcerr "github.com/tibisabau/camunda/pkg/errors/service"
)

type service struct {
	repo       Repository
	idProvider camunda.IDProvider
}

// NewService returns a new authorizations service implementation.
func NewService(repo Repository, idp camunda.IDProvider) Service {
	return &service{
		repo:       repo,
		idProvider: idp,
	}
}

func (svc *service) CreateAuthorization(ctx context.Context, session authn.Session, auth Authorization) (Authorization, error) {
	if !session.SuperAdmin {
		return Authorization{}, svcerr.ErrAuthorization
	}
	if err := ValidatePermissions(auth.ResourceType, auth.Permissions); err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	id, err := svc.idProvider.ID()
	if err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	auth.ID = id
	auth.CreatedAt = time.Now()
	auth.UpdatedAt = time.Time{}

	saved, err := svc.repo.Save(ctx, auth)
	if err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return saved, nil
}

func (svc *service) ViewAuthorization(ctx context.Context, session authn.Session, id string) (Authorization, error) {
	auth, err := svc.repo.RetrieveByID(ctx, id)
	if err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return auth, nil
}

func (svc *service) ListAuthorizations(ctx context.Context, session authn.Session, pm Page) (AuthorizationPage, error) {
	page, err := svc.repo.RetrieveAll(ctx, pm)
	if err != nil {
		return AuthorizationPage{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc *service) UpdateAuthorization(ctx context.Context, session authn.Session, auth Authorization) (Authorization, error) {
	if !session.SuperAdmin {
		return Authorization{}, svcerr.ErrAuthorization
	}

	current, err := svc.repo.RetrieveByID(ctx, auth.ID)
	if err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}
	if err := ValidatePermissions(current.ResourceType, auth.Permissions); err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	// The resource a grant targets never changes after creation.
	auth.ResourceType = current.ResourceType
	auth.ResourceID = current.ResourceID
	auth.CreatedAt = current.CreatedAt
	auth.UpdatedAt = time.Now()

	updated, err := svc.repo.Update(ctx, auth)
	if err != nil {
		return Authorization{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return updated, nil
}

func (svc *service) RemoveAuthorization(ctx context.Context, session authn.Session, id string) error {
	if !session.SuperAdmin {
		return svcerr.ErrAuthorization
	}

	if err := svc.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}
