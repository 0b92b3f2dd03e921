// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgtype"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/errors"
	repoerr "github.com/tibisabau/camunda/pkg/errors/repository"
	"github.com/tibisabau/camunda/pkg/postgres"
)

var _ authorizations.Repository = (*repository)(nil)

type repository struct {
	db postgres.Database
}

// NewRepository instantiates a PostgreSQL implementation of the
// authorizations repository.
func NewRepository(db postgres.Database) authorizations.Repository {
	return &repository{
		db: db,
	}
}

func (repo *repository) Save(ctx context.Context, auth authorizations.Authorization) (authorizations.Authorization, error) {
	q := `INSERT INTO authorizations (id, owner_id, owner_type, resource_type, resource_id, permissions, created_at)
		VALUES (:id, :owner_id, :owner_type, :resource_type, :resource_id, :permissions, :created_at)
		RETURNING id, owner_id, owner_type, resource_type, resource_id, permissions, created_at, updated_at`

	dba, err := toDBAuthorization(auth)
	if err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dba)
	if err != nil {
		return authorizations.Authorization{}, postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	if !row.Next() {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrCreateEntity, row.Err())
	}
	dba = dbAuthorization{}
	if err := row.StructScan(&dba); err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return toAuthorization(dba)
}

func (repo *repository) RetrieveByID(ctx context.Context, id string) (authorizations.Authorization, error) {
	q := `SELECT id, owner_id, owner_type, resource_type, resource_id, permissions, created_at, updated_at
		FROM authorizations WHERE id = :id`

	row, err := repo.db.NamedQueryContext(ctx, q, dbAuthorization{ID: id})
	if err != nil {
		return authorizations.Authorization{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	if !row.Next() {
		if err := row.Err(); err != nil {
			return authorizations.Authorization{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}

		return authorizations.Authorization{}, repoerr.ErrNotFound
	}
	dba := dbAuthorization{}
	if err := row.StructScan(&dba); err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toAuthorization(dba)
}

func (repo *repository) RetrieveAll(ctx context.Context, pm authorizations.Page) (authorizations.AuthorizationPage, error) {
	emq := pageQuery(pm)

	q := fmt.Sprintf(`SELECT id, owner_id, owner_type, resource_type, resource_id, permissions, created_at, updated_at
		FROM authorizations %s ORDER BY created_at %s, id LIMIT :limit OFFSET :offset;`, emq, order(pm.Direction))

	dbPage := toDBAuthorizationPage(pm)
	rows, err := repo.db.NamedQueryContext(ctx, q, dbPage)
	if err != nil {
		return authorizations.AuthorizationPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	var items []authorizations.Authorization
	for rows.Next() {
		dba := dbAuthorization{}
		if err := rows.StructScan(&dba); err != nil {
			return authorizations.AuthorizationPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}

		auth, err := toAuthorization(dba)
		if err != nil {
			return authorizations.AuthorizationPage{}, err
		}

		items = append(items, auth)
	}

	cq := fmt.Sprintf(`SELECT COUNT(*) FROM authorizations %s;`, emq)

	total, err := postgres.Total(ctx, repo.db, cq, dbPage)
	if err != nil {
		return authorizations.AuthorizationPage{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	page := authorizations.AuthorizationPage{
		Total:          total,
		Offset:         pm.Offset,
		Limit:          pm.Limit,
		Authorizations: items,
	}

	return page, nil
}

func (repo *repository) Update(ctx context.Context, auth authorizations.Authorization) (authorizations.Authorization, error) {
	q := `UPDATE authorizations
		SET owner_id = :owner_id, owner_type = :owner_type, permissions = :permissions, updated_at = :updated_at
		WHERE id = :id
		RETURNING id, owner_id, owner_type, resource_type, resource_id, permissions, created_at, updated_at`

	dba, err := toDBAuthorization(auth)
	if err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dba)
	if err != nil {
		return authorizations.Authorization{}, postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	defer row.Close()

	if !row.Next() {
		if err := row.Err(); err != nil {
			return authorizations.Authorization{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
		}

		return authorizations.Authorization{}, repoerr.ErrNotFound
	}
	dba = dbAuthorization{}
	if err := row.StructScan(&dba); err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return toAuthorization(dba)
}

func (repo *repository) Delete(ctx context.Context, id string) error {
	q := `DELETE FROM authorizations WHERE id = :id`

	res, err := repo.db.NamedExecContext(ctx, q, dbAuthorization{ID: id})
	if err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

func pageQuery(pm authorizations.Page) string {
	var query []string
	if pm.OwnerID != "" {
		query = append(query, "owner_id = :owner_id")
	}
	if pm.OwnerType != "" {
		query = append(query, "owner_type = :owner_type")
	}
	if pm.ResourceType != "" {
		query = append(query, "resource_type = :resource_type")
	}
	if pm.ResourceID != "" {
		query = append(query, "resource_id = :resource_id")
	}
	if pm.Permission != "" {
		query = append(query, ":permission = ANY (permissions)")
	}

	if len(query) > 0 {
		return fmt.Sprintf("WHERE %s", strings.Join(query, " AND "))
	}

	return ""
}

func order(direction string) string {
	if strings.EqualFold(direction, "desc") {
		return "DESC"
	}

	return "ASC"
}

type dbAuthorization struct {
	ID           string           `db:"id"`
	OwnerID      string           `db:"owner_id"`
	OwnerType    string           `db:"owner_type"`
	ResourceType string           `db:"resource_type"`
	ResourceID   string           `db:"resource_id"`
	Permissions  pgtype.TextArray `db:"permissions"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    sql.NullTime     `db:"updated_at"`
}

func toDBAuthorization(auth authorizations.Authorization) (dbAuthorization, error) {
	var permissions pgtype.TextArray
	if err := permissions.Set(auth.Permissions); err != nil {
		return dbAuthorization{}, err
	}
	var updatedAt sql.NullTime
	if !auth.UpdatedAt.IsZero() {
		updatedAt = sql.NullTime{Time: auth.UpdatedAt, Valid: true}
	}

	return dbAuthorization{
		ID:           auth.ID,
		OwnerID:      auth.OwnerID,
		OwnerType:    auth.OwnerType.String(),
		ResourceType: auth.ResourceType.String(),
		ResourceID:   auth.ResourceID,
		Permissions:  permissions,
		CreatedAt:    auth.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func toAuthorization(dba dbAuthorization) (authorizations.Authorization, error) {
	ownerType, err := authorizations.ToOwnerType(dba.OwnerType)
	if err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	resourceType, err := authorizations.ToResourceType(dba.ResourceType)
	if err != nil {
		return authorizations.Authorization{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
	}
	var permissions []string
	for _, e := range dba.Permissions.Elements {
		permissions = append(permissions, e.String)
	}
	var updatedAt time.Time
	if dba.UpdatedAt.Valid {
		updatedAt = dba.UpdatedAt.Time
	}

	return authorizations.Authorization{
		ID:           dba.ID,
		OwnerID:      dba.OwnerID,
		OwnerType:    ownerType,
		ResourceType: resourceType,
		ResourceID:   dba.ResourceID,
		Permissions:  permissions,
		CreatedAt:    dba.CreatedAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func toDBAuthorizationPage(pm authorizations.Page) dbAuthorizationPage {
	return dbAuthorizationPage{
		Limit:        pm.Limit,
		Offset:       pm.Offset,
		OwnerID:      pm.OwnerID,
		OwnerType:    pm.OwnerType,
		ResourceType: pm.ResourceType,
		ResourceID:   pm.ResourceID,
		Permission:   pm.Permission,
	}
}

type dbAuthorizationPage struct {
	Limit        uint64 `db:"limit"`
	Offset       uint64 `db:"offset"`
	OwnerID      string `db:"owner_id"`
	OwnerType    string `db:"owner_type"`
	ResourceType string `db:"resource_type"`
	ResourceID   string `db:"resource_id"`
	Permission   string `db:"permission"`
}
