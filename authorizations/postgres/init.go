// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "authorizations_01",
				// VARCHAR(36) for columns with IDs as UUIDs have a maximum of 36 characters
				Up: []string{
					`CREATE TABLE IF NOT EXISTS authorizations (
						id				VARCHAR(36) PRIMARY KEY,
						owner_id		VARCHAR(254) NOT NULL,
						owner_type		VARCHAR(254) NOT NULL,
						resource_type	VARCHAR(254) NOT NULL,
						resource_id		VARCHAR(254) NOT NULL,
						permissions		TEXT[] NOT NULL,
						created_at		TIMESTAMP NOT NULL,
						updated_at		TIMESTAMP,
						UNIQUE (owner_id, owner_type, resource_type, resource_id)
					)`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS authorizations`,
				},
			},
			{
				Id: "authorizations_02_resource_type_index",
				// Listings are almost always filtered by resource type.
				Up: []string{
					`CREATE INDEX IF NOT EXISTS idx_authorizations_resource_type
						ON authorizations (resource_type)`,
				},
				Down: []string{
					`DROP INDEX IF EXISTS idx_authorizations_resource_type`,
				},
			},
		},
	}
}
