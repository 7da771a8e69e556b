// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/shutterdesk/inspection-service/internal/types"
)

var companyColumns = []string{
	"id", "name", "representative_name", "type",
	"can_access_setting_page", "page_lock_password",
	"created_at", "updated_at",
}

func scanCompany(row sq.RowScanner) (*types.Company, error) {
	var c types.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.RepresentativeName, &c.Type,
		&c.CanAccessSettingPage, &c.PageLockPassword,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts a company. The caller may supply the id (it
// doubles as the auth principal id); otherwise a v7 uuid is minted.
func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id := c.ID
	if id == "" {
		var err error
		if id, err = newID(); err != nil {
			return nil, err
		}
	}

	row := s.db.Statement(ctx).
		Insert("companies").
		Columns("id", "name", "representative_name", "type", "can_access_setting_page", "page_lock_password").
		Values(id, c.Name, c.RepresentativeName, c.Type, c.CanAccessSettingPage, c.PageLockPassword).
		Suffix("RETURNING " + joinColumns(companyColumns)).
		QueryRowContext(ctx)

	created, err := scanCompany(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return created, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(companyColumns...).
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// ListCompanies returns all companies, optionally filtered by type.
func (s *Storage) ListCompanies(ctx context.Context, companyType string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanies")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(companyColumns...).
		From("companies").
		OrderBy("name")

	if companyType != "" {
		query = query.Where(sq.Eq{"type": companyType})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

// UpdateCompany updates only the fields named in paths, PATCH semantics.
func (s *Storage) UpdateCompany(ctx context.Context, c *types.Company, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompany")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = c.Name
		case "representative_name":
			updateMap["representative_name"] = c.RepresentativeName
		case "can_access_setting_page":
			updateMap["can_access_setting_page"] = c.CanAccessSettingPage
		case "page_lock_password":
			updateMap["page_lock_password"] = c.PageLockPassword
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("companies").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
