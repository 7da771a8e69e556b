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

var permissionColumns = []string{
	"id", "granter_company_id", "granter_company_name",
	"receiver_company_id", "receiver_company_name", "approval",
	"created_at", "updated_at",
}

func scanPermission(row sq.RowScanner) (*types.CompanyPermission, error) {
	var p types.CompanyPermission
	err := row.Scan(
		&p.ID, &p.GranterCompanyID, &p.GranterCompanyName,
		&p.ReceiverCompanyID, &p.ReceiverCompanyName, &p.Approval,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePermission inserts a grant request. The unique index on
// (granter_company_id, receiver_company_id) turns a duplicate request
// into ErrDuplicateKey with no second row.
func (s *Storage) CreatePermission(ctx context.Context, p *types.CompanyPermission) (*types.CompanyPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePermission")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("company_permissions").
		Columns("id", "granter_company_id", "granter_company_name", "receiver_company_id", "receiver_company_name", "approval").
		Values(id, p.GranterCompanyID, p.GranterCompanyName, p.ReceiverCompanyID, p.ReceiverCompanyName, p.Approval).
		Suffix("RETURNING " + joinColumns(permissionColumns)).
		QueryRowContext(ctx)

	created, err := scanPermission(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert permission: %w", err)
	}

	return created, nil
}

func (s *Storage) GetPermissionByID(ctx context.Context, id string) (*types.CompanyPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPermissionByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(permissionColumns...).
		From("company_permissions").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanPermission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return p, nil
}

func (s *Storage) SetPermissionApproval(ctx context.Context, id string, approval bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetPermissionApproval")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("company_permissions").
		Set("approval", approval).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update permission: %w", err)
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

func (s *Storage) DeletePermission(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePermission")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("company_permissions").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	return nil
}

// ListPermissionsForCompany is bidirectional: every row where the company
// is granter or receiver. The caller partitions by role and approval.
func (s *Storage) ListPermissionsForCompany(ctx context.Context, companyID string) ([]*types.CompanyPermission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionsForCompany")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(permissionColumns...).
		From("company_permissions").
		Where(sq.Or{
			sq.Eq{"granter_company_id": companyID},
			sq.Eq{"receiver_company_id": companyID},
		}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []*types.CompanyPermission
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

// ListApprovedReceiverIDs returns the contractors a management company has
// approved, used to restrict contractor choices during site creation.
func (s *Storage) ListApprovedReceiverIDs(ctx context.Context, granterCompanyID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApprovedReceiverIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("receiver_company_id").
		From("company_permissions").
		Where(sq.Eq{"granter_company_id": granterCompanyID, "approval": true}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list approved receivers: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan receiver id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}
