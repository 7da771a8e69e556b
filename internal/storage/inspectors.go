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

var inspectorColumns = []string{
	"id", "company_id", "name", "furigana", "inspector_number",
	"architect_name", "architect_registration_name", "architect_registration_number",
	"fire_protection_inspector_number", "workplace_name", "architect_office_name",
	"governor_registration_name", "governor_registration_number",
	"post_number", "address", "phone_number",
	"created_at", "updated_at",
}

func scanInspector(row sq.RowScanner) (*types.Inspector, error) {
	var i types.Inspector
	err := row.Scan(
		&i.ID, &i.CompanyID, &i.Name, &i.Furigana, &i.InspectorNumber,
		&i.ArchitectName, &i.ArchitectRegistrationName, &i.ArchitectRegistrationNumber,
		&i.FireProtectionInspectorNumber, &i.WorkplaceName, &i.ArchitectOfficeName,
		&i.GovernorRegistrationName, &i.GovernorRegistrationNumber,
		&i.PostNumber, &i.Address, &i.PhoneNumber,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func inspectorFieldMap(i *types.Inspector) map[string]interface{} {
	return map[string]interface{}{
		"name":                             i.Name,
		"furigana":                         i.Furigana,
		"inspector_number":                 i.InspectorNumber,
		"architect_name":                   i.ArchitectName,
		"architect_registration_name":      i.ArchitectRegistrationName,
		"architect_registration_number":    i.ArchitectRegistrationNumber,
		"fire_protection_inspector_number": i.FireProtectionInspectorNumber,
		"workplace_name":                   i.WorkplaceName,
		"architect_office_name":            i.ArchitectOfficeName,
		"governor_registration_name":       i.GovernorRegistrationName,
		"governor_registration_number":     i.GovernorRegistrationNumber,
		"post_number":                      i.PostNumber,
		"address":                          i.Address,
		"phone_number":                     i.PhoneNumber,
	}
}

func (s *Storage) CreateInspector(ctx context.Context, i *types.Inspector) (*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInspector")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	fields := inspectorFieldMap(i)
	columns := make([]string, 0, len(fields)+2)
	values := make([]interface{}, 0, len(fields)+2)
	columns = append(columns, "id", "company_id")
	values = append(values, id, i.CompanyID)
	for _, col := range inspectorColumns {
		if v, ok := fields[col]; ok {
			columns = append(columns, col)
			values = append(values, v)
		}
	}

	row := s.db.Statement(ctx).
		Insert("inspectors").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + joinColumns(inspectorColumns)).
		QueryRowContext(ctx)

	created, err := scanInspector(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert inspector: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInspectorByID(ctx context.Context, id string) (*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInspectorByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(inspectorColumns...).
		From("inspectors").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	i, err := scanInspector(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inspector: %w", err)
	}

	return i, nil
}

func (s *Storage) ListInspectorsByCompany(ctx context.Context, companyID string) ([]*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInspectorsByCompany")
	defer span.End()

	return s.listInspectors(ctx, sq.Eq{"company_id": companyID})
}

// ListInspectorsByIDs fetches the named inspectors; the caller reorders
// as needed since the database gives no guarantee matching the input.
func (s *Storage) ListInspectorsByIDs(ctx context.Context, ids []string) ([]*types.Inspector, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInspectorsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*types.Inspector{}, nil
	}

	return s.listInspectors(ctx, sq.Eq{"id": ids})
}

func (s *Storage) listInspectors(ctx context.Context, pred interface{}) ([]*types.Inspector, error) {
	rows, err := s.db.Statement(ctx).
		Select(inspectorColumns...).
		From("inspectors").
		Where(pred).
		OrderBy("furigana").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list inspectors: %w", err)
	}
	defer rows.Close()

	var inspectors []*types.Inspector
	for rows.Next() {
		i, err := scanInspector(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspector: %w", err)
		}
		inspectors = append(inspectors, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return inspectors, nil
}

func (s *Storage) UpdateInspector(ctx context.Context, i *types.Inspector) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInspector")
	defer span.End()

	fields := inspectorFieldMap(i)
	fields["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("inspectors").
		SetMap(fields).
		Where(sq.Eq{"id": i.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update inspector: %w", err)
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

func (s *Storage) DeleteInspector(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInspector")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("inspectors").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete inspector: %w", err)
	}
	return nil
}
