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

var shutterColumns = []string{
	"id", "company_id", "site_id", "name", "model_number",
	"width", "height", "usage_count", "installation_location",
	"created_at", "updated_at",
}

func scanShutter(row sq.RowScanner) (*types.Shutter, error) {
	var sh types.Shutter
	err := row.Scan(
		&sh.ID, &sh.CompanyID, &sh.SiteID, &sh.Name, &sh.ModelNumber,
		&sh.Width, &sh.Height, &sh.UsageCount, &sh.InstallationLocation,
		&sh.CreatedAt, &sh.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (s *Storage) CreateShutter(ctx context.Context, sh *types.Shutter) (*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateShutter")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("shutters").
		Columns("id", "company_id", "site_id", "name", "model_number", "width", "height", "usage_count", "installation_location").
		Values(id, sh.CompanyID, sh.SiteID, sh.Name, sh.ModelNumber, sh.Width, sh.Height, sh.UsageCount, sh.InstallationLocation).
		Suffix("RETURNING " + joinColumns(shutterColumns)).
		QueryRowContext(ctx)

	created, err := scanShutter(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert shutter: %w", err)
	}

	return created, nil
}

func (s *Storage) GetShutterByID(ctx context.Context, id string) (*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetShutterByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(shutterColumns...).
		From("shutters").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	sh, err := scanShutter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shutter: %w", err)
	}

	return sh, nil
}

func (s *Storage) ListShuttersBySite(ctx context.Context, siteID string) ([]*types.Shutter, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListShuttersBySite")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(shutterColumns...).
		From("shutters").
		Where(sq.Eq{"site_id": siteID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list shutters: %w", err)
	}
	defer rows.Close()

	var shutters []*types.Shutter
	for rows.Next() {
		sh, err := scanShutter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shutter: %w", err)
		}
		shutters = append(shutters, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return shutters, nil
}

func (s *Storage) UpdateShutter(ctx context.Context, sh *types.Shutter) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateShutter")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("shutters").
		SetMap(map[string]interface{}{
			"name":                  sh.Name,
			"model_number":          sh.ModelNumber,
			"width":                 sh.Width,
			"height":                sh.Height,
			"usage_count":           sh.UsageCount,
			"installation_location": sh.InstallationLocation,
			"updated_at":            sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": sh.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update shutter: %w", err)
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

func (s *Storage) DeleteShutter(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteShutter")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("shutters").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete shutter: %w", err)
	}
	return nil
}
