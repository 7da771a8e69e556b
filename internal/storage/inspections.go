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

var inspectionRecordColumns = []string{
	"id", "company_id", "shutter_id", "inspection_date",
	"lead_inspector", "lead_inspector_id",
	"sub_inspector_1", "sub_inspector_id_1",
	"sub_inspector_2", "sub_inspector_id_2",
	"special_note", "created_at", "updated_at",
}

var inspectionResultColumns = []string{
	"id", "company_id", "inspection_record_id", "inspection_number",
	"main_category", "sub_category", "inspection_name",
	"target_existence", "inspection_result", "situation_measures",
	"inspector_number", "created_at", "updated_at",
}

func scanInspectionRecord(row sq.RowScanner) (*types.InspectionRecord, error) {
	var r types.InspectionRecord
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.ShutterID, &r.InspectionDate,
		&r.LeadInspector, &r.LeadInspectorID,
		&r.SubInspector1, &r.SubInspectorID1,
		&r.SubInspector2, &r.SubInspectorID2,
		&r.SpecialNote, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanInspectionResult(row sq.RowScanner) (*types.InspectionResult, error) {
	var r types.InspectionResult
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.InspectionRecordID, &r.InspectionNumber,
		&r.MainCategory, &r.SubCategory, &r.InspectionName,
		&r.TargetExistence, &r.InspectionResult, &r.SituationMeasures,
		&r.InspectorNumber, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateInspectionRecord inserts a record. The unique index on
// (shutter_id, inspection_date) surfaces as ErrDuplicateKey when a second
// record targets the same shutter and date.
func (s *Storage) CreateInspectionRecord(ctx context.Context, r *types.InspectionRecord) (*types.InspectionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInspectionRecord")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("inspection_records").
		Columns(
			"id", "company_id", "shutter_id", "inspection_date",
			"lead_inspector", "lead_inspector_id",
			"sub_inspector_1", "sub_inspector_id_1",
			"sub_inspector_2", "sub_inspector_id_2",
			"special_note",
		).
		Values(
			id, r.CompanyID, r.ShutterID, r.InspectionDate,
			r.LeadInspector, r.LeadInspectorID,
			r.SubInspector1, r.SubInspectorID1,
			r.SubInspector2, r.SubInspectorID2,
			r.SpecialNote,
		).
		Suffix("RETURNING " + joinColumns(inspectionRecordColumns)).
		QueryRowContext(ctx)

	created, err := scanInspectionRecord(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert inspection record: %w", err)
	}

	return created, nil
}

func (s *Storage) GetInspectionRecordByID(ctx context.Context, id string) (*types.InspectionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInspectionRecordByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(inspectionRecordColumns...).
		From("inspection_records").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	r, err := scanInspectionRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inspection record: %w", err)
	}

	return r, nil
}

// ListInspectionRecordsByShutter returns records newest inspection first.
func (s *Storage) ListInspectionRecordsByShutter(ctx context.Context, shutterID string) ([]*types.InspectionRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInspectionRecordsByShutter")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inspectionRecordColumns...).
		From("inspection_records").
		Where(sq.Eq{"shutter_id": shutterID}).
		OrderBy("inspection_date DESC").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list inspection records: %w", err)
	}
	defer rows.Close()

	var records []*types.InspectionRecord
	for rows.Next() {
		r, err := scanInspectionRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func (s *Storage) UpdateInspectionRecord(ctx context.Context, r *types.InspectionRecord) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInspectionRecord")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("inspection_records").
		SetMap(map[string]interface{}{
			"inspection_date":    r.InspectionDate,
			"lead_inspector":     r.LeadInspector,
			"lead_inspector_id":  r.LeadInspectorID,
			"sub_inspector_1":    r.SubInspector1,
			"sub_inspector_id_1": r.SubInspectorID1,
			"sub_inspector_2":    r.SubInspector2,
			"sub_inspector_id_2": r.SubInspectorID2,
			"special_note":       r.SpecialNote,
			"updated_at":         sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": r.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update inspection record: %w", err)
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

func (s *Storage) DeleteInspectionRecord(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInspectionRecord")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("inspection_records").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete inspection record: %w", err)
	}
	return nil
}

func (s *Storage) CreateInspectionResult(ctx context.Context, r *types.InspectionResult) (*types.InspectionResult, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInspectionResult")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("inspection_results").
		Columns(
			"id", "company_id", "inspection_record_id", "inspection_number",
			"main_category", "sub_category", "inspection_name",
			"target_existence", "inspection_result", "situation_measures",
			"inspector_number",
		).
		Values(
			id, r.CompanyID, r.InspectionRecordID, r.InspectionNumber,
			r.MainCategory, r.SubCategory, r.InspectionName,
			r.TargetExistence, r.InspectionResult, r.SituationMeasures,
			r.InspectorNumber,
		).
		Suffix("RETURNING " + joinColumns(inspectionResultColumns)).
		QueryRowContext(ctx)

	created, err := scanInspectionResult(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert inspection result: %w", err)
	}

	return created, nil
}

func (s *Storage) ListInspectionResultsByRecord(ctx context.Context, recordID string) ([]*types.InspectionResult, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInspectionResultsByRecord")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inspectionResultColumns...).
		From("inspection_results").
		Where(sq.Eq{"inspection_record_id": recordID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list inspection results: %w", err)
	}
	defer rows.Close()

	var results []*types.InspectionResult
	for rows.Next() {
		r, err := scanInspectionResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}

// UpdateInspectionResult touches the mutable judgement fields only; the
// checklist identity columns never change after seeding.
func (s *Storage) UpdateInspectionResult(ctx context.Context, r *types.InspectionResult) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateInspectionResult")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("inspection_results").
		SetMap(map[string]interface{}{
			"target_existence":   r.TargetExistence,
			"inspection_result":  r.InspectionResult,
			"situation_measures": r.SituationMeasures,
			"inspector_number":   r.InspectorNumber,
			"updated_at":         sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": r.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update inspection result: %w", err)
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

func (s *Storage) DeleteInspectionResultsByRecord(ctx context.Context, recordID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInspectionResultsByRecord")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("inspection_results").
		Where(sq.Eq{"inspection_record_id": recordID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete inspection results: %w", err)
	}
	return nil
}
