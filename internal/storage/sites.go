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

var siteColumns = []string{
	"id", "company_id", "name", "furigana", "address", "purpose",
	"owner_name", "owner_furigana", "owner_post_number", "owner_address", "owner_phone_number",
	"manager_name", "manager_furigana", "manager_post_number", "manager_address", "manager_phone_number",
	"num_floors_above", "num_floors_below", "building_area", "total_floor_area",
	"confirmation_certificate_date", "confirmation_certificate_number",
	"is_confirmation_by_building_officer", "is_confirmation_by_agency", "confirmation_agency_name",
	"inspection_certificate_date", "inspection_certificate_number",
	"is_inspection_by_building_officer", "is_inspection_by_agency", "inspection_agency_name",
	"uses_zone_evacuation_safety_method", "zone_evacuation_floor",
	"uses_floor_evacuation_safety_method", "floor_evacuation_floor",
	"uses_full_building_evacuation_method", "evacuation_safety_method", "evacuation_safety_method_other",
	"has_fire_door", "fire_door_count", "has_fire_shutter", "fire_shutter_count",
	"has_fireproof_screen", "fireproof_screen_count", "has_drencher", "drencher_count",
	"has_other_fire_equipment", "other_fire_equipment_count",
	"created_at", "updated_at",
}

// siteFieldMap pairs every mutable column with its value, in siteColumns
// order, for inserts and full updates.
func siteFieldMap(s *types.Site) map[string]interface{} {
	return map[string]interface{}{
		"company_id":                           s.CompanyID,
		"name":                                 s.Name,
		"furigana":                             s.Furigana,
		"address":                              s.Address,
		"purpose":                              s.Purpose,
		"owner_name":                           s.OwnerName,
		"owner_furigana":                       s.OwnerFurigana,
		"owner_post_number":                    s.OwnerPostNumber,
		"owner_address":                        s.OwnerAddress,
		"owner_phone_number":                   s.OwnerPhoneNumber,
		"manager_name":                         s.ManagerName,
		"manager_furigana":                     s.ManagerFurigana,
		"manager_post_number":                  s.ManagerPostNumber,
		"manager_address":                      s.ManagerAddress,
		"manager_phone_number":                 s.ManagerPhoneNumber,
		"num_floors_above":                     s.NumFloorsAbove,
		"num_floors_below":                     s.NumFloorsBelow,
		"building_area":                        s.BuildingArea,
		"total_floor_area":                     s.TotalFloorArea,
		"confirmation_certificate_date":        s.ConfirmationCertificateDate,
		"confirmation_certificate_number":      s.ConfirmationCertificateNumber,
		"is_confirmation_by_building_officer":  s.IsConfirmationByBuildingOfficer,
		"is_confirmation_by_agency":            s.IsConfirmationByAgency,
		"confirmation_agency_name":             s.ConfirmationAgencyName,
		"inspection_certificate_date":          s.InspectionCertificateDate,
		"inspection_certificate_number":        s.InspectionCertificateNumber,
		"is_inspection_by_building_officer":    s.IsInspectionByBuildingOfficer,
		"is_inspection_by_agency":              s.IsInspectionByAgency,
		"inspection_agency_name":               s.InspectionAgencyName,
		"uses_zone_evacuation_safety_method":   s.UsesZoneEvacuationSafetyMethod,
		"zone_evacuation_floor":                s.ZoneEvacuationFloor,
		"uses_floor_evacuation_safety_method":  s.UsesFloorEvacuationSafetyMethod,
		"floor_evacuation_floor":               s.FloorEvacuationFloor,
		"uses_full_building_evacuation_method": s.UsesFullBuildingEvacuationMethod,
		"evacuation_safety_method":             s.EvacuationSafetyMethod,
		"evacuation_safety_method_other":       s.EvacuationSafetyMethodOther,
		"has_fire_door":                        s.HasFireDoor,
		"fire_door_count":                      s.FireDoorCount,
		"has_fire_shutter":                     s.HasFireShutter,
		"fire_shutter_count":                   s.FireShutterCount,
		"has_fireproof_screen":                 s.HasFireproofScreen,
		"fireproof_screen_count":               s.FireproofScreenCount,
		"has_drencher":                         s.HasDrencher,
		"drencher_count":                       s.DrencherCount,
		"has_other_fire_equipment":             s.HasOtherFireEquipment,
		"other_fire_equipment_count":           s.OtherFireEquipmentCnt,
	}
}

func scanSite(row sq.RowScanner) (*types.Site, error) {
	var s types.Site
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Furigana, &s.Address, &s.Purpose,
		&s.OwnerName, &s.OwnerFurigana, &s.OwnerPostNumber, &s.OwnerAddress, &s.OwnerPhoneNumber,
		&s.ManagerName, &s.ManagerFurigana, &s.ManagerPostNumber, &s.ManagerAddress, &s.ManagerPhoneNumber,
		&s.NumFloorsAbove, &s.NumFloorsBelow, &s.BuildingArea, &s.TotalFloorArea,
		&s.ConfirmationCertificateDate, &s.ConfirmationCertificateNumber,
		&s.IsConfirmationByBuildingOfficer, &s.IsConfirmationByAgency, &s.ConfirmationAgencyName,
		&s.InspectionCertificateDate, &s.InspectionCertificateNumber,
		&s.IsInspectionByBuildingOfficer, &s.IsInspectionByAgency, &s.InspectionAgencyName,
		&s.UsesZoneEvacuationSafetyMethod, &s.ZoneEvacuationFloor,
		&s.UsesFloorEvacuationSafetyMethod, &s.FloorEvacuationFloor,
		&s.UsesFullBuildingEvacuationMethod, &s.EvacuationSafetyMethod, &s.EvacuationSafetyMethodOther,
		&s.HasFireDoor, &s.FireDoorCount, &s.HasFireShutter, &s.FireShutterCount,
		&s.HasFireproofScreen, &s.FireproofScreenCount, &s.HasDrencher, &s.DrencherCount,
		&s.HasOtherFireEquipment, &s.OtherFireEquipmentCnt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Storage) CreateSite(ctx context.Context, site *types.Site) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSite")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	fields := siteFieldMap(site)
	columns := make([]string, 0, len(fields)+1)
	values := make([]interface{}, 0, len(fields)+1)
	columns = append(columns, "id")
	values = append(values, id)
	// Range over siteColumns for deterministic statement text.
	for _, col := range siteColumns {
		if v, ok := fields[col]; ok {
			columns = append(columns, col)
			values = append(values, v)
		}
	}

	row := s.db.Statement(ctx).
		Insert("sites").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING " + joinColumns(siteColumns)).
		QueryRowContext(ctx)

	created, err := scanSite(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert site: %w", err)
	}

	return created, nil
}

func (s *Storage) GetSiteByID(ctx context.Context, id string) (*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSiteByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(siteColumns...).
		From("sites").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	site, err := scanSite(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}

	return site, nil
}

func (s *Storage) ListSitesByOwner(ctx context.Context, companyID string) ([]*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSitesByOwner")
	defer span.End()

	return s.listSites(ctx, sq.Eq{"company_id": companyID})
}

// ListSitesByIDs fetches the given sites; unknown ids are skipped, an
// empty id set short-circuits to an empty list.
func (s *Storage) ListSitesByIDs(ctx context.Context, ids []string) ([]*types.Site, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSitesByIDs")
	defer span.End()

	if len(ids) == 0 {
		return []*types.Site{}, nil
	}

	return s.listSites(ctx, sq.Eq{"id": ids})
}

func (s *Storage) listSites(ctx context.Context, pred interface{}) ([]*types.Site, error) {
	rows, err := s.db.Statement(ctx).
		Select(siteColumns...).
		From("sites").
		Where(pred).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []*types.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return sites, nil
}

func (s *Storage) UpdateSite(ctx context.Context, site *types.Site) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSite")
	defer span.End()

	fields := siteFieldMap(site)
	delete(fields, "company_id") // ownership never moves
	fields["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).
		Update("sites").
		SetMap(fields).
		Where(sq.Eq{"id": site.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update site: %w", err)
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

// DeleteSite removes the site; shutters, join rows and inspection data
// under it go with it through the schema's cascade rules.
func (s *Storage) DeleteSite(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSite")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("sites").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete site: %w", err)
	}
	return nil
}

func (s *Storage) CreateSiteCompany(ctx context.Context, siteID, companyID string) (*types.SiteCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSiteCompany")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var sc types.SiteCompany
	err = s.db.Statement(ctx).
		Insert("site_companies").
		Columns("id", "site_id", "company_id").
		Values(id, siteID, companyID).
		Suffix("RETURNING id, site_id, company_id, created_at").
		QueryRowContext(ctx).
		Scan(&sc.ID, &sc.SiteID, &sc.CompanyID, &sc.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to attach company to site: %w", err)
	}

	return &sc, nil
}

func (s *Storage) ListSiteCompanies(ctx context.Context, siteID string) ([]*types.SiteCompany, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSiteCompanies")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "site_id", "company_id", "created_at").
		From("site_companies").
		Where(sq.Eq{"site_id": siteID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list site companies: %w", err)
	}
	defer rows.Close()

	var attachments []*types.SiteCompany
	for rows.Next() {
		var sc types.SiteCompany
		if err := rows.Scan(&sc.ID, &sc.SiteID, &sc.CompanyID, &sc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site company: %w", err)
		}
		attachments = append(attachments, &sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return attachments, nil
}

// ListSiteIDsByCompany resolves the site ids a company is attached to,
// the first half of the contractor fan-out.
func (s *Storage) ListSiteIDsByCompany(ctx context.Context, companyID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSiteIDsByCompany")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("site_id").
		From("site_companies").
		Where(sq.Eq{"company_id": companyID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list site ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan site id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) DeleteSiteCompany(ctx context.Context, siteID, companyID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSiteCompany")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("site_companies").
		Where(sq.Eq{"site_id": siteID, "company_id": companyID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to detach company from site: %w", err)
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
