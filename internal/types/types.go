// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Company types. A company is the tenant; its id doubles as the
// authenticated principal id.
const (
	CompanyTypeManagement = "management"
	CompanyTypeContractor = "contractor"
)

type Company struct {
	ID                   string    `db:"id" json:"id"`
	Name                 string    `db:"name" json:"name"`
	RepresentativeName   string    `db:"representative_name" json:"representative_name"`
	Type                 string    `db:"type" json:"type"`
	CanAccessSettingPage bool      `db:"can_access_setting_page" json:"can_access_setting_page"`
	PageLockPassword     *string   `db:"page_lock_password" json:"-"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// CompanyPermission is a directed grant: a contractor (receiver) asks a
// management company (granter) for access; the granter flips approval.
// Company names are point-in-time snapshots, not live joins.
type CompanyPermission struct {
	ID                  string    `db:"id" json:"id"`
	GranterCompanyID    string    `db:"granter_company_id" json:"granter_company_id"`
	GranterCompanyName  string    `db:"granter_company_name" json:"granter_company_name"`
	ReceiverCompanyID   string    `db:"receiver_company_id" json:"receiver_company_id"`
	ReceiverCompanyName string    `db:"receiver_company_name" json:"receiver_company_name"`
	Approval            bool      `db:"approval" json:"approval"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type Site struct {
	ID        string `db:"id" json:"id"`
	CompanyID string `db:"company_id" json:"company_id"`

	Name     string  `db:"name" json:"name"`
	Furigana *string `db:"furigana" json:"furigana,omitempty"`
	Address  string  `db:"address" json:"address"`
	Purpose  *string `db:"purpose" json:"purpose,omitempty"`

	OwnerName        string  `db:"owner_name" json:"owner_name"`
	OwnerFurigana    *string `db:"owner_furigana" json:"owner_furigana,omitempty"`
	OwnerPostNumber  *string `db:"owner_post_number" json:"owner_post_number,omitempty"`
	OwnerAddress     string  `db:"owner_address" json:"owner_address"`
	OwnerPhoneNumber *string `db:"owner_phone_number" json:"owner_phone_number,omitempty"`

	ManagerName        *string `db:"manager_name" json:"manager_name,omitempty"`
	ManagerFurigana    *string `db:"manager_furigana" json:"manager_furigana,omitempty"`
	ManagerPostNumber  *string `db:"manager_post_number" json:"manager_post_number,omitempty"`
	ManagerAddress     *string `db:"manager_address" json:"manager_address,omitempty"`
	ManagerPhoneNumber *string `db:"manager_phone_number" json:"manager_phone_number,omitempty"`

	NumFloorsAbove *int     `db:"num_floors_above" json:"num_floors_above,omitempty"`
	NumFloorsBelow *int     `db:"num_floors_below" json:"num_floors_below,omitempty"`
	BuildingArea   *float64 `db:"building_area" json:"building_area,omitempty"`
	TotalFloorArea *float64 `db:"total_floor_area" json:"total_floor_area,omitempty"`

	// Certificate dates are YYYY-MM-DD strings; the export bridge derives
	// Japanese-era fields from them.
	ConfirmationCertificateDate      *string `db:"confirmation_certificate_date" json:"confirmation_certificate_date,omitempty"`
	ConfirmationCertificateNumber    *string `db:"confirmation_certificate_number" json:"confirmation_certificate_number,omitempty"`
	IsConfirmationByBuildingOfficer  *bool   `db:"is_confirmation_by_building_officer" json:"is_confirmation_by_building_officer,omitempty"`
	IsConfirmationByAgency           *bool   `db:"is_confirmation_by_agency" json:"is_confirmation_by_agency,omitempty"`
	ConfirmationAgencyName           *string `db:"confirmation_agency_name" json:"confirmation_agency_name,omitempty"`
	InspectionCertificateDate        *string `db:"inspection_certificate_date" json:"inspection_certificate_date,omitempty"`
	InspectionCertificateNumber      *string `db:"inspection_certificate_number" json:"inspection_certificate_number,omitempty"`
	IsInspectionByBuildingOfficer    *bool   `db:"is_inspection_by_building_officer" json:"is_inspection_by_building_officer,omitempty"`
	IsInspectionByAgency             *bool   `db:"is_inspection_by_agency" json:"is_inspection_by_agency,omitempty"`
	InspectionAgencyName             *string `db:"inspection_agency_name" json:"inspection_agency_name,omitempty"`
	UsesZoneEvacuationSafetyMethod   *bool   `db:"uses_zone_evacuation_safety_method" json:"uses_zone_evacuation_safety_method,omitempty"`
	ZoneEvacuationFloor              *int    `db:"zone_evacuation_floor" json:"zone_evacuation_floor,omitempty"`
	UsesFloorEvacuationSafetyMethod  *bool   `db:"uses_floor_evacuation_safety_method" json:"uses_floor_evacuation_safety_method,omitempty"`
	FloorEvacuationFloor             *int    `db:"floor_evacuation_floor" json:"floor_evacuation_floor,omitempty"`
	UsesFullBuildingEvacuationMethod *bool   `db:"uses_full_building_evacuation_method" json:"uses_full_building_evacuation_method,omitempty"`
	EvacuationSafetyMethod           *bool   `db:"evacuation_safety_method" json:"evacuation_safety_method,omitempty"`
	EvacuationSafetyMethodOther      *string `db:"evacuation_safety_method_other" json:"evacuation_safety_method_other,omitempty"`

	HasFireDoor           *bool `db:"has_fire_door" json:"has_fire_door,omitempty"`
	FireDoorCount         *int  `db:"fire_door_count" json:"fire_door_count,omitempty"`
	HasFireShutter        *bool `db:"has_fire_shutter" json:"has_fire_shutter,omitempty"`
	FireShutterCount      *int  `db:"fire_shutter_count" json:"fire_shutter_count,omitempty"`
	HasFireproofScreen    *bool `db:"has_fireproof_screen" json:"has_fireproof_screen,omitempty"`
	FireproofScreenCount  *int  `db:"fireproof_screen_count" json:"fireproof_screen_count,omitempty"`
	HasDrencher           *bool `db:"has_drencher" json:"has_drencher,omitempty"`
	DrencherCount         *int  `db:"drencher_count" json:"drencher_count,omitempty"`
	HasOtherFireEquipment *bool `db:"has_other_fire_equipment" json:"has_other_fire_equipment,omitempty"`
	OtherFireEquipmentCnt *int  `db:"other_fire_equipment_count" json:"other_fire_equipment_count,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// SiteCompany attaches a company to a site. The contractor assignment
// lives here, not on Site, so it can be swapped without touching the site.
type SiteCompany struct {
	ID        string    `db:"id" json:"id"`
	SiteID    string    `db:"site_id" json:"site_id"`
	CompanyID string    `db:"company_id" json:"company_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Shutter struct {
	ID                   string    `db:"id" json:"id"`
	CompanyID            string    `db:"company_id" json:"company_id"`
	SiteID               string    `db:"site_id" json:"site_id"`
	Name                 string    `db:"name" json:"name"`
	ModelNumber          *string   `db:"model_number" json:"model_number,omitempty"`
	Width                *string   `db:"width" json:"width,omitempty"`
	Height               *string   `db:"height" json:"height,omitempty"`
	UsageCount           *int      `db:"usage_count" json:"usage_count,omitempty"`
	InstallationLocation *string   `db:"installation_location" json:"installation_location,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

type Inspector struct {
	ID                            string    `db:"id" json:"id"`
	CompanyID                     string    `db:"company_id" json:"company_id"`
	Name                          string    `db:"name" json:"name"`
	Furigana                      string    `db:"furigana" json:"furigana"`
	InspectorNumber               *string   `db:"inspector_number" json:"inspector_number,omitempty"`
	ArchitectName                 *string   `db:"architect_name" json:"architect_name,omitempty"`
	ArchitectRegistrationName     *string   `db:"architect_registration_name" json:"architect_registration_name,omitempty"`
	ArchitectRegistrationNumber   *string   `db:"architect_registration_number" json:"architect_registration_number,omitempty"`
	FireProtectionInspectorNumber *string   `db:"fire_protection_inspector_number" json:"fire_protection_inspector_number,omitempty"`
	WorkplaceName                 string    `db:"workplace_name" json:"workplace_name"`
	ArchitectOfficeName           *string   `db:"architect_office_name" json:"architect_office_name,omitempty"`
	GovernorRegistrationName      *string   `db:"governor_registration_name" json:"governor_registration_name,omitempty"`
	GovernorRegistrationNumber    *string   `db:"governor_registration_number" json:"governor_registration_number,omitempty"`
	PostNumber                    string    `db:"post_number" json:"post_number"`
	Address                       string    `db:"address" json:"address"`
	PhoneNumber                   string    `db:"phone_number" json:"phone_number"`
	CreatedAt                     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                     time.Time `db:"updated_at" json:"updated_at"`
}

// InspectionRecord is one inspection of one shutter on one date.
// Inspector names are snapshots taken at creation or edit time.
type InspectionRecord struct {
	ID              string    `db:"id" json:"id"`
	CompanyID       string    `db:"company_id" json:"company_id"`
	ShutterID       string    `db:"shutter_id" json:"shutter_id"`
	InspectionDate  string    `db:"inspection_date" json:"inspection_date"`
	LeadInspector   string    `db:"lead_inspector" json:"lead_inspector"`
	LeadInspectorID string    `db:"lead_inspector_id" json:"lead_inspector_id"`
	SubInspector1   *string   `db:"sub_inspector_1" json:"sub_inspector_1,omitempty"`
	SubInspectorID1 *string   `db:"sub_inspector_id_1" json:"sub_inspector_id_1,omitempty"`
	SubInspector2   *string   `db:"sub_inspector_2" json:"sub_inspector_2,omitempty"`
	SubInspectorID2 *string   `db:"sub_inspector_id_2" json:"sub_inspector_id_2,omitempty"`
	SpecialNote     *string   `db:"special_note" json:"special_note,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Inspection result outcomes.
const (
	ResultNoIssue               = "no_issue"
	ResultNeedsCorrection       = "needs_correction"
	ResultAlert                 = "alert"
	ResultExistingNonCompliance = "existing_non_compliance"
)

type InspectionResult struct {
	ID                 string    `db:"id" json:"id"`
	CompanyID          string    `db:"company_id" json:"company_id"`
	InspectionRecordID string    `db:"inspection_record_id" json:"inspection_record_id"`
	InspectionNumber   string    `db:"inspection_number" json:"inspection_number"`
	MainCategory       string    `db:"main_category" json:"main_category"`
	SubCategory        string    `db:"sub_category" json:"sub_category"`
	InspectionName     string    `db:"inspection_name" json:"inspection_name"`
	TargetExistence    bool      `db:"target_existence" json:"target_existence"`
	InspectionResult   string    `db:"inspection_result" json:"inspection_result"`
	SituationMeasures  string    `db:"situation_measures" json:"situation_measures"`
	InspectorNumber    string    `db:"inspector_number" json:"inspector_number"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
