// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"time"

	"github.com/shutterdesk/inspection-service/internal/era"
	"github.com/shutterdesk/inspection-service/internal/types"
)

// Payload is the document the external renderer turns into the two-sheet
// Excel report. Field names are the renderer's contract.
type Payload struct {
	Sheet1 Sheet1 `json:"sheet1"`
	Sheet2 Sheet2 `json:"sheet2"`
}

type Sheet1 struct {
	InspectionRecord  *types.InspectionRecord   `json:"inspection_record"`
	InspectionResults []*types.InspectionResult `json:"inspection_results"`
	Shutter           *types.Shutter            `json:"shutter"`
}

type TodayDate struct {
	TodayEra   string `json:"today_era"`
	TodayYear  int    `json:"today_year"`
	TodayMonth int    `json:"today_month"`
	TodayDay   int    `json:"today_day"`
}

// Sheet2Site is the site block with the certificate dates broken out
// into era fields, which is how the report sheet prints them.
type Sheet2Site struct {
	*types.Site
	ConfirmationCertificateEra   *string `json:"confirmation_certificate_era,omitempty"`
	ConfirmationCertificateYear  *int    `json:"confirmation_certificate_year,omitempty"`
	ConfirmationCertificateMonth *int    `json:"confirmation_certificate_month,omitempty"`
	ConfirmationCertificateDay   *int    `json:"confirmation_certificate_day,omitempty"`
	InspectionCertificateEra     *string `json:"inspection_certificate_era,omitempty"`
	InspectionCertificateYear    *int    `json:"inspection_certificate_year,omitempty"`
	InspectionCertificateMonth   *int    `json:"inspection_certificate_month,omitempty"`
	InspectionCertificateDay     *int    `json:"inspection_certificate_day,omitempty"`
}

type Sheet2 struct {
	Date          TodayDate        `json:"date"`
	LeadInspector *types.Inspector `json:"lead_inspector"`
	SubInspector  *types.Inspector `json:"sub_inspector"`
	Site          *Sheet2Site      `json:"site"`
}

// eraFields splits a YYYY-MM-DD string into era pointers. Unset or
// malformed dates yield nil fields, and the sheet leaves them blank.
func eraFields(date *string) (*string, *int, *int, *int) {
	if date == nil {
		return nil, nil, nil, nil
	}
	t, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return nil, nil, nil, nil
	}
	d := era.FromTime(t)
	return &d.Era, &d.Year, &d.Month, &d.Day
}

// BuildPayload assembles the renderer document. Pure: everything it
// prints comes from its arguments, today's date included.
func BuildPayload(
	record *types.InspectionRecord,
	results []*types.InspectionResult,
	shutter *types.Shutter,
	site *types.Site,
	leadInspector *types.Inspector,
	subInspector *types.Inspector,
	now time.Time,
) *Payload {
	today := era.FromTime(now)

	s2site := &Sheet2Site{Site: site}
	s2site.ConfirmationCertificateEra, s2site.ConfirmationCertificateYear,
		s2site.ConfirmationCertificateMonth, s2site.ConfirmationCertificateDay =
		eraFields(site.ConfirmationCertificateDate)
	s2site.InspectionCertificateEra, s2site.InspectionCertificateYear,
		s2site.InspectionCertificateMonth, s2site.InspectionCertificateDay =
		eraFields(site.InspectionCertificateDate)

	return &Payload{
		Sheet1: Sheet1{
			InspectionRecord:  record,
			InspectionResults: results,
			Shutter:           shutter,
		},
		Sheet2: Sheet2{
			Date: TodayDate{
				TodayEra:   today.Era,
				TodayYear:  today.Year,
				TodayMonth: today.Month,
				TodayDay:   today.Day,
			},
			LeadInspector: leadInspector,
			SubInspector:  subInspector,
			Site:          s2site,
		},
	}
}
