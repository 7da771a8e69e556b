// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

// Package checklist holds the fixed fire-shutter inspection item catalog.
// Every inspection record owns exactly one result row per catalog item,
// and result sets are always presented in catalog order.
package checklist

import (
	"fmt"
	"sort"

	"github.com/shutterdesk/inspection-service/internal/types"
)

type Item struct {
	MainCategory   string
	SubCategory    string
	InspectionName string
}

// catalog is ordered; the position of an item defines its display order
// and its "No.N" inspection number.
var catalog = []Item{
	{MainCategory: "Installation", InspectionName: "Obstructions around the shutter opening"},
	{MainCategory: "Installation", InspectionName: "Signage and markings of the closing area"},
	{MainCategory: "Drive mechanism", SubCategory: "Case", InspectionName: "Corrosion and damage of the case"},
	{MainCategory: "Drive mechanism", SubCategory: "Shaft and sprocket", InspectionName: "Deformation and looseness of the winding shaft"},
	{MainCategory: "Drive mechanism", SubCategory: "Shaft and sprocket", InspectionName: "Tension of the chain and sprocket wear"},
	{MainCategory: "Drive mechanism", SubCategory: "Opening and closing device", InspectionName: "Mounting condition of the opening and closing device"},
	{MainCategory: "Drive mechanism", SubCategory: "Opening and closing device", InspectionName: "Abnormal noise during operation"},
	{MainCategory: "Curtain", SubCategory: "Slats and rails", InspectionName: "Deformation and corrosion of slats"},
	{MainCategory: "Curtain", SubCategory: "Slats and rails", InspectionName: "Engagement of slats with guide rails"},
	{MainCategory: "Curtain", SubCategory: "Bottom bar", InspectionName: "Condition of the bottom bar and seat plate"},
	{MainCategory: "Interlock mechanism", SubCategory: "Detector", InspectionName: "Condition of smoke and heat detectors"},
	{MainCategory: "Interlock mechanism", SubCategory: "Control panel", InspectionName: "Operation of the interlock control panel"},
	{MainCategory: "Interlock mechanism", SubCategory: "Emergency power", InspectionName: "Capacity of the emergency power supply"},
	{MainCategory: "Operation", InspectionName: "Closing operation by detector activation"},
	{MainCategory: "Operation", InspectionName: "Closing time and closing force"},
	{MainCategory: "Operation", SubCategory: "Safety device", InspectionName: "Reversal on obstruction detection"},
}

var indexByName = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, item := range catalog {
		m[item.InspectionName] = i
	}
	return m
}()

// Items returns the catalog in order.
func Items() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

// Size is the number of catalog items.
func Size() int {
	return len(catalog)
}

// Index returns the catalog position of an inspection name, or -1 for
// items unknown to the catalog.
func Index(inspectionName string) int {
	if i, ok := indexByName[inspectionName]; ok {
		return i
	}
	return -1
}

// Seed builds the full result template set for a new inspection record:
// one row per catalog item, target applicable, no issue, inspector slot 1.
func Seed(companyID string) []*types.InspectionResult {
	results := make([]*types.InspectionResult, 0, len(catalog))
	for i, item := range catalog {
		results = append(results, &types.InspectionResult{
			CompanyID:        companyID,
			InspectionNumber: fmt.Sprintf("No.%d", i+1),
			MainCategory:     item.MainCategory,
			SubCategory:      item.SubCategory,
			InspectionName:   item.InspectionName,
			TargetExistence:  true,
			InspectionResult: types.ResultNoIssue,
			InspectorNumber:  "1",
		})
	}
	return results
}

// Sort orders result rows by catalog position, in place. Rows whose
// inspection name is not in the catalog sort last, keeping their relative
// input order.
func Sort(results []*types.InspectionResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return sortKey(results[i]) < sortKey(results[j])
	})
}

func sortKey(r *types.InspectionResult) int {
	if i := Index(r.InspectionName); i >= 0 {
		return i
	}
	return len(catalog)
}
