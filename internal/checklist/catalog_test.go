// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package checklist

import (
	"fmt"
	"testing"

	"github.com/shutterdesk/inspection-service/internal/types"
)

func TestSeedMirrorsCatalog(t *testing.T) {
	results := Seed("company-1")

	if len(results) != Size() {
		t.Fatalf("expected %d seeded results, got %d", Size(), len(results))
	}

	for i, r := range results {
		item := Items()[i]
		if r.InspectionName != item.InspectionName {
			t.Errorf("row %d: expected %q, got %q", i, item.InspectionName, r.InspectionName)
		}
		if r.InspectionNumber != fmt.Sprintf("No.%d", i+1) {
			t.Errorf("row %d: unexpected inspection number %q", i, r.InspectionNumber)
		}
		if r.InspectionResult != types.ResultNoIssue {
			t.Errorf("row %d: expected default result %q, got %q", i, types.ResultNoIssue, r.InspectionResult)
		}
		if !r.TargetExistence {
			t.Errorf("row %d: expected target applicable by default", i)
		}
		if r.CompanyID != "company-1" {
			t.Errorf("row %d: company id not stamped", i)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	// Reverse catalog order plus an item the catalog does not know.
	items := Items()
	results := []*types.InspectionResult{
		{InspectionName: "not in the catalog"},
	}
	for i := len(items) - 1; i >= 0; i-- {
		results = append(results, &types.InspectionResult{InspectionName: items[i].InspectionName})
	}

	Sort(results)

	for i, item := range items {
		if results[i].InspectionName != item.InspectionName {
			t.Fatalf("position %d: expected %q, got %q", i, item.InspectionName, results[i].InspectionName)
		}
	}
	if results[len(results)-1].InspectionName != "not in the catalog" {
		t.Error("unknown item should sort last")
	}

	// Sorting a sorted set must not move anything.
	before := make([]string, len(results))
	for i, r := range results {
		before[i] = r.InspectionName
	}

	Sort(results)

	for i, r := range results {
		if r.InspectionName != before[i] {
			t.Fatalf("sort is not idempotent at position %d", i)
		}
	}
}

func TestIndexUnknown(t *testing.T) {
	if Index("no such item") != -1 {
		t.Error("expected -1 for unknown inspection name")
	}
}
