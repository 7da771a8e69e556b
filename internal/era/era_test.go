// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package era

import (
	"testing"
	"time"
)

func TestFromYear(t *testing.T) {
	testCases := []struct {
		name         string
		year         int
		expectedEra  string
		expectedYear int
	}{
		{name: "pre Showa passes year through", year: 1925, expectedEra: Unknown, expectedYear: 1925},
		{name: "ancient year passes through", year: 800, expectedEra: Unknown, expectedYear: 800},
		{name: "first year of Showa", year: 1926, expectedEra: Showa, expectedYear: 1},
		{name: "last year of Showa", year: 1988, expectedEra: Showa, expectedYear: 63},
		{name: "first year of Heisei", year: 1989, expectedEra: Heisei, expectedYear: 1},
		{name: "last year of Heisei", year: 2018, expectedEra: Heisei, expectedYear: 30},
		{name: "first year of Reiwa", year: 2019, expectedEra: Reiwa, expectedYear: 1},
		{name: "current era", year: 2025, expectedEra: Reiwa, expectedYear: 7},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			era, year := FromYear(tc.year)
			if era != tc.expectedEra {
				t.Errorf("expected era %q, got %q", tc.expectedEra, era)
			}
			if year != tc.expectedYear {
				t.Errorf("expected year %d, got %d", tc.expectedYear, year)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	d := FromTime(time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC))

	if d.Era != Reiwa || d.Year != 1 || d.Month != 5 || d.Day != 1 {
		t.Errorf("unexpected conversion: %+v", d)
	}
}
