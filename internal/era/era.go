// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

// Package era converts Gregorian dates to Japanese imperial era dates for
// the inspection report sheets.
package era

import (
	"time"
)

const (
	Reiwa   = "Reiwa"
	Heisei  = "Heisei"
	Showa   = "Showa"
	Unknown = "unknown"
)

// Date is a Gregorian date expressed in a Japanese era. For years before
// the Showa era the name is Unknown and Year carries the raw Gregorian
// year unchanged.
type Date struct {
	Era   string `json:"era"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
}

// FromYear maps a Gregorian year to its era name and in-era year number.
// Transition years resolve to the era that began in them (2019 is Reiwa 1,
// 1989 is Heisei 1, 1926 is Showa 1).
func FromYear(year int) (string, int) {
	switch {
	case year >= 2019:
		return Reiwa, year - 2018
	case year >= 1989:
		return Heisei, year - 1988
	case year >= 1926:
		return Showa, year - 1925
	default:
		return Unknown, year
	}
}

// FromTime converts a full date.
func FromTime(t time.Time) Date {
	name, year := FromYear(t.Year())
	return Date{
		Era:   name,
		Year:  year,
		Month: int(t.Month()),
		Day:   t.Day(),
	}
}
