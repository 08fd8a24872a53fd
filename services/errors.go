package services

import "errors"

var (
	// ErrReportExists is returned when saving a night-audit report for a
	// date that already has one.
	ErrReportExists = errors.New("report_already_exists")

	// ErrReportNotFound is returned for lookups/deletes of unknown reports.
	ErrReportNotFound = errors.New("report_not_found")
)
