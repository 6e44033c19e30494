// Package sqlerr classifies database driver errors.
//
// It parses the SQLSTATE codes reported by PostgreSQL and converts
// them into user-friendly application errors (e.g. a check constraint
// violation becomes a "Bad Request").
package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Code is the normalized category of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	ExclusionViolation  Code = "exclusion_violation"
	StringTooLong       Code = "string_data_right_truncation"
	InvalidText         Code = "invalid_text_representation"
	SerializationFail   Code = "serialization_failure"
	DeadlockDetected    Code = "deadlock_detected"
)

// Severity mirrors the PostgreSQL error severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
	SeverityUnknown Severity = "UNKNOWN"
)

// Error is a normalized PostgreSQL error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (SQLSTATE %s)", e.Severity, e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22001":
		return StringTooLong
	case "22P02":
		return InvalidText
	case "40001":
		return SerializationFail
	case "40P01":
		return DeadlockDetected
	default:
		return Other
	}
}

// MapSeverity maps the severity string reported by the server.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityUnknown
	}
}

// notFoundError records which table a lookup missed in.
type notFoundError struct {
	table string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("table:%s: %s", e.table, pgx.ErrNoRows.Error())
}

func (e *notFoundError) Unwrap() error {
	return pgx.ErrNoRows
}

// NotFound returns an error matching pgx.ErrNoRows that remembers the
// table the row was expected in, so it can be reported as
// "<Entity> not found".
func NotFound(table string) error {
	return &notFoundError{table: table}
}
