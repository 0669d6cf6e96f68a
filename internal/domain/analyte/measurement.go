package analyte

import "time"

// Measurement is one observed value for one analyte on one QC run, together with
// the reference statistics of the control lot it was run against.
// It is created by the upstream capture process and never mutated here.
type Measurement struct {
	ClosedDate   time.Time
	AnalyteName  string
	Value        float64
	Mean         float64 // lot reference
	StdDeviation float64 // lot reference, >= 0
	MinLevel     float64 // inclusive lower acceptance bound
	MaxLevel     float64 // inclusive upper acceptance bound
	Initials     string  // recording technician
	Comment      string
}

// RawRecord is a measurement as fetched from a source, before any typing.
// Numeric fields may hold numbers or numeric text.
type RawRecord map[string]any

// Field names of a RawRecord, as served by the lab API.
const (
	FieldClosedDate   = "closedDate"
	FieldAnalyteName  = "analyteName"
	FieldAnalyteValue = "analyteValue"
	FieldMean         = "mean"
	FieldStdDeviation = "stdDevi"
	FieldMinLevel     = "minLevel"
	FieldMaxLevel     = "maxLevel"
	FieldInitials     = "initials"
	FieldComment      = "comment"

	// FieldInputID identifies the captured analyte input a record came from.
	// Only report-scoped records carry it.
	FieldInputID = "analyteInputId"
)
