package insight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
)

// Athena has no placeholder support for identifiers, so database and table
// names are restricted to this shape before splicing.
var identRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func validIdent(s string) bool { return identRe.MatchString(s) }

// FHIR constrains resource ids to 1..64 chars of [A-Za-z0-9.-].
var patientIDRe = regexp.MustCompile(`^[A-Za-z0-9.\-]{1,64}$`)

func validPatientID(s string) bool { return patientIDRe.MatchString(s) }

// escapeLiteral doubles single quotes per the SQL string literal rules.
func escapeLiteral(s string) string { return strings.ReplaceAll(s, "'", "''") }

// patientsSQL lists the ids of the patient table.
func patientsSQL(database string) string {
	return "SELECT id FROM " + database + ".patient"
}

// sectionSQL builds the row query for one FHIR resource table. The patient
// table keys on id; every other HealthLake resource references the patient
// through subject.reference.
func sectionSQL(database, table, patientID string, limit int) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(database)
	b.WriteString(".")
	b.WriteString(table)
	if table == "patient" {
		b.WriteString(" WHERE id = '")
		b.WriteString(escapeLiteral(patientID))
		b.WriteString("'")
	} else {
		b.WriteString(" WHERE subject.reference = 'Patient/")
		b.WriteString(escapeLiteral(patientID))
		b.WriteString("'")
	}
	fmt.Fprintf(&b, " LIMIT %d", limit)
	return b.String()
}

// formatRows renders a result as one pipe-separated line per row, header
// first, compact enough to stay inside the model context.
func formatRows(res *athena.Result) string {
	var b strings.Builder
	if len(res.Columns) > 0 {
		b.WriteString(strings.Join(res.Columns, " | "))
		b.WriteString("\n")
	}
	for _, r := range res.Rows {
		b.WriteString(strings.Join(r, " | "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
