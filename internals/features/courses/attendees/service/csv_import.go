// service/csv_import.go
package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// The import format is deliberately plain: comma-delimited, fixed header
// order, no quoting or escaping. A value containing a comma cannot be
// represented; that limitation is part of the published contract, which is
// why this does not go through encoding/csv (it would silently accept quoted
// fields the format does not define).
var importHeader = []string{"First Name", "Last Name", "Email", "Phone", "Employee Number"}

// requiredColumns: trailing columns (Phone, Employee Number) may be omitted
// from the header entirely.
const requiredColumns = 3

// ImportRow is one parsed student line.
type ImportRow struct {
	Line           int
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	EmployeeNumber string
}

// RowError records why a single line was skipped.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportFile holds the parse result: usable rows plus per-line errors. A bad
// line never aborts the rest of the file.
type ImportFile struct {
	Rows   []ImportRow
	Errors []RowError
}

// ParseStudentCSV reads the whole file. It fails outright only when the
// header line is missing or wrong; everything after that degrades to per-row
// errors.
func ParseStudentCSV(r io.Reader) (*ImportFile, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("file is empty")
	}
	if err := checkHeader(scanner.Text()); err != nil {
		return nil, err
	}

	out := &ImportFile{}
	line := 1
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		row, err := parseRow(line, raw)
		if err != nil {
			out.Errors = append(out.Errors, RowError{Line: line, Message: err.Error()})
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return out, nil
}

func checkHeader(raw string) error {
	cols := splitFields(raw)
	if len(cols) < requiredColumns {
		return fmt.Errorf("invalid header: expected %q", strings.Join(importHeader, ","))
	}
	if len(cols) > len(importHeader) {
		return fmt.Errorf("invalid header: too many columns")
	}
	for i, c := range cols {
		if !strings.EqualFold(c, importHeader[i]) {
			return fmt.Errorf("invalid header: column %d must be %q", i+1, importHeader[i])
		}
	}
	return nil
}

func parseRow(line int, raw string) (ImportRow, error) {
	fields := splitFields(raw)
	if len(fields) < requiredColumns {
		return ImportRow{}, fmt.Errorf("expected at least %d columns, got %d", requiredColumns, len(fields))
	}
	row := ImportRow{
		Line:      line,
		FirstName: fields[0],
		LastName:  fields[1],
		Email:     strings.ToLower(fields[2]),
	}
	if len(fields) > 3 {
		row.Phone = fields[3]
	}
	if len(fields) > 4 {
		row.EmployeeNumber = fields[4]
	}
	switch {
	case row.FirstName == "":
		return ImportRow{}, fmt.Errorf("first name is required")
	case row.LastName == "":
		return ImportRow{}, fmt.Errorf("last name is required")
	case row.Email == "":
		return ImportRow{}, fmt.Errorf("email is required")
	case !strings.Contains(row.Email, "@"):
		return ImportRow{}, fmt.Errorf("invalid email %q", row.Email)
	}
	return row, nil
}

func splitFields(raw string) []string {
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
