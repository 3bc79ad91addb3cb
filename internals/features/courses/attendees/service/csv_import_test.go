package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullHeader = "First Name,Last Name,Email,Phone,Employee Number"

func TestParseStudentCSV_WellFormedRows(t *testing.T) {
	in := fullHeader + "\n" +
		"Ana,Silva,ana@example.com,555-0101,EMP-1\n" +
		"Ben,Stone,Ben@Example.com,,\n"

	f, err := ParseStudentCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Rows, 2)
	assert.Empty(t, f.Errors)

	assert.Equal(t, "Ana", f.Rows[0].FirstName)
	assert.Equal(t, "EMP-1", f.Rows[0].EmployeeNumber)
	// emails are normalized to lower case for the lookup-or-create match
	assert.Equal(t, "ben@example.com", f.Rows[1].Email)
	assert.Empty(t, f.Rows[1].Phone)
}

func TestParseStudentCSV_HeaderWithoutTrailingColumns(t *testing.T) {
	in := "First Name,Last Name,Email\nAna,Silva,ana@example.com\n"
	f, err := ParseStudentCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Rows, 1)
}

func TestParseStudentCSV_RejectsWrongHeader(t *testing.T) {
	_, err := ParseStudentCSV(strings.NewReader("Email,First Name,Last Name\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")
}

func TestParseStudentCSV_RejectsEmptyFile(t *testing.T) {
	_, err := ParseStudentCSV(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseStudentCSV_BadRowDoesNotAbortBatch(t *testing.T) {
	in := fullHeader + "\n" +
		"Ana,Silva,ana@example.com\n" +
		",Stone,ben@example.com\n" +
		"Cara,Lund,not-an-email\n" +
		"Dan,Reed,dan@example.com\n"

	f, err := ParseStudentCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, f.Rows, 2)
	require.Len(t, f.Errors, 2)
	assert.Equal(t, 3, f.Errors[0].Line)
	assert.Contains(t, f.Errors[0].Message, "first name is required")
	assert.Equal(t, 4, f.Errors[1].Line)
}

func TestParseStudentCSV_SkipsBlankLinesAndCRLF(t *testing.T) {
	in := fullHeader + "\r\n" +
		"Ana,Silva,ana@example.com,555,EMP-1\r\n" +
		"\r\n"
	f, err := ParseStudentCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, f.Rows, 1)
	assert.Equal(t, "EMP-1", f.Rows[0].EmployeeNumber)
}
