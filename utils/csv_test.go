package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	rows := []Row{
		{{Key: "name", Value: "Ana"}, {Key: "n", Value: 1}},
		{{Key: "name", Value: "A, B"}, {Key: "n", Value: 2}},
	}
	csv := ToCSV(rows)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,n", lines[0])
	assert.Equal(t, `"Ana",1`, lines[1])
	// Strings are always quoted, so embedded commas survive the split.
	assert.Equal(t, `"A, B",2`, lines[2])
}

func TestToCSVEmpty(t *testing.T) {
	assert.Equal(t, "", ToCSV(nil))
	assert.Equal(t, "", ToCSV([]Row{}))
}

func TestToCSVBareNonStrings(t *testing.T) {
	csv := ToCSV([]Row{{{Key: "approved", Value: false}, {Key: "age", Value: 7}}})
	assert.Equal(t, "approved,age\nfalse,7", csv)
}

func TestParseCSV(t *testing.T) {
	rows, err := ParseCSV("fullName,cpf,age\n\"Maria\",\"529.982.247-25\",39\n\"Carlos\",\"111.444.777-35\"\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Maria", rows[0]["fullName"])
	assert.Equal(t, "529.982.247-25", rows[0]["cpf"])
	assert.Equal(t, "39", rows[0]["age"])
	// Short rows are padded rather than rejected.
	assert.Equal(t, "", rows[1]["age"])
}

func TestParseCSVRejectsHeaderOnly(t *testing.T) {
	_, err := ParseCSV("fullName,cpf\n")
	assert.Error(t, err)

	_, err = ParseCSV("")
	assert.Error(t, err)
}

func TestCSVFilename(t *testing.T) {
	expected := "patients_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	assert.Equal(t, expected, CSVFilename("patients"))
}
