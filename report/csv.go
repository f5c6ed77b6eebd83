package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVFilename is the fixed attachment name for the downloadable report.
const CSVFilename = "relatorio_verdetech.csv"

// csvHeader is the reduced, fixed-order column set of the CSV export.
var csvHeader = []string{"id", "nome", "email", "pegada_total_co2", "quiz_pontuacao", "quiz_total_perguntas"}

// WriteCSV writes the rows as semicolon-separated values. Absent activity
// renders as an empty cell, never "null" or a zero.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.Name,
			row.Email,
			formatFloat(row.FootprintTotalCO2),
			formatInt(row.QuizScore),
			formatInt(row.QuizTotalQuestions),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
