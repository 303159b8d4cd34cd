package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"ats-backend/internal/domain"
	"ats-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

// Export writes the candidates selected by the search parameters as an
// xlsx (default) or csv file and returns its bytes and file name.
func (u *candidateUsecase) Export(ctx context.Context, req *domain.CandidateExportRequest) ([]byte, string, error) {
	if req == nil {
		req = &domain.CandidateExportRequest{}
	}

	columns, err := exportColumns(req.Columns)
	if err != nil {
		return nil, "", apperror.Invalid(domain.ErrValidation, domain.MsgInvalidExport, err)
	}

	if req.Format != "" && req.Format != "xlsx" && req.Format != "csv" {
		return nil, "", apperror.Invalid(domain.ErrValidation, domain.MsgInvalidExport, fmt.Errorf("unsupported export format: %s", req.Format))
	}

	records, err := u.Search(ctx, &req.CandidateSearchRequest)
	if err != nil {
		return nil, "", err
	}

	if req.Format == "csv" {
		return exportCSV(records, columns)
	}
	return exportExcel(records, columns)
}

// exportColumns drops duplicates and rejects unknown names. No selection
// means every exportable column.
func exportColumns(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return domain.ExportableColumns, nil
	}

	validColumns := make(map[string]bool, len(domain.ExportableColumns))
	for _, col := range domain.ExportableColumns {
		validColumns[col] = true
	}

	seen := make(map[string]bool)
	columns := make([]string, 0, len(requested))
	for _, col := range requested {
		if !validColumns[col] {
			return nil, fmt.Errorf("invalid export column: %s", col)
		}
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}
	return columns, nil
}

var headerNames = map[string]string{
	"id":              "ID",
	"name":            "NAME",
	"age":             "AGE",
	"gender":          "GENDER",
	"phone_number":    "PHONE NUMBER",
	"email":           "EMAIL",
	"years_of_exp":    "YEARS OF EXPERIENCE",
	"current_salary":  "CURRENT SALARY",
	"expected_salary": "EXPECTED SALARY",
	"status":          "STATUS",
	"reason":          "REASON",
}

// exportExcel generates an Excel file from candidate records
func exportExcel(records []domain.CandidateRecord, columns []string) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, headerNames[col])
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, record := range records {
		for colIdx, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, recordFieldValue(record, col))
		}
	}

	for i := range columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("candidates_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// exportCSV generates a CSV file from candidate records
func exportCSV(records []domain.CandidateRecord, columns []string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, record := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fmt.Sprint(recordFieldValue(record, col))
		}
		if err := w.Write(row); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	filename := fmt.Sprintf("candidates_%s.csv", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}

// recordFieldValue extracts a column value from a record; nulls become "".
func recordFieldValue(r domain.CandidateRecord, field string) interface{} {
	switch field {
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "age":
		return r.Age
	case "gender":
		return string(r.Gender)
	case "phone_number":
		return r.PhoneNumber
	case "email":
		return r.Email
	case "years_of_exp":
		return optionalFloat(r.YearsOfExp)
	case "current_salary":
		return optionalFloat(r.CurrentSalary)
	case "expected_salary":
		return optionalFloat(r.ExpectedSalary)
	case "status":
		return string(r.Status)
	case "reason":
		if r.Reason != nil {
			return *r.Reason
		}
		return ""
	default:
		return ""
	}
}

func optionalFloat(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
