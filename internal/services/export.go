package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/plantops/roundsdb/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var exportHeaders = []string{"Unit", "Section", "Item Description", "Value", "Output", "Mode"}

type exportData struct {
	RoundID      uint64
	RoundType    string
	OperatorName string
	Shift        string
	Timestamp    string
	Rows         [][]string
}

// collectExportData gathers everything needed to export one round, degrading
// gracefully when parts of the data are missing: a round whose operator row is
// gone exports with "Unknown" placeholders, a round row that vanished but left
// sections behind exports with default metadata, and sections without items
// export a placeholder row. Only when nothing at all is found does it report
// ErrNotFound.
func collectExportData(db *gorm.DB, roundID uint64) (*exportData, error) {
	ex := &exportData{RoundID: roundID}

	type roundInfo struct {
		RoundType string
		Name      string
		Shift     string
		Timestamp time.Time
	}
	var info roundInfo
	err := db.Model(&models.Round{}).
		Select("rounds.round_type", "operators.name", "rounds.shift", "rounds.timestamp").
		Joins("JOIN operators ON rounds.operator_id = operators.id").
		Where("rounds.id = ?", roundID).
		Scan(&info).Error
	if err != nil {
		return nil, err
	}

	if info.RoundType != "" {
		ex.RoundType = info.RoundType
		ex.OperatorName = info.Name
		ex.Shift = info.Shift
		ex.Timestamp = info.Timestamp.Format("2006-01-02 15:04:05")
	} else {
		// The join found nothing; the round may still exist without a
		// resolvable operator.
		var round models.Round
		err := db.First(&round, roundID).Error
		switch {
		case err == nil:
			ex.RoundType = round.RoundType
			ex.OperatorName = "Unknown"
			ex.Shift = round.Shift
			if ex.Shift == "" {
				ex.Shift = "Unknown"
			}
			ex.Timestamp = round.Timestamp.Format("2006-01-02 15:04:05")
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No round row at all; fall back to whatever sections reference it.
			var sectionCount int64
			if err := db.Model(&models.Section{}).Where("round_id = ?", roundID).Count(&sectionCount).Error; err != nil {
				return nil, err
			}
			if sectionCount == 0 {
				return nil, ErrNotFound
			}
			ex.RoundType = "Unknown Round Type"
			ex.OperatorName = "Unknown Operator"
			ex.Shift = "Unknown Shift"
			ex.Timestamp = time.Now().Format("2006-01-02 15:04:05")
		default:
			return nil, err
		}
	}

	type exportRow struct {
		Unit        string
		SectionName string
		Description string
		Value       string
		Output      string
		Mode        string
	}
	var rows []exportRow
	err = db.Model(&models.Section{}).
		Select("sections.unit", "sections.section_name", "round_items.description",
			"round_items.value", "round_items.output", "round_items.mode").
		Joins("JOIN round_items ON round_items.section_id = sections.id").
		Where("sections.round_id = ?", roundID).
		Order("sections.unit, sections.section_name, round_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		ex.Rows = append(ex.Rows, []string{r.Unit, r.SectionName, r.Description, r.Value, r.Output, r.Mode})
	}

	if len(ex.Rows) == 0 {
		// Sections without items still export, as placeholders.
		var sections []models.Section
		if err := db.Where("round_id = ?", roundID).
			Order("unit, section_name").
			Find(&sections).Error; err != nil {
			return nil, err
		}
		for _, s := range sections {
			ex.Rows = append(ex.Rows, []string{s.Unit, s.SectionName, "No items found", "", "", ""})
		}
	}

	if len(ex.Rows) == 0 {
		return nil, ErrNotFound
	}

	return ex, nil
}

// exportFilename builds Round_<id>_<yyyymmdd>.<ext> from the round timestamp,
// falling back to today when the timestamp is unparseable.
func exportFilename(ex *exportData, ext string) string {
	dateStr := time.Now().Format("20060102")
	if ts, err := time.Parse("2006-01-02 15:04:05", ex.Timestamp); err == nil {
		dateStr = ts.Format("20060102")
	}
	return fmt.Sprintf("Round_%d_%s.%s", ex.RoundID, dateStr, ext)
}

func metadataRows(ex *exportData) [][]string {
	return [][]string{
		{"Round ID", fmt.Sprintf("%d", ex.RoundID), "", "", "", ""},
		{"Round Type", ex.RoundType, "", "", "", ""},
		{"Operator", ex.OperatorName, "", "", "", ""},
		{"Shift", ex.Shift, "", "", "", ""},
		{"Timestamp", ex.Timestamp, "", "", "", ""},
		{"---", "---", "---", "---", "---", "---"},
	}
}

// ExportRoundCSV renders a round as CSV text plus a suggested filename.
// Metadata rows precede the item table.
func ExportRoundCSV(db *gorm.DB, roundID uint64) (string, string, error) {
	ex, err := collectExportData(db, roundID)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	for _, row := range metadataRows(ex) {
		if err := w.Write(row); err != nil {
			return "", "", err
		}
	}
	if err := w.Write(exportHeaders); err != nil {
		return "", "", err
	}
	for _, row := range ex.Rows {
		if err := w.Write(row); err != nil {
			return "", "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", "", err
	}

	return buf.String(), exportFilename(ex, "csv"), nil
}

// ExportRoundXLSX renders a round as a spreadsheet with a styled header row.
func ExportRoundXLSX(db *gorm.DB, roundID uint64) ([]byte, string, error) {
	ex, err := collectExportData(db, roundID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Round"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	row := 1
	for _, meta := range metadataRows(ex)[:5] {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), meta[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), meta[1])
		row++
	}
	row++

	headerRow := row
	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), headerRow)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	for rowIdx, dataRow := range ex.Rows {
		for colIdx, value := range dataRow {
			cell := fmt.Sprintf("%s%d", string(rune('A'+colIdx)), headerRow+rowIdx+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	if sheetName != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(ex, "xlsx"), nil
}
