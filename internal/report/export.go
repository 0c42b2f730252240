package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// FileName builds the download name for an export, e.g.
// barber-report-week-1710489600000.csv.
func FileName(rep Report, ext string) string {
	return fmt.Sprintf("barber-report-%s-%d.%s", rep.Range, rep.GeneratedAt.UnixMilli(), ext)
}

type exportRow struct {
	metric string
	value  string
}

func exportSections(rep Report) (earnings, appointments, clients []exportRow) {
	earnings = []exportRow{
		{"Total Revenue", money(rep.Earnings.Total)},
		{"Service Revenue", money(rep.Earnings.Services)},
		{"Product Revenue", money(rep.Earnings.Products)},
		{"Tips", money(rep.Earnings.Tips)},
		{"Commission", money(rep.Earnings.Commission)},
	}
	appointments = []exportRow{
		{"Total", strconv.Itoa(rep.Appointments.Total)},
		{"Completed", strconv.Itoa(rep.Appointments.Completed)},
		{"Cancelled", strconv.Itoa(rep.Appointments.Cancelled)},
		{"No Show", strconv.Itoa(rep.Appointments.NoShow)},
	}
	clients = []exportRow{
		{"Total Clients", strconv.Itoa(rep.Clients.Total)},
		{"New Clients", strconv.Itoa(rep.Clients.New)},
		{"Returning Clients", strconv.Itoa(rep.Clients.Returning)},
	}
	return earnings, appointments, clients
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// ExportCSV renders the report as the flat sectioned CSV download.
func ExportCSV(rep Report) ([]byte, error) {
	earnings, appointments, clients := exportSections(rep)

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"Barber Performance Report"})
	_ = w.Write([]string{"Period:", string(rep.Range)})
	_ = w.Write([]string{"Generated:", rep.GeneratedAt.Format(time.RFC3339)})
	_ = w.Write([]string{""})

	writeSection := func(title string, rows []exportRow) {
		_ = w.Write([]string{title})
		_ = w.Write([]string{"Metric", "Value"})
		for _, row := range rows {
			_ = w.Write([]string{row.metric, row.value})
		}
		_ = w.Write([]string{""})
	}
	writeSection("Earnings Summary", earnings)
	writeSection("Appointment Summary", appointments)
	writeSection("Client Summary", clients)

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportXLSX renders the same sections as a styled spreadsheet.
func ExportXLSX(rep Report) ([]byte, error) {
	earnings, appointments, clients := exportSections(rep)

	f := excelize.NewFile()
	sheet := "Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	row := 1
	set := func(cells ...string) {
		for c, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})

	set("Barber Performance Report")
	set("Period:", string(rep.Range))
	set("Generated:", rep.GeneratedAt.Format(time.RFC3339))
	row++

	writeSection := func(title string, rows []exportRow) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellStyle(sheet, cell, cell, titleStyle)
		set(title)
		set("Metric", "Value")
		for _, r := range rows {
			set(r.metric, r.value)
		}
		row++
	}
	writeSection("Earnings Summary", earnings)
	writeSection("Appointment Summary", appointments)
	writeSection("Client Summary", clients)

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
