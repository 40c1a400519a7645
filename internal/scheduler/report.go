package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"github.com/ousama-oujaber/SupplyChainX/internal/procurement/entity"
)

var reportHeaders = []string{"Material", "Stock", "Minimum", "Deficit", "Unit"}

// ReportArchive renders low-stock reports to xlsx and stores them in
// object storage.
type ReportArchive struct {
	client *minio.Client
	bucket string
}

func NewReportArchive(client *minio.Client, bucket string) *ReportArchive {
	return &ReportArchive{client: client, bucket: bucket}
}

// Store writes the report and returns the object path.
func (a *ReportArchive) Store(ctx context.Context, materials []entity.RawMaterial, ranAt time.Time) (string, error) {
	f, err := buildReport(materials)
	if err != nil {
		return "", fmt.Errorf("build report: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	objectName := fmt.Sprintf("stock-reports/%s.xlsx", ranAt.Format("2006-01-02T15-04-05"))
	_, err = a.client.PutObject(ctx, a.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		return "", fmt.Errorf("upload report: %w", err)
	}

	return objectName, nil
}

func buildReport(materials []entity.RawMaterial) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Low Stock"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range reportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, material := range materials {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), material.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), material.Stock)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), material.StockMin)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), material.StockMin-material.Stock)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), material.Unit)
	}

	colWidths := []float64{24, 10, 10, 10, 8}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	return f, nil
}
