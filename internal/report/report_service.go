package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"go-sfm/internal/sales"
	"go-sfm/internal/shared/apperror"
)

const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// SalesSource is the slice of the sales service the report needs.
type SalesSource interface {
	TeamSales(ctx context.Context, managerID string, filter sales.TeamSalesFilterRequest) ([]sales.SaleResponse, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	TeamSales(ctx context.Context, managerID, format string, filter TeamSalesFilterRequest) (Document, error)
}

type service struct {
	sales  SalesSource
	logger *zap.Logger
}

func NewService(salesSource SalesSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{sales: salesSource, logger: l}
}

func (s *service) TeamSales(ctx context.Context, managerID, format string, filter TeamSalesFilterRequest) (Document, error) {
	teamSales, err := s.sales.TeamSales(ctx, managerID, sales.TeamSalesFilterRequest{
		Year:   filter.Year,
		Month:  filter.Month,
		TeamID: filter.TeamID,
	})
	if err != nil {
		return Document{}, err
	}

	rows := flatten(teamSales)
	period := fmt.Sprintf("%04d-%02d", filter.Year, filter.Month)

	var doc Document
	switch format {
	case FormatCSV:
		doc, err = renderCSV(rows, period)
	case FormatPDF:
		doc, err = renderPDF(rows, period)
	case FormatXLSX:
		doc, err = renderXLSX(rows, period)
	default:
		return Document{}, apperror.InvalidField("format")
	}
	if err != nil {
		s.logger.Error("report rendering failed",
			zap.String("manager_id", managerID),
			zap.String("format", format),
			zap.Error(err),
		)
		return Document{}, err
	}

	s.logger.Info("report generated",
		zap.String("manager_id", managerID),
		zap.String("format", format),
		zap.String("period", period),
		zap.Int("rows", len(rows)),
	)
	return doc, nil
}

// flatten expands each sale into one row per line item, keeping the captured
// unit price rather than the current catalog price.
func flatten(teamSales []sales.SaleResponse) []Row {
	var rows []Row
	for _, sale := range teamSales {
		for _, item := range sale.Items {
			rows = append(rows, Row{
				ReceiptNo:     sale.ReceiptNo,
				Date:          sale.Date,
				ExecutiveName: sale.ExecutiveName,
				Location:      sale.Location,
				ProductID:     item.ProductID,
				Quantity:      item.Quantity,
				PricePerUnit:  item.PricePerUnit,
				Subtotal:      item.Subtotal,
			})
		}
	}
	return rows
}

var reportHeader = []string{"Receipt No", "Date", "Executive", "Location", "Product", "Quantity", "Unit Price", "Subtotal"}

func renderCSV(rows []Row, period string) (Document, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return Document{}, err
	}
	for _, r := range rows {
		record := []string{
			r.ReceiptNo,
			r.Date,
			r.ExecutiveName,
			r.Location,
			r.ProductID,
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.PricePerUnit, 'f', 2, 64),
			strconv.FormatFloat(r.Subtotal, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return Document{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Document{}, err
	}

	return Document{
		FileName:    "team-sales-" + period + ".csv",
		ContentType: "text/csv",
		Body:        buf.Bytes(),
	}, nil
}

func renderPDF(rows []Row, period string) (Document, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, "Team Sales Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, "Period: "+period, "", 1, "C", false, 0, "")
	pdf.CellFormat(277, 6, "Generated: "+time.Now().UTC().Format("02-Jan-2006 15:04")+" UTC", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	widths := []float64{38, 28, 48, 45, 50, 20, 24, 24}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range reportHeader {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	var total float64
	for i, r := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}
		cells := []string{
			r.ReceiptNo,
			r.Date,
			truncate(r.ExecutiveName, 26),
			truncate(r.Location, 24),
			truncate(r.ProductID, 28),
			strconv.Itoa(r.Quantity),
			strconv.FormatFloat(r.PricePerUnit, 'f', 2, 64),
			strconv.FormatFloat(r.Subtotal, 'f', 2, 64),
		}
		for j, cell := range cells {
			align := "L"
			if j >= 5 {
				align = "R"
			}
			pdf.CellFormat(widths[j], 6, cell, "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
		total += r.Subtotal
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(229, 7, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(48, 7, strconv.FormatFloat(total, 'f', 2, 64), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, err
	}
	return Document{
		FileName:    "team-sales-" + period + ".pdf",
		ContentType: "application/pdf",
		Body:        buf.Bytes(),
	}, nil
}

func renderXLSX(rows []Row, period string) (Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Team Sales"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, h := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return Document{}, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return Document{}, err
		}
	}

	for rowIdx, r := range rows {
		values := []interface{}{
			r.ReceiptNo, r.Date, r.ExecutiveName, r.Location,
			r.ProductID, r.Quantity, r.PricePerUnit, r.Subtotal,
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return Document{}, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return Document{}, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Document{}, err
	}
	return Document{
		FileName:    "team-sales-" + period + ".xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        buf.Bytes(),
	}, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
