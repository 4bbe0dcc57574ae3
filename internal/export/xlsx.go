// Package export writes out-of-band XLSX reports. It reads through the
// repository like any other consumer and never touches storage keys
// directly.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wayfarer/internal/config"
	"wayfarer/internal/domain"
	"wayfarer/internal/models"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

type Exporter struct {
	repo   domain.Repository
	path   string
	logger *zerolog.Logger
}

func NewExporter(repo domain.Repository, cfg config.ExportConfig, logger *zerolog.Logger) *Exporter {
	return &Exporter{repo: repo, path: cfg.Path, logger: logger}
}

// ExportUserActivity создает Excel файл с билетами и журналом монет пользователя
func (e *Exporter) ExportUserActivity(ctx context.Context, userID string) (string, error) {
	if err := os.MkdirAll(e.path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	tickets, err := e.repo.ListTickets(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting tickets: %v", err)
	}

	entries, err := e.repo.ListCoinEntries(ctx)
	if err != nil {
		return "", fmt.Errorf("error getting coin ledger: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := e.writeTicketsSheet(f, userID, tickets); err != nil {
		return "", err
	}
	if err := e.writeCoinsSheet(f, userID, entries); err != nil {
		return "", err
	}

	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("activity_%s_%s.xlsx", userID, time.Now().Format("2006-01-02"))
	filePath := filepath.Join(e.path, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	e.logger.Info().Str("file_path", filePath).Str("user_id", userID).Msg("Excel file created")
	return filePath, nil
}

func (e *Exporter) writeTicketsSheet(f *excelize.File, userID string, tickets []models.Ticket) error {
	const sheetName = "Tickets"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"Type", "From", "To", "Date", "Passengers", "Price", "Status", "Created"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	for _, ticket := range tickets {
		if ticket.UserID != userID {
			continue
		}
		values := []interface{}{
			ticket.Type, ticket.From, ticket.To, ticket.Date,
			ticket.Passengers, ticket.Price, ticket.Status,
			ticket.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, value)
		}
		row++
	}

	_ = f.SetColWidth(sheetName, "A", "H", 16)
	return nil
}

func (e *Exporter) writeCoinsSheet(f *excelize.File, userID string, entries []models.CoinEntry) error {
	const sheetName = "Coins"
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}

	headers := []string{"Amount", "Reason", "Created"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	row := 2
	var balance int64
	for _, entry := range entries {
		if entry.UserID != userID {
			continue
		}
		balance += entry.Amount
		values := []interface{}{entry.Amount, entry.Reason, entry.CreatedAt.Format("2006-01-02 15:04")}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, value)
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheetName, cell, "Balance")
	cell, _ = excelize.CoordinatesToCellName(2, row)
	_ = f.SetCellValue(sheetName, cell, balance)

	_ = f.SetColWidth(sheetName, "A", "C", 20)
	return nil
}
