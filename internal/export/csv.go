// Package export writes the transaction log to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/hrushi1881/fintrack/internal/logging"
	"github.com/hrushi1881/fintrack/internal/models"
)

// transactionCSVRow is the CSV shape of one transaction.
type transactionCSVRow struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Type        string `csv:"type"`
	Amount      string `csv:"amount"`
	Currency    string `csv:"currency"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
	RecurringID string `csv:"recurring_id"`
	ParentID    string `csv:"parent_id"`
}

// Writer exports transactions with configurable delimiter and date format.
type Writer struct {
	Delimiter  rune
	DateFormat string
	logger     logging.Logger
}

// NewWriter creates a CSV writer with the given delimiter and date format.
func NewWriter(delimiter rune, dateFormat string, logger logging.Logger) *Writer {
	if delimiter == 0 {
		delimiter = ','
	}
	if dateFormat == "" {
		dateFormat = "2006-01-02"
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Writer{
		Delimiter:  delimiter,
		DateFormat: dateFormat,
		logger:     logger,
	}
}

// WriteTransactions writes the transactions to csvFile.
func (w *Writer) WriteTransactions(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	w.logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	rows := make([]transactionCSVRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, transactionCSVRow{
			ID:          tx.ID,
			Date:        tx.Date.Format(w.DateFormat),
			Type:        tx.Type,
			Amount:      tx.Amount.Amount.StringFixed(2),
			Currency:    tx.Amount.Currency,
			Category:    tx.Category,
			Description: tx.Description,
			RecurringID: tx.RecurringTransactionID,
			ParentID:    tx.ParentTransactionID,
		})
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = w.Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
