package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
)

var booksCSVHeader = []string{"Title", "Author(s)", "ISBN"}

var borrowCSVHeader = []string{
	"Student", "Book Title", "Borrow Date", "Due Date", "Return Date", "Overdue", "Fine Amount", "Paid",
}

func (s *Service) ExportBooks(ctx context.Context, w io.Writer) error {
	rows, err := s.repo.ExportBooks(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(booksCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write([]string{row.Title, row.Authors, row.ISBN}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *Service) ExportBorrowRecords(ctx context.Context, w io.Writer) error {
	rows, err := s.repo.ExportBorrowRecords(ctx)
	if err != nil {
		return err
	}

	today := s.today()
	cw := csv.NewWriter(w)
	if err := cw.Write(borrowCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		returnDate := ""
		if row.ReturnDate != nil {
			returnDate = row.ReturnDate.Format(time.DateOnly)
		}
		overdue := "No"
		if row.ReturnDate == nil && today.After(row.DueDate) {
			overdue = "Yes"
		}
		amount, paid := "", ""
		if row.FineAmount != nil {
			amount = fmt.Sprintf("%.2f", *row.FineAmount)
			paid = "No"
			if row.FinePaid != nil && *row.FinePaid {
				paid = "Yes"
			}
		}
		if err := cw.Write([]string{
			row.Student,
			row.Title,
			row.BorrowDate.Format(time.DateOnly),
			row.DueDate.Format(time.DateOnly),
			returnDate,
			overdue,
			amount,
			paid,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportBooks reads the staff bulk-upload CSV. Malformed rows are skipped,
// not fatal; the returned count is the number of rows applied.
func (s *Service) ImportBooks(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// header row
	if _, err := cr.Read(); err != nil {
		return 0, err
	}

	imported := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.log.Warn("import: unreadable row skipped", zap.Error(err))
			continue
		}
		row, err := parseImportRow(record)
		if err != nil {
			s.log.Warn("import: malformed row skipped",
				zap.Strings("row", record), zap.Error(err))
			continue
		}
		if _, err := s.repo.ImportBookRow(ctx, row); err != nil {
			s.log.Warn("import: row failed",
				zap.String("isbn", row.ISBN), zap.Error(err))
			continue
		}
		imported++
	}
	return imported, nil
}

func parseImportRow(record []string) (model.ImportBookRow, error) {
	if len(record) != 7 {
		return model.ImportBookRow{}, fmt.Errorf("expected 7 columns, got %d", len(record))
	}
	published, err := time.Parse(time.DateOnly, strings.TrimSpace(record[5]))
	if err != nil {
		return model.ImportBookRow{}, fmt.Errorf("published_date: %w", err)
	}
	copies, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil || copies < 0 {
		return model.ImportBookRow{}, fmt.Errorf("copies: %q", record[6])
	}
	row := model.ImportBookRow{
		Title:         strings.TrimSpace(record[0]),
		Author:        strings.TrimSpace(record[1]),
		ISBN:          strings.TrimSpace(record[2]),
		Category:      strings.TrimSpace(record[3]),
		Description:   strings.TrimSpace(record[4]),
		PublishedDate: published,
		Copies:        copies,
	}
	if row.Title == "" || row.ISBN == "" || row.Author == "" {
		return model.ImportBookRow{}, fmt.Errorf("title, author and isbn are required")
	}
	return row, nil
}
