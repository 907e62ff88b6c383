package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/circulation/internal/model"
	repository_mocks "github.com/campuslib/circulation/internal/repository/mocks"
)

func TestExportBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().ExportBooks(gomock.Any()).Return([]model.BookExportRow{
		{Title: "Dune", Authors: "Frank Herbert", ISBN: "9780441172719"},
		{Title: "Solaris, annotated", Authors: "Stanislaw Lem", ISBN: "9780156027601"},
	}, nil)

	var buf bytes.Buffer
	err := newTestService(repo, date("2024-01-10")).ExportBooks(context.Background(), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Title,Author(s),ISBN", lines[0])
	require.Equal(t, "Dune,Frank Herbert,9780441172719", lines[1])
	// commas inside a field stay quoted
	require.Equal(t, `"Solaris, annotated",Stanislaw Lem,9780156027601`, lines[2])
}

func TestExportBorrowRecords(t *testing.T) {
	today := date("2024-01-20")
	returned := date("2024-01-12")
	amount := 20.0
	paid := false

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().ExportBorrowRecords(gomock.Any()).Return([]model.BorrowExportRow{
		{
			Student:    "alice",
			Title:      "Dune",
			BorrowDate: date("2024-01-01"),
			DueDate:    date("2024-01-08"),
			ReturnDate: &returned,
			FineAmount: &amount,
			FinePaid:   &paid,
		},
		{
			Student:    "bob",
			Title:      "Solaris",
			BorrowDate: date("2024-01-15"),
			DueDate:    date("2024-01-10"),
		},
		{
			Student:    "carol",
			Title:      "Foundation",
			BorrowDate: date("2024-01-18"),
			DueDate:    date("2024-01-25"),
		},
	}, nil)

	var buf bytes.Buffer
	err := newTestService(repo, today).ExportBorrowRecords(context.Background(), &buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "Student,Book Title,Borrow Date,Due Date,Return Date,Overdue,Fine Amount,Paid", lines[0])
	require.Equal(t, "alice,Dune,2024-01-01,2024-01-08,2024-01-12,No,20.00,No", lines[1])
	// open and past due
	require.Equal(t, "bob,Solaris,2024-01-15,2024-01-10,,Yes,,", lines[2])
	// open and not yet due
	require.Equal(t, "carol,Foundation,2024-01-18,2024-01-25,,No,,", lines[3])
}

func TestImportBooks(t *testing.T) {
	input := strings.Join([]string{
		"Title,Author,ISBN,Category,Description,Published Date,Copies",
		"Dune,Frank Herbert,9780441172719,Sci-Fi,Spice and sand,1965-08-01,3",
		"No ISBN,Somebody,,Sci-Fi,desc,1999-01-01,1",
		"Bad Date,Somebody,9780000000001,Sci-Fi,desc,not-a-date,1",
		"Bad Copies,Somebody,9780000000002,Sci-Fi,desc,2000-01-01,many",
		"short,row",
		"Solaris,Stanislaw Lem,9780156027601,Sci-Fi,Ocean planet,1961-06-01,2",
	}, "\n")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().
		ImportBookRow(gomock.Any(), model.ImportBookRow{
			Title:         "Dune",
			Author:        "Frank Herbert",
			ISBN:          "9780441172719",
			Category:      "Sci-Fi",
			Description:   "Spice and sand",
			PublishedDate: date("1965-08-01"),
			Copies:        3,
		}).
		Return(true, nil)
	repo.EXPECT().
		ImportBookRow(gomock.Any(), model.ImportBookRow{
			Title:         "Solaris",
			Author:        "Stanislaw Lem",
			ISBN:          "9780156027601",
			Category:      "Sci-Fi",
			Description:   "Ocean planet",
			PublishedDate: date("1961-06-01"),
			Copies:        2,
		}).
		Return(true, nil)

	n, err := newTestService(repo, date("2024-01-10")).ImportBooks(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestParseImportRow(t *testing.T) {
	row, err := parseImportRow([]string{
		" Dune ", "Frank Herbert", "9780441172719", "Sci-Fi", "desc", "1965-08-01", "3",
	})
	require.NoError(t, err)
	require.Equal(t, "Dune", row.Title)
	require.Equal(t, 3, row.Copies)
	require.Equal(t, time.Date(1965, 8, 1, 0, 0, 0, 0, time.UTC), row.PublishedDate)

	_, err = parseImportRow([]string{"Dune", "Frank Herbert", "9780441172719", "", "", "1965-08-01", "-1"})
	require.Error(t, err)
}
