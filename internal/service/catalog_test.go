package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
	repository_mocks "github.com/campuslib/circulation/internal/repository/mocks"
)

func TestRecommendedBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().RecommendedBooks(gomock.Any()).Return([]model.Book{
		{ID: 1, Title: "Dune", ISBN: "9780441172719", Recommended: true},
		{ID: 2, Title: "Solaris", ISBN: "9780156027601", Recommended: true},
	}, nil)

	books, err := newTestService(repo, date("2024-01-10")).RecommendedBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.True(t, books[0].Recommended)
	require.Equal(t, "Dune", books[0].Title)
}

func TestSearchBooksWithoutSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().GetStudent(gomock.Any(), "alice").
		Return(model.Student{ID: 7, Username: "alice"}, nil)
	repo.EXPECT().MostRecentSubscription(gomock.Any(), int64(7)).
		Return(model.Subscription{}, errs.ErrNotFound)

	books, err := newTestService(repo, date("2024-01-10")).
		SearchBooks(context.Background(), "alice", "dune")
	require.NoError(t, err)
	require.Empty(t, books)
}
