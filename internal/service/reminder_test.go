package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
	repository_mocks "github.com/campuslib/circulation/internal/repository/mocks"
	"github.com/campuslib/circulation/pkg/kafka"
)

type captureEnqueuer struct {
	msgs []model.ReminderMsg
	fail map[string]bool
}

func (c *captureEnqueuer) Enqueue(topic string, v any) error {
	msg := v.(model.ReminderMsg)
	if c.fail[msg.Email] {
		return errors.New("broker down")
	}
	if topic != kafka.ReminderTopic {
		return errors.Errorf("unexpected topic %q", topic)
	}
	c.msgs = append(c.msgs, msg)
	return nil
}

func TestDueSoonReminders(t *testing.T) {
	today := date("2024-01-10")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().DueOn(gomock.Any(), date("2024-01-11")).Return([]model.ReminderTarget{
		{Email: "alice@campus.edu", Username: "alice", Title: "Dune", DueDate: date("2024-01-11")},
		{Email: "", Username: "ghost", Title: "Solaris", DueDate: date("2024-01-11")},
		{Email: "bob@campus.edu", Username: "bob", Title: "Foundation", DueDate: date("2024-01-11")},
	}, nil)

	enq := &captureEnqueuer{}
	svc := NewService(repo, enq, zap.NewNop())
	svc.now = func() time.Time { return today }

	n, err := svc.DueSoonReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Len(t, enq.msgs, 2)
	require.Equal(t, model.ReminderDueSoon, enq.msgs[0].Kind)
	require.Equal(t, "alice@campus.edu", enq.msgs[0].Email)
}

func TestOverdueRemindersSkipsEnqueueFailures(t *testing.T) {
	today := date("2024-01-10")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockRepository(ctrl)
	repo.EXPECT().OverdueSince(gomock.Any(), date("2024-01-07")).Return([]model.ReminderTarget{
		{Email: "alice@campus.edu", Username: "alice", Title: "Dune", DueDate: date("2024-01-05")},
		{Email: "bob@campus.edu", Username: "bob", Title: "Foundation", DueDate: date("2024-01-06")},
	}, nil)

	enq := &captureEnqueuer{fail: map[string]bool{"alice@campus.edu": true}}
	svc := NewService(repo, enq, zap.NewNop())
	svc.now = func() time.Time { return today }

	n, err := svc.OverdueReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, model.ReminderOverdue, enq.msgs[0].Kind)
	require.Equal(t, "bob@campus.edu", enq.msgs[0].Email)
}
