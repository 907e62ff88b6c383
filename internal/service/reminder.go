package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
	"github.com/campuslib/circulation/pkg/kafka"
)

const overdueReminderDays = 3

// DueSoonReminders enqueues a reminder for every open record due tomorrow.
// Delivery is best-effort: enqueue failures are logged and skipped.
func (s *Service) DueSoonReminders(ctx context.Context) (int, error) {
	targets, err := s.repo.DueOn(ctx, s.today().AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	return s.enqueueReminders(targets, model.ReminderDueSoon), nil
}

// OverdueReminders enqueues a reminder for every open record overdue by
// three or more days.
func (s *Service) OverdueReminders(ctx context.Context) (int, error) {
	targets, err := s.repo.OverdueSince(ctx, s.today().AddDate(0, 0, -overdueReminderDays))
	if err != nil {
		return 0, err
	}
	return s.enqueueReminders(targets, model.ReminderOverdue), nil
}

func (s *Service) enqueueReminders(targets []model.ReminderTarget, kind model.ReminderKind) int {
	sent := 0
	for _, t := range targets {
		if t.Email == "" {
			continue
		}
		msg := model.ReminderMsg{
			Kind:     kind,
			Email:    t.Email,
			Username: t.Username,
			Title:    t.Title,
			DueDate:  t.DueDate,
		}
		if err := s.enq.Enqueue(kafka.ReminderTopic, msg); err != nil {
			s.log.Error("enqueue reminder", zap.String("email", t.Email), zap.Error(err))
			continue
		}
		sent++
	}
	return sent
}
