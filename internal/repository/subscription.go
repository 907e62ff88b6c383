package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

func (r *repository) ListPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	query, args, err := qb.Select("id", "name", "max_books", "duration_days", "fine_per_day", "price").
		From(planTableName).
		OrderBy("price").
		ToSql()
	if err != nil {
		return nil, err
	}

	var plans []model.SubscriptionPlan
	if err := r.db.SelectContext(ctx, &plans, query, args...); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *repository) GetPlan(ctx context.Context, planID int64) (model.SubscriptionPlan, error) {
	query, args, err := qb.Select("id", "name", "max_books", "duration_days", "fine_per_day", "price").
		From(planTableName).
		Where(sq.Eq{"id": planID}).
		ToSql()
	if err != nil {
		return model.SubscriptionPlan{}, err
	}

	var plan model.SubscriptionPlan
	if err := r.db.GetContext(ctx, &plan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SubscriptionPlan{}, errs.ErrNotFound
		}
		return model.SubscriptionPlan{}, err
	}
	return plan, nil
}

const subscriptionSelect = `
select ss.id,
       ss.student_id,
       ss.plan_id,
       ss.start_date,
       p.name         as plan_name,
       p.max_books,
       p.duration_days,
       p.fine_per_day
from student_subscription ss
         join subscription_plan p on p.id = ss.plan_id`

// MostRecentSubscription returns the latest subscription row for the student
// regardless of expiry. Expiry is the caller's concern: the borrow path
// rejects expired plans while the fine-rate lookup deliberately does not.
func (r *repository) MostRecentSubscription(ctx context.Context, studentID int64) (model.Subscription, error) {
	q := subscriptionSelect + `
where ss.student_id = $1
order by ss.id desc
limit 1`

	var sub model.Subscription
	if err := r.db.GetContext(ctx, &sub, q, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subscription{}, errs.ErrNotFound
		}
		return model.Subscription{}, err
	}
	return sub, nil
}

// ReplaceSubscription deletes any prior subscription rows for the student and
// inserts the new one. The old row is dropped, not archived.
func (r *repository) ReplaceSubscription(ctx context.Context, studentID, planID int64, start time.Time) (sub model.Subscription, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Subscription{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`delete from student_subscription where student_id = $1`, studentID); err != nil {
		return model.Subscription{}, err
	}

	var id int64
	if err = tx.GetContext(ctx, &id, `
insert into student_subscription (student_id, plan_id, start_date)
values ($1, $2, $3)
returning id`, studentID, planID, start); err != nil {
		return model.Subscription{}, err
	}

	if err = tx.GetContext(ctx, &sub, subscriptionSelect+` where ss.id = $1`, id); err != nil {
		return model.Subscription{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.Subscription{}, err
	}
	return sub, nil
}
