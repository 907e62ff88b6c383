package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

func (r *repository) OpenRecordCount(ctx context.Context, studentID int64) (int, error) {
	q := `
select count(*) from borrow_record
where student_id = $1 and return_date is null`

	var count int
	if err := r.db.QueryRowContext(ctx, q, studentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) UnpaidFineCount(ctx context.Context, studentID int64) (int, error) {
	q := `
select count(*) from fine f
         join borrow_record br on br.id = f.borrow_record_id
where br.student_id = $1 and not f.paid`

	var count int
	if err := r.db.QueryRowContext(ctx, q, studentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBorrow locks the first available copy of the book, opens the borrow
// record and flips the copy to borrowed, all in one transaction. The copy is
// picked ordered by copy_id so the choice is deterministic for a given
// snapshot. Row-level lock keeps two concurrent borrows off the same copy.
func (r *repository) CreateBorrow(ctx context.Context, studentID, bookID int64, borrowDate, dueDate time.Time) (bb model.BorrowedBook, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowedBook{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var cp model.BookCopy
	err = tx.GetContext(ctx, &cp, `
select id, book_id, copy_id, status, location
from book_copy
where book_id = $1 and status = 'available'
order by copy_id
limit 1
for update`, bookID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowedBook{}, errs.ErrNotAvailable
		}
		return model.BorrowedBook{}, err
	}

	var rec model.BorrowRecord
	if err = tx.GetContext(ctx, &rec, `
insert into borrow_record (record_uid, student_id, book_copy_id, borrow_date, due_date)
values ($1, $2, $3, $4, $5)
returning id, record_uid, student_id, book_copy_id, borrow_date, due_date, return_date`,
		uuid.New(), studentID, cp.ID, borrowDate, dueDate); err != nil {
		r.log.Error("CreateBorrow insert", zap.Int64("bookID", bookID), zap.Error(err))
		return model.BorrowedBook{}, err
	}

	if _, err = tx.ExecContext(ctx,
		`update book_copy set status = 'borrowed' where id = $1`, cp.ID); err != nil {
		return model.BorrowedBook{}, err
	}

	var title string
	if err = tx.GetContext(ctx, &title, `select title from book where id = $1`, bookID); err != nil {
		return model.BorrowedBook{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.BorrowedBook{}, err
	}

	return model.BorrowedBook{
		BorrowRecord: rec,
		Title:        title,
		CopyID:       cp.CopyID,
		Location:     cp.Location,
	}, nil
}

func (r *repository) GetRecordByUID(ctx context.Context, recordUID string) (model.BorrowRecord, error) {
	q := `
select id, record_uid, student_id, book_copy_id, borrow_date, due_date, return_date
from borrow_record
where record_uid = $1`

	var rec model.BorrowRecord
	if err := r.db.GetContext(ctx, &rec, q, recordUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, errs.ErrNotFound
		}
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

// CloseBorrow sets the return date, restores the copy and, when fineAmount is
// positive, materializes the fine, atomically. The record row is locked for
// the duration; a record that is already closed yields ErrAlreadyReturned.
// The unique constraint on fine.borrow_record_id is the last-resort guard
// against two fines for one record.
func (r *repository) CloseBorrow(ctx context.Context, recordID int64, returnDate time.Time, fineAmount float64) (fine *model.Fine, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var rec model.BorrowRecord
	err = tx.GetContext(ctx, &rec, `
select id, record_uid, student_id, book_copy_id, borrow_date, due_date, return_date
from borrow_record
where id = $1
for update`, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if rec.ReturnDate != nil {
		err = errs.ErrAlreadyReturned
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`update borrow_record set return_date = $2 where id = $1`, recordID, returnDate); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx,
		`update book_copy set status = 'available' where id = $1`, rec.BookCopyID); err != nil {
		return nil, err
	}

	if fineAmount > 0 {
		var f model.Fine
		if err = tx.GetContext(ctx, &f, `
insert into fine (borrow_record_id, amount, paid)
values ($1, $2, false)
returning id, borrow_record_id, amount, paid`, recordID, fineAmount); err != nil {
			if isUniqueViolation(err) {
				err = errs.ErrAlreadyReturned
			}
			return nil, err
		}
		fine = &f
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return fine, nil
}

const borrowedBookSelect = `
select br.id,
       br.record_uid,
       br.student_id,
       br.book_copy_id,
       br.borrow_date,
       br.due_date,
       br.return_date,
       b.title,
       bc.copy_id,
       bc.location
from borrow_record br
         join book_copy bc on bc.id = br.book_copy_id
         join book b on b.id = bc.book_id`

func (r *repository) ListRecords(ctx context.Context, studentID int64) ([]model.BorrowedBook, error) {
	q := borrowedBookSelect + `
where br.student_id = $1
order by br.id desc`

	var items []model.BorrowedBook
	if err := r.db.SelectContext(ctx, &items, q, studentID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListFines(ctx context.Context, studentID int64) ([]model.FineInfo, error) {
	q := `
select br.record_uid,
       b.title,
       br.due_date,
       br.return_date,
       f.amount,
       f.paid
from fine f
         join borrow_record br on br.id = f.borrow_record_id
         join book_copy bc on bc.id = br.book_copy_id
         join book b on b.id = bc.book_id
where br.student_id = $1
order by f.id desc`

	var fines []model.FineInfo
	if err := r.db.SelectContext(ctx, &fines, q, studentID); err != nil {
		return nil, err
	}
	return fines, nil
}

func (r *repository) PayFine(ctx context.Context, studentID int64, recordUID string) error {
	q := `
update fine f
set paid = true
from borrow_record br
where f.borrow_record_id = br.id
  and br.record_uid = $1
  and br.student_id = $2
  and not f.paid`

	res, err := r.db.ExecContext(ctx, q, recordUID, studentID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// No open fine matched: either the fine is already settled or the
		// record has no fine for this student at all.
		var paid bool
		err := r.db.QueryRowContext(ctx, `
select f.paid
from fine f
         join borrow_record br on br.id = f.borrow_record_id
where br.record_uid = $1
  and br.student_id = $2`, recordUID, studentID).Scan(&paid)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return errs.ErrNotFound
		case err != nil:
			return err
		case paid:
			return errs.ErrFinePaid
		}
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ExportBorrowRecords(ctx context.Context) ([]model.BorrowExportRow, error) {
	q := `
select up.username as student,
       b.title,
       br.borrow_date,
       br.due_date,
       br.return_date,
       f.amount as fine_amount,
       f.paid   as fine_paid
from borrow_record br
         join student s on s.id = br.student_id
         join user_profile up on up.id = s.user_profile_id
         join book_copy bc on bc.id = br.book_copy_id
         join book b on b.id = bc.book_id
         left join fine f on f.borrow_record_id = br.id
order by br.id`

	var rows []model.BorrowExportRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

const reminderTargetSelect = `
select up.email,
       up.username,
       b.title,
       br.due_date
from borrow_record br
         join student s on s.id = br.student_id
         join user_profile up on up.id = s.user_profile_id
         join book_copy bc on bc.id = br.book_copy_id
         join book b on b.id = bc.book_id
where br.return_date is null`

func (r *repository) DueOn(ctx context.Context, day time.Time) ([]model.ReminderTarget, error) {
	q := reminderTargetSelect + ` and br.due_date = $1`

	var targets []model.ReminderTarget
	if err := r.db.SelectContext(ctx, &targets, q, day); err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *repository) OverdueSince(ctx context.Context, threshold time.Time) ([]model.ReminderTarget, error) {
	q := reminderTargetSelect + ` and br.due_date <= $1`

	var targets []model.ReminderTarget
	if err := r.db.SelectContext(ctx, &targets, q, threshold); err != nil {
		return nil, err
	}
	return targets, nil
}
