package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/campuslib/circulation/internal/errs"
	"github.com/campuslib/circulation/internal/model"
)

// CreateStudentAccount inserts the profile and the student row together.
func (r *repository) CreateStudentAccount(ctx context.Context, req model.RegisterRequest, passwordHash string) (st model.Student, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Student{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var profileID int64
	if err = tx.GetContext(ctx, &profileID, `
insert into user_profile (username, email, phone_no, emergency_contact_no, role, password_hash)
values ($1, $2, $3, $4, 'student', $5)
returning id`, req.Username, req.Email, req.PhoneNo, req.EmergencyNo, passwordHash); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrUserExists
		}
		return model.Student{}, err
	}

	var studentID int64
	if err = tx.GetContext(ctx, &studentID, `
insert into student (user_profile_id, roll_number, branch, year)
values ($1, $2, $3, $4)
returning id`, profileID, req.RollNumber, req.Branch, req.Year); err != nil {
		if isUniqueViolation(err) {
			err = errs.ErrUserExists
		}
		return model.Student{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.Student{}, err
	}

	return model.Student{
		ID:            studentID,
		UserProfileID: profileID,
		Username:      req.Username,
		Email:         req.Email,
		RollNumber:    req.RollNumber,
		Branch:        req.Branch,
		Year:          req.Year,
	}, nil
}

func (r *repository) GetUser(ctx context.Context, username string) (model.UserProfile, error) {
	query, args, err := qb.Select("id", "username", "email", "phone_no", "emergency_contact_no", "role", "password_hash", "is_active").
		From(userTableName).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return model.UserProfile{}, err
	}

	var user model.UserProfile
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.UserProfile{}, errs.ErrNotFound
		}
		return model.UserProfile{}, err
	}
	return user, nil
}

func (r *repository) GetStudent(ctx context.Context, username string) (model.Student, error) {
	q := `
select s.id,
       s.user_profile_id,
       up.username,
       up.email,
       s.roll_number,
       s.branch,
       s.year
from student s
         join user_profile up on up.id = s.user_profile_id
where up.username = $1`

	var st model.Student
	if err := r.db.GetContext(ctx, &st, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Student{}, errs.ErrNotFound
		}
		return model.Student{}, err
	}
	return st, nil
}
