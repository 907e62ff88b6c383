package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
)

const bookSummarySelect = `
select b.id,
       b.title,
       b.isbn,
       coalesce(string_agg(distinct a.name, ', '), '')             as authors,
       coalesce(c.name, '')                                        as category,
       count(distinct bc.id) filter (where bc.status = 'available') as available_copies
from book b
         left join book_author ba on ba.book_id = b.id
         left join author a on a.id = ba.author_id
         left join category c on c.id = b.category_id
         left join book_copy bc on bc.book_id = b.id`

func (r *repository) ListBooks(ctx context.Context) ([]model.BookSummary, error) {
	q := bookSummarySelect + `
group by b.id, c.name
order by b.title`

	var books []model.BookSummary
	if err := r.db.SelectContext(ctx, &books, q); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchBooks filters the catalog by substring match on title, author,
// isbn or category, restricted to books allowed in the student's plan.
func (r *repository) SearchBooks(ctx context.Context, query string, planID int64) ([]model.BookSummary, error) {
	q := bookSummarySelect + `
where exists(select 1 from book_plan bp where bp.book_id = b.id and bp.plan_id = $1)
  and (b.title ilike $2
    or b.isbn ilike $2
    or coalesce(c.name, '') ilike $2
    or exists(select 1
              from book_author ba2
                       join author a2 on a2.id = ba2.author_id
              where ba2.book_id = b.id
                and a2.name ilike $2))
group by b.id, c.name
order by b.title`

	pattern := "%" + query + "%"
	var books []model.BookSummary
	if err := r.db.SelectContext(ctx, &books, q, planID, pattern); err != nil {
		r.log.Error("SearchBooks", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	return books, nil
}

// RecommendedBooks lists the staff-curated shelf, flagged books only.
func (r *repository) RecommendedBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("id", "title", "isbn", "category_id", "description", "published_date", "recommended").
		From(bookTableName).
		Where(sq.Eq{"recommended": true}).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error) {
	query, args, err := qb.Select("id", "book_id", "copy_id", "status", "location").
		From(bookCopyTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("copy_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var copies []model.BookCopy
	if err := r.db.SelectContext(ctx, &copies, query, args...); err != nil {
		return nil, err
	}
	return copies, nil
}

func (r *repository) ExportBooks(ctx context.Context) ([]model.BookExportRow, error) {
	q := `
select b.title,
       coalesce(string_agg(a.name, ', ' order by a.name), '') as authors,
       b.isbn
from book b
         left join book_author ba on ba.book_id = b.id
         left join author a on a.id = ba.author_id
group by b.id
order by b.id`

	var rows []model.BookExportRow
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}

// ImportBookRow get-or-creates the author, category and book of one CSV row
// in a single transaction. Copies are created only for a new book, labelled
// <isbn>-<n>. Reports whether the book was created.
func (r *repository) ImportBookRow(ctx context.Context, row model.ImportBookRow) (created bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var author model.Author
	if err = tx.GetContext(ctx, &author, `
insert into author (name) values ($1)
on conflict (name) do update set name = excluded.name
returning id, name`, row.Author); err != nil {
		return false, errors.Wrap(err, "upsert author")
	}

	var category model.Category
	if err = tx.GetContext(ctx, &category, `
insert into category (name) values ($1)
on conflict (name) do update set name = excluded.name
returning id, name, location`, row.Category); err != nil {
		return false, errors.Wrap(err, "upsert category")
	}

	var bookID int64
	err = tx.GetContext(ctx, &bookID, `select id from book where isbn = $1`, row.ISBN)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		if err = tx.GetContext(ctx, &bookID, `
insert into book (title, isbn, category_id, description, published_date)
values ($1, $2, $3, $4, $5)
returning id`, row.Title, row.ISBN, category.ID, row.Description, row.PublishedDate); err != nil {
			return false, errors.Wrap(err, "insert book")
		}
	case err != nil:
		return false, err
	}

	if _, err = tx.ExecContext(ctx, `
insert into book_author (book_id, author_id) values ($1, $2)
on conflict do nothing`, bookID, author.ID); err != nil {
		return false, errors.Wrap(err, "link author")
	}

	if created {
		for i := 1; i <= row.Copies; i++ {
			if _, err = tx.ExecContext(ctx, `
insert into book_copy (book_id, copy_id, status) values ($1, $2, 'available')`,
				bookID, fmt.Sprintf("%s-%d", row.ISBN, i)); err != nil {
				return false, errors.Wrap(err, "insert copy")
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return created, nil
}
