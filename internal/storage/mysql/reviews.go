package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"stayhub/internal/domain"
)

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID, rv.UserID, rv.HotelID, rv.BookingID, rv.Rating, rv.Comment, nullStr(rv.Title), rv.CreatedAt)
	if isDuplicate(err) {
		// unique index on booking_id: a concurrent duplicate slipped past
		// the pre-check
		return fmt.Errorf("booking %s already reviewed: %w", rv.BookingID, domain.ErrConflict)
	}
	return err
}

func (r *Repo) GetReview(ctx context.Context, id string) (domain.ReviewView, error) {
	row := r.db.QueryRowContext(ctx, reviewViewSQL+` WHERE r.id = ?`, id)
	rv, err := scanReviewView(row)
	if err == sql.ErrNoRows {
		return domain.ReviewView{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *Repo) GetReviewByBooking(ctx context.Context, bookingID string) (domain.Review, error) {
	var rv domain.Review
	var title sql.NullString
	err := r.db.QueryRowContext(ctx, getReviewByBookingSQL, bookingID).
		Scan(&rv.ID, &rv.UserID, &rv.HotelID, &rv.BookingID, &rv.Rating, &rv.Comment, &title, &rv.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	rv.Title = title.String
	return rv, err
}

func (r *Repo) ListReviewsForHotel(ctx context.Context, hotelID string, f domain.RatingFilter, page, limit int) ([]domain.ReviewView, int64, error) {
	where := ` WHERE r.hotel_id = ?`
	args := []any{hotelID}
	switch {
	case f.Exact != nil:
		where += ` AND r.rating = ?`
		args = append(args, *f.Exact)
	case f.Min != nil:
		where += ` AND r.rating >= ?`
		args = append(args, *f.Min)
	}

	var total int64
	countSQL := `SELECT COUNT(*) FROM reviews r` + where
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL := reviewViewSQL + where + ` ORDER BY r.created_at DESC, r.id DESC LIMIT ? OFFSET ?`
	listArgs := append(args, limit, (page-1)*limit)
	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ReviewView
	for rows.Next() {
		rv, err := scanReviewView(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

func scanReviewView(row rowScanner) (domain.ReviewView, error) {
	var rv domain.ReviewView
	var title, authorTel sql.NullString
	if err := row.Scan(&rv.ID, &rv.UserID, &rv.HotelID, &rv.BookingID, &rv.Rating, &rv.Comment, &title, &rv.CreatedAt,
		&rv.Author.ID, &rv.Author.Name, &authorTel, &rv.Author.Email); err != nil {
		return domain.ReviewView{}, err
	}
	rv.Title = title.String
	rv.Author.Tel = authorTel.String
	return rv, nil
}

func (r *Repo) UpdateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, updateReviewSQL, rv.Rating, rv.Comment, nullStr(rv.Title), rv.ID)
	return err
}

func (r *Repo) DeleteReview(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) HotelRatingStats(ctx context.Context, hotelID string) (float64, int, error) {
	var n int
	var avg float64
	if err := r.db.QueryRowContext(ctx, hotelRatingStatsSQL, hotelID).Scan(&n, &avg); err != nil {
		return 0, 0, err
	}
	return avg, n, nil
}
