package mysql

import (
	"context"
	"database/sql"
	"time"

	"stayhub/internal/domain"
)

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.UserID, b.HotelID, b.BookDate, b.CreatedAt)
	return err
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.BookingView, error) {
	row := r.db.QueryRowContext(ctx, bookingViewSQL+` WHERE b.id = ?`, id)
	bv, err := scanBookingView(row)
	if err == sql.ErrNoRows {
		return domain.BookingView{}, domain.ErrNotFound
	}
	return bv, err
}

func (r *Repo) ListBookings(ctx context.Context) ([]domain.BookingView, error) {
	return r.queryBookings(ctx, bookingViewSQL+` ORDER BY b.created_at DESC, b.id DESC`)
}

func (r *Repo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.BookingView, error) {
	return r.queryBookings(ctx, bookingViewSQL+` WHERE b.user_id = ? ORDER BY b.created_at DESC, b.id DESC`, userID)
}

func (r *Repo) queryBookings(ctx context.Context, q string, args ...any) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingView
	for rows.Next() {
		bv, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, bv)
	}
	return out, rows.Err()
}

func scanBookingView(row rowScanner) (domain.BookingView, error) {
	var bv domain.BookingView
	var hotelTel sql.NullString
	if err := row.Scan(&bv.ID, &bv.UserID, &bv.HotelID, &bv.BookDate, &bv.CreatedAt,
		&bv.Hotel.ID, &bv.Hotel.Name, &bv.Hotel.Province, &hotelTel); err != nil {
		return domain.BookingView{}, err
	}
	bv.Hotel.Tel = hotelTel.String
	return bv, nil
}

func (r *Repo) CountBookingsByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, countBookingsByUserSQL, userID).Scan(&n)
	return n, err
}

func (r *Repo) UpdateBookingDate(ctx context.Context, id string, date time.Time) error {
	_, err := r.db.ExecContext(ctx, updateBookingDateSQL, date, id)
	return err
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
