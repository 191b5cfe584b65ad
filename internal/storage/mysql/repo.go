package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"

	"stayhub/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// isDuplicate reports whether err is a MySQL unique-key violation (1062),
// the store-specific signal behind domain.ErrConflict.
func isDuplicate(err error) bool {
	var me *mysqldrv.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, nullStr(u.Tel), u.Email, u.PasswordHash, string(u.Role), u.CreatedAt)
	if isDuplicate(err) {
		return fmt.Errorf("email %s already registered: %w", u.Email, domain.ErrConflict)
	}
	return err
}

func (r *Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserSQL, id))
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var tel sql.NullString
	var role string
	if err := row.Scan(&u.ID, &u.Name, &tel, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.Tel = tel.String
	u.Role = domain.Role(role)
	return u, nil
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.ID, h.Name, h.Address, h.District, h.Province, h.Postalcode, nullStr(h.Tel), h.Region, h.CreatedAt)
	if isDuplicate(err) {
		return fmt.Errorf("hotel name %q already exists: %w", h.Name, domain.ErrConflict)
	}
	return err
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var tel sql.NullString
	if err := row.Scan(&h.ID, &h.Name, &h.Address, &h.District, &h.Province,
		&h.Postalcode, &tel, &h.Region, &h.AvgRating, &h.NumReviews, &h.CreatedAt); err != nil {
		return domain.Hotel{}, err
	}
	h.Tel = tel.String
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context, q domain.ListQuery) ([]domain.Hotel, int64, error) {
	listSQL, listArgs, countSQL, countArgs := buildHotelList(q)

	var total int64
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, h)
	}
	return out, total, rows.Err()
}

func (r *Repo) UpdateHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, updateHotelSQL,
		h.Name, h.Address, h.District, h.Province, h.Postalcode, nullStr(h.Tel), h.Region, h.ID)
	if isDuplicate(err) {
		return fmt.Errorf("hotel name %q already exists: %w", h.Name, domain.ErrConflict)
	}
	return err
}

// DeleteHotel removes the hotel and its dependent bookings and reviews in
// one transaction.
func (r *Repo) DeleteHotel(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reviews WHERE hotel_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE hotel_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *Repo) SetHotelStats(ctx context.Context, id string, avgRating float64, numReviews int) error {
	_, err := r.db.ExecContext(ctx, setHotelStatsSQL, avgRating, numReviews, id)
	return err
}
