package repository

import (
	"context"
	"database/sql"
	"fmt"

	"aurora_backend/internal/common"
	"aurora_backend/internal/domain/model"
)

type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) (int64, error)
	ListAll(ctx context.Context) ([]model.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

type pgReservationRepository struct {
	db *sql.DB
}

func NewPgReservationRepository(db *sql.DB) ReservationRepository {
	return &pgReservationRepository{db: db}
}

// Create inserts the row and returns the store-assigned identifier.
func (r *pgReservationRepository) Create(ctx context.Context, res *model.Reservation) (int64, error) {
	query := `INSERT INTO reservation (nom_client, email, date_arrivee, date_depart, chambre)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		res.GuestName, res.GuestEmail, res.ArrivalDate, res.DepartDate, res.Room,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("pgReservationRepository.Create: %w", err)
	}
	return id, nil
}

func (r *pgReservationRepository) ListAll(ctx context.Context) ([]model.Reservation, error) {
	query := `SELECT id, nom_client, email, date_arrivee, date_depart, chambre
	          FROM reservation ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgReservationRepository.ListAll query: %w", err)
	}
	defer rows.Close()

	reservations := []model.Reservation{}
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.GuestName, &res.GuestEmail, &res.ArrivalDate, &res.DepartDate, &res.Room); err != nil {
			return nil, fmt.Errorf("pgReservationRepository.ListAll scan: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgReservationRepository.ListAll rows.Err: %w", err)
	}
	return reservations, nil
}

// Delete is a hard removal; a miss is reported as ErrNotFound so the handler
// can answer 404 instead of pretending the row existed.
func (r *pgReservationRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservation WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgReservationRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgReservationRepository.Delete rows affected: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
