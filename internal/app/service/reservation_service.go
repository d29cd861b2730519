package service

import (
	"context"
	"errors"
	"fmt"

	"aurora_backend/internal/common"
	"aurora_backend/internal/domain/model"
	"aurora_backend/internal/domain/repository"
)

// ReservationService is the booking ledger: create, list, delete.
type ReservationService struct {
	reservationRepo repository.ReservationRepository
}

func NewReservationService(reservationRepo repository.ReservationRepository) *ReservationService {
	return &ReservationService{reservationRepo: reservationRepo}
}

type CreateReservationRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DateArrivee string `json:"dateArrivee"`
	DateDepart  string `json:"dateDepart"`
	Chambre     string `json:"chambre"`
}

// Create persists the booking as submitted. Dates are opaque strings here:
// no ordering or room-availability checks are applied.
func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (int64, error) {
	if req.Username == "" || req.Email == "" || req.DateArrivee == "" || req.DateDepart == "" || req.Chambre == "" {
		return 0, fmt.Errorf("all reservation fields are required: %w", common.ErrBadRequest)
	}

	res := &model.Reservation{
		GuestName:   req.Username,
		GuestEmail:  req.Email,
		ArrivalDate: req.DateArrivee,
		DepartDate:  req.DateDepart,
		Room:        req.Chambre,
	}

	id, err := s.reservationRepo.Create(ctx, res)
	if err != nil {
		return 0, fmt.Errorf("failed to create reservation: %w", err)
	}
	return id, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]model.Reservation, error) {
	reservations, err := s.reservationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}
