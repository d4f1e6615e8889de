package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/AlexNT-maker/auto-payroll-system/internal/models"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
)

// --- Custom Service Errors for Boats ---
var (
	ErrBoatNotFound   = errors.New("boat not found")
	ErrBoatValidation = errors.New("boat data validation error")
	ErrBoatNameExists = errors.New("a boat with this name already exists")
	ErrBoatInUse      = errors.New("boat cannot be deleted as it has attendance records")
	ErrBoatReserved   = errors.New("the placeholder boat cannot be changed")
)

// --- Boat DTOs ---
type BoatRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- BoatService Interface ---
type BoatService interface {
	CreateBoat(ctx context.Context, req BoatRequest) (*models.Boat, error)
	GetBoatByID(ctx context.Context, boatID int64) (*models.Boat, error)
	GetBoats(ctx context.Context) ([]models.Boat, error)
	UpdateBoat(ctx context.Context, boatID int64, req BoatRequest) (*models.Boat, error)
	DeleteBoat(ctx context.Context, boatID int64) error
}

type boatService struct {
	boatRepo repositories.BoatRepository
	db       *sql.DB
}

// NewBoatService creates a new instance of BoatService.
func NewBoatService(repo repositories.BoatRepository, db *sql.DB) BoatService {
	return &boatService{boatRepo: repo, db: db}
}

func boatName(req BoatRequest) (string, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", ErrBoatValidation)
	}
	return name, nil
}

func (s *boatService) CreateBoat(ctx context.Context, req BoatRequest) (*models.Boat, error) {
	name, err := boatName(req)
	if err != nil {
		return nil, err
	}
	boat, err := s.boatRepo.CreateBoat(ctx, s.db, &models.Boat{Name: name})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %s", ErrBoatNameExists, name)
		}
		return nil, fmt.Errorf("failed to create boat in repository: %w", err)
	}
	return boat, nil
}

func (s *boatService) GetBoatByID(ctx context.Context, boatID int64) (*models.Boat, error) {
	boat, err := s.boatRepo.GetBoatByID(ctx, boatID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat by ID: %w", err)
	}
	return boat, nil
}

func (s *boatService) GetBoats(ctx context.Context) ([]models.Boat, error) {
	boats, err := s.boatRepo.GetBoats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get boats: %w", err)
	}
	return boats, nil
}

func (s *boatService) UpdateBoat(ctx context.Context, boatID int64, req BoatRequest) (*models.Boat, error) {
	if boatID == models.SentinelBoatID {
		return nil, ErrBoatReserved
	}
	name, err := boatName(req)
	if err != nil {
		return nil, err
	}
	boat, err := s.boatRepo.UpdateBoat(ctx, s.db, &models.Boat{ID: boatID, Name: name})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrBoatNotFound
		case errors.Is(err, repositories.ErrDuplicateKey):
			return nil, fmt.Errorf("%w: %s", ErrBoatNameExists, name)
		}
		return nil, fmt.Errorf("failed to update boat: %w", err)
	}
	return boat, nil
}

// DeleteBoat refuses the placeholder boat: absent and extra rows reference it.
func (s *boatService) DeleteBoat(ctx context.Context, boatID int64) error {
	if boatID == models.SentinelBoatID {
		return ErrBoatReserved
	}
	err := s.boatRepo.DeleteBoat(ctx, s.db, boatID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBoatNotFound
		}
		if errors.Is(err, repositories.ErrForeignKey) {
			return ErrBoatInUse
		}
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	return nil
}
