package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/request"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
)

// AspiranteService handles aspirante business logic: CRUD, search and
// period filtering of the records table, and legacy imports.
type AspiranteService struct {
	db            *sql.DB
	aspiranteRepo *repository.AspiranteRepository
	loc           *time.Location
	now           func() time.Time
}

// NewAspiranteService creates a new AspiranteService with the provided repository dependencies.
// loc is the calendar used for period filters.
func NewAspiranteService(
	db *sql.DB,
	aspiranteRepo *repository.AspiranteRepository,
	loc *time.Location,
) *AspiranteService {
	return &AspiranteService{
		db:            db,
		aspiranteRepo: aspiranteRepo,
		loc:           loc,
		now:           time.Now,
	}
}

// WithClock returns a copy of the service that reads the current time from now.
func (s *AspiranteService) WithClock(now func() time.Time) *AspiranteService {
	c := *s
	c.now = now
	return &c
}

// ListAspirantes returns the aspirantes matching search within the selected
// period, in insertion order. search matches nombre or identificacion,
// case-insensitively; an empty search matches everything.
func (s *AspiranteService) ListAspirantes(ctx context.Context, search string, sel period.Selector) ([]model.Aspirante, error) {
	all, err := s.aspiranteRepo.ListAspirantes(ctx)
	if err != nil {
		return nil, err
	}

	records := period.Apply(all, sel, s.now(), s.loc)
	return matchSearch(records, search), nil
}

// GetAspirante retrieves a single aspirante by ID.
func (s *AspiranteService) GetAspirante(ctx context.Context, id string) (model.Aspirante, error) {
	return s.aspiranteRepo.GetAspirante(ctx, id)
}

// CreateAspirante stores a new aspirante from a validated request.
// It assigns the ID and the immutable creation timestamp.
func (s *AspiranteService) CreateAspirante(ctx context.Context, req request.CreateAspiranteRequest) (*model.Aspirante, error) {
	a := &model.Aspirante{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(req.Name),
		Identification: strings.TrimSpace(req.Identification.String()),
		Phone:          strings.TrimSpace(req.Phone.String()),
		CoffeeType:     model.CoffeeType(req.CoffeeType),
		Weight:         strings.TrimSpace(req.Weight.String()),
		Price:          NormalizePrice(req.Price.String()),
		TotalPrice:     strings.TrimSpace(req.TotalPrice.String()),
		Kind:           model.Kind(req.Kind),
		PaymentStatus:  model.PaymentStatus(req.PaymentStatus),
		CreatedAt:      s.now().UTC().Format(time.RFC3339),
	}

	if err := s.aspiranteRepo.InsertAspirante(ctx, a); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToCreateAspirante, err)
	}

	return a, nil
}

// UpdateAspirante applies the provided fields of a validated request.
// The creation timestamp is never changed.
func (s *AspiranteService) UpdateAspirante(ctx context.Context, id string, req request.UpdateAspiranteRequest) (*model.Aspirante, error) {
	a, err := s.aspiranteRepo.GetAspirante(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Identification != nil {
		a.Identification = strings.TrimSpace(req.Identification.String())
	}
	if req.Phone != nil {
		a.Phone = strings.TrimSpace(req.Phone.String())
	}
	if req.CoffeeType != nil {
		a.CoffeeType = model.CoffeeType(*req.CoffeeType)
	}
	if req.Weight != nil {
		a.Weight = strings.TrimSpace(req.Weight.String())
	}
	if req.Price != nil {
		a.Price = NormalizePrice(req.Price.String())
	}
	if req.TotalPrice != nil {
		a.TotalPrice = strings.TrimSpace(req.TotalPrice.String())
	}
	if req.Kind != nil {
		a.Kind = model.Kind(*req.Kind)
	}
	if req.PaymentStatus != nil {
		a.PaymentStatus = model.PaymentStatus(*req.PaymentStatus)
	}

	if err := s.aspiranteRepo.UpdateAspirante(ctx, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

// DeleteAspirante removes an aspirante by ID.
func (s *AspiranteService) DeleteAspirante(ctx context.Context, id string) error {
	return s.aspiranteRepo.DeleteAspirante(ctx, id)
}

// ImportResult reports the outcome of a legacy import.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportLegacy stores records exported from the legacy API in a single
// transaction. Values are stored as received; records whose legacy id was
// already imported are skipped. A record without date_create gets the
// import time.
func (s *AspiranteService) ImportLegacy(ctx context.Context, records []request.LegacyAspirante) (ImportResult, error) {
	var result ImportResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	repo := s.aspiranteRepo.WithTx(tx)
	importedAt := s.now().UTC().Format(time.RFC3339)

	for _, r := range records {
		if r.ID != "" {
			exists, err := repo.LegacyIDExists(ctx, r.ID)
			if err != nil {
				return ImportResult{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToImportAspirantes, err)
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		createdAt := r.CreatedAt.String()
		if strings.TrimSpace(createdAt) == "" {
			createdAt = importedAt
		}

		a := &model.Aspirante{
			ID:             uuid.New().String(),
			LegacyID:       r.ID,
			Name:           r.Name.String(),
			Identification: r.Identification.String(),
			Phone:          r.Phone.String(),
			CoffeeType:     model.CoffeeType(r.CoffeeType),
			Weight:         r.Weight.String(),
			Price:          r.Price.String(),
			TotalPrice:     r.TotalPrice.String(),
			Kind:           model.Kind(r.Kind),
			PaymentStatus:  model.PaymentStatus(r.PaymentStatus),
			CreatedAt:      createdAt,
		}
		if err := repo.InsertAspirante(ctx, a); err != nil {
			return ImportResult{}, fmt.Errorf("%w: %w", apperrors.ErrFailedToImportAspirantes, err)
		}
		result.Imported++
	}

	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("failed to commit import: %w", err)
	}

	return result, nil
}

// NormalizePrice keeps only the digits of a price as typed in the form,
// so "50.000" and "$50,000" both become "50000". Leading zeros are dropped.
func NormalizePrice(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0"
	}
	return digits
}

func matchSearch(records []model.Aspirante, search string) []model.Aspirante {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return records
	}

	out := []model.Aspirante{}
	for _, a := range records {
		if strings.Contains(strings.ToLower(a.Name), search) ||
			strings.Contains(strings.ToLower(a.Identification), search) {
			out = append(out, a)
		}
	}
	return out
}
