package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/export"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
)

// ExportService renders downloads of the records table.
type ExportService struct {
	aspiranteService *AspiranteService
	loc              *time.Location
}

// NewExportService creates a new ExportService.
func NewExportService(aspiranteService *AspiranteService, loc *time.Location) *ExportService {
	return &ExportService{
		aspiranteService: aspiranteService,
		loc:              loc,
	}
}

// CSV renders the records matching search within the selected period.
func (s *ExportService) CSV(ctx context.Context, search string, sel period.Selector) ([]byte, error) {
	records, err := s.aspiranteService.ListAspirantes(ctx, search, sel)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToExportCSV, err)
	}
	return buf.Bytes(), nil
}

// Receipt renders the PDF receipt of one aspirante.
func (s *ExportService) Receipt(ctx context.Context, id string) ([]byte, error) {
	a, err := s.aspiranteService.GetAspirante(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteReceipt(&buf, a, s.loc); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrFailedToRenderPDF, err)
	}
	return buf.Bytes(), nil
}
