package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/fieldcrypt"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// AspiranteRepository provides data access methods for the aspirante table.
// identificacion and telefono pass through the field cipher on the way in
// and out; every other column is stored as received.
type AspiranteRepository struct {
	db     *sql.DB
	tx     *sql.Tx
	cipher *fieldcrypt.Cipher
}

// NewAspiranteRepository creates a new AspiranteRepository with the provided database connection.
// A nil cipher stores personal data in plaintext.
func NewAspiranteRepository(db *sql.DB, cipher *fieldcrypt.Cipher) *AspiranteRepository {
	if cipher == nil {
		cipher = &fieldcrypt.Cipher{}
	}
	return &AspiranteRepository{db: db, cipher: cipher}
}

// WithTx returns a new AspiranteRepository scoped to the provided transaction.
func (r *AspiranteRepository) WithTx(tx *sql.Tx) *AspiranteRepository {
	return &AspiranteRepository{
		db:     r.db,
		tx:     tx,
		cipher: r.cipher,
	}
}

// getQuerier returns the active transaction if one is set, otherwise the database connection.
func (r *AspiranteRepository) getQuerier() interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const aspiranteColumns = `
	id, COALESCE(legacy_id, ''), nombre, identificacion, telefono, tipo_cafe,
	peso, precio, precio_total, estado, estado_monetario, date_create
`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *AspiranteRepository) scan(row rowScanner) (model.Aspirante, error) {
	var a model.Aspirante
	err := row.Scan(
		&a.ID,
		&a.LegacyID,
		&a.Name,
		&a.Identification,
		&a.Phone,
		&a.CoffeeType,
		&a.Weight,
		&a.Price,
		&a.TotalPrice,
		&a.Kind,
		&a.PaymentStatus,
		&a.CreatedAt,
	)
	if err != nil {
		return model.Aspirante{}, err
	}

	if a.Identification, err = r.cipher.Decrypt(a.Identification); err != nil {
		return model.Aspirante{}, fmt.Errorf("%w: identificacion of %s: %w", apperrors.ErrFailedToDecryptField, a.ID, err)
	}
	if a.Phone, err = r.cipher.Decrypt(a.Phone); err != nil {
		return model.Aspirante{}, fmt.Errorf("%w: telefono of %s: %w", apperrors.ErrFailedToDecryptField, a.ID, err)
	}
	return a, nil
}

// ListAspirantes retrieves every aspirante in insertion order.
// Returns an empty slice if the table is empty.
func (r *AspiranteRepository) ListAspirantes(ctx context.Context) ([]model.Aspirante, error) {
	query := `SELECT ` + aspiranteColumns + ` FROM aspirante ORDER BY rowid ASC`

	rows, err := r.getQuerier().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query aspirante table: %w", err)
	}
	defer rows.Close()

	aspirantes := []model.Aspirante{}
	for rows.Next() {
		a, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan aspirante table results: %w", err)
		}
		aspirantes = append(aspirantes, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aspirante table: %w", err)
	}

	return aspirantes, nil
}

// GetAspirante retrieves a single aspirante by ID.
// Returns apperrors.ErrAspiranteNotFound if no row matches.
func (r *AspiranteRepository) GetAspirante(ctx context.Context, id string) (model.Aspirante, error) {
	query := `SELECT ` + aspiranteColumns + ` FROM aspirante WHERE id = ?`

	a, err := r.scan(r.getQuerier().QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Aspirante{}, apperrors.ErrAspiranteNotFound
	}
	if err != nil {
		return model.Aspirante{}, fmt.Errorf("failed to get aspirante: %w", err)
	}
	return a, nil
}

// InsertAspirante stores a new aspirante. The caller assigns ID and CreatedAt.
func (r *AspiranteRepository) InsertAspirante(ctx context.Context, a *model.Aspirante) error {
	identification, phone, err := r.encryptPII(a)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO aspirante (
			id, legacy_id, nombre, identificacion, telefono, tipo_cafe,
			peso, precio, precio_total, estado, estado_monetario, date_create
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.getQuerier().ExecContext(ctx, query,
		a.ID,
		nullIfEmpty(a.LegacyID),
		a.Name,
		identification,
		phone,
		a.CoffeeType,
		a.Weight,
		a.Price,
		a.TotalPrice,
		a.Kind,
		a.PaymentStatus,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert aspirante: %w", err)
	}

	return nil
}

// UpdateAspirante overwrites the editable columns of an existing aspirante.
// id, legacy_id and date_create are never changed.
func (r *AspiranteRepository) UpdateAspirante(ctx context.Context, a *model.Aspirante) error {
	identification, phone, err := r.encryptPII(a)
	if err != nil {
		return err
	}

	query := `
		UPDATE aspirante
		SET nombre = ?, identificacion = ?, telefono = ?, tipo_cafe = ?,
			peso = ?, precio = ?, precio_total = ?, estado = ?, estado_monetario = ?
		WHERE id = ?
	`

	result, err := r.getQuerier().ExecContext(ctx, query,
		a.Name,
		identification,
		phone,
		a.CoffeeType,
		a.Weight,
		a.Price,
		a.TotalPrice,
		a.Kind,
		a.PaymentStatus,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update aspirante: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAspiranteNotFound
	}

	return nil
}

// DeleteAspirante removes an aspirante by ID.
func (r *AspiranteRepository) DeleteAspirante(ctx context.Context, id string) error {
	query := `DELETE FROM aspirante WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete aspirante: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAspiranteNotFound
	}

	return nil
}

// LegacyIDExists reports whether a record imported from the legacy API with
// the given id is already stored.
func (r *AspiranteRepository) LegacyIDExists(ctx context.Context, legacyID string) (bool, error) {
	var n int
	err := r.getQuerier().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM aspirante WHERE legacy_id = ?`, legacyID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up legacy id: %w", err)
	}
	return n > 0, nil
}

func (r *AspiranteRepository) encryptPII(a *model.Aspirante) (identification, phone string, err error) {
	if identification, err = r.cipher.Encrypt(a.Identification); err != nil {
		return "", "", fmt.Errorf("%w: identificacion: %w", apperrors.ErrFailedToEncryptField, err)
	}
	if phone, err = r.cipher.Encrypt(a.Phone); err != nil {
		return "", "", fmt.Errorf("%w: telefono: %w", apperrors.ErrFailedToEncryptField, err)
	}
	return identification, phone, nil
}
