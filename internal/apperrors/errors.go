package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAspiranteNotFound indicates that an aspirante with the given ID does not exist.
	ErrAspiranteNotFound = errors.New("aspirante not found")

	// ErrSnapshotNotFound indicates that no weekly snapshot exists for the requested bucket.
	ErrSnapshotNotFound = errors.New("weekly snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrInvalidPeriod indicates that the period query parameters do not describe a valid period.
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrInvalidLegacyPayload indicates that an import body is not a JSON array of legacy records.
	ErrInvalidLegacyPayload = errors.New("invalid legacy payload")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	ErrFailedToRetrieveAspirantes = errors.New("failed to retrieve aspirantes")
	ErrFailedToRetrieveAspirante  = errors.New("failed to retrieve aspirante")
	ErrFailedToCreateAspirante    = errors.New("failed to create aspirante")
	ErrFailedToUpdateAspirante    = errors.New("failed to update aspirante")
	ErrFailedToDeleteAspirante    = errors.New("failed to delete aspirante")
	ErrFailedToImportAspirantes   = errors.New("failed to import aspirantes")

	ErrFailedToGetSummary       = errors.New("failed to get summary")
	ErrFailedToRetrieveSnapshot = errors.New("failed to retrieve weekly snapshots")

	ErrFailedToExportCSV    = errors.New("failed to export CSV")
	ErrFailedToRenderPDF    = errors.New("failed to render receipt")
	ErrFailedToGetVersion   = errors.New("failed to get version information")
	ErrFailedToEncryptField = errors.New("failed to encrypt field")
	ErrFailedToDecryptField = errors.New("failed to decrypt field")
)
