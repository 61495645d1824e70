package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

// PostgresEnquiryRepository persists submitted enquiry forms.
type PostgresEnquiryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEnquiryRepository(pool *pgxpool.Pool) (*PostgresEnquiryRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresEnquiryRepository{pool: pool}, nil
}

// Save inserts one enquiry. A duplicate ID means the same submission was
// retried and is treated as success.
func (r *PostgresEnquiryRepository) Save(ctx context.Context, enquiry domain.Enquiry) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresEnquiryRepository",
		"method":     "Save",
		"enquiry_id": enquiry.ID,
		"kind":       enquiry.Kind,
	})

	repoLogger.Debug("Attempting to save enquiry.", nil)
	query := `
		INSERT INTO enquiries (id, kind, name, email, phone, message, property_address, property_type, listing_id, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		enquiry.ID,
		string(enquiry.Kind),
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.Message,
		enquiry.PropertyAddress,
		enquiry.PropertyType,
		enquiry.ListingID,
		enquiry.SubmittedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			repoLogger.Warn("Enquiry already saved, operation considered successful.", nil)
			return nil
		}
		repoLogger.Error("Failed to save enquiry", err, nil)
		return fmt.Errorf("failed to save enquiry: %w", err)
	}

	repoLogger.Debug("Successfully saved enquiry.", nil)
	return nil
}
