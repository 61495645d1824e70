package port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

type EnquiryRepositoryPort interface {
	Save(ctx context.Context, enquiry domain.Enquiry) error
}
