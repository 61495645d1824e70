package usecases_port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

type SubmitEnquiryUseCase interface {
	Execute(ctx context.Context, enquiry domain.Enquiry) error
}
