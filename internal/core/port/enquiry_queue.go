package port

import (
	"context"

	"listings-gateway/internal/core/domain"
)

// EnquiryQueuePort publishes enquiry.created events for downstream
// notification consumers. Publishing is best-effort: the enquiry is already
// persisted when this is called.
type EnquiryQueuePort interface {
	PublishEnquiryCreated(ctx context.Context, enquiry domain.Enquiry) error
}
