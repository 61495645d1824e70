package usecase

import (
	"context"
	"fmt"

	"listings-gateway/internal/contextkeys"
	"listings-gateway/internal/core/domain"
	"listings-gateway/internal/core/port"
)

// SubmitEnquiryUseCase persists a lead-capture enquiry and publishes an
// enquiry.created event. Persistence failure fails the submission; a
// publish failure does not, since the enquiry is already stored.
type SubmitEnquiryUseCase struct {
	repo  port.EnquiryRepositoryPort
	queue port.EnquiryQueuePort
}

func NewSubmitEnquiryUseCase(repo port.EnquiryRepositoryPort, queue port.EnquiryQueuePort) *SubmitEnquiryUseCase {
	return &SubmitEnquiryUseCase{repo: repo, queue: queue}
}

func (uc *SubmitEnquiryUseCase) Execute(ctx context.Context, enquiry domain.Enquiry) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "SubmitEnquiry",
		"enquiry_id": enquiry.ID.String(),
		"kind":       string(enquiry.Kind),
	})

	if err := uc.repo.Save(ctx, enquiry); err != nil {
		logger.Error("Failed to persist enquiry", err, nil)
		return fmt.Errorf("submit enquiry: %w", err)
	}

	if uc.queue != nil {
		if err := uc.queue.PublishEnquiryCreated(ctx, enquiry); err != nil {
			logger.Warn("Enquiry stored but event publish failed", port.Fields{"error": err.Error()})
		}
	}

	logger.Info("Enquiry submitted", nil)
	return nil
}
