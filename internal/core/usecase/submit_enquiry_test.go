package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"listings-gateway/internal/core/domain"
)

type fakeEnquiryRepo struct {
	err   error
	saved []domain.Enquiry
}

func (f *fakeEnquiryRepo) Save(ctx context.Context, e domain.Enquiry) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, e)
	return nil
}

type fakeEnquiryQueue struct {
	err       error
	published []domain.Enquiry
}

func (f *fakeEnquiryQueue) PublishEnquiryCreated(ctx context.Context, e domain.Enquiry) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, e)
	return nil
}

func TestSubmitEnquiry(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	queue := &fakeEnquiryQueue{}
	uc := NewSubmitEnquiryUseCase(repo, queue)

	enquiry := domain.Enquiry{ID: uuid.New(), Kind: domain.EnquiryGeneral, Name: "Jo", Email: "jo@example.com"}
	if err := uc.Execute(context.Background(), enquiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 || len(queue.published) != 1 {
		t.Errorf("saved=%d published=%d, want 1/1", len(repo.saved), len(queue.published))
	}
}

func TestSubmitEnquiryRepoFailureFails(t *testing.T) {
	repo := &fakeEnquiryRepo{err: errors.New("db down")}
	queue := &fakeEnquiryQueue{}
	uc := NewSubmitEnquiryUseCase(repo, queue)

	if err := uc.Execute(context.Background(), domain.Enquiry{ID: uuid.New()}); err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if len(queue.published) != 0 {
		t.Error("nothing should be published when persistence fails")
	}
}

func TestSubmitEnquiryPublishFailureIsSoft(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	queue := &fakeEnquiryQueue{err: errors.New("broker down")}
	uc := NewSubmitEnquiryUseCase(repo, queue)

	if err := uc.Execute(context.Background(), domain.Enquiry{ID: uuid.New()}); err != nil {
		t.Fatalf("publish failure must not fail the submission: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved = %d, want 1", len(repo.saved))
	}
}

func TestSubmitEnquiryWithoutQueue(t *testing.T) {
	repo := &fakeEnquiryRepo{}
	uc := NewSubmitEnquiryUseCase(repo, nil)

	if err := uc.Execute(context.Background(), domain.Enquiry{ID: uuid.New()}); err != nil {
		t.Fatalf("nil queue must be tolerated: %v", err)
	}
}
