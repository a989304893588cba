package services

import (
	"errors"
	"testing"

	"tenthouse_backend/internal/models"
	"tenthouse_backend/internal/repositories"
)

type fakeReviewRepo struct {
	reviews map[int64]*models.Review
	nextID  int64
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[int64]*models.Review{}}
}

func (f *fakeReviewRepo) CreateReview(_ repositories.SQLExecutor, r *models.Review) (int64, error) {
	f.nextID++
	r.ID = f.nextID
	stored := *r
	f.reviews[r.ID] = &stored
	return r.ID, nil
}

func (f *fakeReviewRepo) GetReviews(approvedOnly bool) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if approvedOnly && !r.IsApproved {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetReviewByID(id int64) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copy := *r
	return &copy, nil
}

func (f *fakeReviewRepo) SetApproved(_ repositories.SQLExecutor, id int64, approved bool) error {
	r, ok := f.reviews[id]
	if !ok {
		return repositories.ErrNotFound
	}
	r.IsApproved = approved
	return nil
}

func (f *fakeReviewRepo) DeleteReview(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.reviews[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

func validReview() SubmitReviewRequest {
	return SubmitReviewRequest{
		Name:      "Meera Sharma",
		EventType: "Wedding",
		Rating:    5,
		Message:   "The mandap decoration was stunning.",
	}
}

func TestSubmitReviewStartsPending(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	review, err := svc.SubmitReview(validReview())
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if review.IsApproved {
		t.Error("new reviews must start unapproved")
	}
	if review.ID == 0 {
		t.Error("expected a server-assigned id")
	}

	all, _ := svc.GetAllReviews()
	if len(all) != 1 || all[0].Name != "Meera Sharma" || all[0].Rating != 5 {
		t.Errorf("admin listing should contain the submitted review, got %v", all)
	}
	approved, _ := svc.GetApprovedReviews()
	if len(approved) != 0 {
		t.Errorf("pending review must not be publicly visible, got %v", approved)
	}
}

func TestSubmitReviewRejectsInvalidRating(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	for _, rating := range []int{0, 1, 2, 6} {
		req := validReview()
		req.Rating = rating
		if _, err := svc.SubmitReview(req); !errors.Is(err, ErrReviewValidation) {
			t.Errorf("rating %d: expected ErrReviewValidation, got %v", rating, err)
		}
	}
	if len(repo.reviews) != 0 {
		t.Error("invalid submissions must not be persisted")
	}
}

func TestSubmitReviewRejectsMissingFields(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), nil)

	for _, mutate := range []func(*SubmitReviewRequest){
		func(r *SubmitReviewRequest) { r.Name = "" },
		func(r *SubmitReviewRequest) { r.EventType = " " },
		func(r *SubmitReviewRequest) { r.Message = "" },
	} {
		req := validReview()
		mutate(&req)
		if _, err := svc.SubmitReview(req); !errors.Is(err, ErrReviewValidation) {
			t.Errorf("expected ErrReviewValidation, got %v", err)
		}
	}
}

func TestApproveReviewIsIdempotent(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	review, err := svc.SubmitReview(validReview())
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	if err := svc.ApproveReview(review.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if err := svc.ApproveReview(review.ID); err != nil {
		t.Fatalf("second approve must be a no-op, got: %v", err)
	}

	approved, _ := svc.GetApprovedReviews()
	if len(approved) != 1 || !approved[0].IsApproved {
		t.Errorf("approved review should now be publicly visible, got %v", approved)
	}
}

func TestApproveReviewNotFound(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), nil)
	if err := svc.ApproveReview(42); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestDeleteReviewIsIrreversible(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, nil)

	review, err := svc.SubmitReview(validReview())
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	if err := svc.DeleteReview(review.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	all, _ := svc.GetAllReviews()
	if len(all) != 0 {
		t.Errorf("deleted review still listed: %v", all)
	}
	if err := svc.DeleteReview(review.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Errorf("expected ErrReviewNotFound on second delete, got %v", err)
	}
}
