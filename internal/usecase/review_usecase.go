package usecase

import (
	"context"
	"net/http"
	"strings"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo repo.ReviewRepository
	idGen      IDGenerator
}

func NewReviewUsecase(reviewRepo repo.ReviewRepository, idGen IDGenerator) *ReviewUsecase {
	return &ReviewUsecase{reviewRepo: reviewRepo, idGen: idGen}
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

func (u *ReviewUsecase) Create(ctx context.Context, userID, userName string, in CreateReviewInput) (model.Review, error) {
	if userID == "" {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := model.Review{
		ID:       u.idGen.NewID(),
		UserID:   userID,
		UserName: userName,
		Rating:   in.Rating,
		Comment:  strings.TrimSpace(in.Comment),
	}

	created, err := u.reviewRepo.Create(ctx, review)
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// トップページに出すレビュー（isFeaturedのみ、最新3件）。
func (u *ReviewUsecase) ListFeatured(ctx context.Context) ([]model.Review, error) {
	reviews, err := u.reviewRepo.ListFeatured(ctx, 3)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

func (u *ReviewUsecase) SetFeatured(ctx context.Context, reviewID string, featured bool) error {
	if reviewID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.reviewRepo.SetFeatured(ctx, reviewID, featured)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
