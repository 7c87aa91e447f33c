package usecase_test

import (
	"context"
	"testing"

	"campusmarket/internal/domain/model"
	"campusmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewUsecase_Create_RatingBounds(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(ReviewRepoMock)
	uc := usecase.NewReviewUsecase(reviewRepo, &seqIDGen{})

	_, err := uc.Create(ctx, "u1", "Ada", usecase.CreateReviewInput{Rating: 0})
	assertErrContains(t, err, "rating must be between 1 and 5")

	_, err = uc.Create(ctx, "u1", "Ada", usecase.CreateReviewInput{Rating: 6})
	assertErrContains(t, err, "rating must be between 1 and 5")

	reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewUsecase_Create_Success(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(ReviewRepoMock)
	uc := usecase.NewReviewUsecase(reviewRepo, &seqIDGen{})

	reviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r model.Review) bool {
		return r.UserID == "u1" && r.UserName == "Ada" && r.Rating == 5 && r.Comment == "great service"
	})).Return(model.Review{ID: "id-1", Rating: 5}, nil)

	out, err := uc.Create(ctx, "u1", "Ada", usecase.CreateReviewInput{Rating: 5, Comment: "  great service  "})
	assert.NoError(t, err)
	assert.Equal(t, 5, out.Rating)

	reviewRepo.AssertExpectations(t)
}

// トップページ掲載は3件まで
func TestReviewUsecase_ListFeatured_LimitThree(t *testing.T) {
	ctx := context.Background()

	reviewRepo := new(ReviewRepoMock)
	uc := usecase.NewReviewUsecase(reviewRepo, &seqIDGen{})

	reviewRepo.On("ListFeatured", mock.Anything, 3).Return([]model.Review{{ID: "r1"}}, nil)

	out, err := uc.ListFeatured(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))

	reviewRepo.AssertExpectations(t)
}
