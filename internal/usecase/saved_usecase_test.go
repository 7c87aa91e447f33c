package usecase_test

import (
	"context"
	"testing"

	"campusmarket/internal/domain/model"
	repo "campusmarket/internal/repository"
	"campusmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSavedUsecase(savedRepo *SavedRepoMock, productRepo *ProductRepoMock, shopRepo *ShopRepoMock) *usecase.SavedUsecase {
	return usecase.NewSavedUsecase(savedRepo, productRepo, shopRepo, &seqIDGen{})
}

// 同じ商品を2回保存しても行は増えない（既存を返す）
func TestSavedUsecase_Save_Idempotent(t *testing.T) {
	ctx := context.Background()

	savedRepo := new(SavedRepoMock)
	uc := newSavedUsecase(savedRepo, new(ProductRepoMock), new(ShopRepoMock))

	existing := model.SavedItem{ID: "sv1", UserID: "u1", ProductID: "p1", Name: "Hoodie"}
	savedRepo.On("FindByUserAndProduct", mock.Anything, "u1", "p1").Return(existing, nil)

	out, err := uc.Save(ctx, "u1", "p1")
	assert.NoError(t, err)
	assert.Equal(t, "sv1", out.ID)

	savedRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSavedUsecase_Save_SnapshotsProduct(t *testing.T) {
	ctx := context.Background()

	savedRepo := new(SavedRepoMock)
	productRepo := new(ProductRepoMock)
	shopRepo := new(ShopRepoMock)
	uc := newSavedUsecase(savedRepo, productRepo, shopRepo)

	savedRepo.On("FindByUserAndProduct", mock.Anything, "u1", "p1").Return(model.SavedItem{}, repo.ErrNotFound)
	productRepo.On("FindVisibleByID", mock.Anything, "p1").Return(model.Product{ID: "p1", ShopID: "s1", Name: "Hoodie", Price: 4000}, nil)
	shopRepo.On("FindByID", mock.Anything, "s1").Return(model.Shop{ID: "s1", Name: "Campus Wear"}, nil)
	savedRepo.On("Create", mock.Anything, mock.MatchedBy(func(item model.SavedItem) bool {
		return item.UserID == "u1" && item.Name == "Hoodie" && item.Price == 4000 && item.ShopName == "Campus Wear"
	})).Return(model.SavedItem{ID: "id-1"}, nil)

	out, err := uc.Save(ctx, "u1", "p1")
	assert.NoError(t, err)
	assert.Equal(t, "id-1", out.ID)

	savedRepo.AssertExpectations(t)
}

func TestSavedUsecase_Save_HiddenProductRejected(t *testing.T) {
	ctx := context.Background()

	savedRepo := new(SavedRepoMock)
	productRepo := new(ProductRepoMock)
	uc := newSavedUsecase(savedRepo, productRepo, new(ShopRepoMock))

	savedRepo.On("FindByUserAndProduct", mock.Anything, "u1", "p1").Return(model.SavedItem{}, repo.ErrNotFound)
	productRepo.On("FindVisibleByID", mock.Anything, "p1").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Save(ctx, "u1", "p1")
	assertErrContains(t, err, "invalid product")
}

// 他人の保存アイテムは消せない
func TestSavedUsecase_Remove_NotOwned(t *testing.T) {
	ctx := context.Background()

	savedRepo := new(SavedRepoMock)
	uc := newSavedUsecase(savedRepo, new(ProductRepoMock), new(ShopRepoMock))

	savedRepo.On("IsOwnedByUser", mock.Anything, "sv1", "u2").Return(false, nil)

	err := uc.Remove(ctx, "u2", "sv1")
	assertErrContains(t, err, "not found")

	savedRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}
