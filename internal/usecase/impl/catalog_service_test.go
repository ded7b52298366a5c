package impl

import (
	"context"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"
	"catalog/internal/domain/service"
	mockRepo "catalog/internal/mocks/repository"
	mockSvc "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
	blobStore   *mockSvc.MockBlobStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	fx := productServiceFixtures{
		productRepo: mockRepo.NewMockProductRepository(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		blobStore:   mockSvc.NewMockBlobStore(t),
	}

	fx.service = NewProductService(ProductServiceParams{
		ProductRepo: fx.productRepo,
		QRService:   fx.qrService,
		Publisher:   fx.publisher,
		BlobStore:   fx.blobStore,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func eventFor(resource string, action service.CatalogAction) interface{} {
	return mock.MatchedBy(func(e *service.CatalogEvent) bool {
		return e.Resource == resource && e.Action == action
	})
}

func makeProducts(n int) []*entity.Product {
	products := make([]*entity.Product, n)
	for i := range products {
		products[i] = &entity.Product{ID: uuid.New()}
	}

	return products
}

func TestProductService_Create_DerivesSlugAndCreator(t *testing.T) {
	fx := createTestProductService(t)
	identity := newIdentity(entity.RoleAdmin)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	brandID := uuid.New()

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) { product.ID = uuid.New() }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.MatchedBy(func(e *service.CatalogEvent) bool {
			return e.Resource == "product" &&
				e.Action == service.CatalogCreated &&
				e.RequestID == "req-1" &&
				e.ActorID == identity.Subject.String()
		})).
		Return(nil)

	product, err := fx.service.Create(ctx, identity, &usecase.ProductInput{
		Name:      "Fresh Milk 1L!",
		BrandID:   brandID,
		IsPublish: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-milk-1l", product.Slug)
	assert.Equal(t, identity.Subject, product.CreatedBy)
	assert.Equal(t, brandID, product.BrandID)
}

func TestProductService_Create_RejectsNameWithoutSlug(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Create(context.Background(), newIdentity(entity.RoleAdmin), &usecase.ProductInput{Name: "!!!"})

	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestProductService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.Create(context.Background(), newIdentity(entity.RoleAdmin), &usecase.ProductInput{Name: "Tea"})

	assert.NoError(t, err)
}

func TestProductService_Update_Slug(t *testing.T) {
	t.Run("unchanged name keeps stored slug", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()
		stored := &entity.Product{ID: id, Name: "Fresh Milk", Slug: "fresh-milk-promo"}

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(stored, nil)
		fx.productRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
				return p.Slug == "fresh-milk-promo" && p.Description == "now with more milk"
			})).
			Return(nil)
		fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("product", service.CatalogUpdated)).Return(nil)

		product, err := fx.service.Update(context.Background(), newIdentity(entity.RoleAdmin), id, &usecase.ProductInput{
			Name:        "Fresh Milk",
			Description: "now with more milk",
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh-milk-promo", product.Slug)
	})

	t.Run("renamed product gets a new slug", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Product{ID: id, Name: "Milk", Slug: "milk"}, nil)
		fx.productRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, mock.Anything).Return(nil)

		product, err := fx.service.Update(context.Background(), newIdentity(entity.RoleAdmin), id, &usecase.ProductInput{Name: "Oat Milk"})

		require.NoError(t, err)
		assert.Equal(t, "oat-milk", product.Slug)
	})

	t.Run("missing product", func(t *testing.T) {
		fx := createTestProductService(t)
		id := uuid.New()

		fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, domainerrors.ErrProductNotFound)

		_, err := fx.service.Update(context.Background(), newIdentity(entity.RoleAdmin), id, &usecase.ProductInput{Name: "x"})

		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestProductService_FindAll_SearchAndBrand(t *testing.T) {
	fx := createTestProductService(t)
	brandID := uuid.New()

	fx.productRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f query.Filter) bool {
			return f.Search != nil &&
				f.Search.Term == "milk" &&
				f.Search.Mode == query.SearchTextIndex &&
				f.Search.TextIndex == "search_vector" &&
				len(f.Conditions) == 1 &&
				f.Conditions[0] == query.Condition{Column: "brand_id", Value: brandID}
		}), query.Page{Number: 1, Limit: 10}).
		Return(makeProducts(2), int64(2), nil)

	result, err := fx.service.FindAll(context.Background(), query.Params{"search": "milk", "brand": brandID.String()})

	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
}

func TestProductService_FindAll_EmptyParamsMatchEverything(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f query.Filter) bool { return f.IsEmpty() }), query.Page{Number: 1, Limit: 10}).
		Return(makeProducts(10), int64(25), nil)

	result, err := fx.service.FindAll(context.Background(), query.Params{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalPages)
}

func TestProductService_FindAll_Pagination(t *testing.T) {
	tests := []struct {
		page        string
		items       int
		wantPages   int
		wantCurrent int
	}{
		{page: "3", items: 5, wantPages: 3, wantCurrent: 3},
		{page: "4", items: 0, wantPages: 3, wantCurrent: 4},
	}

	for _, tt := range tests {
		t.Run("page "+tt.page, func(t *testing.T) {
			fx := createTestProductService(t)

			fx.productRepo.EXPECT().
				List(mock.Anything, mock.Anything, mock.AnythingOfType("query.Page")).
				Return(makeProducts(tt.items), int64(25), nil)

			result, err := fx.service.FindAll(context.Background(), query.Params{"page": tt.page, "limit": "10"})

			require.NoError(t, err)
			assert.Len(t, result.Items, tt.items)
			assert.Equal(t, tt.wantPages, result.TotalPages)
			assert.Equal(t, int64(25), result.Total)
			assert.Equal(t, tt.wantCurrent, result.Current)
		})
	}
}

func TestProductService_FindAll_InvalidQuery(t *testing.T) {
	tests := map[string]query.Params{
		"brand is not an id": {"search": "milk", "brand": "b1"},
		"limit too large":    {"limit": "500"},
		"page zero":          {"page": "0"},
		"bad boolean":        {"isPublish": "maybe"},
	}

	for name, params := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestProductService(t)

			_, err := fx.service.FindAll(context.Background(), params)

			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}

func TestProductService_Remove_ReleasesImage(t *testing.T) {
	fx := createTestProductService(t)
	id := uuid.New()
	product := &entity.Product{ID: id, Image: "https://cdn.example.com/media/a.png"}

	fx.productRepo.EXPECT().FindByID(mock.Anything, id).Return(product, nil)
	fx.productRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
	fx.blobStore.EXPECT().Remove(mock.Anything, product.Image).Return(domainerrors.ErrMediaStorageFailed)
	fx.publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("product", service.CatalogRemoved)).Return(nil)

	removed, err := fx.service.Remove(context.Background(), newIdentity(entity.RoleAdmin), id)

	require.NoError(t, err)
	assert.Same(t, product, removed)
}

func TestProductService_ShareQR(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "fresh-milk").Return(&entity.Product{Slug: "fresh-milk"}, nil)
	fx.qrService.EXPECT().GenerateProductQR("fresh-milk").Return([]byte("png"), nil)

	png, err := fx.service.ShareQR(context.Background(), "fresh-milk")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestProductService_ShareQR_UnknownSlug(t *testing.T) {
	fx := createTestProductService(t)

	fx.productRepo.EXPECT().FindBySlug(mock.Anything, "ghost").Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.ShareQR(context.Background(), "ghost")

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestBrandService(t *testing.T) {
	newService := func(t *testing.T) (usecase.BrandUsecase, *mockRepo.MockBrandRepository, *mockSvc.MockEventPublisher, *mockSvc.MockBlobStore) {
		repo := mockRepo.NewMockBrandRepository(t)
		publisher := mockSvc.NewMockEventPublisher(t)
		blobStore := mockSvc.NewMockBlobStore(t)

		return NewBrandService(BrandServiceParams{
			BrandRepo: repo,
			Publisher: publisher,
			BlobStore: blobStore,
			Logger:    newDiscardLogger(),
		}), repo, publisher, blobStore
	}

	t.Run("find all applies column search and isShow", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f query.Filter) bool {
				return f.Search != nil &&
					f.Search.Mode == query.SearchColumns &&
					assert.ObjectsAreEqual([]string{"name", "description"}, f.Search.Columns) &&
					len(f.Conditions) == 1 && f.Conditions[0].Column == "is_show" && f.Conditions[0].Value == true
			}), query.Page{Number: 2, Limit: 5}).
			Return([]*entity.Brand{{ID: uuid.New()}}, int64(6), nil)

		result, err := svc.FindAll(context.Background(), query.Params{"search": "acme", "isShow": "true", "page": "2", "limit": "5"})

		require.NoError(t, err)
		assert.Equal(t, 2, result.TotalPages)
		assert.Equal(t, 2, result.Current)
	})

	t.Run("isShow=false is omitted", func(t *testing.T) {
		svc, repo, _, _ := newService(t)

		repo.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f query.Filter) bool { return f.IsEmpty() }), mock.Anything).
			Return(nil, int64(0), nil)

		result, err := svc.FindAll(context.Background(), query.Params{"isShow": "false"})

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.NotNil(t, result.Items)
	})

	t.Run("create trims input", func(t *testing.T) {
		svc, repo, publisher, _ := newService(t)

		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Brand")).Return(nil)
		publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("brand", service.CatalogCreated)).Return(nil)

		brand, err := svc.Create(context.Background(), newIdentity(entity.RoleAdmin), &usecase.BrandInput{Name: " Acme ", IsShow: true})

		require.NoError(t, err)
		assert.Equal(t, "Acme", brand.Name)
		assert.True(t, brand.IsShow)
	})

	t.Run("remove referenced brand is a conflict", func(t *testing.T) {
		svc, repo, _, _ := newService(t)
		id := uuid.New()

		repo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Brand{ID: id, Icon: "icon.png"}, nil)
		repo.EXPECT().Delete(mock.Anything, id).Return(domainerrors.ErrConflict.WithDetails("brand still has products"))

		_, err := svc.Remove(context.Background(), newIdentity(entity.RoleAdmin), id)

		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})

	t.Run("remove releases icon", func(t *testing.T) {
		svc, repo, publisher, blobStore := newService(t)
		id := uuid.New()

		repo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Brand{ID: id, Icon: "https://cdn.example.com/media/i.png"}, nil)
		repo.EXPECT().Delete(mock.Anything, id).Return(nil)
		blobStore.EXPECT().Remove(mock.Anything, "https://cdn.example.com/media/i.png").Return(nil)
		publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("brand", service.CatalogRemoved)).Return(nil)

		_, err := svc.Remove(context.Background(), newIdentity(entity.RoleAdmin), id)

		require.NoError(t, err)
	})
}

func TestBannerService(t *testing.T) {
	newService := func(t *testing.T) (usecase.BannerUsecase, *mockRepo.MockBannerRepository, *mockSvc.MockEventPublisher, *mockSvc.MockBlobStore) {
		repo := mockRepo.NewMockBannerRepository(t)
		publisher := mockSvc.NewMockEventPublisher(t)
		blobStore := mockSvc.NewMockBlobStore(t)

		return NewBannerService(BannerServiceParams{
			BannerRepo: repo,
			Publisher:  publisher,
			BlobStore:  blobStore,
			Logger:     newDiscardLogger(),
		}), repo, publisher, blobStore
	}

	t.Run("update", func(t *testing.T) {
		svc, repo, publisher, _ := newService(t)
		id := uuid.New()

		repo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Banner{ID: id, Title: "Old"}, nil)
		repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *entity.Banner) bool { return b.Title == "New" })).Return(nil)
		publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("banner", service.CatalogUpdated)).Return(nil)

		banner, err := svc.Update(context.Background(), newIdentity(entity.RoleAdmin), id, &usecase.BannerInput{Title: "New"})

		require.NoError(t, err)
		assert.Equal(t, "New", banner.Title)
	})

	t.Run("remove without image skips blob store", func(t *testing.T) {
		svc, repo, publisher, _ := newService(t)
		id := uuid.New()

		repo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Banner{ID: id}, nil)
		repo.EXPECT().Delete(mock.Anything, id).Return(nil)
		publisher.EXPECT().PublishCatalogEvent(mock.Anything, eventFor("banner", service.CatalogRemoved)).Return(nil)

		_, err := svc.Remove(context.Background(), newIdentity(entity.RoleAdmin), id)

		require.NoError(t, err)
	})

	t.Run("find one missing", func(t *testing.T) {
		svc, repo, _, _ := newService(t)
		id := uuid.New()

		repo.EXPECT().FindByID(mock.Anything, id).Return(nil, domainerrors.ErrBannerNotFound)

		_, err := svc.FindOne(context.Background(), id)

		assert.True(t, errors.Is(err, domainerrors.ErrBannerNotFound))
	})
}
