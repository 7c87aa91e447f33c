package main

import (
	"log"
	"time"

	"campusmarket/internal/config"
	"campusmarket/internal/domain/model"
	"campusmarket/internal/handler"
	"campusmarket/internal/infra/cache"
	"campusmarket/internal/infra/db"
	infraRepo "campusmarket/internal/infra/repository"
	"campusmarket/internal/payment"
	"campusmarket/internal/server"
	"campusmarket/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(user *model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"role":     string(user.Role),
		"name":     user.UserName,
		"approved": user.Approved,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Shop{},
		&model.Product{},
		&model.CartLine{},
		&model.Order{},
		&model.OrderItem{},
		&model.SavedItem{},
		&model.Review{},
	); err != nil {
		log.Fatal(err)
	}

	//Redis接続
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartLineGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	savedRepo := infraRepo.NewSavedItemGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)

	//Redisのstore
	sessionStore := cache.NewCheckoutSessionRedisStore(rdb)
	userCache := cache.NewUserRedisCache(rdb)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//決済ゲートウェイ
	gateway := payment.NewClient(cfg.Flutterwave)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, userCache, hasher, verifier, issuer, idGen, clock)
	catalogUC := usecase.NewCatalogUsecase(productRepo, shopRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, shopRepo, orderRepo, idGen)
	checkoutUC := usecase.NewCheckoutUsecase(sessionStore, cartRepo, orderRepo, productRepo, gateway, idGen, clock)
	orderUC := usecase.NewOrderUsecase(orderRepo)
	savedUC := usecase.NewSavedUsecase(savedRepo, productRepo, shopRepo, idGen)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, idGen)
	vendorUC := usecase.NewVendorUsecase(shopRepo, productRepo, idGen, clock)
	reportUC := usecase.NewSalesReportUsecase(shopRepo, orderRepo)
	adminUC := usecase.NewAdminUsecase(userRepo, shopRepo, productRepo, orderRepo, clock)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		Catalog:  handler.NewCatalogHandler(catalogUC, reviewUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
		Order:    handler.NewOrderHandler(orderUC),
		Saved:    handler.NewSavedHandler(savedUC),
		Review:   handler.NewReviewHandler(reviewUC),
		Vendor:   handler.NewVendorHandler(vendorUC, reportUC),
		Admin:    handler.NewAdminHandler(adminUC, reviewUC),
	}

	//Server起動
	srv := server.New(cfg, handlers, userRepo)
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
