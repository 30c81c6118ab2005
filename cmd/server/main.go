package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"micropost_backend/internal/app/di"
	"micropost_backend/internal/app/router"
	authadapters "micropost_backend/internal/feature/auth/adapters"
	authhandler "micropost_backend/internal/feature/auth/transport/handler"
	authusecase "micropost_backend/internal/feature/auth/usecase"
	postsadapters "micropost_backend/internal/feature/posts/adapters"
	postshandler "micropost_backend/internal/feature/posts/transport/handler"
	postsusecase "micropost_backend/internal/feature/posts/usecase"
	profileadapters "micropost_backend/internal/feature/profile/adapters"
	profilehandler "micropost_backend/internal/feature/profile/transport/handler"
	profileusecase "micropost_backend/internal/feature/profile/usecase"
	registrationadapters "micropost_backend/internal/feature/registration/adapters"
	registrationhandler "micropost_backend/internal/feature/registration/transport/handler"
	registrationusecase "micropost_backend/internal/feature/registration/usecase"
	"micropost_backend/internal/platform/captcha"
	infradb "micropost_backend/internal/platform/db"
	"micropost_backend/internal/platform/mail"
	"micropost_backend/internal/platform/password"
)

const (
	// 仮登録の掃除間隔と保持期間
	sweepInterval   = 30 * time.Minute
	pendingLifetime = 30 * time.Minute
)

func main() {
	// db
	db := infradb.OpenDB()

	// 外部サービスクライアント
	mailCfg := mail.LoadConfig()
	sender := di.NewMailSender(mailCfg)
	if mailCfg.APIKey == "" {
		log.Println("[WARN] MAIL_API_KEY is not set. Mail will be logged, not sent.")
	}

	captchaCfg := captcha.LoadConfig()
	verifier := captcha.NewVerifier(captchaCfg, &http.Client{Timeout: captchaCfg.Timeout})
	if captchaCfg.Secret == "" {
		log.Println("[WARN] RECAPTCHA_SECRET is not set. Captcha checks will fail.")
	}

	// Credential Hasher
	hasher := password.NewHasher(bcrypt.DefaultCost)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	tokenRepo := authadapters.NewTokenPostgres(db)
	registrationStore := registrationadapters.NewRegistrationStore(db)
	profileRepo := profileadapters.NewProfilePostgres(db)
	postRepo := postsadapters.NewPostPostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokenRepo, hasher)
	regCfg := registrationusecase.Config{BaseURL: os.Getenv("APP_BASE_URL")}
	regUC := registrationusecase.NewRegistrationUsecase(
		registrationStore, registrationStore, registrationStore, sender, verifier, hasher, regCfg)
	resetUC := registrationusecase.NewResetUsecase(
		registrationStore, registrationStore, registrationStore, sender, hasher, regCfg)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)
	postUC := postsusecase.NewPostUsecase(authUC, postRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	regH := registrationhandler.NewRegistrationHandler(regUC, resetUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	postH := postshandler.NewPostHandler(postUC)

	// 期限切れ仮登録の掃除タスク
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sweeper := registrationusecase.NewSweeper(registrationStore, sweepInterval, pendingLifetime)
	go sweeper.Run(ctx)

	// ルータ生成
	router := router.NewRouter(authH, regH, profileH, postH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
