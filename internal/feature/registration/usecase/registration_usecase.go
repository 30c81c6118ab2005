// Package usecase は登録・パスワードリセットワークフローのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	authentity "micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/registration/domain/entity"
)

// UserDirectory は確定済みユーザーの読み取りを抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserDirectory interface {
	// FindByName は名前でユーザーを取得します。存在しない場合、ErrUserNotFoundを返します。
	FindByName(ctx context.Context, name string) (*authentity.User, error)
	// FindByEmail はメールアドレスでユーザーを取得します。存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*authentity.User, error)
}

// PendingRepository は仮登録行の永続化層を抽象化します。
type PendingRepository interface {
	// Create は新しい仮登録行を永続化します。
	Create(ctx context.Context, pending *entity.PendingRegistration) error
	// FindByUUID はワンタイムIDで仮登録行を取得します。
	// 存在しない（未発行・消費済み・掃除済み）場合、ErrPendingNotFoundを返します。
	FindByUUID(ctx context.Context, id string) (*entity.PendingRegistration, error)
	// DeleteOlderThan はcreated_atがcutoffより古い仮登録行をすべて削除し、件数を返します。
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// PromotionStore は複数行にまたがる確定処理をアトミックに実行します。
type PromotionStore interface {
	// Promote は仮登録からUserとUserProfileを作成し、仮登録行を削除します。
	// 全体が単一トランザクションで実行されます。
	Promote(ctx context.Context, pending *entity.PendingRegistration) (*authentity.User, error)
	// ResetPassword は対象ユーザーのハッシュを更新し、仮登録行を削除します。
	// 全体が単一トランザクションで実行されます。
	ResetPassword(ctx context.Context, pending *entity.PendingRegistration, newHash string) error
}

// MailSender は確認メールの送信を抽象化します。
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// CaptchaVerifier はcaptchaトークンの検証を抽象化します。
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// PasswordHasher はソルト付きハッシュの生成を抽象化します。
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

// Config は登録ワークフローの設定です。
type Config struct {
	// BaseURL は確認リンクの先頭部分です（例: "https://app.example.com"）。
	BaseURL string
}

// registrationUsecase は登録ワークフローを実装します。
type registrationUsecase struct {
	users     UserDirectory
	pending   PendingRepository
	store     PromotionStore
	mailer    MailSender
	captcha   CaptchaVerifier
	passwords PasswordHasher
	cfg       Config
}

// NewRegistrationUsecase はregistrationUsecaseの新しいインスタンスを生成します。
func NewRegistrationUsecase(
	users UserDirectory,
	pending PendingRepository,
	store PromotionStore,
	mailer MailSender,
	captcha CaptchaVerifier,
	passwords PasswordHasher,
	cfg Config,
) *registrationUsecase {
	return &registrationUsecase{
		users:     users,
		pending:   pending,
		store:     store,
		mailer:    mailer,
		captcha:   captcha,
		passwords: passwords,
		cfg:       cfg,
	}
}

// Request は新規登録を受け付けます。
// すべてのバリデーション失敗をシンボリックコードのリストとして収集して返します
// （最初の失敗で打ち切りません）。リストが空でない場合、メール送信も永続化も行いません。
// メール送信に失敗した場合は単一コードのリストを返し、仮登録行は作成しません。
// 成功時は空のリストを返し、確認リンク付きメールの送信後に仮登録行を永続化します。
func (u *registrationUsecase) Request(ctx context.Context, name, email, password, captchaToken string) ([]string, error) {
	codes := make([]string, 0, 3)

	if _, err := u.users.FindByName(ctx, name); err == nil {
		codes = append(codes, CodeNameDuplicated)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		codes = append(codes, CodeEmailDuplicated)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	ok, err := u.captcha.Verify(ctx, captchaToken)
	if err != nil {
		// プロバイダー到達失敗も検証失敗として扱う
		slog.Warn("captcha verification error", "error", err)
		ok = false
	}
	if !ok {
		codes = append(codes, CodeCaptchaFailed)
	}

	if len(codes) > 0 {
		return codes, nil
	}

	id := uuid.NewString()
	body := fmt.Sprintf(
		`<p>以下のリンクをクリックして登録を完了してください。</p><p><a href="%s/register/confirm?id=%s">登録を確認する</a></p>`,
		u.cfg.BaseURL, id,
	)
	if err := u.mailer.Send(ctx, email, "【micropost】登録確認", body); err != nil {
		// 送信失敗時は何も永続化しない
		slog.Error("failed to send confirmation mail", "error", err, "email", email)
		return []string{CodeMailFailed}, nil
	}

	hash, err := u.passwords.HashPassword(password)
	if err != nil {
		return nil, err
	}
	pending := &entity.PendingRegistration{
		Name:  name,
		Email: email,
		Hash:  hash,
		UUID:  id,
	}
	if err := u.pending.Create(ctx, pending); err != nil {
		return nil, err
	}

	slog.Info("registration requested", "name", name)
	return codes, nil
}

// CheckPending はワンタイムIDの有効性を確認するための読み取り専用の参照です。
// クライアントが確認リンクの生死をポーリングするために使用します。
func (u *registrationUsecase) CheckPending(ctx context.Context, id string) (*entity.PendingRegistration, error) {
	return u.pending.FindByUUID(ctx, id)
}

// Confirm はワンタイムIDで仮登録を確定し、新しいユーザー名を返します。
// UserとUserProfileの作成、仮登録行の削除は単一トランザクションで実行されます。
// ワンタイムIDは単一使用です。消費済み・期限切れのIDはErrPendingNotFoundになります。
func (u *registrationUsecase) Confirm(ctx context.Context, id string) (string, error) {
	pending, err := u.pending.FindByUUID(ctx, id)
	if err != nil {
		return "", err
	}

	user, err := u.store.Promote(ctx, pending)
	if err != nil {
		return "", err
	}

	slog.Info("registration confirmed", "name", user.Name)
	return user.Name, nil
}
