// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"micropost_backend/internal/feature/auth/domain/entity"
)

// tokenTTL はトークン発行・更新時の有効期間です。
const tokenTTL = 24 * time.Hour

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// FindByName は指定された名前に一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenRepository はトークンエンティティの永続化層を抽象化します。
type TokenRepository interface {
	// FindByUserID は指定されたユーザーのトークン行を取得します。
	// 存在しない場合、ErrTokenNotFoundを返します。
	FindByUserID(ctx context.Context, userID uint) (*entity.AuthToken, error)

	// FindValid はトークン値が一致し、かつexpire_atがnowより厳密に後の行を取得します。
	// 該当行がない場合、ErrTokenNotFoundを返します。
	FindValid(ctx context.Context, token string, now time.Time) (*entity.AuthToken, error)

	// Create は新しいトークン行を永続化します。
	Create(ctx context.Context, token *entity.AuthToken) error

	// UpdateExpiry は既存トークン行の有効期限を更新します。トークン値は保持されます。
	UpdateExpiry(ctx context.Context, id uint, expireAt time.Time) error
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// HashPassword は新しいソルト付きの保存形式 "digest.salt" を生成します。
	HashPassword(password string) (string, error)
	// Verify はパスワードが保存値と一致するかを返します。
	Verify(stored, password string) bool
}

// authUsecase は認証・トークンライフサイクルのビジネスロジックを実装します。
type authUsecase struct {
	users     UserRepository
	tokens    TokenRepository
	passwords PasswordHasher

	// comparisonHash はユーザー未検出時のタイミング攻撃緩和用ハッシュです。
	comparisonHash string

	// now は現在時刻の取得に使用します。テストで差し替えます。
	now func() time.Time
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, tokens TokenRepository, passwords PasswordHasher) *authUsecase {
	// ユーザーが存在しない場合でも検証コストを揃えるための比較用ハッシュ
	cmp, err := passwords.HashPassword(uuid.NewString())
	if err != nil {
		cmp = ""
	}
	return &authUsecase{
		users:          users,
		tokens:         tokens,
		passwords:      passwords,
		comparisonHash: cmp,
		now:            time.Now,
	}
}

// Login はユーザーを認証し、成功時にトークンとユーザーIDを返します。
// 有効期限は現在時刻+24時間に設定されます。ユーザーにトークン行が既にあれば
// トークン値を保持したまま有効期限のみ更新し、なければUUIDトークンを新規発行します。
func (u *authUsecase) Login(ctx context.Context, name, password string) (string, uint, error) {
	// パスワード未指定は即座に拒否
	if password == "" {
		return "", 0, ErrUnauthorized
	}

	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// タイミング攻撃防止のため、未検出でも検証を実行する
			u.passwords.Verify(u.comparisonHash, password)
			return "", 0, ErrUnauthorized
		}
		return "", 0, err
	}

	if !u.passwords.Verify(user.Hash, password) {
		return "", 0, ErrUnauthorized
	}

	expire := u.now().Add(tokenTTL)

	token, err := u.tokens.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		// 既存行を更新（トークン値は保持、有効期限のみ延長）
		if err := u.tokens.UpdateExpiry(ctx, token.ID, expire); err != nil {
			return "", 0, err
		}
		return token.Token, user.ID, nil
	case errors.Is(err, ErrTokenNotFound):
		// 新規発行
		created := &entity.AuthToken{
			UserID:   user.ID,
			Token:    uuid.NewString(),
			ExpireAt: expire,
		}
		if err := u.tokens.Create(ctx, created); err != nil {
			return "", 0, err
		}
		return created.Token, user.ID, nil
	default:
		return "", 0, err
	}
}

// Validate はトークンが有効（値が一致し、期限が切れていない）かを検証します。
// 有効な場合は対応するトークン行を返し、無効な場合はErrTokenInvalidを返します。
// 保護されたすべての操作のガードとして使用されます。
func (u *authUsecase) Validate(ctx context.Context, token string) (*entity.AuthToken, error) {
	if token == "" {
		return nil, ErrTokenInvalid
	}
	found, err := u.tokens.FindValid(ctx, token, u.now())
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return found, nil
}

// GetUser はトークンを検証した上で、IDでユーザーを取得します。
// トークンが無効な場合はErrTokenInvalid、ユーザーが存在しない場合はErrUserNotFoundを返します。
func (u *authUsecase) GetUser(ctx context.Context, token string, id uint) (*entity.User, error) {
	if _, err := u.Validate(ctx, token); err != nil {
		return nil, err
	}
	return u.users.FindByID(ctx, id)
}
