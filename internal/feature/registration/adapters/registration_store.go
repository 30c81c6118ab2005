// Package adapters はregistrationフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	authentity "micropost_backend/internal/feature/auth/domain/entity"
	profileentity "micropost_backend/internal/feature/profile/domain/entity"
	"micropost_backend/internal/feature/registration/domain/entity"
	"micropost_backend/internal/feature/registration/usecase"
)

// pgUniqueViolation はPostgresの一意制約違反のSQLSTATEです。
const pgUniqueViolation = "23505"

// registrationStore はUserDirectory・PendingRepository・PromotionStoreの
// Postgres実装です。確定処理が複数テーブルにまたがるため、単一の型に
// まとめてトランザクション境界を持たせています。
type registrationStore struct {
	db *gorm.DB
}

// registrationStoreが各インターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.UserDirectory     = (*registrationStore)(nil)
	_ usecase.PendingRepository = (*registrationStore)(nil)
	_ usecase.PromotionStore    = (*registrationStore)(nil)
)

// NewRegistrationStore は指定されたgorm.DB接続でregistrationStoreの新しいインスタンスを生成します。
func NewRegistrationStore(db *gorm.DB) *registrationStore {
	return &registrationStore{db: db}
}

// FindByName は名前で確定済みユーザーを取得します。
func (r *registrationStore) FindByName(ctx context.Context, name string) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail はメールアドレスで確定済みユーザーを取得します。
func (r *registrationStore) FindByEmail(ctx context.Context, email string) (*authentity.User, error) {
	var u authentity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create は仮登録行を追加します。
func (r *registrationStore) Create(ctx context.Context, pending *entity.PendingRegistration) error {
	return r.db.WithContext(ctx).Create(pending).Error
}

// FindByUUID はワンタイムIDで仮登録行を取得します。
// 行が存在しない場合、usecase.ErrPendingNotFoundを返します。
func (r *registrationStore) FindByUUID(ctx context.Context, id string) (*entity.PendingRegistration, error) {
	var p entity.PendingRegistration
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPendingNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteOlderThan はcreated_atがcutoffより古い仮登録行をすべて削除します。
func (r *registrationStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&entity.PendingRegistration{})
	return result.RowsAffected, result.Error
}

// Promote は仮登録からUserとUserProfileを作成し、仮登録行を削除します。
// 3つの書き込みは単一トランザクションで実行されます。途中でクラッシュしても
// 「仮登録行が残ったままの確定済みユーザー」は生まれません。
func (r *registrationStore) Promote(ctx context.Context, pending *entity.PendingRegistration) (*authentity.User, error) {
	user := &authentity.User{
		Name:  pending.Name,
		Email: pending.Email,
		Hash:  pending.Hash,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			// 申請から確定までの間に名前・メールが取られたケース
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return usecase.ErrDuplicateUser
			}
			return err
		}

		profile := &profileentity.UserProfile{Name: pending.Name}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}

		// ワンタイムIDは単一使用。並行する確定が先に消費していたら中断する
		result := tx.Where("uuid = ?", pending.UUID).Delete(&entity.PendingRegistration{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrPendingNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword は対象ユーザーのハッシュを更新し、仮登録行を削除します。
// 両方の書き込みは単一トランザクションで実行されます。
// 対象ユーザーは仮登録行に保存された名前で照合します。
func (r *registrationStore) ResetPassword(ctx context.Context, pending *entity.PendingRegistration, newHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&authentity.User{}).
			Where("name = ?", pending.Name).
			Update("hash", newHash)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}

		del := tx.Where("uuid = ?", pending.UUID).Delete(&entity.PendingRegistration{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return usecase.ErrPendingNotFound
		}
		return nil
	})
}
