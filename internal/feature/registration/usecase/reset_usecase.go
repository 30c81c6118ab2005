package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"micropost_backend/internal/feature/registration/domain/entity"
)

// resetUsecase はパスワードリセットワークフローを実装します。
// 仮登録ストアをリセットリンクのメールボックスとして再利用します。
type resetUsecase struct {
	users     UserDirectory
	pending   PendingRepository
	store     PromotionStore
	mailer    MailSender
	passwords PasswordHasher
	cfg       Config
}

// NewResetUsecase はresetUsecaseの新しいインスタンスを生成します。
func NewResetUsecase(
	users UserDirectory,
	pending PendingRepository,
	store PromotionStore,
	mailer MailSender,
	passwords PasswordHasher,
	cfg Config,
) *resetUsecase {
	return &resetUsecase{
		users:     users,
		pending:   pending,
		store:     store,
		mailer:    mailer,
		passwords: passwords,
		cfg:       cfg,
	}
}

// RequestReset はパスワードリセットを受け付けます。
// メールアドレスが登録済みかどうかを外部に漏らさないため、未登録のアドレスでも
// メール送信に失敗しても、呼び出し元にはエラーを返しません。
// 成功時はユーザーの現在のname/email/hashと新しいワンタイムIDで仮登録行を作成します。
func (u *resetUsecase) RequestReset(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// 未登録アドレス。観測可能な状態変化を起こさず静かに終了する
			slog.Info("reset requested for unknown email")
			return nil
		}
		return err
	}

	id := uuid.NewString()
	body := fmt.Sprintf(
		`<p>以下のリンクをクリックしてパスワードを再設定してください。</p><p><a href="%s/reset/password?id=%s">パスワードを再設定する</a></p>`,
		u.cfg.BaseURL, id,
	)
	if err := u.mailer.Send(ctx, email, "【micropost】パスワード再設定", body); err != nil {
		// 送信失敗も外部には漏らさない。記録のみ
		slog.Warn("failed to send reset mail", "error", err)
		return nil
	}

	pending := &entity.PendingRegistration{
		Name:  user.Name,
		Email: user.Email,
		Hash:  user.Hash,
		UUID:  id,
	}
	return u.pending.Create(ctx, pending)
}

// ConfirmReset はワンタイムIDでリセットを確定し、対象ユーザー名を返します。
// 新しいハッシュの書き込みと仮登録行の削除は単一トランザクションで実行されます。
func (u *resetUsecase) ConfirmReset(ctx context.Context, id, newPassword string) (string, error) {
	pending, err := u.pending.FindByUUID(ctx, id)
	if err != nil {
		return "", err
	}

	hash, err := u.passwords.HashPassword(newPassword)
	if err != nil {
		return "", err
	}

	if err := u.store.ResetPassword(ctx, pending, hash); err != nil {
		return "", err
	}

	slog.Info("password reset confirmed", "name", pending.Name)
	return pending.Name, nil
}
