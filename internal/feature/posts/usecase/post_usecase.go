// Package usecase はpostsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	authentity "micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/posts/domain/entity"
)

var (
	// ErrForbidden is returned when the caller's token does not validate.
	ErrForbidden = errors.New("forbidden")

	// ErrPostNotFound is returned when no post matches the given id.
	ErrPostNotFound = errors.New("post not found")
)

// TokenValidator はベアラートークンの検証を抽象化します。
// authフィーチャーのユースケースがこのインターフェースを満たします。
type TokenValidator interface {
	// Validate はトークンが有効な場合に対応するトークン行を返します。
	Validate(ctx context.Context, token string) (*authentity.AuthToken, error)
}

// PostRepository は投稿エンティティの永続化層を抽象化します。
type PostRepository interface {
	// Create は新しい投稿を永続化します。
	Create(ctx context.Context, post *entity.Post) error
	// List は投稿を作者名付きで新しい順に返します。
	List(ctx context.Context, offset, limit int) ([]entity.PostWithAuthor, error)
	// Delete はIDで投稿を削除します。該当行がない場合、ErrPostNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// postUsecase は投稿フィードのビジネスロジックを実装します。
// すべての操作は有効なトークンをガードとして要求します。
type postUsecase struct {
	tokens TokenValidator
	posts  PostRepository
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(tokens TokenValidator, posts PostRepository) *postUsecase {
	return &postUsecase{tokens: tokens, posts: posts}
}

// Create はトークンを検証し、トークンのユーザーIDで投稿を作成します。
func (u *postUsecase) Create(ctx context.Context, token, content string) error {
	auth, err := u.tokens.Validate(ctx, token)
	if err != nil {
		return ErrForbidden
	}

	return u.posts.Create(ctx, &entity.Post{
		UserID:  auth.UserID,
		Content: content,
	})
}

// List はトークンを検証し、作者名付きの投稿一覧を新しい順に返します。
// フィード自体は公開情報ですが、現行設計では一覧取得にも有効なトークンが必要です。
func (u *postUsecase) List(ctx context.Context, token string, offset, limit int) ([]entity.PostWithAuthor, error) {
	if _, err := u.tokens.Validate(ctx, token); err != nil {
		return nil, ErrForbidden
	}
	return u.posts.List(ctx, offset, limit)
}

// Delete はトークンを検証し、IDで投稿を削除します。
//
// TODO: 投稿の所有者チェックがない（有効なトークンがあれば誰の投稿でも削除できる）。
// 既存APIと同じ挙動だが、クライアント側の依存を確認の上で所有者チェックを追加する。
func (u *postUsecase) Delete(ctx context.Context, token string, id uint) error {
	if _, err := u.tokens.Validate(ctx, token); err != nil {
		return ErrForbidden
	}
	return u.posts.Delete(ctx, id)
}
