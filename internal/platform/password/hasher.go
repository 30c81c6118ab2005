// Package password はソルト付きパスワードハッシュの生成と検証を提供します。
// 保存形式は既存データの "digest.salt" 契約を維持しつつ、ダイジェストにはbcryptを使用します。
package password

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// saltBytes はソルトの乱数バイト長です（hexエンコード後は32文字）。
const saltBytes = 16

// Hasher はbcryptとランダムソルトでパスワードをハッシュ化します。
type Hasher struct {
	cost int
}

// NewHasher は指定されたbcryptコストでHasherを生成します。
// 範囲外のコストはデフォルトコストに丸められます。
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// MakeSalt は新しいランダムソルトをhex文字列として返します。
func (h *Hasher) MakeSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash はpassword+saltのbcryptダイジェストを計算します。
func (h *Hasher) Hash(password, salt string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password+salt), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// HashPassword は新しいソルトを生成し、保存形式 "digest.salt" を返します。
func (h *Hasher) HashPassword(password string) (string, error) {
	salt, err := h.MakeSalt()
	if err != nil {
		return "", err
	}
	digest, err := h.Hash(password, salt)
	if err != nil {
		return "", err
	}
	return digest + "." + salt, nil
}

// Verify はpasswordが保存値 "digest.salt" と一致するかを返します。
// bcryptダイジェスト自体に '.' が含まれることがあるため、最後のドットでソルトを切り出します。
// 保存値が不正な形式の場合は単にfalseを返し、どの部分が不正かは漏らしません。
func (h *Hasher) Verify(stored, password string) bool {
	i := strings.LastIndex(stored, ".")
	if i < 0 {
		return false
	}
	digest, salt := stored[:i], stored[i+1:]
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password+salt)) == nil
}
