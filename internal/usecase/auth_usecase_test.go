package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Test: 登録済みメールは409
func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUsecase(userRepo, []byte("secret"), 15*time.Minute)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(model.User{ID: 1, Email: "ana@example.com"}, nil)

	_, err := uc.Register(ctx, RegisterInput{Email: "Ana@Example.com", Password: "supersecret"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Status)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 短すぎるパスワードは400
func TestRegisterShortPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUsecase(userRepo, []byte("secret"), 15*time.Minute)

	_, err := uc.Register(context.Background(), RegisterInput{Email: "ana@example.com", Password: "short"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// Test: メールは小文字化して保存される
func TestRegisterNormalizesEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUsecase(userRepo, []byte("secret"), 15*time.Minute)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ana@example.com").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ana@example.com" && u.PasswordHash != "" && u.PasswordHash != "supersecret"
	})).Return(model.User{ID: 1, Email: "ana@example.com"}, nil)

	out, err := uc.Register(ctx, RegisterInput{Email: " Ana@Example.com ", Password: "supersecret"})

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", out.Email)
	userRepo.AssertExpectations(t)
}

// Test: ログイン成功でsubにユーザーIDが入ったJWTを返す
func TestLoginIssuesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	secret := []byte("secret")
	uc := NewAuthUsecase(userRepo, secret, 15*time.Minute)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(model.User{ID: 7, Email: "ana@example.com", PasswordHash: string(hash)}, nil)

	out, err := uc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "supersecret"})

	assert.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	parsed, err := jwt.Parse(out.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "7", claims["sub"])
}

// Test: パスワード不一致は401。メール不明と同じ文言
func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUsecase(userRepo, []byte("secret"), 15*time.Minute)
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	userRepo.On("FindByEmail", ctx, "ana@example.com").
		Return(model.User{ID: 7, Email: "ana@example.com", PasswordHash: string(hash)}, nil)

	_, err := uc.Login(ctx, LoginInput{Email: "ana@example.com", Password: "wrong"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	assert.Equal(t, "invalid credentials", he.Message)
}

// Test: 未登録メールも401
func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := NewAuthUsecase(userRepo, []byte("secret"), 15*time.Minute)
	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "nadie@example.com").Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(ctx, LoginInput{Email: "nadie@example.com", Password: "supersecret"})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}
