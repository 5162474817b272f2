package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicompliance/internal/model"
	"aicompliance/internal/service"
)

type memoryUserRepo struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
	}
}

func (r *memoryUserRepo) Create(_ context.Context, user *model.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return r.byEmail[email], nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	return r.byID[id], nil
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:       "founder@healthtech.es",
		Password:    "s3cret-pass",
		CompanyName: "HealthTech SL",
		CompanyType: model.CompanyDigitalHealth,
	}
}

func TestRegisterReturnsTokenAndUser(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "founder@healthtech.es", resp.User.Email)
	assert.Equal(t, model.CompanyDigitalHealth, resp.User.CompanyType)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEqual(t, "s3cret-pass", resp.User.HashedPassword, "password must be stored hashed")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginRoundtrip(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	registered, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "founder@healthtech.es",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "founder@healthtech.es",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRoundtrip(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, string(model.CompanyDigitalHealth), claims.CompanyType)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := service.NewAuthService(newMemoryUserRepo())

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
