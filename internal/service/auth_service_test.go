package service

import (
	"context"
	"testing"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthSignupAndLogin(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil, "test-secret")
	ctx := context.Background()

	signup, err := svc.Signup(ctx, &dto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", signup.Username)
	assert.NotEqual(t, uuid.Nil, signup.Id)

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "alice", login.Username)

	session, err := svc.Session(ctx, signup.Id)
	require.NoError(t, err)
	assert.True(t, session.LoggedIn)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "alice@example.com", session.Email)
}

func TestAuthSignupProfileFields(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil, "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Username:  "dave",
		Email:     "dave@example.com",
		Password:  "hunter22",
		FirstName: "Dave",
		LastName:  "Jones",
		Dob:       "1999-04-12",
	})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError
	_, err = svc.Signup(ctx, &dto.SignupRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "hunter22",
		Dob:      "12/04/1999",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Code)
}

func TestAuthSignupDuplicates(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil, "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &dto.SignupRequest{
		Username: "bob",
		Email:    "other@example.com",
		Password: "hunter22",
	})
	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Code)

	_, err = svc.Signup(ctx, &dto.SignupRequest{
		Username: "bob2",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.Code)
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil, "test-secret")
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	var apiErr *serverutils.ApiError

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "carol", Password: "wrong"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "hunter22"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
}

func TestAuthSessionExpired(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAuthService(factory, nil, nil, "test-secret")

	var apiErr *serverutils.ApiError
	_, err := svc.Session(context.Background(), uuid.New())
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Code)
}
