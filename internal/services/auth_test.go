package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/repositories"
	"github.com/onlyfilms/onlyfilms/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		login     string
		password  string
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful registration",
			login:    "alice1",
			password: "pw12345",
		},
		{
			name:      "duplicate login",
			login:     "alice1",
			password:  "pw12345",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrLoginTaken,
		},
		{
			name:      "storage error",
			login:     "bobby1",
			password:  "pw12345",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockUserWriter(ctrl)
			mockWriter.EXPECT().
				Save(gomock.Any(), tt.login, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, hash string) (int64, error) {
					// The stored value must be a bcrypt hash of the password,
					// never the plaintext.
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
					if tt.writerErr != nil {
						return 0, tt.writerErr
					}
					return 1, nil
				})

			svc := services.NewAuthService(nil, mockWriter, nil, nil, nil)
			err := svc.Register(context.Background(), tt.login, tt.password)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{ID: 7, Login: "alice1", PasswordHash: string(hash)}

	t.Run("successful login", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockTokens := services.NewMockTokenWriter(ctrl)
		mockIssuer := services.NewMockTokenIssuer(ctrl)

		mockUsers.EXPECT().GetByLogin(gomock.Any(), "alice1").Return(user, nil)
		mockIssuer.EXPECT().Generate().Return("token-value")
		mockTokens.EXPECT().Save(gomock.Any(), int64(7), "token-value").Return(int64(1), nil)

		svc := services.NewAuthService(mockUsers, nil, nil, mockTokens, mockIssuer)
		tok, err := svc.Login(context.Background(), "alice1", "pw12345")
		assert.NoError(t, err)
		assert.Equal(t, "token-value", tok)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockUsers.EXPECT().GetByLogin(gomock.Any(), "alice1").Return(user, nil)

		svc := services.NewAuthService(mockUsers, nil, nil, nil, nil)
		tok, err := svc.Login(context.Background(), "alice1", "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, tok)
	})

	t.Run("unknown login is indistinguishable from wrong password", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockUsers.EXPECT().GetByLogin(gomock.Any(), "nobody").Return(nil, nil)

		svc := services.NewAuthService(mockUsers, nil, nil, nil, nil)
		tok, err := svc.Login(context.Background(), "nobody", "pw12345")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, tok)
	})

	t.Run("token save error", func(t *testing.T) {
		mockUsers := services.NewMockUserReader(ctrl)
		mockTokens := services.NewMockTokenWriter(ctrl)
		mockIssuer := services.NewMockTokenIssuer(ctrl)

		mockUsers.EXPECT().GetByLogin(gomock.Any(), "alice1").Return(user, nil)
		mockIssuer.EXPECT().Generate().Return("token-value")
		mockTokens.EXPECT().Save(gomock.Any(), int64(7), "token-value").Return(int64(0), errors.New("db error"))

		svc := services.NewAuthService(mockUsers, nil, nil, mockTokens, mockIssuer)
		tok, err := svc.Login(context.Background(), "alice1", "pw12345")
		assert.Error(t, err)
		assert.Empty(t, tok)
	})
}

func TestAuthService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Login: "alice1"}
	tok := &models.TokenDB{ID: 1, UserID: 7, Value: "token-value", CreatedAt: time.Now().Add(-time.Hour)}

	t.Run("valid token", func(t *testing.T) {
		mockTokens := services.NewMockTokenReader(ctrl)
		mockIssuer := services.NewMockTokenIssuer(ctrl)

		mockTokens.EXPECT().GetByValue(gomock.Any(), "token-value").Return(tok, user, nil)
		mockIssuer.EXPECT().Expired(tok.CreatedAt, gomock.Any()).Return(false)

		svc := services.NewAuthService(nil, nil, mockTokens, nil, mockIssuer)
		got, err := svc.Authorize(context.Background(), "token-value")
		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockTokens := services.NewMockTokenReader(ctrl)
		mockTokens.EXPECT().GetByValue(gomock.Any(), "bogus").Return(nil, nil, nil)

		svc := services.NewAuthService(nil, nil, mockTokens, nil, nil)
		got, err := svc.Authorize(context.Background(), "bogus")
		assert.ErrorIs(t, err, services.ErrTokenInvalid)
		assert.Nil(t, got)
	})

	t.Run("expired token", func(t *testing.T) {
		mockTokens := services.NewMockTokenReader(ctrl)
		mockIssuer := services.NewMockTokenIssuer(ctrl)

		mockTokens.EXPECT().GetByValue(gomock.Any(), "token-value").Return(tok, user, nil)
		mockIssuer.EXPECT().Expired(tok.CreatedAt, gomock.Any()).Return(true)

		svc := services.NewAuthService(nil, nil, mockTokens, nil, mockIssuer)
		got, err := svc.Authorize(context.Background(), "token-value")
		assert.ErrorIs(t, err, services.ErrTokenExpired)
		assert.Nil(t, got)
	})

	t.Run("lookup error", func(t *testing.T) {
		mockTokens := services.NewMockTokenReader(ctrl)
		mockTokens.EXPECT().GetByValue(gomock.Any(), "token-value").Return(nil, nil, errors.New("db error"))

		svc := services.NewAuthService(nil, nil, mockTokens, nil, nil)
		got, err := svc.Authorize(context.Background(), "token-value")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("revokes token", func(t *testing.T) {
		mockTokens := services.NewMockTokenWriter(ctrl)
		mockTokens.EXPECT().Delete(gomock.Any(), "token-value").Return(nil)

		svc := services.NewAuthService(nil, nil, nil, mockTokens, nil)
		assert.NoError(t, svc.Logout(context.Background(), "token-value"))
	})

	t.Run("unknown token", func(t *testing.T) {
		mockTokens := services.NewMockTokenWriter(ctrl)
		mockTokens.EXPECT().Delete(gomock.Any(), "bogus").Return(repositories.ErrNotFound)

		svc := services.NewAuthService(nil, nil, nil, mockTokens, nil)
		assert.ErrorIs(t, svc.Logout(context.Background(), "bogus"), services.ErrTokenInvalid)
	})
}
