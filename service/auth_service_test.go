package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
)

func newAuthServiceForTest(users *mockUserStore, roles *mockRoleStore, cache *mockTokenCache) *AuthService {
	return NewAuthService(users, roles, cache, noopTracer(), logrus.New())
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{Email: "jo@example.com"}, nil)

	service := newAuthServiceForTest(users, new(mockRoleStore), new(mockTokenCache))

	_, _, err := service.Register(context.Background(), &domain.User{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "secret1",
	})

	assert.Error(t, err)
	assert.Equal(t, errors.EmailAlreadyExist, err.Error())
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestRegisterHashesPasswordAndAssignsDefaultRole(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	users := new(mockUserStore)
	roles := new(mockRoleStore)
	cache := new(mockTokenCache)

	roleID := primitive.NewObjectID()
	users.On("GetByEmail", mock.Anything, "jo@example.com").Return(nil, mongo.ErrNoDocuments)
	roles.On("GetByName", mock.Anything, "user").Return(&domain.Role{ID: roleID, Name: "user"}, nil)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")) == nil &&
			len(user.Roles) == 1 && user.Roles[0] == roleID
	})).Return(&domain.User{ID: primitive.NewObjectID(), Email: "jo@example.com", Roles: []primitive.ObjectID{roleID}}, nil)
	roles.On("GetByIDs", mock.Anything, mock.Anything).Return([]*domain.Role{{ID: roleID, Name: "user"}}, nil)
	cache.On("PostCacheData", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := newAuthServiceForTest(users, roles, cache)

	created, token, err := service.Register(context.Background(), &domain.User{
		Name:     "Jo",
		Email:    "jo@example.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEmpty(t, token)
	users.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, "jo@example.com").Return(&domain.User{
		Email:    "jo@example.com",
		Password: string(hash),
	}, nil)

	service := newAuthServiceForTest(users, new(mockRoleStore), new(mockTokenCache))

	_, _, err = service.Login(context.Background(), &domain.Credentials{Email: "jo@example.com", Password: "wrong"})

	assert.Error(t, err)
	assert.Equal(t, errors.InvalidCredentials, err.Error())
}

func TestLoginUnknownEmailGivesTheSameError(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, mongo.ErrNoDocuments)

	service := newAuthServiceForTest(users, new(mockRoleStore), new(mockTokenCache))

	_, _, err := service.Login(context.Background(), &domain.Credentials{Email: "nobody@example.com", Password: "whatever"})

	assert.Error(t, err)
	assert.Equal(t, errors.InvalidCredentials, err.Error())
}

func TestValidateTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	claims := &domain.Claims{
		UserID:    primitive.NewObjectID(),
		Email:     "jo@example.com",
		Roles:     []string{"user"},
		TokenID:   "session-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	token, err := GenerateJWT(claims)
	assert.NoError(t, err)

	cache := new(mockTokenCache)
	cache.On("GetCachedValue", mock.Anything, "session-1").Return(claims.UserID.Hex(), nil)

	service := newAuthServiceForTest(new(mockUserStore), new(mockRoleStore), cache)

	parsed, err := service.ValidateToken(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, claims.UserID, parsed.UserID)
	assert.Equal(t, []string{"user"}, parsed.Roles)
}

func TestValidateTokenRejectsSignedOutSession(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, err := GenerateJWT(&domain.Claims{
		TokenID:   "session-2",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)

	cache := new(mockTokenCache)
	cache.On("GetCachedValue", mock.Anything, "session-2").Return("", assert.AnError)

	service := newAuthServiceForTest(new(mockUserStore), new(mockRoleStore), cache)

	_, err = service.ValidateToken(context.Background(), token)

	assert.Error(t, err)
	assert.Equal(t, errors.InvalidTokenError, err.Error())
}

func TestValidateTokenRejectsExpiredClaims(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	token, err := GenerateJWT(&domain.Claims{
		TokenID:   "session-3",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.NoError(t, err)

	service := newAuthServiceForTest(new(mockUserStore), new(mockRoleStore), new(mockTokenCache))

	_, err = service.ValidateToken(context.Background(), token)

	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")

	service := newAuthServiceForTest(new(mockUserStore), new(mockRoleStore), new(mockTokenCache))

	_, err := service.ValidateToken(context.Background(), "not-a-token")

	assert.Error(t, err)
	assert.Equal(t, errors.InvalidTokenError, err.Error())
}

func TestLogoutDropsTheSession(t *testing.T) {
	cache := new(mockTokenCache)
	cache.On("DelCachedValue", mock.Anything, "session-4").Return(nil)

	service := newAuthServiceForTest(new(mockUserStore), new(mockRoleStore), cache)

	assert.NoError(t, service.Logout(context.Background(), "session-4"))
	cache.AssertExpectations(t)
}
