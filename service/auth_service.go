package application

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/Warsame-Adam/skystream-api/domain"
	"github.com/Warsame-Adam/skystream-api/errors"
)

const tokenLifetime = 24 * time.Hour

type AuthService struct {
	users  domain.UserStore
	roles  domain.RoleStore
	cache  domain.TokenCache
	tracer trace.Tracer
	logger *logrus.Logger
}

func NewAuthService(users domain.UserStore, roles domain.RoleStore, cache domain.TokenCache, tracer trace.Tracer, logger *logrus.Logger) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		cache:  cache,
		tracer: tracer,
		logger: logger,
	}
}

// Register stores a new user with a hashed password and the default role,
// then signs them in. The returned user never carries the password.
func (service *AuthService) Register(ctx context.Context, user *domain.User) (*domain.User, string, error) {
	ctx, span := service.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	if err := user.Validate(); err != nil {
		return nil, "", &ValidationError{Message: err.Error()}
	}

	existing, err := service.users.GetByEmail(ctx, user.Email)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", &ValidationError{Message: errors.EmailAlreadyExist}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user.Password = string(hash)

	defaultRole, err := service.roles.GetByName(ctx, "user")
	if err != nil {
		return nil, "", err
	}
	user.Roles = []primitive.ObjectID{defaultRole.ID}

	created, err := service.users.Insert(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := service.issueToken(ctx, created)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login checks the credentials and issues a signed session token. Every
// failure answers with the same message, the caller can not probe which
// part was wrong.
func (service *AuthService) Login(ctx context.Context, credentials *domain.Credentials) (*domain.User, string, error) {
	ctx, span := service.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := service.users.GetByEmail(ctx, credentials.Email)
	if err != nil {
		return nil, "", &ValidationError{Message: errors.InvalidCredentials}
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)) != nil {
		return nil, "", &ValidationError{Message: errors.InvalidCredentials}
	}

	token, err := service.issueToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout drops the cached session entry, the token stops validating even
// though its signature still checks out.
func (service *AuthService) Logout(ctx context.Context, tokenID string) error {
	ctx, span := service.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	return service.cache.DelCachedValue(ctx, tokenID)
}

// ValidateToken verifies signature, expiry and that the session has not
// been signed out.
func (service *AuthService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	ctx, span := service.tracer.Start(ctx, "AuthService.ValidateToken")
	defer span.End()

	verifier, err := jwt.NewVerifierHS(jwt.HS256, signingKey())
	if err != nil {
		return nil, err
	}
	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}

	var claims domain.Claims
	if err := json.Unmarshal(token.Claims(), &claims); err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}
	if time.Now().After(claims.ExpiresAt) {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}
	if _, err := service.cache.GetCachedValue(ctx, claims.TokenID); err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}
	return &claims, nil
}

func (service *AuthService) issueToken(ctx context.Context, user *domain.User) (string, error) {
	roles, err := service.roles.GetByIDs(ctx, user.Roles)
	if err != nil {
		return "", err
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, role.Name)
	}

	tokenID := uuid.New().String()
	claims := &domain.Claims{
		UserID:    user.ID,
		Email:     user.Email,
		Roles:     roleNames,
		TokenID:   tokenID,
		ExpiresAt: time.Now().Add(tokenLifetime),
	}

	tokenString, err := GenerateJWT(claims)
	if err != nil {
		return "", err
	}

	if err := service.cache.PostCacheData(ctx, tokenID, user.ID.Hex()); err != nil {
		return "", err
	}
	return tokenString, nil
}

func GenerateJWT(claims *domain.Claims) (string, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, signingKey())
	if err != nil {
		return "", err
	}
	token, err := jwt.NewBuilder(signer).Build(claims)
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

func signingKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}
