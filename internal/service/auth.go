// Package service contains the account service used to obtain session tokens.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	pkgcrypto "github.com/and161185/fishlog/internal/crypto"
	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AuthService signs users up and in.
type AuthService interface {
	// Register creates a user with a salted password hash.
	Register(ctx context.Context, username, password string) (uuid.UUID, error)
	// Login checks credentials and issues an access token.
	Login(ctx context.Context, username, password string) (model.Tokens, error)
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	signKey   []byte
	accessTTL time.Duration
	now       func() time.Time
	log       *zap.Logger
}

// NewAuthService constructs AuthService. A nil logger disables logging.
func NewAuthService(users repository.UserRepository, signKey []byte, accessTTL time.Duration, log *zap.Logger) *AuthServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{users: users, signKey: signKey, accessTTL: accessTTL, now: time.Now, log: log}
}

// Register creates a new user record.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return uuid.Nil, errs.Invalid("username", "must not be empty")
	}
	if password == "" {
		return uuid.Nil, errs.Invalid("password", "must not be empty")
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	salt, err := pkgcrypto.NewSalt()
	if err != nil {
		return uuid.Nil, err
	}
	u := &model.User{
		ID:       uid,
		Username: username,
		PwdHash:  pkgcrypto.HashPassword([]byte(password), salt),
		Salt:     salt,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}
	s.log.Info("user registered", zap.String("user_id", uid.String()))
	return uid, nil
}

// Login authenticates the user. Unknown users and wrong passwords both yield ErrUnauthorized.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (model.Tokens, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, errs.ErrUnauthorized
		}
		return model.Tokens{}, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.Salt, u.PwdHash) {
		return model.Tokens{}, errs.ErrUnauthorized
	}

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	return signed, exp, err
}
