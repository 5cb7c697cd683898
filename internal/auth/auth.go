// Package auth implements password sign-in with JWT bearer tokens.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/I4AN/MagnetWallet/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("the email address or password is incorrect")
	ErrPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	ErrMissingToken       = errors.New("no bearer token was provided")
	ErrInvalidToken       = errors.New("the bearer token is invalid or expired")
)

var (
	secret        []byte
	tokenLifetime time.Duration
)

// Configure sets the signing secret and token lifetime. It must be called
// once before any token is issued or parsed.
func Configure(signingSecret string, lifetime time.Duration) {
	secret = []byte(signingSecret)
	tokenLifetime = lifetime
}

// Register creates a new user and returns it together with a signed token.
func Register(email, displayName, password string) (models.User, string, error) {
	if len(password) < 8 {
		return models.User{}, "", ErrPasswordTooShort
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Email:          email,
		DisplayName:    displayName,
		PasswordDigest: string(digest),
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, "", models.ErrEmailInUse
		}
		return models.User{}, "", err
	}

	token, err := IssueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and returns the user with a signed token.
func Login(email, password string) (models.User, string, error) {
	user, err := models.UserByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password))
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := IssueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// IssueToken signs a token for the user.
func IssueToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	return token.SignedString(secret)
}

// ParseToken validates a token and returns the user ID it was issued for.
func ParseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return id, nil
}
