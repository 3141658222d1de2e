package usecase

import (
	"scms/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware. Only the principal
// email lives in the token; roles are read from the store per request so a
// promotion is effective without reissuing credentials.
type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}
