package auth

import (
	"fmt"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/config"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// JWTService implements TokenService with HS256 tokens
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
	issuer         string
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
		issuer:         issuer,
	}
}

func NewJWTServiceFromConfig(cfg *config.JWTConfig) *JWTService {
	return NewJWTService(cfg.SecretKey, cfg.AccessTokenTTL, cfg.Issuer)
}

var _ TokenService = (*JWTService)(nil)

type JWTClaims struct {
	SessionID kernel.SessionID `json:"sid"`
	Scopes    []string         `json:"scopes"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a token whose subject is the admin and whose sid
// names the stored session
func (j *JWTService) GenerateAccessToken(adminID kernel.AdminID, sessionID kernel.SessionID, scopes []string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(j.accessTokenTTL)

	if scopes == nil {
		scopes = []string{}
	}

	claims := JWTClaims{
		SessionID: sessionID,
		Scopes:    scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", time.Time{}, ErrTokenGenerationFailed().WithDetail("error", err.Error())
	}

	return tokenString, expiresAt, nil
}

// ValidateAccessToken verifies signature, issuer and expiry
func (j *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(j.issuer))

	if err != nil {
		return nil, ErrTokenValidationFailed().WithDetail("error", err.Error())
	}

	if !token.Valid {
		return nil, ErrTokenValidationFailed().WithDetail("error", "token is invalid")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.SessionID.IsEmpty() || claims.Subject == "" {
		return nil, ErrTokenValidationFailed().WithDetail("error", "invalid claims")
	}

	return &TokenClaims{
		AdminID:   kernel.NewAdminID(claims.Subject),
		SessionID: claims.SessionID,
		Scopes:    claims.Scopes,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
