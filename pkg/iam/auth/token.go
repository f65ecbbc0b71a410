package auth

import (
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

// TokenService issues and validates admin bearer tokens
type TokenService interface {
	GenerateAccessToken(adminID kernel.AdminID, sessionID kernel.SessionID, scopes []string) (string, time.Time, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

type TokenClaims struct {
	AdminID   kernel.AdminID
	SessionID kernel.SessionID
	Scopes    []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
