package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/errx"
	"github.com/Abraxas-365/crewdesk/pkg/iam/admin"
	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
	"github.com/Abraxas-365/crewdesk/pkg/kernel"
	"github.com/Abraxas-365/crewdesk/pkg/logx"
	"github.com/google/uuid"
)

// SessionStore is the session persistence used by login and middleware
type SessionStore interface {
	Save(ctx context.Context, sess *session.AdminSession) (bool, error)
	Load(ctx context.Context, id kernel.SessionID) (*session.AdminSession, error)
	Delete(ctx context.Context, id kernel.SessionID)
}

// LoginResult is what a successful login hands back to the client
type LoginResult struct {
	Token          string                `json:"token"`
	ExpiresAt      time.Time             `json:"expires_at"`
	Session        *session.AdminSession `json:"session"`
	Scopes         []string              `json:"scopes"`
	StorageWarning bool                  `json:"storage_warning"`
}

type AuthService struct {
	admins    admin.Repository
	passwords admin.PasswordService
	sessions  SessionStore
	tokens    TokenService

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(
	admins admin.Repository,
	passwords admin.PasswordService,
	sessions SessionStore,
	tokens TokenService,
) *AuthService {
	return &AuthService{
		admins:    admins,
		passwords: passwords,
		sessions:  sessions,
		tokens:    tokens,
	}
}

// Login checks credentials against approved admins only. It has no side
// effect; the caller decides whether to materialize a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*admin.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials()
	}

	user, err := s.admins.GetApprovedByUsername(ctx, username)
	if err != nil {
		if errx.IsCode(err, admin.CodeAdminNotFound) {
			// keep the timing of unknown users close to a wrong password
			s.passwords.VerifyPassword(s.placeholderHash(), password)
			return nil, ErrInvalidCredentials()
		}
		return nil, errx.Wrap(err, "failed to look up admin", errx.TypeInternal)
	}

	if !s.passwords.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials()
	}

	return user, nil
}

// MaterializeSession stores a session for user and verifies it. The flag is
// true when the session only lives in process memory.
func (s *AuthService) MaterializeSession(ctx context.Context, user *admin.AdminUser) (*session.AdminSession, bool, error) {
	sess := session.NewAdminSession(kernel.NewSessionID(uuid.NewString()), user)

	degraded, err := s.sessions.Save(ctx, sess)
	if err != nil {
		return nil, false, err
	}
	return sess, degraded, nil
}

// SignIn runs Login, MaterializeSession and token issuance in order
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess, degraded, err := s.MaterializeSession(ctx, user)
	if err != nil {
		return nil, err
	}

	scopes := ScopesOf(sess.Permissions)
	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID, sess.SessionID, scopes)
	if err != nil {
		s.sessions.Delete(ctx, sess.SessionID)
		return nil, err
	}

	logx.Infof("admin %s signed in (session %s, degraded=%v)", user.Username, sess.SessionID, degraded)

	return &LoginResult{
		Token:          token,
		ExpiresAt:      expiresAt,
		Session:        sess,
		Scopes:         scopes,
		StorageWarning: degraded,
	}, nil
}

func (s *AuthService) CurrentSession(ctx context.Context, id kernel.SessionID) (*session.AdminSession, error) {
	return s.sessions.Load(ctx, id)
}

func (s *AuthService) ClearSession(ctx context.Context, id kernel.SessionID) {
	s.sessions.Delete(ctx, id)
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.passwords.HashPassword(uuid.NewString())
		if err != nil {
			logx.Warnf("failed to prepare placeholder hash: %v", err)
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
