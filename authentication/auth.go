package authentication

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tufail-188/SkinAI-Hub/models"
	"github.com/Tufail-188/SkinAI-Hub/storage"
)

// dummyHash keeps Authenticate doing one bcrypt comparison whether or not
// the username exists, so response timing does not reveal which it was.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type sessionClaims struct {
	SessionID string `json:"sid"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// Service is the session gate: it establishes, checks and ends the
// logged-in identity every protected route depends on.
type Service struct {
	users    *storage.UserStore
	sessions *SessionStore
	secret   []byte
	ttl      time.Duration
}

func NewService(users *storage.UserStore, sessions *SessionStore, secret string, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, secret: []byte(secret), ttl: ttl}
}

// Register creates a user with a bcrypt password hash. The plaintext
// password is never stored or logged. A taken username comes back as
// models.ErrDuplicateUsername.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns a signed session token.
// Unknown user and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", models.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, username)
	if err != nil {
		return "", err
	}

	claims := &sessionClaims{
		SessionID: sess.ID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Authorize checks the token signature and then requires the referenced
// session to still exist in redis, so a logout revokes the token
// immediately even though its signature stays valid.
func (s *Service) Authorize(ctx context.Context, token string) (*Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess.Username != claims.Username {
		return nil, models.ErrUnauthorized
	}
	return sess, nil
}

// End invalidates the session behind the token. Ending an already-invalid
// token is not an error.
func (s *Service) End(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

func (s *Service) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
