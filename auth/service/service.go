package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"expensedesk/auth/accounts"
	"expensedesk/auth/cache"
	"expensedesk/auth/storage"
	"expensedesk/internal/normalize"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access denied")
	ErrNotAuthorized      = errors.New("unauthorized")
)

const defaultCacheTTL = time.Hour

// Service verifies credentials against the employee store, with a
// cache-aside lookup in front of it, and issues signed tokens for
// verified accounts.
type Service struct {
	storage storage.AuthStorage
	cache   cache.AccountCache
	cfg     Config
	ttl     time.Duration
	log     *logrus.Entry
}

// Claims carried by issued tokens. The token binds the normalized
// email (subject) and role; it never carries the secret hash.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

func New(ctx context.Context, l *logrus.Logger, cfg Config, storage storage.AuthStorage, cache cache.AccountCache) (*Service, error) {
	ttl := defaultCacheTTL
	if cfg.CacheTTL != "" {
		var err error
		ttl, err = time.ParseDuration(cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
	}
	s := Service{
		cfg:     cfg,
		storage: storage,
		cache:   cache,
		ttl:     ttl,
		log: l.WithFields(map[string]interface{}{
			"from": "auth-service",
		}),
	}
	if cfg.RootEmail != "" {
		if err := s.seedRoot(ctx); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Service) seedRoot(ctx context.Context) error {
	email := normalize.Key(s.cfg.RootEmail)
	_, err := s.storage.GetAccount(ctx, email, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.RootPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	err = s.storage.CreateAccount(ctx, accounts.Account{
		ID:         uuid.New(),
		Email:      email,
		Role:       "admin",
		SecretHash: string(hash),
		Profile: accounts.Profile{
			Name: s.cfg.RootName,
		},
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	s.log.WithField("email", email).Info("root account created")
	return nil
}

// Login resolves the account for the (email, role) pair and verifies
// the password against its stored hash. Both a missing account and a
// password mismatch come back as ErrInvalidCredentials so the two
// causes are indistinguishable to the caller; they are logged apart.
// Any other error is an infrastructure failure and must not be
// presented as bad credentials.
func (s *Service) Login(ctx context.Context, email, password, role string) (accounts.Account, error) {
	account, err := s.resolve(ctx, email, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithField("email", normalize.Key(email)).Debug("login: no matching account")
			return accounts.Account{}, ErrInvalidCredentials
		}
		return accounts.Account{}, err
	}
	if !verifyPassword(password, account.SecretHash) {
		s.log.WithField("email", account.Email).Debug("login: password mismatch")
		return accounts.Account{}, ErrInvalidCredentials
	}
	return account.Sanitized(), nil
}

// resolve is the cache-aside read path: normalized (email, role) keys
// a cache lookup, falling back to the employee store on a miss and
// populating the cache with the fetched row. The cache is only ever
// written from a store read, never from request input. A cache outage
// degrades to a store read; a store outage fails the lookup. A
// password change in the store stays invisible until the entry's TTL
// runs out; nothing invalidates entries early.
func (s *Service) resolve(ctx context.Context, email, role string) (accounts.Account, error) {
	email = normalize.Key(email)
	role = normalize.Key(role)
	key := cacheKey(email, role)

	raw, err := s.cache.Get(ctx, key)
	if err == nil {
		var account accounts.Account
		if jsonErr := json.Unmarshal(raw, &account); jsonErr == nil {
			return account, nil
		}
		s.log.WithField("key", key).Warn("corrupt cache entry, falling back to storage")
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.WithError(err).Warn("cache unavailable, falling back to storage")
	}

	account, err := s.storage.GetAccount(ctx, email, role)
	if err != nil {
		return accounts.Account{}, err
	}

	if raw, err := json.Marshal(account); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.WithError(err).Warn("cache write failed")
		}
	}
	return account, nil
}

func cacheKey(email, role string) string {
	return "account:" + email + ":" + role
}

// verifyPassword compares the trimmed presented password against the
// stored bcrypt hash. An empty or malformed hash fails the comparison,
// it never panics.
func verifyPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(password)))
	return err == nil
}

// GenerateToken issues a signed JWT for the account. The token's
// expiration comes from config and is independent of the cache TTL.
func (s *Service) GenerateToken(account accounts.Account) (string, time.Time, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return "", time.Time{}, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: account.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Subject:   account.Email,
		},
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expirationTime, nil
}

func (s *Service) GenerateJWTCookie(account accounts.Account, host string) (*fiber.Cookie, error) {
	tokenString, expirationTime, err := s.GenerateToken(account)
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		Secure:   false,
		HTTPOnly: true,
	}, nil
}

// Auth authorizes a request: the bearer token (if any) is parsed and
// its account resolved through the same cache-aside path as Login,
// then the configured rules decide whether the account's role may hit
// the method/url pair.
func (s *Service) Auth(ctx context.Context, token string, method string, url string) (accounts.Account, error) {
	account, err := s.getAccountFromToken(ctx, token)
	if err != nil {
		return accounts.Account{}, ErrNotAuthorized
	}

	for _, rule := range s.cfg.Rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return accounts.Account{}, err
		}
		if !r.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.Method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.Allow {
				if role == "*" || role == account.Role {
					return account, nil
				}
			}
			return accounts.Account{}, ErrForbidden
		}
	}
	return accounts.Account{}, ErrForbidden
}

func (s *Service) getAccountFromToken(ctx context.Context, tokenString string) (accounts.Account, error) {
	if tokenString == "" {
		return accounts.Account{}, nil
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err == nil && token.Valid {
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return accounts.Account{}, errors.New("bad request")
		}
		account, err := s.resolve(ctx, claims.Subject, claims.Role)
		if err != nil {
			return accounts.Account{}, err
		}
		return account.Sanitized(), nil
	}
	ve := jwt.ValidationError{}
	if ok := errors.As(err, &ve); !ok {
		return accounts.Account{}, err
	}
	if ve.Errors&jwt.ValidationErrorMalformed != 0 {
		return accounts.Account{}, errors.New("bad request")
	} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
		return accounts.Account{}, errors.New("token expired")
	}
	return accounts.Account{}, err
}
