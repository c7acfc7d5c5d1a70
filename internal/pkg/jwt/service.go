package jwt

import (
	"errors"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const ScopeWrite = "write"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrNoSecret     = errors.New("token secret is not configured")
)

type Claims struct {
	Scope string `json:"scope"`

	jwtlib.RegisteredClaims
}

type Service interface {
	IssueToken(subject string, ttl time.Duration) (string, Claims, error)
	ValidateToken(tokenString string) (Claims, error)
}

// HMACService signs API tokens with HS256. Tokens are minted offline by an
// operator and presented as bearer tokens on mutating requests.
type HMACService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration

	now func() time.Time
}

func NewHMACService(secret, issuer string, defaultTTL time.Duration) *HMACService {
	return &HMACService{
		secret:     []byte(secret),
		issuer:     strings.TrimSpace(issuer),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (s *HMACService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

func (s *HMACService) IssueToken(subject string, ttl time.Duration) (string, Claims, error) {
	if !s.Enabled() {
		return "", Claims{}, ErrNoSecret
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", Claims{}, ErrTokenInvalid
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if ttl <= 0 {
		return "", Claims{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		Scope: ScopeWrite,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return signed, c, nil
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	if !s.Enabled() {
		return Claims{}, ErrNoSecret
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}
	p := jwtlib.NewParser(opts...)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.Scope != ScopeWrite {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
