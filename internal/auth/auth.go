package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidToken       = errors.New("auth: invalid token")
)

// Claims — JWT оператора площадки.
type Claims struct {
	Login string `json:"login"`
	jwt.RegisteredClaims
}

// Service проверяет единственную учётную запись оператора и выпускает токены.
type Service struct {
	login string
	hash  []byte
	key   []byte
	ttl   time.Duration
	now   func() time.Time
}

func New(login, passwordHash, jwtKey string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{
		login: strings.ToLower(strings.TrimSpace(login)),
		hash:  []byte(passwordHash),
		key:   []byte(jwtKey),
		ttl:   ttl,
		now:   time.Now,
	}
}

// HashPassword — для генерации auth.password_hash.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Check: логин без учёта регистра, пароль по bcrypt.
func (s *Service) Check(login, password string) error {
	if strings.ToLower(strings.TrimSpace(login)) != s.login {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *Service) Issue(login string) (string, error) {
	now := s.now()
	claims := &Claims{
		Login: strings.ToLower(strings.TrimSpace(login)),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Login != s.login {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
