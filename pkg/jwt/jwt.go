package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")
var ErrTokenExpired error = errors.New("token expired")
var ErrTokenMissing error = errors.New("token is missing")

type TokenInfo struct {
	UserID     uint
	Email      string
	Expiration time.Duration
}

// Claims is what a verified token proves about its bearer.
type Claims struct {
	UserID    uint
	Email     string
	ExpiresAt time.Time
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := sessionClaims{
		Email: data.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(data.UserID), 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(data.Expiration).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token for the given user in one step. The
// returned time is the exp claim carried by the token.
func (gen *JWTService) Issue(data TokenInfo) (string, time.Time, error) {
	token := gen.Generate(data)
	claims := token.Claims.(sessionClaims)

	signed, err := gen.Sign(token)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, time.Unix(claims.ExpiresAt, 0), nil
}

func (gen *JWTService) Validate(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrTokenMissing
	}

	var claims sessionClaims
	jwtToken, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Claims{}, fmt.Errorf("token expired at %v: %w", time.Unix(claims.ExpiresAt, 0), ErrTokenExpired)
		}
		return Claims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return Claims{}, ErrTokenNotValid
	}

	if claims.ExpiresAt == 0 {
		return Claims{}, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}

	if claims.ExpiresAt < TimeNow().Unix() {
		return Claims{}, fmt.Errorf("token expired at %v: %w", time.Unix(claims.ExpiresAt, 0), ErrTokenExpired)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Claims{}, fmt.Errorf("parse subject %q: %w", claims.Subject, ErrTokenNotValid)
	}

	return Claims{
		UserID:    uint(userID),
		Email:     claims.Email,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}
