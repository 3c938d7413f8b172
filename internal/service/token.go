// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"coursehub/internal/apperr"
	"coursehub/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// 測試可覆寫的全域函式
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	}
	return nil, fmt.Errorf("unsupported signing algorithm: %s", alg)
}

// IssueAccessToken 以設定的演算法簽發攜帶 sub 與 exp 的 JWT
func IssueAccessToken(cfg *config.Config, subject string, ttl time.Duration) (string, error) {
	method, err := signingMethod(cfg.JWTAlgorithm)
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyAccessToken 驗證簽章與到期時間並回傳 subject
// 過期回傳 apperr.ErrExpiredToken，其他任何驗證失敗回傳 apperr.ErrInvalidToken
func VerifyAccessToken(cfg *config.Config, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := parseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{cfg.JWTAlgorithm}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperr.ErrExpiredToken
		}
		return "", apperr.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.Subject, nil
}
