package utils

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/divi2806/suiVerse-sub000/internal/config"
)

type Claims struct {
	WalletAddress string `json:"walletAddress"`
	jwt.RegisteredClaims
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GetWalletFromRequest resolves the caller's wallet address from the Authorization
// header when present, otherwise from the X-Wallet-Address header. Returns an
// empty string when the request carries no identity.
func GetWalletFromRequest(c *gin.Context) (string, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString != "" {
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		claims, err := ValidateJWT(tokenString)
		if err != nil {
			return "", err
		}
		return claims.WalletAddress, nil
	}
	return c.GetHeader("X-Wallet-Address"), nil
}
