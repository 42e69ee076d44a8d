package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

const walletKey = "wallet"

// AuthRequired resolves the caller's wallet address and rejects requests
// that carry no identity. The address lands in the context under walletKey.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet, err := utils.GetWalletFromRequest(c)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}
		if wallet == "" {
			utils.UnauthorizedResponse(c, "Wallet identity required")
			c.Abort()
			return
		}
		c.Set(walletKey, wallet)
		c.Next()
	}
}

func walletFromContext(c *gin.Context) string {
	return c.GetString(walletKey)
}
