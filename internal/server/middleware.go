package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/barflow/internal/accountcontext"
	"github.com/smallbiznis/barflow/internal/config"
)

// AccountContext resolves the owning account for the request. The
// X-Account-ID header wins; a configured default account keeps local
// single-tenant setups working without the header.
func AccountContext(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := cfg.DefaultAccountID

		if raw := strings.TrimSpace(c.GetHeader("X-Account-ID")); raw != "" {
			parsed, err := snowflake.ParseString(raw)
			if err != nil {
				AbortWithError(c, newValidationError("account_id", "invalid_account", "invalid account id"))
				return
			}
			accountID = int64(parsed)
		}

		if accountID == 0 {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		ctx := accountcontext.WithAccountID(c.Request.Context(), accountID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
