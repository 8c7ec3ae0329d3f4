package http

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"product-api/internal/auth"
)

const internalErrorMessage = "Something went wrong!"

const principalKey = "authPrincipal"

// PrincipalFromContext returns the verified principal attached by the
// auth middleware, if any.
func PrincipalFromContext(c *gin.Context) (*auth.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*auth.Principal)
	return p, ok
}

// requireAuth rejects requests without a valid bearer token. A missing
// token and an invalid one get distinct statuses so clients can tell
// "log in first" apart from "your token is bad".
func requireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		principal, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid token.")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequestLogger logs one line per request with method, path, status,
// and latency.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}

// Recovery converts panics into the generic 500 envelope. The panic
// value and stack are logged server-side only.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithFields(logrus.Fields{
					"panic": r,
					"stack": string(debug.Stack()),
				}).Error("request panicked")
				respondError(c, http.StatusInternalServerError, internalErrorMessage)
			}
		}()
		c.Next()
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
