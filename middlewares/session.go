package middlewares

import (
	crand "crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "mp_session"
	sessionTTL    = 30 * 24 * time.Hour
)

// SessionMiddleware gives every visitor a signed anonymous session id in a
// cookie. The id scopes the cart in durable storage; a missing or invalid
// token just mints a fresh session, there is nothing to reject.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok, err := c.Cookie(sessionCookie); err == nil {
			if sid, ok := parseSessionToken(tok, secret); ok {
				c.Set("sessionId", sid)
				c.Next()
				return
			}
		}

		sid := newSessionID()
		if tok, err := signSessionToken(sid, secret); err == nil {
			c.SetCookie(sessionCookie, tok, int(sessionTTL.Seconds()), "/", "", false, true)
		}
		c.Set("sessionId", sid)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func newSessionID() string {
	b := make([]byte, 16)
	_, _ = crand.Read(b)
	return hex.EncodeToString(b)
}

func signSessionToken(sid, secret string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseSessionToken(tok, secret string) (string, bool) {
	token, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, _ := claims["sub"].(string)
	return sid, sid != ""
}
