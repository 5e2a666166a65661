package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/adapter"
	apierrors "github.com/ardhichain/ardhi-registry/internal/api/shared/errors"
	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

const (
	AuthTypeJWT    = "jwt"
	AuthTypeAPIKey = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	JWTIssuer    string
	JWTAudience  string
	APIKeys      []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType    string
	Claims      *jwt.RegisteredClaims
	AuthSubject string
}

// Authenticator validates Authorization headers against a JWT public key and a set of API keys
type Authenticator struct {
	publicKey *rsa.PublicKey
	apiKeys   [][]byte
	parser    *jwt.Parser
}

// NewAuthenticator parses the configured key material once.
// A missing public key disables JWT authentication, no API keys disables key authentication.
func NewAuthenticator(cfg AuthConfig, clock adapter.Clock) (*Authenticator, error) {
	a := &Authenticator{}

	if strings.TrimSpace(cfg.JWTPublicKey) != "" {
		key, err := parseRSAPublicKey(cfg.JWTPublicKey)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		a.publicKey = key
	}

	for _, key := range cfg.APIKeys {
		if key = strings.TrimSpace(key); key != "" {
			a.apiKeys = append(a.apiKeys, []byte(key))
		}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithTimeFunc(clock.Now),
	}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	if cfg.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWTAudience))
	}
	a.parser = jwt.NewParser(opts...)

	return a, nil
}

// Authenticate validates the Authorization header.
// Both "Bearer <jwt>" and "ApiKey <key>" schemes are accepted.
func (a *Authenticator) Authenticate(authHeader string) (*AuthResult, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || strings.TrimSpace(credentials) == "" {
		return nil, errors.New("invalid Authorization header format")
	}
	credentials = strings.TrimSpace(credentials)

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := a.validateJWT(credentials)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AuthTypeJWT, Claims: claims, AuthSubject: claims.Subject}, nil

	case "apikey":
		if err := a.validateAPIKey(credentials); err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: AuthTypeAPIKey}, nil

	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Middleware rejects requests that fail authentication and stores the result in the gin context
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := a.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", err.Error())
			c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
			return
		}

		c.Set(string(AUTH_TYPE_KEY), result.AuthType)
		if result.Claims != nil {
			c.Set(string(JWT_CLAIMS_KEY), result.Claims)
		}
		if result.AuthSubject != "" {
			c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		}

		logger.DebugCtx(c.Request.Context(), "Authenticated request",
			zap.String("path", c.Request.URL.Path),
			zap.String("auth_type", result.AuthType),
			zap.String("subject", result.AuthSubject),
		)

		c.Next()
	}
}

func (a *Authenticator) validateJWT(tokenString string) (*jwt.RegisteredClaims, error) {
	if a.publicKey == nil {
		return nil, errors.New("JWT public key not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := a.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return a.publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (a *Authenticator) validateAPIKey(apiKey string) error {
	if len(a.apiKeys) == 0 {
		return errors.New("no API keys configured")
	}

	candidate := []byte(apiKey)
	for _, key := range a.apiKeys {
		if subtle.ConstantTimeCompare(candidate, key) == 1 {
			return nil
		}
	}
	return errors.New("invalid API key")
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// PKIX first, then PKCS1
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}

// AuthSubject returns the subject of the authenticated JWT, empty for API key requests
func AuthSubject(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}
