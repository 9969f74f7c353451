package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"

	"docanalysis/internal/engine"
	"docanalysis/internal/engine/auth"
	"docanalysis/internal/repo"
)

// AuthConfig selects how callers are identified. Requests without
// credentials act as AnonymousRole when it is set and are rejected
// otherwise.
type AuthConfig struct {
	JWTSecret     string
	AnonymousRole string
}

const anonymousActor = "anonymous"

type principalKey struct{}

func withPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}

func principalFromRequest(ctx context.Context) (auth.Principal, huma.StatusError) {
	if p, ok := principalFromContext(ctx); ok && p.ActorID != "" {
		return p, nil
	}
	return auth.Principal{}, newServiceError(http.StatusUnauthorized, "MissingAuthenticationTokenException", "authentication required")
}

type jwtClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// IssueToken signs an HS256 token for actorID carrying roles.
func IssueToken(secret, actorID string, roles []string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("jwt secret not configured")
	}
	if strings.TrimSpace(actorID) == "" {
		return "", errors.New("actor id required")
	}
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  actorID,
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   "docanalysis",
		},
		Roles: roles,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func authenticateJWT(token string, secret string) (auth.Principal, error) {
	if strings.TrimSpace(secret) == "" {
		return auth.Principal{}, errors.New("jwt secret not configured")
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &jwtClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return auth.Principal{}, err
	}
	if !parsed.Valid {
		return auth.Principal{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return auth.Principal{}, errors.New("subject claim required")
	}
	return auth.Principal{
		ActorID: claims.Subject,
		Roles:   claims.Roles,
		Source:  "jwt",
	}, nil
}

func authenticateAPIKey(ctx context.Context, r repo.Repo, key string) (auth.Principal, error) {
	if strings.TrimSpace(key) == "" {
		return auth.Principal{}, errors.New("api key required")
	}
	apiKey, err := r.GetAPIKeyByHash(ctx, repo.HashAPIKey(key))
	if err != nil {
		return auth.Principal{}, err
	}
	if apiKey.ActorID == "" {
		return auth.Principal{}, errors.New("api key missing actor")
	}
	return auth.Principal{
		ActorID: apiKey.ActorID,
		Source:  "api_key",
	}, nil
}

func bearerToken(authz string) (string, bool) {
	parts := strings.Fields(authz)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func newAuthMiddleware(basePath string, cfg AuthConfig, e engine.Engine) func(http.Handler) http.Handler {
	public := map[string]bool{
		path.Join("/", basePath, "health"):       true,
		path.Join("/", basePath, "docs"):         true,
		path.Join("/", basePath, "openapi.json"): true,
	}
	invalid := newServiceError(http.StatusUnauthorized, "UnrecognizedClientException", "the security token included in the request is invalid")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if public[req.URL.Path] {
				next.ServeHTTP(w, req)
				return
			}

			authz := strings.TrimSpace(req.Header.Get("Authorization"))
			apiKeyHeader := strings.TrimSpace(req.Header.Get("X-Api-Key"))

			var principal auth.Principal
			switch {
			case authz != "":
				token, ok := bearerToken(authz)
				if !ok {
					respondStatusError(w, invalid)
					return
				}
				p, err := authenticateJWT(token, cfg.JWTSecret)
				if err != nil {
					log.WithError(err).Debug("jwt rejected")
					respondStatusError(w, invalid)
					return
				}
				principal = p
			case apiKeyHeader != "":
				p, err := authenticateAPIKey(req.Context(), e.Repo, apiKeyHeader)
				if err != nil {
					if !errors.Is(err, repo.ErrNotFound) {
						log.WithError(err).Warn("api key lookup failed")
					}
					respondStatusError(w, invalid)
					return
				}
				principal = p
			case cfg.AnonymousRole != "":
				principal = auth.Principal{ActorID: anonymousActor, Roles: []string{cfg.AnonymousRole}, Source: "anonymous"}
			default:
				respondStatusError(w, newServiceError(http.StatusUnauthorized, "MissingAuthenticationTokenException", "authentication required"))
				return
			}

			// Tokens without a roles claim and API keys use the roles
			// stored for the actor.
			if len(principal.Roles) == 0 {
				roles, err := e.Auth.ActorRoles(req.Context(), principal.ActorID)
				if err != nil {
					respondStatusError(w, handleError(err))
					return
				}
				principal.Roles = roles
			}
			next.ServeHTTP(w, req.WithContext(withPrincipal(req.Context(), principal)))
		})
	}
}

func respondStatusError(w http.ResponseWriter, err huma.StatusError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.GetStatus())
	_ = json.NewEncoder(w).Encode(err)
}
