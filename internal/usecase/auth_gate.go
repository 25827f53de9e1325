package usecase

import (
	"strings"

	"ia-service/internal/domain/entity"
)

// AuthGate checks "Authorization: Bearer <token>" headers against a fixed
// allow-list. The set is built once and never mutated, so a single gate is
// safe to share across all requests.
type AuthGate struct {
	tokens map[string]struct{}
}

func NewAuthGate(tokens []string) *AuthGate {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			set[t] = struct{}{}
		}
	}
	return &AuthGate{tokens: set}
}

// Authorize returns the caller identity for a valid header, or one of
// ErrMissingAuthHeader, ErrBadAuthFormat, ErrInvalidToken.
func (g *AuthGate) Authorize(header string) (entity.Caller, error) {
	if header == "" {
		return entity.Caller{}, entity.ErrMissingAuthHeader
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return entity.Caller{}, entity.ErrBadAuthFormat
	}
	if _, ok := g.tokens[parts[1]]; !ok {
		return entity.Caller{}, entity.ErrInvalidToken
	}
	return entity.Caller{Token: parts[1]}, nil
}

func (g *AuthGate) Size() int { return len(g.tokens) }
