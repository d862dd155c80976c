package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/utils"
	"github.com/MKhiriev/acquasitions/models"
)

// authService is the concrete implementation of AuthService.
// It mints and verifies HMAC-SHA256 JWT tokens carrying the user's ID and role.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction. Without a sign key every token is rejected.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	if cfg.TokenSignKey == "" {
		logger.Warn().Msg("no token sign key configured, all bearer tokens will be rejected")
	}

	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the user's role as the "role" claim and
// expires after tokenDuration.
//
// Returns ErrInvalidDataProvided if the user has no ID or an unknown role, or
// ErrTokenCreationFailed if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if user.ID <= 0 || !user.Role.IsValid() {
		logger.FromContext(ctx).Error().Int64("id", user.ID).Stringer("role", user.Role).Msg("invalid user data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature, the
// issuer, the expiry and the role claim. An expired token yields
// ErrTokenIsExpired; every other failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if utils.IsTokenExpired(err) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
