package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/internal/utils"
	"github.com/MKhiriev/scan-history/models"
)

// authService issues and verifies device bearer tokens. Devices are not
// registered anywhere: a token signed with the shared key binds requests to
// the device id in its subject.
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

// NewAuthService constructs an AuthService from the token settings in cfg.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken signs a token for deviceID.
//
// Returns ErrInvalidDataProvided for an empty device id and
// ErrTokenCreationFailed if signing fails.
func (a *authService) IssueToken(ctx context.Context, deviceID string) (models.DeviceToken, error) {
	if deviceID == "" {
		logger.FromContext(ctx).Error().Msg("token requested without device id")
		return models.DeviceToken{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateDeviceToken(a.tokenIssuer, deviceID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.DeviceToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, missing subject)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.DeviceToken, error) {
	token, err := utils.ValidateAndParseDeviceToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("device token rejected")
		return models.DeviceToken{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
