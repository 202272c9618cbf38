package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/internal/validators"
	"github.com/idfinder-gh/idfinder/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification against bcrypt hashes, JWT token
// lifecycle, and per-request principal resolution.
type authService struct {
	// userRepository is the data-access layer used to look up staff accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates a staff account by email and password and issues a
// bearer token on success.
//
// Every authentication failure collapses to ErrInvalidCredentials: an
// unknown email and a wrong password are indistinguishable to the caller.
// The last-login stamp is recorded best-effort; a failure there never fails
// the login itself.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateLoginRequest(req); err != nil {
		return models.LoginResponse{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown account")
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user lookup failed during login")
		return models.LoginResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("login attempt with wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token generation failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err := a.userRepository.RecordLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}

	return models.LoginResponse{
		Token: token.SignedString,
		User:  user.Profile(),
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal loads the account behind a validated token subject and
// returns the identity downstream authorization runs against.
//
// The role comes from storage on every call, so demoting or promoting an
// account takes effect on the next request rather than at token expiry.
// An unknown or corrupted role string degrades to VIEWER.
func (a *authService) ResolvePrincipal(ctx context.Context, userID string) (models.Principal, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	role := user.Role
	if !role.Valid() {
		logger.FromContext(ctx).Warn().
			Str("user_id", user.ID).
			Str("role", string(user.Role)).
			Msg("account carries unknown role, degrading to viewer")
		role = models.RoleViewer
	}

	return models.Principal{UserID: user.ID, Role: role}, nil
}
