// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/sec"
	"github.com/courseforge/courseforge/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - email: The email of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, email string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new author.
type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrolls a new author. The email is lowercased before both the
uniqueness check and storage, so "Alice@X.com" and "alice@x.com" are the
same identity.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if the email exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Verify email uniqueness. Return a client-safe Conflict err. The DB
	// unique constraint remains the final arbiter under concurrent registers.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered", apperr.FieldError{
			Field:   FieldEmail,
			Message: "is already registered",
		})
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  input.DisplayName,
		PasswordHash: hashedPassword,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken      string
	SessionToken     string
	SessionExpiresAt time.Time
	User             *User
}

/*
Login validates user credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
and establishes a new opaque session alongside a short-lived access token.
Unknown email and wrong password produce the identical generic failure so
the response never reveals which half was wrong.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := service.userRepository.FindByEmail(context, email)

	// Generic message to prevent account enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt comparison is constant-time, mitigating timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	return service.establishSession(context, user)
}

/*
Logout permanently removes the user's active session.

Description: Ensures that a tracked session token can never be used again.
Unknown or already-removed tokens succeed silently (idempotent operation).

Parameters:
  - context: context.Context
  - sessionToken: string

Returns:
  - err: Removal failures
*/
func (service *Service) Logout(context context.Context, sessionToken string) error {

	tokenHash := sec.HashToken(sessionToken)

	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

// # Session Management

/*
RefreshSession implements the session rotation mechanism.

Description: Verifies the existing opaque token, removes it to prevent reuse
(replay attack mitigation), and issues a fresh token pair.

Parameters:
  - context: context.Context
  - sessionToken: string

Returns:
  - *LoginSession: New session credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, sessionToken string) (*LoginSession, error) {

	// Hash the incoming token to look it up
	tokenHash := sec.HashToken(sessionToken)
	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)

	// If (err != nil) the token is either expired, already rotated, or completely invalid.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	// Rotation: remove the old session to prevent replay attacks
	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_rotate_failed: %w", err)
	}

	// Fetch the user associated with this session
	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or suspended")
	}

	return service.establishSession(context, user)
}

/*
Me resolves the authenticated identity into a full profile.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims (nil means unauthenticated)

Returns:
  - *User: Hydrated profile
  - err: Unauthorized or retrieval failures
*/
func (service *Service) Me(context context.Context, identity *sec.AuthClaims) (*User, error) {
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	user, err := service.userRepository.FindByID(context, identity.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// establishSession mints the access token + opaque session pair for a user.
func (service *Service) establishSession(context context.Context, user *User) (*LoginSession, error) {

	// Generate short-lived Access Token
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Email, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Generate long-lived opaque session token
	sessionToken, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_token_failed: %w", err)
	}

	// Persist the session record, keyed by the token's hash
	expiresAt := time.Now().Add(SessionTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := service.sessionRepository.Create(context, sec.HashToken(sessionToken), session, SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:      accessToken,
		SessionToken:     sessionToken,
		SessionExpiresAt: expiresAt,
		User:             user,
	}, nil
}
