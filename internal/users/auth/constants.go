// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// We keep it short (15m) to minimize the impact of a leaked token.
	AccessTokenTTL = 15 * time.Minute

	// SessionTTL is the duration an opaque session token remains valid.
	// Long-lived (30 days) to provide a good authoring experience.
	SessionTTL = 30 * 24 * time.Hour

	// SessionTokenLength is the byte length of the random secure session token.
	SessionTokenLength = 32

	// PasswordMinLen and PasswordMaxLen bound accepted password lengths.
	PasswordMinLen = 8
	PasswordMaxLen = 128

	// DisplayNameMaxLen bounds the optional profile name.
	DisplayNameMaxLen = 100
)
