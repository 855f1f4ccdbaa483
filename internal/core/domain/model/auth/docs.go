// Package auth defines the calling principal model: the roles a token can
// carry and the Caller value handlers receive after authentication.
package auth
