package shared

import "fmt"

var (
	// Storage errors
	ErrNotFound  = fmt.Errorf("record not found")
	ErrDuplicate = fmt.Errorf("record already exists")

	// Authentication errors
	ErrUnauthorized = fmt.Errorf("unauthorized")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Upstream and sync errors
	ErrUpstream        = fmt.Errorf("upstream API request failed")
	ErrChannelNotFound = fmt.Errorf("channel not found")
	ErrMissingAPIKey   = fmt.Errorf("YouTube API key not configured")
	ErrSyncInProgress  = fmt.Errorf("sync already in progress")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
)
