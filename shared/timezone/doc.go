// Package timezone provides timezone utilities for the application.
//
// Request and approval timestamps on stall records are always recorded
// through timezone.Now() so that every store observes the same clock.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform
// compatibility ("UTC", "Asia/Jakarta", "America/New_York").
package timezone
