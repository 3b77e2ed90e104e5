// Package timezone keeps every timestamp of the parking lot in one location.
//
// The location comes from APP_TIMEZONE and defaults to America/Guayaquil.
// Report windows (today, this week, this month) are computed with the
// StartOf helpers so that weeks always open on Sunday.
package timezone
