// Package progress normalizes raw engine progress events into uniform,
// rate-limited display records.
package progress
