// Package model defines the shared value types of the application: download
// statuses, progress records, probed video metadata, and stream descriptors.
package model
