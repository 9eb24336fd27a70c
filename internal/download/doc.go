// Package download orchestrates operations against the extraction engine:
// probing metadata, building per-operation jobs, classifying failures into
// user-facing categories, the one-shot fallback retry on access
// restrictions, and draining the download queue.
package download
