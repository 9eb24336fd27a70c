// Package engine is the boundary to the external yt-dlp extractor: it
// assembles per-operation command configurations, converts the engine's
// progress callbacks into neutral events, parses probe output, and locates
// the ffmpeg binary and a cookie source. Nothing above this package imports
// the yt-dlp binding directly.
package engine
