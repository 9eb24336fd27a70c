package download

import "strings"

// ErrorKind is the user-facing failure category of a download operation
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindRemoved       ErrorKind = "removed"
	KindPrivate       ErrorKind = "private"
	KindAgeRestricted ErrorKind = "age_restricted"
	KindGeoBlocked    ErrorKind = "geo_blocked"
	KindAccessDenied  ErrorKind = "access_denied" // still forbidden after the fallback retry
	KindUnknown       ErrorKind = "unknown"
)

// Error is the single terminal failure of an operation. Message is the
// human-readable sentence shown to the user; Raw preserves the engine's
// free-text error and is surfaced only for KindUnknown.
type Error struct {
	Kind    ErrorKind
	Message string
	Raw     string
}

func (e *Error) Error() string {
	return e.Message
}

// newError builds an Error with the canonical sentence for the kind
func newError(kind ErrorKind, raw string) *Error {
	message := ""
	switch kind {
	case KindNotFound:
		message = "Could not find a video at this URL."
	case KindRemoved:
		message = "This video has been removed or deleted."
	case KindPrivate:
		message = "This video is private and cannot be downloaded."
	case KindAgeRestricted:
		message = "This video is age-restricted. Configure a cookie source and try again."
	case KindGeoBlocked:
		message = "This video is not available in your region."
	case KindAccessDenied:
		message = "Access to this video was denied."
	default:
		message = "Download failed: " + raw
	}
	return &Error{Kind: kind, Message: message, Raw: raw}
}

// isForbidden403 matches the specific failure signature that warrants the
// single scripted retry with a looser selection expression.
func isForbidden403(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "403") && strings.Contains(msg, "forbidden")
}

// classifyFailure maps an engine failure to its category by substring match
// on the lower-cased message, in priority order. The 403 signature is
// handled by the caller before classification because it triggers a retry
// rather than a terminal outcome.
func classifyFailure(err error) *Error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "private video"):
		return newError(KindPrivate, err.Error())
	case strings.Contains(msg, "age") && strings.Contains(msg, "restricted"):
		return newError(KindAgeRestricted, err.Error())
	case strings.Contains(msg, "not available") || strings.Contains(msg, "geo"):
		return newError(KindGeoBlocked, err.Error())
	case strings.Contains(msg, "removed") || strings.Contains(msg, "deleted"):
		return newError(KindRemoved, err.Error())
	default:
		return newError(KindUnknown, err.Error())
	}
}
