// Package queue implements the pending-download list: an ordered set of items
// with a forward-only cursor, driven by a single consumer. Items already
// dispatched are immutable history except for their terminal status mark.
package queue
