// Package platform wraps OS-specific filesystem concerns: the default
// downloads directory, directory creation, and revealing a folder in the
// system file manager.
package platform
