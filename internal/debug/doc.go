// Package debug provides optional file-based debug logging.
//
// When the TUICORE_DEBUG environment variable is set to a file path, debug
// records are appended to that file. Otherwise, logging is a no-op.
package debug
