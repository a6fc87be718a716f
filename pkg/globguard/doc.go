// Package globguard adds guard checks for slash-separated paths matched
// against doublestar glob patterns ("**" crosses directory boundaries).
//
//	path, err := globguard.NotMatch(guard.Against, path, "path", "uploads/**/*.{png,jpg}")
//
// Invalid patterns are reported as guard.ErrInvalidUsage.
package globguard
