//go:build !chompterse

package chomp

// verboseErrors selects the diagnostic error mode: combinators append a
// frame to a ParseError as it propagates outward. Build with -tags
// chompterse to keep only the innermost discriminant.
const verboseErrors = true
