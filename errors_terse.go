//go:build chompterse

package chomp

// verboseErrors is off in the terse build: a ParseError carries exactly one
// frame and push is eliminated at compile time.
const verboseErrors = false
