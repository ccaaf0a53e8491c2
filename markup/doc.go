// Package markup expands gradient and hex color directives into host escape sequences.
//
// All functions are pure and safe for concurrent use. Malformed directives never
// match and are left in the output as literal text.
package markup
