// Package sale holds the token sale configuration produced by a successful
// form submission together with informational values derived from it.
package sale
