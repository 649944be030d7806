// Package middleware provides request middleware for the HTTP boundary:
// host JWT validation and player token resolution.
package middleware
