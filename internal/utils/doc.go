// Package utils provides small helper functions shared across the application,
// such as filename sanitization, type conversion, and content type validation.
package utils
