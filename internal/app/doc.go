// Package app wires the Qualtrics API client and service layer into the
// commands exposed by the CLI. Each Execute function builds the components a
// command needs and runs it against the configured account.
package app
