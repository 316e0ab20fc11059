// Package user provides the User aggregate: account identity, role, the
// shipper online flag and the password-reset one-time code.
package user
