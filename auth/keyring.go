// Package auth keeps resolver header secrets in the system keyring.
//
// A resolver param whose value is exactly Ref is sent with the secret stored
// for that resolver and header name instead.
package auth

import (
	"strings"

	"github.com/appecho/alpha/constant"
	"github.com/zalando/go-keyring"
)

// Ref marks a param value that lives in the keyring.
const Ref = "keyring:"

func account(resolverID, header string) string {
	return resolverID + "/" + strings.ToLower(strings.TrimSpace(header))
}

// IsRef reports whether a param value refers to a stored secret.
func IsRef(value string) bool {
	return strings.TrimSpace(value) == Ref
}

// SetSecret stores the value of a header for one resolver.
func SetSecret(resolverID, header, value string) error {
	return keyring.Set(constant.Alpha, account(resolverID, header), value)
}

// Secret returns the stored value of a header for one resolver.
func Secret(resolverID, header string) (string, error) {
	return keyring.Get(constant.Alpha, account(resolverID, header))
}

// DeleteSecret forgets a stored header value.
func DeleteSecret(resolverID, header string) error {
	return keyring.Delete(constant.Alpha, account(resolverID, header))
}
