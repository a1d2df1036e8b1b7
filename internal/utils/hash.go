// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// MD5Hex returns the hex-encoded MD5 digest of data.
//
// Used for Gravatar identifiers, which are defined as MD5 of the
// normalised email address. It must not be used for anything secret.
func MD5Hex(data string) string {
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// SHA1Hex returns the hex-encoded SHA-1 digest of data.
//
// Used for Cloudinary upload signatures, which are defined as SHA-1 of the
// sorted parameter string concatenated with the API secret.
func SHA1Hex(data string) string {
	sum := sha1.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}

// GravatarURL builds the identicon Gravatar URL for an email address.
// The address is trimmed and lower-cased before hashing.
//
// Example usage:
//
//	utils.GravatarURL(" Alice@Example.com ")
//	// https://www.gravatar.com/avatar/<md5("alice@example.com")>?d=identicon
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return "https://www.gravatar.com/avatar/" + MD5Hex(normalized) + "?d=identicon"
}
