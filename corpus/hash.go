/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package corpus builds the cross-document inverse indices spec.md's
// CorpusIndex component describes: text and image hashing, position
// buckets, and universal/repeated/unique classification.
package corpus

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText returns the lowercase hex SHA-256 digest of text's UTF-8 bytes.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// HashImage returns the lowercase hex SHA-256 digest of raw image bytes. No
// content-sniffing is performed; the digest is the image's identity.
func HashImage(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
