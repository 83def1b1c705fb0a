// Copyright 2026 The Latte Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latte

import (
	"crypto/md5"
	"crypto/sha1"
	"encoding/hex"
)

// Md5 returns the MD5 checksum of s as a lower case hexadecimal encoded
// string. s is hashed as is, even if it is not valid UTF-8.
func Md5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Sha1 returns the SHA1 checksum of s as a lower case hexadecimal encoded
// string. s is hashed as is, even if it is not valid UTF-8.
func Sha1(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
