// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides bearer-token issuance and verification.

# Access Tokens

Tokens are HS256 JWTs carrying the identity and role:

	token, err := auth.CreateAccessToken(secret, "bob", "user", time.Hour)

Claims: sub (identity), role (lower-cased), iat, exp, and a unique
jti. The secret comes from configuration and is shared by issuance and
verification.

# Verification

	claims, err := auth.ParseToken(secret, token)

Any failure (bad signature, wrong algorithm, expiry) maps to the
single sentinel ErrInvalidToken; callers never branch on the cause.

# Header Extraction

	token := auth.BearerToken(r)

reads the Authorization header and strips the Bearer prefix.
*/
package auth
