package oidc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
)

// verifySignature reports whether the compact-serialized token carries a
// valid HMAC signature over its header and payload segments, keyed by secret.
//
// The algorithm is read from the token's protected header and is restricted
// to the HMAC family; the provider signs ID tokens with the shared client
// secret. The signature comparison inside jws.Verify is constant-time.
//
// Malformed input of any kind (wrong segment count, undecodable base64 or
// JSON) is a verification failure, not a distinct error. Callers only need
// trust/no-trust.
func verifySignature(token string, secret []byte) bool {
	msg, err := jws.Parse([]byte(token))
	if err != nil {
		return false
	}

	sigs := msg.Signatures()
	if len(sigs) != 1 {
		return false
	}

	// Only the HMAC family is acceptable. Anything else, including "none",
	// must not verify against a shared secret.
	alg := sigs[0].ProtectedHeaders().Algorithm()
	switch alg {
	case jwa.HS256, jwa.HS384, jwa.HS512:
	default:
		return false
	}

	_, err = jws.Verify([]byte(token), jws.WithKey(alg, secret))
	return err == nil
}

// decodeClaims splits the compact token on its "." delimiter and decodes the
// payload segment as JSON. It performs no verification whatsoever; the result
// must not be trusted until the nonce and signature checks have passed.
func decodeClaims(token string) (map[string]any, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("token has %d segments, expected 3", len(segments))
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return nil, fmt.Errorf("failed to base64 decode token payload: %w", err)
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("error in json.Unmarshal call: %w", err)
	}

	return claims, nil
}
