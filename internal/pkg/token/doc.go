// Package token mints, verifies, and selectively decodes compact signed
// tokens (JWS) that carry identity and authorization claims between services.
//
// It includes:
//   - A Codec for minting and verifying HMAC-signed tokens with per-call
//     secrets and a bounded validity window.
//   - A Claims map with checked, type-safe getters.
//   - Accessors that project single claims, a username, a role set, or a
//     filtered claim map out of a token, absorbing verification failures
//     into neutral results.
//
// Argument mistakes (empty token, empty secret, unknown algorithm, weak key)
// are returned to the caller. Failures on already-issued tokens (tampering,
// corruption, wrong key) are expected operational events: Verify reports them
// as ErrMalformedToken and every accessor converts them into its documented
// empty result.
package token
