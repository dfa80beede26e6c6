// Package credentialservice implements account registration, login, and
// identity token issuance inside TaskHub.
//
// Layering:
// - domain: sentinel errors and the token issuer/verifier
// - application: register/authenticate use cases behind explicit ports
// - ports: stable boundaries for persistence, hashing, clock, and ids
// - adapters: concrete HTTP, memory, postgres, and bcrypt implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the identity-access context.
// - The token verifier is the only piece shared outward; the HTTP layer
//   uses it to gate task routes without re-entering this module.
package credentialservice
