// Package taskservice implements ownership-scoped task CRUD inside TaskHub.
//
// Layering:
// - domain: sentinel errors
// - application: create/list/update/delete use cases behind explicit ports
// - ports: stable boundaries for persistence, clock, and ids
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Every repository method takes the owning account id as a mandatory
//   argument; an unscoped task query cannot be expressed.
// - The acting identity comes from the HTTP layer's token gate; this module
//   trusts it and never re-verifies tokens.
package taskservice
