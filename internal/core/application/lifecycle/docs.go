// Package lifecycle keeps the in-memory view of a caller's quotes in step
// with storage. It issues quote numbers, persists priced snapshots and
// enforces the status lifecycle (Draft, Active, Converted, Expired, Voided).
//
// A Store belongs to one identity; Sessions hands out one Store per caller
// while sharing a single quote.Counter between them.
package lifecycle
