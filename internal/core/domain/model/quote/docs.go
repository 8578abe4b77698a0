// Package quote holds the quotation aggregate and the values it is built from.
//
// The package includes:
//   - Quote: the aggregate root, a priced snapshot stored under a unique number
//   - Status: the lifecycle state machine (Draft, Active, Converted, Expired, Voided)
//   - Counter: the process-wide source of Q-DXB-NNNNN numbers
//   - Form, Item, PricedItem and Totals: the captured and derived values
//   - RawQuote: the loosely-typed stored shape that is migrated into a Quote
//
// Key business rules:
//   - a quote number is never issued twice within a process
//   - a Voided quote always carries a reason and never changes again
//   - priced fields are derived by the pricing engine, never edited
package quote
