// Package services holds the stateless domain logic of the quotation builder.
//
// The package includes:
//   - the pricing engine: volume, volumetric and billed weight, line and quote totals
//   - form and item validation returning ordered Violations
//   - Migrator: normalisation of stored RawQuote records into canonical quotes
//   - BuildDocument: the printable, rounded view of a quote
//
// None of these functions touch storage; they are safe for concurrent use.
package services
