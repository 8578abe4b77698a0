// Package kernel provides the small value primitives shared by the quote model:
// UUID record identifiers and the decimal rounding used when amounts are shown
// to people (two places, AED).
package kernel
