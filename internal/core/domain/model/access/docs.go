// Package access describes who is calling: the authenticated Identity and its Role.
package access
