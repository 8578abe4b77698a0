package access

import (
	"context"
	"strings"

	"quotation/internal/pkg/errs"
)

// Role decides how much of the quote store a caller can see.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a role name to a Role. Anything that is not "admin" is a user.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the authenticated caller.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// NewIdentity builds an Identity; the user id is mandatory.
func NewIdentity(userID, email string, role Role) (Identity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Identity{}, errs.NewValueIsRequiredError("userID")
	}
	if role != RoleAdmin {
		role = RoleUser
	}
	return Identity{UserID: userID, Email: strings.TrimSpace(email), Role: role}, nil
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Label is the human readable owner label stored with quotes.
func (i Identity) Label() string {
	if i.Email != "" {
		return i.Email
	}
	return i.UserID
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok && id.UserID != ""
}
