// Package domain defines the core user entities for the identity store.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	authDomain "github.com/munchly/munchly/internal/auth/domain"
)

// User is an account in the identity store. The cart lives embedded on the
// user document as a map of catalog item id to quantity, so cart mutations
// are single-document updates.
type User struct {
	ID        bson.ObjectID   `bson:"_id,omitempty"`
	Name      string          `bson:"name"`
	Email     string          `bson:"email"`
	Password  string          `bson:"password"` // Argon2id digest, never plaintext
	Role      authDomain.Role `bson:"role"`
	CartData  map[string]int  `bson:"cart_data"`
	CreatedAt time.Time       `bson:"created_at"`
	UpdatedAt time.Time       `bson:"updated_at"`
}

// Identity projects the user onto the request-scoped identity used by the
// authentication middleware.
func (u *User) Identity() *authDomain.Identity {
	return &authDomain.Identity{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// RegisterInput contains the parameters for creating a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateInput contains the parameters for updating an account.
// An empty Password leaves the stored digest untouched.
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// LoginOutput is the result of a successful credential exchange.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	Role        authDomain.Role
}
