package admin

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Administrator accounts are provisioned via the admin CLI; there is no
// self-registration path.
type Administrator struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"` // identity key, unique
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (a *Administrator) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// CheckPassword compares pwd against the stored hash. bcrypt's comparison
// runs in constant time relative to the stored hash.
func (a *Administrator) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

// GetFilter selects a single Administrator. ID wins when both are set.
type GetFilter struct {
	ID       string
	Username string
}
