package student

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/maoni/core"
)

type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // identity key, unique
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (s *Student) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.PasswordHash = hash
	return nil
}

// CheckPassword compares pwd against the stored hash. bcrypt's comparison
// runs in constant time relative to the stored hash.
func (s *Student) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(pwd))
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

func (ns *NewStudent) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	return core.Validate.Struct(ns)
}

// GetFilter selects a single Student. ID wins when both are set.
type GetFilter struct {
	ID    string
	Email string
}
