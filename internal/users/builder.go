package users

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/iac-studio/users/internal/models"
)

// BuildErrorKind identifies which validation rule a candidate user failed.
type BuildErrorKind string

const (
	InvalidName     BuildErrorKind = "invalid_name"
	InvalidPassword BuildErrorKind = "invalid_password"
	InvalidEmail    BuildErrorKind = "invalid_email"

	// EmptyEmail is the one waivable outcome: the candidate is otherwise
	// valid and BuildError.User carries the usable record.
	EmptyEmail BuildErrorKind = "empty_email"
)

// BuildError reports a validation failure. For EmptyEmail, User holds the
// constructed record so the caller may choose to proceed without an email
// address; for every other kind User is nil.
type BuildError struct {
	Kind BuildErrorKind
	User *models.User
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("user builder: %s", e.Kind)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Builder assembles and validates a candidate user record. It validates
// exactly what it is given; default substitution for absent fields is the
// caller's concern.
type Builder struct {
	name     string
	email    string
	password string
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

func (b *Builder) Email(email string) *Builder {
	b.email = email
	return b
}

func (b *Builder) Password(password string) *Builder {
	b.password = password
	return b
}

// Build validates the candidate and returns the record with the password
// hashed. Validation order: name, password, then email. An empty email is
// not a hard failure — the record is returned alongside the EmptyEmail kind
// and the caller decides whether to accept it.
func (b *Builder) Build() (*models.User, *BuildError) {
	name := strings.TrimSpace(b.name)
	if name == "" {
		return nil, &BuildError{Kind: InvalidName}
	}
	if b.password == "" {
		return nil, &BuildError{Kind: InvalidPassword}
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes.
		return nil, &BuildError{Kind: InvalidPassword}
	}

	u := &models.User{
		Name:         name,
		Email:        b.email,
		PasswordHash: string(ph),
	}

	if b.email == "" {
		return nil, &BuildError{Kind: EmptyEmail, User: u}
	}
	if err := validate.Var(b.email, "email"); err != nil {
		return nil, &BuildError{Kind: InvalidEmail}
	}

	return u, nil
}
