package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Person is an identity-bearing contact record. The ID is assigned at
// creation and never changes for the lifetime of the logical entity; an
// edited version of a person is a new value sharing the same ID.
//
// Two Person values are "the same entity" iff their IDs match (SameIdentity),
// regardless of field values. Full structural comparison (Equal) is a
// separate operator used by history comparisons and must not be conflated
// with identity.
type Person struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Address string    `json:"address,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
}

// NewPerson creates a person with a freshly assigned identifier.
func NewPerson(name string, tags ...string) Person {
	return Person{ID: uuid.New(), Name: name, Tags: tags}
}

// SameIdentity reports whether p and other refer to the same logical entity.
func (p Person) SameIdentity(other Person) bool { return p.ID == other.ID }

// Equal reports full structural equality, identity included.
func (p Person) Equal(other Person) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Phone == other.Phone &&
		p.Email == other.Email &&
		p.Address == other.Address &&
		slices.Equal(p.Tags, other.Tags)
}

// Clone returns a deep copy safe for independent mutation.
func (p Person) Clone() Person {
	clone := p
	clone.Tags = slices.Clone(p.Tags)
	return clone
}
