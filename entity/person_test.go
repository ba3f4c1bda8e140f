package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPersonAssignsIdentity(t *testing.T) {
	a := NewPerson("Alice", "friend")
	b := NewPerson("Alice", "friend")

	assert.NotEqual(t, a.ID, b.ID, "each person gets a fresh identifier")
	assert.False(t, a.SameIdentity(b))
}

func TestPersonIdentityVersusEquality(t *testing.T) {
	p := NewPerson("Bob")

	edited := p
	edited.Phone = "555-0100"

	// Same entity, different value.
	assert.True(t, p.SameIdentity(edited))
	assert.False(t, p.Equal(edited))

	// Same value, different entity.
	other := NewPerson("Bob")
	assert.False(t, p.SameIdentity(other))
	assert.False(t, p.Equal(other))

	assert.True(t, p.Equal(p.Clone()))
}

func TestPersonCloneIsolation(t *testing.T) {
	p := NewPerson("Carol", "work")
	clone := p.Clone()
	require.True(t, p.Equal(clone))

	clone.Tags[0] = "changed"
	assert.Equal(t, "work", p.Tags[0], "clone must not alias the tag slice")
}
