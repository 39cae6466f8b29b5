package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyUniqueness(t *testing.T) {
	a := Named[string]("same")
	b := Named[string]("same")

	assert.NotEqual(t, a.ID(), b.ID(), "independently constructed keys must have distinct identities")

	store := NewAttributes()
	Set(store, a, "value")
	assert.True(t, store.Has(a))
	assert.False(t, store.Has(b), "a key with the same name must not alias another key")
}

func TestKeyCopiesShareIdentity(t *testing.T) {
	k := Named[int]("count")
	copied := k

	store := NewAttributes()
	Set(store, k, 7)

	v, ok := Lookup(store, copied)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestKeyImmutability(t *testing.T) {
	k := Named[string]("host")

	id, name := k.ID(), k.Name()

	store := NewAttributes()
	Set(store, k, "a")
	Set(store, k, "b")
	store.Delete(k)

	assert.Equal(t, id, k.ID())
	assert.Equal(t, name, k.Name())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, `Key("host")`, Named[string]("host").String())
	assert.Equal(t, "Key()", New[string]().String())
}

func TestOfDiscardsWitness(t *testing.T) {
	invoked := false
	witness := func() { invoked = true }

	k := Of(witness)
	named := NamedOf("fn", witness)

	assert.False(t, invoked, "witness must never be invoked")
	assert.Empty(t, k.Name())
	assert.Equal(t, "fn", named.Name())
	assert.NotEqual(t, k.ID(), named.ID())
}

func TestNewKey(t *testing.T) {
	anon, err := NewKey[int]()
	require.NoError(t, err)
	assert.Empty(t, anon.Name())

	named, err := NewKey[int]("age")
	require.NoError(t, err)
	assert.Equal(t, "age", named.Name())

	// Witness plus name, either order.
	witness := 0
	k1, err := NewKey[int]("age", witness)
	require.NoError(t, err)
	assert.Equal(t, "age", k1.Name())

	k2, err := NewKey[int](witness, "age")
	require.NoError(t, err)
	assert.Equal(t, "age", k2.Name())

	assert.NotEqual(t, k1.ID(), k2.ID())
}

func TestNewKeyInvalidArguments(t *testing.T) {
	_, err := NewKey[string]("a", "b")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)

	_, err = NewKey[string]("a", 1, 2)
	assert.ErrorIs(t, err, ErrInvalidArguments)
}
