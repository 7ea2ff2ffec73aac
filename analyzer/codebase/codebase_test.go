package codebase

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWithCollections(t *testing.T) {
	cb := WithCollections()

	class, ok := cb.Class("arraylist")
	require.True(t, ok)
	assert.Equal(t, "ArrayList", class.Name)
	assert.Equal(t, []string{"TV"}, class.Templates)

	assert.True(t, cb.IsSubclassOf("NonEmptyHashMap", "nonemptymap"))
	assert.True(t, cb.IsSubclassOf("ArrayList", "ArrayList"))
	assert.False(t, cb.IsSubclassOf("NonEmptyArrayList", "Seq"))
	assert.False(t, cb.IsSubclassOf("Unknown", "Seq"))

	filter, declaring, ok := cb.FindMethod("NonEmptyArrayList", "FILTER")
	require.True(t, ok)
	assert.Equal(t, "NonEmptyArrayList", declaring.Name)
	assert.Equal(t, "ArrayList<TV>", filter.Return.String())
	assert.True(t, filter.MutationFree)

	tap, _, ok := cb.FindMethod("NonEmptyArrayList", "tap")
	require.True(t, ok)
	assert.Equal(t, "NonEmptyArrayList<TV>", tap.Return.String())

	_, _, ok = cb.FindMethod("ArrayList", "undefined")
	assert.False(t, ok)
}

func TestCodebase(t *testing.T) {
	cb := New()
	cb.AddClass(&ClassLike{Name: "Animal"})
	cb.AddClass(&ClassLike{Name: "Named", Templates: []string{"T"}})
	cb.AddClass(&ClassLike{Name: "Dog", Parent: "Animal", Interfaces: []string{"Named"}})
	cb.AddClass(&ClassLike{Name: "Puppy", Parent: "Dog"})

	assert.ElementsMatch(t, []string{"animal", "dog", "named", "puppy"}, cb.Ancestors("Puppy").Slice())
	assert.True(t, cb.IsSubclassOf("Puppy", "named"))
	assert.False(t, cb.IsSubclassOf("Animal", "Dog"))

	require.NoError(t, cb.AddMethod("Named", "name", "T|null", true))
	require.NoError(t, cb.AddMethod("Animal", "speak", "string", false))

	name, declaring, ok := cb.FindMethod("Puppy", "name")
	require.True(t, ok)
	assert.Equal(t, "Named", declaring.Name)
	assert.Equal(t, "T|null", name.Return.String())

	speak, declaring, ok := cb.FindMethod("puppy", "Speak")
	require.True(t, ok)
	assert.Equal(t, "Animal", declaring.Name)
	assert.False(t, speak.MutationFree)

	assert.ErrorContains(t, cb.AddMethod("Cat", "speak", "string", false), "unknown class Cat")
	assert.ErrorContains(t, cb.AddMethod("Dog", "bark", "list{", false), "bad return type for Dog::bark")
}
