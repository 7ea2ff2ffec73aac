package seq

import (
	"github.com/fp4php/functional-collection/collection/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strconv"
	"testing"
)

func isEven(i int) bool { return i%2 == 0 }

func TestArrayList(t *testing.T) {
	l := ArrayListOf(1, 2, 3, 4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, option.Some(1), l.Head())
	assert.Equal(t, option.Some(4), l.Last())
	assert.Equal(t, option.Some(3), l.At(2))
	assert.Equal(t, option.None[int](), l.At(4))
	assert.Equal(t, option.None[int](), l.At(-1))

	assert.Equal(t, []int{2, 4}, l.Filter(isEven).ToSlice())
	assert.Equal(t, []int{4, 3, 2, 1}, l.Reverse().ToSlice())
	assert.Equal(t, []int{1, 2}, l.Take(2).ToSlice())
	assert.Equal(t, []int{3, 4}, l.Drop(2).ToSlice())
	assert.Equal(t, []int{2, 3, 4}, l.Tail().ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, l.Prepended(0).Appended(5).ToSlice())
	assert.Equal(t, []int{1, 9, 3, 4}, l.Updated(1, 9).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Concat(LinkedListOf(5)).ToSlice())
	assert.Empty(t, l.Drop(10).ToSlice())

	// operations leave their receiver untouched
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
}

func TestZeroArrayList(t *testing.T) {
	var l ArrayList[string]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, option.None[string](), l.Head())
	assert.Empty(t, l.ToSlice())
	assert.Equal(t, []string{"a"}, l.Appended("a").ToSlice())
	assert.True(t, l.Take(3).IsEmpty())
	assert.True(t, l.Tail().IsEmpty())
}

func TestArrayListFunctions(t *testing.T) {
	l := ArrayListOf(1, 2, 3)
	assert.Equal(t, []string{"1", "2", "3"}, Map(l, strconv.Itoa).ToSlice())
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, FlatMap(l, func(i int) Seq[int] { return ArrayListOf(i, i) }).ToSlice())
	assert.Equal(t, 6, Fold[int](l, 0, func(acc, i int) int { return acc + i }))
	assert.True(t, Exists[int](l, isEven))
	assert.False(t, Every[int](l, isEven))
	assert.Equal(t, option.Some(2), Find[int](l, isEven))
	assert.Equal(t, option.None[int](), Find[int](ArrayListOf(1, 3), isEven))

	one, two := 1, 2
	pointers := FilterNotNull(ArrayListOf(&one, nil, &two, nil))
	assert.Equal(t, []*int{&one, &two}, pointers.ToSlice())

	var indices []int
	for i, v := range l.All() {
		indices = append(indices, i)
		assert.Equal(t, i+1, v)
	}
	assert.Equal(t, []int{0, 1, 2}, indices)

	var tapped []int
	l.Tap(func(i int) { tapped = append(tapped, i) })
	assert.Equal(t, l.ToSlice(), tapped)
}

func TestLinkedList(t *testing.T) {
	l := LinkedListOf(1, 2, 3, 4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, option.Some(1), l.Head())
	assert.Equal(t, option.Some(4), l.Last())
	assert.Equal(t, option.Some(2), l.At(1))
	assert.Equal(t, []int{2, 4}, l.Filter(isEven).ToSlice())
	assert.Equal(t, []int{4, 3, 2, 1}, l.Reverse().ToSlice())
	assert.Equal(t, []int{1, 2}, l.Take(2).ToSlice())
	assert.Equal(t, []int{3, 4}, l.Drop(2).ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Appended(5).ToSlice())
	assert.Equal(t, []string{"1", "2", "3", "4"}, MapLinked(l, strconv.Itoa).ToSlice())
	assert.Equal(t, l.ToSlice(), l.ToArrayList().ToSlice())

	// dropping shares cells
	assert.Same(t, l.first.tail.tail, l.Drop(2).first)

	var empty LinkedList[int]
	assert.Equal(t, option.None[int](), empty.Head())
	assert.Equal(t, option.None[int](), empty.Last())
	assert.True(t, empty.Tail().IsEmpty())

	var indices []int
	for i := range l.All() {
		indices = append(indices, i)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, indices)
}

func TestFrom(t *testing.T) {
	l := ArrayListOf(3, 2, 1)
	assert.Equal(t, []int{3, 2, 1}, LinkedListFrom(l.Values()).ToSlice())
	assert.Equal(t, []int{3, 2, 1}, ArrayListFrom(LinkedListOf(3, 2, 1).Values()).ToSlice())
}

func TestNonEmptyArrayList(t *testing.T) {
	l := NonEmptyArrayListOf(1, 2, 3)
	assert.Equal(t, 1, l.First())
	assert.False(t, l.IsEmpty())
	assert.Equal(t, []int{3, 2, 1}, l.Reverse().ToSlice())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.Prepended(0).Appended(4).ToSlice())
	assert.Equal(t, []int{2, 3}, l.Tail().ToSlice())
	assert.Equal(t, []string{"1", "2", "3"}, MapNonEmpty(l, strconv.Itoa).ToSlice())

	// filtering may empty the list, so the guarantee is dropped
	var filtered ArrayList[int] = l.Filter(func(i int) bool { return i > 5 })
	assert.True(t, filtered.IsEmpty())

	assert.True(t, NonEmptyArrayListFrom(ArrayListOf[int]()).IsNone())
	fromList, ok := NonEmptyArrayListFrom(ArrayListOf(7)).Get()
	require.True(t, ok)
	assert.Equal(t, 7, fromList.First())
	assert.Equal(t, []int{7}, fromList.ToArrayList().ToSlice())
}

func TestNonEmptyLinkedList(t *testing.T) {
	l := NonEmptyLinkedListOf("a", "b")
	assert.Equal(t, "a", l.First())
	assert.Equal(t, option.Some("b"), l.Last())
	assert.Equal(t, []string{"z", "a", "b", "c"}, l.Prepended("z").Appended("c").ToSlice())
	assert.Equal(t, []string{"b", "a"}, l.Reverse().ToSlice())
	assert.Equal(t, []string{"b"}, l.Tail().ToSlice())

	var filtered LinkedList[string] = l.Filter(func(s string) bool { return s == "b" })
	assert.Equal(t, []string{"b"}, filtered.ToSlice())

	assert.True(t, NonEmptyLinkedListFrom(LinkedList[string]{}).IsNone())
	assert.True(t, NonEmptyLinkedListFrom(l.ToLinkedList()).IsSome())
}
