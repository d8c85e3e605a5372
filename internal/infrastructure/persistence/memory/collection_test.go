package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Name string
	Tags []string
}

func newItemCollection() *Collection[item] {
	return NewCollection(
		func(i *item) string { return i.ID },
		func(i item) item {
			i.Tags = append([]string(nil), i.Tags...)
			return i
		},
	)
}

func TestCollection_InsertionOrder(t *testing.T) {
	c := newItemCollection()
	for _, id := range []string{"c", "a", "b"} {
		c.Insert(item{ID: id})
	}

	var ids []string
	for _, i := range c.All() {
		ids = append(ids, i.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, 3, c.Len())
}

func TestCollection_EmptyAllIsNotNil(t *testing.T) {
	c := newItemCollection()
	all := c.All()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestCollection_ReturnsCopies(t *testing.T) {
	c := newItemCollection()
	c.Insert(item{ID: "a", Name: "one", Tags: []string{"x"}})

	got, ok := c.Get("a")
	require.True(t, ok)
	got.Name = "changed"
	got.Tags[0] = "changed"

	again, _ := c.Get("a")
	assert.Equal(t, "one", again.Name)
	assert.Equal(t, []string{"x"}, again.Tags)

	all := c.All()
	all[0].Tags[0] = "changed"
	again, _ = c.Get("a")
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestCollection_Update(t *testing.T) {
	c := newItemCollection()
	c.Insert(item{ID: "a", Name: "one"})

	t.Run("missing id", func(t *testing.T) {
		_, ok, err := c.Update("missing", func(i *item) error {
			t.Fatal("mutate must not run")
			return nil
		})
		assert.False(t, ok)
		assert.NoError(t, err)
	})

	t.Run("failed mutation leaves record unchanged", func(t *testing.T) {
		_, ok, err := c.Update("a", func(i *item) error {
			i.Name = "half-applied"
			return errors.New("rejected")
		})
		assert.True(t, ok)
		assert.Error(t, err)

		got, _ := c.Get("a")
		assert.Equal(t, "one", got.Name)
	})

	t.Run("success", func(t *testing.T) {
		got, ok, err := c.Update("a", func(i *item) error {
			i.Name = "two"
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "two", got.Name)
	})
}

func TestCollection_Delete(t *testing.T) {
	c := newItemCollection()
	c.Insert(item{ID: "a"})
	c.Insert(item{ID: "b"})
	c.Insert(item{ID: "c"})

	assert.True(t, c.Delete("b"))
	assert.False(t, c.Delete("b"))

	_, ok := c.Get("b")
	assert.False(t, ok)
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[1].ID)
}

func TestCollection_FindFirstMatch(t *testing.T) {
	c := newItemCollection()
	c.Insert(item{ID: "1", Name: "dup"})
	c.Insert(item{ID: "2", Name: "dup"})

	got, ok := c.Find(func(i *item) bool { return i.Name == "dup" })
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)

	_, ok = c.Find(func(i *item) bool { return i.Name == "none" })
	assert.False(t, ok)
}

func TestCollection_ConcurrentUpdates(t *testing.T) {
	c := NewCollection(func(i *item) string { return i.ID }, nil)
	c.Insert(item{ID: "counter"})

	var wg sync.WaitGroup
	for n := 0; n < 50; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = c.Update("counter", func(i *item) error {
				i.Tags = append(i.Tags, fmt.Sprint(len(i.Tags)))
				return nil
			})
			_ = c.All()
		}()
	}
	wg.Wait()

	got, _ := c.Get("counter")
	assert.Len(t, got.Tags, 50)
}
