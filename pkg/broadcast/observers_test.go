package broadcast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/broadcast"
)

func TestObservers(t *testing.T) {
	t.Run("notifies in registration order", func(t *testing.T) {
		var obs broadcast.Observers[int]
		var got []int
		obs.Add(func(v int) { got = append(got, v*10) })
		obs.Add(func(v int) { got = append(got, v*100) })

		obs.Notify(1)
		obs.Notify(2)
		assert.Equal(t, []int{10, 100, 20, 200}, got)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		var obs broadcast.Observers[string]
		calls := 0
		remove := obs.Add(func(string) { calls++ })
		obs.Add(func(string) {})

		remove()
		remove()
		obs.Notify("x")

		assert.Equal(t, 0, calls)
		assert.Equal(t, 1, obs.Len())
	})

	t.Run("handlers may unsubscribe during notify", func(t *testing.T) {
		var obs broadcast.Observers[string]
		calls := 0
		var remove func()
		remove = obs.Add(func(string) {
			calls++
			remove()
		})

		obs.Notify("a")
		obs.Notify("b")
		assert.Equal(t, 1, calls)
	})

	t.Run("nil handler ignored", func(t *testing.T) {
		var obs broadcast.Observers[string]
		remove := obs.Add(nil)
		remove()
		assert.Equal(t, 0, obs.Len())
	})
}
