package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	t.Run("Launch and Wait", func(t *testing.T) {
		scope := NewScope(context.Background())
		done := make(chan struct{})

		ok := scope.Launch(func(ctx context.Context) { close(done) })
		scope.Wait()

		assert.True(t, ok)
		<-done
	})

	t.Run("Commit after Close is dropped", func(t *testing.T) {
		scope := NewScope(context.Background())
		started := make(chan struct{})
		committed := false

		scope.Launch(func(ctx context.Context) {
			close(started)
			<-ctx.Done()
			scope.Commit(func() { committed = true })
		})
		<-started
		scope.Close()

		assert.False(t, committed)
		assert.False(t, scope.Launch(func(context.Context) {}))
	})

	t.Run("Cancelled parent blocks commits", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		scope := NewScope(parent)
		cancel()

		assert.False(t, scope.Commit(func() {}))
	})

	t.Run("Commit may commit again", func(t *testing.T) {
		scope := NewScope(context.Background())
		var order []string

		ok := scope.Commit(func() {
			order = append(order, "outer")
			scope.Commit(func() { order = append(order, "inner") })
		})
		scope.Close()

		assert.True(t, ok)
		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}
