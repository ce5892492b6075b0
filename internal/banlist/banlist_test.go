package banlist

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_AddAndContains(t *testing.T) {
	r := New()

	assert.False(t, r.Contains("203.0.113.7"))

	r.Add("203.0.113.7")

	assert.True(t, r.Contains("203.0.113.7"))
	assert.False(t, r.Contains("203.0.113.8"))
}

func TestRegistry_AddIdempotent(t *testing.T) {
	r := New()

	r.Add("203.0.113.7")
	r.Add("203.0.113.7")

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_IgnoresEmptyIP(t *testing.T) {
	r := New()

	r.Add("")

	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Contains(""))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			r.Add("203.0.113.7")
		}()

		go func() {
			defer wg.Done()
			r.Contains("203.0.113.7")
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, r.Len())
}
