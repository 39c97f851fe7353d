package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (c *Cache) put(key string, value interface{}, ttl ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value, ttl...)
}

func TestPutGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.put("a", 1)
	v, ok := c.GetValue("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.GetValue("b")
	assert.False(t, ok)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.put("short", "x", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.GetValue("short")
	assert.False(t, ok)

	c.removeExpired()
	assert.Equal(t, 0, c.Size())
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	c.put("storefront:products:q=", 1)
	c.put("storefront:products:q=serum", 2)
	c.put("other", 3)

	before := c.Generation()
	c.DeleteByPrefix("storefront:")
	assert.Equal(t, 1, c.Size())
	assert.Equal(t, before+1, c.Generation())
	_, ok := c.GetValue("other")
	assert.True(t, ok)
}

func TestMarshal(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	data, err := c.Marshal("k", map[string]string{"nombre": "Serum"}, c.Generation())
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Serum"}`, string(data))

	cached, ok := c.GetBytes("k")
	require.True(t, ok)
	assert.Equal(t, data, cached)

	c.put("not-bytes", 42)
	_, ok = c.GetBytes("not-bytes")
	assert.False(t, ok)
}

func TestMarshalSkipsStoreAfterInvalidation(t *testing.T) {
	c := New(time.Minute)
	defer c.Stop()

	gen := c.Generation()
	c.DeleteByPrefix("storefront:")

	data, err := c.Marshal("storefront:/v1/nav", []string{"Inicio"}, gen)
	require.NoError(t, err)
	assert.JSONEq(t, `["Inicio"]`, string(data))

	_, ok := c.GetBytes("storefront:/v1/nav")
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestStopIsIdempotent(t *testing.T) {
	c := New(time.Second)
	c.Stop()
	c.Stop()
}
