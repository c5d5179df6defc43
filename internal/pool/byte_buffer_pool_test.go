package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferPool_GetPut(t *testing.T) {
	p := NewBufferPool(64, 0)

	buf := p.Get()
	require.NotNil(t, buf)
	assert.Equal(t, 0, buf.Len())
	assert.GreaterOrEqual(t, buf.Cap(), 64)

	buf.WriteString("vectors:\n")
	p.Put(buf)

	again := p.Get()
	assert.Equal(t, 0, again.Len(), "buffers come back empty")

	p.Put(nil)
}

func TestBufferPool_DropsOversized(t *testing.T) {
	p := NewBufferPool(16, 32)

	buf := p.Get()
	buf.Write(make([]byte, 1024))
	require.Greater(t, buf.Cap(), 32)

	// must not panic and must not hand the large buffer out again empty-but-huge
	p.Put(buf)
	next := p.Get()
	assert.LessOrEqual(t, next.Cap(), 32)
}

func TestFileBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := GetFileBuffer()
			defer PutFileBuffer(buf)

			buf.WriteByte(byte('a' + i))
			assert.Equal(t, 1, buf.Len())
		}()
	}
	wg.Wait()
}
