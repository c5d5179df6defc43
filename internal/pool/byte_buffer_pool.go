// Package pool provides reusable byte buffers for encoding golden files.
package pool

import (
	"bytes"
	"sync"
)

const (
	// FileBufferDefaultSize is the initial capacity of a pooled buffer.
	FileBufferDefaultSize = 1024 * 16 // 16KiB
	// FileBufferMaxThreshold is the largest buffer kept for reuse.
	FileBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// BufferPool is a pool of bytes.Buffer values.
//
// Buffers that grew beyond maxThreshold are dropped on Put instead of being
// retained.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool of buffers with the given initial capacity.
// A maxThreshold of 0 keeps buffers of any size.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, defaultSize))
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *BufferPool) Get() *bytes.Buffer {
	buf, _ := p.pool.Get().(*bytes.Buffer)
	return buf
}

// Put returns buf to the pool. The caller must not use buf afterwards.
func (p *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	if p.maxThreshold > 0 && buf.Cap() > p.maxThreshold {
		return
	}

	buf.Reset()
	p.pool.Put(buf)
}

var fileDefaultPool = NewBufferPool(FileBufferDefaultSize, FileBufferMaxThreshold)

// GetFileBuffer retrieves a buffer from the default file pool.
func GetFileBuffer() *bytes.Buffer {
	return fileDefaultPool.Get()
}

// PutFileBuffer returns a buffer to the default file pool.
func PutFileBuffer(buf *bytes.Buffer) {
	fileDefaultPool.Put(buf)
}
