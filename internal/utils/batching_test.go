package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchBufferAddAndDrain(t *testing.T) {
	b := NewBatchBuffer[string]()
	assert.False(t, b.HasData())
	assert.Zero(t, b.Size())

	b.Add("one")
	b.Add("two")
	assert.True(t, b.HasData())
	assert.Equal(t, 2, b.Size())

	batch := b.GetAndClear()
	assert.Equal(t, []string{"one", "two"}, batch)
	assert.False(t, b.HasData())
	assert.Nil(t, b.GetAndClear())
}

func TestBatchBufferConcurrentAdds(t *testing.T) {
	b := NewBatchBuffer[int]()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Add(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, b.Size())
	assert.Len(t, b.GetAndClear(), 100)
}
