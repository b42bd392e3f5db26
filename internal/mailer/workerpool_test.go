package mailer

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_AddTask(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	executed := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			executed++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, 5, executed)
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_TaskErrorIsSwallowed(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	err := wp.AddTask(context.Background(), func() error {
		defer wg.Done()
		return assert.AnError
	})
	assert.NoError(t, err)
	wg.Wait()
}
