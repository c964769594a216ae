package saver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/todo"
)

// recorder is a WriteFunc that can hold writes until released.
type recorder struct {
	mu      sync.Mutex
	writes  []todo.List
	started chan struct{}
	release chan struct{}
	err     error
}

func newRecorder(blocking bool) *recorder {
	r := &recorder{started: make(chan struct{}, 16)}
	if blocking {
		r.release = make(chan struct{})
	}
	return r
}

func (r *recorder) write(ctx context.Context, l todo.List) error {
	r.started <- struct{}{}
	if r.release != nil {
		<-r.release
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, l)
	return r.err
}

func (r *recorder) got() []todo.List {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]todo.List(nil), r.writes...)
}

func list(texts ...string) todo.List {
	l := todo.List{}
	for _, t := range texts {
		l = todo.Add(l, t)
	}
	return l
}

func TestSubmitWrites(t *testing.T) {
	r := newRecorder(false)
	s := New(r.write)

	want := list("a")
	s.Submit(want)
	require.NoError(t, s.Close(context.Background()))

	writes := r.got()
	require.Len(t, writes, 1)
	assert.Equal(t, want, writes[0])
}

func TestPendingWritesCoalesce(t *testing.T) {
	r := newRecorder(true)
	s := New(r.write)

	s.Submit(list("first"))
	<-r.started // first write is now in flight and blocked

	s.Submit(list("first", "second"))
	s.Submit(list("first", "second", "third"))
	newest := list("first", "second", "third", "fourth")
	s.Submit(newest)

	close(r.release)
	require.NoError(t, s.Flush(context.Background()))

	writes := r.got()
	require.Len(t, writes, 2)
	assert.Len(t, writes[0], 1)
	assert.Equal(t, newest, writes[1])
	require.NoError(t, s.Close(context.Background()))
}

func TestLastWriteIsNewest(t *testing.T) {
	r := newRecorder(false)
	s := New(r.write)

	var last todo.List
	l := todo.List{}
	for i := 0; i < 50; i++ {
		l = todo.Add(l, "item")
		last = l
		s.Submit(l)
	}
	require.NoError(t, s.Flush(context.Background()))

	writes := r.got()
	require.NotEmpty(t, writes)
	assert.Equal(t, last, writes[len(writes)-1])
	for i := 1; i < len(writes); i++ {
		assert.Greater(t, len(writes[i]), len(writes[i-1]), "writes out of order")
	}
	require.NoError(t, s.Close(context.Background()))
}

func TestFailuresAreCountedAndReported(t *testing.T) {
	r := newRecorder(false)
	r.err = errors.New("read-only fs")
	s := New(r.write)

	s.Submit(list("a"))
	err := s.Flush(context.Background())
	assert.ErrorIs(t, err, r.err)
	assert.Equal(t, 1, s.Failures())

	// next mutation is the retry
	r.mu.Lock()
	r.err = nil
	r.mu.Unlock()
	s.Submit(list("a", "b"))
	assert.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 1, s.Failures())
	require.NoError(t, s.Close(context.Background()))
}

func TestFlushHonorsContext(t *testing.T) {
	r := newRecorder(true)
	s := New(r.write)
	s.Submit(list("stuck"))
	<-r.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, s.Flush(ctx), context.DeadlineExceeded)

	close(r.release)
	require.NoError(t, s.Close(context.Background()))
}

func TestSubmitAfterCloseIsDropped(t *testing.T) {
	r := newRecorder(false)
	s := New(r.write)
	require.NoError(t, s.Close(context.Background()))

	s.Submit(list("late"))
	assert.NoError(t, s.Close(context.Background()))
	assert.Empty(t, r.got())
}

func TestFlushWithNothingSubmitted(t *testing.T) {
	s := New(newRecorder(false).write)
	assert.NoError(t, s.Flush(context.Background()))
	require.NoError(t, s.Close(context.Background()))
}
