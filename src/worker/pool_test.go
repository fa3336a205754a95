package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"byoa-assistant/src/logutil"
)

func TestSubmitRunsJob(t *testing.T) {
	p := New(2, 2, logutil.Discard())
	defer p.Close()

	done := make(chan struct{})
	if !p.Submit(context.Background(), func(ctx context.Context) { close(done) }) {
		t.Fatalf("Submit returned false on an empty pool")
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestSubmitBackPressure(t *testing.T) {
	p := New(1, 1, logutil.Discard())
	release := make(chan struct{})
	started := make(chan struct{})

	p.Submit(context.Background(), func(ctx context.Context) {
		close(started)
		<-release
	})
	<-started
	if !p.Submit(context.Background(), func(ctx context.Context) {}) {
		t.Fatalf("expected queued submit to succeed")
	}
	if p.Submit(context.Background(), func(ctx context.Context) {}) {
		t.Errorf("expected submit to be dropped when queue is full")
	}
	close(release)
	p.Close()
}

func TestCloseDrainsAndRejects(t *testing.T) {
	p := New(2, 4, logutil.Discard())
	var n atomic.Int32
	for i := 0; i < 4; i++ {
		p.Submit(context.Background(), func(ctx context.Context) { n.Add(1) })
	}
	p.Close()
	p.Close()

	if got := n.Load(); got != 4 {
		t.Errorf("ran %d jobs, expected 4", got)
	}
	if p.Submit(context.Background(), func(ctx context.Context) {}) {
		t.Errorf("Submit after Close returned true")
	}
}

func TestPanickingJobDoesNotKillWorker(t *testing.T) {
	p := New(1, 2, logutil.Discard())
	defer p.Close()

	p.Submit(context.Background(), func(ctx context.Context) { panic("boom") })
	done := make(chan struct{})
	p.Submit(context.Background(), func(ctx context.Context) { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker died after panic")
	}
}
