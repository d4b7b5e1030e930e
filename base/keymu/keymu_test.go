package keymu

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSerializesSameKey() {
	m := New()
	events := []int{}
	var wg sync.WaitGroup

	m.Lock("a")
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.Lock("a")
		events = append(events, 2)
		m.Unlock("a")
	}()

	time.Sleep(20 * time.Millisecond)
	events = append(events, 1)
	m.Unlock("a")
	wg.Wait()

	ts.Equal([]int{1, 2}, events)
}

func (ts *testsuite) TestIndependentKeys() {
	m := New()
	m.Lock("a")
	done := make(chan struct{})
	go func() {
		m.Lock("b")
		m.Unlock("b")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		ts.FailNow("lock on independent key blocked")
	}
	m.Unlock("a")
}

func (ts *testsuite) TestEntryReclaimed() {
	m := New()
	m.Lock("a")
	m.Unlock("a")
	ts.Empty(m.entries)
}

func (ts *testsuite) TestManyGoroutines() {
	m := New()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock("counter")
			counter++
			m.Unlock("counter")
		}()
	}
	wg.Wait()
	ts.Equal(100, counter)
}
