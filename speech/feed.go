// Package speech forwards lines of dialog from an external source to the
// tick thread, where they drive the character's mouth.
package speech

import (
	"bufio"
	"io"
	"log"
	"strings"
	"sync"
)

const backlog = 32

// Feed scans lines from a reader on its own goroutine. Lines are handed over
// through a buffered channel and consumed with Drain.
type Feed struct {
	lines   chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewFeed(r io.Reader) *Feed {
	f := &Feed{
		lines:   make(chan string, backlog),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go f.run(r)
	return f
}

func (f *Feed) run(r io.Reader) {
	defer close(f.done)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		select {
		case f.lines <- line:
		case <-f.closeCh:
			return
		}
	}
	if err := sc.Err(); err != nil {
		log.Printf("speech: read: %v", err)
	}
}

// Drain passes every pending line to fn without blocking. A closed feed drops
// whatever is still buffered.
func (f *Feed) Drain(fn func(line string)) int {
	n := 0
	select {
	case <-f.closeCh:
		return 0
	default:
	}
	for {
		select {
		case line := <-f.lines:
			fn(line)
			n++
		default:
			return n
		}
	}
}

// Done is closed once the scanning goroutine exits.
func (f *Feed) Done() <-chan struct{} { return f.done }

// Close stops forwarding: buffered lines are dropped and Drain delivers
// nothing more. A goroutine blocked reading r stays blocked until r returns.
func (f *Feed) Close() {
	f.once.Do(func() { close(f.closeCh) })
}
