package scan

import (
	"container/heap"
	"strings"
	"sync"

	"github.com/minhdn/jobsift"
	"github.com/minhdn/jobsift/bloom"
)

// Compile-time interface verification.
var _ jobsift.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory candidate queue with priority ordering and
// Bloom filter deduplication. It is safe for concurrent use by multiple
// goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *candidateHeap
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &candidateHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a candidate to the frontier. Returns false if the URL has
// already been seen. Fragments are stripped before deduplication, so URLs
// differing only by fragment are considered duplicates.
func (f *Frontier) Push(link jobsift.CandidateLink) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := stripFragment(link.URL)
	if f.seen.TestAndAdd(url) {
		return false
	}

	link.URL = url
	heap.Push(f.queue, link)
	return true
}

// Pop returns the next candidate by priority. The bool result is false if
// the frontier is empty.
func (f *Frontier) Pop() (jobsift.CandidateLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return jobsift.CandidateLink{}, false
	}
	link, _ := heap.Pop(f.queue).(jobsift.CandidateLink)
	return link, true
}

// Len returns the number of candidates in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the URL has been processed or queued. Fragments are
// stripped before checking.
func (f *Frontier) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// candidateHeap implements heap.Interface for CandidateLink. Higher
// priority candidates are popped first.
type candidateHeap []jobsift.CandidateLink

func (h candidateHeap) Len() int { return len(h) }

// Less returns true if i has higher priority than j (max-heap).
func (h candidateHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) {
	link, _ := x.(jobsift.CandidateLink)
	*h = append(*h, link)
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
