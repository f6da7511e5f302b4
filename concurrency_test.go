package format

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A configured Format is immutable, shareable configuration: concurrent
// reads and writes against the same instance must not interfere.
func TestFormat_ConcurrentReadWrite(t *testing.T) {
	f := New(Book{},
		Value("title"),
		Value("pages").Number().Min(1),
		Value("active").Boolean(),
	)

	const goroutines = 16
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				book, err := ReadAs[Book](f, map[string]any{"title": "c", "pages": 10, "active": "1"})
				if assert.NoError(t, err) {
					assert.Equal(t, "c", book.Title)
					assert.Equal(t, 10, book.Pages)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				out, err := f.Write(&Book{Title: "w", Pages: 3, Active: true})
				if assert.NoError(t, err) {
					assert.Equal(t, "w", out["title"])
				}
			}
		}()
	}
	wg.Wait()
}
