package wordpat

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache parses patterns, remembering the most recently used results.
type Cache struct {
	c *lru.Cache[string, Word]
}

func NewCache(size int) *Cache {
	c, err := lru.New[string, Word](size)
	if err != nil {
		panic(err)
	}
	return &Cache{c: c}
}

// Parse is ParseWord, with results cached by pattern text.
// Syntax errors are not cached.
func (c *Cache) Parse(s string) (Word, error) {
	if w, ok := c.c.Get(s); ok {
		return slices.Clone(w), nil
	}
	w, err := ParseWord(s)
	if err != nil {
		return nil, err
	}
	c.c.Add(s, slices.Clone(w))
	return w, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.c.Len()
}
