package status

// Cache keeps results of one pipeline run, keyed by scientific name.
// Results of every outcome are stored, so a repeated query for a name
// that already failed does not reach the network again.
//
// Cache has a single reader and a single writer and is not safe for
// concurrent use.
type Cache struct {
	data map[string]Result
	hits int
}

// NewCache creates an empty run cache.
func NewCache() *Cache {
	return &Cache{data: make(map[string]Result)}
}

// Get returns a cached result and true, or false if name is unknown.
func (c *Cache) Get(name string) (Result, bool) {
	res, ok := c.data[name]
	if ok {
		c.hits++
	}
	return res, ok
}

// Set stores a result for a name.
func (c *Cache) Set(name string, res Result) {
	c.data[name] = res
}

// Len returns the number of cached names.
func (c *Cache) Len() int {
	return len(c.data)
}

// Hits returns how many Get calls were answered from the cache.
func (c *Cache) Hits() int {
	return c.hits
}
