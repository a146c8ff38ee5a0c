package spell

import (
	"hash/fnv"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/coder/hnsw"
	"github.com/jellydator/ttlcache/v3"
)

const (
	// vectorDims is the width of the hashed character n-gram vectors.
	vectorDims = 128
	// neighbourPool is how many graph neighbours are re-ranked per lookup.
	neighbourPool = 64
	// graphSeed fixes HNSW level assignment so every process builds the same graph.
	graphSeed = 1
	// maxEditDistance bounds how far a candidate may be from the typed word.
	maxEditDistance = 2

	// DefaultMaxCandidates is used when no limit is configured.
	DefaultMaxCandidates = 5
	// DefaultCacheTTL is used when no cache lifetime is configured.
	DefaultCacheTTL = 30 * time.Minute
)

// Checker finds dictionary words close to a misspelling.
// Words are indexed in an HNSW graph of hashed character n-gram vectors.
// Graph neighbours, together with every word whose length is within
// maxEditDistance of the input, are ranked by edit distance and then by
// n-gram similarity. The graph is read-only after NewChecker.
type Checker struct {
	dict          *Dictionary
	maxCandidates int

	graph    *hnsw.Graph[string]
	byLength map[int][]string

	cache *ttlcache.Cache[string, []string]
}

// NewChecker indexes dict and returns a Checker proposing at most
// maxCandidates replacements per word. Results are cached for ttl.
func NewChecker(dict *Dictionary, maxCandidates int, ttl time.Duration) *Checker {
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	words := dict.Words()
	nodes := make([]hnsw.Node[string], 0, len(words))
	byLength := make(map[int][]string)
	for _, w := range words {
		nodes = append(nodes, hnsw.MakeNode(w, vectorize(w)))
		n := len([]rune(w))
		byLength[n] = append(byLength[n], w)
	}
	graph := hnsw.NewGraph[string]()
	graph.Rng = rand.New(rand.NewSource(graphSeed))
	graph.EfSearch = neighbourPool
	if len(nodes) > 0 {
		graph.Add(nodes...)
	}

	c := ttlcache.New[string, []string](
		ttlcache.WithTTL[string, []string](ttl),
		ttlcache.WithDisableTouchOnHit[string, []string](),
	)
	go c.Start()

	slog.Debug("spell checker indexed", "words", len(nodes))
	return &Checker{
		dict:          dict,
		maxCandidates: maxCandidates,
		graph:         graph,
		byLength:      byLength,
		cache:         c,
	}
}

// Close stops the cache expiration loop.
func (c *Checker) Close() {
	c.cache.Stop()
}

// Dictionary returns the dictionary the checker was built from.
func (c *Checker) Dictionary() *Dictionary {
	return c.dict
}

// Misspelled reports whether word should be flagged.
// Single letters and tokens containing digits are never flagged.
func (c *Checker) Misspelled(word string) bool {
	if len([]rune(word)) < 2 {
		return false
	}
	for _, r := range word {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return !c.dict.Contains(strings.Trim(word, "'"))
}

// Suggest returns replacement candidates for word, best first.
// Explicit corrections come before graph matches. Capitalised input yields
// capitalised candidates.
func (c *Checker) Suggest(word string) []string {
	key := strings.ToLower(word)
	var candidates []string
	if item := c.cache.Get(key); item != nil {
		candidates = item.Value()
	} else {
		candidates = c.lookup(key)
		c.cache.Set(key, candidates, ttlcache.DefaultTTL)
	}
	return matchCase(word, candidates)
}

// IsExplicit reports whether the dictionary carries a correction for word.
func (c *Checker) IsExplicit(word string) bool {
	return len(c.dict.Corrections(word)) > 0
}

// Distance returns the edit distance between two words, ignoring case.
func (c *Checker) Distance(a, b string) int {
	return editDistance(strings.ToLower(a), strings.ToLower(b))
}

func (c *Checker) lookup(word string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range c.dict.Corrections(word) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	if len(out) >= c.maxCandidates {
		return out[:c.maxCandidates]
	}

	query := vectorize(word)
	pool := make(map[string]bool)
	if c.graph.Len() > 0 {
		for _, nb := range c.graph.Search(query, neighbourPool) {
			pool[nb.Key] = true
		}
	}
	// The graph only approximates neighbours; words of similar length are
	// scored directly so nothing within maxEditDistance is missed.
	n := len([]rune(word))
	for l := max(n-maxEditDistance, 1); l <= n+maxEditDistance; l++ {
		for _, w := range c.byLength[l] {
			pool[w] = true
		}
	}

	type scored struct {
		word string
		dist int
		cos  float32
	}
	var ranked []scored
	for w := range pool {
		if seen[w] || w == word {
			continue
		}
		d := editDistance(word, w)
		if d > maxEditDistance {
			continue
		}
		ranked = append(ranked, scored{w, d, hnsw.CosineDistance(query, vectorize(w))})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		if ranked[i].cos != ranked[j].cos {
			return ranked[i].cos < ranked[j].cos
		}
		return ranked[i].word < ranked[j].word
	})

	for _, s := range ranked {
		if len(out) >= c.maxCandidates {
			break
		}
		seen[s.word] = true
		out = append(out, s.word)
	}
	return out
}

// vectorize embeds a word as a normalised bag of hashed character unigrams
// and boundary-marked bigrams. Transposed letters share every unigram, which
// keeps "teh" close to "the".
func vectorize(word string) []float32 {
	vec := make([]float32, vectorDims)
	runes := []rune("^" + strings.ToLower(word) + "$")

	add := func(gram string, weight float32) {
		h := fnv.New32a()
		h.Write([]byte(gram))
		vec[h.Sum32()%vectorDims] += weight
	}
	for i, r := range runes {
		if r != '^' && r != '$' {
			add(string(r), 1)
		}
		if i+1 < len(runes) {
			add(string(runes[i:i+2]), 1)
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

// matchCase capitalises candidates when word starts with an upper-case letter.
func matchCase(word string, candidates []string) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	r := []rune(word)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return out
	}
	allUpper := len(r) > 1 && strings.ToUpper(word) == word
	for i, c := range out {
		if allUpper {
			out[i] = strings.ToUpper(c)
			continue
		}
		cr := []rune(c)
		if len(cr) > 0 {
			cr[0] = unicode.ToUpper(cr[0])
			out[i] = string(cr)
		}
	}
	return out
}
