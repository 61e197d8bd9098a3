package taxonomy

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheKey = "snapshot"

// Source yields raw category records. *Store is the Postgres implementation.
type Source interface {
	ListActive(ctx context.Context) ([]Record, error)
}

// Loader resolves the current taxonomy snapshot.
//
// Load never fails: a nil source, a read error or an empty result set all
// degrade to Defaults(). With a positive TTL, snapshots are served from a
// single-entry expiring cache; with TTL zero every request re-reads the
// source, which is the default behavior.
type Loader struct {
	source Source
	cache  *expirable.LRU[string, []Category]
}

func NewLoader(source Source, ttl time.Duration) *Loader {
	l := &Loader{source: source}
	if ttl > 0 {
		l.cache = expirable.NewLRU[string, []Category](1, nil, ttl)
	}
	return l
}

// Load returns the current taxonomy, always non-empty.
func (l *Loader) Load(ctx context.Context) []Category {
	if l.cache != nil {
		if snap, ok := l.cache.Get(cacheKey); ok {
			return snap
		}
	}

	cats := l.resolve(ctx)

	if l.cache != nil {
		l.cache.Add(cacheKey, cats)
	}
	return cats
}

func (l *Loader) resolve(ctx context.Context) []Category {
	if l.source == nil {
		return Defaults()
	}
	records, err := l.source.ListActive(ctx)
	if err != nil {
		log.Printf("taxonomy: read failed, using defaults: %v", err)
		return Defaults()
	}
	log.Printf("taxonomy: loaded %d categories from source", len(records))

	if len(records) == 0 {
		log.Printf("taxonomy: no active categories found, using defaults")
		return Defaults()
	}

	cats := make([]Category, 0, len(records))
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		hypothesis := strings.TrimSpace(r.AILabel.String)
		if hypothesis == "" {
			hypothesis = SynthesizeHypothesis(name)
		}
		slug := strings.TrimSpace(r.Slug.String)
		if slug == "" {
			slug = SlugFor(name)
		}
		cats = append(cats, Category{
			Hypothesis:  hypothesis,
			DisplayName: name,
			Slug:        slug,
		})
	}
	if len(cats) == 0 {
		return Defaults()
	}
	return cats
}
