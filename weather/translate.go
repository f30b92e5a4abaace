package weather

import (
	"strings"
	"sync"

	"github.com/mozillazg/go-pinyin"
)

// CityTranslator converts Chinese city names to the pinyin form the weather
// API expects. Results are memoized; the cache is an idempotent memoization
// (identical key always maps to the identical value), so concurrent
// last-write-wins inserts are harmless.
type CityTranslator struct {
	cache sync.Map // chinese name -> pinyin
}

// NewCityTranslator constructs an empty translator.
func NewCityTranslator() *CityTranslator { return &CityTranslator{} }

// Translate returns the capitalized pinyin of a city name, stripping the
// administrative suffix (市/县/区) first. Non-Han input passes through
// unchanged.
func (t *CityTranslator) Translate(name string) string {
	if cached, ok := t.cache.Load(name); ok {
		return cached.(string)
	}
	clean := strings.TrimRight(name, "市县区")
	syllables := pinyin.LazyConvert(clean, nil)
	translated := name
	if len(syllables) > 0 {
		joined := strings.Join(syllables, "")
		translated = strings.ToUpper(joined[:1]) + joined[1:]
	}
	t.cache.Store(name, translated)
	return translated
}
