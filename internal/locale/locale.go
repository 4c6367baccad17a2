// Package locale maps BCP 47 language tags to Windows language identifiers.
package locale

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned for tags that are malformed or whose
// language has no Windows identifier in the table below.
var ErrUnsupportedLanguage = errors.New("unsupported language")

const (
	sublangNeutral = 0x00
	sublangDefault = 0x01
)

// primary holds the Windows primary language identifier per base
// language, and the sublanguage for regions that differ from the default.
type primary struct {
	id      uint32
	regions map[string]uint32
}

var primaries = map[string]primary{
	"ar": {id: 0x01},
	"cs": {id: 0x05},
	"da": {id: 0x06},
	"de": {id: 0x07, regions: map[string]uint32{"DE": 0x01, "CH": 0x02, "AT": 0x03, "LU": 0x04, "LI": 0x05}},
	"el": {id: 0x08},
	"en": {id: 0x09, regions: map[string]uint32{"US": 0x01, "GB": 0x02, "AU": 0x03, "CA": 0x04, "NZ": 0x05, "IE": 0x06}},
	"es": {id: 0x0a, regions: map[string]uint32{"ES": 0x03, "MX": 0x02}},
	"fi": {id: 0x0b},
	"fr": {id: 0x0c, regions: map[string]uint32{"FR": 0x01, "BE": 0x02, "CA": 0x03, "CH": 0x04, "LU": 0x05}},
	"he": {id: 0x0d},
	"hu": {id: 0x0e},
	"it": {id: 0x10, regions: map[string]uint32{"IT": 0x01, "CH": 0x02}},
	"ja": {id: 0x11},
	"ko": {id: 0x12},
	"nl": {id: 0x13, regions: map[string]uint32{"NL": 0x01, "BE": 0x02}},
	"nb": {id: 0x14},
	"pl": {id: 0x15},
	"pt": {id: 0x16, regions: map[string]uint32{"BR": 0x01, "PT": 0x02}},
	"ru": {id: 0x19},
	"sv": {id: 0x1d},
	"tr": {id: 0x1f},
	"uk": {id: 0x22},
	"zh": {id: 0x04, regions: map[string]uint32{"TW": 0x01, "CN": 0x02, "HK": 0x03, "SG": 0x04, "MO": 0x05}},
}

// makeLangID combines a primary language and sublanguage like MAKELANGID.
func makeLangID(primary, sub uint32) uint32 {
	return sub<<10 | primary
}

// LangID returns the Windows LANGID for tag. An empty tag maps to 0, the
// system default search order. Regions missing from the table map to the
// language's default sublanguage; tags without a region use the neutral
// sublanguage.
//
// Example:
//
//	id, _ := locale.LangID("en-US") // 0x0409
func LangID(tag string) (uint32, error) {
	if tag == "" {
		return 0, nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, tag, err)
	}

	base, _ := t.Base()
	p, ok := primaries[base.String()]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}

	region, conf := t.Region()
	if conf != language.Exact {
		return makeLangID(p.id, sublangNeutral), nil
	}

	if sub, ok := p.regions[region.String()]; ok {
		return makeLangID(p.id, sub), nil
	}
	return makeLangID(p.id, sublangDefault), nil
}
