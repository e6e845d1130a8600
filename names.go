package pixfmt

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/pixfmt/internal/cache"
)

// FormatName returns the canonical PF_* name of f. Undefined codes are
// reported as PF_UNKNOWN.
func FormatName(f PixelFormat) string {
	return descriptorOf(f).Name
}

// formatAliases lists the alias names FormatFromName accepts after the
// canonical names. aliasTarget resolves them.
var formatAliases = []string{
	"PF_BYTE_RGB",
	"PF_BYTE_BGR",
	"PF_BYTE_BGRA",
	"PF_BYTE_RGBA",
	"PF_BYTE_L",
	"PF_BYTE_A",
	"PF_SHORT_L",
}

func aliasTarget(name string) PixelFormat {
	switch name {
	case "PF_BYTE_RGB":
		return PF_BYTE_RGB
	case "PF_BYTE_BGR":
		return PF_BYTE_BGR
	case "PF_BYTE_BGRA":
		return PF_BYTE_BGRA
	case "PF_BYTE_RGBA":
		return PF_BYTE_RGBA
	case "PF_BYTE_L":
		return PF_BYTE_L
	case "PF_BYTE_A":
		return PF_BYTE_A
	case "PF_SHORT_L":
		return PF_SHORT_L
	}
	return PF_UNKNOWN
}

// nameQuery keys the FormatFromName memo.
type nameQuery struct {
	name                          string
	accessibleOnly, caseSensitive bool
}

// nameLookups remembers recent FormatFromName results. Case-insensitive
// lookups fold every candidate name, so repeats are worth keeping.
var nameLookups = cache.New[nameQuery, PixelFormat](256)

// FormatFromName returns the format whose canonical or alias name matches
// name. With accessibleOnly set, compressed and depth formats never match.
// Unknown names yield PF_UNKNOWN.
func FormatFromName(name string, accessibleOnly, caseSensitive bool) PixelFormat {
	q := nameQuery{name: name, accessibleOnly: accessibleOnly, caseSensitive: caseSensitive}
	return nameLookups.GetOrCreate(q, func() PixelFormat {
		return lookupName(name, accessibleOnly, caseSensitive)
	})
}

func lookupName(name string, accessibleOnly, caseSensitive bool) PixelFormat {
	match := func(candidate string) bool { return candidate == name }
	if !caseSensitive {
		// A Caser keeps state, so each lookup gets its own.
		fold := cases.Fold()
		want := fold.String(name)
		match = func(candidate string) bool {
			return fold.String(candidate) == want
		}
	}

	for i := PixelFormat(0); i < PF_COUNT; i++ {
		if accessibleOnly && !IsAccessible(i) {
			continue
		}
		if match(descriptors[i].Name) {
			return i
		}
	}
	for _, alias := range formatAliases {
		if !match(alias) {
			continue
		}
		f := aliasTarget(alias)
		if accessibleOnly && !IsAccessible(f) {
			return PF_UNKNOWN
		}
		return f
	}
	return PF_UNKNOWN
}

// BNFExpression returns the names of all formats as a grammar alternation:
// each name single-quoted, joined by " | ". Longer names come first so a
// token matcher never stops at a shorter prefix; names of equal length appear
// in descending code order.
func BNFExpression(accessibleOnly bool) string {
	names := make([]string, 0, PF_COUNT)
	for i := PF_COUNT; i > 0; i-- {
		f := i - 1
		if accessibleOnly && !IsAccessible(f) {
			continue
		}
		names = append(names, descriptors[f].Name)
	}
	sort.SliceStable(names, func(i, j int) bool {
		return len(names[i]) > len(names[j])
	})

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteByte('\'')
		b.WriteString(name)
		b.WriteByte('\'')
	}
	return b.String()
}

// Formats returns every defined format code in ascending order, optionally
// restricted to accessible formats.
func Formats(accessibleOnly bool) []PixelFormat {
	out := make([]PixelFormat, 0, PF_COUNT)
	for i := PixelFormat(0); i < PF_COUNT; i++ {
		if accessibleOnly && !IsAccessible(i) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// FormatForBitDepths returns the sibling of f with the requested integer or
// float bit depth. Only 16 and 32 are recognised; any other request, or a
// format without such a sibling, returns f unchanged.
func FormatForBitDepths(f PixelFormat, integerBits, floatBits int) PixelFormat {
	switch integerBits {
	case 16:
		switch f {
		case PF_R8G8B8, PF_X8R8G8B8:
			return PF_R5G6B5
		case PF_B8G8R8, PF_X8B8G8R8:
			return PF_B5G6R5
		case PF_A8R8G8B8, PF_R8G8B8A8, PF_A8B8G8R8, PF_B8G8R8A8:
			return PF_A4R4G4B4
		case PF_A2R10G10B10, PF_A2B10G10R10:
			return PF_A1R5G5B5
		}
	case 32:
		switch f {
		case PF_R5G6B5:
			return PF_X8R8G8B8
		case PF_B5G6R5:
			return PF_X8B8G8R8
		case PF_A4R4G4B4:
			return PF_A8R8G8B8
		case PF_A1R5G5B5:
			return PF_A2R10G10B10
		}
	}

	switch floatBits {
	case 16:
		switch f {
		case PF_FLOAT32_R:
			return PF_FLOAT16_R
		case PF_FLOAT32_RGB:
			return PF_FLOAT16_RGB
		case PF_FLOAT32_RGBA:
			return PF_FLOAT16_RGBA
		}
	case 32:
		switch f {
		case PF_FLOAT16_R:
			return PF_FLOAT32_R
		case PF_FLOAT16_RGB:
			return PF_FLOAT32_RGB
		case PF_FLOAT16_RGBA:
			return PF_FLOAT32_RGBA
		}
	}
	return f
}
