package nodegraph

import "strings"

// DataKind tags the kind of payload a connector carries. Two connectors can
// only be linked when their kinds are equal.
type DataKind uint8

const (
	KindNone    DataKind = iota // name did not match a known kind
	KindScalars                 // single numbers
	KindVectors                 // 2-4 component vectors
	KindTexture                 // images and render targets
	KindColor                   // RGBA colors
	KindMatrix                  // affine or projective transforms
	KindText                    // strings
	KindAny                     // untyped pass-through
)

// dataKindNames is the canonical name of each kind, indexed by DataKind.
var dataKindNames = [...]string{
	KindNone:    "None",
	KindScalars: "Scalars",
	KindVectors: "Vectors",
	KindTexture: "Texture",
	KindColor:   "Color",
	KindMatrix:  "Matrix",
	KindText:    "Text",
	KindAny:     "Any",
}

// dataKindLookup maps lowercased names, including accepted aliases, to kinds.
var dataKindLookup = map[string]DataKind{
	"none":     KindNone,
	"scalars":  KindScalars,
	"scalar":   KindScalars,
	"vectors":  KindVectors,
	"vector":   KindVectors,
	"texture":  KindTexture,
	"textures": KindTexture,
	"color":    KindColor,
	"colors":   KindColor,
	"matrix":   KindMatrix,
	"text":     KindText,
	"any":      KindAny,
}

func (k DataKind) String() string {
	if int(k) < len(dataKindNames) {
		return dataKindNames[k]
	}
	return dataKindNames[KindNone]
}

// ParseDataKind looks name up case-insensitively. Unknown names yield
// KindNone and ok = false.
func ParseDataKind(name string) (kind DataKind, ok bool) {
	kind, ok = dataKindLookup[strings.ToLower(strings.TrimSpace(name))]
	return kind, ok
}

// dataKindOrNone parses name and logs a warning when it is not a known kind.
func dataKindOrNone(name, connector string) DataKind {
	kind, ok := ParseDataKind(name)
	if !ok {
		Logger().Warn("nodegraph: unknown connector data kind, using None",
			"kind", name, "connector", connector)
		return KindNone
	}
	return kind
}
