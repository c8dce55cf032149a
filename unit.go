package quantity

import (
	"strings"
)

//go:generate go run scripts/unit/codegen.go

// DimensionlessUnit is the identifier of quantities without a unit.
// It never produces a unit label.
const DimensionlessUnit = "1"

// EntityPrefix is the prefix of unit identifiers that are entity URIs,
// such as "http://www.wikidata.org/entity/Q11573".
const EntityPrefix = "http://www.wikidata.org/entity/"

// UnitResolver returns the display label of a unit identifier.
// It returns false if the unit has no label.
type UnitResolver interface {
	UnitLabel(unit string) (label string, ok bool)
}

// UnitResolverFunc is an adapter to allow the use of ordinary functions as
// unit resolvers.
type UnitResolverFunc func(unit string) (string, bool)

// UnitLabel implements the [UnitResolver] interface.
func (f UnitResolverFunc) UnitLabel(unit string) (string, bool) {
	return f(unit)
}

// IdentityUnits is a [UnitResolver] that uses the unit identifier itself as
// the label. The identifier [DimensionlessUnit] has no label.
var IdentityUnits UnitResolver = UnitResolverFunc(identityLabel)

func identityLabel(unit string) (string, bool) {
	if unit == "" || unit == DimensionlessUnit {
		return "", false
	}
	return unit, true
}

// Vocabulary is a [UnitResolver] that knows the symbols of common units.
// Units are identified by item ids, such as "Q11573", or by entity URIs
// with the [EntityPrefix].
// Unknown identifiers are their own labels, and [DimensionlessUnit] has no label.
var Vocabulary UnitResolver = UnitResolverFunc(vocabularyLabel)

func vocabularyLabel(unit string) (string, bool) {
	if unit == "" || unit == DimensionlessUnit {
		return "", false
	}
	if i, ok := unitLookup[strings.TrimPrefix(unit, EntityPrefix)]; ok {
		return unitItems[i].Symbol, true
	}
	return unit, true
}

// UnitItem describes a unit of the built-in [Vocabulary].
type UnitItem struct {
	ID     string // item id, such as "Q11573"
	Name   string // English name, such as "metre"
	Symbol string // display label, such as "m"
}

// URI returns the entity URI of the unit.
func (u UnitItem) URI() string {
	return EntityPrefix + u.ID
}

// VocabularyItems returns the units of the built-in [Vocabulary] sorted by id.
func VocabularyItems() []UnitItem {
	items := make([]UnitItem, len(unitItems))
	copy(items, unitItems[:])
	return items
}

// UnitLabels is a [UnitResolver] with explicit labels.
// Identifiers missing from Labels are resolved with Fallback, or with
// [Vocabulary] if Fallback is nil.
// An empty label means the unit has no label.
type UnitLabels struct {
	Labels   map[string]string
	Fallback UnitResolver
}

// UnitLabel implements the [UnitResolver] interface.
func (u UnitLabels) UnitLabel(unit string) (string, bool) {
	if unit == DimensionlessUnit {
		return "", false
	}
	if label, ok := u.Labels[unit]; ok {
		return label, label != ""
	}
	if u.Fallback == nil {
		return Vocabulary.UnitLabel(unit)
	}
	return u.Fallback.UnitLabel(unit)
}
