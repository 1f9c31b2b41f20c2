package catalog

import (
	"strings"

	"reddys-kitchen/web-svc/internal/domain"
)

const (
	AllValue    = "all"
	VegValue    = "Veg"
	NonVegValue = "Non-Veg"
)

type TypeKind int

const (
	TypeAll TypeKind = iota
	TypeVeg
	TypeNonVeg
	TypeCategory
)

// TypeFilter narrows menu items by diet or by an exact category name.
type TypeFilter struct {
	Kind     TypeKind
	Category string
}

func AnyType() TypeFilter { return TypeFilter{Kind: TypeAll} }

func Category(name string) TypeFilter { return TypeFilter{Kind: TypeCategory, Category: name} }

// ParseType maps the wire value used by the UI buttons onto a TypeFilter.
// Empty and "all" select everything; any unknown value is a category name.
func ParseType(value string) TypeFilter {
	switch value {
	case "", AllValue:
		return AnyType()
	case VegValue:
		return TypeFilter{Kind: TypeVeg}
	case NonVegValue:
		return TypeFilter{Kind: TypeNonVeg}
	default:
		return Category(value)
	}
}

func (t TypeFilter) IsAll() bool { return t.Kind == TypeAll }

func (t TypeFilter) String() string {
	switch t.Kind {
	case TypeVeg:
		return VegValue
	case TypeNonVeg:
		return NonVegValue
	case TypeCategory:
		return t.Category
	default:
		return AllValue
	}
}

func (t TypeFilter) Matches(item domain.MenuItem) bool {
	switch t.Kind {
	case TypeVeg:
		return item.Veg
	case TypeNonVeg:
		return !item.Veg
	case TypeCategory:
		return item.Category == t.Category
	default:
		return true
	}
}

type Mode int

const (
	ModeAll Mode = iota
	ModeSearch
	ModeCuisine
	ModeType
)

// Filter is the user's current restaurant selection. Only one of its
// predicates is active at a time, chosen by Mode.
type Filter struct {
	Cuisine string
	Type    TypeFilter
	Search  string
}

func NewFilter() Filter {
	return Filter{Cuisine: AllValue, Type: AnyType()}
}

func (f Filter) Mode() Mode {
	switch {
	case strings.TrimSpace(f.Search) != "":
		return ModeSearch
	case f.Cuisine != "" && f.Cuisine != AllValue:
		return ModeCuisine
	case !f.Type.IsAll():
		return ModeType
	default:
		return ModeAll
	}
}

// Includes reports whether a restaurant passes the active predicate.
func (f Filter) Includes(r domain.Restaurant) bool {
	switch f.Mode() {
	case ModeSearch:
		return matchesSearch(r, strings.ToLower(strings.TrimSpace(f.Search)))
	case ModeCuisine:
		return r.Cuisine == f.Cuisine
	case ModeType:
		for _, item := range r.Menu {
			if f.Type.Matches(item) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func matchesSearch(r domain.Restaurant, term string) bool {
	if strings.Contains(strings.ToLower(r.Name), term) || strings.Contains(strings.ToLower(r.Cuisine), term) {
		return true
	}
	for _, item := range r.Menu {
		if strings.Contains(strings.ToLower(item.Name), term) {
			return true
		}
	}
	return false
}
