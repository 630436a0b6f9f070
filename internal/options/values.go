package options

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Values holds a resolved value for every option of a table.
type Values struct {
	table *Table
	ints  map[string]int
	sets  map[string][]string
	index map[string]mapset.Set[string]
}

// Defaults returns the default value of every option in the table.
func Defaults(t *Table) *Values {
	v := &Values{
		table: t,
		ints:  make(map[string]int),
		sets:  make(map[string][]string),
		index: make(map[string]mapset.Set[string]),
	}
	for _, d := range t.Defs() {
		if d.Kind == KindItemSet {
			v.setSet(d.Key, d.DefaultSet)
			continue
		}
		v.ints[d.Key] = d.Default
	}
	return v
}

// Resolve validates raw settings against the table and fills in defaults.
// itemNames is consulted for item sets with VerifyItemName. Every problem is
// reported in a single *ValidationError.
func Resolve(t *Table, raw map[string]any, itemNames mapset.Set[string]) (*Values, error) {
	v := Defaults(t)
	var problems []error

	// Sorted so the problem list is stable.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		def, ok := t.Get(key)
		if !ok {
			problems = append(problems, fmt.Errorf("%w: %s", ErrUnknownOption, key))
			continue
		}
		if err := v.assign(def, raw[key], itemNames); err != nil {
			problems = append(problems, err)
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return v, nil
}

func (v *Values) assign(def Def, raw any, itemNames mapset.Set[string]) error {
	switch def.Kind {
	case KindToggle:
		b, err := toBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, def.Key, err)
		}
		v.ints[def.Key] = 0
		if b {
			v.ints[def.Key] = 1
		}

	case KindRange:
		n, err := toInt(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, def.Key, err)
		}
		if n < def.Min || n > def.Max {
			return fmt.Errorf("%w: %s = %d, want %d..%d", ErrOutOfRange, def.Key, n, def.Min, def.Max)
		}
		v.ints[def.Key] = n

	case KindChoice:
		n, err := toChoice(def, raw)
		if err != nil {
			return err
		}
		v.ints[def.Key] = n

	case KindItemSet:
		names, err := toStrings(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, def.Key, err)
		}
		if def.VerifyItemName {
			for _, n := range names {
				if !itemNames.Has(n) {
					return fmt.Errorf("%w: %s contains %q", ErrUnknownItem, def.Key, n)
				}
			}
		}
		v.setSet(def.Key, names)
	}
	return nil
}

func (v *Values) setSet(key string, names []string) {
	set := mapset.New[string]()
	var ordered []string
	for _, n := range names {
		if set.Has(n) {
			continue
		}
		set.Put(n)
		ordered = append(ordered, n)
	}
	v.sets[key] = ordered
	v.index[key] = set
}

// Int returns the numeric value of a toggle, range or choice option.
// Unknown keys and item sets read as zero.
func (v *Values) Int(key string) int {
	return v.ints[key]
}

// Bool reports whether a numeric option is non-zero.
func (v *Values) Bool(key string) bool {
	return v.ints[key] != 0
}

// Set returns the entries of an item set option in first-seen order.
func (v *Values) Set(key string) []string {
	return slices.Clone(v.sets[key])
}

// SetHas reports whether an item set option contains name. Matching is exact.
func (v *Values) SetHas(key, name string) bool {
	s, ok := v.index[key]
	if !ok {
		return false
	}
	return s.Has(name)
}

// Lookup returns the raw value for key: an int for numeric options, a
// []string for item sets.
func (v *Values) Lookup(key string) (any, bool) {
	if n, ok := v.ints[key]; ok {
		return n, true
	}
	if s, ok := v.sets[key]; ok {
		return slices.Clone(s), true
	}
	return nil, false
}

// Map returns every value keyed by option key, for slot data and results.
func (v *Values) Map() map[string]any {
	out := make(map[string]any, len(v.ints)+len(v.sets))
	for k, n := range v.ints {
		out[k] = n
	}
	for k, s := range v.sets {
		if s == nil {
			s = []string{}
		}
		out[k] = slices.Clone(s)
	}
	return out
}

// Table returns the table the values were resolved against.
func (v *Values) Table() *Table {
	return v.table
}

func toBool(raw any) (bool, error) {
	switch x := raw.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "on", "1":
			return true, nil
		case "false", "off", "0":
			return false, nil
		}
		return false, fmt.Errorf("not a boolean: %q", x)
	}
	n, err := toInt(raw)
	if err != nil {
		return false, err
	}
	if n != 0 && n != 1 {
		return false, fmt.Errorf("not a boolean: %d", n)
	}
	return n == 1, nil
}

func toInt(raw any) (int, error) {
	switch x := raw.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case int32:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("not an integer: %v", x)
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", x)
		}
		return n, nil
	}
	return 0, fmt.Errorf("unsupported type %T", raw)
}

func toChoice(def Def, raw any) (int, error) {
	if s, ok := raw.(string); ok {
		name := strings.ToLower(strings.TrimSpace(s))
		for _, c := range def.Choices {
			if strings.ToLower(c.Name) == name {
				return c.Value, nil
			}
		}
		if _, err := strconv.Atoi(name); err != nil {
			return 0, fmt.Errorf("%w: %s has no choice %q", ErrInvalidValue, def.Key, s)
		}
	}
	n, err := toInt(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidValue, def.Key, err)
	}
	if _, ok := def.ChoiceName(n); !ok {
		return 0, fmt.Errorf("%w: %s has no choice %d", ErrOutOfRange, def.Key, n)
	}
	return n, nil
}

func toStrings(raw any) ([]string, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return x, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("entry %v is %T, want string", e, e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported type %T, want a list of names", raw)
}
