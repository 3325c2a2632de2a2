package fritztools

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/tbeier/fritzkit/fritzerr"
	"github.com/tbeier/fritzkit/log"
)

var (
	camelBoundary      = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerUpperBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// NormalizeArgumentName converts a vendor "MixedCase" argument name to
// snake_case, i.e. "NewManufacturerName" becomes "manufacturer_name".
// The conversion inserts an underscore before every uppercase letter that
// starts a lowercase run and between a lowercase letter or digit and a
// following uppercase letter, then lowercases the result; runs of capitals
// such as acronyms form a single segment ("NewManufacturerOUI" becomes
// "manufacturer_oui"). With suppressNew set, one leading "new_" segment is
// removed, as "New" is the conventional prefix of router argument names.
//
// Input that already looks normalized (contains an underscore and no
// uppercase letters) is returned unchanged, before any prefix stripping.
// The function is idempotent: applying it to its own output returns the
// output unchanged.
func NormalizeArgumentName(name string, suppressNew bool) string {
	if name == "" {
		return name
	}
	if strings.Contains(name, "_") && !strings.ContainsFunc(name, unicode.IsUpper) {
		return name
	}
	s := camelBoundary.ReplaceAllString(name, "${1}_${2}")
	s = lowerUpperBoundary.ReplaceAllString(s, "${1}_${2}")
	s = strings.ToLower(s)
	if suppressNew {
		s = strings.TrimPrefix(s, "new_")
	}
	return s
}

// NamespaceOption configures the construction of a Namespace.
type NamespaceOption func(*namespaceOptions)

type namespaceOptions struct {
	mapping map[string]string
	keepNew bool
}

// WithMapping supplies an explicit mapping from desired keys to original
// source keys, replacing the automatic normalization of every source key.
// The mapping is used verbatim; pairs whose source key is absent are
// skipped, so a superset mapping can be reused across response shapes.
func WithMapping(mapping map[string]string) NamespaceOption {
	return func(o *namespaceOptions) {
		o.mapping = mapping
	}
}

// KeepNewPrefix keeps the conventional "new_" prefix on automatically
// normalized keys instead of stripping it.
func KeepNewPrefix() NamespaceOption {
	return func(o *namespaceOptions) {
		o.keepNew = true
	}
}

// Namespace is a mutable key/value view over a router action response.
//
// A response is a flat map of vendor-style argument names to values, like
// the result of tr064.Caller.CallAction. A Namespace stores those values
// under normalized names, so "NewModelName" can be read as "model_name".
// Instances are cheap, unsynchronized value holders meant to live for the
// duration of one response.
type Namespace struct {
	values map[string]any
}

// NewNamespace builds a Namespace from a response map. Without options,
// every source key is normalized with NormalizeArgumentName and the "new_"
// prefix is stripped. When two source keys normalize to the same name, the
// lexicographically later source key wins and a warning is logged. The
// source map is not retained or modified.
func NewNamespace(source map[string]any, opts ...NamespaceOption) *Namespace {
	var options namespaceOptions
	for _, opt := range opts {
		opt(&options)
	}

	mapping := options.mapping
	if mapping == nil {
		keys := make([]string, 0, len(source))
		for key := range source {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		mapping = make(map[string]string, len(source))
		for _, key := range keys {
			name := NormalizeArgumentName(key, !options.keepNew)
			if prev, ok := mapping[name]; ok {
				log.Warnf("Argument names %q and %q both normalize to %q, keeping the value of %q", prev, key, name, key)
			}
			mapping[name] = key
		}
	}

	values := make(map[string]any, len(mapping))
	for name, sourceKey := range mapping {
		if value, ok := source[sourceKey]; ok {
			values[name] = value
		}
	}
	return &Namespace{values: values}
}

// Lookup returns the value stored under key. A missing key yields an error
// carrying fritzerr.ErrCodeKeyNotFound; use Get when a fallback is wanted
// instead of an error.
func (n *Namespace) Lookup(key string) (any, error) {
	value, ok := n.values[key]
	if !ok {
		return nil, fritzerr.NewKeyNotFoundError(fmt.Sprintf("key not found: %q", key), nil)
	}
	return value, nil
}

// Get returns the value stored under key, or fallback when the key is
// absent. Get never fails.
func (n *Namespace) Get(key string, fallback any) any {
	if value, ok := n.values[key]; ok {
		return value
	}
	return fallback
}

// Set stores value under key. The key is stored as given, without
// normalization, and is immediately visible to all other accessors.
func (n *Namespace) Set(key string, value any) {
	n.values[key] = value
}

// Has reports whether key is currently stored.
func (n *Namespace) Has(key string) bool {
	_, ok := n.values[key]
	return ok
}

// Len returns the number of stored keys.
func (n *Namespace) Len() int {
	return len(n.values)
}

// Keys returns a snapshot of the stored keys. Order is unspecified.
func (n *Namespace) Keys() []string {
	keys := make([]string, 0, len(n.values))
	for key := range n.values {
		keys = append(keys, key)
	}
	return keys
}

// Values returns a snapshot of the stored values. Order is unspecified.
func (n *Namespace) Values() []any {
	values := make([]any, 0, len(n.values))
	for _, value := range n.values {
		values = append(values, value)
	}
	return values
}

// Items returns a copy of the stored key/value pairs.
func (n *Namespace) Items() map[string]any {
	items := make(map[string]any, len(n.values))
	for key, value := range n.values {
		items[key] = value
	}
	return items
}

// Update merges all entries of other into the namespace, overwriting
// existing keys. other must be a map[string]any or another *Namespace; any
// other type yields an error carrying fritzerr.ErrCodeTypeMismatch.
func (n *Namespace) Update(other any) error {
	switch src := other.(type) {
	case map[string]any:
		for key, value := range src {
			n.values[key] = value
		}
	case *Namespace:
		for key, value := range src.values {
			n.values[key] = value
		}
	default:
		return fritzerr.NewTypeMismatchError(fmt.Sprintf("expected map[string]any or *Namespace, got %T", other), nil)
	}
	return nil
}

// String returns the value stored under key as a string. A missing key
// yields fritzerr.ErrCodeKeyNotFound, a non-string value
// fritzerr.ErrCodeTypeMismatch.
func (n *Namespace) String(key string) (string, error) {
	value, err := n.Lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := value.(string)
	if !ok {
		return "", fritzerr.NewTypeMismatchError(fmt.Sprintf("key %q holds %T, not a string", key, value), nil)
	}
	return s, nil
}

// Int returns the value stored under key as an int, accepting the numeric
// and numeric-string forms a router response may carry.
func (n *Namespace) Int(key string) (int, error) {
	value, err := n.Lookup(key)
	if err != nil {
		return 0, err
	}
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		i, convErr := strconv.Atoi(strings.TrimSpace(v))
		if convErr != nil {
			return 0, fritzerr.NewTypeMismatchError(fmt.Sprintf("key %q holds %q, not an int", key, v), convErr)
		}
		return i, nil
	default:
		return 0, fritzerr.NewTypeMismatchError(fmt.Sprintf("key %q holds %T, not an int", key, value), nil)
	}
}

// Bool returns the value stored under key as a bool. Router responses
// encode booleans as 0/1, so numeric and string forms are accepted.
func (n *Namespace) Bool(key string) (bool, error) {
	value, err := n.Lookup(key)
	if err != nil {
		return false, err
	}
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case uint64:
		return v != 0, nil
	case float64:
		return v != 0, nil
	case string:
		b, convErr := strconv.ParseBool(strings.TrimSpace(v))
		if convErr != nil {
			return false, fritzerr.NewTypeMismatchError(fmt.Sprintf("key %q holds %q, not a bool", key, v), convErr)
		}
		return b, nil
	default:
		return false, fritzerr.NewTypeMismatchError(fmt.Sprintf("key %q holds %T, not a bool", key, value), nil)
	}
}
