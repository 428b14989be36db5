package catalog

import "github.com/yungbote/catalog-backend/internal/pkg/pointers"

// Attribute readers used by Fill. A key absent from attrs leaves the column
// untouched; values are expected to be already coerced by validation.

func stringAttr(attrs map[string]any, key string) (string, bool) {
	raw, ok := attrs[key]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

func nullableStringAttr(attrs map[string]any, key string) (*string, bool) {
	raw, ok := attrs[key]
	if !ok {
		return nil, false
	}
	if raw == nil {
		return nil, true
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false
	}
	return pointers.String(s), true
}

func boolAttr(attrs map[string]any, key string) (bool, bool) {
	raw, ok := attrs[key]
	if !ok {
		return false, false
	}
	b, ok := raw.(bool)
	return b, ok
}

func intAttr(attrs map[string]any, key string) (int, bool) {
	raw, ok := attrs[key]
	if !ok {
		return 0, false
	}
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
