package validation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RuleSet maps a field name to its comma separated rule list.
type RuleSet map[string]string

const (
	kindString  = "string"
	kindBoolean = "boolean"
	kindInteger = "integer"
	kindYear    = "year"
	kindArray   = "array"
)

type fieldRules struct {
	required bool
	nullable bool
	kind     string
	exists   string
	tags     []string
}

func parseRules(list string) (fieldRules, error) {
	var fr fieldRules
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		name, param, _ := strings.Cut(part, "=")
		switch name {
		case "":
		case "required":
			fr.required = true
		case "nullable":
			fr.nullable = true
		case kindString, kindBoolean, kindInteger, kindYear, kindArray:
			if fr.kind != "" {
				return fr, fmt.Errorf("rule %q: conflicting type %q", part, fr.kind)
			}
			fr.kind = name
		case "exists":
			if param == "" {
				return fr, fmt.Errorf("rule %q: missing table", part)
			}
			fr.exists = param
		default:
			fr.tags = append(fr.tags, part)
		}
	}
	return fr, nil
}

// Validate checks input against rules and returns the coerced values of the
// fields that are present. Fields without rules are dropped. A failed rule
// yields *Error; infrastructure failures (bad rule table, existence lookup)
// are returned as plain errors.
func Validate(ctx context.Context, rules RuleSet, input map[string]any, checker ExistenceChecker) (map[string]any, error) {
	fields := make([]string, 0, len(rules))
	for f := range rules {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	out := make(map[string]any, len(rules))
	verr := &Error{}
	type pendingExists struct {
		field string
		table string
		ids   []uuid.UUID
	}
	var pending []pendingExists

	for _, field := range fields {
		fr, err := parseRules(rules[field])
		if err != nil {
			return nil, fmt.Errorf("validation rules for %s: %w", field, err)
		}

		raw, present := input[field]
		if s, ok := raw.(string); ok {
			if s = strings.TrimSpace(s); s == "" {
				raw = nil
			} else {
				raw = s
			}
		}

		if !present || raw == nil || isEmptyList(raw) {
			if fr.required {
				verr.add(field, "required", translate(field, "required", ""))
				continue
			}
			if !present {
				continue
			}
			if raw == nil {
				if fr.nullable || fr.kind == "" {
					out[field] = nil
				} else {
					verr.add(field, fr.kind, translate(field, fr.kind, ""))
				}
				continue
			}
		}

		value, rule, ok := coerce(fr.kind, raw)
		if !ok {
			verr.add(field, rule, translate(field, rule, ""))
			continue
		}
		if len(fr.tags) > 0 {
			if fe := checkTags(value, strings.Join(fr.tags, ",")); fe != nil {
				verr.add(field, fe.Tag(), translate(field, fe.Tag(), fe.Param()))
				continue
			}
		}
		if fr.exists != "" {
			ids, _ := value.([]uuid.UUID)
			if len(ids) > 0 {
				pending = append(pending, pendingExists{field: field, table: fr.exists, ids: ids})
			}
		}
		out[field] = value
	}

	for _, p := range pending {
		if checker == nil {
			return nil, fmt.Errorf("validation: no existence checker for %s", p.table)
		}
		missing, err := missingIDs(ctx, checker, p.table, p.ids)
		if err != nil {
			return nil, fmt.Errorf("validation exists %s: %w", p.table, err)
		}
		if len(missing) > 0 {
			verr.add(p.field, "exists", translate(p.field, "exists", ""))
		}
	}

	if !verr.empty() {
		return nil, verr
	}
	return out, nil
}

func checkTags(value any, tags string) validator.FieldError {
	err := GetValidator().Var(value, tags)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0]
	}
	return nil
}

func isEmptyList(v any) bool {
	list, ok := v.([]any)
	return ok && len(list) == 0
}

// coerce converts a decoded JSON value to the Go type of kind. On failure it
// returns the name of the rule that rejected the value.
func coerce(kind string, raw any) (any, string, bool) {
	switch kind {
	case "":
		return raw, "", true
	case kindString:
		s, ok := raw.(string)
		return s, kindString, ok
	case kindBoolean:
		b, ok := toBool(raw)
		return b, kindBoolean, ok
	case kindInteger:
		n, ok := toInt(raw)
		return n, kindInteger, ok
	case kindYear:
		n, ok := toYear(raw)
		return n, kindYear, ok
	case kindArray:
		return toUUIDs(raw)
	default:
		return nil, kind, false
	}
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "1", "true":
			return true, true
		case "0", "false":
			return false, true
		}
		return false, false
	}
	n, ok := toInt(raw)
	if !ok || (n != 0 && n != 1) {
		return false, false
	}
	return n == 1, true
}

type int64er interface {
	Int64() (int64, error)
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	case int64er:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func toYear(raw any) (int, bool) {
	if s, ok := raw.(string); ok {
		if len(s) != 4 {
			return 0, false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return 0, false
			}
		}
		n, _ := strconv.Atoi(s)
		return n, true
	}
	n, ok := toInt(raw)
	if !ok || n < 1000 || n > 9999 {
		return 0, false
	}
	return n, true
}

func toUUIDs(raw any) (any, string, bool) {
	list, ok := raw.([]any)
	if !ok {
		return nil, kindArray, false
	}
	strs := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, "uuid", false
		}
		strs = append(strs, strings.TrimSpace(s))
	}
	if fe := checkTags(strs, "dive,uuid"); fe != nil {
		return nil, "uuid", false
	}
	ids := make([]uuid.UUID, 0, len(strs))
	for _, s := range strs {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, "uuid", false
		}
		ids = append(ids, id)
	}
	return ids, "", true
}
