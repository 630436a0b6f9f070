package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// callPattern matches {name(args)} in a requires string.
var callPattern = regexp.MustCompile(`\{(\w+)\(([^)]*)\)\}`)

// Expand substitutes helper calls in a requires string. Templates are always
// substituted. Checks render "true"/"false" when env.State is set and are
// left untouched otherwise, so a string can be expanded before fill.
func (r *Registry) Expand(env Env, requires string) (string, error) {
	var firstErr error
	out := callPattern.ReplaceAllStringFunc(requires, func(call string) string {
		if firstErr != nil {
			return call
		}
		m := callPattern.FindStringSubmatch(call)
		name, args := m[1], splitArgs(m[2])

		if r.IsCheck(name) && env.State == nil {
			return call
		}
		result, err := r.Call(env, name, args...)
		if err != nil {
			firstErr = fmt.Errorf("expanding %s: %w", call, err)
			return call
		}
		switch v := result.(type) {
		case bool:
			return strconv.FormatBool(v)
		case string:
			return v
		default:
			return fmt.Sprint(v)
		}
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
