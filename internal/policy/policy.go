package policy

import (
	"strings"

	clierr "github.com/ggonzalez94/nearcompat/internal/errors"
)

// Allowlist restricts which command paths may run. An entry allows the path
// itself and everything below it, so "history" allows "history list".
// An empty allowlist allows everything.
type Allowlist []string

func ParseAllowlist(csv string) Allowlist {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make(Allowlist, 0, len(parts))
	for _, part := range parts {
		if v := normalize(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (a Allowlist) Check(commandPath string) error {
	if len(a) == 0 {
		return nil
	}
	normPath := normalize(commandPath)
	for _, allowed := range a {
		allowed = normalize(allowed)
		if allowed == normPath || strings.HasPrefix(normPath, allowed+" ") {
			return nil
		}
	}
	return clierr.New(clierr.CodeBlocked, "command blocked by --enable-commands policy: "+normPath)
}

func normalize(v string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(v)))
	return strings.Join(parts, " ")
}
