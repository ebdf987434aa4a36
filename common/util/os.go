package util

import (
	"strings"
)

// FilterOSArgs returns args with masked values for all flags not on whitelist.
// Both "--flag value" and "--flag=value" forms are handled.
func FilterOSArgs(args []string, whitelist []string) []string {
	var (
		sanitized           = make([]string, len(args))
		sanitizeNext        = false
		whitelistByFlagName = make(map[string]struct{}, len(whitelist))
	)
	for _, name := range whitelist {
		whitelistByFlagName[strings.ToLower(name)] = struct{}{}
	}
	for i, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			if sanitizeNext {
				sanitized[i] = strings.Repeat("*", len(arg))
			} else {
				sanitized[i] = arg
			}
			sanitizeNext = false
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		_, safe := whitelistByFlagName[strings.ToLower(name)]
		switch {
		case hasValue && !safe:
			sanitized[i] = "--" + name + "=" + strings.Repeat("*", len(value))
			sanitizeNext = false
		case hasValue:
			sanitized[i] = arg
			sanitizeNext = false
		default:
			sanitized[i] = arg
			sanitizeNext = !safe
		}
	}
	return sanitized
}
