// internal/service/label_service.go
package service

import (
	"strings"
)

// DisplayLabel turns a backend enum value into something a page can show,
// e.g. "specific_automation" -> "Specific Automation".
func DisplayLabel(value string) string {
	if value == "" {
		return ""
	}
	words := strings.Split(strings.ReplaceAll(value, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
