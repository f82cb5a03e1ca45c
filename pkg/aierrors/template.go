// Placeholder substitution for message templates
package aierrors

import "strings"

// renderTemplate replaces each {$name} token in tmpl with the corresponding
// value from fields. A token whose field is not present is left verbatim in
// the output, so a mis-bound construction is visible in the message instead
// of being silently blanked.
func renderTemplate(tmpl string, fields map[string]string) string {
	if len(fields) == 0 {
		return tmpl
	}
	out := tmpl
	for name, value := range fields {
		out = strings.ReplaceAll(out, "{$"+name+"}", value)
	}
	return out
}
