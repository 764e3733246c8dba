package wrike

import "strings"

// The ids and trackedDate query parameters are sent in the literal form the
// service has historically been queried with:
//
//	ids=['12345', '67890']
//	trackedDate={'start': '2024-01-01', 'end': '2024-01-31'}
//
// The documented encoding is JSON (["12345"], {"start": ...}). The literal
// form is kept until the JSON form has been checked against the live API.

// quoteLiteral quotes s with single quotes, switching to double quotes when
// s contains a single quote but no double quote.
func quoteLiteral(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// listLiteral renders values as ['a', 'b'].
func listLiteral(values []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteLiteral(v))
	}
	b.WriteByte(']')
	return b.String()
}

// mapLiteral renders key/value pairs, in the order given, as
// {'k1': 'v1', 'k2': 'v2'}. kv must have even length.
func mapLiteral(kv ...string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteLiteral(kv[i]))
		b.WriteString(": ")
		b.WriteString(quoteLiteral(kv[i+1]))
	}
	b.WriteByte('}')
	return b.String()
}
