package domain

// Representation is the wire format between repositories and the document
// store: a flat string-keyed map per record, with lists and maps nested
// as-is. Rehydration from a Representation is deliberately lenient: data
// already persisted is trusted, so malformed legacy records do not crash
// reads. The helpers below coerce the loose types a JSON round-trip
// produces (float64 numbers, []interface{} lists, map[string]interface{}
// maps) back into the entity field types, defaulting to zero values.
type Representation = map[string]interface{}

func repString(rep Representation, key string) string {
	if v, ok := rep[key].(string); ok {
		return v
	}
	return ""
}

func repFloat(rep Representation, key string) float64 {
	switch v := rep[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func repInt(rep Representation, key string) int {
	return int(repFloat(rep, key))
}

func repStringSlice(rep Representation, key string) []string {
	switch v := rep[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func repBoolMap(rep Representation, key string) map[string]bool {
	switch v := rep[key].(type) {
	case map[string]bool:
		out := make(map[string]bool, len(v))
		for k, b := range v {
			out[k] = b
		}
		return out
	case map[string]interface{}:
		out := make(map[string]bool, len(v))
		for k, item := range v {
			if b, ok := item.(bool); ok {
				out[k] = b
			}
		}
		return out
	}
	return nil
}
