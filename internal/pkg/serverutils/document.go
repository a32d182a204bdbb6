package serverutils

import "fmt"

// StringifyIDs normalizes legacy note documents before serialization:
// every "_id" value becomes its string form, recursing into nested maps
// and lists. Other fields pass through untouched.
func StringifyIDs(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		if key == "_id" {
			out[key] = fmt.Sprint(value)
			continue
		}
		out[key] = stringifyValue(value)
	}
	return out
}

func stringifyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return StringifyIDs(v)
	case []interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = stringifyValue(item)
		}
		return items
	case []map[string]interface{}:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = StringifyIDs(item)
		}
		return items
	default:
		return value
	}
}
