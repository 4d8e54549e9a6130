// Package serialize converts stored records into wire-safe structures:
// identifiers become their canonical string form, timestamps become
// ISO-8601 text, dates become "YYYY-MM-DD". Applying it to an already
// serialized value is a no-op.
package serialize

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"estate-backend/internal/models"
)

// Record flattens a typed record into a map keyed by its json tags, with
// every value passed through Document. The primary identifier surfaces
// under "id" via its tag.
func Record(rec any) map[string]any {
	rv := reflect.ValueOf(rec)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if tag == "-" {
			continue
		}
		if tag == "" {
			if field.Anonymous {
				for k, v := range Record(rv.Field(i).Interface()) {
					out[k] = v
				}
				continue
			}
			tag = field.Name
		}
		out[tag] = Document(rv.Field(i).Interface())
	}
	return out
}

// Document renders a single stored value wire-safe, recursing depth-first
// through maps, slices and nested records. nil propagates as nil.
func Document(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case uuid.UUID:
		return val.String()
	case *uuid.UUID:
		if val == nil {
			return nil
		}
		return val.String()
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.UTC().Format(time.RFC3339)
	case models.Date:
		return val.String()
	case *models.Date:
		if val == nil {
			return nil
		}
		return val.String()
	case datatypes.JSON:
		// already a JSON document, emit as-is
		return json.RawMessage(val)
	case json.RawMessage:
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Document(item)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return Document(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Document(rv.Index(i).Interface())
		}
		return out
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = Document(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := iter.Key().Interface().(string)
			if !ok {
				key = iter.Key().String()
			}
			out[key] = Document(iter.Value().Interface())
		}
		return out
	case reflect.Struct:
		return Record(v)
	}
	return v
}
