package jam

import (
	"encoding"
	"math"
	"reflect"
	"strconv"

	"github.com/goccy/go-json"
)

// maxSafeInteger is the largest integer a 64-bit float represents exactly.
const maxSafeInteger = 1 << 53

// normalize rewrites the dynamic JSON value model according to the
// value-level encode flags before the codec runs. Concrete struct types and
// custom marshalers pass through untouched; the flags describe the generic
// value model, not reflective struct rewriting.
func normalize(v any, flags EncodeFlag, maxDepth int) (any, error) {
	return normalizeDepth(v, flags, maxDepth, 0)
}

func normalizeDepth(v any, flags EncodeFlag, maxDepth, depth int) (any, error) {
	if depth > maxDepth {
		return nil, errDepthExceeded(maxDepth)
	}

	switch val := v.(type) {
	case nil:
		return nil, nil
	case bool, string:
		return val, nil
	case json.RawMessage:
		return val, nil
	case json.Number:
		if flags&EncodeBigIntAsString != 0 {
			if i, err := val.Int64(); err == nil && outsideSafeRange(i) {
				return val.String(), nil
			}
		}
		return val, nil
	case float64:
		return normalizeFloat(val, flags), nil
	case float32:
		return normalizeFloat(float64(val), flags), nil
	case int:
		return normalizeInt(int64(val), flags), nil
	case int64:
		return normalizeInt(val, flags), nil
	case uint:
		return normalizeUint(uint64(val), flags), nil
	case uint64:
		return normalizeUint(val, flags), nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			norm, err := normalizeDepth(elem, flags, maxDepth, depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = norm
		}
		return out, nil
	case []any:
		if len(val) == 0 && flags&EncodeForceObject != 0 {
			return map[string]any{}, nil
		}
		out := make([]any, len(val))
		for i, elem := range val {
			norm, err := normalizeDepth(elem, flags, maxDepth, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	}

	return normalizeReflect(v, flags, maxDepth, depth)
}

// normalizeReflect handles named container and numeric types that miss the
// typed switch. Anything else, including structs and custom marshalers,
// passes through to the codec unchanged.
func normalizeReflect(v any, flags EncodeFlag, maxDepth, depth int) (any, error) {
	if _, ok := v.(json.Marshaler); ok {
		return v, nil
	}
	if _, ok := v.(encoding.TextMarshaler); ok {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// Byte slices marshal as base64 strings, not sequences.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, nil
		}
		if rv.Len() == 0 && flags&EncodeForceObject != 0 {
			return map[string]any{}, nil
		}
		out := make([]any, rv.Len())
		for i := range out {
			norm, err := normalizeDepth(rv.Index(i).Interface(), flags, maxDepth, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v, nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			norm, err := normalizeDepth(iter.Value().Interface(), flags, maxDepth, depth+1)
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = norm
		}
		return out, nil
	case reflect.Int, reflect.Int64:
		return normalizeInt(rv.Int(), flags), nil
	case reflect.Uint, reflect.Uint64:
		return normalizeUint(rv.Uint(), flags), nil
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float(), flags), nil
	}
	return v, nil
}

// normalizeFloat forces a decimal point onto finite floats with a zero
// fractional part so they round-trip as floats.
func normalizeFloat(f float64, flags EncodeFlag) any {
	if flags&EncodePreserveZeroFraction == 0 {
		return f
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return f
	}
	return json.RawMessage(strconv.FormatFloat(f, 'f', 1, 64))
}

func normalizeInt(i int64, flags EncodeFlag) any {
	if flags&EncodeBigIntAsString != 0 && outsideSafeRange(i) {
		return strconv.FormatInt(i, 10)
	}
	return i
}

func normalizeUint(u uint64, flags EncodeFlag) any {
	if flags&EncodeBigIntAsString != 0 && u > maxSafeInteger {
		return strconv.FormatUint(u, 10)
	}
	return u
}

func outsideSafeRange(i int64) bool {
	return i > maxSafeInteger || i < -maxSafeInteger
}
