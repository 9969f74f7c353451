// Package structural implements value semantics for the SDK shapes:
// field-by-field equality, a hash consistent with that equality, and the
// `{Field: value,...}` debug rendering that omits absent fields.
//
// Absent means a nil pointer, nil slice, nil map or an empty enum string.
// A nil slice and an empty slice are different values.
package structural

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

const multiplier = 31

var timeType = reflect.TypeOf(time.Time{})

// Equal reports whether a and b hold structurally equal values of the same type.
func Equal(a, b any) bool {
	return equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equal(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.Type() == timeType {
		return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equal(a.Elem(), b.Elem())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equal(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !equal(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32:
		return math.Float32bits(float32(a.Float())) == math.Float32bits(float32(b.Float()))
	case reflect.Float64:
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	default:
		return reflect.DeepEqual(a.Interface(), b.Interface())
	}
}

// Hash returns a structural hash of v. Values that are Equal hash equally.
func Hash(v any) uint64 {
	return hash(reflect.ValueOf(v))
}

func hash(v reflect.Value) uint64 {
	if !v.IsValid() {
		return 0
	}
	if v.Type() == timeType {
		return uint64(v.Interface().(time.Time).UnixNano())
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hash(v.Elem())
	case reflect.Struct:
		h := uint64(1)
		for i := 0; i < v.NumField(); i++ {
			h = multiplier*h + hash(v.Field(i))
		}
		return h
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return xxhash.Sum64(v.Bytes())
		}
		h := uint64(1)
		for i := 0; i < v.Len(); i++ {
			h = multiplier*h + hash(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		// Iteration order is random, so entries are combined commutatively.
		h := uint64(1)
		iter := v.MapRange()
		for iter.Next() {
			h += hash(iter.Key()) ^ hash(iter.Value())
		}
		return h
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32:
		return uint64(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		return math.Float64bits(v.Float())
	default:
		return 0
	}
}

// String renders v as `{Field1: value1,Field2: value2}`, skipping absent
// fields and keeping declaration order.
func String(v any) string {
	var sb strings.Builder
	write(&sb, reflect.ValueOf(v))
	return sb.String()
}

func write(sb *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		sb.WriteString("null")
		return
	}
	if v.Type() == timeType {
		sb.WriteString(v.Interface().(time.Time).UTC().Format(time.RFC3339Nano))
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("null")
			return
		}
		write(sb, v.Elem())
	case reflect.Struct:
		t := v.Type()
		sb.WriteByte('{')
		first := true
		for i := 0; i < v.NumField(); i++ {
			if !t.Field(i).IsExported() || Absent(v.Field(i)) {
				continue
			}
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(t.Field(i).Name)
			sb.WriteString(": ")
			write(sb, v.Field(i))
		}
		sb.WriteByte('}')
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			sb.WriteString("<" + strconv.Itoa(v.Len()) + " bytes>")
			return
		}
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, v.Index(i))
		}
		sb.WriteByte(']')
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			write(sb, k)
			sb.WriteByte('=')
			write(sb, v.MapIndex(k))
		}
		sb.WriteByte('}')
	case reflect.String:
		sb.WriteString(v.String())
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	default:
		sb.WriteString(v.Type().String())
	}
}

// Absent reports whether a field value counts as unset.
func Absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.String:
		return v.String() == ""
	default:
		return false
	}
}

// CopySlice returns a fresh slice with the elements of v. A nil input stays
// nil and an empty input stays empty.
func CopySlice[T any](v []T) []T {
	if v == nil {
		return nil
	}
	out := make([]T, len(v))
	copy(out, v)
	return out
}

// CopyMap returns a shallow copy of m, preserving nil.
func CopyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Append appends values to dst, allocating when dst is absent so that an
// append of zero values still yields a present, empty slice.
func Append[T any](dst []T, values ...T) []T {
	if dst == nil {
		dst = make([]T, 0, len(values))
	}
	return append(dst, values...)
}
