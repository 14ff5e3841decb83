package hash

import (
	"encoding/binary"
	"math"
	"reflect"
	"unsafe"
)

// Func hashes a key of type K to 32 bits
type Func[K comparable] func(key K) uint32

// For returns a Func for K that feeds the raw representation of each key
// through fn. A nil fn selects Jenkins. The key kind is inspected once,
// so named types (type ID uint16, etc) take the same fast paths as their
// underlying types. Keys that compare equal always hash equal, which
// means +0/-0 floats are normalized and composite keys are walked field
// by field instead of hashing their memory.
func For[K comparable](fn Bytes) Func[K] {
	if fn == nil {
		fn = Jenkins
	}
	t := reflect.TypeOf((*K)(nil)).Elem()
	switch t.Kind() {
	case reflect.String:
		return func(key K) uint32 {
			s := *(*string)(unsafe.Pointer(&key))
			return fn(unsafe.Slice(unsafe.StringData(s), len(s)))
		}
	case reflect.Int8, reflect.Uint8, reflect.Bool:
		return func(key K) uint32 {
			return fn([]byte{*(*uint8)(unsafe.Pointer(&key))})
		}
	case reflect.Int16, reflect.Uint16:
		return func(key K) uint32 {
			return word(fn, uint64(*(*uint16)(unsafe.Pointer(&key))), 2)
		}
	case reflect.Int32, reflect.Uint32:
		return func(key K) uint32 {
			return word(fn, uint64(*(*uint32)(unsafe.Pointer(&key))), 4)
		}
	case reflect.Int, reflect.Uint, reflect.Int64, reflect.Uint64, reflect.Uintptr:
		size := int(t.Size())
		if size == 4 {
			return func(key K) uint32 {
				return word(fn, uint64(*(*uint32)(unsafe.Pointer(&key))), 4)
			}
		}
		return func(key K) uint32 {
			return word(fn, *(*uint64)(unsafe.Pointer(&key)), 8)
		}
	case reflect.Float32:
		return func(key K) uint32 {
			return word(fn, uint64(math.Float32bits(zero32(*(*float32)(unsafe.Pointer(&key))))), 4)
		}
	case reflect.Float64:
		return func(key K) uint32 {
			return word(fn, math.Float64bits(zero64(*(*float64)(unsafe.Pointer(&key)))), 8)
		}
	}
	return func(key K) uint32 {
		return fn(appendValue(nil, reflect.ValueOf(&key).Elem()))
	}
}

func word(fn Bytes, v uint64, n int) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return fn(buf[:n])
}

func zero32(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}

func zero64(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// appendValue appends a canonical encoding of v, consistent with ==
func appendValue(b []byte, v reflect.Value) []byte {
	switch v.Kind() {
	case reflect.String:
		s := v.String()
		b = binary.LittleEndian.AppendUint64(b, uint64(len(s)))
		return append(b, s...)
	case reflect.Bool:
		if v.Bool() {
			return append(b, 1)
		}
		return append(b, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.LittleEndian.AppendUint64(b, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(b, v.Uint())
	case reflect.Float32, reflect.Float64:
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(zero64(v.Float())))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(zero64(real(c))))
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(zero64(imag(c))))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return binary.LittleEndian.AppendUint64(b, uint64(v.Pointer()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			b = appendValue(b, v.Index(i))
		}
		return b
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			b = appendValue(b, v.Field(i))
		}
		return b
	case reflect.Interface:
		if v.IsNil() {
			return append(b, 0)
		}
		e := v.Elem()
		b = append(b, e.Type().String()...)
		return appendValue(b, e)
	}
	return b
}
