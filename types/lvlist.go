package types

import "reflect"

// Elem is the constraint on element types usable inside an LVList: any
// unsigned 8-, 16- or 32-bit integer, named or not (NWK, a cluster ID, a raw uint16 — all
// satisfy it), which covers every repeated-element field in the MT
// catalog (endpoint lists, cluster lists, short-address lists).
type Elem interface {
	~uint8 | ~uint16 | ~uint32
}

// LVList is a one-byte-count-prefixed sequence of same-typed elements, each
// serialized with its natural width.
type LVList[T Elem] []T

// AppendLVList appends a one-byte count followed by each element, widened
// to its natural size.
func AppendLVList[T Elem](w *Writer, list LVList[T]) error {
	if len(list) > 0xff {
		return ErrFieldTooLong
	}
	w.Uint8(uint8(len(list)))
	var zero T
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Uint8:
		for _, e := range list {
			w.Uint8(uint8(e))
		}
	case reflect.Uint16:
		for _, e := range list {
			w.Uint16(uint16(e))
		}
	case reflect.Uint32:
		for _, e := range list {
			w.Uint32(uint32(e))
		}
	}
	return nil
}

// DecodeLVList decodes a one-byte count followed by that many elements.
func DecodeLVList[T Elem](r *Reader) (LVList[T], error) {
	n, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	list := make(LVList[T], 0, n)
	var zero T
	switch reflect.ValueOf(zero).Kind() {
	case reflect.Uint8:
		for i := uint8(0); i < n; i++ {
			v, err := r.Uint8()
			if err != nil {
				return nil, err
			}
			list = append(list, T(v))
		}
	case reflect.Uint16:
		for i := uint8(0); i < n; i++ {
			v, err := r.Uint16()
			if err != nil {
				return nil, err
			}
			list = append(list, T(v))
		}
	case reflect.Uint32:
		for i := uint8(0); i < n; i++ {
			v, err := r.Uint32()
			if err != nil {
				return nil, err
			}
			list = append(list, T(v))
		}
	}
	return list, nil
}
