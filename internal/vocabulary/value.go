// Package vocabulary loads the vocabulary document into a tagged-variant
// JSON value and exposes its leaf terms for browsing and search.
package vocabulary

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a tagged-variant JSON value: exactly one variant is populated,
// selected by Kind.
type Value struct {
	kind   Kind
	bool   bool
	number json.Number
	str    string
	items  []*Value
	keys   []string
	fields map[string]*Value
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) Bool() bool {
	return v.bool
}

func (v *Value) Number() json.Number {
	return v.number
}

// Text returns the string variant.
func (v *Value) Text() string {
	return v.str
}

func (v *Value) Items() []*Value {
	return v.items
}

// Keys returns the object keys in document order.
func (v *Value) Keys() []string {
	return v.keys
}

func (v *Value) Field(key string) *Value {
	return v.fields[key]
}

// Decode parses a JSON document into a Value tree. Numbers are kept as
// json.Number to avoid float rounding of identifiers.
func Decode(r io.Reader) (*Value, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return value, nil
}

func decodeValue(decoder *json.Decoder) (*Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return decodeToken(decoder, token)
}

func decodeToken(decoder *json.Decoder, token json.Token) (*Value, error) {
	switch t := token.(type) {
	case nil:
		return &Value{kind: KindNull}, nil
	case bool:
		return &Value{kind: KindBool, bool: t}, nil
	case json.Number:
		return &Value{kind: KindNumber, number: t}, nil
	case string:
		return &Value{kind: KindString, str: t}, nil
	case json.Delim:
		switch t {
		case '[':
			value := &Value{kind: KindArray, items: []*Value{}}
			for decoder.More() {
				item, err := decodeValue(decoder)
				if err != nil {
					return nil, errors.WithStack(err)
				}

				value.items = append(value.items, item)
			}

			// consume ']'
			if _, err := decoder.Token(); err != nil {
				return nil, errors.WithStack(err)
			}

			return value, nil
		case '{':
			value := &Value{kind: KindObject, keys: []string{}, fields: map[string]*Value{}}
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, errors.WithStack(err)
				}

				key, ok := keyToken.(string)
				if !ok {
					return nil, errors.Errorf("unexpected object key token '%v'", keyToken)
				}

				field, err := decodeValue(decoder)
				if err != nil {
					return nil, errors.WithStack(err)
				}

				value.keys = append(value.keys, key)
				value.fields[key] = field
			}

			// consume '}'
			if _, err := decoder.Token(); err != nil {
				return nil, errors.WithStack(err)
			}

			return value, nil
		}
	}

	return nil, errors.Errorf("unexpected token '%v'", token)
}

// Walk visits every value of the tree depth-first, object fields in
// document order. The path holds the keys and array indices leading to the
// visited value.
func Walk(value *Value, visit func(path []string, value *Value) error) error {
	return walk(value, nil, visit)
}

func walk(value *Value, path []string, visit func(path []string, value *Value) error) error {
	if err := visit(path, value); err != nil {
		return errors.WithStack(err)
	}

	switch value.kind {
	case KindArray:
		for i, item := range value.items {
			if err := walk(item, append(path, strconv.Itoa(i)), visit); err != nil {
				return errors.WithStack(err)
			}
		}
	case KindObject:
		for _, key := range value.keys {
			if err := walk(value.fields[key], append(path, key), visit); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	return nil
}
