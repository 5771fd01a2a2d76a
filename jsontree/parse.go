package jsontree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ErrMalformed is returned for input that is not a single valid JSON document.
var ErrMalformed = errors.New("malformed json")

// Parse builds a tree from a JSON document, preserving object key order.
func Parse(data []byte) (*Node, error) {
	if !json.Valid(data) {
		return nil, ErrMalformed
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return build(value, dataType)
}

func build(raw []byte, dataType jsonparser.ValueType) (*Node, error) {
	switch dataType {
	case jsonparser.Null:
		return NewNull(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, err
		}
		return NewBool(b), nil
	case jsonparser.Number:
		return NewNumber(string(raw)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case jsonparser.Array:
		return buildArray(raw)
	case jsonparser.Object:
		return buildObject(raw)
	default:
		return nil, fmt.Errorf("%w: unexpected %s value", ErrMalformed, dataType)
	}
}

func buildArray(raw []byte) (*Node, error) {
	node := NewArray()

	var inner error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if inner != nil {
			return
		}
		if err != nil {
			inner = err
			return
		}

		child, err := build(value, dataType)
		if err != nil {
			inner = err
			return
		}
		node.Append(child)
	})
	if err == nil {
		err = inner
	}
	if err != nil {
		return nil, fmt.Errorf("array: %w", err)
	}

	return node, nil
}

func buildObject(raw []byte) (*Node, error) {
	node := NewObject()

	// jsonparser hands over keys already unescaped
	err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		child, err := build(value, dataType)
		if err != nil {
			return err
		}
		node.Set(string(key), child)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}

	return node, nil
}
