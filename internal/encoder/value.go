package encoder

// value.go renders object identifiers and argument values

import (
	"fmt"
	"strconv"
)

// encodeObject renders a value in object identifier position (the name of a
// field or object).  Strings and tokens render bare (no quotes), numbers in
// decimal.  A two-element list whose second element is not itself a list is
// the alias pair form; only the first element's token text is emitted (the
// alias is dropped - a known limitation of the query syntax modeled here).
func encodeObject(obj interface{}) (string, error) {
	switch o := obj.(type) {
	case Token:
		return string(o), nil
	case String:
		return string(o), nil
	case List:
		if len(o) == 2 {
			if _, ok := o[1].(List); !ok {
				return textOf(o[0])
			}
		}
	default:
		if s, ok := numberText(obj); ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("cannot encode %v (%T) as an object identifier", obj, obj)
}

// encodeArgument renders one key:value argument pair.
func encodeArgument(a Arg) (string, error) {
	v, err := encodeArgValue(a.Value)
	if err != nil {
		return "", fmt.Errorf("%w in argument %q", err, a.Name)
	}
	return a.Name + ":" + v, nil
}

// encodeArgValue renders an argument value.  Dispatch follows a fixed
// priority: bare token, variable reference, nested input object, quoted
// string, number, then embedded sub-query.  The order matters for lists: a
// two-element list opening with the "$" marker is always a variable
// reference, never a nested object.
func encodeArgValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case Token:
		return string(v), nil
	case Var:
		return "$" + string(v), nil
	case List:
		if len(v) == 2 && v[0] == varMarker {
			name, err := textOf(v[1])
			if err != nil {
				return "", fmt.Errorf("%w in variable reference", err)
			}
			return "$" + name, nil
		}
		pairs, err := asArgs(v)
		if err != nil {
			return "", fmt.Errorf("%w in input object", err)
		}
		return encodeInputObject(pairs)
	case []Arg:
		return encodeInputObject(v)
	case String:
		// Embedded double quotes are not escaped.
		return `"` + string(v) + `"`, nil
	case SubQuery:
		return Encode(List(v))
	}
	if s, ok := numberText(value); ok {
		return s, nil
	}
	// anything else may be a whole graph node - let the encoder decide
	return Encode(value)
}

// encodeInputObject renders an ordered list of Arg pairs as {k:v,...} with
// no trailing comma.  Insertion order of the pairs is preserved.
func encodeInputObject(pairs []Arg) (string, error) {
	s := "{"
	for i, a := range pairs {
		if i > 0 {
			s += ","
		}
		enc, err := encodeArgument(a)
		if err != nil {
			return "", err
		}
		s += enc
	}
	return s + "}", nil
}

// textOf returns the bare text of an identifier-like value (token, string,
// or number).
func textOf(v interface{}) (string, error) {
	switch t := v.(type) {
	case Token:
		return string(t), nil
	case String:
		return string(t), nil
	}
	if s, ok := numberText(v); ok {
		return s, nil
	}
	return "", fmt.Errorf("cannot use %v (%T) as a name", v, v)
}

// numberText renders any of the common Go numeric types in decimal.
func numberText(v interface{}) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	}
	return "", false
}
