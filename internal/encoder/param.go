package encoder

// param.go parses and renders operation variable declarations

import (
	"fmt"
)

// asParams normalizes the value of the OpParams tag to a flat []Param.
// Accepted forms are []Param, a single Param, or a List whose elements are
// Param records or list-form specs (see parseParam).
func asParams(v interface{}) ([]Param, error) {
	switch params := v.(type) {
	case []Param:
		return params, nil
	case Param:
		return []Param{params}, nil
	case List:
		out := make([]Param, len(params))
		for i, e := range params {
			switch spec := e.(type) {
			case Param:
				out[i] = spec
			case List:
				p, err := parseParam(spec)
				if err != nil {
					return nil, fmt.Errorf("%w in parameter spec %d", err, i)
				}
				out[i] = p
			default:
				return nil, fmt.Errorf("parameter spec %d is %T, not a Param or List", i, e)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot use %T as a parameter list", v)
}

// parseParam builds a Param record from the list spec form.  The shape of
// the list - not the values in it - decides what each position means:
//
//	(name type)                  no required flag, no default
//	(name type required)         required flag only
//	(name type required default) both; a nil/false third element with a
//	                             default present means "optional with default"
//
// The test is purely structural: exactly three elements bind the third
// position to the required flag, while a fourth element is always the
// default, never inspected for truthiness.
func parseParam(spec List) (Param, error) {
	if len(spec) < 2 || len(spec) > 4 {
		return Param{}, fmt.Errorf("parameter spec %v must have 2 to 4 elements", spec)
	}
	name, err := textOf(spec[0])
	if err != nil {
		return Param{}, fmt.Errorf("%w as parameter name", err)
	}
	typeName, err := textOf(spec[1])
	if err != nil {
		return Param{}, fmt.Errorf("%w as parameter type", err)
	}
	p := Param{Name: name, Type: typeName}
	if len(spec) > 2 {
		p.Required = spec[2] != nil && spec[2] != false
	}
	if len(spec) > 3 {
		p.Default = spec[3]
	}
	return p, nil
}

// encodeParam renders one operation variable declaration with no embedded
// whitespace: $name:Type, then "!" if required, then "=" and the encoded
// default if one is present.
func encodeParam(p Param) (string, error) {
	s := "$" + p.Name + ":" + p.Type
	if p.Required {
		s += "!"
	}
	if p.Default != nil {
		enc, err := encodeArgValue(p.Default)
		if err != nil {
			return "", fmt.Errorf("%w in default of parameter %q", err, p.Name)
		}
		s += "=" + enc
	}
	return s, nil
}
