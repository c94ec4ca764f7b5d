package domain

import (
	"encoding/json"
	"fmt"
)

// ParamKind distinguishes the two shapes a raw token can take after
// coercion: a number or a string category.
type ParamKind int

const (
	ParamNumber ParamKind = iota
	ParamCategory
)

// Param is one element of a parametric prediction request. On the wire it is
// either a JSON number or a JSON string, matching the inference service
// contract.
type Param struct {
	Kind     ParamKind
	Number   float64
	Category string
}

func NumberParam(v float64) Param {
	return Param{Kind: ParamNumber, Number: v}
}

func CategoryParam(s string) Param {
	return Param{Kind: ParamCategory, Category: s}
}

func (p Param) String() string {
	if p.Kind == ParamNumber {
		return fmt.Sprintf("%g", p.Number)
	}
	return p.Category
}

func (p Param) MarshalJSON() ([]byte, error) {
	if p.Kind == ParamNumber {
		return json.Marshal(p.Number)
	}
	return json.Marshal(p.Category)
}

func (p *Param) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = NumberParam(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = CategoryParam(s)
		return nil
	}
	return fmt.Errorf("parameter must be a number or a string, got %s", data)
}
