package domain

import (
	"sort"

	"github.com/samber/lo"
)

// PartitionParameters splits params into static (configured) and dynamic
// (caller supplied) lists. Both lists keep ABI order; every parameter lands
// in exactly one of them. Config keys that match no parameter are ignored.
func PartitionParameters(params []ConstructorParameter, values FieldValues) Partition {
	p := Partition{
		Static:  []StaticParam{},
		Dynamic: []ConstructorParameter{},
	}

	for _, param := range params {
		if values.Has(param.Name) {
			p.Static = append(p.Static, StaticParam{Type: param.Type, Name: param.Name})
		} else {
			p.Dynamic = append(p.Dynamic, param)
		}
	}

	p.ArgNames = lo.Map(params, func(param ConstructorParameter, _ int) string {
		return param.Name
	})

	return p
}

// UnusedKeys returns config keys that do not name any constructor parameter
func UnusedKeys(params []ConstructorParameter, values FieldValues) []string {
	known := lo.SliceToMap(params, func(param ConstructorParameter) (string, struct{}) {
		return param.Name, struct{}{}
	})

	unused := lo.Filter(lo.Keys(values), func(key string, _ int) bool {
		_, ok := known[key]
		return !ok
	})
	sort.Strings(unused)
	return unused
}
