package provider

import (
	"math/big"
	"sort"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
	"github.com/zclconf/go-cty/cty"
)

// FromCty converts a cty object or map value, such as an evaluated HCL block or a Terraform output, into
// a Hash. Attributes are added in sorted order. Nested objects and maps become nested Hash values, lists,
// sets, and tuples become []interface{}, numbers become int64 when they are integral and float64 otherwise.
// Null and unknown attribute values become nil.
func FromCty(v cty.Value) (*record.Hash, error) {
	t := v.Type()
	if v.IsNull() || !v.IsKnown() || !(t.IsObjectType() || t.IsMapType()) {
		return nil, api.Error(api.CtyNotObject, issue.H{`type`: t.FriendlyName()})
	}
	return ctyHash(v), nil
}

func ctyHash(v cty.Value) *record.Hash {
	vm := v.AsValueMap()
	keys := make([]string, 0, len(vm))
	for k := range vm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := record.NewWithCapacity(len(keys))
	for _, k := range keys {
		h.Put(k, ctyValue(vm[k]))
	}
	return h
}

func ctyValue(v cty.Value) interface{} {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return v.AsString()
	case t.Equals(cty.Bool):
		return v.True()
	case t.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i
			}
		}
		f, _ := bf.Float64()
		return f
	case t.IsObjectType() || t.IsMapType():
		return ctyHash(v)
	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		vs := v.AsValueSlice()
		a := make([]interface{}, len(vs))
		for i, e := range vs {
			a[i] = ctyValue(e)
		}
		return a
	}
	return nil
}
