package record_test

import (
	"encoding/json"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/record"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestHash_insertionOrder(t *testing.T) {
	h := record.New()
	h.Put(`b`, 1)
	h.Put(`a`, 2)
	h.Put(`b`, 3)
	require.Equal(t, []string{`b`, `a`}, h.OwnKeys())
	v, ok := h.GetOwn(`b`)
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 2, h.Len())
}

func TestHash_zeroValue(t *testing.T) {
	var h record.Hash
	require.Equal(t, 0, h.Len())
	require.False(t, h.Has(`a`))
	h.Put(`a`, 1)
	v, ok := h.GetOwn(`a`)
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, `Object`, h.TypeName())
}

func TestHash_ownKeysIsCopy(t *testing.T) {
	h := record.FromPairs(`a`, 1)
	ks := h.OwnKeys()
	ks[0] = `x`
	require.Equal(t, []string{`a`}, h.OwnKeys())
}

func TestHash_inherit(t *testing.T) {
	parent := record.FromPairs(`color`, `red`)
	h := record.Inherit(parent)
	h.Put(`size`, 2)

	require.True(t, h.Has(`color`))
	_, own := h.GetOwn(`color`)
	require.False(t, own)
	v, ok := h.Get(`color`)
	require.True(t, ok)
	require.Equal(t, `red`, v)
	require.Equal(t, []string{`size`}, h.OwnKeys())
	require.Same(t, parent, h.Parent())

	h.Put(`color`, `blue`)
	v, _ = h.Get(`color`)
	require.Equal(t, `blue`, v)
	v, _ = parent.Get(`color`)
	require.Equal(t, `red`, v)

	h.Delete(`color`)
	v, _ = h.Get(`color`)
	require.Equal(t, `red`, v)
	require.Equal(t, []string{`size`}, h.OwnKeys())
}

func TestHash_typeName(t *testing.T) {
	require.Equal(t, api.ObjectTypeName, record.New().TypeName())
	require.Equal(t, `Date`, record.NewTyped(`Date`, nil).TypeName())
}

func TestFromMap_sorted(t *testing.T) {
	h := record.FromMap(map[string]interface{}{`c`: 1, `a`: 2, `b`: 3})
	require.Equal(t, []string{`a`, `b`, `c`}, h.OwnKeys())
	require.Equal(t, map[string]interface{}{`c`: 1, `a`: 2, `b`: 3}, h.ToMap())
}

func TestFromPairs_odd(t *testing.T) {
	require.Panics(t, func() { record.FromPairs(`a`) })
	require.Panics(t, func() { record.FromPairs(1, 2) })
}

func TestHash_String(t *testing.T) {
	h := record.FromPairs(`a`, 1, `b`, record.FromPairs(`c`, `x`))
	require.Equal(t, `{"a": 1, "b": {"c": x}}`, h.String())
}

func TestHash_JSON(t *testing.T) {
	h := record.New()
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,{"k":"v"}]}`), h))
	require.Equal(t, []string{`z`, `a`, `m`}, h.OwnKeys())
	a, _ := h.GetOwn(`a`)
	require.Equal(t, []string{`y`, `b`}, a.(*record.Hash).OwnKeys())

	bs, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":[1,{"k":"v"}]}`, string(bs))
}

func TestHash_JSON_notObject(t *testing.T) {
	err := json.Unmarshal([]byte(`[1,2]`), record.New())
	require.Error(t, err)
	if re, ok := err.(issue.Reported); ok {
		require.Equal(t, issue.Code(api.NotARecord), re.Code())
	}
}

func TestHash_YAML(t *testing.T) {
	h := record.New()
	require.NoError(t, yaml.Unmarshal([]byte("z: 1\na:\n  y: true\n  b: ~\n"), h))
	require.Equal(t, []string{`z`, `a`}, h.OwnKeys())
	a, _ := h.GetOwn(`a`)
	ah := a.(*record.Hash)
	require.Equal(t, []string{`y`, `b`}, ah.OwnKeys())
	b, ok := ah.GetOwn(`b`)
	require.True(t, ok)
	require.Nil(t, b)

	bs, err := yaml.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, "z: 1\na:\n    y: true\n    b: null\n", string(bs))
}

func TestHash_YAML_nestedInSequence(t *testing.T) {
	h := record.New()
	require.NoError(t, yaml.Unmarshal([]byte("list:\n  - z: 1\n    a: 2\n  - [x, {y: 1, b: 2}]\n"), h))
	l, _ := h.GetOwn(`list`)
	items := l.([]interface{})
	require.Len(t, items, 2)
	require.Equal(t, []string{`z`, `a`}, items[0].(*record.Hash).OwnKeys())
	inner := items[1].([]interface{})
	require.Equal(t, `x`, inner[0])
	require.Equal(t, []string{`y`, `b`}, inner[1].(*record.Hash).OwnKeys())

	bs, err := json.Marshal(h)
	require.NoError(t, err)
	require.Equal(t, `{"list":[{"z":1,"a":2},["x",{"y":1,"b":2}]]}`, string(bs))
}

func TestHash_YAML_notHash(t *testing.T) {
	require.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), record.New()))
}
