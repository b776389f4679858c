package provider_test

import (
	"path/filepath"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/provider"
	"github.com/lyraproj/objx/record"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, code string, err error) {
	t.Helper()
	re, ok := err.(issue.Reported)
	require.True(t, ok, `expected issue.Reported, got %v`, err)
	require.Equal(t, issue.Code(code), re.Code())
}

func TestYAMLData(t *testing.T) {
	h, err := provider.YAMLData(`testdata/target.yaml`)
	require.NoError(t, err)
	require.Equal(t, []string{`id`, `active`, `bgColor`, `nested`}, h.OwnKeys())
	v, ok := h.GetOwn(`bgColor`)
	require.True(t, ok)
	require.Nil(t, v)
	v, _ = h.GetOwn(`active`)
	require.Equal(t, false, v)
	v, _ = h.GetOwn(`nested`)
	require.Equal(t, []string{`z`, `a`}, v.(*record.Hash).OwnKeys())
}

func TestYAMLData_missingAndEmpty(t *testing.T) {
	h, err := provider.YAMLData(`testdata/nosuchfile.yaml`)
	require.NoError(t, err)
	require.Equal(t, 0, h.Len())

	h, err = provider.YAMLData(`testdata/empty.yaml`)
	require.NoError(t, err)
	require.Equal(t, 0, h.Len())
}

func TestYAMLData_notHash(t *testing.T) {
	_, err := provider.YAMLData(`testdata/list.yaml`)
	requireCode(t, api.YamlNotHash, err)
}

func TestJSONData(t *testing.T) {
	h, err := provider.JSONData(`testdata/source.json`)
	require.NoError(t, err)
	require.Equal(t, []string{`id`, `bgColor`, `rank`, `active`}, h.OwnKeys())
	v, _ := h.GetOwn(`active`)
	require.Equal(t, true, v)
}

func TestJSONData_notHash(t *testing.T) {
	_, err := provider.JSONData(`testdata/list.json`)
	requireCode(t, api.JSONNotHash, err)
}

func TestTOMLData(t *testing.T) {
	h, err := provider.TOMLData(`testdata/source.toml`)
	require.NoError(t, err)
	require.Equal(t, []string{`title`, `count`, `server`, `users`}, h.OwnKeys())
	v, _ := h.GetOwn(`count`)
	require.Equal(t, int64(3), v)
	v, _ = h.GetOwn(`server`)
	server := v.(*record.Hash)
	require.Equal(t, []string{`port`, `host`}, server.OwnKeys())
	v, _ = h.GetOwn(`users`)
	users := v.([]interface{})
	require.Len(t, users, 1)
	name, _ := users[0].(*record.Hash).GetOwn(`name`)
	require.Equal(t, `a`, name)
}

func TestLoad(t *testing.T) {
	for _, p := range []string{`testdata/target.yaml`, `testdata/source.json`, `testdata/source.toml`} {
		h, err := provider.Load(p)
		require.NoError(t, err, p)
		require.NotZero(t, h.Len(), p)
	}
	_, err := provider.Load(`testdata/source.ini`)
	requireCode(t, api.UnsupportedFormat, err)
}

func TestLoadAll(t *testing.T) {
	rs, err := provider.LoadAll([]string{`testdata/target.yaml`, `testdata/source.json`})
	require.NoError(t, err)
	require.Len(t, rs, 2)

	_, err = provider.LoadAll([]string{`testdata/target.yaml`, `testdata/list.json`})
	require.Error(t, err)
}

func TestExpand(t *testing.T) {
	paths, err := provider.Expand([]string{`testdata/glob/*.yaml`, `testdata/glob/**/*.yaml`})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, filepath.FromSlash(`testdata/glob/x.yaml`), paths[0])
	require.ElementsMatch(t, []string{
		filepath.FromSlash(`testdata/glob/x.yaml`),
		filepath.FromSlash(`testdata/glob/a/y.yaml`),
		filepath.FromSlash(`testdata/glob/a/b/z.yaml`)}, paths)
}
