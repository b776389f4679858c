package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
	"github.com/lyraproj/objx/cli"
	"github.com/stretchr/testify/require"
)

func inTestdata(t *testing.T, f func()) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(filepath.Join(wd, `testdata`)))
	defer func() {
		_ = os.Chdir(wd)
	}()
	f()
}

func TestMerge_extend(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge(`--strategy`, `extend`, `--render-as`, `json`, `target.yaml`, `mixin.yaml`)
		require.NoError(t, err)
		require.Equal(t, `{"id":"mixin","active":true,"bgColor":"red","rank":"99%"}`+"\n", string(result))
	})
}

func TestMerge_augment(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge(`--strategy`, `augment`, `--render-as`, `json`, `target.yaml`, `mixin.yaml`)
		require.NoError(t, err)
		require.Equal(t, `{"id":"test","active":false,"bgColor":"red","rank":"99%"}`+"\n", string(result))
	})
}

func TestMerge_override(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge(`--strategy`, `override`, `--render-as`, `json`, `target.yaml`, `mixin.yaml`)
		require.NoError(t, err)
		require.Equal(t, `{"id":"mixin","active":true,"bgColor":"red"}`+"\n", string(result))
	})
}

func TestMerge_planInCurrentDirectory(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge()
		require.NoError(t, err)
		require.Equal(t, "id: test\nactive: false\nbgColor: red\nrank: 99%\nsize: 1\n", string(result))
	})
}

func TestMerge_sourceAndVar(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge(`--strategy`, `extend`, `--render-as`, `json`, `--source`, `conf.d/**/*.yaml`, `--var`, `size=3`, `target.yaml`)
		require.NoError(t, err)
		require.Equal(t, `{"id":"test","active":false,"bgColor":null,"size":3}`+"\n", string(result))
	})
}

func TestMerge_clone(t *testing.T) {
	inTestdata(t, func() {
		result, err := cli.ExecuteMerge(`--strategy`, `extend`, `--clone`, `--render-as`, `s`, `target.yaml`, `mixin.yaml`)
		require.NoError(t, err)
		require.Equal(t, `{"id": mixin, "active": true, "bgColor": red, "rank": 99%}`+"\n", string(result))
	})
}

func TestMerge_unknownStrategy(t *testing.T) {
	inTestdata(t, func() {
		_, err := cli.ExecuteMerge(`--strategy`, `deep`, `target.yaml`)
		re, ok := err.(issue.Reported)
		require.True(t, ok, `expected issue.Reported, got %v`, err)
		require.Equal(t, issue.Code(api.UnknownStrategy), re.Code())
	})
}

func TestMerge_version(t *testing.T) {
	result, err := cli.ExecuteMerge(`--version`)
	require.NoError(t, err)
	require.Contains(t, string(result), cli.Version())
}
