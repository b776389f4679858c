package cli

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	tag  string
	time string
	sha  string
}

func getVersion() *version {
	v := &version{tag: BuildTag, time: BuildTime, sha: BuildSHA}
	if v.tag == `` {
		v.tag = `dirty`
	}
	if v.sha == `` {
		v.sha = `unknown`
	}
	return v
}

// Version returns the version string that objx reports, <Git SHA>-<Git Tag>
func Version() string {
	return getVersion().String()
}

func (v *version) String() string {
	if v.time != `` {
		return fmt.Sprintf("%s-%s (%s)", v.sha, v.tag, v.time)
	}
	return fmt.Sprintf("%s-%s", v.sha, v.tag)
}
