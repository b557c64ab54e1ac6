package device

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrVersionFormat is returned for version strings that can't be understood
var ErrVersionFormat = errors.New("unrecognised version string")

// Api identifies the flavour of the graphics API
type Api int

// Supported APIs
const (
	GL Api = iota
	GLES
)

func (a Api) String() string {
	switch a {
	case GL:
		return "OpenGL"
	case GLES:
		return "OpenGL ES"
	}
	return fmt.Sprintf("Api(%d)", int(a))
}

// Version is an API version of the session
type Version struct {
	Api   Api
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.Api, v.Major, v.Minor)
}

// AtLeast reports whether v is of the same Api as min and not older.
// Versions of different APIs never compare.
func (v Version) AtLeast(min Version) bool {
	if v.Api != min.Api {
		return false
	}
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// ParseVersion parses the string reported by GL_VERSION, like
// "4.6.0 NVIDIA 535.54" or "OpenGL ES 3.2 Mesa 23.0".
func ParseVersion(s string) (Version, error) {
	v := Version{Api: GL}
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "OpenGL ES") {
		v.Api = GLES
		s = strings.TrimSpace(strings.TrimPrefix(s, "OpenGL ES"))
		// "OpenGL ES-CM 1.1" style profiles
		if idx := strings.IndexByte(s, ' '); strings.HasPrefix(s, "-") && idx > 0 {
			s = s[idx+1:]
		}
	}

	if idx := strings.IndexByte(s, ' '); idx >= 0 {
		s = s[:idx]
	}
	nodes := strings.Split(s, ".")
	if len(nodes) < 2 {
		return Version{}, ErrVersionFormat
	}

	major, err := strconv.Atoi(nodes[0])
	if err != nil {
		return Version{}, ErrVersionFormat
	}
	minor, err := strconv.Atoi(nodes[1])
	if err != nil {
		return Version{}, ErrVersionFormat
	}
	v.Major = major
	v.Minor = minor
	return v, nil
}
