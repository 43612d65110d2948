package nav

import (
	"strconv"
	"strings"
)

// Route names used across the app.
const (
	RouteHome        = "home"
	RouteColorPicker = "color_picker"
	RouteUserList    = "user_list"
	RouteUserDetail  = "user_detail/{id}"
)

// ParamID is the conventional name of the integer segment in
// parameterized routes.
const ParamID = "id"

// KeySelectedColor is the result-channel slot the color picker writes
// into its caller's state. One producer per key at a time.
const KeySelectedColor = "selected_color_key"

// Params carries route arguments as raw strings. Typed access goes
// through helpers like IntParam so malformed values surface as absence
// rather than errors.
type Params map[string]string

// IntParam reads name as an integer. A missing key or a value that does
// not parse both report absent.
func (p Params) IntParam(name string) (int, bool) {
	raw, ok := p[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// FillRoute substitutes params into a pattern's {name} segments, e.g.
// FillRoute("user_detail/{id}", Params{"id": "202"}) -> "user_detail/202".
// Segments without a matching param are left as-is.
func FillRoute(pattern string, params Params) string {
	segs := strings.Split(pattern, "/")
	for i, seg := range segs {
		name, ok := paramName(seg)
		if !ok {
			continue
		}
		if v, have := params[name]; have {
			segs[i] = v
		}
	}
	return strings.Join(segs, "/")
}

// ParseRoute matches a concrete route against a pattern and extracts
// its parameter segments. The second return is false when the concrete
// route does not match the pattern shape.
func ParseRoute(pattern, concrete string) (Params, bool) {
	ps := strings.Split(pattern, "/")
	cs := strings.Split(concrete, "/")
	if len(ps) != len(cs) {
		return nil, false
	}
	params := Params{}
	for i := range ps {
		if name, ok := paramName(ps[i]); ok {
			params[name] = cs[i]
			continue
		}
		if ps[i] != cs[i] {
			return nil, false
		}
	}
	return params, true
}

// RouteBase returns the leading segment of a route or pattern, which
// identifies the screen regardless of parameter values.
func RouteBase(route string) string {
	if i := strings.IndexByte(route, '/'); i >= 0 {
		return route[:i]
	}
	return route
}

func paramName(seg string) (string, bool) {
	if len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
