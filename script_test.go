package graft

import (
	"strings"
	"testing"
)

const sampleScript = `{
	"frames": [
		{"views": [
			{"type": "Box", "key": "a", "x": 10, "y": 10, "w": 32, "h": 32, "color": "#ff0000"},
			{"type": "Title", "text": "frame one"}
		]},
		{"views": [
			{"type": "Box", "key": "a", "x": 50, "y": 10, "w": 32, "h": 32, "color": "#ff0000"},
			{"type": "Panel", "children": [
				{"type": "Inner", "w": 8, "h": 8}
			]}
		]}
	]
}`

func TestLoadRenderScript(t *testing.T) {
	rs, err := LoadRenderScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("LoadRenderScript: %v", err)
	}
	if rs.NumFrames() != 2 {
		t.Errorf("NumFrames = %d, want 2", rs.NumFrames())
	}
}

func TestLoadRenderScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{"malformed json", `{"frames": [`, "parse render script"},
		{"no frames", `{"frames": []}`, "no frames"},
		{"missing type", `{"frames": [{"views": [{"x": 1}]}]}`, "missing type"},
		{"bad color", `{"frames": [{"views": [{"type": "B", "color": "red"}]}]}`, "bad color"},
		{"bad nested color", `{"frames": [{"views": [{"type": "P", "children": [{"type": "C", "color": "#zz"}]}]}]}`, "bad color"},
	}
	for _, tc := range cases {
		_, err := LoadRenderScript([]byte(tc.data))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err.Error(), tc.want)
		}
	}
}

func TestScriptFramesDriveReconciliation(t *testing.T) {
	rs, err := LoadRenderScript([]byte(sampleScript))
	if err != nil {
		t.Fatalf("LoadRenderScript: %v", err)
	}

	r := NewSceneRenderer()
	h := NewHost(r, r.Root())

	r.Apply(h.Render(rs.Frame(0)))
	if r.Root().NumChildren() != 2 {
		t.Fatalf("frame 0: root has %d children, want 2", r.Root().NumChildren())
	}
	boxEl := r.Root().ChildAt(0)
	if boxEl.X != 10 {
		t.Errorf("frame 0: box x = %v, want 10", boxEl.X)
	}

	muts := h.Render(rs.Frame(1))
	r.Apply(muts)

	// The keyed box survives and moves; the title is replaced by the
	// panel's inner view.
	if r.Root().ChildAt(0) != boxEl {
		t.Error("keyed box element should survive across frames")
	}
	if boxEl.X != 50 {
		t.Errorf("frame 1: box x = %v, want 50", boxEl.X)
	}
	if countKind(muts, MutationUpdate) != 1 {
		t.Errorf("log %v should contain exactly one update", mutationKinds(muts))
	}
}

func TestParseScriptColor(t *testing.T) {
	c, err := parseScriptColor("#ff8000")
	if err != nil {
		t.Fatalf("parseScriptColor: %v", err)
	}
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("color = %+v, want full red, no blue, opaque", c)
	}
	if c.G < 0.49 || c.G > 0.52 {
		t.Errorf("green = %v, want about 0.5", c.G)
	}

	c, err = parseScriptColor("#00000080")
	if err != nil {
		t.Fatalf("parseScriptColor with alpha: %v", err)
	}
	if c.A < 0.49 || c.A > 0.52 {
		t.Errorf("alpha = %v, want about 0.5", c.A)
	}

	if c, _ := parseScriptColor(""); c != ColorWhite {
		t.Error("empty color should default to white")
	}

	for _, bad := range []string{"ff0000", "#ff00", "#gggggg", "#ff00001"} {
		if _, err := parseScriptColor(bad); err == nil {
			t.Errorf("parseScriptColor(%q): expected error", bad)
		}
	}
}
