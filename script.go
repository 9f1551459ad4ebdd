package graft

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// scriptView mirrors one view in a JSON render script frame.
type scriptView struct {
	Type     string       `json:"type"`
	Key      string       `json:"key,omitempty"`
	X        float64      `json:"x,omitempty"`
	Y        float64      `json:"y,omitempty"`
	W        float64      `json:"w,omitempty"`
	H        float64      `json:"h,omitempty"`
	Color    string       `json:"color,omitempty"`
	Text     string       `json:"text,omitempty"`
	Children []scriptView `json:"children,omitempty"`
}

// scriptFrame is one declarative frame: the full ordered view list.
type scriptFrame struct {
	Views []scriptView `json:"views"`
}

// renderScript is the top-level JSON structure for a render script.
type renderScript struct {
	Frames []scriptFrame `json:"frames"`
}

// RenderScript replays a scripted sequence of declarative frames, each a
// complete description of the scene. Feed successive frames to Host.Render
// to drive reconciliation scenarios from data, for demos and automated tests.
type RenderScript struct {
	frames []scriptFrame
}

// LoadRenderScript parses a JSON render script.
func LoadRenderScript(jsonData []byte) (*RenderScript, error) {
	var script renderScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse render script: %w", err)
	}
	if len(script.Frames) == 0 {
		return nil, fmt.Errorf("parse render script: no frames")
	}
	for fi, frame := range script.Frames {
		for _, v := range frame.Views {
			if err := validateScriptView(v); err != nil {
				return nil, fmt.Errorf("parse render script: frame %d: %w", fi, err)
			}
		}
	}
	return &RenderScript{frames: script.Frames}, nil
}

// NumFrames returns the number of frames in the script.
func (rs *RenderScript) NumFrames() int {
	return len(rs.frames)
}

// Frame builds the root description for the given frame index.
func (rs *RenderScript) Frame(i int) Description {
	views := rs.frames[i].Views
	return NewRoot(func() []Description {
		return scriptDescriptions(views)
	})
}

func scriptDescriptions(views []scriptView) []Description {
	descs := make([]Description, 0, len(views))
	for _, v := range views {
		descs = append(descs, scriptDescription(v))
	}
	return descs
}

func scriptDescription(v scriptView) Description {
	var d Description
	if len(v.Children) > 0 {
		children := v.Children
		d = NewSceneView(v.Type, func() []Description {
			return scriptDescriptions(children)
		})
	} else {
		color, _ := parseScriptColor(v.Color)
		d = NewView(v.Type, BoxContent{
			X: v.X, Y: v.Y,
			Width: v.W, Height: v.H,
			Color: color,
			Text:  v.Text,
		})
	}
	if v.Key != "" {
		d = d.WithKey(v.Key)
	}
	return d
}

func validateScriptView(v scriptView) error {
	if v.Type == "" {
		return fmt.Errorf("view missing type")
	}
	if v.Color != "" {
		if _, err := parseScriptColor(v.Color); err != nil {
			return err
		}
	}
	for _, c := range v.Children {
		if err := validateScriptView(c); err != nil {
			return err
		}
	}
	return nil
}

// parseScriptColor parses "#rrggbb" or "#rrggbbaa". An empty string is white.
func parseScriptColor(s string) (Color, error) {
	if s == "" {
		return ColorWhite, nil
	}
	if len(s) != 7 && len(s) != 9 || s[0] != '#' {
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	c := Color{A: 1}
	if len(s) == 9 {
		c.A = float64(v&0xff) / 255
		v >>= 8
	}
	c.B = float64(v&0xff) / 255
	c.G = float64(v>>8&0xff) / 255
	c.R = float64(v>>16&0xff) / 255
	return c, nil
}
