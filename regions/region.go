package regions

import (
	"encoding/json"
	"fmt"
	"image"

	"gopkg.in/yaml.v3"
)

// Region is a sub-rectangle of the atlas in atlas pixels. It is stored on
// disk as [x, y, w, h].
type Region struct {
	X, Y, W, H int
}

// Offset is the displacement applied when compositing a non-base layer.
// It is stored on disk as [dx, dy].
type Offset struct {
	DX, DY int
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp intersects r with [0,w]x[0,h]. The result is empty when r lies
// entirely outside the bounds.
func (r Region) Clamp(w, h int) Region {
	in := r.Rect().Intersect(image.Rect(0, 0, w, h))
	if in.Empty() {
		return Region{X: in.Min.X, Y: in.Min.Y}
	}
	return Region{X: in.Min.X, Y: in.Min.Y, W: in.Dx(), H: in.Dy()}
}

// Within reports whether r is non-empty and fully inside [0,w]x[0,h].
func (r Region) Within(w, h int) bool {
	return !r.Empty() && r.X >= 0 && r.Y >= 0 && r.X+r.W <= w && r.Y+r.H <= h
}

// Translate shifts r by (dx, dy).
func (r Region) Translate(dx, dy int) Region {
	r.X += dx
	r.Y += dy
	return r
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.X, r.Y, r.W, r.H)
}

func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.X, r.Y, r.W, r.H})
}

func (r *Region) UnmarshalJSON(b []byte) error {
	var nums []float64
	if err := json.Unmarshal(b, &nums); err != nil {
		return err
	}
	return r.fromNumbers(nums)
}

func (r Region) MarshalYAML() (interface{}, error) {
	return flowSeq(r.X, r.Y, r.W, r.H), nil
}

func (r *Region) UnmarshalYAML(value *yaml.Node) error {
	var nums []float64
	if err := value.Decode(&nums); err != nil {
		return err
	}
	return r.fromNumbers(nums)
}

func (r *Region) fromNumbers(nums []float64) error {
	if len(nums) != 4 {
		return fmt.Errorf("region must have 4 numbers, got %d", len(nums))
	}
	*r = Region{X: int(nums[0]), Y: int(nums[1]), W: int(nums[2]), H: int(nums[3])}
	return nil
}

func (o Offset) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{o.DX, o.DY})
}

func (o *Offset) UnmarshalJSON(b []byte) error {
	var nums []float64
	if err := json.Unmarshal(b, &nums); err != nil {
		return err
	}
	return o.fromNumbers(nums)
}

func (o Offset) MarshalYAML() (interface{}, error) {
	return flowSeq(o.DX, o.DY), nil
}

func (o *Offset) UnmarshalYAML(value *yaml.Node) error {
	var nums []float64
	if err := value.Decode(&nums); err != nil {
		return err
	}
	return o.fromNumbers(nums)
}

func (o *Offset) fromNumbers(nums []float64) error {
	if len(nums) != 2 {
		return fmt.Errorf("offset must have 2 numbers, got %d", len(nums))
	}
	*o = Offset{DX: int(nums[0]), DY: int(nums[1])}
	return nil
}

// flowSeq renders ints as a single-line YAML sequence.
func flowSeq(vals ...int) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vals {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}
	return n
}
