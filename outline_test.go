package grafik

import (
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func polygonPath(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

func outlinePixels(p path.Path) (order []pixel, count map[pixel]int) {
	count = make(map[pixel]int)
	StrokeOutline(p, func(x, y int) {
		order = append(order, pixel{x, y})
		count[pixel{x, y}]++
	})
	return order, count
}

func TestOutlineRectangle(t *testing.T) {
	p := polygonPath(true,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 3, Y: 0},
		vec.Vec2{X: 3, Y: 2}, vec.Vec2{X: 0, Y: 2})
	order, count := outlinePixels(p)

	if len(order) != 10 {
		t.Errorf("%d pixels plotted, want 10", len(order))
	}
	for px, n := range count {
		if n != 1 {
			t.Errorf("pixel %v plotted %d times", px, n)
		}
		onBorder := px.x == 0 || px.x == 3 || px.y == 0 || px.y == 2
		if !onBorder {
			t.Errorf("pixel %v is not on the border", px)
		}
	}
}

func TestOutlineOpen(t *testing.T) {
	p := polygonPath(false,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}, vec.Vec2{X: 4, Y: 4})
	order, count := outlinePixels(p)

	if len(order) != 9 || len(count) != 9 {
		t.Errorf("%d pixels plotted, %d distinct, want 9", len(order), len(count))
	}
	if order[0] != (pixel{0, 0}) || order[len(order)-1] != (pixel{4, 4}) {
		t.Errorf("unexpected end points %v, %v", order[0], order[len(order)-1])
	}
}

func TestOutlineAfterClose(t *testing.T) {
	// a LineTo after Close starts at the subpath start
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 3, Y: 0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: 3}}) &&
			yield(path.CmdClose, nil) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: 0, Y: -3}})
	}
	order, count := outlinePixels(p)

	for px, n := range count {
		if n != 1 {
			t.Errorf("pixel %v plotted %d times", px, n)
		}
	}
	last := order[len(order)-1]
	if last != (pixel{0, -3}) {
		t.Errorf("last pixel %v, want (0,-3)", last)
	}
	if count[pixel{0, -1}] != 1 {
		t.Errorf("segment after close not drawn: %v", order)
	}
}

func TestOutlineRounding(t *testing.T) {
	p := polygonPath(false, vec.Vec2{X: 0.4, Y: 0.6}, vec.Vec2{X: 2.5, Y: 0.6})
	order, _ := outlinePixels(p)
	want := []pixel{{0, 1}, {1, 1}, {2, 1}, {3, 1}}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("got %v, want %v", order, want)
			break
		}
	}
}

func TestOutlineCurve(t *testing.T) {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{{X: 0, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 0}})
	}
	order, _ := outlinePixels(p)
	if len(order) < 20 {
		t.Fatalf("only %d pixels plotted", len(order))
	}
	if order[0] != (pixel{0, 0}) || order[len(order)-1] != (pixel{20, 0}) {
		t.Errorf("unexpected end points %v, %v", order[0], order[len(order)-1])
	}
	for i := 1; i < len(order); i++ {
		a, b := order[i-1], order[i]
		if abs(a.x-b.x) > 1 || abs(a.y-b.y) > 1 || a == b {
			t.Errorf("pixels %v and %v are not neighbours", a, b)
		}
	}
}

func TestOutlineSinglePixel(t *testing.T) {
	p := polygonPath(true,
		vec.Vec2{X: 5.1, Y: 5.1}, vec.Vec2{X: 5.2, Y: 5.1}, vec.Vec2{X: 5.2, Y: 5.2})
	order, _ := outlinePixels(p)
	if len(order) != 1 || order[0] != (pixel{5, 5}) {
		t.Errorf("got %v", order)
	}
}
