package geom

import "testing"

func TestPolylineBounds(t *testing.T) {
	tests := []struct {
		name string
		poly Polyline
		want Rect
	}{
		{
			name: "empty",
			poly: Polyline{},
			want: Rect{},
		},
		{
			name: "single point",
			poly: Polyline{Points: []Point{{5, 7}}},
			want: Rect{5, 7, 5, 7},
		},
		{
			name: "rectangle",
			poly: ClosedRect(10, 20, 30, 60),
			want: Rect{10, 20, 30, 60},
		},
		{
			name: "unordered points",
			poly: Polyline{Points: []Point{{3, -1}, {-2, 4}, {0, 0}}},
			want: Rect{-2, -1, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolylineTranslate(t *testing.T) {
	p := Polyline{Points: []Point{{1, 2}, {3, 4}}, Closed: true}
	got := p.Translate(10, -2)

	want := []Point{{11, 0}, {13, 2}}
	for i, pt := range got.Points {
		if pt != want[i] {
			t.Errorf("Translate point %d = %v, want %v", i, pt, want[i])
		}
	}
	if !got.Closed {
		t.Error("Translate dropped Closed flag")
	}
	if p.Points[0] != (Point{1, 2}) {
		t.Error("Translate mutated the receiver")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, -5, 20, 8}
	want := Rect{0, -5, 20, 10}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "disjoint",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{20, 0, 30, 10},
			want: false,
		},
		{
			name: "touching edges",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{10, 0, 20, 10},
			want: false,
		},
		{
			name: "overlapping",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{9, 9, 20, 20},
			want: true,
		},
		{
			name: "contained",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{2, 2, 8, 8},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircleBounds(t *testing.T) {
	c := Circle{Center: Point{5, 5}, R: 2}
	want := Rect{3, 3, 7, 7}
	if got := c.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
