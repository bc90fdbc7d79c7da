package panel

import "github.com/boxforge/boxforge/pkg/box"

// Side indexes the four sides of a drawn panel, clockwise from the top.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

var sideNames = [4]string{"top", "right", "bottom", "left"}

func (s Side) String() string { return sideNames[s] }

// neighbors maps each face panel's sides to the face that joins there.
// Box axes: x runs left to right, y back to front, z top down. Top and
// bottom panels are drawn with back at the top of the sheet, front and back
// panels with the box top up, left and right panels with the box top at the
// left of the sheet.
var neighbors = map[box.Face][4]box.Face{
	box.FaceTop:    {box.FaceBack, box.FaceRight, box.FaceFront, box.FaceLeft},
	box.FaceBottom: {box.FaceBack, box.FaceRight, box.FaceFront, box.FaceLeft},
	box.FaceFront:  {box.FaceTop, box.FaceRight, box.FaceBottom, box.FaceLeft},
	box.FaceBack:   {box.FaceTop, box.FaceRight, box.FaceBottom, box.FaceLeft},
	box.FaceLeft:   {box.FaceFront, box.FaceBottom, box.FaceBack, box.FaceTop},
	box.FaceRight:  {box.FaceFront, box.FaceBottom, box.FaceBack, box.FaceTop},
}

// malePhase assigns each joint edge its gender, per symmetry mode. Each
// joint pairs a male side on one panel with a female side on its neighbor.
//
// Under the mirror mode the left and right panels carry all the male edges;
// under the alternating mode genders alternate around every panel, so no
// panel has two male or two female edges meeting in a corner. Rotational
// symmetry derives its complement from traversal direction and reuses the
// mirror assignment for kerf phasing only.
var malePhase = map[box.Symmetry]map[box.Face][4]bool{
	box.SymXY: {
		box.FaceTop:    {false, false, false, false},
		box.FaceBottom: {false, false, false, false},
		box.FaceFront:  {true, false, true, false},
		box.FaceBack:   {true, false, true, false},
		box.FaceLeft:   {true, true, true, true},
		box.FaceRight:  {true, true, true, true},
	},
	box.SymAnti: {
		box.FaceTop:    {false, true, false, true},
		box.FaceBottom: {false, true, false, true},
		box.FaceFront:  {true, false, true, false},
		box.FaceBack:   {true, false, true, false},
		box.FaceLeft:   {true, false, true, false},
		box.FaceRight:  {true, false, true, false},
	},
	box.SymRotate: {
		box.FaceTop:    {false, false, false, false},
		box.FaceBottom: {false, false, false, false},
		box.FaceFront:  {true, false, true, false},
		box.FaceBack:   {true, false, true, false},
		box.FaceLeft:   {true, true, true, true},
		box.FaceRight:  {true, true, true, true},
	},
}
