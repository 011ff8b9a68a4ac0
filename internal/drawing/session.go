package drawing

import (
	"fmt"
	"math"
	"strings"

	"planner/internal/editor"
	"planner/internal/geometry"
	"planner/internal/placement"
	"planner/internal/topology"

	"github.com/gdamore/tcell/v2"
)

// ============================================================
// Session
// ============================================================

const (
	DefaultCell      = 10.0
	DefaultThickness = 10.0
	DefaultHeight    = 280.0
)

// Session is one interactive drawing run. It owns the wall snapshot and the
// undo stack; the engine packages only ever see copies.
type Session struct {
	screen    tcell.Screen
	tol       geometry.Tolerance
	validator *placement.Validator
	editor    *editor.Editor
	cell      float64

	walls   []geometry.Wall
	history [][]geometry.Wall
	nextID  int

	cx, cy int
	anchor *geometry.Point
	status string
}

type Option func(*Session)

// WithCell sets how many plan units one terminal cell covers.
func WithCell(units float64) Option {
	return func(s *Session) {
		if units > 0 {
			s.cell = units
		}
	}
}

func NewSession(screen tcell.Screen, tol geometry.Tolerance, validator *placement.Validator, ed *editor.Editor, opts ...Option) *Session {
	s := &Session{
		screen:    screen,
		tol:       tol,
		validator: validator,
		editor:    ed,
		cell:      DefaultCell,
		walls:     []geometry.Wall{},
		nextID:    1,
		status:    "space: start/commit  esc: cancel  s: split  m: merge  u: undo  q: quit",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the snapshot with walls and clears the undo stack.
func (s *Session) Load(walls []geometry.Wall) {
	s.walls = append([]geometry.Wall{}, walls...)
	s.history = nil
	s.nextID = 1
}

// Fit grows the cell size until the extent of the snapshot fits above the
// status line. It never zooms in.
func (s *Session) Fit() {
	if len(s.walls) == 0 {
		return
	}
	b := geometry.Extent(geometry.Elements(s.walls))
	w, h := s.screen.Size()
	if w < 2 || h < 3 {
		return
	}
	cell := math.Max(b.Max.X()/float64(w-1), b.Max.Y()/float64(h-2))
	if cell > s.cell {
		s.cell = math.Ceil(cell)
	}
}

// Walls returns a copy of the current snapshot.
func (s *Session) Walls() []geometry.Wall {
	return append([]geometry.Wall{}, s.walls...)
}

func (s *Session) Status() string {
	return s.status
}

// Cursor returns the cursor position in plan units after snapping.
func (s *Session) Cursor() geometry.Point {
	raw := geometry.Pt(float64(s.cx)*s.cell, float64(s.cy)*s.cell)
	radius := math.Min(s.validator.Rules().SnapTolerance, s.cell/2)
	if p, ok := geometry.Snap(raw, geometry.SnapPoints(s.walls, true, s.tol), radius); ok {
		return p
	}
	return raw
}

// Run draws and handles events until the user quits or the screen is
// finalised.
func (s *Session) Run() error {
	for {
		s.Draw()
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if s.HandleKey(ev) {
				return nil
			}
		}
	}
}

// ============================================================
// Input
// ============================================================

// HandleKey applies one key press and reports whether the session should
// end.
func (s *Session) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		s.move(0, -1)
	case tcell.KeyDown:
		s.move(0, 1)
	case tcell.KeyLeft:
		s.move(-1, 0)
	case tcell.KeyRight:
		s.move(1, 0)
	case tcell.KeyEscape:
		s.cancel()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			s.move(0, -1)
		case 'j':
			s.move(0, 1)
		case 'h':
			s.move(-1, 0)
		case 'l':
			s.move(1, 0)
		case ' ':
			s.place()
		case 's':
			s.split()
		case 'm':
			s.mergeLast()
		case 'u':
			s.undo()
		}
	}
	return false
}

func (s *Session) move(dx, dy int) {
	s.cx += dx
	s.cy += dy
	if s.cx < 0 {
		s.cx = 0
	}
	if s.cy < 0 {
		s.cy = 0
	}
}

func (s *Session) cancel() {
	if s.anchor != nil {
		s.anchor = nil
		s.status = "Wall cancelled"
	}
}

// place starts a wall at the cursor, or validates and commits the wall
// from the anchor to the cursor.
func (s *Session) place() {
	p := s.Cursor()
	if s.anchor == nil {
		s.anchor = &p
		s.status = fmt.Sprintf("Wall started at %v", p)
		return
	}

	candidate := geometry.Wall{
		ID:        s.freeID(),
		Start:     *s.anchor,
		End:       p,
		Thickness: DefaultThickness,
		Height:    DefaultHeight,
	}
	res := s.validator.ValidatePlacement(candidate, s.walls)
	if !res.IsValid {
		s.status = "Rejected: " + strings.Join(res.Errors, "; ")
		return
	}

	s.commit(append(s.Walls(), candidate))
	s.anchor = nil
	s.status = fmt.Sprintf("Added %s", candidate.ID)
	if len(res.Warnings) > 0 {
		s.status += " (" + strings.Join(res.Warnings, "; ") + ")"
	}
}

// freeID returns the next "w<n>" not taken by a wall in the snapshot.
func (s *Session) freeID() string {
	taken := make(map[string]bool, len(s.walls))
	for _, w := range s.walls {
		taken[w.ID] = true
	}
	for {
		id := fmt.Sprintf("w%d", s.nextID)
		if !taken[id] {
			return id
		}
		s.nextID++
	}
}

// split cuts the wall under the cursor at the cursor.
func (s *Session) split() {
	p := s.Cursor()
	near := s.validator.FindNearby(p, s.walls, s.cell/2)
	if len(near) == 0 {
		s.status = "No wall under cursor"
		return
	}
	target := near[0]
	_, at := geometry.ClosestParam(p, target)

	first, second, err := s.editor.SplitAt(target, at)
	if err != nil {
		s.status = fmt.Sprintf("Split failed: %v", err)
		return
	}

	next := make([]geometry.Wall, 0, len(s.walls)+1)
	for _, w := range s.walls {
		if w.ID == target.ID {
			next = append(next, first, second)
			continue
		}
		next = append(next, w)
	}
	s.commit(next)
	s.status = fmt.Sprintf("Split %s", target.ID)
}

// mergeLast merges the two most recent walls.
func (s *Session) mergeLast() {
	n := len(s.walls)
	if n < 2 {
		s.status = "Need two walls to merge"
		return
	}
	merged, err := s.editor.Merge(s.walls[n-2], s.walls[n-1])
	if err != nil {
		s.status = fmt.Sprintf("Merge failed: %v", err)
		return
	}
	s.commit(append(s.Walls()[:n-2], merged))
	s.status = fmt.Sprintf("Merged into %s", merged.ID)
}

func (s *Session) undo() {
	if len(s.history) == 0 {
		s.status = "Nothing to undo"
		return
	}
	s.walls = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.status = "Undone"
}

func (s *Session) commit(next []geometry.Wall) {
	s.history = append(s.history, s.walls)
	s.walls = next
}

// ============================================================
// Rendering
// ============================================================

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleJoint  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDraft  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCursor = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

func (s *Session) Draw() {
	s.screen.Clear()

	for _, w := range s.walls {
		s.drawSegment(w.Start, w.End, wallRune(w), styleWall)
	}
	for _, j := range geometry.Joints(s.walls, s.tol) {
		x, y := s.toCell(j.Position)
		s.setCell(x, y, '+', styleJoint)
	}

	cursor := s.Cursor()
	if s.anchor != nil {
		s.drawSegment(*s.anchor, cursor, '.', styleDraft)
		x, y := s.toCell(*s.anchor)
		s.setCell(x, y, 'o', styleDraft)
	}
	x, y := s.toCell(cursor)
	s.setCell(x, y, '@', styleCursor)

	s.drawStatus()
	s.screen.Show()
}

func (s *Session) drawStatus() {
	w, h := s.screen.Size()
	if h == 0 {
		return
	}
	joints := len(geometry.Joints(s.walls, s.tol))
	groups := len(geometry.Chain(s.walls, s.tol.Eps()))
	rooms := len(topology.Build(s.walls, s.tol).Rooms())
	cursor := s.Cursor()

	line := fmt.Sprintf(" %s | walls %d groups %d joints %d rooms %d | %v ", s.status, len(s.walls), groups, joints, rooms, cursor)
	if s.anchor != nil {
		draft := geometry.Wall{Start: *s.anchor, End: cursor}
		if !draft.IsDegenerate(s.tol) {
			line += fmt.Sprintf("%.0f deg ", s.validator.ValidateAngle(draft.AngleDegrees()))
		}
	}
	col := 0
	for _, r := range line {
		if col >= w {
			break
		}
		s.screen.SetContent(col, h-1, r, nil, styleStatus)
		col++
	}
	for ; col < w; col++ {
		s.screen.SetContent(col, h-1, ' ', nil, styleStatus)
	}
}

// drawSegment rasterises p..q onto the grid with Bresenham's algorithm.
func (s *Session) drawSegment(p, q geometry.Point, r rune, style tcell.Style) {
	x0, y0 := s.toCell(p)
	x1, y1 := s.toCell(q)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		s.setCell(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *Session) setCell(x, y int, r rune, style tcell.Style) {
	w, h := s.screen.Size()
	// Last row is the status line.
	if x < 0 || y < 0 || x >= w || y >= h-1 {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Session) toCell(p geometry.Point) (int, int) {
	return int(math.Round(p.X / s.cell)), int(math.Round(p.Y / s.cell))
}

func wallRune(w geometry.Wall) rune {
	d := w.Direction()
	switch {
	case math.Abs(d.Y) <= math.Abs(d.X)/4:
		return '-'
	case math.Abs(d.X) <= math.Abs(d.Y)/4:
		return '|'
	case d.X*d.Y > 0:
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
