package paint

import (
	"io"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/example/paintpad/internal/geom"
)

// Options configures a Controller.
type Options struct {
	// Tool is the tool active at start.
	Tool  Tool
	Style Style
	// Logger receives one line per committed shape. Nil discards.
	Logger *log.Logger
	// Verbose also logs every distance computed by the select tool and the
	// redraw requests each frame coalesced.
	Verbose bool
}

// Controller owns the drawing and turns pointer gestures into shapes, pans
// and selections according to the active tool. It is not safe for
// concurrent use; every method must be called from the goroutine that runs
// the UI loop.
type Controller struct {
	ctx      Context
	attached bool
	view     Viewport
	tool     Tool
	style    Style
	drawing  Drawing
	bounds   geom.Bounds
	selected int

	input     Dispatcher
	frames    Frames
	coalesced int
	active    *Subscription

	log     *log.Logger
	verbose bool
}

// NewController returns a controller for a canvas laid out as view. No
// surface is attached yet, so nothing is drawn until Attach.
func NewController(view Viewport, opts Options) *Controller {
	style := opts.Style
	if style.Default == nil {
		style.Default = DefaultStyle.Default
	}
	if style.Highlight == nil {
		style.Highlight = DefaultStyle.Highlight
	}
	if style.LineWidth <= 0 {
		style.LineWidth = DefaultStyle.LineWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		ctx:      nopContext{},
		view:     view,
		tool:     opts.Tool,
		style:    style,
		bounds:   geom.NewBounds(view.DeviceWidth, view.DeviceHeight),
		selected: -1,
		log:      logger,
		verbose:  opts.Verbose,
	}
}

// Attach makes ctx the drawing surface. The pan accumulated so far is
// applied to it and a full redraw is scheduled. A nil ctx detaches.
func (c *Controller) Attach(ctx Context) {
	if ctx == nil {
		c.Detach()
		return
	}
	c.ctx = ctx
	c.attached = true
	ctx.Translate(c.view.Pan.X, c.view.Pan.Y)
	c.requestRedraw(nil)
}

// Detach drops the drawing surface. Gestures keep working and shapes keep
// being committed; they show up once a surface is attached again.
func (c *Controller) Detach() {
	c.ctx = nopContext{}
	c.attached = false
}

// Attached reports whether a drawing surface is attached.
func (c *Controller) Attached() bool { return c.attached }

func (c *Controller) Tool() Tool          { return c.tool }
func (c *Controller) SetTool(t Tool)      { c.tool = t }
func (c *Controller) Viewport() Viewport  { return c.view }
func (c *Controller) Drawing() *Drawing   { return &c.drawing }
func (c *Controller) Bounds() geom.Bounds { return c.bounds }

// Input returns the dispatcher that delivers pointer-move, pointer-up and
// cancel events to the gesture in progress.
func (c *Controller) Input() *Dispatcher { return &c.input }

// Resize replaces the canvas layout, keeping the current pan.
func (c *Controller) Resize(v Viewport) {
	v.Pan = c.view.Pan
	c.view = v
	c.bounds.Add(geom.Pt(v.DeviceWidth, v.DeviceHeight))
	c.requestRedraw(nil)
}

// Selection returns the highlighted shape and its index.
func (c *Controller) Selection() (Shape, int, bool) {
	if c.selected < 0 {
		return nil, -1, false
	}
	return c.drawing.At(c.selected), c.selected, true
}

// Frame runs the redraw requested since the last frame, if any. The UI
// loop calls it once per animation frame.
func (c *Controller) Frame() bool {
	skipped := c.frames.Coalesced - c.coalesced
	c.coalesced = c.frames.Coalesced
	ran := c.frames.Run()
	if ran && c.verbose && skipped > 0 {
		c.log.Printf("frame: %d redraw requests coalesced", skipped)
	}
	return ran
}

// FramePending reports whether a redraw is waiting for the next frame.
func (c *Controller) FramePending() bool { return c.frames.Pending() }

// Redraw draws the whole scene immediately.
func (c *Controller) Redraw() {
	Redraw(c.ctx, &c.drawing, c.bounds, c.selected, c.style)
}

// RenderTo draws the scene onto a fresh ctx as it appears on the canvas.
func (c *Controller) RenderTo(ctx Context) {
	ctx.Translate(c.view.Pan.X, c.view.Pan.Y)
	Redraw(ctx, &c.drawing, c.bounds, c.selected, c.style)
}

// requestRedraw schedules a full redraw for the next frame followed by
// preview, which draws the gesture in progress.
func (c *Controller) requestRedraw(preview func(ctx Context)) {
	c.frames.Request(func() {
		c.Redraw()
		if preview != nil {
			c.ctx.SetStrokeColor(c.style.Default)
			preview(c.ctx)
		}
	})
}

// PointerDown starts a gesture for the active tool at a client position.
// The returned subscription stays open until the gesture's pointer-up or
// cancel. The select tool finishes at once and returns nil.
//
// A gesture still open from an earlier pointer-down is cancelled first.
func (c *Controller) PointerDown(client geom.Point) *Subscription {
	if !c.active.Closed() {
		c.input.Cancel()
	}

	g := gesture{c: c, view: c.view, start: client, last: client}
	at := g.view.ToCanvas(client)

	var l gestureListener
	switch c.tool {
	case ToolPath:
		c.bounds.Add(at)
		l = &pathGesture{gesture: g, path: NewPath(at)}
	case ToolRect:
		c.bounds.Add(at)
		l = &rectGesture{gesture: g, anchor: at}
	case ToolCircle:
		c.bounds.Add(at)
		l = &circleGesture{gesture: g, anchor: at}
	case ToolMove:
		l = &panGesture{gesture: g}
	case ToolSelect:
		c.selectAt(at)
		return nil
	default:
		return nil
	}

	sub := c.input.Subscribe(l)
	l.bind(sub)
	c.active = sub
	return sub
}

func (c *Controller) selectAt(at geom.Point) {
	var trace func(int, Shape, float64)
	if c.verbose {
		trace = func(i int, s Shape, d float64) {
			c.log.Printf("select: %s[%d] distance %.3f", s.Kind(), i, d)
		}
	}
	if i, d, ok := c.drawing.Closest(at, SelectThreshold, trace); ok {
		c.selected = i
		c.log.Printf("selected %s %s at distance %.3f", c.drawing.At(i).Kind(), c.drawing.At(i).ShapeID(), d)
	} else {
		c.selected = -1
	}
	c.requestRedraw(nil)
}

func (c *Controller) commit(s Shape) {
	s.meta().ID = uuid.NewString()
	i := c.drawing.Push(s)
	c.log.Printf("committed %s %s (#%d)", s.Kind(), s.ShapeID(), i)
	c.requestRedraw(nil)
}

func (c *Controller) pan(dx, dy float64) {
	c.view.Pan = c.view.Pan.Add(dx, dy)
	c.ctx.Translate(dx, dy)
	c.requestRedraw(nil)
}

type gestureListener interface {
	Listener
	bind(sub *Subscription)
}

// gesture is the state shared by every drag gesture. view is captured at
// pointer-down and used for the whole gesture.
type gesture struct {
	c     *Controller
	sub   *Subscription
	view  Viewport
	start geom.Point
	last  geom.Point
}

func (g *gesture) bind(sub *Subscription) { g.sub = sub }

// scaled returns the client-space offset from the pointer-down position to
// client in canvas units.
func (g *gesture) scaled(client geom.Point) (dx, dy float64) {
	sx, sy := g.view.Scale()
	dx, dy = client.Sub(g.start)
	return dx * sx, dy * sy
}

type pathGesture struct {
	gesture
	path *Path
}

func (g *pathGesture) PointerMove(client geom.Point) {
	g.last = client
	p := g.view.ToCanvas(client)
	if g.path.Append(p) {
		g.c.bounds.Add(p)
	}
	g.c.requestRedraw(func(ctx Context) { DrawShape(ctx, g.path) })
}

func (g *pathGesture) PointerUp(geom.Point) {
	defer g.sub.Close()
	g.c.commit(g.path)
}

func (g *pathGesture) PointerCancel() { g.PointerUp(g.last) }

type rectGesture struct {
	gesture
	anchor        geom.Point
	width, height float64
}

func (g *rectGesture) rect() *Rect {
	return &Rect{Origin: g.anchor, Width: g.width, Height: g.height}
}

func (g *rectGesture) PointerMove(client geom.Point) {
	g.last = client
	g.width, g.height = g.scaled(client)
	r := g.rect()
	g.c.requestRedraw(func(ctx Context) { DrawShape(ctx, r) })
}

func (g *rectGesture) PointerUp(geom.Point) {
	defer g.sub.Close()
	if g.width == 0 || g.height == 0 {
		g.c.requestRedraw(nil)
		return
	}
	g.c.commit(g.rect())
	g.c.bounds.Add(g.anchor.Add(g.width, g.height))
}

func (g *rectGesture) PointerCancel() { g.PointerUp(g.last) }

type circleGesture struct {
	gesture
	anchor geom.Point
	// diameter is signed: negative when the drag went up or left.
	diameter float64
}

func (g *circleGesture) circle() *Circle {
	return &Circle{
		Center: g.anchor.Add(g.diameter/2, g.diameter/2),
		Radius: math.Abs(g.diameter) / 2,
	}
}

func (g *circleGesture) PointerMove(client geom.Point) {
	g.last = client
	g.diameter = math.Min(g.scaled(client))
	c := g.circle()
	g.c.requestRedraw(func(ctx Context) { DrawShape(ctx, c) })
}

func (g *circleGesture) PointerUp(geom.Point) {
	defer g.sub.Close()
	if g.diameter == 0 {
		g.c.requestRedraw(nil)
		return
	}
	g.c.commit(g.circle())
	g.c.bounds.Add(g.anchor.Add(g.diameter, g.diameter))
}

func (g *circleGesture) PointerCancel() { g.PointerUp(g.last) }

type panGesture struct {
	gesture
}

func (g *panGesture) PointerMove(client geom.Point) {
	sx, sy := g.view.Scale()
	dx, dy := client.Sub(g.last)
	g.last = client
	g.c.pan(dx*sx, dy*sy)
}

func (g *panGesture) PointerUp(geom.Point) { g.sub.Close() }

func (g *panGesture) PointerCancel() { g.sub.Close() }
