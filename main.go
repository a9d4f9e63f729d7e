package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sqweek/dialog"

	"github.com/example/paintpad/internal/config"
	"github.com/example/paintpad/internal/geom"
	"github.com/example/paintpad/internal/paint"
	"github.com/example/paintpad/internal/raster"
)

const uiHeight = 56

type pointerSource int

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

type button struct {
	rect    image.Rectangle
	label   string
	active  func() bool
	onClick func()
}

func (b *button) contains(p geom.Point) bool {
	return p.X >= float64(b.rect.Min.X) && p.X < float64(b.rect.Max.X) &&
		p.Y >= float64(b.rect.Min.Y) && p.Y < float64(b.rect.Max.Y)
}

func (b *button) draw(dst *ebiten.Image, scale float64) {
	bg := color.RGBA{70, 70, 70, 255}
	if b.active != nil && b.active() {
		bg = color.RGBA{40, 110, 180, 255}
	}
	r := b.rect
	vector.DrawFilledRect(dst,
		float32(float64(r.Min.X)*scale), float32(float64(r.Min.Y)*scale),
		float32(float64(r.Dx())*scale), float32(float64(r.Dy())*scale), bg, false)
	ebitenutil.DebugPrintAt(dst, b.label, int(float64(r.Min.X+6)*scale), int(float64(r.Min.Y+8)*scale))
}

// shortcuts are checked in order; the last key pressed in a tick wins.
var shortcuts = []struct {
	key  ebiten.Key
	tool paint.Tool
}{
	{ebiten.KeyP, paint.ToolPath},
	{ebiten.KeyM, paint.ToolMove},
	{ebiten.KeyR, paint.ToolRect},
	{ebiten.KeyC, paint.ToolCircle},
	{ebiten.KeyS, paint.ToolSelect},
}

// saveResult is the outcome of the file picker.
type saveResult struct {
	path string
	err  error
}

type Game struct {
	ctrl    *paint.Controller
	canvas  *ebiten.Image
	buttons []*button
	log     *log.Logger

	// scale is the device scale factor; layoutW and layoutH are the screen
	// size in device pixels as last reported to Layout.
	scale            float64
	layoutW, layoutH int
	canvasW, canvasH int

	pointer *paint.Subscription
	source  pointerSource
	touchID ebiten.TouchID
	last    geom.Point
	status  string

	// The file picker runs on its own goroutine and reports on saves. The
	// snapshot itself is rendered by Update.
	saving   bool
	saves    chan saveResult
	pickFile func() (string, error)
	alert    func(error)
}

func pickPNG() (string, error) {
	return dialog.File().Filter("PNG image", "png").Title("Save drawing").Save()
}

func alertDialog(err error) {
	go dialog.Message("%s", err).Title("Save failed").Error()
}

func NewGame(cfg config.Config, logger *log.Logger) (*Game, error) {
	tool, err := cfg.InitialTool()
	if err != nil {
		return nil, err
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	view := paint.NewViewport(geom.Pt(0, uiHeight), float64(cfg.Width), float64(cfg.Height-uiHeight), 1)
	g := &Game{
		ctrl: paint.NewController(view, paint.Options{
			Tool:    tool,
			Style:   style,
			Logger:  logger,
			Verbose: cfg.Verbose,
		}),
		log:      logger,
		scale:    1,
		saves:    make(chan saveResult, 1),
		pickFile: pickPNG,
		alert:    alertDialog,
	}
	g.setupUI()
	return g, nil
}

func (g *Game) setupUI() {
	x := 12
	for _, t := range paint.Tools {
		g.buttons = append(g.buttons, &button{
			rect:    image.Rect(x, 12, x+72, 44),
			label:   t.String(),
			active:  func() bool { return g.ctrl.Tool() == t },
			onClick: func() { g.ctrl.SetTool(t) },
		})
		x += 80
	}
	g.buttons = append(g.buttons, &button{
		rect:    image.Rect(x+20, 12, x+92, 44),
		label:   "save",
		onClick: g.save,
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	g.layoutW = int(float64(outsideWidth) * g.scale)
	g.layoutH = int(float64(outsideHeight) * g.scale)
	return g.layoutW, g.layoutH
}

// resize matches the canvas backing store to the window. The controller
// redraws everything onto the new image once it is attached.
func (g *Game) resize() {
	clientW := float64(g.layoutW) / g.scale
	clientH := float64(g.layoutH)/g.scale - uiHeight
	view := paint.NewViewport(geom.Pt(0, uiHeight), clientW, clientH, g.scale)
	w, h := int(view.DeviceWidth), int(view.DeviceHeight)
	if w == g.canvasW && h == g.canvasH {
		return
	}
	g.canvasW, g.canvasH = w, h
	if g.canvas != nil {
		g.canvas.Dispose()
		g.canvas = nil
	}
	g.ctrl.Resize(view)
	if w <= 0 || h <= 0 {
		g.ctrl.Detach()
		return
	}
	g.canvas = ebiten.NewImage(w, h)
	g.ctrl.Attach(newScreenSurface(g.canvas))
}

func (g *Game) cursor() geom.Point {
	x, y := ebiten.CursorPosition()
	return geom.Pt(float64(x)/g.scale, float64(y)/g.scale)
}

func (g *Game) touch(id ebiten.TouchID) geom.Point {
	x, y := ebiten.TouchPosition(id)
	return geom.Pt(float64(x)/g.scale, float64(y)/g.scale)
}

func (g *Game) Update() error {
	g.resize()

	g.pollSave()
	for _, sc := range shortcuts {
		if inpututil.IsKeyJustPressed(sc.key) {
			g.ctrl.SetTool(sc.tool)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || !ebiten.IsFocused() {
		g.endGesture()
	}

	if g.pointer.Closed() {
		g.source = sourceNone
	}
	switch g.source {
	case sourceNone:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.press(g.cursor(), sourceMouse)
		} else if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touchID = ids[0]
			g.press(g.touch(ids[0]), sourceTouch)
		}
	case sourceMouse:
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.release(g.cursor())
		} else {
			g.move(g.cursor())
		}
	case sourceTouch:
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.release(g.last)
		} else {
			g.move(g.touch(g.touchID))
		}
	}
	return nil
}

func (g *Game) press(p geom.Point, src pointerSource) {
	if p.Y < uiHeight {
		for _, b := range g.buttons {
			if b.contains(p) {
				b.onClick()
				return
			}
		}
		return
	}
	if g.canvas == nil || !g.ctrl.Viewport().Contains(p) {
		return
	}
	g.last = p
	g.pointer = g.ctrl.PointerDown(p)
	if !g.pointer.Closed() {
		g.source = src
	}
}

func (g *Game) move(p geom.Point) {
	if p == g.last {
		return
	}
	g.last = p
	g.ctrl.Input().Move(p)
}

func (g *Game) release(p geom.Point) {
	g.ctrl.Input().Up(p)
	g.source = sourceNone
}

func (g *Game) endGesture() {
	if !g.pointer.Closed() {
		g.ctrl.Input().Cancel()
	}
	g.source = sourceNone
}

// save opens the file picker without blocking the game loop. Only one
// picker is open at a time.
func (g *Game) save() {
	if g.saving {
		return
	}
	g.endGesture()
	g.saving = true
	pick := g.pickFile
	go func() {
		path, err := pick()
		g.saves <- saveResult{path: path, err: err}
	}()
}

// pollSave finishes a save whose file name has been chosen and reports
// whether one did.
func (g *Game) pollSave() bool {
	select {
	case res := <-g.saves:
		g.finishSave(res)
		return true
	default:
		return false
	}
}

func (g *Game) finishSave(res saveResult) {
	g.saving = false
	err := res.err
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err == nil {
		err = g.writeSnapshot(res.path)
	}
	if err != nil {
		g.log.Printf("save: %v", err)
		g.alert(err)
	}
}

func (g *Game) writeSnapshot(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	s, err := raster.Snapshot(g.ctrl, g.canvasW, g.canvasH, color.White)
	if err != nil {
		return err
	}
	if err := s.WritePNG(path); err != nil {
		return err
	}
	g.status = "saved " + filepath.Base(path)
	g.log.Printf("saved %s", path)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if g.canvas != nil {
		g.ctrl.Frame()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, uiHeight*g.scale)
		screen.DrawImage(g.canvas, op)
	}

	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(uiHeight*g.scale), color.RGBA{20, 20, 20, 255}, false)
	for _, b := range g.buttons {
		b.draw(screen, g.scale)
	}

	pan := g.ctrl.Viewport().Pan
	status := fmt.Sprintf("tool: %s  shapes: %d  pan: %.0f,%.0f",
		g.ctrl.Tool(), g.ctrl.Drawing().Len(), pan.X, pan.Y)
	if s, i, ok := g.ctrl.Selection(); ok {
		status += fmt.Sprintf("  selected: %s #%d", s.Kind(), i)
	}
	if g.status != "" {
		status += "  " + g.status
	}
	ebitenutil.DebugPrintAt(screen, status, int(float64(g.buttons[len(g.buttons)-1].rect.Max.X+20)*g.scale), int(20*g.scale))
}

func main() {
	logger := log.New(os.Stderr, "paintpad: ", log.LstdFlags)
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}
	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
