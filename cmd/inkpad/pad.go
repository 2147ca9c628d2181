package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/digitink/ink"
)

// canvasDp is the on-screen edge of the drawing area.
const canvasDp = unit.Dp(300)

// previewDp is the on-screen edge of the normalized-grid preview.
const previewDp = unit.Dp(112)

var (
	colBackground = color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF}
	colCanvas     = color.NRGBA{A: 0xFF}
	colText       = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF7, A: 0xFF}
	colError      = color.NRGBA{R: 0xFF, G: 0x45, B: 0x3A, A: 0xFF}
)

// Pad is the inkpad UI: drawing canvas, action buttons, feedback controls
// and the normalized-grid preview. It owns the ink.Session and translates
// pointer and click events into session events.
type Pad struct {
	theme   *material.Theme
	session *ink.Session

	pointerDown bool
	pointerID   pointer.ID

	predictBtn widget.Clickable
	clearBtn   widget.Clickable
	rightBtn   widget.Clickable
	wrongBtn   widget.Clickable
	digitBtns  [10]widget.Clickable
}

func newPad(classifier ink.Classifier, invalidate func()) *Pad {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	return &Pad{
		theme:   th,
		session: ink.NewSession(classifier, ink.WithNotify(invalidate)),
	}
}

// Layout applies pending user input and renders one frame.
func (p *Pad) Layout(gtx layout.Context) layout.Dimensions {
	p.handleClicks(gtx)

	paint.Fill(gtx.Ops, colBackground)
	view := p.session.View()

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(p.layoutCanvas),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return p.layoutActions(gtx, view)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return p.layoutStatus(gtx, view)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return p.layoutFeedback(gtx, view)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return p.layoutPreview(gtx, view)
			}),
		)
	})
}

func (p *Pad) handleClicks(gtx layout.Context) {
	if p.predictBtn.Clicked(gtx) {
		if err := p.session.RequestPrediction(context.Background()); err != nil {
			ink.Logger().Warn("inkpad: predict refused", "error", err)
		}
	}
	if p.clearBtn.Clicked(gtx) {
		if err := p.session.Clear(); err != nil {
			ink.Logger().Warn("inkpad: clear refused", "error", err)
		}
	}
	if p.rightBtn.Clicked(gtx) {
		_ = p.session.FeedbackCorrect(context.Background())
	}
	if p.wrongBtn.Clicked(gtx) {
		_ = p.session.FeedbackIncorrect()
	}
	for i := range p.digitBtns {
		if p.digitBtns[i].Clicked(gtx) {
			_ = p.session.ChooseDigit(context.Background(), i)
		}
	}
}

func (p *Pad) layoutCanvas(gtx layout.Context) layout.Dimensions {
	edge := gtx.Dp(canvasDp)
	size := image.Pt(edge, edge)

	p.handlePointer(gtx, size)

	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, colCanvas, clip.Rect{Max: size}.Op())

	img := widget.Image{
		Src: paint.NewImageOp(p.session.SurfaceImage()),
		Fit: widget.Contain,
	}
	igtx := gtx
	igtx.Constraints = layout.Exact(size)
	img.Layout(igtx)

	event.Op(gtx.Ops, p)
	return layout.Dimensions{Size: size}
}

func (p *Pad) handlePointer(gtx layout.Context, size image.Point) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: p,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Leave,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			// Only the first touch draws; additional fingers are ignored.
			if p.pointerDown {
				break
			}
			p.pointerDown = true
			p.pointerID = e.PointerID
			p.session.PenDown(p.surfacePoint(e.Position, size))
		case pointer.Drag:
			if !p.pointerDown || e.PointerID != p.pointerID {
				break
			}
			p.session.PenMove(p.surfacePoint(e.Position, size))
		case pointer.Release, pointer.Cancel:
			if !p.pointerDown || e.PointerID != p.pointerID {
				break
			}
			p.pointerDown = false
			p.session.PenUp()
		case pointer.Leave:
			if !p.pointerDown {
				break
			}
			p.pointerDown = false
			p.session.PenLeave()
		}
	}
}

// surfacePoint maps a canvas-local pointer position to surface coordinates.
func (p *Pad) surfacePoint(pos f32.Point, size image.Point) ink.Point {
	return p.session.Surface().MapFromBox(
		float64(pos.X), float64(pos.Y),
		0, 0,
		float64(size.X), float64(size.Y),
	)
}

func (p *Pad) layoutActions(gtx layout.Context, view ink.View) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if view.State != ink.StateReady || !view.GridValid || view.Busy {
				gtx = gtx.Disabled()
			}
			return material.Button(p.theme, &p.predictBtn, "Predict").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			if view.State == ink.StateAwaitingPrediction || view.State == ink.StateSubmittingFeedback {
				gtx = gtx.Disabled()
			}
			return material.Button(p.theme, &p.clearBtn, "Clear").Layout(gtx)
		}),
	)
}

func (p *Pad) layoutStatus(gtx layout.Context, view ink.View) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Body1(p.theme, statusLine(view))
			l.Color = colText
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if view.Err == "" {
				return layout.Dimensions{}
			}
			l := material.Caption(p.theme, view.Err)
			l.Color = colError
			return l.Layout(gtx)
		}),
	)
}

func statusLine(view ink.View) string {
	switch view.State {
	case ink.StateIdle:
		return "Draw a digit"
	case ink.StateDrawing:
		return "Drawing..."
	case ink.StateReady:
		return "Press Predict when done"
	case ink.StateAwaitingPrediction:
		return "Predicting..."
	case ink.StatePredictionShown:
		if view.Confidence >= 0 {
			return fmt.Sprintf("Prediction: %d (%.1f%%) - is that right?", view.Digit, view.Confidence*100)
		}
		return fmt.Sprintf("Prediction: %d - is that right?", view.Digit)
	case ink.StateAwaitingFeedbackDetail:
		return "Pick the digit you drew"
	case ink.StateSubmittingFeedback:
		return "Sending feedback..."
	default:
		return view.State.String()
	}
}

func (p *Pad) layoutFeedback(gtx layout.Context, view ink.View) layout.Dimensions {
	switch view.State {
	case ink.StatePredictionShown:
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
			layout.Flexed(1, material.Button(p.theme, &p.rightBtn, "Right").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, material.Button(p.theme, &p.wrongBtn, "Wrong").Layout),
		)
	case ink.StateAwaitingFeedbackDetail:
		children := make([]layout.FlexChild, 0, len(p.digitBtns))
		for i := range p.digitBtns {
			children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(2)).Layout(gtx,
					material.Button(p.theme, &p.digitBtns[i], strconv.Itoa(i)).Layout)
			}))
		}
		return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
	default:
		return layout.Dimensions{}
	}
}

// layoutPreview shows what the classifier receives: the 28x28 normalized
// grid, upscaled.
func (p *Pad) layoutPreview(gtx layout.Context, view ink.View) layout.Dimensions {
	if !view.GridValid {
		return layout.Dimensions{}
	}
	grid := p.session.Grid()
	if grid == nil {
		return layout.Dimensions{}
	}
	img := image.NewGray(image.Rect(0, 0, ink.GridEdge, ink.GridEdge))
	for i, v := range grid {
		img.Pix[i] = uint8(v*255 + 0.5)
	}

	edge := gtx.Dp(previewDp)
	size := image.Pt(edge, edge)
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.FillShape(gtx.Ops, colCanvas, clip.Rect{Max: size}.Op())
	w := widget.Image{Src: paint.NewImageOp(img), Fit: widget.Contain}
	igtx := gtx
	igtx.Constraints = layout.Exact(size)
	w.Layout(igtx)
	return layout.Dimensions{Size: size}
}
