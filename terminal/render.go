package terminal

import (
	"fmt"

	"github.com/battlesnakeio/termsnake/model"
	"github.com/battlesnakeio/termsnake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	targetColor  = termbox.ColorRed

	headRune   = '0'
	bodyRune   = '#'
	targetRune = '@'
)

var instructions = []string{
	"Press 'q' to quit.",
	"Press up arrow to move snake up.",
	"Press down arrow to move snake down.",
	"Press left arrow to move snake left.",
	"Press right arrow to move snake right.",
}

// layout is where things go on a screen of a given size. Board cells start at
// (left, top); the border sits one cell outside of them.
type layout struct {
	left, top int
	// instructions are drawn from (helpX, helpY) downwards
	helpX, helpY int
}

func computeLayout(screenW, screenH, boardW, boardH int) layout {
	l := layout{
		left: (screenW - boardW) / 2,
		top:  (screenH - boardH) / 2,
	}
	if l.top < 3 {
		l.top = 3
	}
	if l.left < 1 {
		l.left = 1
	}

	// beside the board when there is room, underneath it otherwise
	if l.left-1 >= instructionWidth()+4 {
		l.helpX = 2
		l.helpY = (screenH - len(instructions)) / 2
	} else {
		l.helpX = l.left - 1
		l.helpY = l.top + boardH + 2
	}
	return l
}

func instructionWidth() int {
	w := 0
	for _, line := range instructions {
		if sw := runewidth.StringWidth(line); sw > w {
			w = sw
		}
	}
	return w
}

func render(frame *rules.Frame) error {
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return errors.Wrap(err, "terminal: clear")
	}

	w, h := termbox.Size()
	l := computeLayout(w, h, frame.Width, frame.Height)

	renderTitle(w)
	renderStatus(frame)
	renderInstructions(l)
	renderBoard(frame.Width, frame.Height, l.top, l.left)
	renderTarget(l.left, l.top, frame)
	renderSnake(l.left, l.top, frame)
	if frame.Crashed() {
		renderGameOver(l, frame)
	}

	return errors.Wrap(termbox.Flush(), "terminal: flush")
}

func renderTitle(screenW int) {
	title := "Snake"
	tbprint((screenW-runewidth.StringWidth(title))/2, 0, defaultColor|termbox.AttrBold, bgColor, title)
}

func renderStatus(frame *rules.Frame) {
	head, ok := frame.Head()
	if !ok {
		return
	}
	tbprint(1, 1, defaultColor, bgColor, statusLine(frame, head))
}

func statusLine(frame *rules.Frame, head model.Point) string {
	return fmt.Sprintf("x: %d | y: %d | dir: %s | length: %d | turn: %d",
		head.X, head.Y, frame.HeadDir, len(frame.Snake), frame.Turn)
}

func renderInstructions(l layout) {
	for i, line := range instructions {
		tbprint(l.helpX, l.helpY+i, defaultColor, bgColor, line)
	}
}

func renderSnake(left, top int, frame *rules.Frame) {
	// draw the tail first so the head stays visible when it overlaps the body
	for i := len(frame.Snake) - 1; i >= 0; i-- {
		p := frame.Snake[i]
		if !p.InBounds(frame.Width, frame.Height) {
			continue
		}
		ch, fg := bodyRune, snakeColor
		if i == 0 {
			ch, fg = headRune, snakeColor|termbox.AttrBold
		}
		termbox.SetCell(left+p.X, top+p.Y, ch, fg, bgColor)
	}
}

func renderTarget(left, top int, frame *rules.Frame) {
	t := frame.Target
	termbox.SetCell(left+t.X, top+t.Y, targetRune, targetColor|termbox.AttrBold, bgColor)
}

func renderBoard(width, height, top, left int) {
	bottom := top + height
	right := left + width
	for i := top; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(right, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top-1, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(right, top-1, '┐', defaultColor, bgColor)
	termbox.SetCell(right, bottom, '┘', defaultColor, bgColor)

	fill(left, top-1, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderGameOver(l layout, frame *rules.Frame) {
	msg := fmt.Sprintf(" Game over (%s) - length %d - press any key ", frame.Cause, len(frame.Snake))
	x := l.left + (frame.Width-runewidth.StringWidth(msg))/2
	if x < 0 {
		x = 0
	}
	tbprint(x, l.top+frame.Height/2, termbox.ColorWhite|termbox.AttrBold, termbox.ColorRed, msg)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
