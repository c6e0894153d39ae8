package invader

import (
	"github.com/vovakirdan/morse-invader/internal/core"
	"github.com/vovakirdan/morse-invader/internal/morse"
)

// Visual characters for rendering
const (
	MarkerChar  = '█'
	CircleChar  = '●'
	Placeholder = "_________________:"
)

// Minimum terminal size for the playfield.
const (
	MinScreenW = 40
	MinScreenH = 12
)

var instructions = []string{
	"Welcome to Morse Invader!",
	"",
	"1) Press 'R' to sound a random Morse code character.",
	"2) Press LEFT for a dot and RIGHT for a dash to key it back.",
	"3) Press 'Enter' to see if your Morse code matches.",
	"",
	"P pauses, Q quits.",
	"",
	"Press 'Enter' to start the game.",
}

// layout maps playfield pixels onto screen cells. Row 0 is the HUD and the
// last row is the key help, everything between is playfield.
type layout struct {
	w, h  int
	playH int
}

func newLayout(dst *core.Screen) layout {
	return layout{w: dst.Width(), h: dst.Height(), playH: dst.Height() - 2}
}

func (l layout) x(px int) int { return core.Scale(px, PlayfieldW, l.w) }
func (l layout) y(py int) int { return 1 + core.Scale(py, PlayfieldH, l.playH) }

func (l layout) rx(px int) int { return core.Scale(px, PlayfieldW, l.w) }
func (l layout) ry(py int) int { return core.Scale(py, PlayfieldH, l.playH) }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	if g.phase == PhaseIntro {
		g.renderIntro(dst)
		return
	}

	l := newLayout(dst)
	g.renderHUD(dst, l)
	g.renderPlayfield(dst, l)

	dst.DrawTextCenteredColor(dst.Height()-1, "←/→ dot/dash  Enter check  R target  P pause  Q quit", core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER", g.score.String()+"  |  Press R to restart")
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	top := (dst.Height() - len(instructions)) / 2
	for i, line := range instructions {
		c := core.ColorBlue
		if i == 0 {
			c = core.ColorBrightCyan
		}
		dst.DrawTextCenteredColor(top+i, line, c)
	}
}

// renderHUD draws the entered code on the left and the last verdict on the right.
func (g *Game) renderHUD(dst *core.Screen, l layout) {
	code := Placeholder
	if g.interp.Code() != "" {
		code = "Morse Code Symbol: " + g.interp.Code()
	}
	dst.DrawTextColor(1, 0, code, core.ColorBrown)

	msg := g.interp.Message()
	msgColor := core.ColorBrown
	if msg == "" {
		msg = Placeholder
	} else if g.interp.Answer() == morse.AnswerInvalid {
		msgColor = core.ColorRed
	}
	dst.DrawTextRight(0, 1, msg, msgColor)

	dst.DrawTextCenteredColor(l.y(200), g.score.String(), core.ColorBlue)
}

func (g *Game) renderPlayfield(dst *core.Screen, l layout) {
	// Player marker
	p := g.player.Pos()
	mw := core.Max(1, l.rx(g.player.Size()))
	mh := core.Max(1, l.ry(g.player.Size()))
	dst.DrawRectColor(core.NewRect(l.x(p.X), l.y(p.Y), mw, mh), MarkerChar, core.ColorLightBlue)

	// Target circle
	cx, cy := l.x(g.circle.Center.X), l.y(g.circle.Center.Y)
	dst.DrawDisc(cx, cy, l.rx(g.circle.Radius), l.ry(g.circle.Radius), CircleChar, core.ColorRed)
	if !g.circle.Idle() {
		dst.DrawTextColor(cx, cy, g.circle.Letter, core.ColorBrightWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColor(box.Y+1, title, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
