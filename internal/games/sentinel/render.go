package sentinel

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/f47-sentinel/internal/core"
)

// Visual characters for rendering
const (
	PlayerGlyph       = 'A'
	DroneGlyph        = 'o'
	PlayerBulletGlyph = '|'
	LaserGlyph        = '!'
	MissileGlyph      = '^'
	EnemyBulletGlyph  = '.'
	BossBulletGlyph   = '•'
)

// Explosion glyphs by growth stage
var explosionGlyphs = []rune{'·', '+', '*', '✶'}

// Minimum screen size for a readable field
const (
	MinScreenW = 30
	MinScreenH = 16
)

// palette maps entity colors to terminal colors.
var palette = map[string]core.Color{
	"#00f0ff": core.ColorBrightCyan,
	"#00ffaa": core.ColorBrightGreen,
	"#ff6a00": core.ColorOrange,
	"#ff2040": core.ColorBrightRed,
	"#ff4444": core.ColorRed,
	"#ffaa00": core.ColorYellow,
	"#aa44ff": core.ColorMagenta,
	"#ff0066": core.ColorMagenta,
	"#ff0000": core.ColorBrightRed,
}

func colorOf(hex string) core.Color {
	if c, ok := palette[strings.ToLower(hex)]; ok {
		return c
	}
	return core.ColorWhite
}

// Render draws the latest snapshot.
func (e *Engine) Render(dst *core.Screen) {
	RenderSnapshot(dst, e.Snapshot())
}

// RenderSnapshot projects the top-down field onto dst: x maps to columns,
// z maps to rows with the enemy edge on top.
func RenderSnapshot(dst *core.Screen, s *Snapshot) {
	dst.Clear()
	if s == nil {
		return
	}

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	renderHUD(dst, s)

	f := newFieldProjection(dst, s)
	borderColor := core.ColorGray
	if s.NukeFlash > 0 {
		borderColor = core.ColorBrightYellow
	}
	dst.DrawBox(f.left-1, f.top-1, f.width+2, f.height+2, borderColor)

	for _, x := range s.Explosions {
		stage := int(x.Scale / math.Max(x.MaxScale, 0.01) * float64(len(explosionGlyphs)-1))
		stage = core.Clamp(stage, 0, len(explosionGlyphs)-1)
		f.plot(dst, x.Position, explosionGlyphs[stage], colorOf(x.Color))
	}
	for _, pu := range s.PowerUps {
		f.plot(dst, pu.Position, pu.Type.Glyph(), core.ColorBrightGreen)
	}
	for _, b := range s.Bullets {
		f.plot(dst, b.Position, bulletGlyph(b), colorOf(b.Color))
	}
	for _, en := range s.Enemies {
		f.plot(dst, en.Position, en.Type.Glyph(), colorOf(StatsFor(en.Type).Color))
	}

	p := s.Player
	// Blink while invincible
	if p.InvincibleTimer <= 0 || s.Tick/4%2 == 0 {
		for _, d := range p.Drones {
			f.plot(dst, p.Position.Add(d.Offset), DroneGlyph, core.ColorCyan)
		}
		shipColor := core.ColorBrightCyan
		if p.ShieldHP > 0 {
			shipColor = core.ColorBlue
		}
		f.plot(dst, p.Position, PlayerGlyph, shipColor)
	}

	renderOverlay(dst, s)
	renderStatus(dst, s)
}

func bulletGlyph(b Bullet) rune {
	if !b.IsPlayer {
		if b.Size >= bossBulletSize {
			return BossBulletGlyph
		}
		return EnemyBulletGlyph
	}
	switch b.Kind {
	case BulletLaser:
		return LaserGlyph
	case BulletMissile:
		return MissileGlyph
	default:
		return PlayerBulletGlyph
	}
}

// fieldProjection maps world coordinates into the boxed play area.
type fieldProjection struct {
	left, top     int
	width, height int
	shakeX        int
}

func newFieldProjection(dst *core.Screen, s *Snapshot) fieldProjection {
	f := fieldProjection{
		left:   1,
		top:    3,
		width:  dst.Width() - 2,
		height: dst.Height() - 5,
	}
	if s.ScreenShake > 0.3 {
		f.shakeX = 1 - int(s.Tick%2)*2
	}
	return f
}

func (f fieldProjection) plot(dst *core.Screen, pos core.Vec3, r rune, c core.Color) {
	fx := (pos.X - core.FieldMinX) / (core.FieldMaxX - core.FieldMinX)
	fz := (core.FieldMaxZ - pos.Z) / (core.FieldMaxZ - core.FieldMinZ)
	if fx < 0 || fx > 1 || fz < 0 || fz > 1 {
		return
	}
	col := f.left + int(math.Round(fx*float64(f.width-1))) + f.shakeX
	row := f.top + int(math.Round(fz*float64(f.height-1)))
	if col < f.left || col >= f.left+f.width {
		return
	}
	dst.SetColored(col, row, r, c)
}

// renderHUD draws score, lives, level and wave on the top rows.
func renderHUD(dst *core.Screen, s *Snapshot) {
	left := fmt.Sprintf("SCORE %d", s.Score)
	if s.Combo > 1 {
		left += fmt.Sprintf(" x%d", s.Combo)
	}
	dst.DrawTextColored(1, 0, left, core.ColorBrightCyan)

	lives := fmt.Sprintf("%s%s", strings.Repeat("♥", s.Player.Lives), strings.Repeat("◆", s.Player.ShieldHP))
	dst.DrawTextCentered(0, lives, core.ColorBrightRed)

	right := fmt.Sprintf("HI %d", s.HighScore)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	info := fmt.Sprintf("LV %d  WAVE %d  %s  XP %d", s.Level, s.Wave, strings.ToUpper(s.WeaponName), s.XPLevel)
	dst.DrawTextColored(1, 1, info, core.ColorOrange)
}

// renderStatus draws the XP bar and remaining-enemy count on the bottom row.
func renderStatus(dst *core.Screen, s *Snapshot) {
	y := dst.Height() - 1
	remaining := fmt.Sprintf(" HOSTILES %d", s.WaveRemaining)

	barWidth := dst.Width() - len(remaining) - 6
	if barWidth < 4 {
		dst.DrawText(0, y, remaining)
		return
	}
	filled := barWidth
	if s.XPNext > s.XPFloor {
		filled = (s.XP - s.XPFloor) * barWidth / (s.XPNext - s.XPFloor)
		filled = core.Clamp(filled, 0, barWidth)
	}
	bar := "XP [" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]"
	dst.DrawTextColored(0, y, bar, core.ColorCyan)
	dst.DrawTextColored(len(bar), y, remaining, core.ColorGray)
}

// renderOverlay draws phase banners over the field.
func renderOverlay(dst *core.Screen, s *Snapshot) {
	mid := dst.Height() / 2

	switch s.Phase {
	case PhaseMenu:
		dst.DrawTextCentered(mid-2, "F47 SENTINEL", core.ColorBrightCyan)
		dst.DrawTextCentered(mid, "Press SPACE or ENTER to launch", core.ColorWhite)
	case PhasePaused:
		dst.DrawTextCentered(mid, "PAUSED", core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, "Press P to resume", core.ColorGray)
	case PhaseBossWarning:
		dst.DrawTextCentered(mid, "!! WARNING: BOSS APPROACHING !!", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("%.1f", s.BossWarning), core.ColorOrange)
	case PhaseGameOver:
		dst.DrawTextCentered(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Score %d  Kills %d", s.Score, s.TotalKills), core.ColorWhite)
	}
}
