// internal/render/renderer.go
package render

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	skyBand      = 0.15 // доля высоты под небо
	bulletRadius = 3
	pickupRadius = 8
	chestSize    = 24
	gunLength    = 28
	enemyBarH    = 4
)

// Renderer рисует снимок мира. Состояние симуляции не трогает.
type Renderer struct {
	width, height float32
	fillImg       *ebiten.Image
}

func NewRenderer(width, height int) *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{width: float32(width), height: float32(height), fillImg: fillImg}
}

func (r *Renderer) Draw(screen *ebiten.Image, s entity.Snapshot) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, 0, r.width, r.height*skyBand, config.SkyColor, false)

	if s.Gravity != nil {
		pulse := float32(1 + 0.1*math.Sin(s.Now/200))
		vector.StrokeCircle(screen, float32(s.Gravity.X), float32(s.Gravity.Y), 60*pulse, 3, config.ConvertedColor, true)
	}

	for _, c := range s.Chests {
		if c.Opened {
			continue
		}
		vector.DrawFilledRect(screen, float32(c.X)-chestSize/2, float32(c.Y)-chestSize/2, chestSize, chestSize, config.ChestColor, false)
		vector.StrokeRect(screen, float32(c.X)-chestSize/2, float32(c.Y)-chestSize/2, chestSize, chestSize, 2, color.Black, false)
	}

	for _, p := range s.Pickups {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), pickupRadius, PickupColor(p.Type), true)
	}

	for i := range s.Enemies {
		r.drawEnemy(screen, &s.Enemies[i])
	}

	for _, b := range s.Bullets {
		c := config.BulletColor
		if b.IsAllyBullet {
			c = config.AllyColor
		}
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), bulletRadius, c, true)
	}

	for _, a := range s.Allies {
		c := config.AllyColor
		if !a.Active() {
			c.A = 80
		}
		vector.DrawFilledCircle(screen, float32(a.X), float32(a.Y), 12, c, true)
	}

	r.drawPlayer(screen, s)

	for _, p := range s.Particles {
		c := p.Color
		c.A = ParticleAlpha(p.Life)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, c, false)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	c := EnemyColor(e)
	radius := float32(e.Size / 2)
	if radius <= 0 {
		radius = 15
	}
	x, y := float32(e.X), float32(e.Y)
	vector.DrawFilledCircle(screen, x, y, radius, c, true)
	if e.Burning > 0 {
		vector.StrokeCircle(screen, x, y, radius+2, 2, config.FireParticleColor, true)
	}
	if e.MaxHP > 0 && !e.Hidden {
		w := radius * 2
		vector.DrawFilledRect(screen, x-radius, y-radius-8, w, enemyBarH, config.HPBarBackColor, false)
		vector.DrawFilledRect(screen, x-radius, y-radius-8, w*float32(e.HP/e.MaxHP), enemyBarH, config.HPBarColor, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, s entity.Snapshot) {
	p := s.Player
	x, y := float32(p.X), float32(p.Y)
	half := float32(p.Size / 2)
	c := config.PlayerColor
	if def, err := defs.Avatar(s.Avatar); err == nil {
		c = def.Color
	}
	if s.Invincible {
		vector.StrokeCircle(screen, x, y, half+6, 2, config.FrozenColor, true)
	}
	switch s.Avatar {
	case "circle", "oval":
		vector.DrawFilledCircle(screen, x, y, half, c, true)
	case "diamond":
		var path vector.Path
		path.MoveTo(x, y-half)
		path.LineTo(x+half, y)
		path.LineTo(x, y+half)
		path.LineTo(x-half, y)
		path.Close()
		r.fillPath(screen, &path, c)
	default:
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, c, false)
	}
	gx := x + float32(math.Cos(p.Angle))*gunLength
	gy := y + float32(math.Sin(p.Angle))*gunLength
	vector.StrokeLine(screen, x, y, gx, gy, 4, color.Black, true)
}

// EnemyColor picks the body color: frozen, then converted, then boss.
// Скрытые враги стелс-волны почти прозрачны.
func EnemyColor(e *component.Enemy) color.RGBA {
	c := config.EnemyColor
	switch {
	case e.Frozen:
		c = config.FrozenColor
	case e.Ally:
		c = config.ConvertedColor
	case e.IsBoss:
		c = config.BossColor
	}
	if e.Hidden {
		c.A = 60
	}
	return c
}

// ParticleAlpha fades a particle linearly over its life.
func ParticleAlpha(life int) uint8 {
	if life <= 0 {
		return 0
	}
	if life >= config.ParticleLifeTicks {
		return 255
	}
	return uint8(255 * life / config.ParticleLifeTicks)
}

// PickupColor маркирует тип подбираемого предмета.
func PickupColor(t defs.PickupType) color.RGBA {
	switch t {
	case defs.PickupHealth:
		return config.HealParticleColor
	case defs.PickupAmmo:
		return config.ChestColor
	case defs.PickupShield:
		return config.FrozenColor
	case defs.PickupSpeed:
		return config.AllyColor
	case defs.PickupBomb:
		return config.FireParticleColor
	}
	return config.PickupParticleColor
}

func (r *Renderer) fillPath(screen *ebiten.Image, p *vector.Path, c color.RGBA) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	screen.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
