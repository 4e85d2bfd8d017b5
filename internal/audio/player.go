// internal/audio/player.go
package audio

import (
	"go-arena-shooter/internal/event"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundFor maps a notification to the tone played for it.
func SoundFor(t event.EventType) (string, bool) {
	switch t {
	case event.ShotFired:
		return "shoot", true
	case event.PlayerHit:
		return "hit", true
	case event.EnemyKilled:
		return "kill", true
	case event.ChestOpened, event.Purchase:
		return "coin", true
	case event.PickupCollected, event.DomainActivated:
		return "powerup", true
	case event.AchievementUnlocked, event.BadgeUnlocked, event.Victory:
		return "achievement", true
	case event.ComboBonus:
		return "combo", true
	}
	return "", false
}

// Player plays event tones through an ebiten audio context.
type Player struct {
	ctx   *audio.Context
	cache map[string][]byte
	Mute  bool
	log   *slog.Logger
}

// NewPlayer creates the audio context. Only one context may exist per process.
func NewPlayer(mute bool, log *slog.Logger) *Player {
	p := &Player{
		ctx:   audio.NewContext(SampleRate),
		cache: make(map[string][]byte, len(Sounds)),
		Mute:  mute,
		log:   log,
	}
	for name, t := range Sounds {
		p.cache[name] = t.Render(SampleRate)
	}
	return p
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	if name, ok := SoundFor(e.Type); ok {
		p.Play(name)
	}
}

func (p *Player) Play(name string) {
	if p.Mute {
		return
	}
	pcm, ok := p.cache[name]
	if !ok {
		p.log.Warn("unknown sound", "name", name)
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}
