package audio

import (
	"encoding/binary"
	"testing"

	"go-arena-shooter/internal/event"
)

func TestRenderLengthAndDecay(t *testing.T) {
	pcm := Sounds["shoot"].Render(SampleRate)
	frames := SampleRate * 50 / 1000
	if len(pcm) != frames*4 {
		t.Fatalf("len = %d, want %d", len(pcm), frames*4)
	}
	first := int16(binary.LittleEndian.Uint16(pcm[0:]))
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if first <= 0 {
		t.Fatalf("square wave should start high, got %d", first)
	}
	if abs(last) >= abs(first) {
		t.Fatalf("envelope did not decay: first %d last %d", first, last)
	}
	right := int16(binary.LittleEndian.Uint16(pcm[2:]))
	if right != first {
		t.Fatalf("channels differ: %d vs %d", first, right)
	}
}

func TestRenderZeroDuration(t *testing.T) {
	if pcm := (Tone{Freq: 440}).Render(SampleRate); pcm != nil {
		t.Fatalf("zero duration should render nothing")
	}
}

func TestEveryMappedSoundExists(t *testing.T) {
	for _, et := range []event.EventType{
		event.ShotFired, event.PlayerHit, event.EnemyKilled, event.ChestOpened,
		event.Purchase, event.PickupCollected, event.AchievementUnlocked, event.ComboBonus,
	} {
		name, ok := SoundFor(et)
		if !ok {
			t.Fatalf("%s has no sound", et)
		}
		if _, ok := Sounds[name]; !ok {
			t.Fatalf("%s maps to missing sound %q", et, name)
		}
	}
	if _, ok := SoundFor(event.WaveStarted); ok {
		t.Fatalf("wave start should be silent")
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
