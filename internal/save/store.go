// internal/save/store.go
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore keeps one profile as a JSON file.
type FileStore struct {
	Path string
	Log  *slog.Logger
}

func NewFileStore(path string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{Path: path, Log: log}
}

// Load reads the profile. A missing file yields the default profile; a
// malformed file or field falls back to defaults field by field and is only
// logged. The returned profile always carries a user id.
func (s *FileStore) Load() (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(s.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		ensureUserID(&p)
		return p, fmt.Errorf("failed to read save file: %w", err)
	default:
		p = Decode(data, s.Log)
	}
	ensureUserID(&p)
	return p, nil
}

// Save writes the profile atomically through a temp file in the same directory.
func (s *FileStore) Save(p Profile) error {
	ensureUserID(&p)
	p.Timestamp = time.Now().UnixMilli()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".save-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	s.Log.Debug("profile saved", "path", s.Path, "gold", p.Gold)
	return nil
}

// Decode parses a saved profile. Каждое поле разбирается отдельно: битое
// поле получает значение по умолчанию, остальные сохраняются.
func Decode(data []byte, log *slog.Logger) Profile {
	p := DefaultProfile()
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("save file is not a JSON object, using defaults", "err", err)
		return p
	}
	d := decoder{raw: raw, log: log}
	field(d, "userId", &p.UserID)
	field(d, "gold", &p.Gold)
	field(d, "kills", &p.Kills)
	field(d, "hasAdminAccess", &p.HasAdminAccess)
	field(d, "adminLevel", &p.AdminLevel)
	field(d, "ownedAvatars", &p.OwnedAvatars)
	field(d, "ownedWeapons", &p.OwnedWeapons)
	field(d, "ownedVehicles", &p.OwnedVehicles)
	field(d, "selectedAvatar", &p.SelectedAvatar)
	field(d, "selectedClass", &p.SelectedClass)
	field(d, "maxHp", &p.MaxHP)
	field(d, "achievements", &p.Achievements)
	field(d, "badges", &p.Badges)
	field(d, "maxCombo", &p.MaxCombo)
	field(d, "dailyReward", &p.DailyReward)
	field(d, "bestWave", &p.BestWave)
	field(d, "totalKills", &p.TotalKills)
	field(d, "wins", &p.Wins)
	field(d, "hardModeWins", &p.HardModeWins)
	field(d, "bossesDefeated", &p.BossesDefeated)
	field(d, "pickupsCollected", &p.PickupsCollected)
	field(d, "playTime", &p.PlayTimeMs)
	field(d, "totalCoins", &p.TotalCoins)
	field(d, "timestamp", &p.Timestamp)
	sanitize(&p, log)
	return p
}

type decoder struct {
	raw map[string]json.RawMessage
	log *slog.Logger
}

func field[T any](d decoder, key string, dst *T) {
	msg, ok := d.raw[key]
	if !ok || string(msg) == "null" {
		return
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		d.log.Warn("malformed save field, using default", "field", key, "err", err)
		return
	}
	*dst = v
}

// sanitize drops catalog ids this build does not know and clamps ranges.
func sanitize(p *Profile, log *slog.Logger) {
	def := DefaultProfile()
	p.OwnedWeapons = known(p.OwnedWeapons, defs.Weapon, log, "weapon")
	p.OwnedAvatars = known(p.OwnedAvatars, defs.Avatar, log, "avatar")
	p.OwnedVehicles = known(p.OwnedVehicles, defs.Vehicle, log, "vehicle")
	if len(p.OwnedWeapons) == 0 {
		p.OwnedWeapons = def.OwnedWeapons
	}
	if len(p.OwnedAvatars) == 0 {
		p.OwnedAvatars = def.OwnedAvatars
	}
	if _, err := defs.Avatar(p.SelectedAvatar); err != nil {
		p.SelectedAvatar = def.SelectedAvatar
	}
	if _, err := defs.Class(p.SelectedClass); err != nil {
		p.SelectedClass = def.SelectedClass
	}
	if p.Gold < 0 {
		p.Gold = 0
	}
	if p.AdminLevel < 0 || p.AdminLevel > config.MaxAdminLevel {
		p.AdminLevel = 0
	}
	if p.MaxHP <= 0 {
		p.MaxHP = def.MaxHP
	}
}

func known[ID ~string, D any](ids []ID, lookup func(ID) (D, error), log *slog.Logger, kind string) []ID {
	out := ids[:0:0]
	for _, id := range ids {
		if _, err := lookup(id); err != nil {
			log.Warn("dropping unknown id from save", "kind", kind, "id", id)
			continue
		}
		out = append(out, id)
	}
	return out
}

func ensureUserID(p *Profile) {
	if p.UserID == "" {
		p.UserID = uuid.NewString()
	}
}
