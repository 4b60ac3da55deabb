package messages

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// PlayerHUD is the per-combatant view the HUD collaborator draws.
type PlayerHUD struct {
	ID          int     `msgpack:"id"`
	Character   string  `msgpack:"char"`
	Name        string  `msgpack:"name"`
	HP          float64 `msgpack:"hp"`
	MaxHP       float64 `msgpack:"maxHp"`
	Lives       int     `msgpack:"lives"`
	Resource    float64 `msgpack:"res"`
	MaxResource float64 `msgpack:"maxRes"`
	Ammo        int     `msgpack:"ammo,omitempty"`
	State       string  `msgpack:"state"`
	X           float64 `msgpack:"x"`
	Y           float64 `msgpack:"y"`

	CdAttack      int `msgpack:"cdAtk"`
	CdSkill       int `msgpack:"cdSkill"`
	CdUltimate    int `msgpack:"cdUlt"`
	CdSwap        int `msgpack:"cdSwap"`
	CdAttackMax   int `msgpack:"cdAtkMax"`
	CdSkillMax    int `msgpack:"cdSkillMax"`
	CdUltimateMax int `msgpack:"cdUltMax"`
	CdSwapMax     int `msgpack:"cdSwapMax"`
}

// HUDState is one frame of HUD data.
type HUDState struct {
	MatchID      string       `msgpack:"match"`
	Frame        int          `msgpack:"frame"`
	Clock        string       `msgpack:"clock"`
	HazardActive bool         `msgpack:"hazard"`
	Projectiles  int          `msgpack:"projectiles"`
	Players      [2]PlayerHUD `msgpack:"players"`
	Over         bool         `msgpack:"over"`
	WinnerID     int          `msgpack:"winner"`
}

// FormatClock renders whole seconds as m:ss.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// EncodeHUD serializes a HUD frame for recording or transport.
func EncodeHUD(s *HUDState) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode hud frame %d: %w", s.Frame, err)
	}
	return data, nil
}

// DecodeHUD is the inverse of EncodeHUD.
func DecodeHUD(data []byte) (*HUDState, error) {
	var s HUDState
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode hud frame: %w", err)
	}
	return &s, nil
}
