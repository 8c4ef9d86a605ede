package param

import (
	"fmt"
	"strings"
)

// Closed enums. Each renders as its token and parses from it, so drafts
// store tokens rather than ordinals.

// ActionMode selects how a trade slot is changed.
type ActionMode int

const (
	ActionAdd ActionMode = iota
	ActionRemove
	ActionReplace
)

var actionModeTokens = []string{"ADD", "REMOVE", "REPLACE"}

func (a ActionMode) String() string { return token(actionModeTokens, a) }
func (a ActionMode) Choices() []string { return clone(actionModeTokens) }
func (a ActionMode) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *ActionMode) UnmarshalText(b []byte) error { return parseToken("action mode", actionModeTokens, string(b), a) }
func (a *ActionMode) Set(text string) error { return a.UnmarshalText([]byte(text)) }

// AddSetReset is the operation applied to a time value.
type AddSetReset int

const (
	TimeAdd AddSetReset = iota
	TimeSet
	TimeReset
)

var addSetResetTokens = []string{"ADD", "SET", "RESET"}

func (a AddSetReset) String() string { return token(addSetResetTokens, a) }
func (a AddSetReset) Choices() []string { return clone(addSetResetTokens) }
func (a AddSetReset) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *AddSetReset) UnmarshalText(b []byte) error { return parseToken("add set reset", addSetResetTokens, string(b), a) }
func (a *AddSetReset) Set(text string) error { return a.UnmarshalText([]byte(text)) }

type Shape int

const (
	ShapeCube Shape = iota
	ShapeSphere
)

var shapeTokens = []string{"Cube", "sphere"}

func (s Shape) String() string { return token(shapeTokens, s) }
func (s Shape) Choices() []string { return clone(shapeTokens) }
func (s Shape) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *Shape) UnmarshalText(b []byte) error { return parseToken("shape", shapeTokens, string(b), s) }
func (s *Shape) Set(text string) error { return s.UnmarshalText([]byte(text)) }

// SoundCategory is the client sound channel a sound is stopped on.
type SoundCategory int

const (
	SoundMaster SoundCategory = iota
	SoundAmbient
	SoundBlocks
	SoundHostile
	SoundMusic
	SoundNeutral
	SoundPlayers
	SoundRecords
	SoundUI
	SoundVoice
	SoundWeather
)

var soundCategoryTokens = []string{"MASTER", "AMBIANT", "BLOCKS", "HOSTILE", "MUSIC", "NEUTRAL", "PLAYERS", "RECORDS", "UI", "VOICE", "WEATHER"}

func (s SoundCategory) String() string { return token(soundCategoryTokens, s) }
func (s SoundCategory) Choices() []string { return clone(soundCategoryTokens) }
func (s SoundCategory) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *SoundCategory) UnmarshalText(b []byte) error { return parseToken("sound category", soundCategoryTokens, string(b), s) }
func (s *SoundCategory) Set(text string) error { return s.UnmarshalText([]byte(text)) }

type SpringType int

const (
	SpringWater SpringType = iota
	SpringLava
)

var springTypeTokens = []string{"water", "lava"}

func (s SpringType) String() string { return token(springTypeTokens, s) }
func (s SpringType) Choices() []string { return clone(springTypeTokens) }
func (s SpringType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *SpringType) UnmarshalText(b []byte) error { return parseToken("spring type", springTypeTokens, string(b), s) }
func (s *SpringType) Set(text string) error { return s.UnmarshalText([]byte(text)) }

// EffectType is the potion effect carried by an area effect cloud.
type EffectType int

const (
	EffectSlow EffectType = iota
)

var effectTypeTokens = []string{"SLOW"}

func (e EffectType) String() string { return token(effectTypeTokens, e) }
func (e EffectType) Choices() []string { return clone(effectTypeTokens) }
func (e EffectType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
func (e *EffectType) UnmarshalText(b []byte) error { return parseToken("effect type", effectTypeTokens, string(b), e) }
func (e *EffectType) Set(text string) error { return e.UnmarshalText([]byte(text)) }

// ThreatMode is the operation a threat mechanic applies to the threat table.
type ThreatMode int

const (
	ThreatAdd ThreatMode = iota
	ThreatRemove
	ThreatMultiply
	ThreatDivide
	ThreatSet
	ThreatReset
	ThreatForceTop
)

var threatModeTokens = []string{"add", "remove", "multiply", "divide", "set", "reset", "forcetop"}

func (t ThreatMode) String() string { return token(threatModeTokens, t) }
func (t ThreatMode) Choices() []string { return clone(threatModeTokens) }
func (t ThreatMode) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *ThreatMode) UnmarshalText(b []byte) error { return parseToken("threat mode", threatModeTokens, string(b), t) }
func (t *ThreatMode) Set(text string) error { return t.UnmarshalText([]byte(text)) }

type ThunderLevel int

const (
	Thunder0 ThunderLevel = iota
	Thunder1
)

var thunderLevelTokens = []string{"0", "1"}

func (t ThunderLevel) String() string { return token(thunderLevelTokens, t) }
func (t ThunderLevel) Choices() []string { return clone(thunderLevelTokens) }
func (t ThunderLevel) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *ThunderLevel) UnmarshalText(b []byte) error { return parseToken("thunder level", thunderLevelTokens, string(b), t) }
func (t *ThunderLevel) Set(text string) error { return t.UnmarshalText([]byte(text)) }

type VelocityMode int

const (
	VelocitySet VelocityMode = iota
	VelocityAdd
	VelocityRemove
	VelocityDivide
	VelocityMultiply
)

var velocityModeTokens = []string{"set", "add", "remove", "divide", "multiply"}

func (v VelocityMode) String() string { return token(velocityModeTokens, v) }
func (v VelocityMode) Choices() []string { return clone(velocityModeTokens) }
func (v VelocityMode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *VelocityMode) UnmarshalText(b []byte) error { return parseToken("velocity mode", velocityModeTokens, string(b), v) }
func (v *VelocityMode) Set(text string) error { return v.UnmarshalText([]byte(text)) }

type WeatherType int

const (
	WeatherSun WeatherType = iota
	WeatherRain
	WeatherStorm
)

var weatherTypeTokens = []string{"sun", "rain", "storm"}

func (w WeatherType) String() string { return token(weatherTypeTokens, w) }
func (w WeatherType) Choices() []string { return clone(weatherTypeTokens) }
func (w WeatherType) MarshalText() ([]byte, error) { return []byte(w.String()), nil }
func (w *WeatherType) UnmarshalText(b []byte) error { return parseToken("weather type", weatherTypeTokens, string(b), w) }
func (w *WeatherType) Set(text string) error { return w.UnmarshalText([]byte(text)) }

// EquipmentSlot is where an equipped item goes. The zero value is the main hand.
type EquipmentSlot int

const (
	SlotHand EquipmentSlot = iota
	SlotHead
	SlotChest
	SlotLegs
	SlotFeet
	SlotOffHand
)

var equipmentSlotTokens = []string{"HAND", "HEAD", "CHEST", "LEGS", "FEET", "OFFHAND"}

func (e EquipmentSlot) String() string { return token(equipmentSlotTokens, e) }
func (e EquipmentSlot) Choices() []string { return clone(equipmentSlotTokens) }
func (e EquipmentSlot) MarshalText() ([]byte, error) { return []byte(e.String()), nil }
func (e *EquipmentSlot) UnmarshalText(b []byte) error { return parseToken("equipment slot", equipmentSlotTokens, string(b), e) }
func (e *EquipmentSlot) Set(text string) error { return e.UnmarshalText([]byte(text)) }

// AddonPlugin names a third-party plugin whose mechanics are linked rather than modelled.
type AddonPlugin int

const (
	AddonModelEngine AddonPlugin = iota
	AddonMythicCrucible
	AddonMythicEnchantments
	AddonMCPets
)

var addonPluginTokens = []string{"ModelEngineMechanic", "MythicCrucible", "MythicEnchantments", "MCPets"}

func (a AddonPlugin) String() string { return token(addonPluginTokens, a) }
func (a AddonPlugin) Choices() []string { return clone(addonPluginTokens) }
func (a AddonPlugin) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *AddonPlugin) UnmarshalText(b []byte) error { return parseToken("addon plugin", addonPluginTokens, string(b), a) }
func (a *AddonPlugin) Set(text string) error { return a.UnmarshalText([]byte(text)) }

// SpawnerMode selects how a spawner reference is matched.
type SpawnerMode int

const (
	SpawnerByName SpawnerMode = iota
	SpawnerByGroup
	SpawnerByIncrement
)

var spawnerModeTokens = []string{"name", "group", "increment"}

func (s SpawnerMode) String() string { return token(spawnerModeTokens, s) }
func (s SpawnerMode) Choices() []string { return clone(spawnerModeTokens) }
func (s SpawnerMode) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *SpawnerMode) UnmarshalText(b []byte) error { return parseToken("spawner mode", spawnerModeTokens, string(b), s) }
func (s *SpawnerMode) Set(text string) error { return s.UnmarshalText([]byte(text)) }

// TokenError reports text that is not a token of the named enum.
type TokenError struct {
	Enum  string
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Enum, e.Token)
}

func token[E ~int](tokens []string, e E) string {
	if e < 0 || int(e) >= len(tokens) {
		return ""
	}
	return tokens[e]
}

// parseToken matches exactly first, then case-insensitively.
func parseToken[E ~int](enum string, tokens []string, s string, dst *E) error {
	for i, t := range tokens {
		if t == s {
			*dst = E(i)
			return nil
		}
	}
	s = strings.TrimSpace(s)
	for i, t := range tokens {
		if strings.EqualFold(t, s) {
			*dst = E(i)
			return nil
		}
	}
	return &TokenError{Enum: enum, Token: s}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
