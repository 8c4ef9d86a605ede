// Package trigger lists the events that activate a mob skill.
package trigger

import (
	"fmt"
	"strings"
)

// Trigger is a skill activation event. The zero value is None and renders
// as the empty string.
type Trigger int

const (
	None Trigger = iota
	Combat
	Attack
	Damaged
	Spawn
	Despawn
	Ready
	Load
	SpawnOrLoad
	Death
	Timer
	Interact
	PlayerKill
	EnterCombat
	DropCombat
	ChangeTarget
	Explode
	Prime
	CreeperCharge
	Teleport
	Signal
	Shoot
	BowHit
	Tame
	Breed
	Trade
	ChangeWorld
	Bucket
	SkillDamage
	Hear
	ProjectileHit
	ProjectileLand
)

type entry struct {
	token string
	label string
	desc  string
}

var triggers = [...]entry{
	None:           {"", "None", "No trigger"},
	Combat:         {"~onCombat", "Combat", "Default trigger when none is given"},
	Attack:         {"~onAttack", "Attack", "When the mob hits something"},
	Damaged:        {"~onDamaged", "Damaged", "When the mob is damaged"},
	Spawn:          {"~onSpawn", "Spawn", "When the mob spawns"},
	Despawn:        {"~onDespawn", "Despawn", "When the mob is despawned"},
	Ready:          {"~onReady", "Ready", "Triggered the first time a mob is spawned from a spawner"},
	Load:           {"~onLoad", "Load", "When the mob is loaded after a server restart"},
	SpawnOrLoad:    {"~onSpawnOrLoad", "Spawn Or Load", "When the mob either spawns or loads"},
	Death:          {"~onDeath", "Death", "When the mob dies"},
	Timer:          {"~onTimer", "Timer", "Every # ticks, where # is the interval in ticks"},
	Interact:       {"~onInteract", "Interact", "When the mob is right-clicked"},
	PlayerKill:     {"~onPlayerKill", "Player Kill", "When the mob kills a player"},
	EnterCombat:    {"~onEnterCombat", "Enter Combat", "When the mob enters combat (requires threat tables)"},
	DropCombat:     {"~onDropCombat", "Drop Combat", "When the mob leaves combat (requires threat tables)"},
	ChangeTarget:   {"~onChangeTarget", "Change Target", "When the mob changes targets (requires threat tables)"},
	Explode:        {"~onExplode", "Explode", "When the mob explodes, typically only used for creepers"},
	Prime:          {"~onPrime", "Prime", "When the creeper charges up for an explosion"},
	CreeperCharge:  {"~onCreeperCharge", "Creeper Charge", "When the creeper is charged by lightning"},
	Teleport:       {"~onTeleport", "Teleport", "When the mob teleports, typically only used for endermen"},
	Signal:         {"~onSignal", "Signal", "When the mob receives a signal"},
	Shoot:          {"~onShoot", "Shoot", "When the mob fires a projectile"},
	BowHit:         {"~onBowHit", "Bow Hit", "When the mob's fired projectile hits an entity"},
	Tame:           {"~onTame", "Tame", "When the mob gets tamed"},
	Breed:          {"~onBreed", "Breed", "When the mob breeds with another mob"},
	Trade:          {"~onTrade", "Trade", "When the villager completes a trade. Requires Paper"},
	ChangeWorld:    {"~onChangeWorld", "Change World", "When the mob changes world"},
	Bucket:         {"~onBucket", "Bucket", "When the cow is milked or an entity is bucketed"},
	SkillDamage:    {"~onSkillDamage", "Skill Damage", "When the mob deals damage to other entities via a mechanic"},
	Hear:           {"~onHear", "Hear", "When the mob hears a sound, if hearing is enabled"},
	ProjectileHit:  {"~onProjectileHit", "Projectile Hit", "When a mob's special projectile hits an entity"},
	ProjectileLand: {"~onProjectileLand", "Projectile Land", "When a mob's special projectile hits a block"},
}

func (t Trigger) entry() entry {
	if t < 0 || int(t) >= len(triggers) {
		return entry{}
	}
	return triggers[t]
}

// Render returns the trigger token, or "" for None.
func (t Trigger) Render() string { return t.entry().token }

func (t Trigger) String() string { return t.Render() }

func (t Trigger) Label() string { return t.entry().label }

func (t Trigger) Description() string { return t.entry().desc }

// All lists every trigger, None first.
func All() []Trigger {
	out := make([]Trigger, len(triggers))
	for i := range out {
		out[i] = Trigger(i)
	}
	return out
}

// Parse looks a trigger up by token. The "~on" marker is optional and
// matching ignores case, so "attack", "~onAttack" and "~ONATTACK" are the
// same trigger. The empty string is None.
func Parse(token string) (Trigger, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return None, nil
	}
	if len(s) >= 3 && strings.EqualFold(s[:3], "~on") {
		s = s[3:]
	}
	for i, e := range triggers[1:] {
		if strings.EqualFold(e.token[3:], s) {
			return Trigger(i + 1), nil
		}
	}
	return None, fmt.Errorf("unknown trigger %q", token)
}

func (t Trigger) MarshalText() ([]byte, error) {
	return []byte(t.Render()), nil
}

func (t *Trigger) UnmarshalText(b []byte) error {
	nt, err := Parse(string(b))
	if err != nil {
		return err
	}
	*t = nt
	return nil
}
