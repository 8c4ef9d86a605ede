package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type ArrowVolley struct {
	Amount      uint32  `json:"amount"`
	Spread      float32 `json:"spread"`
	Velocity    float32 `json:"velocity"`
	FireTicks   uint32  `json:"fire_ticks"`
	RemoveDelay uint32  `json:"remove_delay"`
	CanPickup   bool    `json:"can_pickup"`
}

func (*ArrowVolley) spec() spec {
	return spec{
		label: "Arrow Volley",
		desc:  "Fires a volley of arrows",
		tmpl:  "- arrowvolley{a={amount};s={spread};v={velocity};f={fire_ticks};rd={remove_delay};pickup={can_pickup}}",
	}
}

type AuraRemove struct {
	AuraName string `json:"aura_name"`
	Stacks   uint32 `json:"stacks"`
}

func (*AuraRemove) spec() spec {
	return spec{
		label: "Aura Remove",
		desc:  "Removes stacks of an aura from the target",
		tmpl:  "- auraremove{aura={aura_name};stacks={stacks}}",
	}
}

type Bouncy struct {
	AuraName      string `json:"aura_name"`
	OnBounceSkill string `json:"on_bounce_skill"`
	CancelEvent   bool   `json:"cancel_event"`
}

func (*Bouncy) spec() spec {
	return spec{
		label: "Bouncy",
		desc:  "Applies an aura to the target that makes it bouncy",
		tmpl:  "- bouncy{auraName={aura_name};onBounceSkill={on_bounce_skill};ce={cancel_event}}",
	}
}

type Consume struct {
	Damage float32 `json:"damage"`
	Heal   float32 `json:"heal"`
}

func (*Consume) spec() spec {
	return spec{
		label: "Consume",
		desc:  "Deals damage and restores health per target hit",
		tmpl:  "- consume{d={damage};h={heal}}",
	}
}

type ClearThreat struct{}

func (*ClearThreat) spec() spec {
	return spec{
		label: "Clear Threat",
		desc:  "Makes a mob clear its threat table",
		tmpl:  "- clearThreat",
	}
}

type Damage struct {
	Amount                float32    `json:"amount"`
	IgnoreArmor           bool       `json:"ignore_armor"`
	PreventKnockback      bool       `json:"prevent_knockback"`
	PreventImmunity       bool       `json:"prevent_immunity"`
	DamageCause           string     `json:"damage_cause"`
	IgnoreEnchantments    bool       `json:"ignore_enchantments"`
	NoAnger               bool       `json:"no_anger"`
	IgnoreInvulnerability bool       `json:"ignore_invulnerability"`
	IgnoreShield          bool       `json:"ignore_shield"`
	DamageHelmet          bool       `json:"damage_helmet"`
	IgnoreEffects         bool       `json:"ignore_effects"`
	IgnoreResistance      bool       `json:"ignore_resistance"`
	PowerAffectsDamage    bool       `json:"power_affects_damage"`
	Tags                  param.Tags `json:"tags"`
	RawTags               param.Tags `json:"raw_tags"`
	Element               string     `json:"element"`
	TriggerSkills         bool       `json:"trigger_skills"`
}

func (*Damage) spec() spec {
	return spec{
		label: "Damage",
		desc:  "Damages the target for an amount",
		tmpl:  "- damage{a={amount};ia={ignore_armor};pkb={prevent_knockback};pi={prevent_immunity};dc={damage_cause};ie={ignore_enchantments};na={no_anger};ii={ignore_invulnerability};is={ignore_shield};dh={damage_helmet};ieff={ignore_effects};ir={ignore_resistance};pad={power_affects_damage};tags={tags};rtag={raw_tags};e={element};ts={trigger_skills}}",
	}
}

type BaseDamage struct {
	Multiplier   float32 `json:"multiplier"`
	UseAttribute bool    `json:"use_attribute"`
}

func (*BaseDamage) spec() spec {
	return spec{
		label: "Base Damage",
		desc:  "Damages the target for a percent of the mob's damage stat",
		tmpl:  "- basedamage{m={multiplier};attr={use_attribute}}",
	}
}

type PercentDamage struct {
	Percent       float32 `json:"percent"`
	CurrentHealth bool    `json:"current_health"`
}

func (*PercentDamage) spec() spec {
	return spec{
		label: "Percent Damage",
		desc:  "Damages the target for a percent of their health",
		tmpl:  "- percentdamage{p={percent};c={current_health}}",
	}
}

type Extinguish struct{}

func (*Extinguish) spec() spec {
	return spec{
		label: "Extinguish",
		desc:  "Removes fire ticks from the target entity",
		tmpl:  "- extinguish",
	}
}

type Feed struct {
	Amount     int32   `json:"amount"`
	Saturation float32 `json:"saturation"`
	Overfeed   bool    `json:"overfeed"`
}

func (*Feed) spec() spec {
	return spec{
		label: "Feed",
		desc:  "Feeds the target player",
		tmpl:  "- feed{a={amount};s={saturation};o={overfeed}}",
	}
}

type Freeze struct {
	Ticks uint32 `json:"ticks"`
}

func (*Freeze) spec() spec {
	return spec{
		label: "Freeze",
		desc:  "Freezes the target for the given number of ticks using the Powdered Snow freezing effect",
		tmpl:  "- freeze{t={ticks}}",
	}
}

type GoatRam struct{}

func (*GoatRam) spec() spec {
	return spec{
		label: "Goat Ram",
		desc:  "Causes the casting goat mob to ram the targeted entity",
		tmpl:  "- goatram",
	}
}

type Heal struct {
	Amount      float32 `json:"amount"`
	Overheal    bool    `json:"overheal"`
	MaxOverheal float32 `json:"max_overheal"`
}

func (*Heal) spec() spec {
	return spec{
		label: "Heal",
		desc:  "Heals the target",
		tmpl:  "- heal{a={amount};oh={overheal};mo={max_overheal}}",
	}
}

type HealPercent struct {
	Multiplier  param.Percentage `json:"multiplier"`
	Overheal    bool             `json:"overheal"`
	MaxOverheal float32          `json:"max_overheal"`
}

func (*HealPercent) spec() spec {
	return spec{
		label: "Heal Percent",
		desc:  "Heals the target for a percentage of its max-health",
		tmpl:  "- healpercent{m={multiplier};oh={overheal};mo={max_overheal}}",
	}
}

type Hide struct {
	IgnoreAuraOptions bool `json:"ignore_aura_options"`
}

func (*Hide) spec() spec {
	return spec{
		label: "Hide",
		desc:  "Hides the caster from the targeted player(s) for a set duration",
		tmpl:  "- hide{ignoreAuraOptions={ignore_aura_options}}",
	}
}

type Hit struct {
	Multiplier            float32                 `json:"multiplier"`
	ForcedDamage          param.Optional[float32] `json:"forced_damage" mm:";fd="`
	TriggerSkills         bool                    `json:"trigger_skills"`
	ScaleByAttackCooldown bool                    `json:"scale_by_attack_cooldown"`
}

func (*Hit) spec() spec {
	return spec{
		label: "Hit",
		desc:  "Simulates a physical hit from the mob",
		tmpl:  "- hit{m={multiplier}{forced_damage};ts={trigger_skills};sbac={scale_by_attack_cooldown}}",
	}
}

type Ignite struct {
	Ticks uint32 `json:"ticks"`
}

func (*Ignite) spec() spec {
	return spec{
		label: "Ignite",
		desc:  "Sets the target on fire",
		tmpl:  "- ignite{t={ticks}}",
	}
}

type ModifyDamage struct {
	Amount     float32 `json:"amount"`
	DamageType string  `json:"damage_type"`
	Action     string  `json:"action"`
}

func (*ModifyDamage) spec() spec {
	return spec{
		label: "Modify Damage",
		desc:  "Modifies the damage event that triggered the skill",
		tmpl:  "- modifyDamage{amount={amount};damagetype={damage_type};action={action}}",
	}
}

type Oxygen struct {
	Amount int32 `json:"amount"`
}

func (*Oxygen) spec() spec {
	return spec{
		label: "Oxygen",
		desc:  "Gives oxygen to a player target",
		tmpl:  "- oxygen{amount={amount}}",
	}
}

type Potion struct {
	Potion   string `json:"potion"`
	Duration uint32 `json:"duration"`
	Level    uint8  `json:"level"`
}

func (*Potion) spec() spec {
	return spec{
		label: "Potion",
		desc:  "Applies a potion effect to the target",
		tmpl:  "- potion{potion={potion};duration={duration};level={level}}",
	}
}

type PotionClear struct{}

func (*PotionClear) spec() spec {
	return spec{
		label: "Potion Clear",
		desc:  "Removes all potion effects from target entity",
		tmpl:  "- potionclear{}",
	}
}

type Rally struct {
	Radius float32 `json:"radius"`
}

func (*Rally) spec() spec {
	return spec{
		label: "Rally",
		desc:  "Causes other nearby mobs to attack the target",
		tmpl:  "- rally{radius={radius}}",
	}
}

type Remove struct{}

func (*Remove) spec() spec {
	return spec{
		label: "Remove",
		desc:  "Removes the target mob",
		tmpl:  "- remove{}",
	}
}

type Shield struct{}

func (*Shield) spec() spec {
	return spec{
		label: "Shield",
		desc:  "Applies an absorb shield to the target entity",
		tmpl:  "- shield{}",
	}
}

type ShieldBreak struct{}

func (*ShieldBreak) spec() spec {
	return spec{
		label: "Shield Break",
		desc:  "Forces the player to lower their shield and puts it on cooldown",
		tmpl:  "- shieldbreak{}",
	}
}

type ShieldPercent struct {
	Percent float32 `json:"percent"`
}

func (*ShieldPercent) spec() spec {
	return spec{
		label: "Shield Percent",
		desc:  "Applies an absorb shield to the target entity for a percentage of their max health",
		tmpl:  "- shieldpercent{percent={percent}}",
	}
}

type ShootFireball struct {
	Velocity float32 `json:"velocity"`
}

func (*ShootFireball) spec() spec {
	return spec{
		label: "Shoot Fireball",
		desc:  "Shoots a fireball at the target",
		tmpl:  "- shootfireball{velocity={velocity}}",
	}
}

type ShootPotion struct {
	Potion   string  `json:"potion"`
	Velocity float32 `json:"velocity"`
}

func (*ShootPotion) spec() spec {
	return spec{
		label: "Shoot Potion",
		desc:  "Throws a potion at the target",
		tmpl:  "- shootpotion{potion={potion};velocity={velocity}}",
	}
}

type ShootSkull struct {
	Velocity float32 `json:"velocity"`
}

func (*ShootSkull) spec() spec {
	return spec{
		label: "Shoot Skull",
		desc:  "Shoots a wither skull at the target",
		tmpl:  "- shootskull{velocity={velocity}}",
	}
}

type ShootShulkerBullet struct {
	Velocity float32 `json:"velocity"`
}

func (*ShootShulkerBullet) spec() spec {
	return spec{
		label: "Shoot Shulker Bullet",
		desc:  "Shoots a shulker bullet at the target entity",
		tmpl:  "- shootshulkerbullet{velocity={velocity}}",
	}
}

type ShowEntity struct {
	Entity string `json:"entity"`
}

func (*ShowEntity) spec() spec {
	return spec{
		label: "Show Entity",
		desc:  "Shows the hidden caster to the targeted players",
		tmpl:  "- showentity{entity={entity}}",
	}
}

type Stun struct {
	Duration uint32 `json:"duration"`
}

func (*Stun) spec() spec {
	return spec{
		label: "Stun",
		desc:  "Stuns the target entity for a specified duration",
		tmpl:  "- stun{duration={duration}}",
	}
}

type Suicide struct{}

func (*Suicide) spec() spec {
	return spec{
		label: "Suicide",
		desc:  "Causes the caster to die",
		tmpl:  "- suicide",
	}
}

type Summon struct {
	Mob      string `json:"mob"`
	Location string `json:"location"`
}

func (*Summon) spec() spec {
	return spec{
		label: "Summon",
		desc:  "Summons a mob at the specified location",
		tmpl:  "- summon{mob={mob};location={location}}",
	}
}

type Taunt struct{}

func (*Taunt) spec() spec {
	return spec{
		label: "Taunt",
		desc:  "Modifies the threat level that the caster holds with the target entities",
		tmpl:  "- taunt",
	}
}

type Threat struct {
	Amount int32                            `json:"amount"`
	Mode   param.Optional[param.ThreatMode] `json:"mode" mm:";mode="`
}

func (*Threat) spec() spec {
	return spec{
		label: "Threat",
		desc:  "Modifies the mob's threat towards the target",
		tmpl:  "- threat{amount={amount}{mode}}",
	}
}
