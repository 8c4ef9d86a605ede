package param

// Particle is a Bukkit particle name. Only the first few have named
// constants; the rest are reached through Set or ParseParticle.
type Particle int

const (
	ParticleAngryVillager Particle = iota
	ParticleAsh
	ParticleBlock
)

var particleTokens = []string{
	"ANGRY_VILLAGER", "ASH", "BLOCK", "BLOCK_CRUMBLE", "BLOCK_MARKER", "BUBBLE",
	"BUBBLE_COLUMN_UP", "BUBBLE_POP", "CAMPFIRE_COSY_SMOKE",
	"CAMPFIRE_SIGNAL_SMOKE", "CHERRY_LEAVES", "CLOUD", "COMPOSTER",
	"CRIMSON_SPORE", "CRIT", "CURRENT_DOWN", "DAMAGE_INDICATOR", "DOLPHIN",
	"DRAGON_BREATH", "DRIPPING_DRIPSTONE_LAVA", "DRIPPING_DRIPSTONE_WATER",
	"DRIPPING_HONEY", "DRIPPING_LAVA", "DRIPPING_OBSIDIAN_TEAR",
	"DRIPPING_WATER", "DUST", "DUST_COLOR_TRANSITION", "DUST_PILLAR",
	"DUST_PLUME", "EFFECT", "EGG_CRACK", "ELDER_GUARDIAN", "ELECTRIC_SPARK",
	"ENCHANT", "ENCHANTED_HIT", "END_ROD", "ENTITY_EFFECT", "EXPLOSION",
	"EXPLOSION_EMITTER", "FALLING_DRIPSTONE_LAVA", "FALLING_DRIPSTONE_WATER",
	"FALLING_DUST", "FALLING_HONEY", "FALLING_LAVA", "FALLING_NECTAR",
	"FALLING_OBSIDIAN_TEAR", "FALLING_SPORE_BLOSSOM", "FALLING_WATER",
	"FIREFLY", "FIREWORK", "FISHING", "FLAME", "FLASH", "GLOW",
	"GLOW_SQUID_INK", "GUST", "GUST_EMITTER_LARGE", "GUST_EMITTER_SMALL",
	"HAPPY_VILLAGER", "HEART", "INFESTED", "INSTANT_EFFECT", "ITEM",
	"ITEM_COBWEB", "ITEM_SLIME", "ITEM_SNOWBALL", "LANDING_HONEY",
	"LANDING_LAVA", "LANDING_OBSIDIAN_TEAR", "LARGE_SMOKE", "LAVA", "MYCELIUM",
	"NAUTILUS", "NOTE", "OMINOUS_SPAWNING", "PALE_OAK_LEAVES", "POOF", "PORTAL",
	"RAID_OMEN", "RAIN", "REVERSE_PORTAL", "SCRAPE", "SCULK_CHARGE",
	"SCULK_CHARGE_POP", "SCULK_SOUL", "SHRIEK", "SMALL_FLAME", "SMALL_GUST",
	"SMOKE", "SNEEZE", "SNOWFLAKE", "SONIC_BOOM", "SOUL", "SOUL_FIRE_FLAME",
	"SPIT", "SPLASH", "SPORE_BLOSSOM_AIR", "SQUID_INK", "SWEEP_ATTACK",
	"TINTED_LEAVES", "TOTEM_OF_UNDYING", "TRAIL", "TRIAL_OMEN",
	"TRIAL_SPAWNER_DETECTION", "TRIAL_SPAWNER_DETECTION_OMINOUS", "UNDERWATER",
	"VAULT_CONNECTION", "VIBRATION", "WARPED_SPORE", "WAX_OFF", "WAX_ON",
	"WHITE_ASH", "WHITE_SMOKE", "WITCH",
}

func (p Particle) String() string { return token(particleTokens, p) }
func (p Particle) Choices() []string { return clone(particleTokens) }
func (p Particle) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *Particle) UnmarshalText(b []byte) error { return parseToken("particle", particleTokens, string(b), p) }
func (p *Particle) Set(text string) error { return p.UnmarshalText([]byte(text)) }

// ParseParticle looks up a particle by name.
func ParseParticle(name string) (Particle, error) {
	var p Particle
	err := p.Set(name)
	return p, err
}
