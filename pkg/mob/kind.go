package mob

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the vanilla entity type a mob is built on, or MetaSkill for a
// reusable skill list.
type Kind string

const (
	MetaSkill Kind = "MetaSkill"
	Zombie    Kind = "Zombie"
)

// DefaultKind is the kind of a new mob.
const DefaultKind = Zombie

// entityKinds lists every spawnable entity type the plugin accepts.
var entityKinds = []Kind{
	"AcaciaBoat", "AcaciaChestBoat", "Allay", "AreaEffectCloud", "Armadillo",
	"ArmorStand", "Arrow", "Axolotl", "BambooChestRaft", "BambooRaft", "Bat",
	"Bee", "BirchBoat", "BirchChestBoat", "Blaze", "BlockDisplay", "Bogged",
	"Breeze", "BreezeWindCharge", "Camel", "Cat", "CaveSpider", "CherryBoat",
	"CherryChestBoat", "ChestMinecart", "Chicken", "Cod",
	"CommandBlockMinecart", "Cow", "Creaking", "Creeper", "DarkOakBoat",
	"DarkOakChestBoat", "Dolphin", "Donkey", "DragonFireball", "Drowned", "Egg",
	"ElderGuardian", "EndCrystal", "EnderDragon", "EnderPearl", "Enderman",
	"Endermite", "Evoker", "EvokerFangs", "ExperienceBottle", "ExperienceOrb",
	"EyeOfEnder", "FallingBlock", "Fireball", "FireworkRocket", "FishingBobber",
	"Fox", "Frog", "FurnaceMinecart", "Ghast", "Giant", "GlowItemFrame",
	"GlowSquid", "Goat", "Guardian", "HappyGhast", "Hoglin", "HopperMinecart",
	"Horse", "Husk", "Illusioner", "Interaction", "IronGolem", "Item",
	"ItemDisplay", "ItemFrame", "JungleBoat", "JungleChestBoat", "LeashKnot",
	"LightningBolt", "LingeringPotion", "Llama", "LlamaSpit", "MagmaCube",
	"MangroveBoat", "MangroveChestBoat", "Marker", "Minecart", "Mooshroom",
	"Mule", "OakBoat", "OakChestBoat", "Ocelot", "OminousItemSpawner",
	"Painting", "PaleOakBoat", "PaleOakChestBoat", "Panda", "Parrot", "Phantom",
	"Pig", "Piglin", "PiglinBrute", "Pillager", "Player", "PolarBear",
	"Pufferfish", "Rabbit", "Ravager", "Salmon", "Sheep", "Shulker",
	"ShulkerBullet", "Silverfish", "Skeleton", "SkeletonHorse", "Slime",
	"SmallFireball", "Sniffer", "SnowGolem", "Snowball", "SpawnerMinecart",
	"SpectralArrow", "Spider", "SplashPotion", "SpruceBoat", "SpruceChestBoat",
	"Squid", "Stray", "Strider", "Tadpole", "TextDisplay", "Tnt", "TntMinecart",
	"TraderLlama", "Trident", "TropicalFish", "Turtle", "Unknown", "Vex",
	"Villager", "Vindicator", "WanderingTrader", "Warden", "WindCharge",
	"Witch", "Wither", "WitherSkeleton", "WitherSkull", "Wolf", "Zoglin",
	"Zombie", "ZombieHorse", "ZombieVillager", "ZombifiedPiglin",
}

// Kinds lists every kind, MetaSkill first.
func Kinds() []Kind {
	return append([]Kind{MetaSkill}, entityKinds...)
}

// IsMetaSkill reports whether k is the MetaSkill sentinel.
func (k Kind) IsMetaSkill() bool { return k == MetaSkill }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == MetaSkill || slices.Contains(entityKinds, k)
}

func (k Kind) String() string { return string(k) }

// ParseKind looks a kind up by name, ignoring case.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown mob kind %q", s)
}

// UnmarshalText accepts any known kind. An empty kind decodes as
// DefaultKind.
func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*k = DefaultKind
		return nil
	}
	nk, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = nk
	return nil
}
