package targeter

// SingleEntity selects one entity or location.
type SingleEntity int

const (
	Self SingleEntity = iota
	Target
	Trigger
	NearestPlayer
	WolfOwner
	Owner
	Parent
	Mount
	Father
	Mother
	Passenger
	PlayerByName
	UniqueIdentifier
	Vehicle
	InteractionLastAttacker
	InteractionLastInteract
	OwnerLocation
	ParentLocation
)

// DefaultSingle is selected when switching to the single entity family.
const DefaultSingle = Self

// MultiEntity selects a group of entities.
type MultiEntity int

const (
	LivingInCone MultiEntity = iota
	LivingInWorld
	NotLivingNearOrigin
	PlayersInRadius
	MobsInRadius
	EntitiesInRadius
	EntitiesInRing
	EntitiesInRingNearOrigin
	PlayersInWorld
	PlayersOnServer
	PlayersInRing
	PlayersNearOrigin
	TrackedPlayers
	MobsNearOrigin
	EntitiesNearOrigin
	Children
	Siblings
	ItemsNearOrigin
	ItemsInRadius
)

// DefaultMulti is selected when switching to the multi entity family.
const DefaultMulti = PlayersInRadius

type entry struct {
	token string
	label string
	desc  string
}

var singles = [...]entry{
	Self:                    {"@Self", "Self", "Targets the caster of the mechanic"},
	Target:                  {"@Target", "Target", "Targets the caster's target"},
	Trigger:                 {"@Trigger", "Trigger", "Targets the entity that triggered the skill"},
	NearestPlayer:           {"@NearestPlayer", "Nearest Player", "Targets the nearest player in radius"},
	WolfOwner:               {"@WolfOwner", "Wolf Owner", "Targets the owner of the wolf"},
	Owner:                   {"@Owner", "Owner", "Targets the owner of the mob"},
	Parent:                  {"@Parent", "Parent", "Targets the parent of the mob"},
	Mount:                   {"@Mount", "Mount", "Targets the caster's original mount"},
	Father:                  {"@Father", "Father", "Targets the father of the casting mob"},
	Mother:                  {"@Mother", "Mother", "Targets the mother of the casting mob"},
	Passenger:               {"@Passenger", "Passenger", "Targets the rider of the caster"},
	PlayerByName:            {"@PlayerByName", "Player By Name", "Targets a specific player by name. Supports placeholders"},
	UniqueIdentifier:        {"@UniqueIdentifier", "Unique Identifier", "Targets a specific entity by their UUID. Supports placeholders"},
	Vehicle:                 {"@Vehicle", "Vehicle", "Targets the caster's vehicle"},
	InteractionLastAttacker: {"@InteractionLastAttacker", "Interaction Last Attacker", "Targets the last entity that attacked the casting INTERACTION entity"},
	InteractionLastInteract: {"@InteractionLastInteract", "Interaction Last Interact", "Targets the last entity that interacted with the casting INTERACTION entity"},
	OwnerLocation:           {"@OwnerLocation", "Owner Location", "Targets the position of the owner of the mob"},
	ParentLocation:          {"@ParentLocation", "Parent Location", "Targets the position of the parent of the mob"},
}

// Tokens are written as the plugin documents them, including the
// irregular casing of @MobsInradius and the @TrackerPlayers spelling.
var multis = [...]entry{
	LivingInCone:             {"@LivingInCone", "Living In Cone", "Targets all living entities in a cone with a specified angle, length and rotation relative to facing direction"},
	LivingInWorld:            {"@LivingInWorld", "Living In World", "Targets all living entities in the caster's world"},
	NotLivingNearOrigin:      {"@NotLivingNearOrigin", "Not Living Near Origin", "Targets all non living entities in a radius near the origin"},
	PlayersInRadius:          {"@PlayersInRadius", "Players In Radius", "Targets all players in the given radius"},
	MobsInRadius:             {"@MobsInradius", "Mobs In Radius", "Targets all MythicMobs or vanilla overrides of the given type in a radius"},
	EntitiesInRadius:         {"@EntitiesInRadius", "Entities In Radius", "Targets all entities in the given radius"},
	EntitiesInRing:           {"@EntitiesInRing", "Entities In Ring", "Targets all entities in the given ring"},
	EntitiesInRingNearOrigin: {"@EntitiesInRingNearOrigin", "Entities In Ring Near Origin", "Targets all entities in the given ring around the origin"},
	PlayersInWorld:           {"@PlayersInWorld", "Players In World", "Targets all players in the current world"},
	PlayersOnServer:          {"@PlayersOnServer", "Players On Server", "Targets all players in the server"},
	PlayersInRing:            {"@PlayersInRing", "Players In Ring", "Targets all players between the specified min and max radius"},
	PlayersNearOrigin:        {"@PlayersNearOrigin", "Players Near Origin", "Targets players near the origin of a meta-skill"},
	TrackedPlayers:           {"@TrackerPlayers", "Tracked Players", "Targets players that are within the render distance of the caster"},
	MobsNearOrigin:           {"@MobsNearOrigin", "Mobs Near Origin", "Targets all MythicMobs or vanilla overrides of the given type(s) in a radius around the origin"},
	EntitiesNearOrigin:       {"@EntitiesNearOrigin", "Entities Near Origin", "Targets all entities near the origin of a meta-skill"},
	Children:                 {"@Children", "Children", "Targets any child entities summoned by the caster"},
	Siblings:                 {"@Siblings", "Siblings", "Targets any mobs that share the same parent as the caster"},
	ItemsNearOrigin:          {"@ItemsNearOrigin", "Items Near Origin", "Targets item drops near the origin of a meta-skill"},
	ItemsInRadius:            {"@ItemsInRadius", "Items In Radius", "Targets all item drops in the given radius"},
}

func lookup(table []entry, i int) entry {
	if i < 0 || i >= len(table) {
		return entry{}
	}
	return table[i]
}

func (e SingleEntity) Token() string       { return lookup(singles[:], int(e)).token }
func (e SingleEntity) Label() string       { return lookup(singles[:], int(e)).label }
func (e SingleEntity) Description() string { return lookup(singles[:], int(e)).desc }
func (e SingleEntity) String() string      { return e.Token() }

func (e MultiEntity) Token() string       { return lookup(multis[:], int(e)).token }
func (e MultiEntity) Label() string       { return lookup(multis[:], int(e)).label }
func (e MultiEntity) Description() string { return lookup(multis[:], int(e)).desc }
func (e MultiEntity) String() string      { return e.Token() }

// Singles lists every single entity token in declaration order.
func Singles() []SingleEntity {
	out := make([]SingleEntity, len(singles))
	for i := range out {
		out[i] = SingleEntity(i)
	}
	return out
}

// Multis lists every multi entity token in declaration order.
func Multis() []MultiEntity {
	out := make([]MultiEntity, len(multis))
	for i := range out {
		out[i] = MultiEntity(i)
	}
	return out
}
