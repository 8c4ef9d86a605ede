package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type Disguise struct {
	Disguise string `json:"disguise"`
}

func (*Disguise) spec() spec {
	return spec{
		label: "Disguise",
		desc:  "Changes the caster's disguise",
		tmpl:  "- disguise{d={disguise}}",
	}
}

type DisguiseModify struct {
	Disguise string `json:"disguise"`
}

func (*DisguiseModify) spec() spec {
	return spec{
		label: "Disguise Modify",
		desc:  "Modifies the caster's already applied disguise",
		tmpl:  "- disguisemodify{d={disguise}}",
	}
}

type DisguiseTarget struct {
	Disguise string `json:"disguise"`
}

func (*DisguiseTarget) spec() spec {
	return spec{
		label: "Disguise Target",
		desc:  "Changes the target's disguise",
		tmpl:  "- disguisetarget{d={disguise}}",
	}
}

type Undisguise struct{}

func (*Undisguise) spec() spec {
	return spec{
		label: "Undisguise",
		desc:  "Removes the caster's disguise",
		tmpl:  "- undisguise",
	}
}

type DisplayTransformation struct {
	Action             string `json:"action"`
	TransformationType string `json:"transformation_type"`
	Value              string `json:"value"`
}

func (*DisplayTransformation) spec() spec {
	return spec{
		label: "Display Transformation",
		desc:  "Sets the targeted display entity's transformations",
		tmpl:  "- displaytransformation{a={action};tt={transformation_type};val={value}}",
	}
}

type Doppleganger struct {
	HasNameplate  bool                   `json:"has_nameplate"`
	UsePlayerName param.Optional[string] `json:"use_player_name" mm:";upn="`
}

func (*Doppleganger) spec() spec {
	return spec{
		label: "Doppleganger",
		desc:  "Copies the appearance of the target player",
		tmpl:  "- doppleganger{nameplate={has_nameplate}{use_player_name}}",
	}
}

type EnderDragonSetPhase struct {
	Phase string `json:"phase"`
}

func (*EnderDragonSetPhase) spec() spec {
	return spec{
		label: "Ender Dragon Set Phase",
		desc:  "Sets the EnderDragon phase",
		tmpl:  "- enderDragonSetPhase{p={phase}}",
	}
}

type EnderDragonSetRespawnPhase struct {
	Phase string `json:"phase"`
}

func (*EnderDragonSetRespawnPhase) spec() spec {
	return spec{
		label: "Ender Dragon Set Respawn Phase",
		desc:  "Sets the EnderDragon respawn phase",
		tmpl:  "- enderDragonSetRespawnPhase{p={phase}}",
	}
}

type RemoveOwner struct{}

func (*RemoveOwner) spec() spec {
	return spec{
		label: "Remove Owner",
		desc:  "Removes the ownership of the target mob",
		tmpl:  "- removeowner{}",
	}
}

type ResetAI struct{}

func (*ResetAI) spec() spec {
	return spec{
		label: "Reset AI",
		desc:  "Attempts to reset the AI of a casting mob to the base type's default",
		tmpl:  "- resetai{}",
	}
}

type RunAIGoalSelector struct{}

func (*RunAIGoalSelector) spec() spec {
	return spec{
		label: "Run AI Goal Selector",
		desc:  "Change the caster's AIGoalSelectors",
		tmpl:  "- runaigoalselector{}",
	}
}

type RunAITargetSelector struct{}

func (*RunAITargetSelector) spec() spec {
	return spec{
		label: "Run AI Target Selector",
		desc:  "Change the caster's AITargetSelectors",
		tmpl:  "- runaitargetselector{}",
	}
}

type SetAI struct {
	AI string `json:"ai"`
}

func (*SetAI) spec() spec {
	return spec{
		label: "Set AI",
		desc:  "Disables/enables the AI of the target mob",
		tmpl:  "- setai{ai={ai}}",
	}
}

type SetCollidable struct {
	Collidable bool `json:"collidable"`
}

func (*SetCollidable) spec() spec {
	return spec{
		label: "Set Collidable",
		desc:  "Sets if the target should have a collidable hitbox or not",
		tmpl:  "- setcollidable{collidable={collidable}}",
	}
}

type SetGameMode struct {
	Gamemode string `json:"gamemode"`
}

func (*SetGameMode) spec() spec {
	return spec{
		label: "Set Game Mode",
		desc:  "Sets the Game Mode of the target player",
		tmpl:  "- setgamemode{gamemode={gamemode}}",
	}
}

type SetGliding struct {
	Gliding bool `json:"gliding"`
}

func (*SetGliding) spec() spec {
	return spec{
		label: "Set Gliding",
		desc:  "Makes the target glide if they have elytra",
		tmpl:  "- setgliding{gliding={gliding}}",
	}
}

type SetGravity struct {
	Gravity float32 `json:"gravity"`
}

func (*SetGravity) spec() spec {
	return spec{
		label: "Set Gravity",
		desc:  "Sets whether gravity affects the target entity",
		tmpl:  "- setgravity{gravity={gravity}}",
	}
}

type SetHealth struct {
	Health float32 `json:"health"`
}

func (*SetHealth) spec() spec {
	return spec{
		label: "Set Health",
		desc:  "Sets the health of the target entity",
		tmpl:  "- sethealth{health={health}}",
	}
}

type SetInteractionSize struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

func (*SetInteractionSize) spec() spec {
	return spec{
		label: "Set Interaction Size",
		desc:  "Sets the size of the target `INTERACTION` entity",
		tmpl:  "- setinteractionsize{width={width};height={height}}",
	}
}

type SetLeashHolder struct {
	Holder string `json:"holder"`
}

func (*SetLeashHolder) spec() spec {
	return spec{
		label: "Set Leash Holder",
		desc:  "Changes the holder of a mob's lead",
		tmpl:  "- setleashholder{holder={holder}}",
	}
}

type SetLevel struct {
	Level uint32 `json:"level"`
}

func (*SetLevel) spec() spec {
	return spec{
		label: "Set Level",
		desc:  "Changes the casting mob's level",
		tmpl:  "- setlevel{level={level}}",
	}
}

type SetMaterialCooldown struct {
	Material string `json:"material"`
	Cooldown uint32 `json:"cooldown"`
}

func (*SetMaterialCooldown) spec() spec {
	return spec{
		label: "Set Material Cooldown",
		desc:  "Sets a cooldown for usable materials like ender pearls, chorus fruit, etc",
		tmpl:  "- setmaterialcooldown{material={material};cooldown={cooldown}}",
	}
}

type SetMaxHealth struct {
	Health float32 `json:"health"`
}

func (*SetMaxHealth) spec() spec {
	return spec{
		label: "Set Max Health",
		desc:  "Sets the max health of the target entity",
		tmpl:  "- setmaxhealth{health={health}}",
	}
}

type SetMobColor struct {
	Color string `json:"color"`
}

func (*SetMobColor) spec() spec {
	return spec{
		label: "Set Mob Color",
		desc:  "Changes the color of the target if it is a colorable mob",
		tmpl:  "- setmobcolor{color={color}}",
	}
}

type SetName struct {
	Name string `json:"name"`
}

func (*SetName) spec() spec {
	return spec{
		label: "Set Name",
		desc:  "Changes the caster entity's name",
		tmpl:  "- setname{name={name}}",
	}
}

type SetRaiderCanJoinRaid struct {
	CanJoin bool `json:"can_join"`
}

func (*SetRaiderCanJoinRaid) spec() spec {
	return spec{
		label: "Set Raider Can Join Raid",
		desc:  "Sets if the target raider entity can join a raid or not",
		tmpl:  "- setraidercanjoinraid{can_join={can_join}}",
	}
}

type SetRaiderPatrolLeader struct {
	Leader string `json:"leader"`
}

func (*SetRaiderPatrolLeader) spec() spec {
	return spec{
		label: "Set Raider Patrol Leader",
		desc:  "Sets the raider patrol leader",
		tmpl:  "- setraiderpatrolleader{leader={leader}}",
	}
}

type SetFaction struct {
	Faction string `json:"faction"`
}

func (*SetFaction) spec() spec {
	return spec{
		label: "Set Faction",
		desc:  "Changes the target entity's faction",
		tmpl:  "- setfaction{faction={faction}}",
	}
}

type SetFlying struct {
	Flying bool `json:"flying"`
}

func (*SetFlying) spec() spec {
	return spec{
		label: "Set Flying",
		desc:  "Sets whether the target player is flying",
		tmpl:  "- setflying{flying={flying}}",
	}
}

type SetNoDamageTicks struct {
	Ticks uint32 `json:"ticks"`
}

func (*SetNoDamageTicks) spec() spec {
	return spec{
		label: "Set No Damage Ticks",
		desc:  "Sets the no damage ticks of the target",
		tmpl:  "- setnodamageticks{ticks={ticks}}",
	}
}

type SetOwner struct {
	Owner string `json:"owner"`
}

func (*SetOwner) spec() spec {
	return spec{
		label: "Set Owner",
		desc:  "Makes the target the owner of the casting mob",
		tmpl:  "- setowner{owner={owner}}",
	}
}

type SetParent struct {
	Parent string `json:"parent"`
}

func (*SetParent) spec() spec {
	return spec{
		label: "Set Parent",
		desc:  "Makes the target the parent of the casting mob",
		tmpl:  "- setparent{parent={parent}}",
	}
}

type SetPathfindingMalus struct {
	Malus float32 `json:"malus"`
}

func (*SetPathfindingMalus) spec() spec {
	return spec{
		label: "Set Pathfinding Malus",
		desc:  "Sets the pathfinding malus of a mob for given terrain types",
		tmpl:  "- setpathfindingmalus{malus={malus}}",
	}
}

type SetPitch struct {
	Pitch float32 `json:"pitch"`
}

func (*SetPitch) spec() spec {
	return spec{
		label: "Set Pitch",
		desc:  "Sets the head pitch of the target entity",
		tmpl:  "- setpitch{pitch={pitch}}",
	}
}

type SetPose struct {
	Pose string `json:"pose"`
}

func (*SetPose) spec() spec {
	return spec{
		label: "Set Pose",
		desc:  "Sets the entity's pose",
		tmpl:  "- setpose{pose={pose}}",
	}
}

type SetRotation struct {
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

func (*SetRotation) spec() spec {
	return spec{
		label: "Set Rotation",
		desc:  "Sets the rotation of the target",
		tmpl:  "- setrotation{yaw={yaw};pitch={pitch}}",
	}
}

type SetTarget struct {
	Target string `json:"target"`
}

func (*SetTarget) spec() spec {
	return spec{
		label: "Set Target",
		desc:  "Sets the caster's target",
		tmpl:  "- settarget{target={target}}",
	}
}

type SetTextDisplay struct {
	Text string `json:"text"`
}

func (*SetTextDisplay) spec() spec {
	return spec{
		label: "Set Text Display",
		desc:  "Sets the text component of target Text Display entity",
		tmpl:  "- settextdisplay{text={text}}",
	}
}

type SetTongueTarget struct {
	Target string `json:"target"`
}

func (*SetTongueTarget) spec() spec {
	return spec{
		label: "Set Tongue Target",
		desc:  "Sets the tongue target for a frog caster to the target entity",
		tmpl:  "- settonguetarget{target={target}}",
	}
}

type SetSpeed struct {
	Speed float32 `json:"speed"`
}

func (*SetSpeed) spec() spec {
	return spec{
		label: "Set Speed",
		desc:  "Sets the target entity's speed attribute",
		tmpl:  "- setspeed{speed={speed}}",
	}
}

type SetStance struct {
	Stance string `json:"stance"`
}

func (*SetStance) spec() spec {
	return spec{
		label: "Set Stance",
		desc:  "Sets the stance of the target mob",
		tmpl:  "- setstance{stance={stance}}",
	}
}

type ToggleSitting bool

func (*ToggleSitting) spec() spec {
	return spec{
		label: "Toggle Sitting",
		desc:  "Toggles the sitting state for cats, dogs, foxes, and parrots",
		tmpl:  "- sit{state={0}}",
	}
}

type WolfSit bool

func (*WolfSit) spec() spec {
	return spec{
		label: "Wolf Sit",
		desc:  "Forces a targeted wolf to sit or stand",
		tmpl:  "- wolfsit{state={0}}",
	}
}

type AdditionalMechanic struct {
	MechanicType param.AddonPlugin `json:"mechanic_type"`
}

func (*AdditionalMechanic) spec() spec {
	return spec{
		label: "Addon Mechanic",
		desc:  "Links to mechanics added by addon plugins. Any mechanics from these links will not work without that plugin installed.",
		tmpl:  "- {mechanic_type}",
	}
}
