package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type DirectionalVelocity struct {
	Yaw      float32 `json:"yaw"`
	Pitch    float32 `json:"pitch"`
	Velocity float32 `json:"velocity"`
	Mode     string  `json:"mode"`
}

func (*DirectionalVelocity) spec() spec {
	return spec{
		label: "Directional Velocity",
		desc:  "Changes the velocity on the target entity on a specific vector",
		tmpl:  "- directionalvelocity{yaw={yaw};pitch={pitch};v={velocity};m={mode}}",
	}
}

type Disengage struct {
	Velocity  float32 `json:"velocity"`
	VelocityY float32 `json:"velocity_y"`
}

func (*Disengage) spec() spec {
	return spec{
		label: "Disengage",
		desc:  "Causes the caster to leap backwards away from the target entity",
		tmpl:  "- disengage{v={velocity};vy={velocity_y}}",
	}
}

type Dismount struct{}

func (*Dismount) spec() spec {
	return spec{
		label: "Dismount",
		desc:  "Makes the caster dismount whatever they're riding",
		tmpl:  "- dismount",
	}
}

type EjectPassenger struct{}

func (*EjectPassenger) spec() spec {
	return spec{
		label: "Eject Passenger",
		desc:  "Ejects anything riding the caster",
		tmpl:  "- ejectpassenger",
	}
}

type Fly struct{}

func (*Fly) spec() spec {
	return spec{
		label: "Fly",
		desc:  "Applies an aura that allows the targeted player to fly",
		tmpl:  "- fly",
	}
}

type ForcePull struct {
	Spread  uint32                 `json:"spread"`
	VSpread param.Optional[uint32] `json:"v_spread" mm:";vs="`
}

func (*ForcePull) spec() spec {
	return spec{
		label: "Force Pull",
		desc:  "Teleports the target to the caster",
		tmpl:  "- forcepull{s={spread}{v_spread}}",
	}
}

type GoTo struct {
	Speed   float32 `json:"speed"`
	SpreadH uint32  `json:"spread_h"`
	SpreadV uint32  `json:"spread_v"`
}

func (*GoTo) spec() spec {
	return spec{
		label: "Go To",
		desc:  "Move toward the location of the targeter (entity or location)",
		tmpl:  "- goto{s={speed};sh={spread_h};sv={spread_v}}",
	}
}

type Jump struct {
	Velocity float32 `json:"velocity"`
}

func (*Jump) spec() spec {
	return spec{
		label: "Jump",
		desc:  "Causes the caster to jump",
		tmpl:  "- jump{v={velocity}}",
	}
}

type Leap struct {
	Velocity float32 `json:"velocity"`
	Noise    float32 `json:"noise"`
}

func (*Leap) spec() spec {
	return spec{
		label: "Leap",
		desc:  "Causes the caster to leap towards the target",
		tmpl:  "- leap{v={velocity};n={noise}}",
	}
}

type Look struct {
	HeadOnly    bool `json:"head_only"`
	Force       bool `json:"force"`
	ForcePaper  bool `json:"force_paper"`
	Immediately bool `json:"immediately"`
}

func (*Look) spec() spec {
	return spec{
		label: "Look",
		desc:  "Causes the caster to look at the target",
		tmpl:  "- look{headOnly={head_only};force={force};forcepaper={force_paper};immediately={immediately}}",
	}
}

type Lunge struct {
	Velocity  float32 `json:"velocity"`
	VelocityY float32 `json:"velocity_y"`
	OldMath   bool    `json:"old_math"`
}

func (*Lunge) spec() spec {
	return spec{
		label: "Lunge",
		desc:  "Causes the caster to lunge forward at the target",
		tmpl:  "- lunge{velocity={velocity};velocityY={velocity_y};oldmath={old_math}}",
	}
}

type MatchRotation struct {
	Target string `json:"target"`
}

func (*MatchRotation) spec() spec {
	return spec{
		label: "Match Rotation",
		desc:  "Sets the caster's yaw and pitch to the same value of the target's",
		tmpl:  "- matchrotation{target={target}}",
	}
}

type Mount struct {
	Entity string `json:"entity"`
}

func (*Mount) spec() spec {
	return spec{
		label: "Mount",
		desc:  "Summons a mob for the caster and mounts it",
		tmpl:  "- mount{entity={entity}}",
	}
}

type MountMe struct {
	Entity string `json:"entity"`
}

func (*MountMe) spec() spec {
	return spec{
		label: "Mount Me",
		desc:  "Forces the targeted entity to mount the caster",
		tmpl:  "- mountme{entity={entity}}",
	}
}

type MountTarget struct {
	Entity string `json:"entity"`
}

func (*MountTarget) spec() spec {
	return spec{
		label: "Mount Target",
		desc:  "Mounts the target",
		tmpl:  "- mounttarget{entity={entity}}",
	}
}

type MovePin struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (*MovePin) spec() spec {
	return spec{
		label: "Move Pin",
		desc:  "Moves the given pin to the target location",
		tmpl:  "- movepin{x={x};y={y};z={z}}",
	}
}

type Propel struct {
	Velocity float32 `json:"velocity"`
}

func (*Propel) spec() spec {
	return spec{
		label: "Propel",
		desc:  "Propels the caster towards the target",
		tmpl:  "- propel{velocity={velocity}}",
	}
}

type Pull struct {
	Velocity float32 `json:"velocity"`
}

func (*Pull) spec() spec {
	return spec{
		label: "Pull",
		desc:  "Pulls the target towards the mob",
		tmpl:  "- pull{velocity={velocity}}",
	}
}

type RayTrace struct{}

func (*RayTrace) spec() spec {
	return spec{
		label: "Ray Trace",
		desc:  "Traces a straight line to the target",
		tmpl:  "- raytrace{}",
	}
}

type RayTraceTo struct{}

func (*RayTraceTo) spec() spec {
	return spec{
		label: "Ray Trace To",
		desc:  "Executes a skill with the result of a raytrace to the target location",
		tmpl:  "- raytraceto{}",
	}
}

type Recoil struct {
	Velocity float32 `json:"velocity"`
}

func (*Recoil) spec() spec {
	return spec{
		label: "Recoil",
		desc:  "Kicks the target's screen in order to simulate a recoil",
		tmpl:  "- recoil{velocity={velocity}}",
	}
}

type Remount struct{}

func (*Remount) spec() spec {
	return spec{
		label: "Remount",
		desc:  "Remounts the mob the caster originally spawned riding, if it is still alive",
		tmpl:  "- remount{}",
	}
}

type RotateTowards struct {
	Target string `json:"target"`
}

func (*RotateTowards) spec() spec {
	return spec{
		label: "Rotate Towards",
		desc:  "Rotates the caster towards the target location",
		tmpl:  "- rotatetowards{target={target}}",
	}
}

type Spin struct {
	Velocity uint8  `json:"velocity"`
	Aura     string `json:"aura"`
}

func (*Spin) spec() spec {
	return spec{
		label: "Spin",
		desc:  "Causes the target to spin",
		tmpl:  "- spin{velocity={velocity};{aura}}",
	}
}

type SummonPassenger struct {
	Passenger string               `json:"passenger"`
	Stack     param.Optional[bool] `json:"stack" mm:";stack="`
}

func (*SummonPassenger) spec() spec {
	return spec{
		label: "Summon Passenger",
		desc:  "Summons a mob to ride the target.",
		tmpl:  "- summonpassenger{type={passenger}{stack}}",
	}
}

type Swap struct{}

func (*Swap) spec() spec {
	return spec{
		label: "Swap",
		desc:  "Swaps locations with the target",
		tmpl:  "- swap",
	}
}

type Teleport struct {
	Spreadh       param.Optional[uint8] `json:"spreadh" mm:";spreadh="`
	Spreadv       param.Optional[uint8] `json:"spreadv" mm:";spreadv="`
	PreservePitch param.Optional[bool]  `json:"preserve_pitch" mm:";preservePitch="`
	PreserveYaw   param.Optional[bool]  `json:"preserve_yaw" mm:";preserveYaw="`
	SafeTeleport  param.Optional[bool]  `json:"safe_teleport" mm:";safeTeleport="`
}

func (*Teleport) spec() spec {
	return spec{
		label: "Teleport",
		desc:  "Teleports to the target",
		tmpl:  "- teleport{{spreadh}{spreadv}{preserve_pitch}{preserve_yaw}{safe_teleport}}",
	}
}

type TeleportY struct {
	Y uint32 `json:"y"`
}

func (*TeleportY) spec() spec {
	return spec{
		label: "Teleport Y",
		desc:  "Teleports the caster vertically",
		tmpl:  "- teleport{y={y}}",
	}
}

type TeleportIn struct {
	Vector         param.Optional[param.Xyz] `json:"vector" mm:";vector="`
	Yaw            param.Optional[uint32]    `json:"yaw" mm:";yaw="`
	TargetAsOrigin param.Optional[bool]      `json:"target_as_origin" mm:";targetAsOrigin="`
}

func (*TeleportIn) spec() spec {
	return spec{
		label: "Teleport In",
		desc:  "Teleports the target relative to the caster's yaw",
		tmpl:  "- teleportin{{vector}{yaw}{target_as_origin}}",
	}
}

type TeleportTo struct {
	Location       param.Xyz             `json:"location"`
	World          string                `json:"world"`
	Yaw            param.Optional[uint8] `json:"yaw" mm:";yaw="`
	Pitch          param.Optional[uint8] `json:"pitch" mm:";pitch="`
	Relative       param.Optional[bool]  `json:"relative" mm:";relative="`
	TargetAsOrigin param.Optional[bool]  `json:"target_as_origin" mm:";targetAsOrigin="`
}

func (*TeleportTo) spec() spec {
	return spec{
		label: "Teleport To",
		desc:  "Teleports the target to a specified location",
		tmpl:  "- teleportto{loc={location};w={world}{yaw}{pitch}{relative}{target_as_origin}}",
	}
}

type Throw struct {
	Velocity   uint8                `json:"velocity"`
	VelocityY  uint8                `json:"velocity_y"`
	FromOrigin param.Optional[bool] `json:"from_origin" mm:";fromOrigin="`
}

func (*Throw) spec() spec {
	return spec{
		label: "Throw",
		desc:  "Throws the target entity",
		tmpl:  "- throw{v={velocity};vy={velocity_y}{from_origin}}",
	}
}

type TrackLocation struct{}

func (*TrackLocation) spec() spec {
	return spec{
		label: "Track Location",
		desc:  "Sets the mob's tracked location to the targeted location",
		tmpl:  "- tracklocation",
	}
}

type Velocity struct {
	Mode      param.VelocityMode   `json:"mode"`
	VelocityX int32                `json:"velocity_x"`
	VelocityY int32                `json:"velocity_y"`
	VelocityZ int32                `json:"velocity_z"`
	Relative  param.Optional[bool] `json:"relative" mm:";relative="`
}

func (*Velocity) spec() spec {
	return spec{
		label: "Velocity",
		desc:  "Modifies the velocity of the targeted entity(s). May be used on players, too. Useful for all sorts of things like true knockback resistance, force-skills or simulated wind.",
		tmpl:  "- velocity{m={mode};x={velocity_x};y={velocity_y};z={velocity_z}{relative}}",
	}
}
