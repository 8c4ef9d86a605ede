package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

// Model applies a ModelEngine model to the caster. Its options are all
// optional keys; NewModel enables the ones ModelEngine documents defaults for.
type Model struct {
	ModelID         string                  `json:"model_id"`
	Remove          param.Optional[bool]    `json:"remove" mm:";r="`
	Hitbox          param.Optional[bool]    `json:"hitbox" mm:";h="`
	Invisible       param.Optional[bool]    `json:"invisible" mm:";i="`
	DamageTint      param.Optional[bool]    `json:"damage_tint" mm:";d="`
	Nametag         param.Optional[string]  `json:"nametag" mm:";n="`
	Drive           param.Optional[bool]    `json:"drive" mm:";drive="`
	Ride            param.Optional[bool]    `json:"ride" mm:";ride="`
	LockPitch       param.Optional[bool]    `json:"lock_pitch" mm:";lp="`
	LockYaw         param.Optional[bool]    `json:"lock_yaw" mm:";ly="`
	Step            param.Optional[float32] `json:"step" mm:";s="`
	Radius          param.Optional[int8]    `json:"radius" mm:";rad="`
	Scale           param.Optional[float32] `json:"scale" mm:";scale="`
	HitboxScale     param.Optional[float32] `json:"hitbox_scale" mm:";hs="`
	UseStateMachine param.Optional[bool]    `json:"use_state_machine" mm:";usm="`
	InitRender      param.Optional[bool]    `json:"init_render" mm:";init="`
	ShowHitbox      param.Optional[bool]    `json:"show_hitbox" mm:";showhitbox="`
	ShowShadow      param.Optional[bool]    `json:"show_shadow" mm:";showshadow="`
	SyncBody        param.Optional[bool]    `json:"sync_body" mm:";syncbody="`
	Save            param.Optional[bool]    `json:"save" mm:";save="`
}

// NewModel returns a Model with ModelEngine's documented defaults enabled.
func NewModel() *Model {
	return &Model{
		Hitbox:          param.Some(";h=", true, ""),
		Invisible:       param.Some(";i=", true, ""),
		DamageTint:      param.Some(";d=", true, ""),
		Drive:           param.Some(";drive=", false, ""),
		Ride:            param.Some(";ride=", false, ""),
		LockPitch:       param.Some(";lp=", false, ""),
		LockYaw:         param.Some(";ly=", false, ""),
		Step:            param.Some[float32](";s=", 0.5, ""),
		Radius:          param.Some[int8](";rad=", 0, ""),
		Scale:           param.Some[float32](";scale=", 1, ""),
		UseStateMachine: param.Some(";usm=", false, ""),
		InitRender:      param.Some(";init=", true, ""),
		ShowHitbox:      param.Some(";showhitbox=", true, ""),
		ShowShadow:      param.Some(";showshadow=", true, ""),
		SyncBody:        param.Some(";syncbody=", true, ""),
		Save:            param.Some(";save=", false, ""),
	}
}

func (*Model) spec() spec {
	return spec{
		label: "Model",
		desc:  "Applies or removes a ModelEngine model on the caster. Requires ModelEngine",
		tmpl:  "- model{m={model_id}{remove}{hitbox}{invisible}{damage_tint}{nametag}{drive}{ride}{lock_pitch}{lock_yaw}{step}{radius}{scale}{hitbox_scale}{use_state_machine}{init_render}{show_hitbox}{show_shadow}{sync_body}{save}}",
	}
}
