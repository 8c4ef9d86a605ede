package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type ArmAnimation struct{}

func (*ArmAnimation) spec() spec {
	return spec{
		label: "Arm Animation",
		desc:  "Makes the caster swing their arm",
		tmpl:  "- armAnimation @self",
	}
}

type BlackScreen struct {
	Duration uint32 `json:"duration"`
}

func (*BlackScreen) spec() spec {
	return spec{
		label: "Black Screen",
		desc:  "Blacks out the target player's screen for a duration",
		tmpl:  "- blackscreen{d={duration}}",
	}
}

type BloodyScreen struct {
	Duration uint32 `json:"duration"`
	Cancel   bool   `json:"cancel"`
}

func (*BloodyScreen) spec() spec {
	return spec{
		label: "Bloody Screen",
		desc:  "Makes the target's screen glow red",
		tmpl:  "- effect:bloodyScreen{d={duration};c={cancel}}",
	}
}

type Ender struct{}

func (*Ender) spec() spec {
	return spec{
		label: "Ender",
		desc:  "Causes the \"Ender\" effect",
		tmpl:  "- ender",
	}
}

type EnderBeam struct {
	Duration uint32  `json:"duration"`
	YOffset  float32 `json:"y_offset"`
}

func (*EnderBeam) spec() spec {
	return spec{
		label: "Ender Beam",
		desc:  "Creates an EnderCrystal's beam effect to the target",
		tmpl:  "- effect:enderbeam{d={duration};y={y_offset}}",
	}
}

type FakeExplosion struct{}

func (*FakeExplosion) spec() spec {
	return spec{
		label: "Fake Explosion",
		desc:  "Causes a fake explosion",
		tmpl:  "- fakeexplosion",
	}
}

type Firework struct {
	FireworkType string `json:"firework_type"`
	Power        uint32 `json:"power"`
	Flicker      bool   `json:"flicker"`
	Trail        bool   `json:"trail"`
	Colors       string `json:"colors"`
	FadeColors   string `json:"fade_colors"`
}

func (*Firework) spec() spec {
	return spec{
		label: "Firework",
		desc:  "Creates a firework effect at the target",
		tmpl:  "- effect:firework{t={firework_type};p={power};f={flicker};tr={trail};c={colors};fc={fade_colors}}",
	}
}

type Flames struct{}

func (*Flames) spec() spec {
	return spec{
		label: "Flames",
		desc:  "Creates the flames effect at the location of the targeter",
		tmpl:  "- flames",
	}
}

type Glow struct {
	Color string `json:"color"`
}

func (*Glow) spec() spec {
	return spec{
		label: "Glow",
		desc:  "Makes the target glow",
		tmpl:  "- effect:glow{color={color}}",
	}
}

type GuardianBeam struct {
	Duration      uint32                 `json:"duration"`
	Interval      uint32                 `json:"interval"`
	StartYOffset  float32                `json:"start_y_offset"`
	TargetYOffset float32                `json:"target_y_offset"`
	FromOrigin    bool                   `json:"from_origin"`
	OnStartSkill  param.Optional[string] `json:"on_start_skill" mm:";oS="`
	OnTickSkill   param.Optional[string] `json:"on_tick_skill" mm:";oT="`
	OnEndSkill    param.Optional[string] `json:"on_end_skill" mm:";oE="`
}

func (*GuardianBeam) spec() spec {
	return spec{
		label: "Guardian Beam",
		desc:  "Draws a guardian beam between the origin and the target",
		tmpl:  "- guardianbeam{d={duration};i={interval};syo={start_y_offset};tyo={target_y_offset};fo={from_origin}{on_start_skill}{on_tick_skill}{on_end_skill}}",
	}
}

type Hologram struct {
	Text string `json:"text"`
	Stay uint32 `json:"stay"`
}

func (*Hologram) spec() spec {
	return spec{
		label: "Hologram",
		desc:  "Summons a hologram to the targeted location",
		tmpl:  "- holo{text={text};time={stay}}",
	}
}

type FakeLightning struct {
	Localized       bool   `json:"localized"`
	LocalizedRadius uint32 `json:"localized_radius"`
}

func (*FakeLightning) spec() spec {
	return spec{
		label: "Fake Lightning",
		desc:  "Strikes a fake lightning at the target",
		tmpl:  "- fakelightning{localized={localized};localizedradius={localized_radius}}",
	}
}

type Particle struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
}

func (*Particle) spec() spec {
	return spec{
		label: "Particle",
		desc:  "Creates particle effects around the target",
		tmpl:  "- particle{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z}}",
	}
}

type ParticleBox struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Width    float32 `json:"width"`
	Height   float32 `json:"height"`
}

func (*ParticleBox) spec() spec {
	return spec{
		label: "Particle Box",
		desc:  "Draws a box of particles around the target",
		tmpl:  "- particlebox{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};width={width};height={height}}",
	}
}

type ParticleEquation struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Equation string  `json:"equation"`
}

func (*ParticleEquation) spec() spec {
	return spec{
		label: "Particle Equation",
		desc:  "Generates particles based on equations",
		tmpl:  "- particleequation{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};equation={equation}}",
	}
}

type ParticleLine struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Length   float32 `json:"length"`
}

func (*ParticleLine) spec() spec {
	return spec{
		label: "Particle Line",
		desc:  "Draws a line of particle effects to the target",
		tmpl:  "- particleline{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};length={length}}",
	}
}

type ParticleLineHelix struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Length   float32 `json:"length"`
	Radius   float32 `json:"radius"`
}

func (*ParticleLineHelix) spec() spec {
	return spec{
		label: "Particle Line Helix",
		desc:  "Draws a line based helix effect",
		tmpl:  "- particlelinehelix{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};length={length};radius={radius}}",
	}
}

type ParticleLineRing struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Radius   float32 `json:"radius"`
}

func (*ParticleLineRing) spec() spec {
	return spec{
		label: "Particle Line Ring",
		desc:  "Draws a particle ring connected by lines",
		tmpl:  "- particlelinering{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};radius={radius}}",
	}
}

type ParticleOrbital struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Radius   float32 `json:"radius"`
}

func (*ParticleOrbital) spec() spec {
	return spec{
		label: "Particle Orbital",
		desc:  "Draws orbiting particle effects around the target",
		tmpl:  "- particleorbital{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};radius={radius}}",
	}
}

type ParticleRing struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Radius   float32 `json:"radius"`
}

func (*ParticleRing) spec() spec {
	return spec{
		label: "Particle Ring",
		desc:  "Draws a ring of particles around the target",
		tmpl:  "- particlering{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};radius={radius}}",
	}
}

type ParticleSphere struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Radius   float32 `json:"radius"`
}

func (*ParticleSphere) spec() spec {
	return spec{
		label: "Particle Sphere",
		desc:  "Draws a sphere of particles around the target",
		tmpl:  "- particlesphere{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};radius={radius}}",
	}
}

type ParticleTornado struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Height   float32 `json:"height"`
	Radius   float32 `json:"radius"`
}

func (*ParticleTornado) spec() spec {
	return spec{
		label: "Particle Tornado",
		desc:  "Draws a persistent \"tornado\" of particles at the target",
		tmpl:  "- particletornado{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};height={height};radius={radius}}",
	}
}

type Atom struct {
	Particle string  `json:"particle"`
	Amount   uint32  `json:"amount"`
	Speed    float32 `json:"speed"`
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	Z        float32 `json:"z"`
	Radius   float32 `json:"radius"`
}

func (*Atom) spec() spec {
	return spec{
		label: "Atom",
		desc:  "Creates some particles in the shape of an atom",
		tmpl:  "- atom{particle={particle};amount={amount};speed={speed};x={x};y={y};z={z};radius={radius}}",
	}
}

type PlayAnimation struct {
	Animation string `json:"animation"`
}

func (*PlayAnimation) spec() spec {
	return spec{
		label: "Play Animation",
		desc:  "Forces the entity to play an animation",
		tmpl:  "- playanimation{animation={animation}}",
	}
}

type Skybox struct {
	Skybox string `json:"skybox"`
}

func (*Skybox) spec() spec {
	return spec{
		label: "Skybox",
		desc:  "Alters the target player's skybox",
		tmpl:  "- skybox{skybox={skybox}}",
	}
}

type Smoke struct{}

func (*Smoke) spec() spec {
	return spec{
		label: "Smoke",
		desc:  "Creates a puff of smoke",
		tmpl:  "- smoke{}",
	}
}

type SmokeSwirl struct{}

func (*SmokeSwirl) spec() spec {
	return spec{
		label: "Smoke Swirl",
		desc:  "Creates a persistent \"swirl\" of smoke",
		tmpl:  "- smokeswirl{}",
	}
}

type SummonAreaEffectCloud struct {
	Particle               param.Optional[param.Particle]          `json:"particle" mm:";p="`
	EffectType             param.Optional[param.EffectType]        `json:"effect_type" mm:";type="`
	PotionDuration         param.Optional[uint32]                  `json:"potion_duration" mm:";pd="`
	Level                  param.Optional[uint8]                   `json:"level" mm:";l="`
	Duration               param.Optional[uint32]                  `json:"duration" mm:";d="`
	DurationReductionOnUse param.Optional[param.DurationReduction] `json:"duration_reduction_on_use" mm:";drou="`
	Radius                 param.Optional[uint8]                   `json:"radius" mm:";r="`
	RadiusReductionOnUse   param.Optional[param.RadiusReduction]   `json:"radius_reduction_on_use" mm:";rrou="`
	RadiusReductionOnTick  param.Optional[param.RadiusReduction]   `json:"radius_reduction_on_tick" mm:";rrot="`
}

func (*SummonAreaEffectCloud) spec() spec {
	return spec{
		label: "Summon Area Effect Cloud",
		desc:  "Summons a cloud of particles at the target",
		tmpl:  "- summonareaeffectcloud{{particle}{effect_type}{potion_duration}{level}{duration}{duration_reduction_on_use}{radius}{radius_reduction_on_use}{radius_reduction_on_tick}}",
	}
}

type SwingOffHand struct{}

func (*SwingOffHand) spec() spec {
	return spec{
		label: "Swing Off Hand",
		desc:  "Makes the casting player swing their offhand",
		tmpl:  "- swingoffhand",
	}
}

type TotemOfUndying struct {
	Model string `json:"model"`
}

func (*TotemOfUndying) spec() spec {
	return spec{
		label: "Totem Of Undying",
		desc:  "Plays the effect of a totem resurrecting a player with options to specify CustomModelData to use from resource packs.",
		tmpl:  "- totemofundying{mode={model}}",
	}
}
