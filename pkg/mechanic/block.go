package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type ActivateSpawner struct {
	Spawner param.SpawnerSelect `json:"spawner"`
}

func (*ActivateSpawner) spec() spec {
	return spec{
		label: "Activate Spawner",
		desc:  "Activates a MythicMobs spawner at the targeted location",
		tmpl:  "- activatespawner{spawner={spawner}}",
	}
}

type BlockDestabilize struct{}

func (*BlockDestabilize) spec() spec {
	return spec{
		label: "Block Destabilize",
		desc:  "Causes the targeted blocks to fall, as if affected by gravity",
		tmpl:  "- blockdestabilize",
	}
}

type BlockMask struct {
	Material string      `json:"material"`
	Radius   uint32      `json:"radius"`
	RadiusY  uint32      `json:"radius_y"`
	Noise    uint32      `json:"noise"`
	Duration uint32      `json:"duration"`
	Shape    param.Shape `json:"shape"`
	NoAir    bool        `json:"no_air"`
	OnlyAir  bool        `json:"only_air"`
	Occlude  bool        `json:"occlude"`
}

func (*BlockMask) spec() spec {
	return spec{
		label: "Block Mask",
		desc:  "Temporarily masks a block as a different block",
		tmpl:  "- effect:blockmask{m={material};r={radius};ry={radius_y};n={noise};d={duration};s={shape};na={no_air};oa={only_air};occ={occlude}}",
	}
}

type BlockUnmask struct {
	Radius uint32      `json:"radius"`
	Shape  param.Shape `json:"shape"`
}

func (*BlockUnmask) spec() spec {
	return spec{
		label: "Block Unmask",
		desc:  "Unmasks blocks that have been masked",
		tmpl:  "- effect:blockunmask{r={radius};s={shape}}",
	}
}

type BlockPhysics struct{}

func (*BlockPhysics) spec() spec {
	return spec{
		label: "Block Physics",
		desc:  "Triggers a block physics update at the target location",
		tmpl:  "- blockphysics",
	}
}

type BlockWave struct {
	Material           string      `json:"material"`
	Radius             uint32      `json:"radius"`
	RadiusY            uint32      `json:"radius_y"`
	Duration           uint32      `json:"duration"`
	Shape              param.Shape `json:"shape"`
	Velocity           float32     `json:"velocity"`
	HorizontalVelocity float32     `json:"horizontal_velocity"`
	SpecificVelocities bool        `json:"specific_velocities"`
	VelocityX          float32     `json:"velocity_x"`
	VelocityY          float32     `json:"velocity_y"`
	VelocityZ          float32     `json:"velocity_z"`
	Noise              uint32      `json:"noise"`
	HideSourceBlock    bool        `json:"hide_source_block"`
	IgnoreAir          bool        `json:"ignore_air"`
}

func (*BlockWave) spec() spec {
	return spec{
		label: "Block Wave",
		desc:  "Creates a wave of blocks at the target location",
		tmpl:  "- blockwave{m={material};r={radius};ry={radius_y};d={duration};s={shape};v={velocity};vh={horizontal_velocity};sv={specific_velocities};vx={velocity_x};vy={velocity_y};vz={velocity_z};n={noise};hsb={hide_source_block};ia={ignore_air}}",
	}
}

type BoneMeal struct {
	BlockFace string `json:"block_face"`
}

func (*BoneMeal) spec() spec {
	return spec{
		label: "Bone Meal",
		desc:  "Applies a bone meal effect to the target blocks",
		tmpl:  "- bonemeal{bf={block_face}}",
	}
}

type BossBorder struct {
	Radius uint32 `json:"radius"`
}

func (*BossBorder) spec() spec {
	return spec{
		label: "Boss Border",
		desc:  "Creates an inescapable border around the mob",
		tmpl:  "- bossBorder{r={radius}}",
	}
}

type BreakBlock struct {
	DoDrops  bool `json:"do_drops"`
	DoEffect bool `json:"do_effect"`
	UseTool  bool `json:"use_tool"`
}

func (*BreakBlock) spec() spec {
	return spec{
		label: "Break Block",
		desc:  "Breaks the block at the target location",
		tmpl:  "- breakblock{d={do_drops};e={do_effect};t={use_tool}}",
	}
}

type BreakBlockAndGiveItem struct {
	DoDrops       bool            `json:"do_drops"`
	DoEffect      bool            `json:"do_effect"`
	UseTool       bool            `json:"use_tool"`
	DoFakeLooting bool            `json:"do_fake_looting"`
	Items         param.ItemArray `json:"items"`
}

func (*BreakBlockAndGiveItem) spec() spec {
	return spec{
		label: "Break Block And Give Item",
		desc:  "Breaks the block at the target location and gives an item/droptable",
		tmpl:  "- breakBlockAndGiveItem{d={do_drops};e={do_effect};t={use_tool};fl={do_fake_looting};i={items}}",
	}
}

type EnderDragonResetCrystals struct{}

func (*EnderDragonResetCrystals) spec() spec {
	return spec{
		label: "Ender Dragon Reset Crystals",
		desc:  "Generates the EnderDragon crystals",
		tmpl:  "- enderDragonResetCrystals",
	}
}

type EnderDragonSpawnPortal struct {
	WithPortals bool `json:"with_portals"`
}

func (*EnderDragonSpawnPortal) spec() spec {
	return spec{
		label: "Ender Dragon Spawn Portal",
		desc:  "Generates the portal of the EnderDragon battle",
		tmpl:  "- enderDragonSpawnPortal{wp={with_portals}}",
	}
}

type Explosion struct {
	PowerExplosion float32 `json:"power_explosion"`
	BlockDamage    bool    `json:"block_damage"`
	Fire           bool    `json:"fire"`
}

func (*Explosion) spec() spec {
	return spec{
		label: "Explosion",
		desc:  "Causes an explosion",
		tmpl:  "- explosion{y={power_explosion};bd={block_damage};f={fire}}",
	}
}

type FawePaste struct {
	Schematic          string                 `json:"schematic"`
	PasteID            param.Optional[string] `json:"paste_id" mm:";pid="`
	PasteAir           bool                   `json:"paste_air"`
	XOffset            int32                  `json:"x_offset"`
	YOffset            int32                  `json:"y_offset"`
	ZOffset            int32                  `json:"z_offset"`
	Rotation           float32                `json:"rotation"`
	Center             bool                   `json:"center"`
	ChestDropTable     param.Optional[string] `json:"chest_drop_table" mm:";cdt="`
	TrapChestDropTable param.Optional[string] `json:"trap_chest_drop_table" mm:";tcdt="`
	BlocksPerTick      uint32                 `json:"blocks_per_tick"`
	Duration           uint32                 `json:"duration"`
}

func (*FawePaste) spec() spec {
	return spec{
		label: "Fawe Paste",
		desc:  "Pastes a Schematic using FAWE (Fast Async World Edit)",
		tmpl:  "- fawePaste{s={schematic}{paste_id};a={paste_air};x={x_offset};y={y_offset};z={z_offset};rot={rotation};c={center}{chest_drop_table}{trap_chest_drop_table};bpt={blocks_per_tick};d={duration}}",
	}
}

type Geyser struct {
	LiquidType string `json:"liquid_type"`
	Height     uint32 `json:"height"`
	Interval   uint32 `json:"interval"`
}

func (*Geyser) spec() spec {
	return spec{
		label: "Geyser",
		desc:  "Creates a \"geyser\" of water or lava",
		tmpl:  "- geyser{t={liquid_type};h={height};i={interval}}",
	}
}

type Lightning struct {
	Damage float32 `json:"damage"`
}

func (*Lightning) spec() spec {
	return spec{
		label: "Lightning",
		desc:  "Strikes lightning at the target",
		tmpl:  "- lightning{damage={damage}}",
	}
}

type Prison struct{}

func (*Prison) spec() spec {
	return spec{
		label: "Prison",
		desc:  "Imprisons the target inside a block",
		tmpl:  "- prison{}",
	}
}

type PushBlock struct {
	Velocity float32 `json:"velocity"`
}

func (*PushBlock) spec() spec {
	return spec{
		label: "Push Block",
		desc:  "Pushes the block at the target location in the given direction",
		tmpl:  "- pushblock{velocity={velocity}}",
	}
}

type PushButton struct{}

func (*PushButton) spec() spec {
	return spec{
		label: "Push Button",
		desc:  "Pushes a button at the target location",
		tmpl:  "- pushbutton{}",
	}
}

type SetBlockOpen struct {
	Open bool `json:"open"`
}

func (*SetBlockOpen) spec() spec {
	return spec{
		label: "Set Block Open",
		desc:  "Sets the target block's open state",
		tmpl:  "- setblockopen{open={open}}",
	}
}

type SetBlockType struct {
	Block string `json:"block"`
}

func (*SetBlockType) spec() spec {
	return spec{
		label: "Set Block Type",
		desc:  "Change block type at target location",
		tmpl:  "- setblocktype{block={block}}",
	}
}

type SetChunkForceLoaded struct {
	Loaded bool `json:"loaded"`
}

func (*SetChunkForceLoaded) spec() spec {
	return spec{
		label: "Set Chunk Force Loaded",
		desc:  "Sets the force-loaded status of a location's chunk",
		tmpl:  "- setchunkforceloaded{loaded={loaded}}",
	}
}

type SetDragonPodium struct {
	Podium bool `json:"podium"`
}

func (*SetDragonPodium) spec() spec {
	return spec{
		label: "Set Dragon Podium",
		desc:  "Sets the position of the dragon's podium at the target location",
		tmpl:  "- setdragonpodium{podium={podium}}",
	}
}

type SetRaiderPatrolBlock struct {
	Block string `json:"block"`
}

func (*SetRaiderPatrolBlock) spec() spec {
	return spec{
		label: "Set Raider Patrol Block",
		desc:  "Sets the target raider to patrol a location",
		tmpl:  "- setraiderpatrolblock{block={block}}",
	}
}

type Spring struct {
	SpringType param.SpringType `json:"spring_type"`
	Duration   uint32           `json:"duration"`
}

func (*Spring) spec() spec {
	return spec{
		label: "Spring",
		desc:  "Creates a temporary spring of liquid at the target",
		tmpl:  "- spring{t={spring_type};d={duration}}",
	}
}

type SummonFallingBlock struct {
	Material string `json:"material"`
}

func (*SummonFallingBlock) spec() spec {
	return spec{
		label: "Summon Falling Block",
		desc:  "Summons a falling block",
		tmpl:  "- summonfallingblock{m={material}}",
	}
}

type Time struct {
	Mode     param.AddSetReset    `json:"mode"`
	Amount   uint32               `json:"amount"`
	Personal param.Optional[bool] `json:"personal" mm:";personal="`
	Relative param.Optional[bool] `json:"relative" mm:";relative="`
}

func (*Time) spec() spec {
	return spec{
		label: "Time",
		desc:  "Changes the time",
		tmpl:  "- time{mode={mode};amount={amount}{personal}{relative}}",
	}
}

type ThunderLevel struct {
	Level param.ThunderLevel `json:"level"`
}

func (*ThunderLevel) spec() spec {
	return spec{
		label: "Thunder Level",
		desc:  "Creates a client-side, per-player rainless storm",
		tmpl:  "- thunderlevel{l={level}}",
	}
}

type ToggleLever struct {
	Location param.Optional[param.Xyz] `json:"location" mm:"l=" mmsuf:";"`
	Duration uint32                    `json:"duration"`
	X        param.Optional[int32]     `json:"x" mm:"x=" mmsuf:";"`
	Y        param.Optional[int32]     `json:"y" mm:"y=" mmsuf:";"`
	Z        param.Optional[int32]     `json:"z" mm:"z=" mmsuf:";"`
}

func (*ToggleLever) spec() spec {
	return spec{
		label: "Toggle Lever",
		desc:  "Toggles a lever at the target location",
		tmpl:  "- togglelever{duration={duration};{location}{x}{y}{z}}",
	}
}

type TogglePiston struct{}

func (*TogglePiston) spec() spec {
	return spec{
		label: "Toggle Piston",
		desc:  "Toggles a piston at the target location",
		tmpl:  "- togglepiston",
	}
}

type UndoPaste struct {
	PasteID string `json:"paste_id"`
}

func (*UndoPaste) spec() spec {
	return spec{
		label: "Undo Paste",
		desc:  "Undoes a previous paste done via the fawePaste mechanic, based on its id or on the schematic used",
		tmpl:  "- undopaste{id={paste_id}}",
	}
}

type WorldEditReplace struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (*WorldEditReplace) spec() spec {
	return spec{
		label: "World Edit Replace",
		desc:  "Replaces blocks in a region using WorldEdit",
		tmpl:  "- worldEditReplace{from={from};to={to}}",
	}
}

type Weather struct {
	WeatherType param.WeatherType `json:"weather_type"`
	Duration    uint32            `json:"duration"`
}

func (*Weather) spec() spec {
	return spec{
		label: "Weather",
		desc:  "Changes the weather for the target player",
		tmpl:  "- weather{type={weather_type};duration={duration}}",
	}
}
