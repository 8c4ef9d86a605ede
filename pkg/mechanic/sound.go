package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type PlayBlockBreakSound struct {
	Block string `json:"block"`
}

func (*PlayBlockBreakSound) spec() spec {
	return spec{
		label: "Play Block Break Sound",
		desc:  "Plays a block breaking sound",
		tmpl:  "- playblockbreaksound{block={block}}",
	}
}

type PlayBlockFallSound struct {
	Block string `json:"block"`
}

func (*PlayBlockFallSound) spec() spec {
	return spec{
		label: "Play Block Fall Sound",
		desc:  "Plays a block falling sound",
		tmpl:  "- playblockfallsound{block={block}}",
	}
}

type PlayBlockHitSound struct {
	Block string `json:"block"`
}

func (*PlayBlockHitSound) spec() spec {
	return spec{
		label: "Play Block Hit Sound",
		desc:  "Plays a block hit sound",
		tmpl:  "- playblockhitsound{block={block}}",
	}
}

type PlayBlockPlaceSound struct {
	Block string `json:"block"`
}

func (*PlayBlockPlaceSound) spec() spec {
	return spec{
		label: "Play Block Place Sound",
		desc:  "Plays a block place sound",
		tmpl:  "- playblockplacesound{block={block}}",
	}
}

type PlayBlockStepSound struct {
	Block string `json:"block"`
}

func (*PlayBlockStepSound) spec() spec {
	return spec{
		label: "Play Block Step Sound",
		desc:  "Plays a block step sound",
		tmpl:  "- playblockstepsound{block={block}}",
	}
}

type Sound struct {
	Sound  string  `json:"sound"`
	Volume float32 `json:"volume"`
	Pitch  float32 `json:"pitch"`
}

func (*Sound) spec() spec {
	return spec{
		label: "Sound",
		desc:  "Plays a sound effect",
		tmpl:  "- sound{sound={sound};volume={volume};pitch={pitch}}",
	}
}

type StopSound struct {
	Sound string `json:"sound"`
}

func (*StopSound) spec() spec {
	return spec{
		label: "Stop Sound",
		desc:  "Stops a sound effect from playing",
		tmpl:  "- stopsound{s={sound}}",
	}
}

type StopSoundWithCategory struct {
	Sound         string              `json:"sound"`
	SoundCategory param.SoundCategory `json:"sound_category"`
}

func (*StopSoundWithCategory) spec() spec {
	return spec{
		label: "Stop Sound With Category",
		desc:  "Stops a sound effect from playing in the given sound category",
		tmpl:  "- stopsound{s={sound};source={sound_category}}",
	}
}
