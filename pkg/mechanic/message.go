package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type Command struct {
	Command       string `json:"command"`
	AsCaster      bool   `json:"as_caster"`
	AsOp          bool   `json:"as_op"`
	AsTarget      bool   `json:"as_target"`
	RequireTarget bool   `json:"require_target"`
}

func (*Command) spec() spec {
	return spec{
		label: "Command",
		desc:  "Executes a command for each target",
		tmpl:  "- command{c={command};ac={as_caster};op={as_op};at={as_target};rt={require_target}}",
	}
}

type JSONMessage struct {
	Message string `json:"message"`
}

func (*JSONMessage) spec() spec {
	return spec{
		label: "JSON Message",
		desc:  "Sends a JSON-format message to the target player(s)",
		tmpl:  "- jsonmessage{m={message}}",
	}
}

type Log struct {
	Message string `json:"message"`
}

func (*Log) spec() spec {
	return spec{
		label: "Log",
		desc:  "Logs a message to console",
		tmpl:  "- log{message={message}}",
	}
}

type Message struct {
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

func (*Message) spec() spec {
	return spec{
		label: "Message",
		desc:  "Sends a message to the target player(s)",
		tmpl:  "- message{message={message};audience={audience}}",
	}
}

type PrintParentTree struct{}

func (*PrintParentTree) spec() spec {
	return spec{
		label: "Print Parent Tree",
		desc:  "Prints debug information regarding the Metaskill executing the mechanic and its SkillTree",
		tmpl:  "- printparenttree{}",
	}
}

type RandomMessage struct {
	Messages param.RandomMessages `json:"messages"`
}

func (*RandomMessage) spec() spec {
	return spec{
		label: "Random Message",
		desc:  "Sends a random message to the target player",
		tmpl:  "- randommessage{messages={messages}}",
	}
}

type SendActionMessage struct {
	Message string `json:"message"`
}

func (*SendActionMessage) spec() spec {
	return spec{
		label: "Send Action Message",
		desc:  "Sends an Actionbar Message to the target player",
		tmpl:  "- sendactionmessage{message={message}}",
	}
}

type SendResourcePack struct {
	URL string `json:"url"`
}

func (*SendResourcePack) spec() spec {
	return spec{
		label: "Send Resource Pack",
		desc:  "Sends a Resource Pack to the target player",
		tmpl:  "- sendresourcepack{url={url}}",
	}
}

type SendTitle struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	FadeIn   uint32 `json:"fade_in"`
	Stay     uint32 `json:"stay"`
	FadeOut  uint32 `json:"fade_out"`
}

func (*SendTitle) spec() spec {
	return spec{
		label: "Send Title",
		desc:  "Sends a Title/Subtitle Message to the target player",
		tmpl:  "- sendtitle{title={title};subtitle={subtitle};fadein={fade_in};stay={stay};fadeout={fade_out}}",
	}
}

type SendToast struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (*SendToast) spec() spec {
	return spec{
		label: "Send Toast",
		desc:  "Sends an achievement toast to the target player",
		tmpl:  "- sendtoast{title={title};message={message}}",
	}
}

type Signal struct {
	Signal string `json:"signal"`
}

func (*Signal) spec() spec {
	return spec{
		label: "Signal",
		desc:  "Sends a signal to a mob",
		tmpl:  "- signal{signal={signal}}",
	}
}

type Speak struct {
	Offset          float32 `json:"offset"`
	Radius          uint8   `json:"radius"`
	MaxLineLength   uint8   `json:"max_line_length"`
	LinePrefix      string  `json:"line_prefix"`
	Message         string  `json:"message"`
	ChatPrefix      string  `json:"chat_prefix"`
	Duration        uint16  `json:"duration"`
	SendChatMessage bool    `json:"send_chat_message"`
}

func (*Speak) spec() spec {
	return spec{
		label: "Speak",
		desc:  "Causes the mob to speak in chat, with options for speech bubbles",
		tmpl:  "- speak{m={message};o={offset};r={radius};mll={max_line_length};lp={line_prefix};cp={chat_prefix};d={duration};scm={send_chat_message}}",
	}
}

type AddTag string

func (*AddTag) spec() spec {
	return spec{
		label: "Add Tag",
		desc:  "Adds a scoreboard tag to the target",
		tmpl:  "- addtag{t={0}}",
	}
}

type RemoveTag string

func (*RemoveTag) spec() spec {
	return spec{
		label: "Remove Tag",
		desc:  "Removes a scoreboard tag from the target",
		tmpl:  "- removetag{t={0}}",
	}
}
