package mechanic

type ModifyGlobalScore struct {
	Objective string  `json:"objective"`
	Action    string  `json:"action"`
	Value     float32 `json:"value"`
}

func (*ModifyGlobalScore) spec() spec {
	return spec{
		label: "Modify Global Score",
		desc:  "Modifies a scoreboard value of the fake player: __GLOBAL__",
		tmpl:  "- modifyglobalscore{objective={objective};action={action};value={value}}",
	}
}

type ModifyTargetScore struct {
	Objective string  `json:"objective"`
	Action    string  `json:"action"`
	Value     float32 `json:"value"`
}

func (*ModifyTargetScore) spec() spec {
	return spec{
		label: "Modify Target Score",
		desc:  "Modifies a scoreboard value of the target",
		tmpl:  "- modifytargetscore{objective={objective};action={action};value={value}}",
	}
}

type ModifyMobScore struct {
	Objective string  `json:"objective"`
	Action    string  `json:"action"`
	Value     float32 `json:"value"`
}

func (*ModifyMobScore) spec() spec {
	return spec{
		label: "Modify Mob Score",
		desc:  "Modifies a scoreboard value of the casting mob",
		tmpl:  "- modifymobscore{objective={objective};action={action};value={value}}",
	}
}

type ModifyScore struct {
	Objective string  `json:"objective"`
	Action    string  `json:"action"`
	Value     float32 `json:"value"`
}

func (*ModifyScore) spec() spec {
	return spec{
		label: "Modify Score",
		desc:  "Modifies the score of a dummy player",
		tmpl:  "- modifyscore{objective={objective};action={action};value={value}}",
	}
}

type SetGlobalScore struct {
	Objective string  `json:"objective"`
	Action    string  `json:"action"`
	Value     float32 `json:"value"`
}

func (*SetGlobalScore) spec() spec {
	return spec{
		label: "Set Global Score",
		desc:  "Sets a scoreboard value on the fake player: __GLOBAL__",
		tmpl:  "- setglobalscore{objective={objective};action={action};value={value}}",
	}
}

type SetMobScore struct {
	Objective string `json:"objective"`
	Score     int32  `json:"score"`
}

func (*SetMobScore) spec() spec {
	return spec{
		label: "Set Mob Score",
		desc:  "Sets a scoreboard value on the casting mob",
		tmpl:  "- setmobscore{objective={objective};score={score}}",
	}
}

type SetTargetScore struct {
	Objective string `json:"objective"`
	Score     int32  `json:"score"`
}

func (*SetTargetScore) spec() spec {
	return spec{
		label: "Set Target Score",
		desc:  "Sets the score of the target",
		tmpl:  "- settargetscore{objective={objective};score={score}}",
	}
}

type SetScore struct {
	Objective string `json:"objective"`
	Score     int32  `json:"score"`
}

func (*SetScore) spec() spec {
	return spec{
		label: "Set Score",
		desc:  "Sets the scoreboard value of a dummy player",
		tmpl:  "- setscore{objective={objective};score={score}}",
	}
}
