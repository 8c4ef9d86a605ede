package mechanic

import "github.com/jwebster45206/mythic-editor/pkg/param"

type AddTrade struct {
	Action           param.ActionMode                      `json:"action"`
	Slot             uint8                                 `json:"slot"`
	Ingredient       param.TradeIngredient                 `json:"ingredient"`
	Ingredient2      param.Optional[param.TradeIngredient] `json:"ingredient_2" mm:";item2="`
	Result           string                                `json:"result"`
	MaxUses          param.Optional[uint8]                 `json:"max_uses" mm:";uses="`
	ExperienceReward param.Optional[bool]                  `json:"experience_reward" mm:";expReward="`
	VillagerExp      param.Optional[uint16]                `json:"villager_exp" mm:";villExp="`
	PriceMultiplier  param.Optional[uint8]                 `json:"price_multiplier" mm:";multiplier="`
	Demand           param.Optional[uint8]                 `json:"demand" mm:";d="`
	SpecialPrice     param.Optional[uint16]                `json:"special_price" mm:";special="`
	IgnoreDiscounts  param.Optional[bool]                  `json:"ignore_discounts" mm:";discounts="`
}

func (*AddTrade) spec() spec {
	return spec{
		label: "Add Trade",
		desc:  "Changes the trades of a villager",
		tmpl:  "- addTrade{a={action};s={slot};item1={ingredient}{ingredient_2};result={result}{max_uses}{experience_reward}{villager_exp}{price_multiplier}{demand}{special_price}{ignore_discounts}}",
	}
}

type AnimateArmorStand struct {
	Pose        param.ArmorStandPose `json:"pose"`
	Speed       float32              `json:"speed"`
	Duration    uint32               `json:"duration"`
	IgnoreEmpty bool                 `json:"ignore_empty"`
	Smart       bool                 `json:"smart"`
}

func (*AnimateArmorStand) spec() spec {
	return spec{
		label: "Animate Armor Stand",
		desc:  "Animates an armor stand",
		tmpl:  "- animateArmorStand{pose={pose};speed={speed};duration={duration};ie={ignore_empty};smart={smart}}",
	}
}

type ClearExperience struct{}

func (*ClearExperience) spec() spec {
	return spec{
		label: "Clear Experience",
		desc:  "Clears the experience for the targeted players",
		tmpl:  "- clearexperience",
	}
}

type ClearExperienceLevels struct{}

func (*ClearExperienceLevels) spec() spec {
	return spec{
		label: "Clear Experience Levels",
		desc:  "Clears the experience levels for the targeted players",
		tmpl:  "- clearexperiencelevels",
	}
}

type GiveExperienceLevels struct {
	Amount uint32 `json:"amount"`
}

func (*GiveExperienceLevels) spec() spec {
	return spec{
		label: "Give Experience Levels",
		desc:  "Gives experience levels to the targeted players",
		tmpl:  "- giveexperiencelevels{a={amount}}",
	}
}

type TakeExperienceLevels struct {
	Amount uint32 `json:"amount"`
}

func (*TakeExperienceLevels) spec() spec {
	return spec{
		label: "Take Experience Levels",
		desc:  "Takes experience levels from the targeted players",
		tmpl:  "- takeexperiencelevels{a={amount}}",
	}
}

type CloseInventory struct{}

func (*CloseInventory) spec() spec {
	return spec{
		label: "Close Inventory",
		desc:  "Closes the target player's inventory",
		tmpl:  "- closeinventory",
	}
}

type ConsumeSlot struct {
	Slot   string `json:"slot"`
	Amount uint32 `json:"amount"`
}

func (*ConsumeSlot) spec() spec {
	return spec{
		label: "Consume Slot",
		desc:  "Removes an item from a specific slot of the player's inventory",
		tmpl:  "- consumeslot{s={slot};a={amount}}",
	}
}

type CurrencyGive struct {
	Amount float64 `json:"amount"`
}

func (*CurrencyGive) spec() spec {
	return spec{
		label: "Currency Give",
		desc:  "Gives money to a player. Requires Vault and a currency plugin",
		tmpl:  "- currencygive{a={amount}}",
	}
}

type CurrencyTake struct {
	Amount float64 `json:"amount"`
}

func (*CurrencyTake) spec() spec {
	return spec{
		label: "Currency Take",
		desc:  "Takes money from a player. Requires Vault and a currency plugin",
		tmpl:  "- currencytake{a={amount}}",
	}
}

type Decapitate struct{}

func (*Decapitate) spec() spec {
	return spec{
		label: "Decapitate",
		desc:  "Drops a player head item based on target",
		tmpl:  "- decapitate",
	}
}

type DropItem struct {
	Items       string                 `json:"items"`
	Naturally   bool                   `json:"naturally"`
	OnDropSkill param.Optional[string] `json:"on_drop_skill" mm:";onDrop="`
}

func (*DropItem) spec() spec {
	return spec{
		label: "Drop Item",
		desc:  "Drops an item or droptable at the target location",
		tmpl:  "- dropitem{i={items};n={naturally}{on_drop_skill}}",
	}
}

type Equip struct {
	Item param.EquipmentItem `json:"item"`
}

func (*Equip) spec() spec {
	return spec{
		label: "Equip",
		desc:  "Causes the casting mob to equip an item",
		tmpl:  "- equip{item={item}}",
	}
}

type EquipCopy struct {
	Slots string `json:"slots"`
}

func (*EquipCopy) spec() spec {
	return spec{
		label: "Equip Copy",
		desc:  "Causes the caster to equip a copy of the target's equipment",
		tmpl:  "- equipcopy{s={slots}}",
	}
}

type FillChest struct {
	Items       string               `json:"items"`
	ShouldStack param.Optional[bool] `json:"should_stack" mm:";stack="`
	ShouldEmpty param.Optional[bool] `json:"should_empty" mm:";empty="`
}

func (*FillChest) spec() spec {
	return spec{
		label: "Fill Chest",
		desc:  "Fills a chest with items, or a droptable",
		tmpl:  "- fillchest{i={items}{should_stack}{should_empty}}",
	}
}

type GiveItem struct {
	Item        string `json:"item"`
	FakeLooting bool   `json:"fake_looting"`
}

func (*GiveItem) spec() spec {
	return spec{
		label: "Give Item",
		desc:  "Gives an item to the target",
		tmpl:  "- giveitem{i={item};fl={fake_looting}}",
	}
}

type GiveItemFromSlot struct {
	Slot        string `json:"slot"`
	FakeLooting bool   `json:"fake_looting"`
}

func (*GiveItemFromSlot) spec() spec {
	return spec{
		label: "Give Item From Slot",
		desc:  "Gives an item to the target from the item in the given slot of caster",
		tmpl:  "- giveitemfromslot{s={slot};fl={fake_looting}}",
	}
}

type GiveItemFromTarget struct {
	Item        string `json:"item"`
	FakeLooting bool   `json:"fake_looting"`
}

func (*GiveItemFromTarget) spec() spec {
	return spec{
		label: "Give Item From Target",
		desc:  "Gives the caster an item while playing the pickup-item animation from the target entity or location",
		tmpl:  "- giveitemfromtarget{i={item};fl={fake_looting}}",
	}
}

type ItemSpray struct {
	Items       string                  `json:"items"`
	Amount      uint32                  `json:"amount"`
	Duration    uint32                  `json:"duration"`
	Radius      uint32                  `json:"radius"`
	Velocity    float32                 `json:"velocity"`
	YVelocity   param.Optional[float32] `json:"y_velocity" mm:";yv="`
	YOffset     float32                 `json:"y_offset"`
	AllowPickup bool                    `json:"allow_pickup"`
	Gravity     bool                    `json:"gravity"`
}

func (*ItemSpray) spec() spec {
	return spec{
		label: "Item Spray",
		desc:  "Causes an explosion of temporary items at the target location",
		tmpl:  "- itemspray{i={items};a={amount};d={duration};r={radius};v={velocity}{y_velocity};yo={y_offset};ap={allow_pickup};g={gravity}}",
	}
}

type OpenTrades struct{}

func (*OpenTrades) spec() spec {
	return spec{
		label: "Open Trades",
		desc:  "Opens the trades of the casting villager to the target player",
		tmpl:  "- opentrades{}",
	}
}

type PickUpItem struct {
	Item string `json:"item"`
}

func (*PickUpItem) spec() spec {
	return spec{
		label: "Pick Up Item",
		desc:  "Picks up the targeted item",
		tmpl:  "- pickupitem{item={item}}",
	}
}

type PoseArmorStand struct {
	Pose string `json:"pose"`
}

func (*PoseArmorStand) spec() spec {
	return spec{
		label: "Pose Armor Stand",
		desc:  "Changes the pose of the target ArmorStand",
		tmpl:  "- posearmorstand{pose={pose}}",
	}
}

type RemoveHeldItem struct{}

func (*RemoveHeldItem) spec() spec {
	return spec{
		label: "Remove Held Item",
		desc:  "Removes some of the item the target player is holding",
		tmpl:  "- removehelditem{}",
	}
}

type Saddle struct{}

func (*Saddle) spec() spec {
	return spec{
		label: "Saddle",
		desc:  "Equips or removes a saddle on the target entity",
		tmpl:  "- saddle{}",
	}
}

type SetItemGroupCooldown struct {
	Group    string `json:"group"`
	Cooldown uint32 `json:"cooldown"`
}

func (*SetItemGroupCooldown) spec() spec {
	return spec{
		label: "Set Item Group Cooldown",
		desc:  "Sets the cooldown on an item group for the target player",
		tmpl:  "- setitemgroupcooldown{group={group};cooldown={cooldown}}",
	}
}

type SetDisplayEntityItem struct {
	Item string `json:"item"`
}

func (*SetDisplayEntityItem) spec() spec {
	return spec{
		label: "Set Display Entity Item",
		desc:  "Sets the item component of `ITEM_DISPLAY` entities",
		tmpl:  "- setdisplayentityitem{item={item}}",
	}
}

type StealItem struct {
	Item string `json:"item"`
}

func (*StealItem) spec() spec {
	return spec{
		label: "Steal Item",
		desc:  "Steals an item from the target player's inventory",
		tmpl:  "- stealitem{item={item}}",
	}
}

type StopUsingItem struct{}

func (*StopUsingItem) spec() spec {
	return spec{
		label: "Stop Using Item",
		desc:  "Stops the targeted entity from using an item",
		tmpl:  "- stopusingitem",
	}
}

type TakeItem struct {
	Item        string               `json:"item"`
	Amount      uint8                `json:"amount"`
	Exact       param.Optional[bool] `json:"exact" mm:";exact="`
	VanillaOnly param.Optional[bool] `json:"vanilla_only" mm:";vanillaonly="`
}

func (*TakeItem) spec() spec {
	return spec{
		label: "Take Item",
		desc:  "Removes an item from the targeted player's inventory",
		tmpl:  "- takeitem{i={item};a={amount}{exact}{vanilla_only}}",
	}
}
