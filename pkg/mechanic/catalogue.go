package mechanic

// catalogue lists a constructor for every mechanic, in presentation order.
var catalogue = []func() Mechanic{
	func() Mechanic { return new(ActivateSpawner) },
	func() Mechanic { return new(BlockDestabilize) },
	func() Mechanic { return new(BlockMask) },
	func() Mechanic { return new(BlockUnmask) },
	func() Mechanic { return new(BlockPhysics) },
	func() Mechanic { return new(BlockWave) },
	func() Mechanic { return new(BoneMeal) },
	func() Mechanic { return new(BossBorder) },
	func() Mechanic { return new(BreakBlock) },
	func() Mechanic { return new(BreakBlockAndGiveItem) },
	func() Mechanic { return new(EnderDragonResetCrystals) },
	func() Mechanic { return new(EnderDragonSpawnPortal) },
	func() Mechanic { return new(Explosion) },
	func() Mechanic { return new(FawePaste) },
	func() Mechanic { return new(Geyser) },
	func() Mechanic { return new(Lightning) },
	func() Mechanic { return new(Prison) },
	func() Mechanic { return new(PushBlock) },
	func() Mechanic { return new(PushButton) },
	func() Mechanic { return new(SetBlockOpen) },
	func() Mechanic { return new(SetBlockType) },
	func() Mechanic { return new(SetChunkForceLoaded) },
	func() Mechanic { return new(SetDragonPodium) },
	func() Mechanic { return new(SetRaiderPatrolBlock) },
	func() Mechanic { return new(Spring) },
	func() Mechanic { return new(SummonFallingBlock) },
	func() Mechanic { return new(Time) },
	func() Mechanic { return new(ThunderLevel) },
	func() Mechanic { return new(ToggleLever) },
	func() Mechanic { return new(TogglePiston) },
	func() Mechanic { return new(UndoPaste) },
	func() Mechanic { return new(WorldEditReplace) },
	func() Mechanic { return new(Weather) },
	func() Mechanic { return new(AddTrade) },
	func() Mechanic { return new(AnimateArmorStand) },
	func() Mechanic { return new(ClearExperience) },
	func() Mechanic { return new(ClearExperienceLevels) },
	func() Mechanic { return new(GiveExperienceLevels) },
	func() Mechanic { return new(TakeExperienceLevels) },
	func() Mechanic { return new(CloseInventory) },
	func() Mechanic { return new(ConsumeSlot) },
	func() Mechanic { return new(CurrencyGive) },
	func() Mechanic { return new(CurrencyTake) },
	func() Mechanic { return new(Decapitate) },
	func() Mechanic { return new(DropItem) },
	func() Mechanic { return new(Equip) },
	func() Mechanic { return new(EquipCopy) },
	func() Mechanic { return new(FillChest) },
	func() Mechanic { return new(GiveItem) },
	func() Mechanic { return new(GiveItemFromSlot) },
	func() Mechanic { return new(GiveItemFromTarget) },
	func() Mechanic { return new(ItemSpray) },
	func() Mechanic { return new(OpenTrades) },
	func() Mechanic { return new(PickUpItem) },
	func() Mechanic { return new(PoseArmorStand) },
	func() Mechanic { return new(RemoveHeldItem) },
	func() Mechanic { return new(Saddle) },
	func() Mechanic { return new(SetItemGroupCooldown) },
	func() Mechanic { return new(SetDisplayEntityItem) },
	func() Mechanic { return new(StealItem) },
	func() Mechanic { return new(StopUsingItem) },
	func() Mechanic { return new(TakeItem) },
	func() Mechanic { return new(ArmAnimation) },
	func() Mechanic { return new(BlackScreen) },
	func() Mechanic { return new(BloodyScreen) },
	func() Mechanic { return new(Ender) },
	func() Mechanic { return new(EnderBeam) },
	func() Mechanic { return new(FakeExplosion) },
	func() Mechanic { return new(Firework) },
	func() Mechanic { return new(Flames) },
	func() Mechanic { return new(Glow) },
	func() Mechanic { return new(GuardianBeam) },
	func() Mechanic { return new(Hologram) },
	func() Mechanic { return new(FakeLightning) },
	func() Mechanic { return new(Particle) },
	func() Mechanic { return new(ParticleBox) },
	func() Mechanic { return new(ParticleEquation) },
	func() Mechanic { return new(ParticleLine) },
	func() Mechanic { return new(ParticleLineHelix) },
	func() Mechanic { return new(ParticleLineRing) },
	func() Mechanic { return new(ParticleOrbital) },
	func() Mechanic { return new(ParticleRing) },
	func() Mechanic { return new(ParticleSphere) },
	func() Mechanic { return new(ParticleTornado) },
	func() Mechanic { return new(Atom) },
	func() Mechanic { return new(PlayAnimation) },
	func() Mechanic { return new(Skybox) },
	func() Mechanic { return new(Smoke) },
	func() Mechanic { return new(SmokeSwirl) },
	func() Mechanic { return new(SummonAreaEffectCloud) },
	func() Mechanic { return new(SwingOffHand) },
	func() Mechanic { return new(TotemOfUndying) },
	func() Mechanic { return new(ArrowVolley) },
	func() Mechanic { return new(AuraRemove) },
	func() Mechanic { return new(Bouncy) },
	func() Mechanic { return new(Consume) },
	func() Mechanic { return new(ClearThreat) },
	func() Mechanic { return new(Damage) },
	func() Mechanic { return new(BaseDamage) },
	func() Mechanic { return new(PercentDamage) },
	func() Mechanic { return new(Extinguish) },
	func() Mechanic { return new(Feed) },
	func() Mechanic { return new(Freeze) },
	func() Mechanic { return new(GoatRam) },
	func() Mechanic { return new(Heal) },
	func() Mechanic { return new(HealPercent) },
	func() Mechanic { return new(Hide) },
	func() Mechanic { return new(Hit) },
	func() Mechanic { return new(Ignite) },
	func() Mechanic { return new(ModifyDamage) },
	func() Mechanic { return new(Oxygen) },
	func() Mechanic { return new(Potion) },
	func() Mechanic { return new(PotionClear) },
	func() Mechanic { return new(Rally) },
	func() Mechanic { return new(Remove) },
	func() Mechanic { return new(Shield) },
	func() Mechanic { return new(ShieldBreak) },
	func() Mechanic { return new(ShieldPercent) },
	func() Mechanic { return new(ShootFireball) },
	func() Mechanic { return new(ShootPotion) },
	func() Mechanic { return new(ShootSkull) },
	func() Mechanic { return new(ShootShulkerBullet) },
	func() Mechanic { return new(ShowEntity) },
	func() Mechanic { return new(Stun) },
	func() Mechanic { return new(Suicide) },
	func() Mechanic { return new(Summon) },
	func() Mechanic { return new(Taunt) },
	func() Mechanic { return new(Threat) },
	func() Mechanic { return new(Command) },
	func() Mechanic { return new(JSONMessage) },
	func() Mechanic { return new(Log) },
	func() Mechanic { return new(Message) },
	func() Mechanic { return new(PrintParentTree) },
	func() Mechanic { return new(RandomMessage) },
	func() Mechanic { return new(SendActionMessage) },
	func() Mechanic { return new(SendResourcePack) },
	func() Mechanic { return new(SendTitle) },
	func() Mechanic { return new(SendToast) },
	func() Mechanic { return new(Signal) },
	func() Mechanic { return new(Speak) },
	func() Mechanic { return new(AddTag) },
	func() Mechanic { return new(RemoveTag) },
	func() Mechanic { return new(DirectionalVelocity) },
	func() Mechanic { return new(Disengage) },
	func() Mechanic { return new(Dismount) },
	func() Mechanic { return new(EjectPassenger) },
	func() Mechanic { return new(Fly) },
	func() Mechanic { return new(ForcePull) },
	func() Mechanic { return new(GoTo) },
	func() Mechanic { return new(Jump) },
	func() Mechanic { return new(Leap) },
	func() Mechanic { return new(Look) },
	func() Mechanic { return new(Lunge) },
	func() Mechanic { return new(MatchRotation) },
	func() Mechanic { return new(Mount) },
	func() Mechanic { return new(MountMe) },
	func() Mechanic { return new(MountTarget) },
	func() Mechanic { return new(MovePin) },
	func() Mechanic { return new(Propel) },
	func() Mechanic { return new(Pull) },
	func() Mechanic { return new(RayTrace) },
	func() Mechanic { return new(RayTraceTo) },
	func() Mechanic { return new(Recoil) },
	func() Mechanic { return new(Remount) },
	func() Mechanic { return new(RotateTowards) },
	func() Mechanic { return new(Spin) },
	func() Mechanic { return new(SummonPassenger) },
	func() Mechanic { return new(Swap) },
	func() Mechanic { return new(Teleport) },
	func() Mechanic { return new(TeleportY) },
	func() Mechanic { return new(TeleportIn) },
	func() Mechanic { return new(TeleportTo) },
	func() Mechanic { return new(Throw) },
	func() Mechanic { return new(TrackLocation) },
	func() Mechanic { return new(Velocity) },
	func() Mechanic { return new(Disguise) },
	func() Mechanic { return new(DisguiseModify) },
	func() Mechanic { return new(DisguiseTarget) },
	func() Mechanic { return new(Undisguise) },
	func() Mechanic { return new(DisplayTransformation) },
	func() Mechanic { return new(Doppleganger) },
	func() Mechanic { return new(EnderDragonSetPhase) },
	func() Mechanic { return new(EnderDragonSetRespawnPhase) },
	func() Mechanic { return new(RemoveOwner) },
	func() Mechanic { return new(ResetAI) },
	func() Mechanic { return new(RunAIGoalSelector) },
	func() Mechanic { return new(RunAITargetSelector) },
	func() Mechanic { return new(SetAI) },
	func() Mechanic { return new(SetCollidable) },
	func() Mechanic { return new(SetGameMode) },
	func() Mechanic { return new(SetGliding) },
	func() Mechanic { return new(SetGravity) },
	func() Mechanic { return new(SetHealth) },
	func() Mechanic { return new(SetInteractionSize) },
	func() Mechanic { return new(SetLeashHolder) },
	func() Mechanic { return new(SetLevel) },
	func() Mechanic { return new(SetMaterialCooldown) },
	func() Mechanic { return new(SetMaxHealth) },
	func() Mechanic { return new(SetMobColor) },
	func() Mechanic { return new(SetName) },
	func() Mechanic { return new(SetRaiderCanJoinRaid) },
	func() Mechanic { return new(SetRaiderPatrolLeader) },
	func() Mechanic { return new(SetFaction) },
	func() Mechanic { return new(SetFlying) },
	func() Mechanic { return new(SetNoDamageTicks) },
	func() Mechanic { return new(SetOwner) },
	func() Mechanic { return new(SetParent) },
	func() Mechanic { return new(SetPathfindingMalus) },
	func() Mechanic { return new(SetPitch) },
	func() Mechanic { return new(SetPose) },
	func() Mechanic { return new(SetRotation) },
	func() Mechanic { return new(SetTarget) },
	func() Mechanic { return new(SetTextDisplay) },
	func() Mechanic { return new(SetTongueTarget) },
	func() Mechanic { return new(SetSpeed) },
	func() Mechanic { return new(SetStance) },
	func() Mechanic { return new(ToggleSitting) },
	func() Mechanic { return new(WolfSit) },
	func() Mechanic { return new(AdditionalMechanic) },
	func() Mechanic { return new(ModifyGlobalScore) },
	func() Mechanic { return new(ModifyTargetScore) },
	func() Mechanic { return new(ModifyMobScore) },
	func() Mechanic { return new(ModifyScore) },
	func() Mechanic { return new(SetGlobalScore) },
	func() Mechanic { return new(SetMobScore) },
	func() Mechanic { return new(SetTargetScore) },
	func() Mechanic { return new(SetScore) },
	func() Mechanic { return new(PlayBlockBreakSound) },
	func() Mechanic { return new(PlayBlockFallSound) },
	func() Mechanic { return new(PlayBlockHitSound) },
	func() Mechanic { return new(PlayBlockPlaceSound) },
	func() Mechanic { return new(PlayBlockStepSound) },
	func() Mechanic { return new(Sound) },
	func() Mechanic { return new(StopSound) },
	func() Mechanic { return new(StopSoundWithCategory) },
	func() Mechanic { return NewModel() },
}
