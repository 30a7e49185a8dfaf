package items

// DefaultTemplates is the built-in template table used when no data file is
// available. It covers every rarity of every template-driven category.
func DefaultTemplates() []Template {
	return []Template{
		// Weapons
		{Key: "dagger", Name: "Dagger", Sprite: "weapon_dagger", Category: Weapon, Rarity: Common, Tier: TierBasic, Damage: "1d4"},
		{Key: "mace", Name: "Mace", Sprite: "weapon_mace", Category: Weapon, Rarity: Common, Tier: TierBasic, Damage: "2d4"},
		{Key: "short_bow", Name: "Short Bow", Sprite: "weapon_short_bow", Category: Weapon, Rarity: Common, Tier: TierBasic, Damage: "1d6", TwoHanded: true},
		{Key: "spear", Name: "Spear", Sprite: "weapon_spear", Category: Weapon, Rarity: Common, Tier: TierIntermediate, Damage: "1d8"},
		{Key: "long_sword", Name: "Long Sword", Sprite: "weapon_long_sword", Category: Weapon, Rarity: Uncommon, Tier: TierBasic, Damage: "1d10"},
		{Key: "battle_axe", Name: "Battle Axe", Sprite: "weapon_battle_axe", Category: Weapon, Rarity: Uncommon, Tier: TierIntermediate, Damage: "2d6", TwoHanded: true},
		{Key: "war_hammer", Name: "War Hammer", Sprite: "weapon_war_hammer", Category: Weapon, Rarity: Uncommon, Tier: TierAdvanced, Damage: "3d4"},
		{Key: "rapier", Name: "Rapier", Sprite: "weapon_rapier", Category: Weapon, Rarity: Rare, Tier: TierBasic, Damage: "1d8+1"},
		{Key: "two_handed_sword", Name: "Two-Handed Sword", Sprite: "weapon_two_handed_sword", Category: Weapon, Rarity: Rare, Tier: TierIntermediate, Damage: "3d6", TwoHanded: true},
		{Key: "rune_blade", Name: "Rune Blade", Sprite: "weapon_rune_blade", Category: Weapon, Rarity: Rare, Tier: TierAdvanced, Damage: "2d8+2", MinDepth: 20},

		// Armor
		{Key: "leather_armor", Name: "Leather Armor", Sprite: "armor_leather", Category: Armor, Rarity: Common, Tier: TierBasic, ArmorClass: 2},
		{Key: "studded_leather", Name: "Studded Leather", Sprite: "armor_studded", Category: Armor, Rarity: Common, Tier: TierBasic, ArmorClass: 3},
		{Key: "ring_mail", Name: "Ring Mail", Sprite: "armor_ring_mail", Category: Armor, Rarity: Common, Tier: TierIntermediate, ArmorClass: 4},
		{Key: "scale_mail", Name: "Scale Mail", Sprite: "armor_scale_mail", Category: Armor, Rarity: Uncommon, Tier: TierBasic, ArmorClass: 4},
		{Key: "chain_mail", Name: "Chain Mail", Sprite: "armor_chain_mail", Category: Armor, Rarity: Uncommon, Tier: TierIntermediate, ArmorClass: 5},
		{Key: "banded_mail", Name: "Banded Mail", Sprite: "armor_banded_mail", Category: Armor, Rarity: Uncommon, Tier: TierAdvanced, ArmorClass: 6},
		{Key: "elven_mail", Name: "Elven Mail", Sprite: "armor_elven_mail", Category: Armor, Rarity: Rare, Tier: TierBasic, ArmorClass: 5},
		{Key: "splint_mail", Name: "Splint Mail", Sprite: "armor_splint_mail", Category: Armor, Rarity: Rare, Tier: TierIntermediate, ArmorClass: 6},
		{Key: "plate_armor", Name: "Plate Armor", Sprite: "armor_plate", Category: Armor, Rarity: Rare, Tier: TierAdvanced, ArmorClass: 7},

		// Potions
		{Key: "potion_healing", Name: "Potion of Healing", Sprite: "potion_red", Category: Potion, Rarity: Common, Potion: PotionHealing, Power: "2d8"},
		{Key: "potion_detect_monsters", Name: "Potion of Detect Monsters", Sprite: "potion_green", Category: Potion, Rarity: Common, Potion: PotionDetectMonsters},
		{Key: "potion_confusion", Name: "Potion of Confusion", Sprite: "potion_grey", Category: Potion, Rarity: Common, Potion: PotionConfusion},
		{Key: "potion_poison", Name: "Potion of Poison", Sprite: "potion_black", Category: Potion, Rarity: Common, Potion: PotionPoison},
		{Key: "potion_extra_healing", Name: "Potion of Extra Healing", Sprite: "potion_pink", Category: Potion, Rarity: Uncommon, Potion: PotionExtraHealing, Power: "4d8"},
		{Key: "potion_strength", Name: "Potion of Strength", Sprite: "potion_orange", Category: Potion, Rarity: Uncommon, Potion: PotionStrength},
		{Key: "potion_see_invisible", Name: "Potion of See Invisible", Sprite: "potion_clear", Category: Potion, Rarity: Uncommon, Potion: PotionSeeInvisible},
		{Key: "potion_haste_self", Name: "Potion of Haste Self", Sprite: "potion_yellow", Category: Potion, Rarity: Rare, Potion: PotionHasteSelf},
		{Key: "potion_raise_level", Name: "Potion of Raise Level", Sprite: "potion_gold", Category: Potion, Rarity: Rare, Potion: PotionRaiseLevel, MinDepth: 5},

		// Scrolls
		{Key: "scroll_identify", Name: "Scroll of Identify", Sprite: "scroll_plain", Category: Scroll, Rarity: Common, Scroll: ScrollIdentify},
		{Key: "scroll_light", Name: "Scroll of Light", Sprite: "scroll_bright", Category: Scroll, Rarity: Common, Scroll: ScrollLight},
		{Key: "scroll_sleep", Name: "Scroll of Sleep", Sprite: "scroll_grey", Category: Scroll, Rarity: Common, Scroll: ScrollSleep},
		{Key: "scroll_enchant_weapon", Name: "Scroll of Enchant Weapon", Sprite: "scroll_red", Category: Scroll, Rarity: Uncommon, Scroll: ScrollEnchantWeapon},
		{Key: "scroll_enchant_armor", Name: "Scroll of Enchant Armor", Sprite: "scroll_blue", Category: Scroll, Rarity: Uncommon, Scroll: ScrollEnchantArmor},
		{Key: "scroll_teleportation", Name: "Scroll of Teleportation", Sprite: "scroll_purple", Category: Scroll, Rarity: Uncommon, Scroll: ScrollTeleportation},
		{Key: "scroll_remove_curse", Name: "Scroll of Remove Curse", Sprite: "scroll_white", Category: Scroll, Rarity: Rare, Scroll: ScrollRemoveCurse},
		{Key: "scroll_magic_mapping", Name: "Scroll of Magic Mapping", Sprite: "scroll_gold", Category: Scroll, Rarity: Rare, Scroll: ScrollMagicMapping},

		// Rings
		{Key: "ring_protection", Name: "Ring of Protection", Sprite: "ring_iron", Category: Ring, Rarity: Common, Tier: TierBasic, Ring: RingProtection},
		{Key: "ring_searching", Name: "Ring of Searching", Sprite: "ring_copper", Category: Ring, Rarity: Common, Tier: TierBasic, Ring: RingSearching},
		{Key: "ring_teleportation", Name: "Ring of Teleportation", Sprite: "ring_opal", Category: Ring, Rarity: Common, Tier: TierBasic, Ring: RingTeleportation},
		{Key: "ring_add_strength", Name: "Ring of Add Strength", Sprite: "ring_ruby", Category: Ring, Rarity: Uncommon, Tier: TierBasic, Ring: RingAddStrength},
		{Key: "ring_stealth", Name: "Ring of Stealth", Sprite: "ring_obsidian", Category: Ring, Rarity: Uncommon, Tier: TierIntermediate, Ring: RingStealth},
		{Key: "ring_regeneration", Name: "Ring of Regeneration", Sprite: "ring_emerald", Category: Ring, Rarity: Rare, Tier: TierBasic, Ring: RingRegeneration},
		{Key: "ring_see_invisible", Name: "Ring of See Invisible", Sprite: "ring_diamond", Category: Ring, Rarity: Rare, Tier: TierAdvanced, Ring: RingSeeInvisible},

		// Wands
		{Key: "wand_striking", Name: "Wand of Striking", Sprite: "wand_oak", Category: Wand, Rarity: Common, Wand: WandStriking, Charges: "1d4+2"},
		{Key: "wand_slow_monster", Name: "Wand of Slow Monster", Sprite: "wand_pine", Category: Wand, Rarity: Common, Wand: WandSlowMonster, Charges: "1d4+2"},
		{Key: "wand_magic_missile", Name: "Wand of Magic Missile", Sprite: "wand_ash", Category: Wand, Rarity: Uncommon, Wand: WandMagicMissile, Charges: "1d6+2"},
		{Key: "wand_sleep", Name: "Wand of Sleep", Sprite: "wand_birch", Category: Wand, Rarity: Uncommon, Wand: WandSleep, Charges: "1d4+2"},
		{Key: "wand_lightning", Name: "Wand of Lightning", Sprite: "wand_iron", Category: Wand, Rarity: Rare, Wand: WandLightning, Charges: "1d4+1"},
		{Key: "wand_cancellation", Name: "Wand of Cancellation", Sprite: "wand_silver", Category: Wand, Rarity: Rare, Wand: WandCancellation, Charges: "1d3+1"},

		// Food
		{Key: "food_ration", Name: "Food Ration", Sprite: "food_ration", Category: Food, Rarity: Common, Nutrition: 900},
		{Key: "food_apple", Name: "Apple", Sprite: "food_apple", Category: Food, Rarity: Common, Nutrition: 300},
		{Key: "food_cram", Name: "Cram Ration", Sprite: "food_cram", Category: Food, Rarity: Uncommon, Nutrition: 1200},
		{Key: "food_lembas", Name: "Lembas Wafer", Sprite: "food_lembas", Category: Food, Rarity: Rare, Nutrition: 1800},
	}
}
