package items

import "fmt"

// PotionType is the magical effect of a potion.
type PotionType string

const (
	PotionHealing         PotionType = "healing"
	PotionExtraHealing    PotionType = "extra_healing"
	PotionStrength        PotionType = "strength"
	PotionRestoreStrength PotionType = "restore_strength"
	PotionSeeInvisible    PotionType = "see_invisible"
	PotionDetectMonsters  PotionType = "detect_monsters"
	PotionDetectMagic     PotionType = "detect_magic"
	PotionConfusion       PotionType = "confusion"
	PotionBlindness       PotionType = "blindness"
	PotionHallucination   PotionType = "hallucination"
	PotionPoison          PotionType = "poison"
	PotionLevitation      PotionType = "levitation"
	PotionHasteSelf       PotionType = "haste_self"
	PotionRaiseLevel      PotionType = "raise_level"
)

var potionTypes = []PotionType{
	PotionHealing, PotionExtraHealing, PotionStrength, PotionRestoreStrength,
	PotionSeeInvisible, PotionDetectMonsters, PotionDetectMagic, PotionConfusion,
	PotionBlindness, PotionHallucination, PotionPoison, PotionLevitation,
	PotionHasteSelf, PotionRaiseLevel,
}

// IsHealing reports whether the potion restores hit points.
func (p PotionType) IsHealing() bool {
	return p == PotionHealing || p == PotionExtraHealing
}

// ScrollType is the magical effect of a scroll.
type ScrollType string

const (
	ScrollIdentify      ScrollType = "identify"
	ScrollEnchantWeapon ScrollType = "enchant_weapon"
	ScrollEnchantArmor  ScrollType = "enchant_armor"
	ScrollRemoveCurse   ScrollType = "remove_curse"
	ScrollTeleportation ScrollType = "teleportation"
	ScrollMagicMapping  ScrollType = "magic_mapping"
	ScrollScareMonster  ScrollType = "scare_monster"
	ScrollSleep         ScrollType = "sleep"
	ScrollCreateMonster ScrollType = "create_monster"
	ScrollLight         ScrollType = "light"
	ScrollHoldMonster   ScrollType = "hold_monster"
)

var scrollTypes = []ScrollType{
	ScrollIdentify, ScrollEnchantWeapon, ScrollEnchantArmor, ScrollRemoveCurse,
	ScrollTeleportation, ScrollMagicMapping, ScrollScareMonster, ScrollSleep,
	ScrollCreateMonster, ScrollLight, ScrollHoldMonster,
}

// RingType is the magical effect of a ring.
type RingType string

const (
	RingProtection      RingType = "protection"
	RingAddStrength     RingType = "add_strength"
	RingSustainStrength RingType = "sustain_strength"
	RingSearching       RingType = "searching"
	RingSeeInvisible    RingType = "see_invisible"
	RingRegeneration    RingType = "regeneration"
	RingSlowDigestion   RingType = "slow_digestion"
	RingStealth         RingType = "stealth"
	RingTeleportation   RingType = "teleportation"
)

var ringTypes = []RingType{
	RingProtection, RingAddStrength, RingSustainStrength, RingSearching,
	RingSeeInvisible, RingRegeneration, RingSlowDigestion, RingStealth, RingTeleportation,
}

// AlwaysCursed reports whether rings of this kind are cursed regardless of the curse roll.
func (r RingType) AlwaysCursed() bool {
	return r == RingTeleportation
}

// WandType is the magical effect of a wand.
type WandType string

const (
	WandStriking     WandType = "striking"
	WandMagicMissile WandType = "magic_missile"
	WandLightning    WandType = "lightning"
	WandFire         WandType = "fire"
	WandCold         WandType = "cold"
	WandSlowMonster  WandType = "slow_monster"
	WandHasteMonster WandType = "haste_monster"
	WandSleep        WandType = "sleep"
	WandTeleportAway WandType = "teleport_away"
	WandPolymorph    WandType = "polymorph"
	WandCancellation WandType = "cancellation"
)

var wandTypes = []WandType{
	WandStriking, WandMagicMissile, WandLightning, WandFire, WandCold,
	WandSlowMonster, WandHasteMonster, WandSleep, WandTeleportAway,
	WandPolymorph, WandCancellation,
}

func parseEnum[T ~string](kind, s string, valid []T) (T, error) {
	for _, v := range valid {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownSubtype, kind, s)
}

// ParsePotionType validates a potion subtype key.
func ParsePotionType(s string) (PotionType, error) { return parseEnum("potion", s, potionTypes) }

// ParseScrollType validates a scroll subtype key.
func ParseScrollType(s string) (ScrollType, error) { return parseEnum("scroll", s, scrollTypes) }

// ParseRingType validates a ring subtype key.
func ParseRingType(s string) (RingType, error) { return parseEnum("ring", s, ringTypes) }

// ParseWandType validates a wand subtype key.
func ParseWandType(s string) (WandType, error) { return parseEnum("wand", s, wandTypes) }
