package loot

import (
	"github.com/lawnchairsociety/delvegen/internal/items"
	"github.com/lawnchairsociety/delvegen/internal/rng"
)

// Artifact lights may replace a torch from this depth onward.
const (
	ArtifactMinDepth = 10
	ArtifactChance   = 0.005
)

type lightBlueprint struct {
	name    string
	sprite  string
	rarity  items.Rarity
	details items.Details
}

var (
	torchBlueprint = lightBlueprint{"Torch", "light_torch", items.Common,
		items.LightDetails{Kind: items.Torch, Fuel: 650, Radius: 2}}
	lanternBlueprint = lightBlueprint{"Lantern", "light_lantern", items.Uncommon,
		items.LightDetails{Kind: items.Lantern, Fuel: 1500, Radius: 3}}
	artifactBlueprint = lightBlueprint{"Phial of Starlight", "light_phial", items.Rare,
		items.LightDetails{Kind: items.Artifact, Radius: 3, Infinite: true}}
	oilFlaskBlueprint = lightBlueprint{"Flask of Oil", "oil_flask", items.Common,
		items.OilFlaskDetails{Fuel: 750}}
)

// rollLight builds a light source or oil flask for category c. Only a torch
// roll past ArtifactMinDepth consumes a draw, for the artifact check.
func rollLight(src *rng.Source, c items.Category, depth int) (lightBlueprint, bool) {
	switch c {
	case items.Torch:
		if depth >= ArtifactMinDepth && src.Chance(ArtifactChance) {
			return artifactBlueprint, true
		}
		return torchBlueprint, true
	case items.Lantern:
		return lanternBlueprint, true
	case items.OilFlask:
		return oilFlaskBlueprint, true
	default:
		return lightBlueprint{}, false
	}
}

func (l lightBlueprint) build(id string) items.Item {
	return items.NewItem(id, l.name, l.sprite, l.details, l.rarity, 0, false)
}
