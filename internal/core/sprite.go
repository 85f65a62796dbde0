package core

import "math"

// SpriteKind tells the presentation layer how to draw a sprite.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpriteShot
	SpriteCloud
	SpriteDroplet
	SpriteZone
)

// Sprite is one visible entity in a snapshot.
type Sprite struct {
	Kind SpriteKind
	Box  Box
}

// HashSprites folds sprites into h for determinism checks.
func HashSprites(h uint64, sprites []Sprite) uint64 {
	for _, s := range sprites {
		h = h*31 + uint64(s.Kind) //#nosec G115 -- hash computation
		h = HashBox(h, s.Box)
	}
	return h
}

// HashBox folds the exact bit patterns of a box into h.
func HashBox(h uint64, b Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	h = h*31 + math.Float64bits(b.H)
	return h
}
