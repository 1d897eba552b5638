package flappy

// Collides reports whether body's opaque pixels overlap the opaque pixels
// of any member of group at their current positions. Boxes that touch only
// through transparent margins do not collide. It does not mutate anything.
func Collides(body Body, group []Body) bool {
	bounds := body.Bounds()
	mask := body.Sprite().Mask
	for _, other := range group {
		ob := other.Bounds()
		if !bounds.Intersects(ob) {
			continue
		}
		if mask.Overlaps(other.Sprite().Mask, ob.X-bounds.X, ob.Y-bounds.Y) {
			return true
		}
	}
	return false
}
