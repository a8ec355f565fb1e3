package elevunit

import "github.com/LeonWongInspiration/GUI-Elevator-Simulator/internal/simconsts"

// floorSet keeps the on/off state of levels 1..maxLevel. Index 0 is unused.
type floorSet struct {
	set   []bool
	count int
}

func newFloorSet(maxLevel int) *floorSet {
	return &floorSet{set: make([]bool, maxLevel+1)}
}

func (fs *floorSet) valid(level int) bool {
	return level >= 1 && level < len(fs.set)
}

// add returns the previous value.
func (fs *floorSet) add(level int) bool {
	if !fs.valid(level) {
		return false
	}
	prev := fs.set[level]
	if !prev {
		fs.set[level] = true
		fs.count++
	}
	return prev
}

func (fs *floorSet) remove(level int) bool {
	if !fs.valid(level) {
		return false
	}
	prev := fs.set[level]
	if prev {
		fs.set[level] = false
		fs.count--
	}
	return prev
}

func (fs *floorSet) len() int {
	return fs.count
}

// ahead reports whether any level strictly beyond level in direction dir is set.
func (fs *floorSet) ahead(level int, dir simconsts.Direction) bool {
	step := dir.Sign()
	if step == 0 {
		return false
	}
	for f := level + step; fs.valid(f); f += step {
		if fs.set[f] {
			return true
		}
	}
	return false
}

// levels lists the set levels in ascending order.
func (fs *floorSet) levels() []int {
	levels := make([]int, 0, fs.count)
	for f := 1; f < len(fs.set); f++ {
		if fs.set[f] {
			levels = append(levels, f)
		}
	}
	return levels
}
