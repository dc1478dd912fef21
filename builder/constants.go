package builder

// Constructor names, used as error prefixes.
const (
	MethodEmpty             = "Empty"
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodDisjoint          = "Disjoint"
)

// Smallest accepted size per family. Below these a family degenerates into
// something that needs loops or multi-edges (a 2-cycle) or is not the family
// at all (a wheel without a rim).
const (
	MinEmptyNodes    = 0
	MinPathNodes     = 1
	MinCompleteNodes = 1
	MinPartition     = 1
	MinGridDim       = 1
	MinStarNodes     = 2
	MinCycleNodes    = 3
	MinWheelNodes    = 4
)

// RandomSparse edge probability bounds, both inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
