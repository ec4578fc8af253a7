package stats

// Attribute identifies one of the six core character attributes.
type Attribute int

const (
	Strength Attribute = iota
	Dexterity
	Wisdom
	Charisma
	Defense
	Luck
)

// Attributes lists all attributes in canonical order.
var Attributes = []Attribute{Strength, Dexterity, Wisdom, Charisma, Defense, Luck}

// String returns the attribute's lowercase name, matching catalog YAML keys.
func (a Attribute) String() string {
	switch a {
	case Strength:
		return "strength"
	case Dexterity:
		return "dexterity"
	case Wisdom:
		return "wisdom"
	case Charisma:
		return "charisma"
	case Defense:
		return "defense"
	case Luck:
		return "luck"
	default:
		return "unknown"
	}
}

// ParseAttribute converts a catalog string to an Attribute.
// Unknown strings map to Strength, the positional default.
func ParseAttribute(s string) Attribute {
	switch s {
	case "strength":
		return Strength
	case "dexterity":
		return Dexterity
	case "wisdom":
		return Wisdom
	case "charisma":
		return Charisma
	case "defense":
		return Defense
	case "luck":
		return Luck
	default:
		return Strength
	}
}

// Stats holds one value per attribute.
type Stats struct {
	Strength  int
	Dexterity int
	Wisdom    int
	Charisma  int
	Defense   int
	Luck      int
}

// NewStats creates a stat set from individual values.
func NewStats(str, dex, wis, cha, def, luck int) Stats {
	return Stats{
		Strength:  str,
		Dexterity: dex,
		Wisdom:    wis,
		Charisma:  cha,
		Defense:   def,
		Luck:      luck,
	}
}

// Get returns the value for a single attribute.
func (s Stats) Get(a Attribute) int {
	switch a {
	case Strength:
		return s.Strength
	case Dexterity:
		return s.Dexterity
	case Wisdom:
		return s.Wisdom
	case Charisma:
		return s.Charisma
	case Defense:
		return s.Defense
	case Luck:
		return s.Luck
	default:
		return 0
	}
}

// Add returns the attribute-wise sum of two stat sets.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Strength:  s.Strength + o.Strength,
		Dexterity: s.Dexterity + o.Dexterity,
		Wisdom:    s.Wisdom + o.Wisdom,
		Charisma:  s.Charisma + o.Charisma,
		Defense:   s.Defense + o.Defense,
		Luck:      s.Luck + o.Luck,
	}
}

// Clamped returns a copy with every attribute floored at zero.
// Debuffs can push a raw sum negative; effective stats never are.
func (s Stats) Clamped() Stats {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return Stats{
		Strength:  clamp(s.Strength),
		Dexterity: clamp(s.Dexterity),
		Wisdom:    clamp(s.Wisdom),
		Charisma:  clamp(s.Charisma),
		Defense:   clamp(s.Defense),
		Luck:      clamp(s.Luck),
	}
}

// Power aggregates a stat set into the scalar the encounter resolver
// compares against difficulty. Defense and Luck contribute at half
// weight: they already have dedicated roles in damage reduction and
// loot rolls.
func (s Stats) Power() int {
	return s.Strength + s.Dexterity + s.Wisdom + s.Charisma + (s.Defense+s.Luck)/2
}

// Effective computes the stat set used for resolution: base plus every
// equipment bonus plus every active buff, clamped non-negative.
// Recomputed on demand, never stored.
func Effective(base Stats, equipment []Stats, buffs []Stats) Stats {
	total := base
	for _, e := range equipment {
		total = total.Add(e)
	}
	for _, b := range buffs {
		total = total.Add(b)
	}
	return total.Clamped()
}
