package profile

// Type identifies an expansion law.
type Type int

const (
	TypeConical Type = iota
	TypeExponential
	TypeModifiedExponential
	TypeParabolic
	TypeTractrix
	TypeHyperbolicExponential
	TypeLeCleach
	TypeJMLC
	TypeOblateSpheroid
	TypeSphericalWave
)

var typeNames = map[Type]string{
	TypeConical:               "conical",
	TypeExponential:           "exponential",
	TypeModifiedExponential:   "modified-exponential",
	TypeParabolic:             "parabolic",
	TypeTractrix:              "tractrix",
	TypeHyperbolicExponential: "hyperbolic-exponential",
	TypeLeCleach:              "le-cleach",
	TypeJMLC:                  "jmlc",
	TypeOblateSpheroid:        "oblate-spheroid",
	TypeSphericalWave:         "spherical-wave",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType resolves a profile name to its Type. The boolean reports
// whether the name was recognized.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return t, true
		}
	}
	return TypeExponential, false
}

// Types lists all known profile types in declaration order.
func Types() []Type {
	return []Type{
		TypeConical,
		TypeExponential,
		TypeModifiedExponential,
		TypeParabolic,
		TypeTractrix,
		TypeHyperbolicExponential,
		TypeLeCleach,
		TypeJMLC,
		TypeOblateSpheroid,
		TypeSphericalWave,
	}
}

// generators is the dispatch table. Each generator receives normalized
// parameters and returns a raw curve; Generate runs the shared
// finalize pass afterwards.
var generators = map[Type]func(Params) []Point{
	TypeConical:               conical,
	TypeExponential:           exponential,
	TypeModifiedExponential:   modifiedExponential,
	TypeParabolic:             parabolic,
	TypeTractrix:              tractrix,
	TypeHyperbolicExponential: hyperbolicExponential,
	TypeLeCleach:              leCleach,
	TypeJMLC:                  jmlc,
	TypeOblateSpheroid:        oblateSpheroid,
	TypeSphericalWave:         sphericalWave,
}

// Generate computes the flare curve for the given expansion law.
//
// Invalid geometry returns a nil curve and the violated-constraint
// sentinel. An unrecognized Type is a deliberate graceful-degradation
// policy: the exponential curve is computed and returned together with
// ErrUnknownType, which callers may treat as a warning.
func Generate(typ Type, p Params) ([]Point, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	p = p.normalize()

	gen, ok := generators[typ]
	if !ok {
		return finalize(exponential(p), p), ErrUnknownType
	}

	return finalize(gen(p), p), nil
}
