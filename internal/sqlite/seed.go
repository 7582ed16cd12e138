// This file seeds the built-in mineral catalog and the gemmological
// reference tables into a fresh database. Seeding is idempotent: it only
// runs when the minerals table is empty.
package sqlite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/mineraldb/pkg/types"
)

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

// seedMinerals is the built-in species catalog: the classic teaching set
// covering all seven crystal systems, plus the lab-grown counterparts and
// diamond simulants.
var seedMinerals = []types.Mineral{
	{
		ID: "diamond", Name: "Diamond",
		CDL:    "cubic[m3m]:{111}@1.0 + {110}@0.2",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "C",
		HardnessText: "10", Description: "Octahedral crystals, often with curved faces",
		SG: str("3.52"), RI: str("2.417"),
		Dispersion: num(0.044), OpticalCharacter: str("isotropic"),
		Lustre: str("adamantine"), Cleavage: str("perfect octahedral"), Fracture: str("conchoidal"),
		TwinLaw: str("spinel law"), Phenomenon: str("fire"),
		Localities: []string{"South Africa", "Botswana", "Russia", "Canada"},
		Forms:      []string{"octahedron", "cube", "dodecahedron"},
		Colors:     []string{"colorless", "yellow", "brown", "blue", "pink"},
		Treatments: []string{"HPHT color enhancement", "irradiation"},
		Inclusions: []string{"graphite", "garnet crystals", "feathers"},
		RIMin:      num(2.417), RIMax: num(2.419), SGMin: num(3.50), SGMax: num(3.53),
	},
	{
		ID: "ruby", Name: "Ruby",
		CDL:    "trigonal[-3m]:{0001}@0.8 + {11-20}@1.0",
		System: types.SystemTrigonal, PointGroup: "-3m", Chemistry: "Al2O3",
		HardnessText: "9", Description: "Tabular to prismatic corundum, chromium red",
		SG: str("3.97-4.05"), RI: str("1.762-1.770"),
		Birefringence: num(0.008), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.018), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("uneven"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("strong"),
		PleochroismColor1:   str("purplish red"), PleochroismColor2: str("orangy red"),
		Phenomenon: str("asterism"),
		Localities: []string{"Myanmar", "Mozambique", "Thailand", "Sri Lanka"},
		Forms:      []string{"hexagonal prism", "tabular"},
		Colors:     []string{"red", "purplish red", "pinkish red"},
		Treatments: []string{"heat", "flux healing", "lead glass filling"},
		Inclusions: []string{"rutile silk", "calcite", "fingerprints"},
		RIMin:      num(1.762), RIMax: num(1.770), SGMin: num(3.97), SGMax: num(4.05),
		HeatTreatMin: num(1200), HeatTreatMax: num(1800),
	},
	{
		ID: "sapphire", Name: "Sapphire",
		CDL:    "trigonal[-3m]:{0001}@0.6 + {11-23}@1.0",
		System: types.SystemTrigonal, PointGroup: "-3m", Chemistry: "Al2O3",
		HardnessText: "9", Description: "Barrel-shaped bipyramidal corundum",
		SG: str("3.95-4.03"), RI: str("1.760-1.768"),
		Birefringence: num(0.008), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.018), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("uneven"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("strong"),
		PleochroismColor1:   str("violetish blue"), PleochroismColor2: str("greenish blue"),
		Phenomenon: str("asterism"),
		Localities: []string{"Sri Lanka", "Madagascar", "Kashmir", "Australia"},
		Forms:      []string{"hexagonal bipyramid", "barrel"},
		Colors:     []string{"blue", "pink", "yellow", "padparadscha"},
		Treatments: []string{"heat", "beryllium diffusion"},
		Inclusions: []string{"rutile silk", "zircon halos", "color zoning"},
		RIMin:      num(1.760), RIMax: num(1.768), SGMin: num(3.95), SGMax: num(4.03),
		HeatTreatMin: num(1200), HeatTreatMax: num(1850),
	},
	{
		ID: "emerald", Name: "Emerald",
		CDL:    "hexagonal[6/mmm]:{10-10}@1.0 + {0001}@0.7",
		System: types.SystemHexagonal, PointGroup: "6/mmm", Chemistry: "Be3Al2Si6O18",
		HardnessText: "7.5-8", Description: "Prismatic beryl, chromium or vanadium green",
		SG: str("2.67-2.78"), RI: str("1.577-1.583"),
		Birefringence: num(0.006), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.014), Lustre: str("vitreous"),
		Cleavage: str("indistinct basal"), Fracture: str("conchoidal"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("moderate"),
		PleochroismColor1:   str("bluish green"), PleochroismColor2: str("yellowish green"),
		Localities: []string{"Colombia", "Zambia", "Brazil", "Afghanistan"},
		Forms:      []string{"hexagonal prism", "pinacoid"},
		Colors:     []string{"green", "bluish green"},
		Treatments: []string{"oiling", "resin filling"},
		Inclusions: []string{"three-phase inclusions", "jardin", "pyrite"},
		RIMin:      num(1.565), RIMax: num(1.602), SGMin: num(2.67), SGMax: num(2.78),
	},
	{
		ID: "aquamarine", Name: "Aquamarine",
		CDL:    "hexagonal[6/mmm]:{10-10}@1.0 + {0001}@1.2",
		System: types.SystemHexagonal, PointGroup: "6/mmm", Chemistry: "Be3Al2Si6O18",
		HardnessText: "7.5-8", Description: "Long clean prismatic beryl, iron blue",
		SG: str("2.66-2.80"), RI: str("1.567-1.590"),
		Birefringence: num(0.006), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.014), Lustre: str("vitreous"),
		Cleavage: str("indistinct basal"), Fracture: str("conchoidal"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("weak"),
		PleochroismColor1:   str("pale blue"), PleochroismColor2: str("colorless"),
		Localities: []string{"Brazil", "Pakistan", "Nigeria", "Madagascar"},
		Forms:      []string{"hexagonal prism"},
		Colors:     []string{"blue", "greenish blue"},
		Treatments: []string{"heat"},
		Inclusions: []string{"rain", "tubes"},
		RIMin:      num(1.567), RIMax: num(1.590), SGMin: num(2.66), SGMax: num(2.80),
		HeatTreatMin: num(350), HeatTreatMax: num(450),
	},
	{
		ID: "quartz", Name: "Quartz",
		CDL:    "trigonal[32]:{10-10}@1.0 + {10-11}@0.8 + {01-11}@0.8",
		System: types.SystemTrigonal, PointGroup: "32", Chemistry: "SiO2",
		HardnessText: "7", Description: "Prismatic crystals terminated by rhombohedra",
		SG: str("2.65"), RI: str("1.544-1.553"),
		Birefringence: num(0.009), OpticalCharacter: str("uniaxial positive"),
		Dispersion: num(0.013), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		TwinLaw:    str("japan law"),
		Localities: []string{"Brazil", "Arkansas", "Madagascar", "Alps"},
		Forms:      []string{"hexagonal prism", "rhombohedron"},
		Colors:     []string{"colorless"},
		Inclusions: []string{"rutile needles", "tourmaline", "fluid veils"},
		RIMin:      num(1.544), RIMax: num(1.553), SGMin: num(2.64), SGMax: num(2.66),
	},
	{
		ID: "amethyst", Name: "Amethyst",
		CDL:    "trigonal[32]:{10-11}@1.0 + {01-11}@0.9",
		System: types.SystemTrigonal, PointGroup: "32", Chemistry: "SiO2",
		HardnessText: "7", Description: "Purple quartz, often in scepters and druses",
		SG: str("2.65"), RI: str("1.544-1.553"),
		Birefringence: num(0.009), OpticalCharacter: str("uniaxial positive"),
		Dispersion: num(0.013), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		TwinLaw:    str("brazil law"),
		Localities: []string{"Brazil", "Uruguay", "Zambia"},
		Forms:      []string{"rhombohedron", "scepter"},
		Colors:     []string{"purple", "violet"},
		Treatments: []string{"heat"},
		Inclusions: []string{"color zoning", "tiger stripes"},
		RIMin:      num(1.544), RIMax: num(1.553), SGMin: num(2.64), SGMax: num(2.66),
		HeatTreatMin: num(350), HeatTreatMax: num(550),
	},
	{
		ID: "garnet", Name: "Garnet (Almandine)",
		CDL:    "cubic[m3m]:{110}@1.0 + {211}@0.9",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "Fe3Al2(SiO4)3",
		HardnessText: "7-7.5", Description: "Dodecahedral and trapezohedral crystals",
		SG: str("3.95-4.30"), RI: str("1.780-1.810"),
		OpticalCharacter: str("isotropic"),
		Dispersion:       num(0.024), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		Localities: []string{"India", "Sri Lanka", "Mozambique"},
		Forms:      []string{"dodecahedron", "trapezohedron"},
		Colors:     []string{"red", "brownish red"},
		Inclusions: []string{"rutile needles", "zircon"},
		RIMin:      num(1.780), RIMax: num(1.810), SGMin: num(3.95), SGMax: num(4.30),
	},
	{
		ID: "spinel", Name: "Spinel",
		CDL:    "cubic[m3m]:{111}@1.0",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "MgAl2O4",
		HardnessText: "8", Description: "Sharp octahedra, often twinned",
		SG: str("3.58-3.61"), RI: str("1.718"),
		OpticalCharacter: str("isotropic"),
		Dispersion:       num(0.020), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		TwinLaw:    str("spinel law"),
		Localities: []string{"Myanmar", "Tanzania", "Vietnam", "Tajikistan"},
		Forms:      []string{"octahedron", "macle"},
		Colors:     []string{"red", "pink", "blue", "lavender"},
		Inclusions: []string{"octahedral negative crystals", "iron staining"},
		RIMin:      num(1.712), RIMax: num(1.725), SGMin: num(3.58), SGMax: num(3.61),
	},
	{
		ID: "topaz", Name: "Topaz",
		CDL:    "orthorhombic[mmm]:{110}@1.0 + {011}@0.8 + {001}@0.5",
		System: types.SystemOrthorhombic, PointGroup: "mmm", Chemistry: "Al2SiO4(F,OH)2",
		HardnessText: "8", Description: "Prismatic crystals with wedge terminations",
		SG: str("3.49-3.57"), RI: str("1.609-1.643"),
		Birefringence: num(0.010), OpticalCharacter: str("biaxial positive"),
		Dispersion: num(0.014), Lustre: str("vitreous"),
		Cleavage: str("perfect basal"), Fracture: str("conchoidal"),
		Pleochroism:         str("trichroic"),
		PleochroismStrength: str("weak"),
		PleochroismColor1:   str("yellow"), PleochroismColor2: str("pale yellow"),
		PleochroismColor3: str("orange"),
		Localities: []string{"Brazil", "Pakistan", "Russia", "Nigeria"},
		Forms:      []string{"prism", "dome", "basal pinacoid"},
		Colors:     []string{"colorless", "blue", "imperial orange", "pink"},
		Treatments: []string{"irradiation", "heat"},
		Inclusions: []string{"two-phase inclusions", "cleavage cracks"},
		RIMin:      num(1.609), RIMax: num(1.643), SGMin: num(3.49), SGMax: num(3.57),
	},
	{
		ID: "fluorite", Name: "Fluorite",
		CDL:    "cubic[m3m]:{100}@1.0 + {111}@0.3",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "CaF2",
		HardnessText: "4", Description: "Cubes and interpenetrant twins, often zoned",
		SG: str("3.18"), RI: str("1.434"),
		OpticalCharacter: str("isotropic"),
		Dispersion:       num(0.007), Lustre: str("vitreous"),
		Cleavage: str("perfect octahedral"), Fracture: str("flat conchoidal"),
		TwinLaw:    str("penetration twin"),
		Phenomenon: str("fluorescence"),
		Localities: []string{"England", "China", "Mexico", "Illinois"},
		Forms:      []string{"cube", "octahedron", "penetration twin"},
		Colors:     []string{"purple", "green", "yellow", "blue"},
		Inclusions: []string{"color zoning", "two-phase inclusions"},
		RIMin:      num(1.432), RIMax: num(1.436), SGMin: num(3.17), SGMax: num(3.20),
	},
	{
		ID: "calcite", Name: "Calcite",
		CDL:    "trigonal[-3m]:{10-11}@1.0",
		System: types.SystemTrigonal, PointGroup: "-3m", Chemistry: "CaCO3",
		HardnessText: "3", Description: "Rhombohedra and scalenohedra, strongly birefringent",
		SG: str("2.71"), RI: str("1.486-1.658"),
		Birefringence: num(0.172), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.017), Lustre: str("vitreous"),
		Cleavage: str("perfect rhombohedral"), Fracture: str("conchoidal"),
		TwinLaw:    str("lamellar twinning"),
		Phenomenon: str("double refraction"),
		Localities: []string{"Iceland", "Mexico", "England"},
		Forms:      []string{"rhombohedron", "scalenohedron", "nailhead"},
		Colors:     []string{"colorless", "white", "golden"},
		RIMin:      num(1.486), RIMax: num(1.658), SGMin: num(2.69), SGMax: num(2.72),
	},
	{
		ID: "pyrite", Name: "Pyrite",
		CDL:    "cubic[m3]:{100}@1.0 + {210}@0.6",
		System: types.SystemCubic, PointGroup: "m3", Chemistry: "FeS2",
		HardnessText: "6-6.5", Description: "Striated cubes and pyritohedra, brass metallic",
		SG:     str("4.95-5.10"),
		Lustre: str("metallic"), Cleavage: str("indistinct"), Fracture: str("uneven"),
		TwinLaw:    str("iron cross"),
		Localities: []string{"Spain", "Peru", "Italy"},
		Forms:      []string{"cube", "pyritohedron", "octahedron"},
		Colors:     []string{"brass yellow"},
		SGMin:      num(4.95), SGMax: num(5.10),
	},
	{
		ID: "peridot", Name: "Peridot",
		CDL:    "orthorhombic[mmm]:{010}@1.0 + {110}@0.9 + {021}@0.7",
		System: types.SystemOrthorhombic, PointGroup: "mmm", Chemistry: "(Mg,Fe)2SiO4",
		HardnessText: "6.5-7", Description: "Flattened prismatic olivine, oily green",
		SG: str("3.32-3.37"), RI: str("1.654-1.690"),
		Birefringence: num(0.036), OpticalCharacter: str("biaxial positive"),
		Dispersion: num(0.020), Lustre: str("vitreous"),
		Cleavage: str("indistinct"), Fracture: str("conchoidal"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("weak"),
		PleochroismColor1:   str("yellow green"), PleochroismColor2: str("green"),
		Localities: []string{"Pakistan", "Myanmar", "Arizona", "Zabargad"},
		Forms:      []string{"prism", "pinacoid"},
		Colors:     []string{"yellowish green", "olive green"},
		Inclusions: []string{"lily pads", "chromite crystals"},
		RIMin:      num(1.654), RIMax: num(1.690), SGMin: num(3.32), SGMax: num(3.37),
	},
	{
		ID: "zircon", Name: "Zircon",
		CDL:    "tetragonal[4/mmm]:{100}@1.0 + {101}@0.8",
		System: types.SystemTetragonal, PointGroup: "4/mmm", Chemistry: "ZrSiO4",
		HardnessText: "7.5", Description: "Stubby tetragonal prisms with pyramid terminations",
		SG: str("4.60-4.70"), RI: str("1.925-1.984"),
		Birefringence: num(0.059), OpticalCharacter: str("uniaxial positive"),
		Dispersion: num(0.039), Lustre: str("subadamantine"),
		Cleavage: str("indistinct"), Fracture: str("conchoidal"),
		Localities: []string{"Cambodia", "Sri Lanka", "Tanzania"},
		Forms:      []string{"tetragonal prism", "bipyramid"},
		Colors:     []string{"blue", "brown", "colorless", "green"},
		Treatments: []string{"heat"},
		Inclusions: []string{"doubling", "angular zoning"},
		RIMin:      num(1.810), RIMax: num(2.024), SGMin: num(3.90), SGMax: num(4.73),
		HeatTreatMin: num(850), HeatTreatMax: num(1000),
	},
	{
		ID: "tourmaline", Name: "Tourmaline (Elbaite)",
		CDL:    "trigonal[3m]:{10-10}@1.0 + {0001}@1.1",
		System: types.SystemTrigonal, PointGroup: "3m", Chemistry: "Na(Li,Al)3Al6(BO3)3Si6O18(OH)4",
		HardnessText: "7-7.5", Description: "Striated trigonal prisms with hemimorphic ends",
		SG: str("3.01-3.11"), RI: str("1.614-1.666"),
		Birefringence: num(0.018), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.017), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		Pleochroism:         str("dichroic"),
		PleochroismStrength: str("strong"),
		PleochroismColor1:   str("dark green"), PleochroismColor2: str("light green"),
		Localities: []string{"Brazil", "Afghanistan", "Nigeria", "California"},
		Forms:      []string{"trigonal prism", "pedion"},
		Colors:     []string{"green", "pink", "bicolor", "paraiba blue"},
		Treatments: []string{"heat", "irradiation"},
		Inclusions: []string{"trichites", "growth tubes"},
		RIMin:      num(1.614), RIMax: num(1.666), SGMin: num(3.01), SGMax: num(3.11),
		HeatTreatMin: num(450), HeatTreatMax: num(700),
	},
	{
		ID: "orthoclase", Name: "Orthoclase",
		CDL:    "monoclinic[2/m]:{010}@1.0 + {001}@0.8 + {110}@0.9",
		System: types.SystemMonoclinic, PointGroup: "2/m", Chemistry: "KAlSi3O8",
		HardnessText: "6", Description: "Blocky monoclinic prisms, commonly Carlsbad twinned",
		SG: str("2.55-2.63"), RI: str("1.518-1.526"),
		Birefringence: num(0.008), OpticalCharacter: str("biaxial negative"),
		Dispersion: num(0.012), Lustre: str("vitreous"),
		Cleavage: str("perfect in two directions"), Fracture: str("uneven"),
		TwinLaw:    str("carlsbad law"),
		Phenomenon: str("adularescence"),
		Localities: []string{"Madagascar", "Sri Lanka", "Myanmar"},
		Forms:      []string{"prism", "pinacoid", "carlsbad twin"},
		Colors:     []string{"yellow", "colorless", "champagne"},
		RIMin:      num(1.518), RIMax: num(1.526), SGMin: num(2.55), SGMax: num(2.63),
	},
	{
		ID: "albite", Name: "Albite",
		CDL:    "triclinic[-1]:{010}@1.0 + {001}@0.8 + {110}@0.7",
		System: types.SystemTriclinic, PointGroup: "-1", Chemistry: "NaAlSi3O8",
		HardnessText: "6-6.5", Description: "Platy triclinic feldspar with polysynthetic twinning",
		SG: str("2.60-2.65"), RI: str("1.528-1.542"),
		Birefringence: num(0.010), OpticalCharacter: str("biaxial positive"),
		Lustre:   str("vitreous"),
		Cleavage: str("perfect basal"), Fracture: str("uneven"),
		TwinLaw:    str("albite law"),
		Localities: []string{"Italy", "Switzerland", "Virginia"},
		Forms:      []string{"pinacoid", "tabular"},
		Colors:     []string{"white", "colorless"},
		RIMin:      num(1.528), RIMax: num(1.542), SGMin: num(2.60), SGMax: num(2.65),
	},
	{
		ID: "synthetic-ruby", Name: "Synthetic Ruby",
		CDL:    "trigonal[-3m]:{0001}@0.8 + {11-20}@1.0",
		System: types.SystemTrigonal, PointGroup: "-3m", Chemistry: "Al2O3",
		HardnessText: "9", Description: "Flame-fusion boule material with curved striae",
		SG: str("3.97-4.05"), RI: str("1.762-1.770"),
		Birefringence: num(0.008), OpticalCharacter: str("uniaxial negative"),
		Dispersion: num(0.018), Lustre: str("vitreous"),
		Cleavage: str("none"), Fracture: str("conchoidal"),
		Origin:   types.OriginSynthetic,
		Colors:   []string{"red"},
		Inclusions: []string{"curved striae", "gas bubbles"},
		RIMin:      num(1.762), RIMax: num(1.770), SGMin: num(3.97), SGMax: num(4.05),
		GrowthMethod:         str("flame_fusion"),
		NaturalCounterpartID: str("ruby"),
	},
	{
		ID: "synthetic-diamond", Name: "Synthetic Diamond",
		CDL:    "cubic[m3m]:{100}@1.0 + {111}@0.8",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "C",
		HardnessText: "10", Description: "HPHT-grown cubo-octahedra with metallic flux inclusions",
		SG: str("3.52"), RI: str("2.417"),
		Dispersion: num(0.044), OpticalCharacter: str("isotropic"),
		Lustre: str("adamantine"), Cleavage: str("perfect octahedral"), Fracture: str("conchoidal"),
		Origin:     types.OriginSynthetic,
		Forms:      []string{"cube", "octahedron"},
		Colors:     []string{"colorless", "yellow", "blue"},
		Inclusions: []string{"metallic flux", "growth sector zoning"},
		RIMin:      num(2.417), RIMax: num(2.419), SGMin: num(3.50), SGMax: num(3.53),
		GrowthMethod:         str("hpht"),
		NaturalCounterpartID: str("diamond"),
	},
	{
		ID: "cubic-zirconia", Name: "Cubic Zirconia",
		CDL:    "cubic[m3m]:{111}@1.0 + {100}@0.4",
		System: types.SystemCubic, PointGroup: "m3m", Chemistry: "ZrO2",
		HardnessText: "8.5", Description: "Skull-melt grown diamond simulant",
		SG: str("5.60-6.00"), RI: str("2.150-2.180"),
		Dispersion: num(0.060), OpticalCharacter: str("isotropic"),
		Lustre: str("subadamantine"), Cleavage: str("none"), Fracture: str("conchoidal"),
		Origin: types.OriginSimulant,
		Colors: []string{"colorless", "any by doping"},
		RIMin:  num(2.150), RIMax: num(2.180), SGMin: num(5.60), SGMax: num(6.00),
		GrowthMethod:         str("skull_melt"),
		NaturalCounterpartID: str("diamond"),
	},
	{
		ID: "moissanite", Name: "Moissanite",
		CDL:    "hexagonal[6mm]:{10-10}@1.0 + {0001}@0.9",
		System: types.SystemHexagonal, PointGroup: "6mm", Chemistry: "SiC",
		HardnessText: "9.25", Description: "Lab-grown silicon carbide diamond simulant",
		SG: str("3.18-3.22"), RI: str("2.648-2.691"),
		Birefringence: num(0.043), OpticalCharacter: str("uniaxial positive"),
		Dispersion: num(0.104), Lustre: str("adamantine"),
		Cleavage: str("indistinct"), Fracture: str("conchoidal"),
		Origin:     types.OriginSimulant,
		Colors:     []string{"near colorless", "green tint"},
		Inclusions: []string{"parallel needles", "doubling"},
		RIMin:      num(2.648), RIMax: num(2.691), SGMin: num(3.18), SGMax: num(3.22),
		GrowthMethod:         str("sublimation"),
		NaturalCounterpartID: str("diamond"),
	},
}

// seedFamilies carries the family-level identification ranges and the
// origin classification driving the counterpart queries.
var seedFamilies = []types.MineralFamily{
	{
		ID: "diamond", Name: "Diamond", CrystalSystem: types.SystemCubic,
		Origin:     types.OriginNatural,
		PointGroup: str("m3m"), Chemistry: str("C"), MineralGroup: str("native elements"),
		HardnessMin: num(10), HardnessMax: num(10),
		SGMin: num(3.50), SGMax: num(3.53), RIMin: num(2.417), RIMax: num(2.419),
		Dispersion: num(0.044), OpticalCharacter: str("isotropic"),
		Lustre: str("adamantine"), Cleavage: str("perfect octahedral"),
		DiagnosticFeatures: str("Adamantine lustre, extreme hardness, high thermal conductivity"),
	},
	{
		ID: "ruby", Name: "Ruby", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginNatural,
		PointGroup: str("-3m"), Chemistry: str("Al2O3"), MineralGroup: str("corundum"),
		HardnessMin: num(9), HardnessMax: num(9),
		SGMin: num(3.97), SGMax: num(4.05), RIMin: num(1.762), RIMax: num(1.770),
		Birefringence: num(0.008), OpticalCharacter: str("uniaxial negative"),
		Fluorescence:       str("strong red under long wave"),
		HeatTreatMin:       num(1200),
		HeatTreatMax:       num(1800),
		DiagnosticFeatures: str("Chromium spectrum, red fluorescence, silk"),
	},
	{
		ID: "sapphire", Name: "Sapphire", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginNatural,
		PointGroup: str("-3m"), Chemistry: str("Al2O3"), MineralGroup: str("corundum"),
		HardnessMin: num(9), HardnessMax: num(9),
		SGMin: num(3.95), SGMax: num(4.03), RIMin: num(1.760), RIMax: num(1.768),
		Birefringence: num(0.008), OpticalCharacter: str("uniaxial negative"),
		HeatTreatMin: num(1200), HeatTreatMax: num(1850),
	},
	{
		ID: "emerald", Name: "Emerald", CrystalSystem: types.SystemHexagonal,
		Origin:     types.OriginNatural,
		PointGroup: str("6/mmm"), Chemistry: str("Be3Al2Si6O18"), MineralGroup: str("beryl"),
		HardnessMin: num(7.5), HardnessMax: num(8),
		SGMin: num(2.67), SGMax: num(2.78), RIMin: num(1.565), RIMax: num(1.602),
		Birefringence: num(0.006), OpticalCharacter: str("uniaxial negative"),
		CommonInclusions: str("Three-phase inclusions, jardin"),
	},
	{
		ID: "quartz", Name: "Quartz", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginNatural,
		PointGroup: str("32"), Chemistry: str("SiO2"), MineralGroup: str("silica"),
		HardnessMin: num(7), HardnessMax: num(7),
		SGMin: num(2.64), SGMax: num(2.66), RIMin: num(1.544), RIMax: num(1.553),
		Birefringence: num(0.009), OpticalCharacter: str("uniaxial positive"),
	},
	{
		ID: "synthetic-ruby", Name: "Synthetic Ruby", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginSynthetic,
		PointGroup: str("-3m"), Chemistry: str("Al2O3"),
		SGMin: num(3.97), SGMax: num(4.05), RIMin: num(1.762), RIMax: num(1.770),
		GrowthMethod:                str("flame_fusion"),
		NaturalCounterpartID:        str("ruby"),
		Manufacturer:                str("Verneuil process producers"),
		YearFirstProduced:           intp(1902),
		DiagnosticSyntheticFeatures: str("Curved striae, gas bubbles, strong fluorescence"),
	},
	{
		ID: "synthetic-ruby-flux", Name: "Synthetic Ruby (Flux)", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginSynthetic,
		PointGroup: str("-3m"), Chemistry: str("Al2O3"),
		SGMin: num(3.97), SGMax: num(4.05), RIMin: num(1.762), RIMax: num(1.770),
		GrowthMethod:                str("flux"),
		NaturalCounterpartID:        str("ruby"),
		YearFirstProduced:           intp(1960),
		DiagnosticSyntheticFeatures: str("Flux fingerprints, platinum platelets"),
	},
	{
		ID: "synthetic-sapphire", Name: "Synthetic Sapphire", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginSynthetic,
		PointGroup: str("-3m"), Chemistry: str("Al2O3"),
		SGMin: num(3.95), SGMax: num(4.03), RIMin: num(1.760), RIMax: num(1.768),
		GrowthMethod:                str("flame_fusion"),
		NaturalCounterpartID:        str("sapphire"),
		YearFirstProduced:           intp(1911),
		DiagnosticSyntheticFeatures: str("Curved color banding, Plato lines"),
	},
	{
		ID: "synthetic-diamond", Name: "Synthetic Diamond", CrystalSystem: types.SystemCubic,
		Origin:     types.OriginSynthetic,
		PointGroup: str("m3m"), Chemistry: str("C"),
		SGMin: num(3.50), SGMax: num(3.53), RIMin: num(2.417), RIMax: num(2.419),
		GrowthMethod:                str("hpht"),
		NaturalCounterpartID:        str("diamond"),
		YearFirstProduced:           intp(1954),
		DiagnosticSyntheticFeatures: str("Metallic flux inclusions, cross-shaped growth sectors"),
	},
	{
		ID: "synthetic-diamond-cvd", Name: "Synthetic Diamond (CVD)", CrystalSystem: types.SystemCubic,
		Origin:     types.OriginSynthetic,
		PointGroup: str("m3m"), Chemistry: str("C"),
		SGMin: num(3.50), SGMax: num(3.53), RIMin: num(2.417), RIMax: num(2.419),
		GrowthMethod:                str("cvd"),
		NaturalCounterpartID:        str("diamond"),
		YearFirstProduced:           intp(2003),
		DiagnosticSyntheticFeatures: str("Striated strain pattern, orange fluorescence layers"),
	},
	{
		ID: "synthetic-emerald", Name: "Synthetic Emerald", CrystalSystem: types.SystemHexagonal,
		Origin:     types.OriginSynthetic,
		PointGroup: str("6/mmm"), Chemistry: str("Be3Al2Si6O18"),
		SGMin: num(2.65), SGMax: num(2.70), RIMin: num(1.560), RIMax: num(1.568),
		GrowthMethod:                str("flux"),
		NaturalCounterpartID:        str("emerald"),
		YearFirstProduced:           intp(1935),
		DiagnosticSyntheticFeatures: str("Wisp-like flux veils, low RI and SG for emerald"),
	},
	{
		ID: "synthetic-quartz", Name: "Synthetic Quartz", CrystalSystem: types.SystemTrigonal,
		Origin:     types.OriginSynthetic,
		PointGroup: str("32"), Chemistry: str("SiO2"),
		SGMin: num(2.64), SGMax: num(2.66), RIMin: num(1.544), RIMax: num(1.553),
		GrowthMethod:                str("hydrothermal"),
		NaturalCounterpartID:        str("quartz"),
		YearFirstProduced:           intp(1950),
		DiagnosticSyntheticFeatures: str("Seed plate, breadcrumb inclusions"),
	},
	{
		ID: "cubic-zirconia", Name: "Cubic Zirconia", CrystalSystem: types.SystemCubic,
		Origin:     types.OriginSimulant,
		PointGroup: str("m3m"), Chemistry: str("ZrO2"),
		SGMin: num(5.60), SGMax: num(6.00), RIMin: num(2.150), RIMax: num(2.180),
		Dispersion:                  num(0.060),
		GrowthMethod:                str("skull_melt"),
		TargetMinerals:              []string{"diamond"},
		YearFirstProduced:           intp(1976),
		DiagnosticSyntheticFeatures: str("High SG, excess fire, reads cold on thermal tester"),
	},
	{
		ID: "moissanite", Name: "Moissanite", CrystalSystem: types.SystemHexagonal,
		Origin:     types.OriginSimulant,
		PointGroup: str("6mm"), Chemistry: str("SiC"),
		SGMin: num(3.18), SGMax: num(3.22), RIMin: num(2.648), RIMax: num(2.691),
		Birefringence:               num(0.043),
		Dispersion:                  num(0.104),
		GrowthMethod:                str("sublimation"),
		TargetMinerals:              []string{"diamond"},
		YearFirstProduced:           intp(1998),
		DiagnosticSyntheticFeatures: str("Doubling of facet junctions, parallel needle inclusions"),
	},
}

func intp(n int) *int { return &n }

// seedCategories are the curated tag categories layered over the crystal
// systems.
var seedCategories = map[string][]string{
	"twins": {"albite", "amethyst", "calcite", "fluorite", "orthoclase", "pyrite", "quartz", "spinel"},
}

// seedShapeFactors are the standard cut shape factors for carat weight
// estimation (weight = length x width x depth x SG x factor).
var seedShapeFactors = []types.ShapeFactor{
	{ID: "round", Name: "Round Brilliant", Factor: 0.0018, Description: "Standard round brilliant cut"},
	{ID: "oval", Name: "Oval Brilliant", Factor: 0.0020, Description: "Oval brilliant cut"},
	{ID: "cushion", Name: "Cushion", Factor: 0.00185, Description: "Cushion mixed cut"},
	{ID: "emerald-cut", Name: "Emerald Cut", Factor: 0.0025, Description: "Rectangular step cut"},
	{ID: "marquise", Name: "Marquise", Factor: 0.0016, Description: "Marquise brilliant cut"},
	{ID: "pear", Name: "Pear", Factor: 0.00175, Description: "Pear brilliant cut"},
}

// seedVolumeFactors are the volume factors for rough stone weight
// estimation.
var seedVolumeFactors = []types.VolumeFactor{
	{ID: "sphere", Name: "Sphere", Factor: 0.524},
	{ID: "cube", Name: "Cube", Factor: 1.0},
	{ID: "octahedron", Name: "Octahedron", Factor: 0.471},
	{ID: "rounded-pebble", Name: "Well-rounded Pebble", Factor: 0.60},
}

// seedThresholds are the classification bands for the gemmological scales.
var seedThresholds = []types.Threshold{
	{Category: "birefringence", Level: "none", MinValue: 0, MaxValue: num(0.001), Description: "Effectively isotropic"},
	{Category: "birefringence", Level: "low", MinValue: 0.001, MaxValue: num(0.010), Description: "Doubling invisible to the loupe"},
	{Category: "birefringence", Level: "medium", MinValue: 0.010, MaxValue: num(0.050), Description: "Doubling visible under magnification"},
	{Category: "birefringence", Level: "high", MinValue: 0.050, MaxValue: num(0.100), Description: "Obvious doubling of back facets"},
	{Category: "birefringence", Level: "very_high", MinValue: 0.100, Description: "Eye-visible double refraction"},
	{Category: "dispersion", Level: "low", MinValue: 0, MaxValue: num(0.020), Description: "Little visible fire"},
	{Category: "dispersion", Level: "medium", MinValue: 0.020, MaxValue: num(0.040), Description: "Moderate fire"},
	{Category: "dispersion", Level: "high", MinValue: 0.040, MaxValue: num(0.080), Description: "Strong fire, diamond-like"},
	{Category: "dispersion", Level: "very_high", MinValue: 0.080, Description: "Exceptional fire"},
	{Category: "critical_angle", Level: "small", MinValue: 0, MaxValue: num(35), Description: "High-RI stones, wide light return"},
	{Category: "critical_angle", Level: "medium", MinValue: 35, MaxValue: num(42), Description: "Most gem species"},
	{Category: "critical_angle", Level: "large", MinValue: 42, Description: "Low-RI stones, prone to windowing"},
}

// seedIfEmpty populates the built-in catalog and reference tables when the
// minerals table is empty. The caller must hold the write lock.
func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM minerals").Scan(&count); err != nil {
		return fmt.Errorf("counting minerals: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range seedMinerals {
		if err := insertMineral(tx, &seedMinerals[i]); err != nil {
			return err
		}
	}
	for i := range seedFamilies {
		if err := insertFamily(tx, &seedFamilies[i]); err != nil {
			return err
		}
	}
	for name, presets := range seedCategories {
		if err := insertCategory(tx, name, presets); err != nil {
			return err
		}
	}
	for _, f := range seedShapeFactors {
		_, err := tx.Exec("INSERT INTO shape_factors (id, name, factor, description) VALUES (?, ?, ?, ?)",
			f.ID, f.Name, f.Factor, f.Description)
		if err != nil {
			return fmt.Errorf("seeding shape factor %s: %w", f.ID, err)
		}
	}
	for _, f := range seedVolumeFactors {
		_, err := tx.Exec("INSERT INTO volume_factors (id, name, factor) VALUES (?, ?, ?)",
			f.ID, f.Name, f.Factor)
		if err != nil {
			return fmt.Errorf("seeding volume factor %s: %w", f.ID, err)
		}
	}
	for _, t := range seedThresholds {
		_, err := tx.Exec("INSERT INTO thresholds (category, level, min_value, max_value, description) VALUES (?, ?, ?, ?, ?)",
			t.Category, t.Level, t.MinValue, nullFloat(t.MaxValue), t.Description)
		if err != nil {
			return fmt.Errorf("seeding threshold %s/%s: %w", t.Category, t.Level, err)
		}
	}
	if err := stampBuildInfo(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	s.log.Debug("seeded built-in catalog",
		zap.Int("minerals", len(seedMinerals)),
		zap.Int("families", len(seedFamilies)),
	)
	return nil
}
