package aisc

// testSection returns a compact wide-flange section (W36x160 metric
// properties with A992 material) used as the base fixture. Individual
// tests copy and tweak it to force specific classifications.
func testSection() SectionProperties {
	return SectionProperties{
		D:  88.90,
		Bf: 30.48,
		Tf: 1.73,
		Tw: 1.02,
		A:  306.45,
		Ix: 149762.81,
		Sx: 3369.02,
		Zx: 3722.60,
		Rx: 22.10,
		Iy: 12569.87,
		Sy: 825.16,
		Zy: 1264.52,
		Ry: 6.40,
		J:  48.26,
		Cw: 998533.44,
		Ho: 87.17,
		Fy: DefaultFy,
		Fu: DefaultFu,
		E:  DefaultE,
	}
}
