package element

// referenceElements is the built-in table. It covers atomic numbers 1-71 and
// 89-103; the period 6 and 7 d- and p-block elements are not included.
var referenceElements = []Element{
	// Period 1
	{AtomicNumber: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008, Category: Nonmetal, Period: 1, Group: 1, Block: BlockS},
	{AtomicNumber: 2, Symbol: "He", Name: "Helium", AtomicMass: 4.002602, Category: NobleGas, Period: 1, Group: 18, Block: BlockS},
	// Period 2
	{AtomicNumber: 3, Symbol: "Li", Name: "Lithium", AtomicMass: 6.94, Category: AlkaliMetal, Period: 2, Group: 1, Block: BlockS},
	{AtomicNumber: 4, Symbol: "Be", Name: "Beryllium", AtomicMass: 9.0121831, Category: AlkalineEarthMetal, Period: 2, Group: 2, Block: BlockS},
	{AtomicNumber: 5, Symbol: "B", Name: "Boron", AtomicMass: 10.81, Category: Metalloid, Period: 2, Group: 13, Block: BlockP},
	{AtomicNumber: 6, Symbol: "C", Name: "Carbon", AtomicMass: 12.011, Category: Nonmetal, Period: 2, Group: 14, Block: BlockP},
	{AtomicNumber: 7, Symbol: "N", Name: "Nitrogen", AtomicMass: 14.007, Category: Nonmetal, Period: 2, Group: 15, Block: BlockP},
	{AtomicNumber: 8, Symbol: "O", Name: "Oxygen", AtomicMass: 15.999, Category: Nonmetal, Period: 2, Group: 16, Block: BlockP},
	{AtomicNumber: 9, Symbol: "F", Name: "Fluorine", AtomicMass: 18.998403163, Category: Nonmetal, Period: 2, Group: 17, Block: BlockP},
	{AtomicNumber: 10, Symbol: "Ne", Name: "Neon", AtomicMass: 20.1797, Category: NobleGas, Period: 2, Group: 18, Block: BlockP},
	// Period 3
	{AtomicNumber: 11, Symbol: "Na", Name: "Sodium", AtomicMass: 22.98976928, Category: AlkaliMetal, Period: 3, Group: 1, Block: BlockS},
	{AtomicNumber: 12, Symbol: "Mg", Name: "Magnesium", AtomicMass: 24.305, Category: AlkalineEarthMetal, Period: 3, Group: 2, Block: BlockS},
	{AtomicNumber: 13, Symbol: "Al", Name: "Aluminum", AtomicMass: 26.9815385, Category: PostTransitionMetal, Period: 3, Group: 13, Block: BlockP},
	{AtomicNumber: 14, Symbol: "Si", Name: "Silicon", AtomicMass: 28.085, Category: Metalloid, Period: 3, Group: 14, Block: BlockP},
	{AtomicNumber: 15, Symbol: "P", Name: "Phosphorus", AtomicMass: 30.973761998, Category: Nonmetal, Period: 3, Group: 15, Block: BlockP},
	{AtomicNumber: 16, Symbol: "S", Name: "Sulfur", AtomicMass: 32.06, Category: Nonmetal, Period: 3, Group: 16, Block: BlockP},
	{AtomicNumber: 17, Symbol: "Cl", Name: "Chlorine", AtomicMass: 35.45, Category: Nonmetal, Period: 3, Group: 17, Block: BlockP},
	{AtomicNumber: 18, Symbol: "Ar", Name: "Argon", AtomicMass: 39.948, Category: NobleGas, Period: 3, Group: 18, Block: BlockP},
	// Period 4
	{AtomicNumber: 19, Symbol: "K", Name: "Potassium", AtomicMass: 39.0983, Category: AlkaliMetal, Period: 4, Group: 1, Block: BlockS},
	{AtomicNumber: 20, Symbol: "Ca", Name: "Calcium", AtomicMass: 40.078, Category: AlkalineEarthMetal, Period: 4, Group: 2, Block: BlockS},
	{AtomicNumber: 21, Symbol: "Sc", Name: "Scandium", AtomicMass: 44.955908, Category: TransitionMetal, Period: 4, Group: 3, Block: BlockD},
	{AtomicNumber: 22, Symbol: "Ti", Name: "Titanium", AtomicMass: 47.867, Category: TransitionMetal, Period: 4, Group: 4, Block: BlockD},
	{AtomicNumber: 23, Symbol: "V", Name: "Vanadium", AtomicMass: 50.9415, Category: TransitionMetal, Period: 4, Group: 5, Block: BlockD},
	{AtomicNumber: 24, Symbol: "Cr", Name: "Chromium", AtomicMass: 51.9961, Category: TransitionMetal, Period: 4, Group: 6, Block: BlockD},
	{AtomicNumber: 25, Symbol: "Mn", Name: "Manganese", AtomicMass: 54.938044, Category: TransitionMetal, Period: 4, Group: 7, Block: BlockD},
	{AtomicNumber: 26, Symbol: "Fe", Name: "Iron", AtomicMass: 55.845, Category: TransitionMetal, Period: 4, Group: 8, Block: BlockD},
	{AtomicNumber: 27, Symbol: "Co", Name: "Cobalt", AtomicMass: 58.933194, Category: TransitionMetal, Period: 4, Group: 9, Block: BlockD},
	{AtomicNumber: 28, Symbol: "Ni", Name: "Nickel", AtomicMass: 58.6934, Category: TransitionMetal, Period: 4, Group: 10, Block: BlockD},
	{AtomicNumber: 29, Symbol: "Cu", Name: "Copper", AtomicMass: 63.546, Category: TransitionMetal, Period: 4, Group: 11, Block: BlockD},
	{AtomicNumber: 30, Symbol: "Zn", Name: "Zinc", AtomicMass: 65.38, Category: TransitionMetal, Period: 4, Group: 12, Block: BlockD},
	{AtomicNumber: 31, Symbol: "Ga", Name: "Gallium", AtomicMass: 69.723, Category: PostTransitionMetal, Period: 4, Group: 13, Block: BlockP},
	{AtomicNumber: 32, Symbol: "Ge", Name: "Germanium", AtomicMass: 72.630, Category: Metalloid, Period: 4, Group: 14, Block: BlockP},
	{AtomicNumber: 33, Symbol: "As", Name: "Arsenic", AtomicMass: 74.921595, Category: Metalloid, Period: 4, Group: 15, Block: BlockP},
	{AtomicNumber: 34, Symbol: "Se", Name: "Selenium", AtomicMass: 78.971, Category: Nonmetal, Period: 4, Group: 16, Block: BlockP},
	{AtomicNumber: 35, Symbol: "Br", Name: "Bromine", AtomicMass: 79.904, Category: Nonmetal, Period: 4, Group: 17, Block: BlockP},
	{AtomicNumber: 36, Symbol: "Kr", Name: "Krypton", AtomicMass: 83.798, Category: NobleGas, Period: 4, Group: 18, Block: BlockP},
	// Period 5
	{AtomicNumber: 37, Symbol: "Rb", Name: "Rubidium", AtomicMass: 85.4678, Category: AlkaliMetal, Period: 5, Group: 1, Block: BlockS},
	{AtomicNumber: 38, Symbol: "Sr", Name: "Strontium", AtomicMass: 87.62, Category: AlkalineEarthMetal, Period: 5, Group: 2, Block: BlockS},
	{AtomicNumber: 39, Symbol: "Y", Name: "Yttrium", AtomicMass: 88.90584, Category: TransitionMetal, Period: 5, Group: 3, Block: BlockD},
	{AtomicNumber: 40, Symbol: "Zr", Name: "Zirconium", AtomicMass: 91.224, Category: TransitionMetal, Period: 5, Group: 4, Block: BlockD},
	{AtomicNumber: 41, Symbol: "Nb", Name: "Niobium", AtomicMass: 92.90637, Category: TransitionMetal, Period: 5, Group: 5, Block: BlockD},
	{AtomicNumber: 42, Symbol: "Mo", Name: "Molybdenum", AtomicMass: 95.95, Category: TransitionMetal, Period: 5, Group: 6, Block: BlockD},
	{AtomicNumber: 43, Symbol: "Tc", Name: "Technetium", AtomicMass: 98, Category: TransitionMetal, Period: 5, Group: 7, Block: BlockD},
	{AtomicNumber: 44, Symbol: "Ru", Name: "Ruthenium", AtomicMass: 101.07, Category: TransitionMetal, Period: 5, Group: 8, Block: BlockD},
	{AtomicNumber: 45, Symbol: "Rh", Name: "Rhodium", AtomicMass: 102.90550, Category: TransitionMetal, Period: 5, Group: 9, Block: BlockD},
	{AtomicNumber: 46, Symbol: "Pd", Name: "Palladium", AtomicMass: 106.42, Category: TransitionMetal, Period: 5, Group: 10, Block: BlockD},
	{AtomicNumber: 47, Symbol: "Ag", Name: "Silver", AtomicMass: 107.8682, Category: TransitionMetal, Period: 5, Group: 11, Block: BlockD},
	{AtomicNumber: 48, Symbol: "Cd", Name: "Cadmium", AtomicMass: 112.414, Category: TransitionMetal, Period: 5, Group: 12, Block: BlockD},
	{AtomicNumber: 49, Symbol: "In", Name: "Indium", AtomicMass: 114.818, Category: PostTransitionMetal, Period: 5, Group: 13, Block: BlockP},
	{AtomicNumber: 50, Symbol: "Sn", Name: "Tin", AtomicMass: 118.710, Category: PostTransitionMetal, Period: 5, Group: 14, Block: BlockP},
	{AtomicNumber: 51, Symbol: "Sb", Name: "Antimony", AtomicMass: 121.760, Category: Metalloid, Period: 5, Group: 15, Block: BlockP},
	{AtomicNumber: 52, Symbol: "Te", Name: "Tellurium", AtomicMass: 127.60, Category: Metalloid, Period: 5, Group: 16, Block: BlockP},
	{AtomicNumber: 53, Symbol: "I", Name: "Iodine", AtomicMass: 126.90447, Category: Nonmetal, Period: 5, Group: 17, Block: BlockP},
	{AtomicNumber: 54, Symbol: "Xe", Name: "Xenon", AtomicMass: 131.293, Category: NobleGas, Period: 5, Group: 18, Block: BlockP},
	// Period 6
	{AtomicNumber: 55, Symbol: "Cs", Name: "Cesium", AtomicMass: 132.90545196, Category: AlkaliMetal, Period: 6, Group: 1, Block: BlockS},
	{AtomicNumber: 56, Symbol: "Ba", Name: "Barium", AtomicMass: 137.327, Category: AlkalineEarthMetal, Period: 6, Group: 2, Block: BlockS},
	// Lanthanides
	{AtomicNumber: 57, Symbol: "La", Name: "Lanthanum", AtomicMass: 138.90547, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 58, Symbol: "Ce", Name: "Cerium", AtomicMass: 140.116, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 59, Symbol: "Pr", Name: "Praseodymium", AtomicMass: 140.90766, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 60, Symbol: "Nd", Name: "Neodymium", AtomicMass: 144.242, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 61, Symbol: "Pm", Name: "Promethium", AtomicMass: 145, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 62, Symbol: "Sm", Name: "Samarium", AtomicMass: 150.36, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 63, Symbol: "Eu", Name: "Europium", AtomicMass: 151.964, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 64, Symbol: "Gd", Name: "Gadolinium", AtomicMass: 157.25, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 65, Symbol: "Tb", Name: "Terbium", AtomicMass: 158.92535, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 66, Symbol: "Dy", Name: "Dysprosium", AtomicMass: 162.500, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 67, Symbol: "Ho", Name: "Holmium", AtomicMass: 164.93033, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 68, Symbol: "Er", Name: "Erbium", AtomicMass: 167.259, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 69, Symbol: "Tm", Name: "Thulium", AtomicMass: 168.93422, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 70, Symbol: "Yb", Name: "Ytterbium", AtomicMass: 173.045, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	{AtomicNumber: 71, Symbol: "Lu", Name: "Lutetium", AtomicMass: 174.9668, Category: Lanthanide, Period: 6, Group: 3, Block: BlockF},
	// Actinides
	{AtomicNumber: 89, Symbol: "Ac", Name: "Actinium", AtomicMass: 227, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 90, Symbol: "Th", Name: "Thorium", AtomicMass: 232.0377, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 91, Symbol: "Pa", Name: "Protactinium", AtomicMass: 231.03588, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 92, Symbol: "U", Name: "Uranium", AtomicMass: 238.02891, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 93, Symbol: "Np", Name: "Neptunium", AtomicMass: 237, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 94, Symbol: "Pu", Name: "Plutonium", AtomicMass: 244, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 95, Symbol: "Am", Name: "Americium", AtomicMass: 243, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 96, Symbol: "Cm", Name: "Curium", AtomicMass: 247, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 97, Symbol: "Bk", Name: "Berkelium", AtomicMass: 247, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 98, Symbol: "Cf", Name: "Californium", AtomicMass: 251, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 99, Symbol: "Es", Name: "Einsteinium", AtomicMass: 252, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 100, Symbol: "Fm", Name: "Fermium", AtomicMass: 257, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 101, Symbol: "Md", Name: "Mendelevium", AtomicMass: 258, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 102, Symbol: "No", Name: "Nobelium", AtomicMass: 259, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
	{AtomicNumber: 103, Symbol: "Lr", Name: "Lawrencium", AtomicMass: 262, Category: Actinide, Period: 7, Group: 3, Block: BlockF},
}
