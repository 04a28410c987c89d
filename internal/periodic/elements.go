package periodic

// elements lists every element with its period and group.
// Group 0 marks the f-block rows (Ce–Lu, Th–Lr), placed below the main table.
var elements = []entry{
	{1, "H", "Hydrogen", 1.008, Nonmetal, 1, 1},
	{2, "He", "Helium", 4.0026, Nonmetal, 1, 18},
	{3, "Li", "Lithium", 6.94, Metal, 2, 1},
	{4, "Be", "Beryllium", 9.0122, Metal, 2, 2},
	{5, "B", "Boron", 10.81, Metalloid, 2, 13},
	{6, "C", "Carbon", 12.011, Nonmetal, 2, 14},
	{7, "N", "Nitrogen", 14.007, Nonmetal, 2, 15},
	{8, "O", "Oxygen", 15.999, Nonmetal, 2, 16},
	{9, "F", "Fluorine", 18.998, Nonmetal, 2, 17},
	{10, "Ne", "Neon", 20.180, Nonmetal, 2, 18},
	{11, "Na", "Sodium", 22.990, Metal, 3, 1},
	{12, "Mg", "Magnesium", 24.305, Metal, 3, 2},
	{13, "Al", "Aluminium", 26.982, Metal, 3, 13},
	{14, "Si", "Silicon", 28.085, Metalloid, 3, 14},
	{15, "P", "Phosphorus", 30.974, Nonmetal, 3, 15},
	{16, "S", "Sulfur", 32.06, Nonmetal, 3, 16},
	{17, "Cl", "Chlorine", 35.45, Nonmetal, 3, 17},
	{18, "Ar", "Argon", 39.948, Nonmetal, 3, 18},
	{19, "K", "Potassium", 39.098, Metal, 4, 1},
	{20, "Ca", "Calcium", 40.078, Metal, 4, 2},
	{21, "Sc", "Scandium", 44.956, Metal, 4, 3},
	{22, "Ti", "Titanium", 47.867, Metal, 4, 4},
	{23, "V", "Vanadium", 50.942, Metal, 4, 5},
	{24, "Cr", "Chromium", 51.996, Metal, 4, 6},
	{25, "Mn", "Manganese", 54.938, Metal, 4, 7},
	{26, "Fe", "Iron", 55.845, Metal, 4, 8},
	{27, "Co", "Cobalt", 58.933, Metal, 4, 9},
	{28, "Ni", "Nickel", 58.693, Metal, 4, 10},
	{29, "Cu", "Copper", 63.546, Metal, 4, 11},
	{30, "Zn", "Zinc", 65.38, Metal, 4, 12},
	{31, "Ga", "Gallium", 69.723, Metal, 4, 13},
	{32, "Ge", "Germanium", 72.630, Metalloid, 4, 14},
	{33, "As", "Arsenic", 74.922, Metalloid, 4, 15},
	{34, "Se", "Selenium", 78.971, Nonmetal, 4, 16},
	{35, "Br", "Bromine", 79.904, Nonmetal, 4, 17},
	{36, "Kr", "Krypton", 83.798, Nonmetal, 4, 18},
	{37, "Rb", "Rubidium", 85.468, Metal, 5, 1},
	{38, "Sr", "Strontium", 87.62, Metal, 5, 2},
	{39, "Y", "Yttrium", 88.906, Metal, 5, 3},
	{40, "Zr", "Zirconium", 91.224, Metal, 5, 4},
	{41, "Nb", "Niobium", 92.906, Metal, 5, 5},
	{42, "Mo", "Molybdenum", 95.95, Metal, 5, 6},
	{43, "Tc", "Technetium", 98, Metal, 5, 7},
	{44, "Ru", "Ruthenium", 101.07, Metal, 5, 8},
	{45, "Rh", "Rhodium", 102.91, Metal, 5, 9},
	{46, "Pd", "Palladium", 106.42, Metal, 5, 10},
	{47, "Ag", "Silver", 107.87, Metal, 5, 11},
	{48, "Cd", "Cadmium", 112.41, Metal, 5, 12},
	{49, "In", "Indium", 114.82, Metal, 5, 13},
	{50, "Sn", "Tin", 118.71, Metal, 5, 14},
	{51, "Sb", "Antimony", 121.76, Metalloid, 5, 15},
	{52, "Te", "Tellurium", 127.60, Metalloid, 5, 16},
	{53, "I", "Iodine", 126.90, Nonmetal, 5, 17},
	{54, "Xe", "Xenon", 131.29, Nonmetal, 5, 18},
	{55, "Cs", "Caesium", 132.91, Metal, 6, 1},
	{56, "Ba", "Barium", 137.33, Metal, 6, 2},
	{57, "La", "Lanthanum", 138.91, Metal, 6, 3},
	{58, "Ce", "Cerium", 140.12, Metal, 6, 0},
	{59, "Pr", "Praseodymium", 140.91, Metal, 6, 0},
	{60, "Nd", "Neodymium", 144.24, Metal, 6, 0},
	{61, "Pm", "Promethium", 145, Metal, 6, 0},
	{62, "Sm", "Samarium", 150.36, Metal, 6, 0},
	{63, "Eu", "Europium", 151.96, Metal, 6, 0},
	{64, "Gd", "Gadolinium", 157.25, Metal, 6, 0},
	{65, "Tb", "Terbium", 158.93, Metal, 6, 0},
	{66, "Dy", "Dysprosium", 162.50, Metal, 6, 0},
	{67, "Ho", "Holmium", 164.93, Metal, 6, 0},
	{68, "Er", "Erbium", 167.26, Metal, 6, 0},
	{69, "Tm", "Thulium", 168.93, Metal, 6, 0},
	{70, "Yb", "Ytterbium", 173.05, Metal, 6, 0},
	{71, "Lu", "Lutetium", 174.97, Metal, 6, 0},
	{72, "Hf", "Hafnium", 178.49, Metal, 6, 4},
	{73, "Ta", "Tantalum", 180.95, Metal, 6, 5},
	{74, "W", "Tungsten", 183.84, Metal, 6, 6},
	{75, "Re", "Rhenium", 186.21, Metal, 6, 7},
	{76, "Os", "Osmium", 190.23, Metal, 6, 8},
	{77, "Ir", "Iridium", 192.22, Metal, 6, 9},
	{78, "Pt", "Platinum", 195.08, Metal, 6, 10},
	{79, "Au", "Gold", 196.97, Metal, 6, 11},
	{80, "Hg", "Mercury", 200.59, Metal, 6, 12},
	{81, "Tl", "Thallium", 204.38, Metal, 6, 13},
	{82, "Pb", "Lead", 207.2, Metal, 6, 14},
	{83, "Bi", "Bismuth", 208.98, Metal, 6, 15},
	{84, "Po", "Polonium", 209, Metal, 6, 16},
	{85, "At", "Astatine", 210, Metalloid, 6, 17},
	{86, "Rn", "Radon", 222, Nonmetal, 6, 18},
	{87, "Fr", "Francium", 223, Metal, 7, 1},
	{88, "Ra", "Radium", 226, Metal, 7, 2},
	{89, "Ac", "Actinium", 227, Metal, 7, 3},
	{90, "Th", "Thorium", 232.04, Metal, 7, 0},
	{91, "Pa", "Protactinium", 231.04, Metal, 7, 0},
	{92, "U", "Uranium", 238.03, Metal, 7, 0},
	{93, "Np", "Neptunium", 237, Metal, 7, 0},
	{94, "Pu", "Plutonium", 244, Metal, 7, 0},
	{95, "Am", "Americium", 243, Metal, 7, 0},
	{96, "Cm", "Curium", 247, Metal, 7, 0},
	{97, "Bk", "Berkelium", 247, Metal, 7, 0},
	{98, "Cf", "Californium", 251, Metal, 7, 0},
	{99, "Es", "Einsteinium", 252, Metal, 7, 0},
	{100, "Fm", "Fermium", 257, Metal, 7, 0},
	{101, "Md", "Mendelevium", 258, Metal, 7, 0},
	{102, "No", "Nobelium", 259, Metal, 7, 0},
	{103, "Lr", "Lawrencium", 266, Metal, 7, 0},
	{104, "Rf", "Rutherfordium", 267, Metal, 7, 4},
	{105, "Db", "Dubnium", 268, Metal, 7, 5},
	{106, "Sg", "Seaborgium", 269, Metal, 7, 6},
	{107, "Bh", "Bohrium", 270, Metal, 7, 7},
	{108, "Hs", "Hassium", 277, Metal, 7, 8},
	{109, "Mt", "Meitnerium", 278, Metal, 7, 9},
	{110, "Ds", "Darmstadtium", 281, Metal, 7, 10},
	{111, "Rg", "Roentgenium", 282, Metal, 7, 11},
	{112, "Cn", "Copernicium", 285, Metal, 7, 12},
	{113, "Nh", "Nihonium", 286, Metal, 7, 13},
	{114, "Fl", "Flerovium", 289, Metal, 7, 14},
	{115, "Mc", "Moscovium", 290, Metal, 7, 15},
	{116, "Lv", "Livermorium", 293, Metal, 7, 16},
	{117, "Ts", "Tennessine", 294, Metalloid, 7, 17},
	{118, "Og", "Oganesson", 294, Nonmetal, 7, 18},
}
