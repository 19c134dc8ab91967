package periodic

// layout is the mod 8 spiral table, top to bottom. Each row has eight cells
// lined up under the valence header; the zero Button is an empty cell.
var layout = [][]Button{
	{
		{},
		{},
		{},
		{},
		{},
		{},
		{ID: "H", Name: "Hydrogen", Group: Nonmetal},
		{ID: "He", Name: "Helium", Group: NobleGas},
	},
	{
		{ID: "Li", Name: "Lithium", Group: AlkaliMetal},
		{ID: "Be", Name: "Beryllium", Group: AlkalineEarthMetal},
		{ID: "B", Name: "Boron", Group: Metalloid},
		{ID: "C", Name: "Carbon", Group: Nonmetal},
		{ID: "N", Name: "Nitrogen", Group: Nonmetal},
		{ID: "O", Name: "Oxygen", Group: Nonmetal},
		{ID: "F", Name: "Fluorine", Group: Halogen},
		{ID: "Ne", Name: "Neon", Group: NobleGas},
	},
	{
		{ID: "Na", Name: "Sodium", Group: AlkaliMetal},
		{ID: "Mg", Name: "Magnesium", Group: AlkalineEarthMetal},
		{ID: "Al", Name: "Aluminium", Group: PostTransitionMetal},
		{ID: "Si", Name: "Silicon", Group: Metalloid},
		{ID: "P", Name: "Phosphorus", Group: Nonmetal},
		{ID: "S", Name: "Sulfur", Group: Nonmetal},
		{ID: "Cl", Name: "Chlorine", Group: Halogen},
		{ID: "Ar", Name: "Argon", Group: NobleGas},
	},
	{
		{ID: "K", Name: "Potassium", Group: AlkaliMetal},
		{ID: "Ca", Name: "Calcium", Group: AlkalineEarthMetal},
		{ID: "Sc", Name: "Scandium", Group: TransitionMetal},
		{ID: "Ti", Name: "Titanium", Group: TransitionMetal},
		{ID: "V", Name: "Vanadium", Group: TransitionMetal},
		{ID: "Cr", Name: "Chromium", Group: TransitionMetal},
		{ID: "K1", Name: "Potassium", Group: AlkaliMetal},
		{ID: "Ca1", Name: "Calcium", Group: AlkalineEarthMetal},
	},
	{
		{ID: "Sc1", Name: "Scandium", Group: TransitionMetal},
		{ID: "Ti1", Name: "Titanium", Group: TransitionMetal},
		{ID: "V1", Name: "Vanadium", Group: TransitionMetal},
		{ID: "Cr1", Name: "Chromium", Group: TransitionMetal},
		{ID: "Mn", Name: "Manganese", Group: TransitionMetal},
		{ID: "Fe", Name: "Iron", Group: TransitionMetal},
		{ID: "Co", Name: "Cobalt", Group: TransitionMetal},
		{ID: "Ni", Name: "Nickel", Group: TransitionMetal},
	},
	{
		{ID: "Cu", Name: "Copper", Group: TransitionMetal},
		{ID: "Zn", Name: "Zinc", Group: TransitionMetal},
		{ID: "Ga", Name: "Gallium", Group: PostTransitionMetal},
		{ID: "Ge", Name: "Germanium", Group: Metalloid},
		{ID: "As", Name: "Arsenic", Group: Metalloid},
		{ID: "Se", Name: "Selenium", Group: Nonmetal},
		{ID: "Br", Name: "Bromine", Group: Halogen},
		{ID: "Kr", Name: "Krypton", Group: NobleGas},
	},
	{
		{ID: "Rb", Name: "Rubidium", Group: AlkaliMetal},
		{ID: "Sr", Name: "Strontium", Group: AlkalineEarthMetal},
		{ID: "Y", Name: "Yttrium", Group: TransitionMetal},
		{ID: "Zr", Name: "Zirconium", Group: TransitionMetal},
		{ID: "Nb", Name: "Niobium", Group: TransitionMetal},
		{ID: "Mo", Name: "Molybdenum", Group: TransitionMetal},
		{ID: "Rb1", Name: "Rubidium", Group: AlkaliMetal},
		{ID: "Sr1", Name: "Strontium", Group: AlkalineEarthMetal},
	},
	{
		{ID: "Y1", Name: "Yttrium", Group: TransitionMetal},
		{ID: "Zr1", Name: "Zirconium", Group: TransitionMetal},
		{ID: "Nb1", Name: "Niobium", Group: TransitionMetal},
		{ID: "Mo1", Name: "Molybdenum", Group: TransitionMetal},
		{ID: "Tc", Name: "Technetium", Group: TransitionMetal},
		{ID: "Ru", Name: "Ruthenium", Group: TransitionMetal},
		{ID: "Rh", Name: "Rhodium", Group: TransitionMetal},
		{ID: "Pd", Name: "Palladium", Group: TransitionMetal},
	},
	{
		{ID: "Ag", Name: "Silver", Group: TransitionMetal},
		{ID: "Cd", Name: "Cadmium", Group: TransitionMetal},
		{ID: "In", Name: "Indium", Group: PostTransitionMetal},
		{ID: "Sn", Name: "Tin", Group: PostTransitionMetal},
		{ID: "Sb", Name: "Antimony", Group: Metalloid},
		{ID: "Te", Name: "Tellurium", Group: Metalloid},
		{ID: "I", Name: "Iodine", Group: Halogen},
		{ID: "Xe", Name: "Xenon", Group: NobleGas},
	},
	{
		{ID: "Cs", Name: "Cesium", Group: AlkaliMetal},
		{ID: "Ba", Name: "Barium", Group: AlkalineEarthMetal},
		{ID: "La", Name: "Lanthanum", Group: InnerTransitionMetal},
		{ID: "Ce", Name: "Cerium", Group: InnerTransitionMetal},
		{ID: "Pr", Name: "Praseodymium", Group: InnerTransitionMetal},
		{ID: "Nd", Name: "Neodymium", Group: InnerTransitionMetal},
		{ID: "Pm", Name: "Promethium", Group: InnerTransitionMetal},
		{ID: "Sm", Name: "Samarium", Group: InnerTransitionMetal},
	},
	{
		{ID: "Eu", Name: "Europium", Group: InnerTransitionMetal},
		{ID: "Gd", Name: "Gadolinium", Group: InnerTransitionMetal},
		{ID: "Tb", Name: "Terbium", Group: InnerTransitionMetal},
		{ID: "Dy", Name: "Dysprosium", Group: InnerTransitionMetal},
		{ID: "Ho", Name: "Holmium", Group: InnerTransitionMetal},
		{ID: "Er", Name: "Erbium", Group: InnerTransitionMetal},
		{ID: "Tm", Name: "Thulium", Group: InnerTransitionMetal},
		{ID: "Yb", Name: "Ytterbium", Group: InnerTransitionMetal},
	},
	{
		{ID: "Lu", Name: "Lutetium", Group: InnerTransitionMetal},
		{ID: "Hf", Name: "Hafnium", Group: TransitionMetal},
		{ID: "Ta", Name: "Tantalum", Group: TransitionMetal},
		{ID: "W", Name: "Tungsten", Group: TransitionMetal},
		{ID: "Re", Name: "Rhenium", Group: TransitionMetal},
		{ID: "Os", Name: "Osmium", Group: TransitionMetal},
		{ID: "Ir", Name: "Iridium", Group: TransitionMetal},
		{ID: "Pt", Name: "Platinum", Group: TransitionMetal},
	},
	{
		{ID: "Au", Name: "Gold", Group: TransitionMetal},
		{ID: "Hg", Name: "Mercury", Group: TransitionMetal},
		{ID: "Tl", Name: "Thallium", Group: PostTransitionMetal},
		{ID: "Pb", Name: "Lead", Group: PostTransitionMetal},
		{ID: "Bi", Name: "Bismuth", Group: PostTransitionMetal},
		{ID: "Po", Name: "Polonium", Group: Nonmetal},
		{ID: "At", Name: "Astatine", Group: Halogen},
		{ID: "Rn", Name: "Radon", Group: NobleGas},
	},
	{
		{ID: "Fr", Name: "Francium", Group: AlkaliMetal},
		{ID: "Ra", Name: "Radium", Group: AlkalineEarthMetal},
		{ID: "Ac", Name: "Actinium", Group: InnerTransitionMetal},
		{ID: "Th", Name: "Thorium", Group: InnerTransitionMetal},
		{ID: "Pa", Name: "Protactinium", Group: InnerTransitionMetal},
		{ID: "U", Name: "Uranium", Group: InnerTransitionMetal},
		{ID: "Np", Name: "Neptunium", Group: InnerTransitionMetal},
		{ID: "Pu", Name: "Plutonium", Group: InnerTransitionMetal},
	},
	{
		{ID: "Am", Name: "Americium", Group: InnerTransitionMetal},
		{ID: "Cm", Name: "Curium", Group: InnerTransitionMetal},
		{ID: "Bk", Name: "Berkelium", Group: InnerTransitionMetal},
		{ID: "Cf", Name: "Californium", Group: InnerTransitionMetal},
		{ID: "Es", Name: "Einsteinium", Group: InnerTransitionMetal},
		{ID: "Fm", Name: "Fermium", Group: InnerTransitionMetal},
		{ID: "Md", Name: "Mendelevium", Group: InnerTransitionMetal},
		{ID: "No", Name: "Nobelium", Group: InnerTransitionMetal},
	},
	{
		{ID: "Lr", Name: "Lawrencium", Group: InnerTransitionMetal},
		{ID: "Rf", Name: "Rutherfordium", Group: TransitionMetal},
		{ID: "Db", Name: "Dubnium", Group: TransitionMetal},
		{ID: "Sg", Name: "Seaborgium", Group: TransitionMetal},
		{ID: "Bh", Name: "Bohrium", Group: TransitionMetal},
		{ID: "Hs", Name: "Hassium", Group: TransitionMetal},
		{ID: "Mt", Name: "Meitnerium", Group: TransitionMetal},
		{ID: "Ds", Name: "Darmstadtium", Group: InnerTransitionMetal},
	},
	{
		{ID: "Rg", Name: "Roentgenium", Group: TransitionMetal},
		{ID: "Cn", Name: "Copernicium", Group: TransitionMetal},
		{ID: "Uut", Name: "Nihonium", Group: PostTransitionMetal},
		{ID: "Fl", Name: "Flerovium", Group: PostTransitionMetal},
		{ID: "Uup", Name: "Moscovium", Group: PostTransitionMetal},
		{ID: "Lv", Name: "Livermorium", Group: PostTransitionMetal},
		{ID: "Uus", Name: "Tennessine", Group: Halogen},
		{ID: "Uuo", Name: "Oganesson", Group: NobleGas},
	},
}
