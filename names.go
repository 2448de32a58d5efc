package sav

import "fmt"

// Display-name tables for species, moves and items. These exist purely
// for human-facing lookup and are never consulted for binary layout, so
// an id outside the tables still decodes structurally and renders as a
// numeric placeholder.

// speciesNames is indexed by the vanilla game's internal species id:
// 1-251 match the national order, 252-276 are unused placeholder slots
// and the Hoenn species follow in the game's internal order.
//
//nolint:gochecknoglobals
var speciesNames = [...]string{
	1: "Bulbasaur", "Ivysaur", "Venusaur", "Charmander", "Charmeleon",
	"Charizard", "Squirtle", "Wartortle", "Blastoise", "Caterpie",
	"Metapod", "Butterfree", "Weedle", "Kakuna", "Beedrill",
	"Pidgey", "Pidgeotto", "Pidgeot", "Rattata", "Raticate",
	"Spearow", "Fearow", "Ekans", "Arbok", "Pikachu",
	"Raichu", "Sandshrew", "Sandslash", "Nidoran♀", "Nidorina",
	"Nidoqueen", "Nidoran♂", "Nidorino", "Nidoking", "Clefairy",
	"Clefable", "Vulpix", "Ninetales", "Jigglypuff", "Wigglytuff",
	"Zubat", "Golbat", "Oddish", "Gloom", "Vileplume",
	"Paras", "Parasect", "Venonat", "Venomoth", "Diglett",
	"Dugtrio", "Meowth", "Persian", "Psyduck", "Golduck",
	"Mankey", "Primeape", "Growlithe", "Arcanine", "Poliwag",
	"Poliwhirl", "Poliwrath", "Abra", "Kadabra", "Alakazam",
	"Machop", "Machoke", "Machamp", "Bellsprout", "Weepinbell",
	"Victreebel", "Tentacool", "Tentacruel", "Geodude", "Graveler",
	"Golem", "Ponyta", "Rapidash", "Slowpoke", "Slowbro",
	"Magnemite", "Magneton", "Farfetch'd", "Doduo", "Dodrio",
	"Seel", "Dewgong", "Grimer", "Muk", "Shellder",
	"Cloyster", "Gastly", "Haunter", "Gengar", "Onix",
	"Drowzee", "Hypno", "Krabby", "Kingler", "Voltorb",
	"Electrode", "Exeggcute", "Exeggutor", "Cubone", "Marowak",
	"Hitmonlee", "Hitmonchan", "Lickitung", "Koffing", "Weezing",
	"Rhyhorn", "Rhydon", "Chansey", "Tangela", "Kangaskhan",
	"Horsea", "Seadra", "Goldeen", "Seaking", "Staryu",
	"Starmie", "Mr. Mime", "Scyther", "Jynx", "Electabuzz",
	"Magmar", "Pinsir", "Tauros", "Magikarp", "Gyarados",
	"Lapras", "Ditto", "Eevee", "Vaporeon", "Jolteon",
	"Flareon", "Porygon", "Omanyte", "Omastar", "Kabuto",
	"Kabutops", "Aerodactyl", "Snorlax", "Articuno", "Zapdos",
	"Moltres", "Dratini", "Dragonair", "Dragonite", "Mewtwo",
	"Mew", "Chikorita", "Bayleef", "Meganium", "Cyndaquil",
	"Quilava", "Typhlosion", "Totodile", "Croconaw", "Feraligatr",
	"Sentret", "Furret", "Hoothoot", "Noctowl", "Ledyba",
	"Ledian", "Spinarak", "Ariados", "Crobat", "Chinchou",
	"Lanturn", "Pichu", "Cleffa", "Igglybuff", "Togepi",
	"Togetic", "Natu", "Xatu", "Mareep", "Flaaffy",
	"Ampharos", "Bellossom", "Marill", "Azumarill", "Sudowoodo",
	"Politoed", "Hoppip", "Skiploom", "Jumpluff", "Aipom",
	"Sunkern", "Sunflora", "Yanma", "Wooper", "Quagsire",
	"Espeon", "Umbreon", "Murkrow", "Slowking", "Misdreavus",
	"Unown", "Wobbuffet", "Girafarig", "Pineco", "Forretress",
	"Dunsparce", "Gligar", "Steelix", "Snubbull", "Granbull",
	"Qwilfish", "Scizor", "Shuckle", "Heracross", "Sneasel",
	"Teddiursa", "Ursaring", "Slugma", "Magcargo", "Swinub",
	"Piloswine", "Corsola", "Remoraid", "Octillery", "Delibird",
	"Mantine", "Skarmory", "Houndour", "Houndoom", "Kingdra",
	"Phanpy", "Donphan", "Porygon2", "Stantler", "Smeargle",
	"Tyrogue", "Hitmontop", "Smoochum", "Elekid", "Magby",
	"Miltank", "Blissey", "Raikou", "Entei", "Suicune",
	"Larvitar", "Pupitar", "Tyranitar", "Lugia", "Ho-Oh",
	"Celebi",
	277: "Treecko", "Grovyle", "Sceptile", "Torchic", "Combusken",
	"Blaziken", "Mudkip", "Marshtomp", "Swampert", "Poochyena",
	"Mightyena", "Zigzagoon", "Linoone", "Wurmple", "Silcoon",
	"Beautifly", "Cascoon", "Dustox", "Lotad", "Lombre",
	"Ludicolo", "Seedot", "Nuzleaf", "Shiftry", "Nincada",
	"Ninjask", "Shedinja", "Taillow", "Swellow", "Shroomish",
	"Breloom", "Spinda", "Wingull", "Pelipper", "Surskit",
	"Masquerain", "Wailmer", "Wailord", "Skitty", "Delcatty",
	"Kecleon", "Baltoy", "Claydol", "Nosepass", "Torkoal",
	"Sableye", "Barboach", "Whiscash", "Luvdisc", "Corphish",
	"Crawdaunt", "Feebas", "Milotic", "Carvanha", "Sharpedo",
	"Trapinch", "Vibrava", "Flygon", "Makuhita", "Hariyama",
	"Electrike", "Manectric", "Numel", "Camerupt", "Spheal",
	"Sealeo", "Walrein", "Cacnea", "Cacturne", "Snorunt",
	"Glalie", "Lunatone", "Solrock", "Azurill", "Spoink",
	"Grumpig", "Plusle", "Minun", "Mawile", "Meditite",
	"Medicham", "Swablu", "Altaria", "Wynaut", "Duskull",
	"Dusclops", "Roselia", "Slakoth", "Vigoroth", "Slaking",
	"Gulpin", "Swalot", "Tropius", "Whismur", "Loudred",
	"Exploud", "Clamperl", "Huntail", "Gorebyss", "Absol",
	"Shuppet", "Banette", "Seviper", "Zangoose", "Relicanth",
	"Aron", "Lairon", "Aggron", "Castform", "Volbeat",
	"Illumise", "Lileep", "Cradily", "Anorith", "Armaldo",
	"Ralts", "Kirlia", "Gardevoir", "Bagon", "Shelgon",
	"Salamence", "Beldum", "Metang", "Metagross", "Regirock",
	"Regice", "Registeel", "Kyogre", "Groudon", "Rayquaza",
	"Latias", "Latios", "Jirachi", "Deoxys", "Chimecho",
}

// quetzalSpecies overlays the national-dex numbering the Quetzal hack
// uses for Hoenn species and beyond, where it diverges from the vanilla
// internal ids.
//
//nolint:gochecknoglobals
var quetzalSpecies = map[uint16]string{
	252: "Treecko", 253: "Grovyle", 254: "Sceptile", 255: "Torchic",
	256: "Combusken", 257: "Blaziken", 258: "Mudkip", 259: "Marshtomp",
	260: "Swampert", 261: "Poochyena", 262: "Mightyena", 263: "Zigzagoon",
	264: "Linoone", 265: "Wurmple", 266: "Silcoon", 267: "Beautifly",
	268: "Cascoon", 269: "Dustox", 270: "Lotad", 271: "Lombre",
	272: "Ludicolo", 273: "Seedot", 274: "Nuzleaf", 275: "Shiftry",
	276: "Taillow", 277: "Swellow", 278: "Wingull", 279: "Pelipper",
	280: "Ralts", 281: "Kirlia", 282: "Gardevoir", 283: "Surskit",
	284: "Masquerain", 285: "Shroomish", 286: "Breloom", 287: "Slakoth",
	288: "Vigoroth", 289: "Slaking", 290: "Nincada", 291: "Ninjask",
	292: "Shedinja", 293: "Whismur", 294: "Loudred", 295: "Exploud",
	296: "Makuhita", 297: "Hariyama", 298: "Azurill", 299: "Nosepass",
	300: "Skitty", 301: "Delcatty", 302: "Sableye", 303: "Mawile",
	304: "Aron", 305: "Lairon", 306: "Aggron", 307: "Meditite",
	308: "Medicham", 309: "Electrike", 310: "Manectric", 311: "Plusle",
	312: "Minun", 313: "Volbeat", 314: "Illumise", 315: "Roselia",
	316: "Gulpin", 317: "Swalot", 318: "Carvanha", 319: "Sharpedo",
	320: "Wailmer", 321: "Wailord", 322: "Numel", 323: "Camerupt",
	324: "Torkoal", 325: "Spoink", 326: "Grumpig", 327: "Spinda",
	328: "Trapinch", 329: "Vibrava", 330: "Flygon", 331: "Cacnea",
	332: "Cacturne", 333: "Swablu", 334: "Altaria", 335: "Zangoose",
	336: "Seviper", 337: "Lunatone", 338: "Solrock", 339: "Barboach",
	340: "Whiscash", 341: "Corphish", 342: "Crawdaunt", 343: "Baltoy",
	344: "Claydol", 345: "Lileep", 346: "Cradily", 347: "Anorith",
	348: "Armaldo", 349: "Feebas", 350: "Milotic", 351: "Castform",
	352: "Kecleon", 353: "Shuppet", 354: "Banette", 355: "Duskull",
	356: "Dusclops", 357: "Tropius", 358: "Chimecho", 359: "Absol",
	360: "Wynaut", 361: "Snorunt", 362: "Glalie", 363: "Spheal",
	364: "Sealeo", 365: "Walrein", 366: "Clamperl", 367: "Huntail",
	368: "Gorebyss", 369: "Relicanth", 370: "Luvdisc", 371: "Bagon",
	372: "Shelgon", 373: "Salamence", 374: "Beldum", 375: "Metang",
	376: "Metagross", 377: "Regirock", 378: "Regice", 379: "Registeel",
	380: "Latias", 381: "Latios", 382: "Kyogre", 383: "Groudon",
	384: "Rayquaza", 385: "Jirachi", 386: "Deoxys",
	561: "Sigilyph",
}

//nolint:gochecknoglobals
var moveNames = [...]string{
	1: "Pound", "Karate Chop", "Double Slap", "Comet Punch", "Mega Punch",
	"Pay Day", "Fire Punch", "Ice Punch", "Thunder Punch", "Scratch",
	"Vice Grip", "Guillotine", "Razor Wind", "Swords Dance", "Cut",
	"Gust", "Wing Attack", "Whirlwind", "Fly", "Bind",
	"Slam", "Vine Whip", "Stomp", "Double Kick", "Mega Kick",
	"Jump Kick", "Rolling Kick", "Sand Attack", "Headbutt", "Horn Attack",
	"Fury Attack", "Horn Drill", "Tackle", "Body Slam", "Wrap",
	"Take Down", "Thrash", "Double-Edge", "Tail Whip", "Poison Sting",
	"Twineedle", "Pin Missile", "Leer", "Bite", "Growl",
	"Roar", "Sing", "Supersonic", "Sonic Boom", "Disable",
	"Acid", "Ember", "Flamethrower", "Mist", "Water Gun",
	"Hydro Pump", "Surf", "Ice Beam", "Blizzard", "Psybeam",
	"Bubble Beam", "Aurora Beam", "Hyper Beam", "Peck", "Drill Peck",
	"Submission", "Low Kick", "Counter", "Seismic Toss", "Strength",
	"Absorb", "Mega Drain", "Leech Seed", "Growth", "Razor Leaf",
	"Solar Beam", "Poison Powder", "Stun Spore", "Sleep Powder", "Petal Dance",
	"String Shot", "Dragon Rage", "Fire Spin", "Thunder Shock", "Thunderbolt",
	"Thunder Wave", "Thunder", "Rock Throw", "Earthquake", "Fissure",
	"Dig", "Toxic", "Confusion", "Psychic", "Hypnosis",
	"Meditate", "Agility", "Quick Attack", "Rage", "Teleport",
	"Night Shade", "Mimic", "Screech", "Double Team", "Recover",
	"Harden", "Minimize", "Smokescreen", "Confuse Ray", "Withdraw",
	"Defense Curl", "Barrier", "Light Screen", "Haze", "Reflect",
	"Focus Energy", "Bide", "Metronome", "Mirror Move", "Self-Destruct",
	"Egg Bomb", "Lick", "Smog", "Sludge", "Bone Club",
	"Fire Blast", "Waterfall", "Clamp", "Swift", "Skull Bash",
	"Spike Cannon", "Constrict", "Amnesia", "Kinesis", "Soft-Boiled",
	"High Jump Kick", "Glare", "Dream Eater", "Poison Gas", "Barrage",
	"Leech Life", "Lovely Kiss", "Sky Attack", "Transform", "Bubble",
	"Dizzy Punch", "Spore", "Flash", "Psywave", "Splash",
	"Acid Armor", "Crabhammer", "Explosion", "Fury Swipes", "Bonemerang",
	"Rest", "Rock Slide", "Hyper Fang", "Sharpen", "Conversion",
	"Tri Attack", "Super Fang", "Slash", "Substitute", "Struggle",
	"Sketch", "Triple Kick", "Thief", "Spider Web", "Mind Reader",
	"Nightmare", "Flame Wheel", "Snore", "Curse", "Flail",
	"Conversion 2", "Aeroblast", "Cotton Spore", "Reversal", "Spite",
	"Powder Snow", "Protect", "Mach Punch", "Scary Face", "Feint Attack",
	"Sweet Kiss", "Belly Drum", "Sludge Bomb", "Mud-Slap", "Octazooka",
	"Spikes", "Zap Cannon", "Foresight", "Destiny Bond", "Perish Song",
	"Icy Wind", "Detect", "Bone Rush", "Lock-On", "Outrage",
	"Sandstorm", "Giga Drain", "Endure", "Charm", "Rollout",
	"False Swipe", "Swagger", "Milk Drink", "Spark", "Fury Cutter",
	"Steel Wing", "Mean Look", "Attract", "Sleep Talk", "Heal Bell",
	"Return", "Present", "Frustration", "Safeguard", "Pain Split",
	"Sacred Fire", "Magnitude", "Dynamic Punch", "Megahorn", "Dragon Breath",
	"Baton Pass", "Encore", "Pursuit", "Rapid Spin", "Sweet Scent",
	"Iron Tail", "Metal Claw", "Vital Throw", "Morning Sun", "Synthesis",
	"Moonlight", "Hidden Power", "Cross Chop", "Twister", "Rain Dance",
	"Sunny Day", "Crunch", "Mirror Coat", "Psych Up", "Extreme Speed",
	"Ancient Power", "Shadow Ball", "Future Sight", "Rock Smash", "Whirlpool",
	"Beat Up", "Fake Out", "Uproar", "Stockpile", "Spit Up",
	"Swallow", "Heat Wave", "Hail", "Torment", "Flatter",
	"Will-O-Wisp", "Memento", "Facade", "Focus Punch", "Smelling Salts",
	"Follow Me", "Nature Power", "Charge", "Taunt", "Helping Hand",
	"Trick", "Role Play", "Wish", "Assist", "Ingrain",
	"Superpower", "Magic Coat", "Recycle", "Revenge", "Brick Break",
	"Yawn", "Knock Off", "Endeavor", "Eruption", "Skill Swap",
	"Imprison", "Refresh", "Grudge", "Snatch", "Secret Power",
	"Dive", "Arm Thrust", "Camouflage", "Tail Glow", "Luster Purge",
	"Mist Ball", "Feather Dance", "Teeter Dance", "Blaze Kick", "Mud Sport",
	"Ice Ball", "Needle Arm", "Slack Off", "Hyper Voice", "Poison Fang",
	"Crush Claw", "Blast Burn", "Hydro Cannon", "Meteor Mash", "Astonish",
	"Weather Ball", "Aromatherapy", "Fake Tears", "Air Cutter", "Overheat",
	"Odor Sleuth", "Rock Tomb", "Silver Wind", "Metal Sound", "Grass Whistle",
	"Tickle", "Cosmic Power", "Water Spout", "Signal Beam", "Shadow Punch",
	"Extrasensory", "Sky Uppercut", "Sand Tomb", "Sheer Cold", "Muddy Water",
	"Bullet Seed", "Aerial Ace", "Icicle Spear", "Iron Defense", "Block",
	"Howl", "Dragon Claw", "Frenzy Plant", "Bulk Up", "Bounce",
	"Mud Shot", "Poison Tail", "Covet", "Volt Tackle", "Magical Leaf",
	"Water Sport", "Calm Mind", "Leaf Blade", "Dragon Dance", "Rock Blast",
	"Shock Wave", "Water Pulse", "Doom Desire", "Psycho Boost",
}

// itemNames covers the balls, medicine, vitamins, evolution stones and
// hold items a party Pokémon plausibly carries. Key items and TMs fall
// through to the numeric placeholder.
//
//nolint:gochecknoglobals
var itemNames = map[uint16]string{
	1: "Master Ball", 2: "Ultra Ball", 3: "Great Ball", 4: "Poké Ball",
	5: "Safari Ball", 6: "Net Ball", 7: "Dive Ball", 8: "Nest Ball",
	9: "Repeat Ball", 10: "Timer Ball", 11: "Luxury Ball", 12: "Premier Ball",
	13: "Potion", 14: "Antidote", 15: "Burn Heal", 16: "Ice Heal",
	17: "Awakening", 18: "Parlyz Heal", 19: "Full Restore", 20: "Max Potion",
	21: "Hyper Potion", 22: "Super Potion", 23: "Full Heal", 24: "Revive",
	25: "Max Revive", 26: "Fresh Water", 27: "Soda Pop", 28: "Lemonade",
	29: "Moomoo Milk", 30: "Energy Powder", 31: "Energy Root", 32: "Heal Powder",
	33: "Revival Herb", 34: "Ether", 35: "Max Ether", 36: "Elixir",
	37: "Max Elixir", 38: "Lava Cookie", 44: "Berry Juice", 45: "Sacred Ash",
	63: "HP Up", 64: "Protein", 65: "Iron", 66: "Carbos",
	67: "Calcium", 68: "Rare Candy", 69: "PP Up", 70: "Zinc",
	71: "PP Max", 93: "Sun Stone", 94: "Moon Stone", 95: "Fire Stone",
	96: "Thunder Stone", 97: "Water Stone", 98: "Leaf Stone",
	103: "Tiny Mushroom", 104: "Big Mushroom", 106: "Pearl", 107: "Big Pearl",
	108: "Stardust", 109: "Star Piece", 110: "Nugget", 111: "Heart Scale",
	133: "Cheri Berry", 134: "Chesto Berry", 135: "Pecha Berry", 136: "Rawst Berry",
	137: "Aspear Berry", 138: "Leppa Berry", 139: "Oran Berry", 140: "Persim Berry",
	141: "Lum Berry", 142: "Sitrus Berry", 143: "Figy Berry",
	179: "Bright Powder", 180: "White Herb", 181: "Macho Brace", 182: "Exp. Share",
	183: "Quick Claw", 184: "Soothe Bell", 185: "Mental Herb", 186: "Choice Band",
	187: "King's Rock", 188: "Silver Powder", 189: "Amulet Coin", 190: "Cleanse Tag",
	191: "Soul Dew", 192: "Deep Sea Tooth", 193: "Deep Sea Scale", 194: "Smoke Ball",
	195: "Everstone", 196: "Focus Band", 197: "Lucky Egg", 198: "Scope Lens",
	199: "Metal Coat", 200: "Leftovers", 201: "Dragon Scale", 202: "Light Ball",
	203: "Soft Sand", 204: "Hard Stone", 205: "Miracle Seed", 206: "Black Glasses",
	207: "Black Belt", 208: "Magnet", 209: "Mystic Water", 210: "Sharp Beak",
	211: "Poison Barb", 212: "Never-Melt Ice", 213: "Spell Tag", 214: "Twisted Spoon",
	215: "Charcoal", 216: "Dragon Fang", 217: "Silk Scarf", 218: "Up-Grade",
	219: "Shell Bell", 220: "Sea Incense", 221: "Lax Incense", 222: "Lucky Punch",
	223: "Metal Powder", 224: "Thick Club", 225: "Stick",
}

func speciesName(id uint16) string {
	if int(id) < len(speciesNames) && speciesNames[id] != "" {
		return speciesNames[id]
	}

	return fmt.Sprintf("Species %d", id)
}

func moveName(id uint16) string {
	if int(id) < len(moveNames) && moveNames[id] != "" {
		return moveNames[id]
	}

	return fmt.Sprintf("Move %d", id)
}

func itemName(id uint16) string {
	if id == 0 {
		return ""
	}

	if name, ok := itemNames[id]; ok {
		return name
	}

	return fmt.Sprintf("Item %d", id)
}
