package course

// HolesPerRound is the number of holes every built-in course has.
const HolesPerRound = 18

// Builtin returns the catalog of reference courses shipped with the binary.
func Builtin() *Catalog {
	return NewCatalog(saltCreek(), homeCourse(), brickyard())
}

func saltCreek() Course {
	return Course{
		ID:    "salt-creek-retreat-in",
		Name:  "Salt Creek Golf Retreat",
		City:  "Nashville",
		State: "IN",
		Par:   71,
		Holes: []Hole{
			{Number: 1, Par: 4, Yardage: 380},
			{Number: 2, Par: 4, Yardage: 355},
			{Number: 3, Par: 3, Yardage: 165},
			{Number: 4, Par: 5, Yardage: 520},
			{Number: 5, Par: 4, Yardage: 410},
			{Number: 6, Par: 4, Yardage: 360},
			{Number: 7, Par: 3, Yardage: 175},
			{Number: 8, Par: 5, Yardage: 535},
			{Number: 9, Par: 4, Yardage: 395},
			{Number: 10, Par: 4, Yardage: 370},
			{Number: 11, Par: 4, Yardage: 400},
			{Number: 12, Par: 3, Yardage: 185},
			{Number: 13, Par: 5, Yardage: 540},
			{Number: 14, Par: 4, Yardage: 365},
			{Number: 15, Par: 4, Yardage: 390},
			{Number: 16, Par: 3, Yardage: 170},
			{Number: 17, Par: 4, Yardage: 405},
			{Number: 18, Par: 5, Yardage: 530},
		},
	}
}

func homeCourse() Course {
	holes := make([]Hole, HolesPerRound)
	for i := range holes {
		holes[i] = Hole{Number: i + 1, Par: 4, Yardage: 380}
	}
	return Course{
		ID:    "home-course-generic",
		Name:  "My Home Course (Custom)",
		City:  "Local",
		State: "USA",
		Par:   72,
		Holes: holes,
	}
}

func brickyard() Course {
	holes := make([]Hole, HolesPerRound)
	for i := range holes {
		par := 4
		switch i {
		case 4, 13:
			par = 5
		case 6, 11, 16:
			par = 3
		}
		holes[i] = Hole{Number: i + 1, Par: par, Yardage: 360 + (i%6)*20}
	}
	return Course{
		ID:    "brickyard-crossing-in",
		Name:  "Brickyard Crossing",
		City:  "Indianapolis",
		State: "IN",
		Par:   72,
		Holes: holes,
	}
}
