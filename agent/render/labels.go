package render

// featureOrder fixes badge ordering so identical input always renders
// byte-identical HTML regardless of map iteration order.
var featureOrder = []string{
	"reservable",
	"wheelchair_accessible",
	"wheelchair_accessible_entrance",
	"serves_breakfast",
	"serves_brunch",
	"serves_lunch",
	"serves_dinner",
	"serves_vegetarian_food",
	"serves_wine",
	"serves_beer",
	"takeout",
	"curbside_pickup",
}

// featureLabels maps capability names to their display labels.
var featureLabels = map[string]string{
	"reservable":                     "Reservations",
	"wheelchair_accessible":          "Wheelchair Accessible",
	"wheelchair_accessible_entrance": "Wheelchair Accessible",
	"serves_breakfast":               "Breakfast",
	"serves_brunch":                  "Brunch",
	"serves_lunch":                   "Lunch",
	"serves_dinner":                  "Dinner",
	"serves_vegetarian_food":         "Vegetarian Options",
	"serves_wine":                    "Wine",
	"serves_beer":                    "Beer",
	"takeout":                        "Takeout",
	"curbside_pickup":                "Curbside Pickup",
}
