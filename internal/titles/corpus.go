package titles

// corpus is the embedded fallback list. Each entry completes
// "does anybody else ...".
var corpus = []string{
	"feel lonely in a crowded room",
	"talk to themselves in the car",
	"rehearse conversations that will never happen",
	"get anxious when the phone rings",
	"feel like they don't exist some days",
	"miss people they've never met",
	"stay up way too late for no reason",
	"feel weird hearing their own voice",
	"forget why they walked into a room",
	"get nervous ordering coffee",
	"absolutely love the smell of rain",
	"feel better after a long walk",
	"wave back at people who weren't waving at them",
	"feel guilty about resting",
	"cry at commercials",
	"feel overwhelmed by small decisions",
	"get excited about canceled plans",
	"feel grateful when strangers are kind",
	"worry about texts they already sent",
	"feel trapped in their routine",
	"struggle with mornings",
	"hate when a good song ends",
	"feel peaceful doing the dishes",
	"wonder if anyone out there is listening",
	"notice the hum of the refrigerator at night",
	"feel lucky and terrified at the same time",
	"have trouble remembering names",
	"get paranoid about leaving the stove on",
	"feel stuck between who they were and who they want to be",
	"really enjoy driving at night",
	"feel strange looking at old photos",
	"dream about places that don't exist",
	"tear up at airport reunions",
	"feel content doing absolutely nothing",
	"get restless on sunday evenings",
	"feel awkward in elevators",
	"appreciate the quiet before sunrise",
	"think about the ocean constantly",
	"feel hopeful for no particular reason",
	"want to experience everything at once",
}
