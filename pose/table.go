package pose

// The pose table. Pulse widths were recorded from the live mechanism;
// leg order is the same as the controller channel order. Routes name
// the intermediate waypoints a pose can travel through safely; poses
// without routes fall back to the resting pose as their waypoint.
var table = map[string]Pose{
	"park": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1560, 2230}, {1030, 1980, 1500, 1500}, {1580, 1780, 880, 736},
			{1450, 1100, 1330, 780}, {1770, 890, 1500, 1500}, {1340, 1970, 1870, 1990}},
		Routes: []string{"extend_half", "jugendstil_half"},
	},
	"extend": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1020, 1570}, {1710, 1500, 1500, 1500}, {1580, 1780, 1420, 1410},
			{1460, 980, 1890, 1360}, {1130, 1410, 1500, 1500}, {1360, 1890, 1210, 1210}},
		Routes: []string{"extend_half"},
	},
	"extend_half": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1760, 1330, 1790}, {1210, 1760, 1500, 1500}, {1580, 1810, 1020, 1210},
			{1450, 1080, 1560, 1200}, {1610, 1100, 1500, 1500}, {1340, 1970, 1700, 1610}},
	},
	"jugendstil": {
		Legs: [Legs][ServosPerLeg]int{
			{1510, 1990, 1270, 1590}, {1250, 1480, 1500, 1500}, {1640, 1900, 1020, 1590},
			{1250, 900, 1530, 1270}, {1560, 1460, 1500, 1500}, {1350, 1920, 1630, 1090}},
		Routes: []string{"jugendstil_half"},
	},
	"jugendstil_half": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1560, 2230}, {1250, 1480, 1500, 1500}, {1640, 1900, 1020, 1590},
			{1450, 1100, 1330, 780}, {1560, 1460, 1500, 1500}, {1350, 1920, 1630, 1090}},
	},
	"challenge": {
		Legs: [Legs][ServosPerLeg]int{
			{1500, 1860, 1410, 1910}, {1130, 1610, 1500, 1500}, {1640, 1900, 1020, 1600},
			{1340, 970, 1450, 1020}, {1610, 1300, 1500, 1500}, {1350, 1910, 1650, 1100}},
		Routes: []string{"jugendstil_half"},
	},
	"point": {
		Legs: [Legs][ServosPerLeg]int{
			{1240, 1590, 1020, 770}, {1190, 1180, 1500, 1500}, {1640, 1900, 910, 1700},
			{1530, 1190, 1810, 2040}, {1580, 1730, 1500, 1500}, {1350, 1860, 1710, 1020}},
	},
	"knife": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1560, 2230}, {1650, 1400, 1500, 1500}, {1580, 1780, 880, 736},
			{1450, 1100, 1330, 780}, {1150, 1500, 1500, 1500}, {1340, 1970, 1870, 1990}},
	},
	"push_away": {
		Legs: [Legs][ServosPerLeg]int{
			{1210, 1970, 1240, 1580}, {1030, 1980, 1500, 1500}, {1580, 1780, 880, 736},
			{1640, 910, 1670, 1360}, {1820, 880, 1500, 1500}, {1340, 1970, 1870, 1990}},
	},
	"wiggle_up": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1400, 1520}, {1270, 1430, 1500, 1500}, {1580, 1780, 1070, 1640},
			{1450, 1050, 1500, 1470}, {1500, 1510, 1500, 1500}, {1340, 1970, 1590, 1100}},
	},
	"wiggle_down": {
		Legs: [Legs][ServosPerLeg]int{
			{1370, 1750, 1400, 1610}, {1270, 1340, 1500, 1500}, {1580, 1780, 1070, 1560},
			{1450, 1050, 1500, 1390}, {1500, 1600, 1500, 1500}, {1340, 1970, 1590, 1190}},
	},
}
