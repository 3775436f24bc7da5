package tilemap

// 19x20 grid. 0 wall, 1 dot, 2 power pellet, 3 empty, 4 ghost house.
// Rows 8, 10 and 12 open onto the side tunnels.
var defaultMaze = []string{
	"0000000000000000000",
	"0111111110111111110",
	"0200100010100010020",
	"0100100010100010010",
	"0111111111111111110",
	"0100101000001010010",
	"0111101110111011110",
	"0000100030300010000",
	"3330103333333010333",
	"0000103004003010000",
	"3333133044403313333",
	"0000103000003010000",
	"3330103333333010333",
	"0000101000001010000",
	"0111111110111111110",
	"0100100010100010010",
	"0210111111111110120",
	"0010101000001010100",
	"0111101110111011110",
	"0000000000000000000",
}
