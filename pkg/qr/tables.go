package qr

// characterCapacity[mode][level][version-1] is the number of input characters a
// symbol holds.
var characterCapacity = [3][4][MaxVersion]int{
	Numeric: {
		LevelL: {41, 77, 127, 187, 255, 322, 370, 461, 552, 652, 772, 883, 1022, 1101, 1250, 1408, 1548, 1725, 1903, 2061, 2232, 2409, 2620, 2812, 3057, 3283, 3517, 3669, 3909, 4158, 4417, 4686, 4965, 5253, 5529, 5836, 6153, 6479, 6743, 7089},
		LevelM: {34, 63, 101, 149, 202, 255, 293, 365, 432, 513, 604, 691, 796, 871, 991, 1082, 1212, 1346, 1500, 1600, 1708, 1872, 2059, 2188, 2395, 2544, 2701, 2857, 3035, 3289, 3486, 3693, 3909, 4134, 4343, 4588, 4775, 5039, 5313, 5596},
		LevelQ: {27, 48, 77, 111, 144, 178, 207, 259, 312, 364, 427, 489, 580, 621, 703, 775, 876, 948, 1063, 1159, 1224, 1358, 1468, 1588, 1718, 1804, 1933, 2085, 2181, 2358, 2473, 2670, 2805, 2949, 3081, 3244, 3417, 3599, 3791, 3993},
		LevelH: {17, 34, 58, 82, 106, 139, 154, 202, 235, 288, 331, 374, 427, 468, 530, 602, 674, 746, 813, 919, 969, 1056, 1108, 1228, 1286, 1425, 1501, 1581, 1677, 1782, 1897, 2022, 2157, 2301, 2361, 2524, 2625, 2735, 2927, 3057},
	},
	Alphanumeric: {
		LevelL: {25, 47, 77, 114, 154, 195, 224, 279, 335, 395, 468, 535, 619, 667, 758, 854, 938, 1046, 1153, 1249, 1352, 1460, 1588, 1704, 1853, 1990, 2132, 2223, 2369, 2520, 2677, 2840, 3009, 3183, 3351, 3537, 3729, 3927, 4087, 4296},
		LevelM: {20, 38, 61, 90, 122, 154, 178, 221, 262, 311, 366, 419, 483, 528, 600, 656, 734, 816, 909, 970, 1035, 1134, 1248, 1326, 1451, 1542, 1637, 1732, 1839, 1994, 2113, 2238, 2369, 2506, 2632, 2780, 2894, 3054, 3220, 3391},
		LevelQ: {16, 29, 47, 67, 87, 108, 125, 157, 189, 221, 259, 296, 352, 376, 426, 470, 531, 574, 644, 702, 742, 823, 890, 963, 1041, 1094, 1172, 1263, 1322, 1429, 1499, 1618, 1700, 1787, 1867, 1966, 2071, 2181, 2298, 2420},
		LevelH: {10, 20, 35, 50, 64, 84, 93, 122, 143, 174, 200, 227, 259, 283, 321, 365, 408, 452, 493, 557, 587, 640, 672, 744, 779, 864, 910, 958, 1016, 1080, 1150, 1226, 1307, 1394, 1431, 1530, 1591, 1658, 1774, 1852},
	},
	Byte: {
		LevelL: {17, 32, 53, 78, 106, 134, 154, 192, 230, 271, 321, 367, 425, 458, 520, 586, 644, 718, 792, 858, 929, 1003, 1091, 1171, 1273, 1367, 1465, 1528, 1628, 1732, 1840, 1952, 2068, 2188, 2303, 2431, 2563, 2699, 2809, 2953},
		LevelM: {14, 26, 42, 62, 84, 106, 122, 152, 180, 213, 251, 287, 331, 362, 412, 450, 504, 560, 624, 666, 711, 779, 857, 911, 997, 1059, 1125, 1190, 1264, 1370, 1452, 1538, 1628, 1722, 1809, 1911, 1989, 2099, 2213, 2331},
		LevelQ: {11, 20, 32, 46, 60, 74, 86, 108, 130, 151, 177, 203, 241, 258, 292, 322, 364, 394, 442, 482, 509, 565, 611, 661, 715, 751, 805, 868, 908, 982, 1030, 1112, 1168, 1228, 1283, 1351, 1423, 1499, 1579, 1663},
		LevelH: {7, 14, 24, 34, 44, 58, 64, 84, 98, 119, 137, 155, 177, 194, 220, 250, 280, 310, 338, 382, 403, 439, 461, 511, 535, 593, 625, 658, 698, 742, 790, 842, 898, 958, 983, 1051, 1093, 1139, 1219, 1273},
	},
}

// ecBlocks[level][version-1] describes how the data codewords of a symbol are
// split into blocks and how many correction codewords each block gets.
var ecBlocks = [4][MaxVersion]ECInfo{
	LevelL: {
		{CodewordsPerBlock: 7, Group1Blocks: 1, Group1DataCodewords: 19, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 10, Group1Blocks: 1, Group1DataCodewords: 34, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 15, Group1Blocks: 1, Group1DataCodewords: 55, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 20, Group1Blocks: 1, Group1DataCodewords: 80, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 26, Group1Blocks: 1, Group1DataCodewords: 108, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 68, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 20, Group1Blocks: 2, Group1DataCodewords: 78, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 24, Group1Blocks: 2, Group1DataCodewords: 97, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 30, Group1Blocks: 2, Group1DataCodewords: 116, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 68, Group2Blocks: 2, Group2DataCodewords: 69},
		{CodewordsPerBlock: 20, Group1Blocks: 4, Group1DataCodewords: 81, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 24, Group1Blocks: 2, Group1DataCodewords: 92, Group2Blocks: 2, Group2DataCodewords: 93},
		{CodewordsPerBlock: 26, Group1Blocks: 4, Group1DataCodewords: 107, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 30, Group1Blocks: 3, Group1DataCodewords: 115, Group2Blocks: 1, Group2DataCodewords: 116},
		{CodewordsPerBlock: 22, Group1Blocks: 5, Group1DataCodewords: 87, Group2Blocks: 1, Group2DataCodewords: 88},
		{CodewordsPerBlock: 24, Group1Blocks: 5, Group1DataCodewords: 98, Group2Blocks: 1, Group2DataCodewords: 99},
		{CodewordsPerBlock: 28, Group1Blocks: 1, Group1DataCodewords: 107, Group2Blocks: 5, Group2DataCodewords: 108},
		{CodewordsPerBlock: 30, Group1Blocks: 5, Group1DataCodewords: 120, Group2Blocks: 1, Group2DataCodewords: 121},
		{CodewordsPerBlock: 28, Group1Blocks: 3, Group1DataCodewords: 113, Group2Blocks: 4, Group2DataCodewords: 114},
		{CodewordsPerBlock: 28, Group1Blocks: 3, Group1DataCodewords: 107, Group2Blocks: 5, Group2DataCodewords: 108},
		{CodewordsPerBlock: 28, Group1Blocks: 4, Group1DataCodewords: 116, Group2Blocks: 4, Group2DataCodewords: 117},
		{CodewordsPerBlock: 28, Group1Blocks: 2, Group1DataCodewords: 111, Group2Blocks: 7, Group2DataCodewords: 112},
		{CodewordsPerBlock: 30, Group1Blocks: 4, Group1DataCodewords: 121, Group2Blocks: 5, Group2DataCodewords: 122},
		{CodewordsPerBlock: 30, Group1Blocks: 6, Group1DataCodewords: 117, Group2Blocks: 4, Group2DataCodewords: 118},
		{CodewordsPerBlock: 26, Group1Blocks: 8, Group1DataCodewords: 106, Group2Blocks: 4, Group2DataCodewords: 107},
		{CodewordsPerBlock: 28, Group1Blocks: 10, Group1DataCodewords: 114, Group2Blocks: 2, Group2DataCodewords: 115},
		{CodewordsPerBlock: 30, Group1Blocks: 8, Group1DataCodewords: 122, Group2Blocks: 4, Group2DataCodewords: 123},
		{CodewordsPerBlock: 30, Group1Blocks: 3, Group1DataCodewords: 117, Group2Blocks: 10, Group2DataCodewords: 118},
		{CodewordsPerBlock: 30, Group1Blocks: 7, Group1DataCodewords: 116, Group2Blocks: 7, Group2DataCodewords: 117},
		{CodewordsPerBlock: 30, Group1Blocks: 5, Group1DataCodewords: 115, Group2Blocks: 10, Group2DataCodewords: 116},
		{CodewordsPerBlock: 30, Group1Blocks: 13, Group1DataCodewords: 115, Group2Blocks: 3, Group2DataCodewords: 116},
		{CodewordsPerBlock: 30, Group1Blocks: 17, Group1DataCodewords: 115, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 30, Group1Blocks: 17, Group1DataCodewords: 115, Group2Blocks: 1, Group2DataCodewords: 116},
		{CodewordsPerBlock: 30, Group1Blocks: 13, Group1DataCodewords: 115, Group2Blocks: 6, Group2DataCodewords: 116},
		{CodewordsPerBlock: 30, Group1Blocks: 12, Group1DataCodewords: 121, Group2Blocks: 7, Group2DataCodewords: 122},
		{CodewordsPerBlock: 30, Group1Blocks: 6, Group1DataCodewords: 121, Group2Blocks: 14, Group2DataCodewords: 122},
		{CodewordsPerBlock: 30, Group1Blocks: 17, Group1DataCodewords: 122, Group2Blocks: 4, Group2DataCodewords: 123},
		{CodewordsPerBlock: 30, Group1Blocks: 4, Group1DataCodewords: 122, Group2Blocks: 18, Group2DataCodewords: 123},
		{CodewordsPerBlock: 30, Group1Blocks: 20, Group1DataCodewords: 117, Group2Blocks: 4, Group2DataCodewords: 118},
		{CodewordsPerBlock: 30, Group1Blocks: 19, Group1DataCodewords: 118, Group2Blocks: 6, Group2DataCodewords: 119},
	},
	LevelM: {
		{CodewordsPerBlock: 10, Group1Blocks: 1, Group1DataCodewords: 16, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 16, Group1Blocks: 1, Group1DataCodewords: 28, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 26, Group1Blocks: 1, Group1DataCodewords: 44, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 32, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 24, Group1Blocks: 2, Group1DataCodewords: 43, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 16, Group1Blocks: 4, Group1DataCodewords: 27, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 4, Group1DataCodewords: 31, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 22, Group1Blocks: 2, Group1DataCodewords: 38, Group2Blocks: 2, Group2DataCodewords: 39},
		{CodewordsPerBlock: 22, Group1Blocks: 3, Group1DataCodewords: 36, Group2Blocks: 2, Group2DataCodewords: 37},
		{CodewordsPerBlock: 26, Group1Blocks: 4, Group1DataCodewords: 43, Group2Blocks: 1, Group2DataCodewords: 44},
		{CodewordsPerBlock: 30, Group1Blocks: 1, Group1DataCodewords: 50, Group2Blocks: 4, Group2DataCodewords: 51},
		{CodewordsPerBlock: 22, Group1Blocks: 6, Group1DataCodewords: 36, Group2Blocks: 2, Group2DataCodewords: 37},
		{CodewordsPerBlock: 22, Group1Blocks: 8, Group1DataCodewords: 37, Group2Blocks: 1, Group2DataCodewords: 38},
		{CodewordsPerBlock: 24, Group1Blocks: 4, Group1DataCodewords: 40, Group2Blocks: 5, Group2DataCodewords: 41},
		{CodewordsPerBlock: 24, Group1Blocks: 5, Group1DataCodewords: 41, Group2Blocks: 5, Group2DataCodewords: 42},
		{CodewordsPerBlock: 28, Group1Blocks: 7, Group1DataCodewords: 45, Group2Blocks: 3, Group2DataCodewords: 46},
		{CodewordsPerBlock: 28, Group1Blocks: 10, Group1DataCodewords: 46, Group2Blocks: 1, Group2DataCodewords: 47},
		{CodewordsPerBlock: 26, Group1Blocks: 9, Group1DataCodewords: 43, Group2Blocks: 4, Group2DataCodewords: 44},
		{CodewordsPerBlock: 26, Group1Blocks: 3, Group1DataCodewords: 44, Group2Blocks: 11, Group2DataCodewords: 45},
		{CodewordsPerBlock: 26, Group1Blocks: 3, Group1DataCodewords: 41, Group2Blocks: 13, Group2DataCodewords: 42},
		{CodewordsPerBlock: 26, Group1Blocks: 17, Group1DataCodewords: 42, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 28, Group1Blocks: 17, Group1DataCodewords: 46, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 28, Group1Blocks: 4, Group1DataCodewords: 47, Group2Blocks: 14, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 6, Group1DataCodewords: 45, Group2Blocks: 14, Group2DataCodewords: 46},
		{CodewordsPerBlock: 28, Group1Blocks: 8, Group1DataCodewords: 47, Group2Blocks: 13, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 19, Group1DataCodewords: 46, Group2Blocks: 4, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 22, Group1DataCodewords: 45, Group2Blocks: 3, Group2DataCodewords: 46},
		{CodewordsPerBlock: 28, Group1Blocks: 3, Group1DataCodewords: 45, Group2Blocks: 23, Group2DataCodewords: 46},
		{CodewordsPerBlock: 28, Group1Blocks: 21, Group1DataCodewords: 45, Group2Blocks: 7, Group2DataCodewords: 46},
		{CodewordsPerBlock: 28, Group1Blocks: 19, Group1DataCodewords: 47, Group2Blocks: 10, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 2, Group1DataCodewords: 46, Group2Blocks: 29, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 10, Group1DataCodewords: 46, Group2Blocks: 23, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 14, Group1DataCodewords: 46, Group2Blocks: 21, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 14, Group1DataCodewords: 46, Group2Blocks: 23, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 12, Group1DataCodewords: 47, Group2Blocks: 26, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 6, Group1DataCodewords: 47, Group2Blocks: 34, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 29, Group1DataCodewords: 46, Group2Blocks: 14, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 13, Group1DataCodewords: 46, Group2Blocks: 32, Group2DataCodewords: 47},
		{CodewordsPerBlock: 28, Group1Blocks: 40, Group1DataCodewords: 47, Group2Blocks: 7, Group2DataCodewords: 48},
		{CodewordsPerBlock: 28, Group1Blocks: 18, Group1DataCodewords: 47, Group2Blocks: 31, Group2DataCodewords: 48},
	},
	LevelQ: {
		{CodewordsPerBlock: 13, Group1Blocks: 1, Group1DataCodewords: 13, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 22, Group1Blocks: 1, Group1DataCodewords: 22, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 17, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 26, Group1Blocks: 2, Group1DataCodewords: 24, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 15, Group2Blocks: 2, Group2DataCodewords: 16},
		{CodewordsPerBlock: 24, Group1Blocks: 4, Group1DataCodewords: 19, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 18, Group1Blocks: 2, Group1DataCodewords: 14, Group2Blocks: 4, Group2DataCodewords: 15},
		{CodewordsPerBlock: 22, Group1Blocks: 4, Group1DataCodewords: 18, Group2Blocks: 2, Group2DataCodewords: 19},
		{CodewordsPerBlock: 20, Group1Blocks: 4, Group1DataCodewords: 16, Group2Blocks: 4, Group2DataCodewords: 17},
		{CodewordsPerBlock: 24, Group1Blocks: 6, Group1DataCodewords: 19, Group2Blocks: 2, Group2DataCodewords: 20},
		{CodewordsPerBlock: 28, Group1Blocks: 4, Group1DataCodewords: 22, Group2Blocks: 4, Group2DataCodewords: 23},
		{CodewordsPerBlock: 26, Group1Blocks: 4, Group1DataCodewords: 20, Group2Blocks: 6, Group2DataCodewords: 21},
		{CodewordsPerBlock: 24, Group1Blocks: 8, Group1DataCodewords: 20, Group2Blocks: 4, Group2DataCodewords: 21},
		{CodewordsPerBlock: 20, Group1Blocks: 11, Group1DataCodewords: 16, Group2Blocks: 5, Group2DataCodewords: 17},
		{CodewordsPerBlock: 30, Group1Blocks: 5, Group1DataCodewords: 24, Group2Blocks: 7, Group2DataCodewords: 25},
		{CodewordsPerBlock: 24, Group1Blocks: 15, Group1DataCodewords: 19, Group2Blocks: 2, Group2DataCodewords: 20},
		{CodewordsPerBlock: 28, Group1Blocks: 1, Group1DataCodewords: 22, Group2Blocks: 15, Group2DataCodewords: 23},
		{CodewordsPerBlock: 28, Group1Blocks: 17, Group1DataCodewords: 22, Group2Blocks: 1, Group2DataCodewords: 23},
		{CodewordsPerBlock: 26, Group1Blocks: 17, Group1DataCodewords: 21, Group2Blocks: 4, Group2DataCodewords: 22},
		{CodewordsPerBlock: 30, Group1Blocks: 15, Group1DataCodewords: 24, Group2Blocks: 5, Group2DataCodewords: 25},
		{CodewordsPerBlock: 28, Group1Blocks: 17, Group1DataCodewords: 22, Group2Blocks: 6, Group2DataCodewords: 23},
		{CodewordsPerBlock: 30, Group1Blocks: 7, Group1DataCodewords: 24, Group2Blocks: 16, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 11, Group1DataCodewords: 24, Group2Blocks: 14, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 11, Group1DataCodewords: 24, Group2Blocks: 16, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 7, Group1DataCodewords: 24, Group2Blocks: 22, Group2DataCodewords: 25},
		{CodewordsPerBlock: 28, Group1Blocks: 28, Group1DataCodewords: 22, Group2Blocks: 6, Group2DataCodewords: 23},
		{CodewordsPerBlock: 30, Group1Blocks: 8, Group1DataCodewords: 23, Group2Blocks: 26, Group2DataCodewords: 24},
		{CodewordsPerBlock: 30, Group1Blocks: 4, Group1DataCodewords: 24, Group2Blocks: 31, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 1, Group1DataCodewords: 23, Group2Blocks: 37, Group2DataCodewords: 24},
		{CodewordsPerBlock: 30, Group1Blocks: 15, Group1DataCodewords: 24, Group2Blocks: 25, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 42, Group1DataCodewords: 24, Group2Blocks: 1, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 10, Group1DataCodewords: 24, Group2Blocks: 35, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 29, Group1DataCodewords: 24, Group2Blocks: 19, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 44, Group1DataCodewords: 24, Group2Blocks: 7, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 39, Group1DataCodewords: 24, Group2Blocks: 14, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 46, Group1DataCodewords: 24, Group2Blocks: 10, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 49, Group1DataCodewords: 24, Group2Blocks: 10, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 48, Group1DataCodewords: 24, Group2Blocks: 14, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 43, Group1DataCodewords: 24, Group2Blocks: 22, Group2DataCodewords: 25},
		{CodewordsPerBlock: 30, Group1Blocks: 34, Group1DataCodewords: 24, Group2Blocks: 34, Group2DataCodewords: 25},
	},
	LevelH: {
		{CodewordsPerBlock: 17, Group1Blocks: 1, Group1DataCodewords: 9, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 28, Group1Blocks: 1, Group1DataCodewords: 16, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 22, Group1Blocks: 2, Group1DataCodewords: 13, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 16, Group1Blocks: 4, Group1DataCodewords: 9, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 22, Group1Blocks: 2, Group1DataCodewords: 11, Group2Blocks: 2, Group2DataCodewords: 12},
		{CodewordsPerBlock: 28, Group1Blocks: 4, Group1DataCodewords: 15, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 26, Group1Blocks: 4, Group1DataCodewords: 13, Group2Blocks: 1, Group2DataCodewords: 14},
		{CodewordsPerBlock: 26, Group1Blocks: 4, Group1DataCodewords: 14, Group2Blocks: 2, Group2DataCodewords: 15},
		{CodewordsPerBlock: 24, Group1Blocks: 4, Group1DataCodewords: 12, Group2Blocks: 4, Group2DataCodewords: 13},
		{CodewordsPerBlock: 28, Group1Blocks: 6, Group1DataCodewords: 15, Group2Blocks: 2, Group2DataCodewords: 16},
		{CodewordsPerBlock: 24, Group1Blocks: 3, Group1DataCodewords: 12, Group2Blocks: 8, Group2DataCodewords: 13},
		{CodewordsPerBlock: 28, Group1Blocks: 7, Group1DataCodewords: 14, Group2Blocks: 4, Group2DataCodewords: 15},
		{CodewordsPerBlock: 22, Group1Blocks: 12, Group1DataCodewords: 11, Group2Blocks: 4, Group2DataCodewords: 12},
		{CodewordsPerBlock: 24, Group1Blocks: 11, Group1DataCodewords: 12, Group2Blocks: 5, Group2DataCodewords: 13},
		{CodewordsPerBlock: 24, Group1Blocks: 11, Group1DataCodewords: 12, Group2Blocks: 7, Group2DataCodewords: 13},
		{CodewordsPerBlock: 30, Group1Blocks: 3, Group1DataCodewords: 15, Group2Blocks: 13, Group2DataCodewords: 16},
		{CodewordsPerBlock: 28, Group1Blocks: 2, Group1DataCodewords: 14, Group2Blocks: 17, Group2DataCodewords: 15},
		{CodewordsPerBlock: 28, Group1Blocks: 2, Group1DataCodewords: 14, Group2Blocks: 19, Group2DataCodewords: 15},
		{CodewordsPerBlock: 26, Group1Blocks: 9, Group1DataCodewords: 13, Group2Blocks: 16, Group2DataCodewords: 14},
		{CodewordsPerBlock: 28, Group1Blocks: 15, Group1DataCodewords: 15, Group2Blocks: 10, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 19, Group1DataCodewords: 16, Group2Blocks: 6, Group2DataCodewords: 17},
		{CodewordsPerBlock: 24, Group1Blocks: 34, Group1DataCodewords: 13, Group2Blocks: 0, Group2DataCodewords: 0},
		{CodewordsPerBlock: 30, Group1Blocks: 16, Group1DataCodewords: 15, Group2Blocks: 14, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 30, Group1DataCodewords: 16, Group2Blocks: 2, Group2DataCodewords: 17},
		{CodewordsPerBlock: 30, Group1Blocks: 22, Group1DataCodewords: 15, Group2Blocks: 13, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 33, Group1DataCodewords: 16, Group2Blocks: 4, Group2DataCodewords: 17},
		{CodewordsPerBlock: 30, Group1Blocks: 12, Group1DataCodewords: 15, Group2Blocks: 28, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 11, Group1DataCodewords: 15, Group2Blocks: 31, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 19, Group1DataCodewords: 15, Group2Blocks: 26, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 23, Group1DataCodewords: 15, Group2Blocks: 25, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 23, Group1DataCodewords: 15, Group2Blocks: 28, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 19, Group1DataCodewords: 15, Group2Blocks: 35, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 11, Group1DataCodewords: 15, Group2Blocks: 46, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 59, Group1DataCodewords: 16, Group2Blocks: 1, Group2DataCodewords: 17},
		{CodewordsPerBlock: 30, Group1Blocks: 22, Group1DataCodewords: 15, Group2Blocks: 41, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 2, Group1DataCodewords: 15, Group2Blocks: 64, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 24, Group1DataCodewords: 15, Group2Blocks: 46, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 42, Group1DataCodewords: 15, Group2Blocks: 32, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 10, Group1DataCodewords: 15, Group2Blocks: 67, Group2DataCodewords: 16},
		{CodewordsPerBlock: 30, Group1Blocks: 20, Group1DataCodewords: 15, Group2Blocks: 61, Group2DataCodewords: 16},
	},
}
