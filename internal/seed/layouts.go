package seed

type offset struct{ dx, dy int }

// Layouts are relative to the origin marked "o"; "*" is a live cell.
var layouts = [numPatterns][]offset{
	SingleCell: {{0, 0}},

	// o *
	// * *
	Block: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},

	//   o *
	// *     *
	//   * *
	Beehive: {{0, 0}, {1, 0}, {-1, 1}, {2, 1}, {0, 2}, {1, 2}},

	//   o *
	// *     *
	//   *   *
	//     *
	Loaf: {{0, 0}, {1, 0}, {-1, 1}, {2, 1}, {0, 2}, {2, 2}, {1, 3}},

	// o *
	// *   *
	//   *
	Boat: {{0, 0}, {1, 0}, {0, 1}, {2, 1}, {1, 2}},

	//   o
	// *   *
	//   *
	Tub: {{0, 0}, {-1, 1}, {1, 1}, {0, 2}},

	// o * *
	Blinker: {{0, 0}, {1, 0}, {2, 0}},

	//   o * *
	// * * *
	Toad: {{0, 0}, {1, 0}, {2, 0}, {-1, 1}, {0, 1}, {1, 1}},

	// o *
	// * *
	//     * *
	//     * *
	Beacon: {
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
		{2, 2}, {2, 3}, {3, 2}, {3, 3},
	},

	//     o * *       * * *
	//
	// *         *   *         *
	// *         *   *         *
	// *         *   *         *
	//     * * *       * * *
	//
	//     * * *       * * *
	// *         *   *         *
	// *         *   *         *
	// *         *   *         *
	//
	//     * * *       * * *
	Pulsar: {
		{0, 0}, {1, 0}, {2, 0}, {6, 0}, {7, 0}, {8, 0},
		{-2, 2}, {3, 2}, {5, 2}, {10, 2},
		{-2, 3}, {3, 3}, {5, 3}, {10, 3},
		{-2, 4}, {3, 4}, {5, 4}, {10, 4},
		{0, 5}, {1, 5}, {2, 5}, {6, 5}, {7, 5}, {8, 5},
		{0, 7}, {1, 7}, {2, 7}, {6, 7}, {7, 7}, {8, 7},
		{-2, 8}, {3, 8}, {5, 8}, {10, 8},
		{-2, 9}, {3, 9}, {5, 9}, {10, 9},
		{-2, 10}, {3, 10}, {5, 10}, {10, 10},
		{0, 12}, {1, 12}, {2, 12}, {6, 12}, {7, 12}, {8, 12},
	},

	// Simplest of its 15 phases.
	//   o
	//   *
	// *   *
	//   *
	//   *
	//   *
	//   *
	// *   *
	//   *
	//   *
	PentaDecathlon: {
		{0, 0}, {0, 1}, {-1, 2}, {1, 2}, {0, 3},
		{0, 4}, {0, 5}, {0, 6}, {-1, 7}, {1, 7},
		{0, 8}, {0, 9},
	},

	//   o
	// *
	// * * *
	Glider: {{0, 0}, {-1, 1}, {-1, 2}, {0, 2}, {1, 2}},

	//   o     *
	// *
	// *       *
	// * * * *
	LWSS: {
		{0, 0}, {3, 0},
		{-1, 1},
		{-1, 2}, {3, 2},
		{-1, 3}, {0, 3}, {1, 3}, {2, 3},
	},

	//     o
	// *       *
	//           *
	// *         *
	//   * * * * *
	MWSS: {
		{0, 0},
		{-2, 1}, {2, 1},
		{3, 2},
		{-2, 3}, {3, 3},
		{-1, 4}, {0, 4}, {1, 4}, {2, 4}, {3, 4},
	},

	//     o *
	// *         *
	//             *
	// *           *
	//   * * * * * *
	HWSS: {
		{0, 0}, {1, 0},
		{-2, 1}, {3, 1},
		{4, 2},
		{-2, 3}, {4, 3},
		{-1, 4}, {0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4},
	},
}
