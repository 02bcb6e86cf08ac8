package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifeterm/internal/life"
	"github.com/san-kum/lifeterm/internal/seed"
)

func c(x, y uint) life.Cell { return life.Cell{X: x, Y: y} }

func add(g *life.Grid, cells ...life.Cell) {
	for _, cell := range cells {
		g.Add(cell)
	}
}

func translate(cells []life.Cell, dx, dy int) []life.Cell {
	out := make([]life.Cell, len(cells))
	for i, cell := range cells {
		out[i] = cell.Offset(dx, dy)
	}
	return out
}

var _ = Describe("Grid", func() {
	Describe("rules", func() {
		It("kills a lone cell", func() {
			g := life.New(3, 3)
			add(g, c(1, 1))
			Expect(g.Alive(c(1, 1))).To(BeTrue())

			g.Tick()
			Expect(g.Alive(c(1, 1))).To(BeFalse())
			Expect(g.Population()).To(BeZero())
		})

		It("keeps a cell with two neighbours", func() {
			g := life.New(3, 3)
			add(g, c(1, 1), c(0, 1), c(2, 1))

			g.Tick()
			Expect(g.Alive(c(1, 1))).To(BeTrue())
		})

		It("keeps a cell with three neighbours", func() {
			g := life.New(15, 15)
			add(g, c(11, 11), c(10, 10), c(10, 11), c(12, 11))

			g.Tick()
			Expect(g.Alive(c(11, 11))).To(BeTrue())
		})

		It("kills a crowded cell", func() {
			g := life.New(3, 3)
			add(g, c(1, 1), c(0, 0), c(0, 1), c(1, 0), c(2, 2))

			g.Tick()
			Expect(g.Alive(c(1, 1))).To(BeFalse())
		})

		It("gives birth to a dead cell with three neighbours", func() {
			g := life.New(3, 3)
			add(g, c(0, 0), c(1, 0), c(2, 1))

			g.Tick()
			Expect(g.Alive(c(1, 1))).To(BeTrue())
		})

		It("never births outside the bounds", func() {
			g := life.New(5, 5)
			g.Seed(seed.Blinker, c(1, 0))

			g.Tick()
			Expect(g.Cells()).To(ConsistOf(c(2, 0), c(2, 1)))
		})

		It("counts generations", func() {
			g := life.New(4, 4)
			g.Tick()
			g.Tick()
			Expect(g.Generation()).To(BeEquivalentTo(2))
		})
	})

	Describe("patterns", func() {
		DescribeTable("a block never changes",
			func(origin life.Cell) {
				g := life.New(6, 6)
				g.Seed(seed.Block, origin)
				before := g.Cells()

				g.Tick()
				Expect(g.Cells()).To(ConsistOf(before))
			},
			Entry("at the corner", c(0, 0)),
			Entry("in the middle", c(2, 2)),
			Entry("against the far edge", c(4, 4)),
		)

		It("returns a blinker to its start after two ticks", func() {
			g := life.New(5, 5)
			g.Seed(seed.Blinker, c(1, 2))
			start := g.Cells()

			g.Tick()
			Expect(g.Cells()).To(ConsistOf(c(2, 1), c(2, 2), c(2, 3)))

			g.Tick()
			Expect(g.Cells()).To(ConsistOf(start))
		})

		It("moves the catalog glider one cell diagonally every four ticks", func() {
			g := life.New(20, 20)
			g.Seed(seed.Glider, c(5, 2))
			start := g.Cells()

			for range 4 {
				g.Tick()
			}
			Expect(g.Cells()).To(ConsistOf(translate(start, -1, 1)))
		})
	})

	Describe("Seed", func() {
		It("makes exactly the pattern cells live", func() {
			g := life.New(10, 10)
			origin := c(4, 3)
			g.Seed(seed.Toad, origin)

			want := seed.Toad.Cells(origin)
			Expect(g.Cells()).To(ConsistOf(want))
			for y := uint(0); y < 10; y++ {
				for x := uint(0); x < 10; x++ {
					Expect(g.Alive(c(x, y))).To(Equal(containsCell(want, c(x, y))))
				}
			}
		})

		It("is idempotent", func() {
			g := life.New(10, 10)
			g.Seed(seed.Beacon, c(3, 3))
			once := g.Cells()

			g.Seed(seed.Beacon, c(3, 3))
			Expect(g.Cells()).To(Equal(once))
			Expect(g.Population()).To(Equal(8))
		})

		It("keeps insertion order", func() {
			g := life.New(10, 10)
			g.Seed(seed.Glider, c(4, 4))
			Expect(g.Cells()).To(Equal(seed.Glider.Cells(c(4, 4))))
		})

		It("drops the preview", func() {
			g := life.New(10, 10)
			g.SetPreview(seed.Block, c(1, 1))
			g.Seed(seed.SingleCell, c(7, 7))
			Expect(g.Preview()).To(BeEmpty())
		})

		It("ignores cells outside the grid", func() {
			g := life.New(3, 3)
			g.Seed(seed.Blinker, c(1, 1))
			Expect(g.Cells()).To(ConsistOf(c(1, 1), c(2, 1)))
		})

		It("never stores cells on a zero-area grid", func() {
			g := life.New(0, 0)
			g.Seed(seed.Pulsar, c(0, 0))
			g.SetPreview(seed.Pulsar, c(0, 0))
			g.Tick()
			Expect(g.Population()).To(BeZero())
			Expect(g.Preview()).To(BeEmpty())
			Expect(g.String()).To(BeEmpty())
		})
	})

	Describe("SetPreview", func() {
		It("replaces the overlay without touching live cells", func() {
			g := life.New(10, 10)
			g.Seed(seed.SingleCell, c(0, 0))

			g.SetPreview(seed.Block, c(5, 5))
			g.SetPreview(seed.Blinker, c(1, 1))
			Expect(g.Preview()).To(ConsistOf(c(1, 1), c(2, 1), c(3, 1)))
			Expect(g.Cells()).To(ConsistOf(c(0, 0)))
		})

		It("never affects the next generation", func() {
			plain := life.New(12, 12)
			plain.Seed(seed.Glider, c(4, 2))

			overlaid := life.New(12, 12)
			overlaid.Seed(seed.Glider, c(4, 2))
			overlaid.SetPreview(seed.Pulsar, c(2, 0))

			plain.Tick()
			overlaid.Tick()
			Expect(overlaid.Cells()).To(ConsistOf(plain.Cells()))
		})
	})

	Describe("Clear", func() {
		It("empties live cells and preview", func() {
			g := life.New(4, 3)
			g.Seed(seed.Block, c(0, 0))
			g.SetPreview(seed.Blinker, c(0, 2))
			g.Tick()

			g.Clear()
			Expect(g.Population()).To(BeZero())
			Expect(g.Preview()).To(BeEmpty())
			Expect(g.Generation()).To(BeZero())
			Expect(g.Width()).To(BeEquivalentTo(4))
			Expect(g.Render(life.ASCIIGlyphs)).To(Equal("....\n....\n....\n"))
		})
	})

	Describe("Resize", func() {
		It("keeps cells that fit and drops the rest", func() {
			g := life.New(5, 5)
			add(g, c(2, 2), c(4, 4), c(1, 4), c(4, 0))

			g.Resize(3, 3)
			Expect(g.Cells()).To(ConsistOf(c(2, 2)))
			Expect(g.Width()).To(BeEquivalentTo(3))
			Expect(g.Height()).To(BeEquivalentTo(3))
		})

		It("discards the preview", func() {
			g := life.New(5, 5)
			g.SetPreview(seed.Block, c(0, 0))
			g.Resize(6, 6)
			Expect(g.Preview()).To(BeEmpty())
		})

		It("does nothing for the same dimensions", func() {
			g := life.New(5, 5)
			g.Seed(seed.Glider, c(2, 1))
			g.SetPreview(seed.Block, c(0, 0))
			before := g.Cells()

			g.Resize(5, 5)
			Expect(g.Cells()).To(Equal(before))
			Expect(g.Preview()).To(HaveLen(4))
		})

		It("keeps cells when growing", func() {
			g := life.New(3, 3)
			g.Seed(seed.Block, c(1, 1))
			g.Resize(10, 10)
			Expect(g.Cells()).To(ConsistOf(c(1, 1), c(2, 1), c(1, 2), c(2, 2)))
		})
	})

	Describe("Render", func() {
		It("draws the four cell states row by row", func() {
			g := life.New(3, 2)
			add(g, c(0, 0), c(1, 0))
			g.SetPreview(seed.SingleCell, c(1, 0))
			g.SetPreview(seed.Blinker, c(1, 0))

			Expect(g.State(c(0, 0))).To(Equal(life.Live))
			Expect(g.State(c(1, 0))).To(Equal(life.LivePreviewed))
			Expect(g.State(c(2, 0))).To(Equal(life.Previewed))
			Expect(g.State(c(0, 1))).To(Equal(life.Empty))
			Expect(g.Render(life.ASCIIGlyphs)).To(Equal("#@+\n...\n"))
		})

		It("uses emoji glyphs by default", func() {
			g := life.New(2, 1)
			add(g, c(0, 0))
			Expect(g.String()).To(Equal("⬛⬜\n"))
		})
	})
})

func containsCell(cells []life.Cell, want life.Cell) bool {
	for _, cell := range cells {
		if cell == want {
			return true
		}
	}
	return false
}
