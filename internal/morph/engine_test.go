package morph_test

import (
	"github.com/san-kum/pointmorph/internal/cloud"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/morph"
	"github.com/san-kum/pointmorph/internal/palette"
	"github.com/san-kum/pointmorph/internal/timeline"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newEngine(count int) *morph.Engine {
	opts := morph.DefaultOptions()
	opts.Count = count
	eng, err := morph.New(opts)
	Expect(err).NotTo(HaveOccurred())
	return eng
}

var _ = Describe("Engine", func() {
	var eng *morph.Engine

	BeforeEach(func() {
		eng = newEngine(100)
	})

	It("starts with every point at the viewport center", func() {
		pixels := eng.Points(800, 600)
		Expect(pixels).To(HaveLen(100))
		for _, p := range pixels {
			Expect(p.X).To(Equal(400.0))
			Expect(p.Y).To(Equal(300.0))
		}
	})

	It("colors points by index over the count", func() {
		pixels := eng.Points(10, 10)
		for i, p := range pixels {
			Expect(p.Index).To(Equal(i))
			Expect(p.Color).To(Equal(palette.Viridis.ColorFor(i, 100)))
		}
	})

	It("advances the rotation once per full cycle", func() {
		for i := 0; i < timeline.DefaultSteps; i++ {
			eng.Tick()
		}
		st := eng.Status()
		Expect(st.Step).To(Equal(0))
		Expect(st.Index).To(Equal(1))
		Expect(st.Current).To(Equal(layout.Spiral))
		Expect(st.Next).To(Equal(layout.Phyllotaxis))
	})

	It("holds on the next layout after the transition completes", func() {
		for i := 0; i < 96; i++ {
			eng.Tick()
		}
		Expect(eng.Status().Fraction).To(Equal(1.0))

		want, err := layout.Sample(layout.Spiral, 100)
		Expect(err).NotTo(HaveOccurred())

		for i := 96; i < timeline.DefaultSteps-1; i++ {
			for j, v := range eng.Positions() {
				Expect(v.X).To(BeNumerically("~", want[j].X, 1e-12))
				Expect(v.Y).To(BeNumerically("~", want[j].Y, 1e-12))
			}
			eng.Tick()
		}
	})

	It("projects the grid layout into pixels", func() {
		opts := morph.DefaultOptions()
		opts.Count = 100
		opts.Rotation = timeline.Rotation{layout.Grid, layout.Wave}
		g, err := morph.New(opts)
		Expect(err).NotTo(HaveOccurred())

		g.Tick()
		for g.Status().Step != 0 {
			g.Tick()
		}
		// second entry runs wave → grid
		Expect(g.Status().Current).To(Equal(layout.Wave))
		Expect(g.Status().Next).To(Equal(layout.Grid))

		for g.Status().Step != 0 || g.Status().Current != layout.Grid {
			g.Tick()
		}
		px := g.Points(800, 600)
		Expect(px[0].X).To(BeNumerically("~", 400-0.8*300, 1e-9))
		Expect(px[0].Y).To(BeNumerically("~", 300-0.8*300, 1e-9))
	})

	Describe("SetCount", func() {
		It("is a no-op for the current count", func() {
			for i := 0; i < 30; i++ {
				eng.Tick()
			}
			before := eng.Points(800, 600)
			Expect(eng.SetCount(100)).To(Succeed())
			Expect(eng.Points(800, 600)).To(Equal(before))
		})

		It("rebuilds the set on a new count", func() {
			Expect(eng.SetCount(75)).To(Succeed())
			Expect(eng.Count()).To(Equal(75))

			pixels := eng.Points(800, 600)
			Expect(pixels).To(HaveLen(75))
			Expect(pixels[74].Color).To(Equal(palette.Viridis.ColorFor(74, 75)))
		})

		It("keeps the timeline running across a resize", func() {
			for i := 0; i < 50; i++ {
				eng.Tick()
			}
			Expect(eng.SetCount(500)).To(Succeed())
			Expect(eng.Status().Step).To(Equal(50))

			eng.Tick()
			want, _ := layout.Sample(layout.Spiral, 500)
			phyl, _ := layout.Sample(layout.Phyllotaxis, 500)
			f := eng.Status().Fraction
			v := eng.Positions()[250]
			Expect(v.X).To(BeNumerically("~", timeline.Lerp(phyl[250].X, want[250].X, f), 1e-12))
		})

		DescribeTable("rejects bad counts and keeps the old set",
			func(n int, want error) {
				Expect(eng.SetCount(n)).To(MatchError(want))
				Expect(eng.Count()).To(Equal(100))
			},
			Entry("zero", 0, cloud.ErrInvalidCount),
			Entry("negative", -10, cloud.ErrInvalidCount),
			Entry("single point", 1, layout.ErrDegenerateSize),
		)
	})

	It("resizes from another goroutine while ticking", func() {
		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			for i := 0; i < 200; i++ {
				n := 100
				if i%2 == 0 {
					n = 150
				}
				Expect(eng.SetCount(n)).To(Succeed())
			}
		}()

		ticks := 0
		for running := true; running; {
			select {
			case <-done:
				running = false
			default:
				eng.Tick()
				ticks++
			}
		}

		Expect(eng.Count()).To(Equal(100))
		eng.Tick()
		for _, v := range eng.Positions() {
			Expect(v.IsFinite()).To(BeTrue())
			Expect(v.X).To(BeNumerically("<=", 1))
			Expect(v.X).To(BeNumerically(">=", -1))
		}
		Expect(eng.Status().Step).To(Equal((ticks + 1) % timeline.DefaultSteps))
	})

	It("rejects invalid options", func() {
		opts := morph.DefaultOptions()
		opts.NumSteps = 0
		_, err := morph.New(opts)
		Expect(err).To(MatchError(timeline.ErrInvalidSteps))

		opts = morph.DefaultOptions()
		opts.Count = 0
		_, err = morph.New(opts)
		Expect(err).To(MatchError(cloud.ErrInvalidCount))
	})
})
