package morph_test

import (
	"context"
	"time"

	"github.com/san-kum/pointmorph/internal/morph"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingTicker struct{ n int }

func (c *countingTicker) Tick() { c.n++ }

var _ = Describe("Loop", func() {
	It("ticks once per frame until stopped", func() {
		c := &countingTicker{}
		loop := morph.NewLoop(c, 60)

		Expect(loop.Frame()).To(BeTrue())
		Expect(loop.Frame()).To(BeTrue())
		loop.Stop()
		Expect(loop.Frame()).To(BeFalse())
		Expect(c.n).To(Equal(2))
		Expect(loop.Frames()).To(Equal(int64(2)))
	})

	It("runs a fixed number of frames", func() {
		c := &countingTicker{}
		loop := morph.NewLoop(c, 60)
		seen := 0
		Expect(loop.RunFrames(25, func(int) { seen++ })).To(Equal(25))
		Expect(c.n).To(Equal(25))
		Expect(seen).To(Equal(25))
	})

	It("stops frame runs when stopped from a callback", func() {
		c := &countingTicker{}
		loop := morph.NewLoop(c, 60)
		n := loop.RunFrames(100, func(frame int) {
			if frame == 10 {
				loop.Stop()
			}
		})
		Expect(n).To(Equal(10))
		Expect(c.n).To(Equal(10))
	})

	It("returns from Run after Stop", func() {
		c := &countingTicker{}
		loop := morph.NewLoop(c, 1000)
		done := make(chan error, 1)
		go func() { done <- loop.Run(context.Background()) }()

		Eventually(loop.Frames).Should(BeNumerically(">=", 3))
		loop.Stop()
		Eventually(done).Should(Receive(BeNil()))

		frames := loop.Frames()
		Consistently(loop.Frames, 50*time.Millisecond).Should(Equal(frames))
	})

	It("returns the context error on cancellation", func() {
		loop := morph.NewLoop(&countingTicker{}, 1000)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- loop.Run(ctx) }()

		cancel()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
		Expect(loop.Stopped()).To(BeTrue())
	})

	It("clamps fps below one", func() {
		Expect(morph.NewLoop(&countingTicker{}, 0).Interval()).To(Equal(time.Second))
	})

	It("clamps huge fps to a positive interval", func() {
		loop := morph.NewLoop(&countingTicker{}, 2_000_000_000)
		Expect(loop.Interval()).To(Equal(time.Second / morph.MaxFPS))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		Expect(loop.Run(ctx)).To(MatchError(context.DeadlineExceeded))
	})
})
