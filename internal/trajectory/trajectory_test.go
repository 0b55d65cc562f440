package trajectory

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

var _ = Describe("Trajectory", func() {
	var (
		ctx  context.Context
		tr   *track.Track
		traj *Trajectory
	)

	BeforeEach(func() {
		ctx = context.Background()
		tr = track.New(track.NewSegment("slope", func(x float64) float64 { return 5 - x }, 0, 10))

		var err error
		traj, err = New(tr, DefaultParams())
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts at rest on the first segment", func() {
		v, err := traj.Position(ctx, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(dynamo.Vector{Origin: dynamo.Point{X: 0, Y: 5}, Line: true}))
	})

	It("rides down the slope", func() {
		early, err := traj.Position(ctx, 0.25)
		Expect(err).NotTo(HaveOccurred())
		late, err := traj.Position(ctx, 0.5)
		Expect(err).NotTo(HaveOccurred())

		Expect(late.Origin.X).To(BeNumerically(">", early.Origin.X))
		Expect(late.Origin.Y).To(BeNumerically("<", early.Origin.Y))
		Expect(late.Magnitude).To(BeNumerically(">", early.Magnitude))
		Expect(late.Line).To(BeTrue())
	})

	Context("when the track is edited", func() {
		It("drops the cached steps", func() {
			_, err := traj.Position(ctx, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Cache().Len()).To(Equal(traj.Params().StepIndex(0.5) + 1))

			Expect(tr.Replace(0, "steeper", func(x float64) float64 { return 5 - 2*x })).To(Succeed())

			v, err := traj.Position(ctx, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Cache().Len()).To(Equal(traj.Params().StepIndex(0.1) + 1))
			Expect(v.Origin.Y).To(BeNumerically("~", 5-2*v.Origin.X, 1e-9))
		})

		It("matches a fresh trajectory on the new shape", func() {
			_, err := traj.Position(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			tr.Set([]track.Segment{track.NewSegment("bowl", func(x float64) float64 { return (x - 2) * (x - 2) }, 0, 4)})

			edited, err := traj.Position(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			fresh, err := New(track.New(tr.Segments()...), DefaultParams())
			Expect(err).NotTo(HaveOccurred())
			want, err := fresh.Position(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(edited).To(Equal(want))
		})
	})

	Context("when the track is left alone", func() {
		It("reuses every cached step", func() {
			_, err := traj.Position(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			steps := traj.Cache().Steps()

			_, err = traj.Position(ctx, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Cache().Steps()).To(Equal(steps))
		})
	})

	Describe("Record", func() {
		It("samples every period through the duration", func() {
			samples, err := Record(ctx, traj, 1, DefaultSampleEvery)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(33))
			Expect(samples[0].Time).To(BeZero())
			Expect(samples[32].Time).To(BeNumerically("~", 1, 1e-12))

			for i := 1; i < len(samples); i++ {
				Expect(samples[i].Vector.Origin.X).To(BeNumerically(">=", samples[i-1].Vector.Origin.X))
			}
		})

		It("rejects a non-positive period", func() {
			_, err := Record(ctx, traj, 1, 0)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a negative duration", func() {
			_, err := Record(ctx, traj, math.Inf(-1), 0.1)
			Expect(err).To(MatchError(dynamo.ErrInvalidTime))
		})

		It("stops at the first failing sample", func() {
			tr.Set([]track.Segment{track.NewSegment("sqrt", func(x float64) float64 { return math.Sqrt(0.01 - x) }, 0, 1)})
			samples, err := Record(ctx, traj, 2, 0.25)
			Expect(err).To(MatchError(dynamo.ErrEvaluation))
			Expect(len(samples)).To(BeNumerically("<", 9))
		})
	})
})
