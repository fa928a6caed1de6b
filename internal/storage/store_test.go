package storage_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spirals/internal/config"
	"github.com/san-kum/spirals/internal/export"
	"github.com/san-kum/spirals/internal/storage"
)

var _ = Describe("Store", func() {
	var (
		dir string
		st  *storage.Store
		cfg *config.Config
	)

	rows := []export.Row{
		{SourceValue: 5, Index: 0},
		{SourceValue: 5, Index: 1, X: -9, Y: 4, Size: 1.5, ColorIndex: 3},
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "spirals-store")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		st = storage.New(filepath.Join(dir, "output"))
		Expect(st.Init()).To(Succeed())
		cfg = config.DefaultConfig()
	})

	Describe("spirals", func() {
		It("marks a value as done once its figure exists", func() {
			run := cfg.RunName()
			Expect(st.Exists(run, 5)).To(BeFalse())

			Expect(st.SaveSpiral(run, 5, "<svg/>", rows)).To(Succeed())

			Expect(st.Exists(run, 5)).To(BeTrue())
			Expect(st.Exists(run, 7)).To(BeFalse())
			Expect(filepath.Join(st.RunDir(run), "5.svg")).To(BeARegularFile())
			Expect(filepath.Join(st.RunDir(run), "5.csv")).To(BeARegularFile())
		})

		It("loads the points it saved", func() {
			Expect(st.SaveSpiral("r", 5, "<svg/>", rows)).To(Succeed())

			got, err := st.LoadPoints("r", 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(rows))
		})

		It("leaves no figure behind when the points cannot be written", func() {
			Expect(os.MkdirAll(filepath.Join(st.RunDir("r"), "5.csv"), 0755)).To(Succeed())

			Expect(st.SaveSpiral("r", 5, "<svg/>", rows)).NotTo(Succeed())
			Expect(st.Exists("r", 5)).To(BeFalse())
		})

		It("fails to load points of an unknown value", func() {
			_, err := st.LoadPoints("r", 11)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("params", func() {
		It("writes the one-line summary", func() {
			cfg.Spiral.DegModifier = 3.23606797
			Expect(st.WriteParams(cfg.RunName(), cfg)).To(Succeed())

			text, err := st.ReadParams(cfg.RunName())
			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("Plot: scatter, Lower bound: 2, Upper bound: 100, Degrees: 360, " +
				"Degree Modifier: 3.236, Modifier: 1, Iterations: 1000"))
		})
	})

	Describe("MergeSpirals", func() {
		It("keeps earlier entries and lets current ones win", func() {
			previous := []storage.SpiralMetadata{
				{Value: 7, Points: 10, Metrics: map[string]float64{"mean_size": 1}},
				{Value: 3, Points: 10},
			}
			current := []storage.SpiralMetadata{
				{Value: 7, Points: 20},
				{Value: 11, Points: 20},
			}

			merged := storage.MergeSpirals(previous, current)
			Expect(merged).To(HaveLen(3))
			Expect(merged[0].Value).To(Equal(3))
			Expect(merged[1]).To(Equal(storage.SpiralMetadata{Value: 7, Points: 20}))
			Expect(merged[2].Value).To(Equal(11))
		})

		It("returns an empty list for no input", func() {
			Expect(storage.MergeSpirals(nil, nil)).To(BeEmpty())
		})
	})

	Describe("metadata", func() {
		It("round-trips and lists runs in name order", func() {
			second := storage.NewRunMetadata(cfg)
			second.Name = "b-run"
			second.Spirals = append(second.Spirals, storage.SpiralMetadata{
				Value:   5,
				Points:  2,
				Metrics: map[string]float64{"max_radius": 12.5},
			})
			first := storage.NewRunMetadata(cfg)
			first.Name = "a-run"

			Expect(st.SaveMetadata(second)).To(Succeed())
			Expect(st.SaveMetadata(first)).To(Succeed())

			meta, err := st.Load("b-run")
			Expect(err).NotTo(HaveOccurred())
			Expect(meta.Title).To(Equal("Primes"))
			Expect(meta.Spirals).To(HaveLen(1))
			Expect(meta.Spirals[0].Metrics).To(HaveKeyWithValue("max_radius", 12.5))

			runs, err := st.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(HaveLen(2))
			Expect(runs[0].Name).To(Equal("a-run"))
			Expect(runs[1].Name).To(Equal("b-run"))
		})

		It("skips directories without metadata", func() {
			Expect(os.MkdirAll(st.RunDir("partial"), 0755)).To(Succeed())

			runs, err := st.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(BeEmpty())
		})

		It("lists nothing when the base dir is missing", func() {
			runs, err := storage.New(filepath.Join(dir, "missing")).List()
			Expect(err).NotTo(HaveOccurred())
			Expect(runs).To(BeEmpty())
		})
	})
})
