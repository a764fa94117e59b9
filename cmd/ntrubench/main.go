// Command ntrubench times KeyGen/Encapsulate/Decapsulate over a
// configurable number of trials, runs a comparative schoolbook-vs-NTT
// convolution micro-benchmark against github.com/tuneinsight/lattigo/v4/ring,
// and renders both as an HTML report.
//
// lattigo's ring package requires a power-of-two ring degree for its
// NTT, which the N=101 core cannot satisfy, so the NTT side of the
// comparison runs over its own small negacyclic ring rather than the
// KEM's R_q; it measures convolution throughput, not bit-for-bit
// agreement with the core.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	lring "github.com/tuneinsight/lattigo/v4/ring"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/amossys-team/ntrukem/kem"
	"github.com/amossys-team/ntrukem/ring"
)

func main() {
	trials := flag.Int("trials", 50, "number of KeyGen/Encapsulate/Decapsulate trials")
	nttDegree := flag.Int("ntt-degree", 128, "power-of-two degree used for the NTT convolution comparison")
	out := flag.String("o", "ntrubench.html", "HTML report path")
	flag.Parse()

	kemTimings, err := benchmarkKEM(*trials)
	if err != nil {
		log.Fatalf("ntrubench: %v", err)
	}
	convTimings, err := benchmarkConvolution(*nttDegree)
	if err != nil {
		log.Fatalf("ntrubench: %v", err)
	}

	if err := renderReport(*out, kemTimings, convTimings); err != nil {
		log.Fatalf("ntrubench: render report: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}

type kemTimings struct {
	trials               int
	keyGen, encap, decap time.Duration
}

func benchmarkKEM(trials int) (kemTimings, error) {
	r := kem.NewRand()
	var t kemTimings
	t.trials = trials

	for i := 0; i < trials; i++ {
		start := time.Now()
		private, public, err := kem.KeyGen(r)
		if err != nil {
			return t, fmt.Errorf("KeyGen: %w", err)
		}
		t.keyGen += time.Since(start)

		start = time.Now()
		sharedKey, ct, err := kem.Encapsulate(r, public)
		if err != nil {
			return t, fmt.Errorf("Encapsulate: %w", err)
		}
		t.encap += time.Since(start)

		start = time.Now()
		decapKey, err := kem.Decapsulate(private, ct)
		if err != nil {
			return t, fmt.Errorf("Decapsulate: %w", err)
		}
		t.decap += time.Since(start)

		if sharedKey != decapKey {
			return t, fmt.Errorf("trial %d: decapsulated key does not match encapsulated key", i)
		}
	}
	return t, nil
}

type convTimings struct {
	degree               int
	schoolbook, nttBased time.Duration
}

// benchmarkConvolution compares the core's schoolbook Mul against an
// NTT-based convolution over an unrelated power-of-two ring built with
// lattigo, purely as a throughput comparison (see package doc comment).
func benchmarkConvolution(degree int) (convTimings, error) {
	var t convTimings
	t.degree = degree

	a, b := randomSmallPoly(), randomSmallPoly()
	start := time.Now()
	if _, err := ring.Mul(a, b); err != nil {
		return t, fmt.Errorf("schoolbook Mul: %w", err)
	}
	t.schoolbook = time.Since(start)

	lr, err := lring.NewRing(degree, []uint64{0xffffffffffc0001}) // NTT-friendly 60-bit prime
	if err != nil {
		return t, fmt.Errorf("lattigo NewRing: %w", err)
	}
	pa := randomLattigoPoly(lr, degree)
	pb := randomLattigoPoly(lr, degree)
	out := lr.NewPoly()

	start = time.Now()
	lr.NTT(pa, pa)
	lr.NTT(pb, pb)
	lr.MForm(pa, pa)
	lr.MulCoeffsMontgomery(pa, pb, out)
	lr.InvNTT(out, out)
	t.nttBased = time.Since(start)

	return t, nil
}

func randomSmallPoly() ring.Poly {
	coefs := make([]int64, ring.N)
	for i := range coefs {
		coefs[i] = int64(rand.Intn(int(ring.Q))) - ring.Q/2
	}
	p, err := ring.New(ring.Q, coefs)
	if err != nil {
		panic(err) // ring.Q is always a valid modulus
	}
	return p
}

func randomLattigoPoly(r *lring.Ring, degree int) *lring.Poly {
	p := r.NewPoly()
	for i := 0; i < degree; i++ {
		p.Coeffs[0][i] = uint64(rand.Int63n(int64(r.Modulus[0])))
	}
	return p
}

func renderReport(path string, kt kemTimings, ct convTimings) error {
	page := components.NewPage().SetPageTitle("ntrukem benchmark report")

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "KEM operation timing",
			Subtitle: fmt.Sprintf("%d trials, mean per-operation duration", kt.trials),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis([]string{"KeyGen", "Encapsulate", "Decapsulate"}).
		AddSeries("mean ns/op", []opts.BarData{
			{Value: meanNanos(kt.keyGen, kt.trials)},
			{Value: meanNanos(kt.encap, kt.trials)},
			{Value: meanNanos(kt.decap, kt.trials)},
		})

	convBar := charts.NewBar()
	convBar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Convolution throughput comparison",
			Subtitle: fmt.Sprintf("schoolbook (N=%d, cyclic) vs. NTT (degree=%d, negacyclic)", ring.N, ct.degree),
		}),
	)
	convBar.SetXAxis([]string{"schoolbook", "NTT"}).
		AddSeries("ns/op", []opts.BarData{
			{Value: ct.schoolbook.Nanoseconds()},
			{Value: ct.nttBased.Nanoseconds()},
		})

	page.AddCharts(bar, convBar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func meanNanos(total time.Duration, trials int) int64 {
	if trials == 0 {
		return 0
	}
	return total.Nanoseconds() / int64(trials)
}
