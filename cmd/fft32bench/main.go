// Command fft32bench exercises the fft32 engine from the command line:
// one-shot forward transforms over random or synthetic-tone input, a
// round-trip accuracy check, and a live terminal spectrum view driven by
// synthetic tones.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"unsafe"

	"github.com/urfave/cli"

	"github.com/thesyncim/fft32"
)

func main() {
	app := cli.NewApp()
	app.Name = "fft32bench"
	app.Usage = "exercise the fft32 power-of-two FFT engine"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "fft",
			Usage: "run a forward complex FFT over random input and print the spectrum",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "size, m", Value: 64, Usage: "complex transform size, power of two"},
				cli.Int64Flag{Name: "seed", Value: 1, Usage: "PRNG seed for the input signal"},
			},
			Action: runFFT,
		},
		{
			Name:  "rfft",
			Usage: "run a real-input FFT over a synthetic tone and print the half-spectrum",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "size, n", Value: 128, Usage: "real transform size, power of two and even"},
				cli.Float64Flag{Name: "freq", Value: 5, Usage: "tone frequency in cycles across the window"},
			},
			Action: runRFFT,
		},
		{
			Name:  "roundtrip",
			Usage: "report FFT/IFFT or RFFT/IRFFT round-trip error over random input",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "size, n", Value: 256, Usage: "transform size"},
				cli.BoolFlag{Name: "real", Usage: "use RFFT/IRFFT instead of FFT/IFFT"},
			},
			Action: runRoundtrip,
		},
		{
			Name:  "scope",
			Usage: "live terminal spectrum view of a mix of synthetic tones",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "size, n", Value: 512, Usage: "real transform size"},
			},
			Action: runScope,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runFFT(c *cli.Context) error {
	m := uint32(c.Int("size"))
	seed := c.Int64("seed")

	e := fft32.NewEngine()
	if m > 4 {
		if err := e.PrecomputeTwiddles(m); err != nil {
			return err
		}
	}

	buf := e.Memory()
	f32 := asFloat32(buf)
	r := rand.New(rand.NewSource(seed))
	for i := uint32(0); i < m; i++ {
		f32[2*i] = float32(r.NormFloat64())
		f32[2*i+1] = float32(r.NormFloat64())
	}

	if err := e.FFT(m); err != nil {
		return err
	}

	for k := uint32(0); k < m; k++ {
		re, im := f32[2*k], f32[2*k+1]
		fmt.Printf("bin %4d: %8.4f %+8.4fi  |X|=%8.4f\n", k, re, im, math.Hypot(float64(re), float64(im)))
	}
	return nil
}

func runRFFT(c *cli.Context) error {
	n := uint32(c.Int("size"))
	freq := c.Float64("freq")

	e := fft32.NewEngine()
	if err := e.PrecomputeRFFTTwiddles(n); err != nil {
		return err
	}

	buf := e.Memory()
	f32 := asFloat32(buf)
	for i := uint32(0); i < n; i++ {
		phase := 2 * math.Pi * freq * float64(i) / float64(n)
		f32[i] = float32(math.Sin(phase))
	}

	if err := e.RFFT(n); err != nil {
		return err
	}

	for k := uint32(0); k <= n/2; k++ {
		re, im := f32[2*k], f32[2*k+1]
		fmt.Printf("bin %4d: %8.4f %+8.4fi  |X|=%8.4f\n", k, re, im, math.Hypot(float64(re), float64(im)))
	}
	return nil
}

func runRoundtrip(c *cli.Context) error {
	n := uint32(c.Int("size"))
	useReal := c.Bool("real")

	e := fft32.NewEngine()
	buf := e.Memory()
	f32 := asFloat32(buf)
	r := rand.New(rand.NewSource(7))

	if useReal {
		if err := e.PrecomputeRFFTTwiddles(n); err != nil {
			return err
		}
		original := make([]float32, n)
		for i := range original {
			original[i] = float32(r.NormFloat64())
			f32[i] = original[i]
		}
		if err := e.RFFT(n); err != nil {
			return err
		}
		if err := e.IRFFT(n); err != nil {
			return err
		}
		fmt.Printf("RFFT/IRFFT(%d) RMS error: %.3e\n", n, rmsReal(original, f32[:n]))
		return nil
	}

	if n > 4 {
		if err := e.PrecomputeTwiddles(n); err != nil {
			return err
		}
	}
	originalRe := make([]float32, n)
	originalIm := make([]float32, n)
	for i := uint32(0); i < n; i++ {
		originalRe[i] = float32(r.NormFloat64())
		originalIm[i] = float32(r.NormFloat64())
		f32[2*i], f32[2*i+1] = originalRe[i], originalIm[i]
	}
	if err := e.FFT(n); err != nil {
		return err
	}
	if err := e.IFFT(n); err != nil {
		return err
	}
	var sumSq, sumNorm float64
	for i := uint32(0); i < n; i++ {
		dr := float64(f32[2*i] - originalRe[i])
		di := float64(f32[2*i+1] - originalIm[i])
		sumSq += dr*dr + di*di
		sumNorm += float64(originalRe[i])*float64(originalRe[i]) + float64(originalIm[i])*float64(originalIm[i])
	}
	fmt.Printf("FFT/IFFT(%d) RMS error: %.3e\n", n, math.Sqrt(sumSq/sumNorm))
	return nil
}

func rmsReal(want, got []float32) float64 {
	var sumSq, sumNorm float64
	for i := range want {
		d := float64(got[i] - want[i])
		sumSq += d * d
		sumNorm += float64(want[i]) * float64(want[i])
	}
	return math.Sqrt(sumSq / sumNorm)
}

// asFloat32 reinterprets the engine's byte-addressed Memory() as a float32
// view, the same way any real caller of the "memory" export would need to
// in order to read/write samples without a copy per call.
func asFloat32(buf []byte) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&buf[0])), len(buf)/4)
}
