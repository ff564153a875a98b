// Command horninfo prints geometry, loading and dispersion figures for
// horn flare profiles.
//
// Usage:
//
//	horninfo [flags] [profile-name ...]
//
// Without arguments it prints info for all known flare profiles.
//
// Examples:
//
//	horninfo exponential
//	horninfo -throat 25 -mouth 150 -length 400 tractrix le-cleach
//	horninfo -freq 2000 -all
//	horninfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-horn/dispersion"
	"github.com/cwbudde/algo-horn/profile"
	"github.com/cwbudde/algo-horn/response"
)

func main() {
	throat := flag.Float64("throat", 12.5, "throat radius in mm")
	mouth := flag.Float64("mouth", 100, "mouth radius in mm")
	length := flag.Float64("length", 300, "axial length in mm")
	segments := flag.Int("segments", 100, "number of curve segments")
	cutoff := flag.Float64("cutoff", 0, "target cutoff frequency in Hz (0 = derive from throat)")
	freq := flag.Float64("freq", 1000, "frequency in Hz for the dispersion columns")
	all := flag.Bool("all", false, "show all flare profiles")
	list := flag.Bool("list", false, "list available profile names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: horninfo [flags] [profile-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints geometry, loading and dispersion figures for horn flare profiles.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all profiles.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  horninfo exponential tractrix\n")
		fmt.Fprintf(os.Stderr, "  horninfo -throat 25 -mouth 150 -length 400 le-cleach\n")
		fmt.Fprintf(os.Stderr, "  horninfo -freq 2000 -all\n")
		fmt.Fprintf(os.Stderr, "  horninfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	types := resolveTypes(flag.Args(), *all)
	if len(types) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching flare profiles\n")
		os.Exit(1)
	}

	params := profile.Params{
		ThroatRadius: *throat,
		MouthRadius:  *mouth,
		Length:       *length,
		Segments:     *segments,
		CutoffFreq:   *cutoff,
	}

	printAnalysis(types, params, *freq)
}

func printList() {
	names := make([]string, 0, len(profile.Types()))
	for _, typ := range profile.Types() {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveTypes(names []string, all bool) []profile.Type {
	if len(names) == 0 || all {
		return profile.Types()
	}

	var result []profile.Type
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		typ, ok := profile.ParseType(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown profile %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, typ)
	}
	return result
}

func printAnalysis(types []profile.Type, params profile.Params, freq float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Profile\tCutoff [Hz]\tEfficiency [%%]\tZ throat [Pa·s/m3]\tBeamwidth [deg]\tDI [dB]\tQ\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----------\t--------------\t------------------\t---------------\t-------\t--\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, typ := range types {
		curve, err := profile.Generate(typ, params)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", typ, err)
			if curve == nil {
				continue
			}
		}

		res, err := response.Analyze(curve, params.ThroatRadius)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", typ, err)
			continue
		}

		mouthDiameter := 2 * params.MouthRadius
		bw := dispersion.Beamwidth(mouthDiameter, freq)
		dir := dispersion.FromPolarPatterns(
			dispersion.Pattern(freq, dispersion.AxisHorizontal, mouthDiameter),
			dispersion.Pattern(freq, dispersion.AxisVertical, mouthDiameter),
		)

		if _, err := fmt.Fprintf(tw, "%s\t%.0f\t%.1f\t%.0f%+.0fi\t%.0f\t%.1f\t%.1f\n",
			typ,
			res.CutoffFrequency,
			res.Efficiency,
			real(res.ThroatImpedance),
			imag(res.ThroatImpedance),
			bw,
			dir.DirectivityIndex,
			dir.DirectivityFactor,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
