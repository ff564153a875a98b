package profile_test

import (
	"fmt"

	"github.com/cwbudde/algo-horn/profile"
)

func ExampleGenerate() {
	pts, err := profile.Generate(profile.TypeExponential, profile.Params{
		ThroatRadius: 12.5,
		MouthRadius:  100,
		Length:       300,
		Segments:     50,
	})
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Printf("points: %d\n", len(pts))
	fmt.Printf("throat: %.1f mm at x=%.0f\n", pts[0].Radius, pts[0].X)
	fmt.Printf("mouth:  %.1f mm at x=%.0f\n", pts[len(pts)-1].Radius, pts[len(pts)-1].X)
	// Output:
	// points: 51
	// throat: 12.5 mm at x=0
	// mouth:  100.0 mm at x=300
}
