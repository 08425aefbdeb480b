package vector_test

import (
	"fmt"

	"github.com/cwbudde/algo-lorentz/vector"
)

func ExampleNewPtEtaPhiM() {
	p := vector.NewPtEtaPhiM(10, 0, 0, 5)
	fmt.Printf("m=%.1f e=%.3f px=%.1f\n", p.Mass(), p.E(), p.Px())

	// Output:
	// m=5.0 e=11.180 px=10.0
}

func ExampleLorentz_BoostZ() {
	rest := vector.NewXYZT(0, 0, 0, 1)
	moving, err := rest.BoostZ(0.6)
	if err != nil {
		panic(err)
	}
	fmt.Printf("z=%.3f t=%.3f tau=%.3f\n", moving.Z(), moving.T(), moving.Tau())

	// Output:
	// z=0.750 t=1.250 tau=1.000
}

func ExampleSum() {
	a := vector.NewPxPyPzE(1, 0, 0, 2)
	b := vector.NewPxPyPzE(-1, 0, 0, 2)
	fmt.Printf("m=%.1f\n", vector.Sum(a, b).Mass())

	// Output:
	// m=4.0
}
