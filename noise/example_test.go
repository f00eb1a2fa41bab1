package noise_test

import (
	"fmt"

	"github.com/katalvlaran/terra/field"
	"github.com/katalvlaran/terra/noise"
)

// ExampleRegistry_Run chains built-in operations and inspects the history.
func ExampleRegistry_Run() {
	r := noise.NewDefaultRegistry()
	in, _ := field.New(2, 3)

	res, err := r.Run(in,
		noise.Step{Name: noise.OpConstant, Params: noise.Params{noise.ParamValue: 0.5}},
		noise.Step{Name: noise.OpRescale, Params: noise.Params{noise.ParamMin: 0, noise.ParamMax: 100}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.History), res.Final.ToRows())
	// Output:
	// 2 [[75 75 75] [75 75 75]]
}
