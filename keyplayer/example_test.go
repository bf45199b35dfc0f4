package keyplayer_test

import (
	"fmt"

	"github.com/mazzalab/pyntacle/builder"
	"github.com/mazzalab/pyntacle/keyplayer"
)

func ExampleEngine() {
	g, _ := builder.BuildGraph(nil, nil, builder.Path(5))
	kp, _ := keyplayer.New(g)

	f, _ := kp.F(false)
	reach, _ := kp.MReach(1, []int{2}, false)
	dr, _ := kp.DR([]int{2}, false)
	fmt.Printf("F=%.1f m-reach=%d dR=%.1f\n", f, reach, dr)
	// Output:
	// F=0.0 m-reach=2 dR=0.6
}
