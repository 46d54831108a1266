// SPDX-License-Identifier: EPL-2.0

package route_test

import (
	"fmt"
	"strings"

	"github.com/snd-tools/audioroute/internal/mixertest"
	"github.com/snd-tools/audioroute/route"
)

// Example demonstrates loading a mixer description and switching between
// two routing paths with diff-based commits.
func Example() {
	spk := mixertest.NewBool("SPK_SW", 2, 0)
	hp := mixertest.NewBool("HP_SW", 2, 0)
	m := mixertest.New(spk, hp)

	const doc = `<mixer>
		<path name="speaker">
			<ctl name="SPK_SW" value="1"/>
			<ctl name="HP_SW" value="0"/>
		</path>
		<path name="headphones">
			<ctl name="SPK_SW" value="0"/>
			<ctl name="HP_SW" value="1"/>
		</path>
	</mixer>`

	reg, _ := route.NewRegistry(m)
	table := route.NewTable()
	if _, err := route.Load(strings.NewReader(doc), m, reg, table); err != nil {
		fmt.Println("load error:", err)
		return
	}

	speaker, _ := table.Get("speaker")
	_ = speaker.Apply(reg)
	reg.Commit()
	v, _ := spk.Value(0)
	fmt.Printf("speaker route: SPK_SW=%d\n", v)

	headphones, _ := table.Get("headphones")
	_ = headphones.Apply(reg)
	reg.Commit()
	v, _ = hp.Value(0)
	fmt.Printf("headphone route: HP_SW=%d\n", v)

	// Output:
	// speaker route: SPK_SW=1
	// headphone route: HP_SW=1
}
