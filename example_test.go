package geodata_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/qubit-modeling/geodata"
)

// Example demonstrates building a 1D device specification and registering it
// in a workspace.
func Example() {
	ws, err := geodata.NewWorkspace(
		geodata.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		panic(err)
	}

	wire := geodata.NewGeo1D("wire")
	// Endpoints are normalized; order does not matter.
	if err := wire.AddPart("dot", 5.0, 2.0, false); err != nil {
		panic(err)
	}

	iv, _ := wire.Part("dot")
	fmt.Printf("dot spans (%.1f, %.1f)\n", iv.Start, iv.End)

	if err := ws.Add(wire); err != nil {
		panic(err)
	}
	fmt.Printf("documents: %d\n", ws.Len())

	// Output:
	// dot spans (2.0, 5.0)
	// documents: 1
}
