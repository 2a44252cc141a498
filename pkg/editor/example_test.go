package editor_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/daireno/pkg/editor"
)

func ExampleEditor_Click() {
	ctx := context.Background()
	e := editor.New()
	_ = e.Generate(ctx, editor.ParseSetup("2", "0", "2"))

	// Click the label of the ground floor (lower band)
	p, _ := e.Click(400, 75)
	fmt.Println(p.Prompt)

	e.Commit(ctx, p, "3", false)
	for _, f := range e.Section().Floors {
		fmt.Println(f.Label, f.Apartments)
	}
	// Output:
	// Bu katın daire sayısını girin (eski: 2):
	// Zemin Kat [1 2 3]
	// 1. Normal Kat [4 5]
}
