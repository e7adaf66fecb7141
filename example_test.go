package md2substack_test

import (
	"context"
	"fmt"
	"strings"

	md2substack "github.com/alnah/go-md2substack"
)

// Example demonstrates a dry run: tables become placeholders and no
// network call is made.
func Example() {
	svc, err := md2substack.New()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	post := "---\ntitle: Rents\n---\n| City | Rent |\n|---|---|\n| Oslo | 10 |\n\nGrowth is $x^2$.\n"
	res, err := svc.Prepare(context.Background(), md2substack.Input{
		Markdown: post,
		DryRun:   true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(res.Markdown)
	fmt.Println(res.Tables[0].Rows, "row")
	// Output:
	// [DATAWRAPPER EMBED — Table 1: "Rents — Table 1"]
	//
	// Growth is [LATEX: x^2].
	// 1 row
}

// Example_renderHTML demonstrates rendering prepared Markdown as a styled
// page for pasting into the Substack editor.
func Example_renderHTML() {
	svc, err := md2substack.New(md2substack.WithStyle("plain"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	page, err := svc.RenderHTML(context.Background(), "# Hello\n\nBody.\n", "Hello")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(page, "<style>") && strings.Contains(page, "<h1") {
		fmt.Println("styled page rendered")
	}
	// Output: styled page rendered
}
