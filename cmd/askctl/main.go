// Command askctl stages local files and submits a question to an ask server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/askrelay/backend/internal/client"
	"github.com/askrelay/backend/internal/stager"
)

func main() {
	server := flag.String("server", "http://localhost:4000", "base URL of the ask server")
	question := flag.String("question", "", "question to submit")
	flag.Parse()

	if !client.CanSubmit(*question) {
		fmt.Fprintln(os.Stderr, "a non-empty question is required")
		os.Exit(2)
	}

	st := stager.New()
	defer st.Teardown()

	refs := make([]stager.FileRef, 0, flag.NArg())
	for _, path := range flag.Args() {
		ref, err := stager.OpenDiskFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot stage %s: %v\n", path, err)
			os.Exit(1)
		}
		refs = append(refs, ref)
	}
	if _, err := st.AddFiles(refs...); err != nil {
		fmt.Fprintf(os.Stderr, "staging failed: %v\n", err)
		os.Exit(1)
	}

	c := client.New(*server)
	res := c.Submit(context.Background(), *question, st.Items())
	if !res.OK() {
		fmt.Fprintf(os.Stderr, "submission failed: %s\n", res.Failure)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(res.Accepted, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render response: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
