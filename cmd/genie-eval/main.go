// genie-eval measures retrieval precision@k over the labeled sample
// queries. The query set is tiny: the numbers demonstrate the pipeline
// rather than benchmark it.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retail-insight/genie/internal/repository/catalog"
	"github.com/retail-insight/genie/internal/usecase/eval"
	"github.com/retail-insight/genie/internal/usecase/retrieval"
)

func main() {
	docsPath := flag.String("docs", filepath.Join("data", "docs.json"),
		"Path to the JSON file with product documents")
	k := flag.Int("k", 3,
		"Number of top documents to consider for precision@k")
	flag.Parse()

	docs, err := catalog.Load(*docsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genie-eval: %v\n", err)
		os.Exit(1)
	}

	engine := retrieval.New(docs)
	precision := eval.Evaluate(engine, eval.SampleQueries, *k)

	fmt.Printf("Precision@%d: %.2f\n", *k, precision)
}
