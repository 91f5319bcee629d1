// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bookworm/entity"
	"github.com/katalvlaran/bookworm/pipeline"
)

func ExamplePipeline_Build() {
	roster, _ := entity.ResolveRoster([][]string{{"alice"}, {"bob"}, {"carol"}})
	p, _ := pipeline.New(periodAnalyzer{}, pipeline.WithRoster(roster), pipeline.WithThreshold(0))

	res, err := p.Build(context.Background(), "example", "Alice met Bob. Bob met Carol. Alice and Bob talked again.")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range res.Graph.Edges {
		fmt.Printf("%s - %s: %d\n", e.Source.Name, e.Target.Name, e.Weight)
	}
	// Output:
	// Alice - Bob: 2
	// Bob - Carol: 1
}
