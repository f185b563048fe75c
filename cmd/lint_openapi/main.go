package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	spec_api "github.com/memories-timeline/memories-backend/api"
)

// lint reports operations that break the conventions of the published document
func lint(doc *openapi3.T) []string {
	var problems []string
	paths := doc.Paths.InMatchingOrder()
	sort.Strings(paths)
	for _, path := range paths {
		for method, operation := range doc.Paths.Value(path).Operations() {
			if len(operation.Tags) != 1 {
				problems = append(problems, fmt.Sprintf("Path '%s' method '%s' must have exactly one tag, has %v", path, method, operation.Tags))
			}
			if operation.OperationID == "" {
				problems = append(problems, fmt.Sprintf("Path '%s' method '%s' has no operationId", path, method))
			}
		}
	}
	return problems
}

func main() {
	var (
		data []byte
		err  error
	)
	if len(os.Args) > 1 {
		data, err = os.ReadFile(os.Args[1])
	} else {
		data, err = spec_api.Openapi()
	}
	if err != nil {
		panic(err)
	}

	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		panic(err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		fmt.Printf("Invalid document: %v\n", err)
		os.Exit(1)
	}

	problems := lint(doc)
	for _, problem := range problems {
		fmt.Println(problem)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}
	fmt.Println("No lint errors found")
}
