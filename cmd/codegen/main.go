package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/ssig/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "count"
	outputKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity signal wrappers for ssig",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Highest number of slot arguments to generate",
				Value: 5,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write the generated code to",
				Value: "ssig/arity.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for ssig started !")
	defer func() {
		log.Printf("Codegen for ssig finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", maxArity)

	contents, err := format.Source([]byte(templates.ArityGen(maxArity)))
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	return os.WriteFile(out, contents, 0644)
}
