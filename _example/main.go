package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hupe1980/tabgo/bench"
	"github.com/hupe1980/tabgo/loader"
)

func main() {
	seed := int64(4711)
	numRows := 100_000
	numCols := 100

	ctx := context.Background()

	fmt.Println("--- Load ---")
	fmt.Println("Rows:", numRows)
	fmt.Println("Cols:", numCols)

	start := time.Now()

	fx, err := bench.NewFixture(ctx, loader.NewRandom(seed, numRows, numCols))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Seconds: %.2f\n\n", time.Since(start).Seconds())

	for _, spec := range bench.DefaultSpecs() {
		fmt.Printf("--- %s ---\n", spec.Name())

		report := fx.Run(spec)
		printReport(report)

		if !report.Agreement {
			log.Fatal("layouts disagree")
		}

		fmt.Println()
	}

	fmt.Println("--- Report ---")

	report := fx.Run(bench.PredicatedAllColumnsSum(bench.DefaultThreshold))
	if err := report.WriteJSON(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func printReport(report *bench.Report) {
	for _, lr := range report.Layouts {
		fmt.Printf("%-16s Result: %d, Seconds: %.6f\n", lr.Layout, lr.Result, time.Duration(lr.Nanos).Seconds())
	}
}
