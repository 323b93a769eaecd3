// Command telesabre runs the TeleSABRE routing pass over an architecture
// and circuit supplied as JSON files, and prints the resulting schedule.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/qcompiler/telesabre/arch"
	"github.com/qcompiler/telesabre/archio"
	"github.com/qcompiler/telesabre/circuit"
	"github.com/qcompiler/telesabre/circuitio"
	"github.com/qcompiler/telesabre/config"
	"github.com/qcompiler/telesabre/sabre"
)

func main() {
	archPath := flag.String("arch", "", "path to architecture JSON (spec.md §6 contract)")
	circuitPath := flag.String("circuit", "", "path to circuit JSON (spec.md §6 contract)")
	seed := flag.Int64("seed", 1, "RNG seed for tie-breaking and initial layout")
	verbose := flag.Bool("v", false, "print one line per committed operation")
	flag.Parse()

	if *archPath == "" || *circuitPath == "" {
		fmt.Fprintln(os.Stderr, "usage: telesabre -arch arch.json -circuit circuit.json")
		os.Exit(2)
	}

	a, err := loadArchitecture(*archPath)
	if err != nil {
		log.Fatalf("telesabre: %v", err)
	}
	c, err := loadCircuit(*circuitPath)
	if err != nil {
		log.Fatalf("telesabre: %v", err)
	}

	hooks := sabre.Hooks{}
	if *verbose {
		hooks.OnCommit = func(op sabre.Op) {
			fmt.Fprintf(os.Stderr, "%s %v\n", op.Kind, op.Qubits)
		}
		hooks.OnDeadlock = func(iter, rollbackTo int) {
			fmt.Fprintf(os.Stderr, "deadlock at iteration %d, rolled back to %d\n", iter, rollbackTo)
		}
	}

	result, err := sabre.Run(context.Background(), a, c, config.Default(), *seed, hooks)
	if err != nil {
		log.Fatalf("telesabre: routing failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("telesabre: encoding result: %v", err)
	}
}

func loadArchitecture(path string) (*arch.Architecture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening architecture file: %w", err)
	}
	defer f.Close()

	spec, err := archio.Decode(f)
	if err != nil {
		return nil, err
	}
	return arch.New(spec)
}

func loadCircuit(path string) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening circuit file: %w", err)
	}
	defer f.Close()

	return circuitio.Decode(f)
}
