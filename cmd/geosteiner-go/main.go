package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner"
	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"
)

func main() {
	log.Printf("geosteiner-go version: %s", geosteiner.WrapperVersion())
	log.Printf("geosteiner upstream: %s (%s)", geosteiner.UpstreamVersion(), geosteiner.UpstreamDir)

	s, err := geosteiner.Open(geosteiner.Config{})
	if err != nil {
		if errors.Is(err, geosteiner.ErrNotBuilt) {
			fmt.Printf("library unavailable: %v\n", err)
			return
		}
		log.Fatalf("unexpected failure opening library: %v", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	terms := []geom.Point{
		geom.Pt(0, 0),
		geom.Pt(0, 1),
		geom.Pt(1, 0),
		geom.Pt(1, 1),
	}
	tree, err := s.Compute(context.Background(), terms)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	fmt.Printf("Steiner tree has length %f\n", tree.Length)
	for _, p := range tree.SteinerPoints {
		fmt.Printf("Steiner point: %s\n", p)
	}
	for _, e := range tree.Edges {
		fmt.Printf("Edge: %s\n", e)
	}
}
