package main

import (
	drivetrain "Driveline/internal/drivetrain"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	caseFile := flag.String("case", "", "path to a JSON case file with config and input")
	outFile := flag.String("out", "", "write the full result as JSON to this file")
	flag.Parse()

	if *caseFile == "" {
		log.Fatal("usage: sizer -case case.json [-out result.json]")
	}

	data, err := os.ReadFile(*caseFile)
	if err != nil {
		log.Fatalf("read case: %v", err)
	}

	var req drivetrain.CalcRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Fatalf("decode case: %v", err)
	}

	g, err := drivetrain.New(req.Config)
	if err != nil {
		log.Fatalf("configure: %v", err)
	}
	out, err := g.Evaluate(req.Input)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	fmt.Printf("topology        %s\n", req.Config.Topology)
	fmt.Printf("shaft mass      %10.1f kg  diameter %.3f m  length %.3f m\n",
		out.Shaft.MassKG, out.Shaft.Diameter1M, out.Shaft.LengthM)
	fmt.Printf("main bearing    %10.1f kg\n", out.MB1.MassKG)
	if out.MB2.MassKG > 0 {
		fmt.Printf("second bearing  %10.1f kg\n", out.MB2.MassKG)
	}
	fmt.Printf("gearbox         %10.1f kg\n", out.Gearbox.MassKG)
	fmt.Printf("high speed side %10.1f kg\n", out.HSS.MassKG)
	fmt.Printf("generator       %10.1f kg\n", out.Generator.MassKG)
	fmt.Printf("bedplate        %10.1f kg\n", out.Bedplate.MassKG)
	fmt.Printf("yaw system      %10.1f kg\n", out.Yaw.MassKG)
	fmt.Printf("hub system      %10.1f kg\n", out.Hub.SystemMassKG)
	fmt.Printf("nacelle         %10.1f kg  cm [%.3f %.3f %.3f]\n",
		out.Nacelle.MassKG, out.Nacelle.CM[0], out.Nacelle.CM[1], out.Nacelle.CM[2])
	fmt.Printf("rna             %10.1f kg  cm x %.3f m\n", out.RNA.MassKG, out.RNA.CMX)

	if *outFile != "" {
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			log.Fatalf("encode result: %v", err)
		}
		if err := os.WriteFile(*outFile, enc, 0o644); err != nil {
			log.Fatalf("write result: %v", err)
		}
	}
}
