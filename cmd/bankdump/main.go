// Command bankdump prints the compiled-in question banks as JSON, for
// content review without standing up the server.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"careinspect/internal/bank"
	"careinspect/internal/model"
)

func main() {
	country := flag.String("country", "scotland", "country for the compliance sections")
	flag.Parse()

	b := bank.New()
	c := model.Country(*country)
	if !c.Valid() {
		log.Fatalf("unknown country %q", *country)
	}

	auditSections := b.AuditSections(c)
	out := map[string]interface{}{
		"inspectionSections": b.InspectionSections(),
		"closingQuestions":   b.ClosingQuestions(),
		"auditSections":      auditSections,
		"auditTotalMaxScore": bank.TotalMaxScore(auditSections),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("encode: %v", err)
	}
}
