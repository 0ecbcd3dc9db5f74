// Command importer runs a batch CSV import against the skill-check
// database, sharing the gateway's store and parsing rules.
//
//	importer -file checks.csv [-archive]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kireinail/skillcheck/internal/config"
	"github.com/kireinail/skillcheck/internal/csvimport"
	"github.com/kireinail/skillcheck/internal/customer"
	"github.com/kireinail/skillcheck/internal/db"
	"github.com/kireinail/skillcheck/internal/storage"
)

func main() {
	var (
		file    = flag.String("file", "", "CSV file to import (required)")
		envFile = flag.String("env", ".env", "env file with DB settings")
		archive = flag.Bool("archive", false, "archive the raw CSV to the blob store")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Fatalf("load %s: %v", *envFile, err)
	}
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	defer dbh.Close()

	var blobs storage.BlobStore
	if *archive {
		fs, err := storage.NewFSStore(cfg.BlobBasePath)
		if err != nil {
			log.Fatalf("blob store: %v", err)
		}
		blobs = fs
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	defer f.Close()

	res, err := csvimport.New(customer.NewSQLStore(dbh), blobs).Import(ctx, f, *file)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	fmt.Printf("imported %d checks for %d customers\n", res.Checks, res.Customers)
	if res.ArchiveKey != "" {
		fmt.Printf("archived upload as %s\n", res.ArchiveKey)
	}
	for _, skip := range res.Skipped {
		fmt.Printf("skipped line %d: %s\n", skip.Line, skip.Reason)
	}
	if len(res.Skipped) > 0 {
		os.Exit(1)
	}
}
